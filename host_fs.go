package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FSBackend is the filesystem facility's external collaborator contract:
// path sanitisation, directory listing, and file I/O are owned outside
// the VM's core and reached only through this interface.
type FSBackend interface {
	Sanitize(path string) (string, bool)
	Mkdir(path string) bool
	Rmdir(path string) bool
	Delete(path string) bool
	Exists(path string) bool
	IsFile(path string) bool
	IsDir(path string) bool
	Open(path string, write bool) (hostFileHandle, error)
	LastWrite(path string) int64
	ReadDirNames(path string) ([]string, bool)
}

// OSFSBackend is the reference FS backend: a real directory on the host
// filesystem, with every path confined to baseDir before it touches disk.
type OSFSBackend struct {
	baseDir string
}

func NewOSFSBackend(baseDir string) *OSFSBackend {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		abs = baseDir
	}
	return &OSFSBackend{baseDir: abs}
}

// Sanitize rejects absolute paths and ".." segments and confirms the
// resolved path still lives under baseDir, in one place rather than
// duplicated at every call site.
func (f *OSFSBackend) Sanitize(path string) (string, bool) {
	return sanitizeJoin2(f.baseDir, path)
}

func sanitizeJoin2(baseDir, path string) (string, bool) {
	if filepath.IsAbs(path) || strings.Contains(path, "..") {
		return "", false
	}
	full := filepath.Join(baseDir, path)
	rel, err := filepath.Rel(baseDir, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return full, true
}

// sanitizeJoin is the string-only variant used by Sys::change_dir, which
// manipulates the VM's logical working-directory string rather than a
// real host path.
func sanitizeJoin(baseDir, path string) string {
	full, ok := sanitizeJoin2(baseDir, path)
	if !ok {
		return baseDir
	}
	rel, err := filepath.Rel(baseDir, full)
	if err != nil {
		return baseDir
	}
	if rel == "." {
		return "/"
	}
	return "/" + filepath.ToSlash(rel)
}

func (f *OSFSBackend) Mkdir(path string) bool {
	full, ok := f.Sanitize(path)
	if !ok {
		return false
	}
	return os.Mkdir(full, 0755) == nil
}

func (f *OSFSBackend) Rmdir(path string) bool {
	full, ok := f.Sanitize(path)
	if !ok {
		return false
	}
	return os.Remove(full) == nil
}

func (f *OSFSBackend) Delete(path string) bool {
	full, ok := f.Sanitize(path)
	if !ok {
		return false
	}
	return os.Remove(full) == nil
}

func (f *OSFSBackend) Exists(path string) bool {
	full, ok := f.Sanitize(path)
	if !ok {
		return false
	}
	_, err := os.Stat(full)
	return err == nil
}

func (f *OSFSBackend) IsFile(path string) bool {
	full, ok := f.Sanitize(path)
	if !ok {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && !info.IsDir()
}

func (f *OSFSBackend) IsDir(path string) bool {
	full, ok := f.Sanitize(path)
	if !ok {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.IsDir()
}

func (f *OSFSBackend) LastWrite(path string) int64 {
	full, ok := f.Sanitize(path)
	if !ok {
		return 0
	}
	info, err := os.Stat(full)
	if err != nil {
		return 0
	}
	return info.ModTime().Unix()
}

func (f *OSFSBackend) ReadDirNames(path string) ([]string, bool) {
	full, ok := f.Sanitize(path)
	if !ok {
		return nil, false
	}
	entries, err := os.ReadDir(full)
	if err != nil {
		return nil, false
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, true
}

func (f *OSFSBackend) Open(path string, write bool) (hostFileHandle, error) {
	full, ok := f.Sanitize(path)
	if !ok {
		return nil, os.ErrPermission
	}
	flags := os.O_RDONLY
	if write {
		flags = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	}
	osf, err := os.OpenFile(full, flags, 0644)
	if err != nil {
		return nil, err
	}
	return &osFileHandle{f: osf}, nil
}

type osFileHandle struct {
	f *os.File
}

func (h *osFileHandle) Read(p []byte) (int, error)                  { return h.f.Read(p) }
func (h *osFileHandle) Write(p []byte) (int, error)                 { return h.f.Write(p) }
func (h *osFileHandle) Seek(offset int64, whence int) (int64, error) { return h.f.Seek(offset, whence) }
func (h *osFileHandle) Close() error                                { return h.f.Close() }
func (h *osFileHandle) Size() int64 {
	info, err := h.f.Stat()
	if err != nil {
		return 0
	}
	return info.Size()
}

// FS dispatch handlers on VM.

func (vm *VM) fsMkdir(addr uint64) uint64 {
	path, err := vm.readGuestString(addr, 1024)
	if err != nil {
		vm.panicVM("fs_mkdir: bad pointer")
		return 0
	}
	return boolToU64(vm.Facilities.FS.Mkdir(path))
}

func (vm *VM) fsRmdir(addr uint64) uint64 {
	path, err := vm.readGuestString(addr, 1024)
	if err != nil {
		vm.panicVM("fs_rmdir: bad pointer")
		return 0
	}
	return boolToU64(vm.Facilities.FS.Rmdir(path))
}

func (vm *VM) fsDelete(addr uint64) uint64 {
	path, err := vm.readGuestString(addr, 1024)
	if err != nil {
		vm.panicVM("fs_delete: bad pointer")
		return 0
	}
	return boolToU64(vm.Facilities.FS.Delete(path))
}

func (vm *VM) fsExists(addr uint64) uint64 {
	path, err := vm.readGuestString(addr, 1024)
	if err != nil {
		vm.panicVM("fs_exists: bad pointer")
		return 0
	}
	return boolToU64(vm.Facilities.FS.Exists(path))
}

func (vm *VM) fsIsFile(addr uint64) uint64 {
	path, err := vm.readGuestString(addr, 1024)
	if err != nil {
		vm.panicVM("fs_is_file: bad pointer")
		return 0
	}
	return boolToU64(vm.Facilities.FS.IsFile(path))
}

func (vm *VM) fsIsDir(addr uint64) uint64 {
	path, err := vm.readGuestString(addr, 1024)
	if err != nil {
		vm.panicVM("fs_is_dir: bad pointer")
		return 0
	}
	return boolToU64(vm.Facilities.FS.IsDir(path))
}

// fsOpen opens path and returns a handle, or fileHandleInvalid on a
// facility-level open failure. An out-of-range path pointer is not the
// same kind of failure — it is a guest contract violation — so it faults
// the VM instead, matching ioPrints's handling of the same error from
// readGuestString.
func (vm *VM) fsOpen(pathAddr uint64, mode int64) uint64 {
	path, err := vm.readGuestString(pathAddr, 1024)
	if err != nil {
		vm.panicVM("fs_open: bad pointer")
		return fileHandleInvalid
	}
	hf, err := vm.Facilities.FS.Open(path, mode != 0)
	if err != nil {
		return fileHandleInvalid
	}
	return uint64(vm.files.add(path, hf))
}

func (vm *VM) fsClose(handle int64) uint64 {
	return boolToU64(vm.files.close(int(handle)))
}

func (vm *VM) fsAvailable(handle int64) int64 {
	f, ok := vm.files.get(int(handle))
	if !ok {
		return 0
	}
	pos, _ := f.hostFile.Seek(0, io.SeekCurrent)
	return f.hostFile.Size() - pos
}

func (vm *VM) fsFlush(handle int64) uint64 { return 1 }

func (vm *VM) fsPeek(handle int64) int64 {
	f, ok := vm.files.get(int(handle))
	if !ok {
		return -1
	}
	pos, _ := f.hostFile.Seek(0, io.SeekCurrent)
	buf := make([]byte, 1)
	n, err := f.hostFile.Read(buf)
	_, _ = f.hostFile.Seek(pos, io.SeekStart)
	if n == 0 || err != nil {
		return -1
	}
	return int64(buf[0])
}

func (vm *VM) fsSeek(handle, pos int64) uint64 {
	f, ok := vm.files.get(int(handle))
	if !ok {
		return 0
	}
	_, err := f.hostFile.Seek(pos, io.SeekStart)
	return boolToU64(err == nil)
}

func (vm *VM) fsSize(handle int64) int64 {
	f, ok := vm.files.get(int(handle))
	if !ok {
		return -1
	}
	return f.hostFile.Size()
}

func (vm *VM) fsRead(handle int64) int64 {
	f, ok := vm.files.get(int(handle))
	if !ok {
		return -1
	}
	buf := make([]byte, 1)
	n, err := f.hostFile.Read(buf)
	if n == 0 || err != nil {
		return -1
	}
	return int64(buf[0])
}

func (vm *VM) fsWriteByte(handle int64, b byte) uint64 {
	f, ok := vm.files.get(int(handle))
	if !ok {
		return 0
	}
	n, err := f.hostFile.Write([]byte{b})
	return boolToU64(n == 1 && err == nil)
}

func (vm *VM) fsWriteString(handle int64, addr uint64) int64 {
	f, ok := vm.files.get(int(handle))
	if !ok {
		return -1
	}
	s, err := vm.readGuestString(addr, MEM_SIZE)
	if err != nil {
		vm.panicVM("fs_write_string: bad pointer")
		return -1
	}
	n, err := f.hostFile.Write([]byte(s))
	if err != nil {
		return -1
	}
	return int64(n)
}

func (vm *VM) fsPosition(handle int64) int64 {
	f, ok := vm.files.get(int(handle))
	if !ok {
		return -1
	}
	pos, _ := f.hostFile.Seek(0, io.SeekCurrent)
	return pos
}

func (vm *VM) fsPath(handle int64) uint64 {
	f, ok := vm.files.get(int(handle))
	if !ok {
		return uint64(vm.strStream.begin(""))
	}
	return uint64(vm.strStream.begin(f.path))
}

func (vm *VM) fsName(handle int64) uint64 {
	f, ok := vm.files.get(int(handle))
	if !ok {
		return uint64(vm.strStream.begin(""))
	}
	return uint64(vm.strStream.begin(filepath.Base(f.path)))
}

// fsNext / fsNextName implement directory-stream iteration for a handle
// opened against a directory: fsNext returns 1 while entries remain and 0
// otherwise, without consuming one; fsNextName streams the next entry's
// name and advances past it.
func (vm *VM) fsNext(handle int64) uint64 {
	names, ok := vm.dirCursor(handle)
	if !ok || len(names) == 0 {
		return 0
	}
	return 1
}

func (vm *VM) fsNextName(handle int64) uint64 {
	names, ok := vm.dirCursorNames(handle)
	if !ok {
		return uint64(vm.strStream.begin(""))
	}
	return uint64(vm.strStream.begin(names))
}

func (vm *VM) fsBufsize(handle int64) int64 { return 512 }

func (vm *VM) fsLastwrite(handle int64) int64 {
	f, ok := vm.files.get(int(handle))
	if !ok {
		return 0
	}
	return vm.Facilities.FS.LastWrite(f.path)
}

func (vm *VM) fsSeekDir(handle int64, pos int64) uint64 { return 1 }

func (vm *VM) fsRewind(handle int64) uint64 {
	f, ok := vm.files.get(int(handle))
	if !ok {
		return 0
	}
	delete(vm.dirCursors, handle)
	_, err := f.hostFile.Seek(0, io.SeekStart)
	return boolToU64(err == nil)
}

// dirCursors tracks per-handle directory listing state; kept host-side
// since guest handles are opaque small integers with no room for cursor
// bookkeeping of their own.
func (vm *VM) dirCursor(handle int64) ([]string, bool) {
	f, ok := vm.files.get(int(handle))
	if !ok {
		return nil, false
	}
	if vm.dirCursors == nil {
		vm.dirCursors = map[int64][]string{}
	}
	if _, seen := vm.dirCursors[handle]; !seen {
		names, _ := vm.Facilities.FS.ReadDirNames(f.path)
		vm.dirCursors[handle] = names
	}
	return vm.dirCursors[handle], true
}

func (vm *VM) dirCursorNames(handle int64) (string, bool) {
	names, ok := vm.dirCursor(handle)
	if !ok || len(names) == 0 {
		return "", false
	}
	name := names[0]
	vm.dirCursors[handle] = names[1:]
	return name, true
}
