package main

import (
	"math/rand/v2"
	"os/exec"
	"time"
)

// SysBackend is the Sys facility's external collaborator contract:
// wall-clock/monotonic time, a shell, and host introspection.
type SysBackend interface {
	Micros() uint64
	Millis() uint64
	ShellExec(cmd string) bool
	InfoStr(key int64) string
	InfoNum(key int64) int64
	Random() uint64
}

// SYSINFO_CARD_TYPE's value with no storage card present returns 0, the
// same "absent" sentinel as an unrecognised selector (see DESIGN.md).
const SYSINFO_CARD_TYPE = 0

// HostSys is the reference Sys backend: real time, a shell call that
// never runs the guest's command, and a minimal info table.
type HostSys struct {
	start time.Time
}

func NewHostSys() *HostSys {
	return &HostSys{start: time.Now()}
}

func (s *HostSys) Micros() uint64 { return uint64(time.Since(s.start).Microseconds()) }
func (s *HostSys) Millis() uint64 { return uint64(time.Since(s.start).Milliseconds()) }

// ShellExec does not run cmd: the sandbox executes untrusted guest code,
// so this reference backend never hands a guest string to a shell. It
// returns false for an empty cmd; for any other cmd it runs the host's
// `true` command and reports whether that succeeded. No setting in this
// backend enables running cmd itself.
func (s *HostSys) ShellExec(cmd string) bool {
	if cmd == "" {
		return false
	}
	return exec.Command("true").Run() == nil
}

func (s *HostSys) InfoStr(key int64) string { return "" }

func (s *HostSys) InfoNum(key int64) int64 {
	switch key {
	case SYSINFO_CARD_TYPE:
		return 0
	default:
		return 0
	}
}

func (s *HostSys) Random() uint64 { return rand.Uint64() }

// Sys dispatch handlers on VM — these own the parts of the Sys group the
// interpreter itself must mediate (delay, exit, working directory)
// rather than delegating to SysBackend.

func (vm *VM) sysDelayMs(ms int64) {
	if ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

func (vm *VM) sysExit(code int64) {
	vm.exitCode = code
	vm.running.Store(false)
	vm.closeAllFiles()
}

func (vm *VM) sysChangeDir(addr uint64) uint64 {
	path, err := vm.readGuestString(addr, 1024)
	if err != nil {
		vm.panicVM("change_dir: bad pointer")
		return 0
	}
	vm.workDir = sanitizeJoin(vm.workDir, path)
	return 1
}

func (vm *VM) sysWorkingDir() uint64 {
	return uint64(vm.strStream.begin(vm.workDir))
}
