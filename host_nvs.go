package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// NVSBackend is the non-volatile-storage facility's contract: a flat
// key/value store with typed getters/setters, persisted as one JSON file
// on disk. The backend stores and returns full 64-bit values (one signed
// and one unsigned getter); each width's dispatch handler (nvsGetI8 ..
// nvsGetU64) narrows only to its own declared width, never through one
// shared int8 cast that would corrupt values outside -128..127 (see
// DESIGN.md).
type NVSBackend interface {
	Erase(key string) bool
	EraseAll()
	SetI64(key string, v int64)
	SetU64(key string, v uint64)
	SetString(key string, v string)
	GetI64(key string) (int64, bool)
	GetU64(key string) (uint64, bool)
	GetString(key string) (string, bool)
	Commit() bool
	HasWifiConfig() bool
	SetWifiSSID(ssid string)
	SetWifiPword(pword string)
}

// FileNVS persists its store as a single JSON document under baseDir,
// loaded lazily and flushed on Commit — the same "buffer then flush"
// shape as runtime_ipc.go's JSON request/response framing, applied to
// storage instead of a socket.
type FileNVS struct {
	path   string
	loaded bool
	store  map[string]nvsEntry
}

type nvsEntry struct {
	Kind  string `json:"kind"` // "i64", "u64", or "string"
	I64   int64  `json:"i64,omitempty"`
	U64   uint64 `json:"u64,omitempty"`
	Str   string `json:"str,omitempty"`
}

func NewFileNVS(baseDir string) *FileNVS {
	return &FileNVS{path: filepath.Join(baseDir, ".nvs.json")}
}

func (n *FileNVS) ensureLoaded() {
	if n.loaded {
		return
	}
	n.loaded = true
	n.store = map[string]nvsEntry{}
	data, err := os.ReadFile(n.path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, &n.store)
}

func (n *FileNVS) Erase(key string) bool {
	n.ensureLoaded()
	if _, ok := n.store[key]; !ok {
		return false
	}
	delete(n.store, key)
	return true
}

func (n *FileNVS) EraseAll() {
	n.ensureLoaded()
	n.store = map[string]nvsEntry{}
}

func (n *FileNVS) SetI64(key string, v int64)    { n.ensureLoaded(); n.store[key] = nvsEntry{Kind: "i64", I64: v} }
func (n *FileNVS) SetU64(key string, v uint64)   { n.ensureLoaded(); n.store[key] = nvsEntry{Kind: "u64", U64: v} }
func (n *FileNVS) SetString(key, v string)       { n.ensureLoaded(); n.store[key] = nvsEntry{Kind: "string", Str: v} }

func (n *FileNVS) GetI64(key string) (int64, bool) {
	n.ensureLoaded()
	e, ok := n.store[key]
	if !ok || e.Kind != "i64" {
		return 0, false
	}
	return e.I64, true
}

func (n *FileNVS) GetU64(key string) (uint64, bool) {
	n.ensureLoaded()
	e, ok := n.store[key]
	if !ok || e.Kind != "u64" {
		return 0, false
	}
	return e.U64, true
}

func (n *FileNVS) GetString(key string) (string, bool) {
	n.ensureLoaded()
	e, ok := n.store[key]
	if !ok || e.Kind != "string" {
		return "", false
	}
	return e.Str, true
}

func (n *FileNVS) Commit() bool {
	n.ensureLoaded()
	data, err := json.Marshal(n.store)
	if err != nil {
		return false
	}
	return os.WriteFile(n.path, data, 0644) == nil
}

func (n *FileNVS) HasWifiConfig() bool {
	_, ok := n.GetString("wifi_ssid")
	return ok
}

func (n *FileNVS) SetWifiSSID(ssid string)   { n.SetString("wifi_ssid", ssid) }
func (n *FileNVS) SetWifiPword(pword string) { n.SetString("wifi_pword", pword) }

// NVS dispatch handlers on VM. Every get_<width> returns the value
// zero/sign-extended from its declared width, never truncated through an
// i8 cast the way the original SDK's getters did.

// nvsKey reads the key string at addr, faulting the VM on an
// out-of-range pointer rather than silently treating it as an empty or
// missing key — the same bad-pointer handling as ioPrints. ok is false
// after a fault; callers must stop rather than proceed with a
// zero-value key.
func (vm *VM) nvsKey(addr uint64) (string, bool) {
	s, err := vm.readGuestString(addr, 256)
	if err != nil {
		vm.panicVM("nvs: bad key pointer")
		return "", false
	}
	return s, true
}

func (vm *VM) nvsErase(addr uint64) uint64 {
	key, ok := vm.nvsKey(addr)
	if !ok {
		return 0
	}
	return boolToU64(vm.Facilities.NVS.Erase(key))
}
func (vm *VM) nvsEraseAll() { vm.Facilities.NVS.EraseAll() }

func (vm *VM) nvsSetI8(addr uint64, v int64) {
	if key, ok := vm.nvsKey(addr); ok {
		vm.Facilities.NVS.SetI64(key, int64(int8(v)))
	}
}
func (vm *VM) nvsSetI16(addr uint64, v int64) {
	if key, ok := vm.nvsKey(addr); ok {
		vm.Facilities.NVS.SetI64(key, int64(int16(v)))
	}
}
func (vm *VM) nvsSetI32(addr uint64, v int64) {
	if key, ok := vm.nvsKey(addr); ok {
		vm.Facilities.NVS.SetI64(key, int64(int32(v)))
	}
}
func (vm *VM) nvsSetI64(addr uint64, v int64) {
	if key, ok := vm.nvsKey(addr); ok {
		vm.Facilities.NVS.SetI64(key, v)
	}
}
func (vm *VM) nvsSetU8(addr uint64, v uint64) {
	if key, ok := vm.nvsKey(addr); ok {
		vm.Facilities.NVS.SetU64(key, uint64(uint8(v)))
	}
}
func (vm *VM) nvsSetU16(addr uint64, v uint64) {
	if key, ok := vm.nvsKey(addr); ok {
		vm.Facilities.NVS.SetU64(key, uint64(uint16(v)))
	}
}
func (vm *VM) nvsSetU32(addr uint64, v uint64) {
	if key, ok := vm.nvsKey(addr); ok {
		vm.Facilities.NVS.SetU64(key, uint64(uint32(v)))
	}
}
func (vm *VM) nvsSetU64(addr uint64, v uint64) {
	if key, ok := vm.nvsKey(addr); ok {
		vm.Facilities.NVS.SetU64(key, v)
	}
}
func (vm *VM) nvsSetString(keyAddr, valAddr uint64) {
	key, ok := vm.nvsKey(keyAddr)
	if !ok {
		return
	}
	val, err := vm.readGuestString(valAddr, MEM_SIZE)
	if err != nil {
		vm.panicVM("nvs_set_string: bad value pointer")
		return
	}
	vm.Facilities.NVS.SetString(key, val)
}

func (vm *VM) nvsGetI8(addr uint64) int64 {
	key, ok := vm.nvsKey(addr)
	if !ok {
		return 0
	}
	v, _ := vm.Facilities.NVS.GetI64(key)
	return int64(int8(v))
}
func (vm *VM) nvsGetI16(addr uint64) int64 {
	key, ok := vm.nvsKey(addr)
	if !ok {
		return 0
	}
	v, _ := vm.Facilities.NVS.GetI64(key)
	return int64(int16(v))
}
func (vm *VM) nvsGetI32(addr uint64) int64 {
	key, ok := vm.nvsKey(addr)
	if !ok {
		return 0
	}
	v, _ := vm.Facilities.NVS.GetI64(key)
	return int64(int32(v))
}
func (vm *VM) nvsGetI64(addr uint64) int64 {
	key, ok := vm.nvsKey(addr)
	if !ok {
		return 0
	}
	v, _ := vm.Facilities.NVS.GetI64(key)
	return v
}
func (vm *VM) nvsGetU8(addr uint64) uint64 {
	key, ok := vm.nvsKey(addr)
	if !ok {
		return 0
	}
	v, _ := vm.Facilities.NVS.GetU64(key)
	return uint64(uint8(v))
}
func (vm *VM) nvsGetU16(addr uint64) uint64 {
	key, ok := vm.nvsKey(addr)
	if !ok {
		return 0
	}
	v, _ := vm.Facilities.NVS.GetU64(key)
	return uint64(uint16(v))
}
func (vm *VM) nvsGetU32(addr uint64) uint64 {
	key, ok := vm.nvsKey(addr)
	if !ok {
		return 0
	}
	v, _ := vm.Facilities.NVS.GetU64(key)
	return uint64(uint32(v))
}
func (vm *VM) nvsGetU64(addr uint64) uint64 {
	key, ok := vm.nvsKey(addr)
	if !ok {
		return 0
	}
	v, _ := vm.Facilities.NVS.GetU64(key)
	return v
}
func (vm *VM) nvsGetString(addr uint64) uint64 {
	key, ok := vm.nvsKey(addr)
	if !ok {
		return uint64(vm.strStream.begin(""))
	}
	v, _ := vm.Facilities.NVS.GetString(key)
	return uint64(vm.strStream.begin(v))
}

func (vm *VM) nvsCommit() uint64        { return boolToU64(vm.Facilities.NVS.Commit()) }
func (vm *VM) nvsHasWifiConfig() uint64 { return boolToU64(vm.Facilities.NVS.HasWifiConfig()) }
func (vm *VM) nvsSetWifiSSID(addr uint64) {
	s, err := vm.readGuestString(addr, 128)
	if err != nil {
		vm.panicVM("nvs_set_wifi_ssid: bad pointer")
		return
	}
	vm.Facilities.NVS.SetWifiSSID(s)
}
func (vm *VM) nvsSetWifiPword(addr uint64) {
	s, err := vm.readGuestString(addr, 128)
	if err != nil {
		vm.panicVM("nvs_set_wifi_pword: bad pointer")
		return
	}
	vm.Facilities.NVS.SetWifiPword(s)
}
