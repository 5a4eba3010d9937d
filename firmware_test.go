package sbi

import (
	"testing"
	"unsafe"
)

// fakeFirmware implements the firmware side of the calls this package
// issues: the Base extension and a debug console with a byte of state.
// Buffer arguments arrive as machine words, exactly as they cross the
// real call boundary, and are turned back into slices here.
type fakeFirmware struct {
	out []byte // bytes the console accepted, in order
	in  []byte // pending console input

	writeCap int  // per-call cap on accepted bytes; 0 means no cap
	stalled  bool // console accepts nothing (but reports success)
	loopback bool // bytes written become pending input

	writeByteStatus int64 // forced status for write-byte, 0 = success
	writeStatus     int64 // forced status for buffer writes
	readStatus      int64 // forced status for buffer reads

	specVersion uintptr
	implID      uintptr
	implVersion uintptr
	extensions  map[uintptr]bool

	calls   int
	lastEID uintptr
	lastFID uintptr
}

// install routes all SBI calls to fw for the duration of the test.
func (fw *fakeFirmware) install(t *testing.T) {
	t.Helper()
	prev := ecallFn
	ecallFn = fw.call
	t.Cleanup(func() { ecallFn = prev })
}

func (fw *fakeFirmware) call(eid, fid uintptr, a0, a1, a2 uintptr) (int64, uintptr) {
	fw.calls++
	fw.lastEID, fw.lastFID = eid, fid

	switch eid {
	case baseID:
		switch fid {
		case baseGetSpecVersion:
			return statusSuccess, fw.specVersion
		case baseGetImplID:
			return statusSuccess, fw.implID
		case baseGetImplVersion:
			return statusSuccess, fw.implVersion
		case baseProbeExtension:
			if fw.extensions[a0] {
				return statusSuccess, 1
			}
			return statusSuccess, 0
		}
		return statusNotSupported, 0

	case DebugConsoleID:
		switch fid {
		case consoleWriteByte:
			if fw.writeByteStatus != 0 {
				return fw.writeByteStatus, 0
			}
			fw.out = append(fw.out, byte(a0))
			return statusSuccess, 0

		case consoleWrite:
			if fw.writeStatus != 0 {
				return fw.writeStatus, 0
			}
			if a2 != 0 {
				return statusInvalidParam, 0
			}
			if fw.stalled {
				return statusSuccess, 0
			}
			n := int(a0)
			if fw.writeCap > 0 && n > fw.writeCap {
				n = fw.writeCap
			}
			src := unsafe.Slice((*byte)(unsafe.Pointer(a1)), n)
			fw.out = append(fw.out, src...)
			if fw.loopback {
				fw.in = append(fw.in, src...)
			}
			return statusSuccess, uintptr(n)

		case consoleRead:
			if fw.readStatus != 0 {
				return fw.readStatus, 0
			}
			if a2 != 0 {
				return statusInvalidParam, 0
			}
			n := int(a0)
			if n > len(fw.in) {
				n = len(fw.in)
			}
			dst := unsafe.Slice((*byte)(unsafe.Pointer(a1)), int(a0))
			copy(dst[:n], fw.in[:n])
			fw.in = fw.in[n:]
			return statusSuccess, uintptr(n)
		}
		return statusNotSupported, 0
	}
	return statusNotSupported, 0
}
