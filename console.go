package sbi

import (
	"runtime"
	"unsafe"
)

// Debug Console extension ("DBCN").
const (
	// DebugConsoleID is the extension ID of the SBI Debug Console
	// extension. The extension is optional; probe for it with
	// ProbeExtension before relying on the calls below.
	DebugConsoleID uintptr = 0x4442434E

	consoleWrite     = 0
	consoleRead      = 1
	consoleWriteByte = 2
)

// ConsoleWriteByte writes a single byte to the debug console, blocking
// until the firmware reports the byte written. The wait is of
// firmware-defined duration and cannot be cancelled.
//
// Returns ErrFailed if the write failed due to an I/O error.
func ConsoleWriteByte(b byte) error {
	_, err := ecall1(DebugConsoleID, consoleWriteByte, uintptr(b))
	return err
}

// ConsoleWrite writes bytes from p to the debug console and returns the
// number of bytes the firmware accepted. It does not block: if the
// console cannot take more data the firmware may accept only part of p,
// or nothing at all, and the returned count is authoritative. A
// zero-length p returns (0, nil) without entering the firmware.
//
// The firmware accesses p directly through its physical address, so
// every byte of p must be addressable and access-permitted (per the
// platform's PMA attributes) for the duration of the call. The shim
// cannot check this; violating it is undefined behavior at the call
// boundary.
//
// Returns ErrInvalidParam if p does not satisfy the firmware's memory
// access requirements, or ErrFailed on an I/O error.
func ConsoleWrite(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	lo, hi := splitAddr(uintptr(unsafe.Pointer(&p[0])))
	n, err := ecall3(DebugConsoleID, consoleWrite, uintptr(len(p)), lo, hi)
	runtime.KeepAlive(p)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ConsoleRead reads pending debug console input into p and returns the
// number of bytes stored. It does not block: if no input is pending it
// returns (0, nil). The call never asks the firmware for more than
// len(p) bytes, but performs no bounds checking beyond forwarding that
// length. A zero-length p returns (0, nil) without entering the
// firmware.
//
// The same addressability precondition as ConsoleWrite applies to p.
//
// Returns ErrInvalidParam if p does not satisfy the firmware's memory
// access requirements, or ErrFailed on an I/O error.
func ConsoleRead(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	lo, hi := splitAddr(uintptr(unsafe.Pointer(&p[0])))
	n, err := ecall3(DebugConsoleID, consoleRead, uintptr(len(p)), lo, hi)
	runtime.KeepAlive(p)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
