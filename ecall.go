package sbi

// ecallFn issues one supervisor-to-firmware call. It is a variable so
// that tests (and hosted builds generally) can install a substitute
// firmware; on riscv64 it starts out bound to the real ecall trampoline.
var ecallFn = machineEcall

// ecall1 performs a one-argument SBI call and decodes the result.
func ecall1(eid, fid uintptr, a0 uintptr) (uintptr, error) {
	status, value := ecallFn(eid, fid, a0, 0, 0)
	return decode(status, value)
}

// ecall3 performs a three-argument SBI call and decodes the result.
func ecall3(eid, fid uintptr, a0, a1, a2 uintptr) (uintptr, error) {
	status, value := ecallFn(eid, fid, a0, a1, a2)
	return decode(status, value)
}

// decode maps the raw (status, value) register pair onto a Go result.
// Status 0 is the only success; everything else is an Error.
func decode(status int64, value uintptr) (uintptr, error) {
	if status == statusSuccess {
		return value, nil
	}
	return 0, Error(status)
}

// splitAddr splits a single logical address into the (low, high)
// machine-word pair the binary interface takes, to allow for a call
// width narrower than a physical address. XLEN matches the pointer
// width here, so the high word is always zero.
func splitAddr(addr uintptr) (lo, hi uintptr) {
	return addr, 0
}
