//go:build !riscv64

package sbi

// machineEcall stands in for the ecall trampoline on architectures
// without one. Every call reports not-supported unless a test has
// replaced ecallFn with a substitute firmware.
func machineEcall(eid, fid uintptr, a0, a1, a2 uintptr) (status int64, value uintptr) {
	return statusNotSupported, 0
}
