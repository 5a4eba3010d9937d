//go:build riscv64

package sbi

// machineEcall loads eid into a7, fid into a6 and the arguments into
// a0-a2, executes ecall, and returns the status and value words the
// firmware leaves in a0 and a1. Implemented in ecall_riscv64.s.
func machineEcall(eid, fid uintptr, a0, a1, a2 uintptr) (status int64, value uintptr)
