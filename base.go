package sbi

// Base extension. Mandatory in every SBI implementation; used mainly to
// probe for optional extensions such as the debug console.
const (
	baseID uintptr = 0x10

	baseGetSpecVersion = 0
	baseGetImplID      = 1
	baseGetImplVersion = 2
	baseProbeExtension = 3
)

// SpecVersion is the SBI specification version implemented by the
// firmware, unpacked from the word the Base extension returns: major in
// bits 30:24, minor in bits 23:0, bit 31 reserved and zero.
type SpecVersion struct {
	Major uint32
	Minor uint32
}

// Version returns the SBI specification version implemented by the
// firmware.
func Version() (SpecVersion, error) {
	v, err := ecall1(baseID, baseGetSpecVersion, 0)
	if err != nil {
		return SpecVersion{}, err
	}
	return SpecVersion{
		Major: uint32(v>>24) & 0x7f,
		Minor: uint32(v) & 0xffffff,
	}, nil
}

// ImplementationID identifies the SBI implementation (OpenSBI, KVM and
// so on, per the registered implementation IDs).
func ImplementationID() (uintptr, error) {
	return ecall1(baseID, baseGetImplID, 0)
}

// ImplementationVersion returns the implementation's own version word;
// its encoding is specific to the implementation.
func ImplementationVersion() (uintptr, error) {
	return ecall1(baseID, baseGetImplVersion, 0)
}

// ProbeExtension reports whether the firmware implements the extension
// with the given ID.
func ProbeExtension(id uintptr) (bool, error) {
	v, err := ecall1(baseID, baseProbeExtension, id)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}
