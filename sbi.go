// Package sbi provides thin wrappers around the RISC-V Supervisor Binary
// Interface, covering the Debug Console extension and the Base extension
// needed to detect it.
//
// Every wrapper marshals its arguments into the fixed SBI register
// convention (extension ID in a7, function ID in a6, arguments in a0-a2),
// issues a single ecall into the firmware, and decodes the returned
// (status, value) pair. The package keeps no state between calls and does
// no locking; callers sharing the console across goroutines must
// serialize access themselves.
package sbi

// Firmware status codes, as returned in a0 after an ecall.
const (
	statusSuccess          = 0
	statusFailed           = -1
	statusNotSupported     = -2
	statusInvalidParam     = -3
	statusDenied           = -4
	statusInvalidAddress   = -5
	statusAlreadyAvailable = -6
	statusAlreadyStarted   = -7
	statusAlreadyStopped   = -8
)

// Error is a nonzero SBI status code. The set of named values below is
// fixed by the binary interface; firmware returning a code outside it
// still surfaces as an Error carrying that code, never as success.
type Error int64

const (
	ErrFailed           Error = statusFailed
	ErrNotSupported     Error = statusNotSupported
	ErrInvalidParam     Error = statusInvalidParam
	ErrDenied           Error = statusDenied
	ErrInvalidAddress   Error = statusInvalidAddress
	ErrAlreadyAvailable Error = statusAlreadyAvailable
	ErrAlreadyStarted   Error = statusAlreadyStarted
	ErrAlreadyStopped   Error = statusAlreadyStopped
)

func (e Error) Error() string {
	switch e {
	case ErrFailed:
		return "sbi: call failed"
	case ErrNotSupported:
		return "sbi: not supported"
	case ErrInvalidParam:
		return "sbi: invalid parameter"
	case ErrDenied:
		return "sbi: denied"
	case ErrInvalidAddress:
		return "sbi: invalid address"
	case ErrAlreadyAvailable:
		return "sbi: already available"
	case ErrAlreadyStarted:
		return "sbi: already started"
	case ErrAlreadyStopped:
		return "sbi: already stopped"
	}
	return "sbi: unrecognized status " + itoa(int64(e))
}

// itoa avoids pulling fmt or strconv into the trap path.
func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
