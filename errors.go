package ds1307

import "errors"

var (
	// ErrInvalidAddress indicates a register address outside the device's
	// addressable range. No operation in this package produces it today;
	// it is part of the error surface for callers layering raw access on
	// top of the driver.
	ErrInvalidAddress = errors.New("ds1307: invalid register address")

	// ErrUnsupportedFrequency indicates a square wave frequency the chip
	// cannot generate.
	ErrUnsupportedFrequency = errors.New("ds1307: unsupported square wave frequency")

	// ErrInvalidDateTime indicates a date/time the chip cannot store
	// (year outside 2000-2099) or nonsense read back from the time
	// registers.
	ErrInvalidDateTime = errors.New("ds1307: invalid date/time")

	// ErrNVRAMOutOfBounds indicates an NVRAM access that starts or ends
	// outside the 56-byte region.
	ErrNVRAMOutOfBounds = errors.New("ds1307: NVRAM access out of bounds")
)

// BusError wraps a failure reported by the underlying I2C bus. The cause
// is carried opaquely; unwrap it with errors.As or errors.Unwrap.
type BusError struct {
	Err error
}

func (e *BusError) Error() string {
	return "ds1307: bus error: " + e.Err.Error()
}

func (e *BusError) Unwrap() error {
	return e.Err
}
