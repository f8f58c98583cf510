package ds1307

import "time"

// The chip's feature groups are exposed as independent interfaces so callers
// can depend on just the capability they need, and so other RTC drivers can
// satisfy the same contracts.

// Clock reads and sets the time of an RTC.
type Clock interface {
	Now() (time.Time, error)
	Set(t time.Time) error
}

// PowerController starts and halts the timekeeping oscillator.
type PowerController interface {
	StartClock() error
	HaltClock() error
	IsRunning() (bool, error)
}

// SquareWaver controls a square wave / static output pin.
type SquareWaver interface {
	StartSquareWave(freq SquareWaveFrequency) error
	EnableSquareWave() error
	DisableSquareWave() error
	SetSquareWaveFrequency(freq SquareWaveFrequency) error
	SetOutput(high bool) error
}

// NVRAM reads and writes battery-backed scratch memory.
type NVRAM interface {
	ReadNVRAM(offset uint8, buf []byte) error
	WriteNVRAM(offset uint8, data []byte) error
	NVRAMSize() uint8
}

var (
	_ Clock           = (*Device)(nil)
	_ PowerController = (*Device)(nil)
	_ SquareWaver     = (*Device)(nil)
	_ NVRAM           = (*Device)(nil)
)
