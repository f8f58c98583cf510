package ds1307

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestHaltClockIdempotent(t *testing.T) {
	c := qt.New(t)
	d, bus := setupDevice(t)
	bus.Registers[Seconds] = 0x42

	c.Assert(d.HaltClock(), qt.IsNil)
	c.Assert(bus.Reads, qt.Equals, 1)
	c.Assert(bus.Writes, qt.Equals, 1)
	c.Assert(bus.Registers[Seconds], qt.Equals, uint8(chBit|0x42))

	// second halt is a read with no write
	c.Assert(d.HaltClock(), qt.IsNil)
	c.Assert(bus.Reads, qt.Equals, 2)
	c.Assert(bus.Writes, qt.Equals, 1)
}

func TestStartClockPreservesSeconds(t *testing.T) {
	c := qt.New(t)
	d, bus := setupDevice(t)
	bus.Registers[Seconds] = chBit | 0x42

	c.Assert(d.StartClock(), qt.IsNil)
	c.Assert(bus.Registers[Seconds], qt.Equals, uint8(0x42))

	c.Assert(d.StartClock(), qt.IsNil)
	c.Assert(bus.Writes, qt.Equals, 1)
}

func TestIsRunning(t *testing.T) {
	c := qt.New(t)
	d, bus := setupDevice(t)

	running, err := d.IsRunning()
	c.Assert(err, qt.IsNil)
	c.Assert(running, qt.Equals, true)

	bus.Registers[Seconds] = chBit | 0x30
	running, err = d.IsRunning()
	c.Assert(err, qt.IsNil)
	c.Assert(running, qt.Equals, false)
}
