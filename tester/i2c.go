// Package tester provides a simulated I2C device that drivers can be tested
// against without hardware present.
package tester

// Failer is the subset of testing.TB the simulated devices need.
type Failer interface {
	Fatalf(format string, args ...interface{})
}

// I2CDevice simulates a single device on an I2C bus: 256 eight-bit registers
// behind an auto-incrementing register pointer, the addressing model used by
// most register-style I2C chips. It implements drivers.I2C.
type I2CDevice struct {
	c Failer
	// Addr is the device's bus address.
	Addr uint8
	// Registers holds the device's registers. Tests may preload or inspect
	// them freely.
	Registers [256]uint8
	// Err, when non-nil, is returned from every bus method, simulating a
	// failing bus.
	Err error
	// Reads and Writes count completed bus transactions that transferred
	// register contents in the respective direction.
	Reads  int
	Writes int
}

// NewI2CDevice returns a new simulated device listening on the given bus
// address.
func NewI2CDevice(c Failer, addr uint8) *I2CDevice {
	return &I2CDevice{
		c:    c,
		Addr: addr,
	}
}

// ReadRegister implements drivers.I2C.
func (d *I2CDevice) ReadRegister(addr uint8, r uint8, buf []byte) error {
	d.assertAddr(uint16(addr))
	if d.Err != nil {
		return d.Err
	}
	for i := range buf {
		buf[i] = d.Registers[int(r)+i]
	}
	d.Reads++
	return nil
}

// WriteRegister implements drivers.I2C.
func (d *I2CDevice) WriteRegister(addr uint8, r uint8, buf []byte) error {
	d.assertAddr(uint16(addr))
	if d.Err != nil {
		return d.Err
	}
	for i, b := range buf {
		d.Registers[int(r)+i] = b
	}
	d.Writes++
	return nil
}

// Tx implements drivers.I2C as a raw transaction: w[0] sets the register
// pointer, w[1:] is written with auto-increment, then r is filled starting
// at the pointer.
func (d *I2CDevice) Tx(addr uint16, w, r []byte) error {
	d.assertAddr(addr)
	if d.Err != nil {
		return d.Err
	}
	ptr := 0
	if len(w) > 0 {
		ptr = int(w[0])
		for i, b := range w[1:] {
			d.Registers[ptr+i] = b
		}
		if len(w) > 1 {
			d.Writes++
		}
	}
	if len(r) > 0 {
		for i := range r {
			r[i] = d.Registers[ptr+i]
		}
		d.Reads++
	}
	return nil
}

func (d *I2CDevice) assertAddr(addr uint16) {
	if addr != uint16(d.Addr) {
		d.c.Fatalf("unexpected I2C address %#x (device is at %#x)", addr, d.Addr)
	}
}
