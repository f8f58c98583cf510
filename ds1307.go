// Package ds1307 implements a driver for the DS1307 Real-Time Clock (RTC):
// reading and setting the time, halting and resuming the oscillator, driving
// the SQW/OUT pin, and the 56 bytes of battery-backed NVRAM. The chip has no
// alarm or interrupt support to drive.
//
// Datasheet: https://datasheets.maximintegrated.com/en/ds/DS1307.pdf
package ds1307

import (
	"tinygo.org/x/drivers"
)

type Device struct {
	bus     drivers.I2C
	Address uint8
}

// New creates a new DS1307 driver on the provided preconfigured I2C bus. The
// chip only supports 100 kHz. The driver assumes it has the device to itself
// and does no locking; wrap the bus if it has to be shared across goroutines.
func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// ReleaseBus returns the underlying bus handle so it can be reused once the
// driver is no longer needed. The driver keeps no state besides the handle,
// so there is nothing to tear down.
func (d *Device) ReleaseBus() drivers.I2C {
	return d.bus
}

func (d *Device) readRegister(reg uint8) (uint8, error) {
	buf := [1]byte{}
	if err := d.bus.ReadRegister(d.Address, reg, buf[:]); err != nil {
		return 0, &BusError{err}
	}
	return buf[0], nil
}

func (d *Device) writeRegister(reg, value uint8) error {
	buf := [1]byte{value}
	if err := d.bus.WriteRegister(d.Address, reg, buf[:]); err != nil {
		return &BusError{err}
	}
	return nil
}

// readRegisters fills buf starting at reg. The device auto-increments its
// register pointer, so the whole run is transferred in one bus transaction.
func (d *Device) readRegisters(reg uint8, buf []byte) error {
	if err := d.bus.ReadRegister(d.Address, reg, buf); err != nil {
		return &BusError{err}
	}
	return nil
}

// writeBytes issues one raw write transaction. data[0] must be the start
// register address, data[1:] the payload.
func (d *Device) writeBytes(data []byte) error {
	if err := d.bus.Tx(uint16(d.Address), data, nil); err != nil {
		return &BusError{err}
	}
	return nil
}

// setBits sets the masked bits of reg, leaving the rest alone. The write is
// skipped when every masked bit is already set, so a call costs one read and
// at most one write.
func (d *Device) setBits(reg, mask uint8) error {
	cur, err := d.readRegister(reg)
	if err != nil {
		return err
	}
	if next := cur | mask; next != cur {
		return d.writeRegister(reg, next)
	}
	return nil
}

// clearBits clears the masked bits of reg. Same traffic bound as setBits.
func (d *Device) clearBits(reg, mask uint8) error {
	cur, err := d.readRegister(reg)
	if err != nil {
		return err
	}
	if next := cur &^ mask; next != cur {
		return d.writeRegister(reg, next)
	}
	return nil
}

// decToBcd converts int to BCD
func decToBcd(dec int) uint8 {
	return uint8(dec + 6*(dec/10))
}

// bcdToDec converts BCD to int
func bcdToDec(bcd uint8) int {
	return int(bcd - 6*(bcd>>4))
}
