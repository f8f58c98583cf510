package ds1307

// ReadNVRAM fills buf from the battery-backed scratch memory starting at
// offset. An empty buf succeeds without touching the bus. A read that would
// run past the end of the 56-byte region fails with ErrNVRAMOutOfBounds
// before any bus traffic.
func (d *Device) ReadNVRAM(offset uint8, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if err := checkNVRAMBounds(offset, len(buf)); err != nil {
		return err
	}
	return d.readRegisters(nvramStart+offset, buf)
}

// WriteNVRAM writes data to the scratch memory starting at offset, as a
// single burst transaction. Same no-op and bounds rules as ReadNVRAM.
func (d *Device) WriteNVRAM(offset uint8, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := checkNVRAMBounds(offset, len(data)); err != nil {
		return err
	}
	// target address byte plus at most the whole region
	var buf [1 + nvramSize]byte
	buf[0] = nvramStart + offset
	n := copy(buf[1:], data)
	return d.writeBytes(buf[:n+1])
}

// NVRAMSize returns the size of the scratch memory in bytes (56).
func (d *Device) NVRAMSize() uint8 {
	return nvramSize
}

func checkNVRAMBounds(offset uint8, n int) error {
	if offset >= nvramSize || n > int(nvramSize-offset) {
		return ErrNVRAMOutOfBounds
	}
	return nil
}
