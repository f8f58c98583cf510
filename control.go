package ds1307

// StartClock starts (or resumes) the oscillator by clearing the clock halt
// flag. Idempotent: when the clock is already running, only a read is issued.
func (d *Device) StartClock() error {
	return d.clearBits(Seconds, chBit)
}

// HaltClock stops the oscillator, freezing the time registers until
// StartClock or Set. The chip ships from the factory in this state.
// Idempotent, like StartClock.
func (d *Device) HaltClock() error {
	return d.setBits(Seconds, chBit)
}

// IsRunning reports whether the oscillator is running.
func (d *Device) IsRunning() (bool, error) {
	sec, err := d.readRegister(Seconds)
	if err != nil {
		return false, err
	}
	return sec&chBit == 0, nil
}
