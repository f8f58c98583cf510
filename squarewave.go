package ds1307

// SquareWaveFrequency selects the rate of the square wave on the SQW/OUT
// pin. The DS1307 supports exactly four rates.
type SquareWaveFrequency uint8

const (
	Hz1 SquareWaveFrequency = iota
	Hz4096
	Hz8192
	Hz32768
)

// rateBits maps a frequency to the RS field of the control register.
func rateBits(freq SquareWaveFrequency) (uint8, error) {
	switch freq {
	case Hz1:
		return 0b00, nil
	case Hz4096:
		return 0b01, nil
	case Hz8192:
		return 0b10, nil
	case Hz32768:
		return 0b11, nil
	}
	return 0, ErrUnsupportedFrequency
}

// StartSquareWave enables the square wave output at the given frequency,
// replacing any previously selected rate. The static level configured with
// SetOutput is superseded while the square wave runs.
func (d *Device) StartSquareWave(freq SquareWaveFrequency) error {
	rs, err := rateBits(freq)
	if err != nil {
		return err
	}
	cur, err := d.readRegister(Control)
	if err != nil {
		return err
	}
	next := cur&^rsMask | rs
	next |= sqweBit
	next &^= outBit
	if next != cur {
		return d.writeRegister(Control, next)
	}
	return nil
}

// EnableSquareWave turns the square wave output on at whatever frequency is
// currently selected.
func (d *Device) EnableSquareWave() error {
	cur, err := d.readRegister(Control)
	if err != nil {
		return err
	}
	next := cur | sqweBit
	next &^= outBit
	if next != cur {
		return d.writeRegister(Control, next)
	}
	return nil
}

// DisableSquareWave turns the square wave output off, leaving the frequency
// selection alone. The pin falls back to the static level configured with
// SetOutput.
func (d *Device) DisableSquareWave() error {
	return d.clearBits(Control, sqweBit)
}

// SetSquareWaveFrequency changes the output frequency without enabling or
// disabling the square wave.
func (d *Device) SetSquareWaveFrequency(freq SquareWaveFrequency) error {
	rs, err := rateBits(freq)
	if err != nil {
		return err
	}
	cur, err := d.readRegister(Control)
	if err != nil {
		return err
	}
	next := cur&^rsMask | rs
	if next != cur {
		return d.writeRegister(Control, next)
	}
	return nil
}

// SetOutput disables the square wave and drives the SQW/OUT pin to a static
// high or low level. The pin is open drain, so "high" needs an external
// pullup to show on a scope.
func (d *Device) SetOutput(high bool) error {
	cur, err := d.readRegister(Control)
	if err != nil {
		return err
	}
	next := cur &^ sqweBit
	if high {
		next |= outBit
	} else {
		next &^= outBit
	}
	if next != cur {
		return d.writeRegister(Control, next)
	}
	return nil
}
