package ds1307

import (
	"time"
)

// Now reads the current date and time. All seven time registers are
// transferred in a single burst read so the value cannot tear across a
// clock tick.
func (d *Device) Now() (time.Time, error) {
	buf := [7]byte{}
	if err := d.readRegisters(Seconds, buf[:]); err != nil {
		return time.Time{}, err
	}

	second := bcdToDec(buf[0] &^ chBit)
	minute := bcdToDec(buf[1])
	hour := decodeHours(buf[2])
	// buf[3] is the weekday register. It is deliberately not used: the
	// stored weekday can drift out of sync with the date, so the returned
	// time derives its weekday from the date alone.
	day := bcdToDec(buf[4])
	month := bcdToDec(buf[5])
	year := 2000 + bcdToDec(buf[6])

	if second > 59 || minute > 59 || hour > 23 ||
		day < 1 || day > 31 || month < 1 || month > 12 {
		return time.Time{}, ErrInvalidDateTime
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	// time.Date normalizes instead of failing (April 31 becomes May 1), so a
	// shifted day or month means the registers held a date that doesn't exist.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, ErrInvalidDateTime
	}
	return t, nil
}

// Set sets the date and time. The chip stores only two year digits, so t
// must fall between 2000 and 2099. Writing always selects 24-hour mode and
// clears the clock halt flag, so a halted clock starts running.
func (d *Device) Set(t time.Time) error {
	if t.Year() < 2000 || t.Year() > 2099 {
		return ErrInvalidDateTime
	}

	buf := [8]byte{
		Seconds, // start address for the burst write
		decToBcd(t.Second()) &^ chBit,
		decToBcd(t.Minute()),
		decToBcd(t.Hour()) &^ mode12Hr,
		decToBcd(int(t.Weekday()) + 1), // 1 = Sunday ... 7 = Saturday
		decToBcd(t.Day()),
		decToBcd(int(t.Month())),
		decToBcd(t.Year() - 2000),
	}
	return d.writeBytes(buf[:])
}

// decodeHours converts the raw hours register to 24-hour numbering. Bit 6
// selects 12-hour mode; there bit 5 is the PM flag and the low five bits
// hold 1 through 12.
func decodeHours(raw uint8) int {
	if raw&mode12Hr == 0 {
		return bcdToDec(raw & 0b0011_1111)
	}
	hr := bcdToDec(raw & 0b0001_1111)
	pm := raw&pmBit != 0
	switch {
	case pm && hr != 12:
		return hr + 12
	case !pm && hr == 12:
		return 0
	default:
		return hr
	}
}
