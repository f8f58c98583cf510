package ds1307

const (
	Address = 0x68 // I2C address for the DS1307 (fixed by the chip)

	Seconds = 0x00 // Seconds register, bit 7 is the clock halt flag
	Minutes = 0x01 // Minutes register
	Hours   = 0x02 // Hours register, bit 6 selects 12-hour mode, bit 5 is AM/PM in that mode
	Weekday = 0x03 // Day of week, 1 (Sunday) through 7 (Saturday)
	Day     = 0x04 // Day of month
	Month   = 0x05 // Month
	Year    = 0x06 // Two BCD digits, 2000 through 2099
	Control = 0x07 // SQW/OUT pin control
)

const (
	chBit    = 1 << 7 // clock halt, in Seconds
	mode12Hr = 1 << 6 // 12-hour mode select, in Hours
	pmBit    = 1 << 5 // AM/PM flag in 12-hour mode, in Hours
	outBit   = 1 << 7 // static output level, in Control
	sqweBit  = 1 << 4 // square wave enable, in Control
	rsMask   = 0b11   // rate select field, in Control

	nvramStart = 0x08 // first of the battery-backed scratch bytes (0x08-0x3F)
	nvramSize  = 56
)
