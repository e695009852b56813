package ds3231

import (
	"time"

	"ds3231-go/x/mathx"
)

// DateTime is a calendar timestamp in the chip's representable range. The
// hour is always the semantic 0..23 value; TimeFormat only changes how it
// is encoded on the wire. The day of week is derived from the date, not
// stored, and is written to the chip as Sunday=1 .. Saturday=7.
type DateTime struct {
	Year   int        // 2000..2199
	Month  time.Month // 1..12
	Day    int        // 1..31, must exist in Month/Year
	Hour   int        // 0..23
	Minute int        // 0..59
	Second int        // 0..59
}

// FromTime converts a time.Time to a DateTime in the Time's own location.
func FromTime(t time.Time) DateTime {
	return DateTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// Time converts the timestamp to a time.Time in UTC. The result is only
// meaningful for a validated DateTime.
func (dt DateTime) Time() time.Time {
	return time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, 0, time.UTC)
}

// Weekday derives the day of week from the date.
func (dt DateTime) Weekday() time.Weekday { return dt.Time().Weekday() }

// Validate checks every field range plus calendar consistency (month
// length, leap years) under proleptic-Gregorian rules.
func (dt DateTime) Validate() error {
	if !mathx.Between(dt.Year, 2000, 2199) {
		return ErrYearRange
	}
	if !mathx.Between(int(dt.Month), 1, 12) || !mathx.Between(dt.Day, 1, 31) {
		return ErrTimeRange
	}
	if !mathx.Between(dt.Hour, 0, 23) || !mathx.Between(dt.Minute, 0, 59) || !mathx.Between(dt.Second, 0, 59) {
		return ErrTimeRange
	}
	// time.Date normalizes out-of-calendar dates (Feb 30 -> Mar 1/2); a
	// changed day after the round trip means the date does not exist.
	if t := dt.Time(); t.Day() != dt.Day || t.Month() != dt.Month {
		return ErrTimeRange
	}
	return nil
}

// encodeHours packs a semantic 0..23 hour into the hours register wire
// format. In 24-hour mode the twenty-hours bit falls out of plain BCD; in
// 12-hour mode the format bit is set and the PM bit carries the half-day.
func encodeHours(hour int, format TimeFormat) byte {
	if format == TwelveHour {
		h12 := hour % 12
		if h12 == 0 {
			h12 = 12
		}
		b, _ := bcdEncode(uint8(h12))
		b |= hoursFormat12
		if hour >= 12 {
			b |= hoursPM20
		}
		return b
	}
	b, _ := bcdEncode(uint8(hour))
	return b
}

// decodeHours is the inverse of encodeHours, honoring whichever format bit
// the register carries and normalizing to 0..23 (12 AM -> 0, 12 PM -> 12).
func decodeHours(b byte) (int, error) {
	if b&hoursFormat12 != 0 {
		h12 := int(bcdDecode(b & 0x1F))
		if !mathx.Between(h12, 1, 12) {
			return 0, ErrStoredTime
		}
		h := h12 % 12
		if b&hoursPM20 != 0 {
			h += 12
		}
		return h, nil
	}
	h := int(bcdDecode(b & 0x3F))
	if h > 23 {
		return 0, ErrStoredTime
	}
	return h, nil
}

// encodeDateTime fills the seven time registers (seconds..year). The caller
// gets a fully validated buffer or an error before any byte leaves the host.
func encodeDateTime(dt DateTime, format TimeFormat, buf *[7]byte) error {
	if err := dt.Validate(); err != nil {
		return err
	}
	sec, _ := bcdEncode(uint8(dt.Second))
	min, _ := bcdEncode(uint8(dt.Minute))
	date, _ := bcdEncode(uint8(dt.Day))
	month, _ := bcdEncode(uint8(dt.Month))
	year := dt.Year - 2000
	if year >= 100 {
		year -= 100
		month |= monthCentury
	}
	yy, _ := bcdEncode(uint8(year))

	buf[0] = sec
	buf[1] = min
	buf[2] = encodeHours(dt.Hour, format)
	buf[3] = byte(dt.Weekday()) + 1 // Sunday=1
	buf[4] = date
	buf[5] = month
	buf[6] = yy
	return nil
}

// decodeDateTime interprets the seven time registers. The stored day-of-week
// register is ignored; the weekday is implied by the date. Reserved bits are
// masked before BCD decoding.
func decodeDateTime(buf *[7]byte) (DateTime, error) {
	hour, err := decodeHours(buf[2])
	if err != nil {
		return DateTime{}, err
	}
	year := 2000 + int(bcdDecode(buf[6]))
	if buf[5]&monthCentury != 0 {
		year += 100
	}
	dt := DateTime{
		Year:   year,
		Month:  time.Month(bcdDecode(buf[5] & 0x1F)),
		Day:    int(bcdDecode(buf[4] & 0x3F)),
		Hour:   hour,
		Minute: int(bcdDecode(buf[1] & 0x7F)),
		Second: int(bcdDecode(buf[0] & 0x7F)),
	}
	if dt.Validate() != nil {
		return DateTime{}, ErrStoredTime
	}
	return dt, nil
}
