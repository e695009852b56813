package ds3231

import "ds3231-go/x/mathx"

// Alarm1Mode selects which time fields alarm 1 must match. The chip
// expresses the mode as one match-disable bit per alarm register plus a
// day/date select bit; the codec derives those bits from the mode and the
// populated fields, and recovers the mode from them on read.
type Alarm1Mode uint8

const (
	// Alarm1EverySecond triggers once per second.
	Alarm1EverySecond Alarm1Mode = iota
	// Alarm1MatchSeconds triggers when the seconds match.
	Alarm1MatchSeconds
	// Alarm1MatchMinutesSeconds triggers when minutes and seconds match.
	Alarm1MatchMinutesSeconds
	// Alarm1MatchTime triggers daily when hours, minutes and seconds match.
	Alarm1MatchTime
	// Alarm1MatchTimeOnDate additionally matches the date of month.
	Alarm1MatchTimeOnDate
	// Alarm1MatchTimeOnDay additionally matches the day of week.
	Alarm1MatchTimeOnDay
)

// Alarm1 is a match specification for the chip's first alarm. Hours are the
// semantic 0..23 value; the active TimeFormat decides the wire encoding.
// Day (of week, Sunday=1) and Date (of month) are mutually exclusive.
type Alarm1 struct {
	Mode   Alarm1Mode
	Second uint8 // 0..59
	Minute uint8 // 0..59
	Hour   uint8 // 0..23
	Day    uint8 // 1..7, Alarm1MatchTimeOnDay only
	Date   uint8 // 1..31, Alarm1MatchTimeOnDate only
}

// Validate rejects unknown modes, out-of-range fields, and a populated day
// of week together with a populated date of month.
func (a Alarm1) Validate() error {
	if a.Day != 0 && a.Date != 0 {
		return ErrDayDateConflict
	}
	switch a.Mode {
	case Alarm1EverySecond:
		return nil
	case Alarm1MatchSeconds:
		return validAlarmTime(a.Second, 0, 0)
	case Alarm1MatchMinutesSeconds:
		return validAlarmTime(a.Second, a.Minute, 0)
	case Alarm1MatchTime:
		return validAlarmTime(a.Second, a.Minute, a.Hour)
	case Alarm1MatchTimeOnDate:
		if err := validAlarmTime(a.Second, a.Minute, a.Hour); err != nil {
			return err
		}
		if !mathx.Between(a.Date, 1, 31) {
			return ErrDateRange
		}
		return nil
	case Alarm1MatchTimeOnDay:
		if err := validAlarmTime(a.Second, a.Minute, a.Hour); err != nil {
			return err
		}
		if !mathx.Between(a.Day, 1, 7) {
			return ErrDayRange
		}
		return nil
	default:
		return ErrAlarmMode
	}
}

// Alarm2Mode selects which time fields alarm 2 must match. Alarm 2 has no
// seconds register and fires at second zero of the matching minute.
type Alarm2Mode uint8

const (
	// Alarm2EveryMinute triggers once per minute.
	Alarm2EveryMinute Alarm2Mode = iota
	// Alarm2MatchMinutes triggers when the minutes match.
	Alarm2MatchMinutes
	// Alarm2MatchTime triggers daily when hours and minutes match.
	Alarm2MatchTime
	// Alarm2MatchTimeOnDate additionally matches the date of month.
	Alarm2MatchTimeOnDate
	// Alarm2MatchTimeOnDay additionally matches the day of week.
	Alarm2MatchTimeOnDay
)

// Alarm2 is a match specification for the chip's second alarm.
type Alarm2 struct {
	Mode   Alarm2Mode
	Minute uint8 // 0..59
	Hour   uint8 // 0..23
	Day    uint8 // 1..7, Alarm2MatchTimeOnDay only
	Date   uint8 // 1..31, Alarm2MatchTimeOnDate only
}

// Validate rejects unknown modes, out-of-range fields, and a populated day
// of week together with a populated date of month.
func (a Alarm2) Validate() error {
	if a.Day != 0 && a.Date != 0 {
		return ErrDayDateConflict
	}
	switch a.Mode {
	case Alarm2EveryMinute:
		return nil
	case Alarm2MatchMinutes:
		return validAlarmTime(0, a.Minute, 0)
	case Alarm2MatchTime:
		return validAlarmTime(0, a.Minute, a.Hour)
	case Alarm2MatchTimeOnDate:
		if err := validAlarmTime(0, a.Minute, a.Hour); err != nil {
			return err
		}
		if !mathx.Between(a.Date, 1, 31) {
			return ErrDateRange
		}
		return nil
	case Alarm2MatchTimeOnDay:
		if err := validAlarmTime(0, a.Minute, a.Hour); err != nil {
			return err
		}
		if !mathx.Between(a.Day, 1, 7) {
			return ErrDayRange
		}
		return nil
	default:
		return ErrAlarmMode
	}
}

func validAlarmTime(sec, min, hour uint8) error {
	if sec > 59 || min > 59 || hour > 23 {
		return ErrTimeRange
	}
	return nil
}

// encodeAlarm1 fills the four alarm 1 registers. Registers the mode does
// not match carry only their match-disable bit.
func encodeAlarm1(a Alarm1, format TimeFormat, buf *[4]byte) error {
	if err := a.Validate(); err != nil {
		return err
	}
	buf[0], buf[1], buf[2], buf[3] = alarmMask, alarmMask, alarmMask, alarmMask
	switch a.Mode {
	case Alarm1EverySecond:
	case Alarm1MatchSeconds:
		buf[0], _ = bcdEncode(a.Second)
	case Alarm1MatchMinutesSeconds:
		buf[0], _ = bcdEncode(a.Second)
		buf[1], _ = bcdEncode(a.Minute)
	case Alarm1MatchTime:
		buf[0], _ = bcdEncode(a.Second)
		buf[1], _ = bcdEncode(a.Minute)
		buf[2] = encodeHours(int(a.Hour), format)
	case Alarm1MatchTimeOnDate:
		buf[0], _ = bcdEncode(a.Second)
		buf[1], _ = bcdEncode(a.Minute)
		buf[2] = encodeHours(int(a.Hour), format)
		buf[3], _ = bcdEncode(a.Date)
	case Alarm1MatchTimeOnDay:
		buf[0], _ = bcdEncode(a.Second)
		buf[1], _ = bcdEncode(a.Minute)
		buf[2] = encodeHours(int(a.Hour), format)
		buf[3] = alarmDaySelect | a.Day
	}
	return nil
}

// decodeAlarm1 recovers the match specification from the four alarm 1
// registers. An unrecognized match-disable bit pattern or an out-of-range
// field is reported as a stored-value error, not a transport one.
func decodeAlarm1(buf *[4]byte) (Alarm1, error) {
	m1 := buf[0]&alarmMask != 0
	m2 := buf[1]&alarmMask != 0
	m3 := buf[2]&alarmMask != 0
	m4 := buf[3]&alarmMask != 0

	var a Alarm1
	switch {
	case m1 && m2 && m3 && m4:
		a.Mode = Alarm1EverySecond
		return a, nil
	case !m1 && m2 && m3 && m4:
		a.Mode = Alarm1MatchSeconds
	case !m1 && !m2 && m3 && m4:
		a.Mode = Alarm1MatchMinutesSeconds
	case !m1 && !m2 && !m3 && m4:
		a.Mode = Alarm1MatchTime
	case !m1 && !m2 && !m3 && !m4:
		if buf[3]&alarmDaySelect != 0 {
			a.Mode = Alarm1MatchTimeOnDay
		} else {
			a.Mode = Alarm1MatchTimeOnDate
		}
	default:
		return Alarm1{}, ErrStoredAlarm
	}

	a.Second = bcdDecode(buf[0] & 0x7F)
	if a.Mode >= Alarm1MatchMinutesSeconds {
		a.Minute = bcdDecode(buf[1] & 0x7F)
	}
	if a.Mode >= Alarm1MatchTime {
		h, err := decodeHours(buf[2] &^ alarmMask)
		if err != nil {
			return Alarm1{}, ErrStoredAlarm
		}
		a.Hour = uint8(h)
	}
	switch a.Mode {
	case Alarm1MatchTimeOnDate:
		a.Date = bcdDecode(buf[3] & 0x3F)
	case Alarm1MatchTimeOnDay:
		a.Day = buf[3] & 0x0F
	}
	if a.Validate() != nil {
		return Alarm1{}, ErrStoredAlarm
	}
	return a, nil
}

// encodeAlarm2 fills the three alarm 2 registers.
func encodeAlarm2(a Alarm2, format TimeFormat, buf *[3]byte) error {
	if err := a.Validate(); err != nil {
		return err
	}
	buf[0], buf[1], buf[2] = alarmMask, alarmMask, alarmMask
	switch a.Mode {
	case Alarm2EveryMinute:
	case Alarm2MatchMinutes:
		buf[0], _ = bcdEncode(a.Minute)
	case Alarm2MatchTime:
		buf[0], _ = bcdEncode(a.Minute)
		buf[1] = encodeHours(int(a.Hour), format)
	case Alarm2MatchTimeOnDate:
		buf[0], _ = bcdEncode(a.Minute)
		buf[1] = encodeHours(int(a.Hour), format)
		buf[2], _ = bcdEncode(a.Date)
	case Alarm2MatchTimeOnDay:
		buf[0], _ = bcdEncode(a.Minute)
		buf[1] = encodeHours(int(a.Hour), format)
		buf[2] = alarmDaySelect | a.Day
	}
	return nil
}

// decodeAlarm2 recovers the match specification from the three alarm 2
// registers.
func decodeAlarm2(buf *[3]byte) (Alarm2, error) {
	m2 := buf[0]&alarmMask != 0
	m3 := buf[1]&alarmMask != 0
	m4 := buf[2]&alarmMask != 0

	var a Alarm2
	switch {
	case m2 && m3 && m4:
		a.Mode = Alarm2EveryMinute
		return a, nil
	case !m2 && m3 && m4:
		a.Mode = Alarm2MatchMinutes
	case !m2 && !m3 && m4:
		a.Mode = Alarm2MatchTime
	case !m2 && !m3 && !m4:
		if buf[2]&alarmDaySelect != 0 {
			a.Mode = Alarm2MatchTimeOnDay
		} else {
			a.Mode = Alarm2MatchTimeOnDate
		}
	default:
		return Alarm2{}, ErrStoredAlarm
	}

	a.Minute = bcdDecode(buf[0] & 0x7F)
	if a.Mode >= Alarm2MatchTime {
		h, err := decodeHours(buf[1] &^ alarmMask)
		if err != nil {
			return Alarm2{}, ErrStoredAlarm
		}
		a.Hour = uint8(h)
	}
	switch a.Mode {
	case Alarm2MatchTimeOnDate:
		a.Date = bcdDecode(buf[2] & 0x3F)
	case Alarm2MatchTimeOnDay:
		a.Day = buf[2] & 0x0F
	}
	if a.Validate() != nil {
		return Alarm2{}, ErrStoredAlarm
	}
	return a, nil
}
