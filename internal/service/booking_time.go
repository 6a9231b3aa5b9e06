package service

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// BookingDateLayout is the dd-mm-yyyy layout used for booking dates.
const BookingDateLayout = "02-01-2006"

const slotSeparator = " - "

var (
	ErrInvalidBookingDate = errors.New("booking date must be a real date in dd-mm-yyyy format")
	ErrInvalidSlotLabel   = errors.New(`slot label must look like "10.00 - 11.00 AM"`)
)

type clock struct {
	hour     int
	minute   int
	meridiem string // "", "AM" or "PM"
}

func (c clock) minutes() int {
	return c.hour*60 + c.minute
}

// ParseBookingDate parses a dd-mm-yyyy date. Single digit days or months and
// impossible dates are rejected.
func ParseBookingDate(s string) (time.Time, error) {
	d, err := time.Parse(BookingDateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidBookingDate
	}
	return d, nil
}

// ResolveSlotStart returns the 24-hour start of a slot label.
//
// A side with its own AM/PM suffix uses it. When only the end carries a
// suffix, the start takes the 12-hour reading that falls before the end and
// closest to it, so "12.00 - 1.00 PM" starts at 12:00. Without any suffix the
// label is read as 24-hour time. The start must be before the end.
func ResolveSlotStart(label string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(label), slotSeparator)
	if len(parts) != 2 {
		return 0, 0, ErrInvalidSlotLabel
	}

	start, err := parseClock(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return 0, 0, err
	}

	endMinutes := to24(end).minutes()

	var startMinutes int
	switch {
	case start.meridiem != "" || end.meridiem == "":
		startMinutes = to24(start).minutes()
	default:
		if start.hour < 1 || start.hour > 12 {
			return 0, 0, ErrInvalidSlotLabel
		}
		best := -1
		for _, m := range []string{"AM", "PM"} {
			candidate := to24(clock{hour: start.hour, minute: start.minute, meridiem: m}).minutes()
			if candidate >= endMinutes {
				continue
			}
			if best < 0 || endMinutes-candidate < endMinutes-best {
				best = candidate
			}
		}
		startMinutes = best
	}

	if startMinutes < 0 || startMinutes >= endMinutes {
		return 0, 0, ErrInvalidSlotLabel
	}
	return startMinutes / 60, startMinutes % 60, nil
}

// ResolveAppointmentStart combines a slot label and a dd-mm-yyyy date into the
// absolute start of the appointment. The wall-clock time is read in loc and
// returned in UTC.
func ResolveAppointmentStart(slotLabel, bookingDate string, loc *time.Location) (time.Time, error) {
	date, err := ParseBookingDate(bookingDate)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := ResolveSlotStart(slotLabel)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc)
	return start.UTC(), nil
}

// parseClock reads "h.mm", "hh.mm" or either followed by AM/PM.
func parseClock(s string) (clock, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return clock{}, ErrInvalidSlotLabel
	}

	var c clock
	if len(fields) == 2 {
		c.meridiem = strings.ToUpper(fields[1])
		if c.meridiem != "AM" && c.meridiem != "PM" {
			return clock{}, ErrInvalidSlotLabel
		}
	}

	hm := strings.Split(fields[0], ".")
	if len(hm) != 2 || len(hm[0]) < 1 || len(hm[0]) > 2 || len(hm[1]) != 2 {
		return clock{}, ErrInvalidSlotLabel
	}
	hour, err := atoiDigits(hm[0])
	if err != nil {
		return clock{}, ErrInvalidSlotLabel
	}
	minute, err := atoiDigits(hm[1])
	if err != nil || minute > 59 {
		return clock{}, ErrInvalidSlotLabel
	}

	if c.meridiem != "" {
		if hour < 1 || hour > 12 {
			return clock{}, ErrInvalidSlotLabel
		}
	} else if hour > 23 {
		return clock{}, ErrInvalidSlotLabel
	}

	c.hour = hour
	c.minute = minute
	return c, nil
}

// to24 converts a 12-hour clock to 24-hour form; clocks without a meridiem
// are already 24-hour.
func to24(c clock) clock {
	switch c.meridiem {
	case "AM":
		c.hour %= 12
	case "PM":
		c.hour = c.hour%12 + 12
	}
	c.meridiem = ""
	return c
}

func atoiDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}
