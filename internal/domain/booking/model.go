package booking

import (
	"errors"
	"fmt"
)

// Gender constants.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Channel constants. A booking arrives either through the club's mobile
// app ("Yes") or directly at the front desk ("No").
const (
	ChannelApp    = "Yes"
	ChannelDirect = "No"
)

// Court count and season length for the synthetic dataset.
const (
	CourtCount = 4
	SeasonDays = 90
)

// Base prices in MXN per channel.
const (
	PriceApp    = 2400.0
	PriceDirect = 3000.0
)

// Slots is the canonical ordered set of bookable start times.
var Slots = []string{"8:00 AM", "10:00 AM", "12:00 PM", "2:00 PM", "4:00 PM", "6:00 PM", "7:00 PM", "8:00 PM"}

// SlotHour maps a slot label to its 24-hour start hour.
var SlotHour = map[string]float64{
	"8:00 AM":  8,
	"10:00 AM": 10,
	"12:00 PM": 12,
	"2:00 PM":  14,
	"4:00 PM":  16,
	"6:00 PM":  18,
	"7:00 PM":  19,
	"8:00 PM":  20,
}

// Durations lists the valid booking lengths in hours.
var Durations = []float64{1.0, 1.5, 2.0, 2.5}

// DayNames indexes weekday names by (dayOfYear-1) mod 7.
var DayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Domain errors.
var (
	ErrEmptyName       = errors.New("player name cannot be empty")
	ErrInvalidGender   = errors.New("gender must be Male or Female")
	ErrInvalidChannel  = errors.New("application must be Yes or No")
	ErrInvalidCourt    = errors.New("court must be between 1 and 4")
	ErrInvalidSlot     = errors.New("start time must be one of the named slots")
	ErrInvalidDuration = errors.New("duration must be 1.0, 1.5, 2.0 or 2.5 hours")
	ErrInvalidDay      = errors.New("day of year must be between 1 and 90")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
)

// Record is one synthetic court reservation. Records are immutable once
// generated: filtering produces new derived views, never mutates the set.
type Record struct {
	ID          string  `json:"id"`
	DayOfYear   int     `json:"dayOfYear"` // 1..90 within the synthetic season
	Date        string  `json:"date"`      // e.g. "14-Feb"
	Day         string  `json:"day"`       // weekday name derived from DayOfYear
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Duration    float64 `json:"duration"` // hours
	Name        string  `json:"name"`
	Gender      string  `json:"gender"`
	Application string  `json:"application"` // Yes = app booking, No = direct
	Court       int     `json:"court"`
	Price       float64 `json:"price"` // MXN
}

// Validate checks the record invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (r *Record) Validate() error {
	if r.Name == "" {
		return ErrEmptyName
	}
	if r.Gender != GenderMale && r.Gender != GenderFemale {
		return ErrInvalidGender
	}
	if r.Application != ChannelApp && r.Application != ChannelDirect {
		return ErrInvalidChannel
	}
	if r.Court < 1 || r.Court > CourtCount {
		return ErrInvalidCourt
	}
	if _, ok := SlotHour[r.StartTime]; !ok {
		return ErrInvalidSlot
	}
	if !validDuration(r.Duration) {
		return ErrInvalidDuration
	}
	if r.DayOfYear < 1 || r.DayOfYear > SeasonDays {
		return ErrInvalidDay
	}
	if r.Price <= 0 {
		return ErrInvalidPrice
	}
	if r.Day != DayName(r.DayOfYear) {
		return fmt.Errorf("day %q does not match day of year %d", r.Day, r.DayOfYear)
	}
	if r.Date != DateLabel(r.DayOfYear) {
		return fmt.Errorf("date %q does not match day of year %d", r.Date, r.DayOfYear)
	}
	if r.EndTime != EndTimeLabel(r.StartTime, r.Duration) {
		return fmt.Errorf("end time %q does not match %s + %.1fh", r.EndTime, r.StartTime, r.Duration)
	}
	return nil
}

func validDuration(d float64) bool {
	for _, v := range Durations {
		if v == d {
			return true
		}
	}
	return false
}

// DayName returns the weekday name for a season day via (d-1) mod 7.
// PRE: dayOfYear is in [1, SeasonDays]
// POST: returns one of DayNames
func DayName(dayOfYear int) string {
	return DayNames[(dayOfYear-1)%7]
}

// IsWeekend reports whether a season day falls on Saturday or Sunday.
func IsWeekend(dayOfYear int) bool {
	idx := (dayOfYear - 1) % 7
	return idx == 5 || idx == 6
}

// DateLabel maps a season day onto the three fixed synthetic months
// (31, 28, 31 days), e.g. 1 -> "1-Jan", 59 -> "28-Feb", 60 -> "1-Mar".
// PRE: dayOfYear is in [1, SeasonDays]
// POST: returns a "day-Mon" calendar label
func DateLabel(dayOfYear int) string {
	switch {
	case dayOfYear <= 31:
		return fmt.Sprintf("%d-Jan", dayOfYear)
	case dayOfYear <= 59:
		return fmt.Sprintf("%d-Feb", dayOfYear-31)
	default:
		return fmt.Sprintf("%d-Mar", dayOfYear-59)
	}
}

// EndTimeLabel formats startTime advanced by duration hours as a 12-hour
// label, e.g. ("6:00 PM", 2.0) -> "8:00 PM", ("8:00 AM", 1.5) -> "9:30 AM".
// PRE: startTime is a valid slot, duration is a valid booking length
// POST: returns a clean "h:mm AM/PM" label
func EndTimeLabel(startTime string, duration float64) string {
	end := SlotHour[startTime] + duration

	hour := int(end)
	minutes := "00"
	if end != float64(hour) {
		minutes = "30"
	}

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	if hour > 12 {
		hour -= 12
	}
	return fmt.Sprintf("%d:%s %s", hour, minutes, meridiem)
}
