package projections

import (
	"context"
	"strconv"

	"datao/internal/domain/booking"
)

// BookingStatsSeasonStore defines the season store interface needed by the
// booking stats projection.
type BookingStatsSeasonStore interface {
	List(ctx context.Context) ([]booking.Record, error)
}

// FilterAll is the sentinel meaning "no restriction" for a criterion.
const FilterAll = "all"

// Channel display labels used in the channel breakdown.
const (
	LabelAppBooking    = "App Booking"
	LabelDirectBooking = "Direct Booking"
)

// Criteria selects a subset of the season. Zero values mean "everything":
// empty selectors behave like FilterAll and WindowDays 0 disables the
// trailing window. Unrecognized selector values match nothing.
type Criteria struct {
	Court        string // FilterAll or "1".."4"
	Gender       string // FilterAll, Male or Female
	Channel      string // FilterAll, Yes or No
	WindowDays   int    // trailing window length; 0 = whole season
	ReferenceDay int    // window anchor; 0 = last day of the season
}

// DayRevenue is revenue grouped by weekday name.
type DayRevenue struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

// SlotCount is booking count grouped by start-time slot.
type SlotCount struct {
	Time  string `json:"time"`
	Count int    `json:"count"`
}

// GenderCount is booking count grouped by player gender.
type GenderCount struct {
	Gender string `json:"gender"`
	Count  int    `json:"count"`
}

// ChannelStats is bookings and revenue grouped by booking channel.
type ChannelStats struct {
	Type     string  `json:"type"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// CourtStats is bookings, hours and revenue grouped by court.
type CourtStats struct {
	Court    int     `json:"court"`
	Bookings int     `json:"bookings"`
	Hours    float64 `json:"hours"`
	Revenue  float64 `json:"revenue"`
}

// BookingStatsResult carries the output of the booking stats projection.
// Every grouped table sums back to its corresponding KPI.
type BookingStatsResult struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalBookings int     `json:"totalBookings"`
	TotalHours    float64 `json:"totalHours"`
	UniquePlayers int     `json:"uniquePlayers"`
	AvgPrice      float64 `json:"avgPrice"`

	RevenueByDay        []DayRevenue   `json:"revenueByDay"`
	BookingsByTimeSlot  []SlotCount    `json:"bookingsByTimeSlot"`
	GenderDistribution  []GenderCount  `json:"genderDistribution"`
	ChannelDistribution []ChannelStats `json:"channelDistribution"`
	CourtUtilization    []CourtStats   `json:"courtUtilization"`
}

// GetBookingStatsQuery carries input for the booking stats projection.
type GetBookingStatsQuery struct {
	Criteria Criteria
}

// GetBookingStatsDeps holds dependencies for the booking stats projection.
type GetBookingStatsDeps struct {
	SeasonStore BookingStatsSeasonStore
}

// QueryGetBookingStats filters the season by the given criteria and derives
// the dashboard aggregates.
// PRE: deps.SeasonStore is non-nil
// POST: result is a pure function of (season, criteria); empty selections
// yield zeroed KPIs and empty tables, never NaN
func QueryGetBookingStats(ctx context.Context, query GetBookingStatsQuery, deps GetBookingStatsDeps) (BookingStatsResult, error) {
	records, err := deps.SeasonStore.List(ctx)
	if err != nil {
		return BookingStatsResult{}, err
	}
	return AggregateBookings(FilterBookings(records, query.Criteria)), nil
}

// FilterBookings returns the stable subsequence of records matching every
// non-"all" criterion. When a window is set, a record passes iff its day of
// year lies in [reference-window, reference] inclusive. The reference day
// is a fixed season anchor, not the wall clock.
func FilterBookings(records []booking.Record, c Criteria) []booking.Record {
	ref := c.ReferenceDay
	if ref == 0 {
		ref = booking.SeasonDays
	}

	var out []booking.Record
	for _, r := range records {
		if !selectorMatches(c.Court, strconv.Itoa(r.Court)) {
			continue
		}
		if !selectorMatches(c.Gender, r.Gender) {
			continue
		}
		if !selectorMatches(c.Channel, r.Application) {
			continue
		}
		if c.WindowDays > 0 && (r.DayOfYear < ref-c.WindowDays || r.DayOfYear > ref) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func selectorMatches(selector, value string) bool {
	return selector == "" || selector == FilterAll || selector == value
}

// AggregateBookings reduces a filtered record set into the dashboard view.
// Grouped tables keep first-seen insertion order except BookingsByTimeSlot,
// which is re-sorted to the canonical slot ordering.
func AggregateBookings(records []booking.Record) BookingStatsResult {
	result := BookingStatsResult{}

	players := map[string]bool{}
	dayIdx := map[string]int{}
	slotCounts := map[string]int{}
	genderIdx := map[string]int{}
	channelIdx := map[string]int{}
	courtIdx := map[int]int{}

	for _, r := range records {
		result.TotalRevenue += r.Price
		result.TotalBookings++
		result.TotalHours += r.Duration
		players[r.Name] = true

		if i, ok := dayIdx[r.Day]; ok {
			result.RevenueByDay[i].Revenue += r.Price
		} else {
			dayIdx[r.Day] = len(result.RevenueByDay)
			result.RevenueByDay = append(result.RevenueByDay, DayRevenue{Day: r.Day, Revenue: r.Price})
		}

		slotCounts[r.StartTime]++

		if i, ok := genderIdx[r.Gender]; ok {
			result.GenderDistribution[i].Count++
		} else {
			genderIdx[r.Gender] = len(result.GenderDistribution)
			result.GenderDistribution = append(result.GenderDistribution, GenderCount{Gender: r.Gender, Count: 1})
		}

		label := channelLabel(r.Application)
		if i, ok := channelIdx[label]; ok {
			result.ChannelDistribution[i].Bookings++
			result.ChannelDistribution[i].Revenue += r.Price
		} else {
			channelIdx[label] = len(result.ChannelDistribution)
			result.ChannelDistribution = append(result.ChannelDistribution, ChannelStats{Type: label, Bookings: 1, Revenue: r.Price})
		}

		if i, ok := courtIdx[r.Court]; ok {
			result.CourtUtilization[i].Bookings++
			result.CourtUtilization[i].Hours += r.Duration
			result.CourtUtilization[i].Revenue += r.Price
		} else {
			courtIdx[r.Court] = len(result.CourtUtilization)
			result.CourtUtilization = append(result.CourtUtilization, CourtStats{Court: r.Court, Bookings: 1, Hours: r.Duration, Revenue: r.Price})
		}
	}

	result.UniquePlayers = len(players)
	if result.TotalBookings > 0 {
		result.AvgPrice = result.TotalRevenue / float64(result.TotalBookings)
	}

	for _, slot := range booking.Slots {
		if n, ok := slotCounts[slot]; ok {
			result.BookingsByTimeSlot = append(result.BookingsByTimeSlot, SlotCount{Time: slot, Count: n})
		}
	}

	sortCourtsAscending(result.CourtUtilization)
	return result
}

func channelLabel(application string) string {
	if application == booking.ChannelApp {
		return LabelAppBooking
	}
	return LabelDirectBooking
}

// sortCourtsAscending orders the court table by court number. With at most
// four courts an insertion sort is plenty.
func sortCourtsAscending(courts []CourtStats) {
	for i := 1; i < len(courts); i++ {
		for j := i; j > 0 && courts[j].Court < courts[j-1].Court; j-- {
			courts[j], courts[j-1] = courts[j-1], courts[j]
		}
	}
}
