package projections

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"datao/internal/application/synthetic"
	"datao/internal/domain/booking"
)

type mockSeasonStore struct {
	records []booking.Record
	err     error
}

func (m *mockSeasonStore) List(_ context.Context) ([]booking.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func seededSeason(t *testing.T, seed int64, count int) []booking.Record {
	t.Helper()
	var n int
	return synthetic.GenerateBookings(count, synthetic.BookingsDeps{
		Rand: rand.New(rand.NewSource(seed)),
		GenerateID: func() string {
			n++
			return fmt.Sprintf("rec-%04d", n)
		},
	})
}

func TestFilterBookings(t *testing.T) {
	records := []booking.Record{
		{ID: "a", DayOfYear: 10, Court: 1, Gender: booking.GenderMale, Application: booking.ChannelApp},
		{ID: "b", DayOfYear: 45, Court: 2, Gender: booking.GenderFemale, Application: booking.ChannelDirect},
		{ID: "c", DayOfYear: 70, Court: 1, Gender: booking.GenderFemale, Application: booking.ChannelApp},
		{ID: "d", DayOfYear: 88, Court: 3, Gender: booking.GenderMale, Application: booking.ChannelApp},
	}

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []string
	}{
		{name: "zero criteria keep everything", criteria: Criteria{}, wantIDs: []string{"a", "b", "c", "d"}},
		{name: "all selectors keep everything", criteria: Criteria{Court: FilterAll, Gender: FilterAll, Channel: FilterAll}, wantIDs: []string{"a", "b", "c", "d"}},
		{name: "court selector", criteria: Criteria{Court: "1"}, wantIDs: []string{"a", "c"}},
		{name: "gender selector", criteria: Criteria{Gender: booking.GenderFemale}, wantIDs: []string{"b", "c"}},
		{name: "channel selector", criteria: Criteria{Channel: booking.ChannelDirect}, wantIDs: []string{"b"}},
		{name: "combined selectors", criteria: Criteria{Court: "1", Gender: booking.GenderFemale}, wantIDs: []string{"c"}},
		{name: "unknown court matches nothing", criteria: Criteria{Court: "9"}, wantIDs: nil},
		{name: "window anchored at season end", criteria: Criteria{WindowDays: 30}, wantIDs: []string{"c", "d"}},
		{name: "window with explicit reference day", criteria: Criteria{WindowDays: 30, ReferenceDay: 50}, wantIDs: []string{"b"}},
		{name: "window boundary is inclusive", criteria: Criteria{WindowDays: 25, ReferenceDay: 70}, wantIDs: []string{"b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBookings(records, tt.criteria)
			var gotIDs []string
			for _, r := range got {
				gotIDs = append(gotIDs, r.ID)
			}
			if !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Errorf("FilterBookings() ids = %v, want %v", gotIDs, tt.wantIDs)
			}
		})
	}
}

func TestQueryGetBookingStats_Reconciliation(t *testing.T) {
	season := seededSeason(t, 99, 1000)
	deps := GetBookingStatsDeps{SeasonStore: &mockSeasonStore{records: season}}

	result, err := QueryGetBookingStats(context.Background(), GetBookingStatsQuery{}, deps)
	if err != nil {
		t.Fatalf("QueryGetBookingStats() error = %v", err)
	}

	if result.TotalBookings != 1000 {
		t.Fatalf("TotalBookings = %d, want 1000", result.TotalBookings)
	}

	var dayRevenue float64
	for _, d := range result.RevenueByDay {
		dayRevenue += d.Revenue
	}
	if math.Abs(dayRevenue-result.TotalRevenue) > 1e-6 {
		t.Errorf("revenueByDay sums to %f, want %f", dayRevenue, result.TotalRevenue)
	}

	var slotBookings int
	for _, s := range result.BookingsByTimeSlot {
		slotBookings += s.Count
	}
	if slotBookings != result.TotalBookings {
		t.Errorf("bookingsByTimeSlot sums to %d, want %d", slotBookings, result.TotalBookings)
	}

	var genderBookings int
	for _, g := range result.GenderDistribution {
		genderBookings += g.Count
	}
	if genderBookings != result.TotalBookings {
		t.Errorf("genderDistribution sums to %d, want %d", genderBookings, result.TotalBookings)
	}

	var channelBookings int
	var channelRevenue float64
	for _, c := range result.ChannelDistribution {
		channelBookings += c.Bookings
		channelRevenue += c.Revenue
	}
	if channelBookings != result.TotalBookings {
		t.Errorf("channelDistribution bookings sum to %d, want %d", channelBookings, result.TotalBookings)
	}
	if math.Abs(channelRevenue-result.TotalRevenue) > 1e-6 {
		t.Errorf("channelDistribution revenue sums to %f, want %f", channelRevenue, result.TotalRevenue)
	}

	var courtBookings int
	var courtHours, courtRevenue float64
	for _, c := range result.CourtUtilization {
		courtBookings += c.Bookings
		courtHours += c.Hours
		courtRevenue += c.Revenue
	}
	if courtBookings != result.TotalBookings {
		t.Errorf("courtUtilization bookings sum to %d, want %d", courtBookings, result.TotalBookings)
	}
	if math.Abs(courtHours-result.TotalHours) > 1e-6 {
		t.Errorf("courtUtilization hours sum to %f, want %f", courtHours, result.TotalHours)
	}
	if math.Abs(courtRevenue-result.TotalRevenue) > 1e-6 {
		t.Errorf("courtUtilization revenue sums to %f, want %f", courtRevenue, result.TotalRevenue)
	}

	want := result.TotalRevenue / float64(result.TotalBookings)
	if math.Abs(result.AvgPrice-want) > 1e-6 {
		t.Errorf("AvgPrice = %f, want %f", result.AvgPrice, want)
	}
}

func TestQueryGetBookingStats_EmptySelection(t *testing.T) {
	season := seededSeason(t, 5, 200)
	deps := GetBookingStatsDeps{SeasonStore: &mockSeasonStore{records: season}}
	query := GetBookingStatsQuery{Criteria: Criteria{Court: "99"}}

	result, err := QueryGetBookingStats(context.Background(), query, deps)
	if err != nil {
		t.Fatalf("QueryGetBookingStats() error = %v", err)
	}

	if result.TotalBookings != 0 || result.TotalRevenue != 0 || result.TotalHours != 0 || result.UniquePlayers != 0 {
		t.Errorf("empty selection produced non-zero KPIs: %+v", result)
	}
	if result.AvgPrice != 0 || math.IsNaN(result.AvgPrice) {
		t.Errorf("AvgPrice = %f, want 0", result.AvgPrice)
	}
	if len(result.RevenueByDay) != 0 || len(result.BookingsByTimeSlot) != 0 ||
		len(result.GenderDistribution) != 0 || len(result.ChannelDistribution) != 0 ||
		len(result.CourtUtilization) != 0 {
		t.Errorf("empty selection produced non-empty tables: %+v", result)
	}
}

func TestQueryGetBookingStats_SlotOrdering(t *testing.T) {
	// Feed slots in scrambled order; the table must come back canonical.
	records := []booking.Record{
		{Name: "a", StartTime: "8:00 PM", Day: "Monday", Court: 1},
		{Name: "b", StartTime: "8:00 AM", Day: "Monday", Court: 1},
		{Name: "c", StartTime: "2:00 PM", Day: "Monday", Court: 1},
		{Name: "d", StartTime: "8:00 AM", Day: "Monday", Court: 1},
	}
	deps := GetBookingStatsDeps{SeasonStore: &mockSeasonStore{records: records}}

	result, err := QueryGetBookingStats(context.Background(), GetBookingStatsQuery{}, deps)
	if err != nil {
		t.Fatalf("QueryGetBookingStats() error = %v", err)
	}

	want := []SlotCount{
		{Time: "8:00 AM", Count: 2},
		{Time: "2:00 PM", Count: 1},
		{Time: "8:00 PM", Count: 1},
	}
	if !reflect.DeepEqual(result.BookingsByTimeSlot, want) {
		t.Errorf("BookingsByTimeSlot = %v, want %v", result.BookingsByTimeSlot, want)
	}
}

func TestQueryGetBookingStats_ChannelLabels(t *testing.T) {
	records := []booking.Record{
		{Name: "a", Application: booking.ChannelDirect, Price: 3000, Day: "Monday", StartTime: "8:00 AM", Court: 1},
		{Name: "b", Application: booking.ChannelApp, Price: 2400, Day: "Monday", StartTime: "8:00 AM", Court: 1},
	}
	deps := GetBookingStatsDeps{SeasonStore: &mockSeasonStore{records: records}}

	result, err := QueryGetBookingStats(context.Background(), GetBookingStatsQuery{}, deps)
	if err != nil {
		t.Fatalf("QueryGetBookingStats() error = %v", err)
	}

	want := []ChannelStats{
		{Type: LabelDirectBooking, Bookings: 1, Revenue: 3000},
		{Type: LabelAppBooking, Bookings: 1, Revenue: 2400},
	}
	if !reflect.DeepEqual(result.ChannelDistribution, want) {
		t.Errorf("ChannelDistribution = %v, want %v", result.ChannelDistribution, want)
	}
}

func TestQueryGetBookingStats_CourtsAscending(t *testing.T) {
	records := []booking.Record{
		{Name: "a", Court: 4, Day: "Monday", StartTime: "8:00 AM"},
		{Name: "b", Court: 2, Day: "Monday", StartTime: "8:00 AM"},
		{Name: "c", Court: 3, Day: "Monday", StartTime: "8:00 AM"},
	}
	deps := GetBookingStatsDeps{SeasonStore: &mockSeasonStore{records: records}}

	result, err := QueryGetBookingStats(context.Background(), GetBookingStatsQuery{}, deps)
	if err != nil {
		t.Fatalf("QueryGetBookingStats() error = %v", err)
	}

	var courts []int
	for _, c := range result.CourtUtilization {
		courts = append(courts, c.Court)
	}
	if !reflect.DeepEqual(courts, []int{2, 3, 4}) {
		t.Errorf("court order = %v, want [2 3 4]", courts)
	}
}

func TestQueryGetBookingStats_Idempotent(t *testing.T) {
	season := seededSeason(t, 31, 500)
	deps := GetBookingStatsDeps{SeasonStore: &mockSeasonStore{records: season}}
	query := GetBookingStatsQuery{Criteria: Criteria{Gender: booking.GenderFemale, WindowDays: 30}}

	first, err := QueryGetBookingStats(context.Background(), query, deps)
	if err != nil {
		t.Fatalf("QueryGetBookingStats() error = %v", err)
	}
	second, err := QueryGetBookingStats(context.Background(), query, deps)
	if err != nil {
		t.Fatalf("QueryGetBookingStats() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated query diverged:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestQueryGetBookingStats_StoreError(t *testing.T) {
	wantErr := errors.New("store down")
	deps := GetBookingStatsDeps{SeasonStore: &mockSeasonStore{err: wantErr}}

	_, err := QueryGetBookingStats(context.Background(), GetBookingStatsQuery{}, deps)
	if !errors.Is(err, wantErr) {
		t.Errorf("QueryGetBookingStats() error = %v, want %v", err, wantErr)
	}
}
