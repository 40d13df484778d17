package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock start time. Only the hour matters for pricing.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay validates and builds a TimeOfDay.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	t := TimeOfDay{Hour: hour, Minute: minute}
	if !t.valid() {
		return TimeOfDay{}, fmt.Errorf("%w: got %02d:%02d", ErrInvalidTimeOfDay, hour, minute)
	}
	return t, nil
}

func (t TimeOfDay) valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String formats as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Course is a course catalog entry as published by the school API.
type Course struct {
	ID               int64
	Name             string
	Teacher          string
	Level            string
	FeePerHour       *Money
	TotalLengthWeeks int
	WeekLengthHours  int
	StartDates       []time.Time
}

// Validate checks the fields the pricing engine depends on.
func (c *Course) Validate() error {
	switch {
	case c.FeePerHour == nil || !c.FeePerHour.IsPositive():
		return &CatalogInconsistencyError{Entity: "course", ID: c.ID, Field: FieldFeePerHour}
	case c.TotalLengthWeeks <= 0:
		return &CatalogInconsistencyError{Entity: "course", ID: c.ID, Field: FieldTotalLengthWeeks}
	case c.WeekLengthHours <= 0:
		return &CatalogInconsistencyError{Entity: "course", ID: c.ID, Field: FieldWeekLengthHours}
	}
	return nil
}

// DurationHours is the total number of instruction hours.
func (c *Course) DurationHours() int {
	return c.TotalLengthWeeks * c.WeekLengthHours
}

// EndDate is the date the course ends when started on start.
func (c *Course) EndDate(start time.Time) time.Time {
	return start.AddDate(0, 0, c.TotalLengthWeeks*7)
}

// StartDays returns the distinct calendar days the course starts on, in order.
func (c *Course) StartDays() []time.Time {
	seen := make(map[string]bool, len(c.StartDates))
	days := make([]time.Time, 0, len(c.StartDates))
	for _, sd := range c.StartDates {
		key := sd.Format(time.DateOnly)
		if seen[key] {
			continue
		}
		seen[key] = true
		y, m, d := sd.Date()
		days = append(days, time.Date(y, m, d, 0, 0, 0, 0, sd.Location()))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// TimeSlotsOn returns the start times offered on the given calendar day.
func (c *Course) TimeSlotsOn(date time.Time) []TimeOfDay {
	slots := make([]TimeOfDay, 0)
	for _, sd := range c.StartDates {
		if sameDay(sd, date) {
			slots = append(slots, TimeOfDay{Hour: sd.Hour(), Minute: sd.Minute()})
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Hour != slots[j].Hour {
			return slots[i].Hour < slots[j].Hour
		}
		return slots[i].Minute < slots[j].Minute
	})
	return slots
}

// OffersDate reports whether the course starts on date at any time.
func (c *Course) OffersDate(date time.Time) bool {
	for _, sd := range c.StartDates {
		if sameDay(sd, date) {
			return true
		}
	}
	return false
}

// OffersStart reports whether the course starts on date at tod.
func (c *Course) OffersStart(date time.Time, tod TimeOfDay) bool {
	for _, slot := range c.TimeSlotsOn(date) {
		if slot == tod {
			return true
		}
	}
	return false
}

// MatchesSearch reports whether term occurs in the name or level, ignoring case.
// An empty term matches everything.
func (c *Course) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Level), term)
}

// Tutor is a tutor profile as published by the school API.
type Tutor struct {
	ID               int64
	Name             string
	LanguageLevel    string
	LanguagesOffered []string
	WorkExperience   int
	PricePerHour     *Money
}

// Validate checks the fields the pricing engine depends on.
func (t *Tutor) Validate() error {
	if t.PricePerHour == nil || !t.PricePerHour.IsPositive() {
		return &CatalogInconsistencyError{Entity: "tutor", ID: t.ID, Field: FieldPricePerHour}
	}
	return nil
}

// Offers reports whether the tutor teaches language. Empty matches all.
func (t *Tutor) Offers(language string) bool {
	if language == "" {
		return true
	}
	for _, l := range t.LanguagesOffered {
		if l == language {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
