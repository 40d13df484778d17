package testutil

import (
	"time"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
)

// Saturday and Monday are fixed calendar days used across tests.
var (
	Saturday = time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	Monday   = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
)

// Course returns a course priced at 200/hour for 8 weeks of 4 hours, starting
// Saturday 10:00 and 18:00 and Monday 09:00.
func Course(id int64, name string) *domain.Course {
	return &domain.Course{
		ID:               id,
		Name:             name,
		Teacher:          "Anna Petrova",
		Level:            "Intermediate",
		FeePerHour:       domain.Units(200),
		TotalLengthWeeks: 8,
		WeekLengthHours:  4,
		StartDates: []time.Time{
			Saturday.Add(10 * time.Hour),
			Saturday.Add(18 * time.Hour),
			Monday.Add(9 * time.Hour),
		},
	}
}

// Tutor returns a tutor charging 500/hour.
func Tutor(id int64, name string, languages ...string) *domain.Tutor {
	if len(languages) == 0 {
		languages = []string{"English"}
	}
	return &domain.Tutor{
		ID:               id,
		Name:             name,
		LanguageLevel:    "Advanced",
		LanguagesOffered: languages,
		WorkExperience:   5,
		PricePerHour:     domain.Units(500),
	}
}

// At returns a pointer to a whole-hour time of day.
func At(hour int) *domain.TimeOfDay {
	return &domain.TimeOfDay{Hour: hour}
}
