package http

import (
	"time"

	"github.com/light-bringer/lingua-booking/internal/app/booking/contracts"
	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
)

// QuoteCourseRequest is the body of POST /api/v1/quotes/course.
type QuoteCourseRequest struct {
	CourseID      int64    `json:"course_id" validate:"required,gt=0"`
	StartDate     string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime     string   `json:"start_time" validate:"omitempty,datetime=15:04"`
	Persons       int      `json:"persons"`
	Options       []string `json:"options" validate:"dive,oneof=supplementary personalized excursions assessment interactive early_registration group_enrollment intensive_course"`
	DeriveOptions bool     `json:"derive_options"`
}

// QuoteTutorRequest is the body of POST /api/v1/quotes/tutor.
type QuoteTutorRequest struct {
	TutorID       int64 `json:"tutor_id" validate:"required,gt=0"`
	DurationHours int   `json:"duration_hours"`
	Persons       int   `json:"persons"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. Exactly one of
// course_id and tutor_id is set. Any price sent by the client is ignored.
type CreateOrderRequest struct {
	CourseID      int64    `json:"course_id" validate:"required_without=TutorID,excluded_with=TutorID,gte=0"`
	TutorID       int64    `json:"tutor_id" validate:"required_without=CourseID,excluded_with=CourseID,gte=0"`
	StartDate     string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime     string   `json:"start_time" validate:"omitempty,datetime=15:04"`
	Persons       int      `json:"persons"`
	DurationHours int      `json:"duration_hours"`
	Options       []string `json:"options" validate:"dive,oneof=supplementary personalized excursions assessment interactive early_registration group_enrollment intensive_course"`
	DeriveOptions bool     `json:"derive_options"`
	StudentID     int64    `json:"student_id" validate:"gte=0"`
	Price         *float64 `json:"price,omitempty"`
}

// UpdateOrderRequest is the body of PUT /api/v1/orders/{id}. Omitted fields
// keep their stored value.
type UpdateOrderRequest struct {
	StartDate     *string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime     *string   `json:"start_time" validate:"omitempty,datetime=15:04"`
	Persons       *int      `json:"persons"`
	DurationHours *int      `json:"duration_hours"`
	Options       *[]string `json:"options" validate:"omitempty,dive,oneof=supplementary personalized excursions assessment interactive early_registration group_enrollment intensive_course"`
	DeriveOptions bool      `json:"derive_options"`
	Price         *float64  `json:"price,omitempty"`
}

// QuoteResponse is a priced quote.
type QuoteResponse struct {
	QuoteID      string   `json:"quote_id"`
	CourseID     int64    `json:"course_id,omitempty"`
	TutorID      int64    `json:"tutor_id,omitempty"`
	ItemName     string   `json:"item_name"`
	TotalPrice   int64    `json:"total_price"`
	ExactPrice   string   `json:"exact_price"`
	PriceLabel   string   `json:"price_label"`
	AppliedRules []string `json:"applied_rules"`
	Options      []string `json:"options,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	QuotedAt     string   `json:"quoted_at"`
}

// Course is a catalog course.
type Course struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Teacher          string   `json:"teacher"`
	Level            string   `json:"level"`
	FeePerHour       string   `json:"fee_per_hour"`
	TotalLengthWeeks int      `json:"total_length_weeks"`
	WeekLengthHours  int      `json:"week_length_hours"`
	StartDates       []string `json:"start_dates"`
}

// ListCoursesResponse is one page of courses.
type ListCoursesResponse struct {
	Courses       []Course `json:"courses"`
	NextPageToken string   `json:"next_page_token,omitempty"`
	TotalCount    int      `json:"total_count"`
}

// Tutor is a catalog tutor.
type Tutor struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	LanguageLevel    string   `json:"language_level"`
	LanguagesOffered []string `json:"languages_offered"`
	WorkExperience   int      `json:"work_experience"`
	PricePerHour     string   `json:"price_per_hour"`
}

// ListTutorsResponse holds the matching tutors and the filter choices.
type ListTutorsResponse struct {
	Tutors    []Tutor  `json:"tutors"`
	Languages []string `json:"languages"`
	Levels    []string `json:"levels"`
}

// Order is a stored order.
type Order struct {
	ID            int64    `json:"id"`
	Kind          string   `json:"kind"`
	ItemName      string   `json:"item_name,omitempty"`
	CourseID      int64    `json:"course_id,omitempty"`
	TutorID       int64    `json:"tutor_id,omitempty"`
	StartDate     string   `json:"start_date,omitempty"`
	StartTime     string   `json:"start_time"`
	EndDate       string   `json:"end_date,omitempty"`
	DurationHours int      `json:"duration_hours"`
	Persons       int      `json:"persons"`
	Price         int64    `json:"price"`
	PriceLabel    string   `json:"price_label"`
	Options       []string `json:"options"`
	StudentID     int64    `json:"student_id,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
}

// ListOrdersResponse is one page of orders.
type ListOrdersResponse struct {
	Orders        []Order `json:"orders"`
	NextPageToken string  `json:"next_page_token,omitempty"`
	TotalCount    int     `json:"total_count"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func toCourse(c *domain.Course) Course {
	starts := make([]string, len(c.StartDates))
	for i, d := range c.StartDates {
		starts[i] = formatTimestamp(d)
	}
	return Course{
		ID:               c.ID,
		Name:             c.Name,
		Teacher:          c.Teacher,
		Level:            c.Level,
		FeePerHour:       c.FeePerHour.String(),
		TotalLengthWeeks: c.TotalLengthWeeks,
		WeekLengthHours:  c.WeekLengthHours,
		StartDates:       starts,
	}
}

func toTutor(t *domain.Tutor) Tutor {
	return Tutor{
		ID:               t.ID,
		Name:             t.Name,
		LanguageLevel:    t.LanguageLevel,
		LanguagesOffered: t.LanguagesOffered,
		WorkExperience:   t.WorkExperience,
		PricePerHour:     t.PricePerHour.String(),
	}
}

func (h *Handler) toOrder(o *domain.Order) Order {
	kind := "course"
	if o.IsTutor() {
		kind = "tutor"
	}
	return Order{
		ID:            o.ID,
		Kind:          kind,
		CourseID:      o.CourseID,
		TutorID:       o.TutorID,
		StartDate:     formatDate(o.StartDate),
		StartTime:     o.StartTime.String(),
		DurationHours: o.DurationHours,
		Persons:       o.Persons,
		Price:         o.Price,
		PriceLabel:    h.format.Price(o.Price),
		Options:       o.Options.Enabled(),
		StudentID:     o.StudentID,
		CreatedAt:     formatTimestamp(o.CreatedAt),
		UpdatedAt:     formatTimestamp(o.UpdatedAt),
	}
}

func (h *Handler) toOrderRow(row *contracts.OrderRow) Order {
	out := h.toOrder(row.Order)
	out.Kind = row.ItemKind
	out.ItemName = row.ItemName
	out.EndDate = formatDate(row.EndDate)
	return out
}
