package gateway

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
)

const (
	wireDate     = "2006-01-02"
	wireTime     = "15:04"
	wireDateTime = "2006-01-02T15:04:05"
)

type courseDTO struct {
	ID               int64       `json:"id"`
	Name             string      `json:"name"`
	Description      string      `json:"description,omitempty"`
	Teacher          string      `json:"teacher"`
	Level            string      `json:"level"`
	TotalLength      int         `json:"total_length"`
	WeekLength       int         `json:"week_length"`
	CourseFeePerHour json.Number `json:"course_fee_per_hour"`
	StartDates       []string    `json:"start_dates"`
}

type tutorDTO struct {
	ID               int64       `json:"id"`
	Name             string      `json:"name"`
	WorkExperience   int         `json:"work_experience"`
	LanguagesSpoken  []string    `json:"languages_spoken,omitempty"`
	LanguagesOffered []string    `json:"languages_offered"`
	LanguageLevel    string      `json:"language_level"`
	PricePerHour     json.Number `json:"price_per_hour"`
}

type orderDTO struct {
	ID                int64  `json:"id,omitempty"`
	CourseID          int64  `json:"course_id"`
	TutorID           int64  `json:"tutor_id"`
	DateStart         string `json:"date_start"`
	TimeStart         string `json:"time_start"`
	Duration          int    `json:"duration"`
	Persons           int    `json:"persons"`
	Price             int64  `json:"price"`
	EarlyRegistration bool   `json:"early_registration"`
	GroupEnrollment   bool   `json:"group_enrollment"`
	IntensiveCourse   bool   `json:"intensive_course"`
	Supplementary     bool   `json:"supplementary"`
	Personalized      bool   `json:"personalized"`
	Excursions        bool   `json:"excursions"`
	Assessment        bool   `json:"assessment"`
	Interactive       bool   `json:"interactive"`
	StudentID         int64  `json:"student_id,omitempty"`
	CreatedAt         string `json:"created_at,omitempty"`
	UpdatedAt         string `json:"updated_at,omitempty"`
}

type errorDTO struct {
	Error string `json:"error"`
}

// parseAmount reads an optional decimal amount. Missing amounts stay nil so
// the pricing engine reports them instead of guessing.
func parseAmount(n json.Number) (*domain.Money, error) {
	if n == "" {
		return nil, nil
	}
	return domain.ParseMoney(n.String())
}

func (c *Client) toCourse(dto *courseDTO) *domain.Course {
	course := &domain.Course{
		ID:               dto.ID,
		Name:             dto.Name,
		Teacher:          dto.Teacher,
		Level:            dto.Level,
		TotalLengthWeeks: dto.TotalLength,
		WeekLengthHours:  dto.WeekLength,
		StartDates:       make([]time.Time, 0, len(dto.StartDates)),
	}

	fee, err := parseAmount(dto.CourseFeePerHour)
	if err != nil {
		c.logger.Warn("unparsable course fee",
			zap.Int64("course_id", dto.ID),
			zap.String("value", dto.CourseFeePerHour.String()),
		)
	}
	course.FeePerHour = fee

	for _, raw := range dto.StartDates {
		t, err := c.parseDateTime(raw)
		if err != nil {
			c.logger.Warn("skipping unparsable course start date",
				zap.Int64("course_id", dto.ID),
				zap.String("value", raw),
			)
			continue
		}
		course.StartDates = append(course.StartDates, t)
	}

	return course
}

func (c *Client) toTutor(dto *tutorDTO) *domain.Tutor {
	price, err := parseAmount(dto.PricePerHour)
	if err != nil {
		c.logger.Warn("unparsable tutor price",
			zap.Int64("tutor_id", dto.ID),
			zap.String("value", dto.PricePerHour.String()),
		)
	}

	return &domain.Tutor{
		ID:               dto.ID,
		Name:             dto.Name,
		LanguageLevel:    dto.LanguageLevel,
		LanguagesOffered: dto.LanguagesOffered,
		WorkExperience:   dto.WorkExperience,
		PricePerHour:     price,
	}
}

func (c *Client) toOrder(dto *orderDTO) (*domain.Order, error) {
	order := &domain.Order{
		ID:            dto.ID,
		CourseID:      dto.CourseID,
		TutorID:       dto.TutorID,
		DurationHours: dto.Duration,
		Persons:       dto.Persons,
		Price:         dto.Price,
		StudentID:     dto.StudentID,
		Options: domain.CourseOptions{
			SupplementaryMaterials:    dto.Supplementary,
			PersonalizedSessions:      dto.Personalized,
			CulturalExcursions:        dto.Excursions,
			LevelAssessment:           dto.Assessment,
			InteractivePlatform:       dto.Interactive,
			EarlyRegistrationDiscount: dto.EarlyRegistration,
			GroupEnrollmentDiscount:   dto.GroupEnrollment,
			IntensiveCourseSurcharge:  dto.IntensiveCourse,
		},
	}

	if dto.DateStart != "" {
		d, err := time.ParseInLocation(wireDate, dto.DateStart, c.loc)
		if err != nil {
			return nil, fmt.Errorf("order %d: date_start %q: %w", dto.ID, dto.DateStart, err)
		}
		order.StartDate = d
	}
	if dto.TimeStart != "" {
		tod, err := domain.ParseTimeOfDay(truncateSeconds(dto.TimeStart))
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", dto.ID, err)
		}
		order.StartTime = tod
	}

	order.CreatedAt, _ = c.parseDateTime(dto.CreatedAt)
	order.UpdatedAt, _ = c.parseDateTime(dto.UpdatedAt)

	return order, nil
}

func fromOrder(order *domain.Order) *orderDTO {
	dto := &orderDTO{
		ID:                order.ID,
		CourseID:          order.CourseID,
		TutorID:           order.TutorID,
		TimeStart:         order.StartTime.String(),
		Duration:          order.DurationHours,
		Persons:           order.Persons,
		Price:             order.Price,
		Supplementary:     order.Options.SupplementaryMaterials,
		Personalized:      order.Options.PersonalizedSessions,
		Excursions:        order.Options.CulturalExcursions,
		Assessment:        order.Options.LevelAssessment,
		Interactive:       order.Options.InteractivePlatform,
		EarlyRegistration: order.Options.EarlyRegistrationDiscount,
		GroupEnrollment:   order.Options.GroupEnrollmentDiscount,
		IntensiveCourse:   order.Options.IntensiveCourseSurcharge,
		StudentID:         order.StudentID,
	}
	if !order.StartDate.IsZero() {
		dto.DateStart = order.StartDate.Format(wireDate)
	}
	return dto
}

// parseDateTime accepts zone-less timestamps (read in the school timezone)
// and RFC 3339 ones (converted to it).
func (c *Client) parseDateTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if t, err := time.ParseInLocation(wireDateTime, raw, c.loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(c.loc), nil
}

func truncateSeconds(s string) string {
	if len(s) == len("15:04:05") && strings.Count(s, ":") == 2 {
		return s[:len(wireTime)]
	}
	return s
}
