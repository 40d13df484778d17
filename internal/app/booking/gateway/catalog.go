package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/light-bringer/lingua-booking/internal/app/booking/contracts"
	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
)

var _ contracts.CatalogGateway = (*Client)(nil)

// ListCourses fetches GET /api/courses.
func (c *Client) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	var dtos []courseDTO
	if err := c.do(ctx, http.MethodGet, "/api/courses", nil, &dtos); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	courses := make([]*domain.Course, 0, len(dtos))
	for i := range dtos {
		courses = append(courses, c.toCourse(&dtos[i]))
	}
	return courses, nil
}

// GetCourse fetches GET /api/courses/{id}.
func (c *Client) GetCourse(ctx context.Context, courseID int64) (*domain.Course, error) {
	var dto courseDTO
	if err := c.do(ctx, http.MethodGet, "/api/courses/"+strconv.FormatInt(courseID, 10), nil, &dto); err != nil {
		if StatusCode(err) == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %d", domain.ErrCourseNotFound, courseID)
		}
		return nil, fmt.Errorf("failed to get course %d: %w", courseID, err)
	}
	return c.toCourse(&dto), nil
}

// ListTutors fetches GET /api/tutors.
func (c *Client) ListTutors(ctx context.Context) ([]*domain.Tutor, error) {
	var dtos []tutorDTO
	if err := c.do(ctx, http.MethodGet, "/api/tutors", nil, &dtos); err != nil {
		return nil, fmt.Errorf("failed to list tutors: %w", err)
	}

	tutors := make([]*domain.Tutor, 0, len(dtos))
	for i := range dtos {
		tutors = append(tutors, c.toTutor(&dtos[i]))
	}
	return tutors, nil
}

// GetTutor fetches GET /api/tutors/{id}.
func (c *Client) GetTutor(ctx context.Context, tutorID int64) (*domain.Tutor, error) {
	var dto tutorDTO
	if err := c.do(ctx, http.MethodGet, "/api/tutors/"+strconv.FormatInt(tutorID, 10), nil, &dto); err != nil {
		if StatusCode(err) == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %d", domain.ErrTutorNotFound, tutorID)
		}
		return nil, fmt.Errorf("failed to get tutor %d: %w", tutorID, err)
	}
	return c.toTutor(&dto), nil
}
