package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/app/booking/presenter"
	"github.com/light-bringer/lingua-booking/internal/app/booking/queries/get_order"
	"github.com/light-bringer/lingua-booking/internal/app/booking/queries/list_courses"
	"github.com/light-bringer/lingua-booking/internal/app/booking/queries/list_orders"
	"github.com/light-bringer/lingua-booking/internal/app/booking/queries/list_tutors"
	"github.com/light-bringer/lingua-booking/internal/app/booking/usecases/delete_order"
	"github.com/light-bringer/lingua-booking/internal/app/booking/usecases/place_order"
	"github.com/light-bringer/lingua-booking/internal/app/booking/usecases/quote_course"
	"github.com/light-bringer/lingua-booking/internal/app/booking/usecases/quote_tutor"
	"github.com/light-bringer/lingua-booking/internal/app/booking/usecases/update_order"
)

// Handler serves the booking JSON API.
// It's a thin coordinator that delegates to use cases and queries.
type Handler struct {
	// Commands
	quoteCourse *quote_course.Interactor
	quoteTutor  *quote_tutor.Interactor
	placeOrder  *place_order.Interactor
	updateOrder *update_order.Interactor
	deleteOrder *delete_order.Interactor

	// Queries
	listCourses *list_courses.Query
	listTutors  *list_tutors.Query
	listOrders  *list_orders.Query
	getOrder    *get_order.Query

	format    *presenter.Formatter
	validator *requestValidator
	loc       *time.Location
	logger    *zap.Logger
}

// NewHandler creates a new HTTP booking handler. loc interprets start dates.
func NewHandler(
	quoteCourse *quote_course.Interactor,
	quoteTutor *quote_tutor.Interactor,
	placeOrder *place_order.Interactor,
	updateOrder *update_order.Interactor,
	deleteOrder *delete_order.Interactor,
	listCourses *list_courses.Query,
	listTutors *list_tutors.Query,
	listOrders *list_orders.Query,
	getOrder *get_order.Query,
	format *presenter.Formatter,
	loc *time.Location,
	logger *zap.Logger,
) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		quoteCourse: quoteCourse,
		quoteTutor:  quoteTutor,
		placeOrder:  placeOrder,
		updateOrder: updateOrder,
		deleteOrder: deleteOrder,
		listCourses: listCourses,
		listTutors:  listTutors,
		listOrders:  listOrders,
		getOrder:    getOrder,
		format:      format,
		validator:   newRequestValidator(),
		loc:         loc,
		logger:      logger,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := h.mapDomainErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	h.writeJSON(w, status, body)
}

// parseSchedule parses validated date and time strings. Empty values stay unset.
func (h *Handler) parseSchedule(date, tod string) (time.Time, *domain.TimeOfDay, error) {
	var (
		start time.Time
		at    *domain.TimeOfDay
	)
	if date != "" {
		d, err := time.ParseInLocation(time.DateOnly, date, h.loc)
		if err != nil {
			return time.Time{}, nil, &badRequestError{err: err}
		}
		start = d
	}
	if tod != "" {
		t, err := domain.ParseTimeOfDay(tod)
		if err != nil {
			return time.Time{}, nil, err
		}
		at = &t
	}
	return start, at, nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &badRequestError{err: errors.New("id must be a positive integer")}
	}
	return id, nil
}

// queryInt reads an optional non-negative integer query parameter.
func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &badRequestError{err: fmt.Errorf("%s must be a non-negative integer", key)}
	}
	return n, nil
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListCourses handles GET /api/v1/courses.
func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	size, err := queryInt(r, "page_size")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := h.listCourses.Execute(r.Context(), &list_courses.Request{
		Search:    r.URL.Query().Get("search"),
		PageSize:  size,
		PageToken: r.URL.Query().Get("page_token"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	courses := make([]Course, 0, len(res.Courses))
	for _, c := range res.Courses {
		courses = append(courses, toCourse(c))
	}
	h.writeJSON(w, http.StatusOK, ListCoursesResponse{
		Courses:       courses,
		NextPageToken: res.NextPageToken,
		TotalCount:    res.TotalCount,
	})
}

// ListTutors handles GET /api/v1/tutors.
func (h *Handler) ListTutors(w http.ResponseWriter, r *http.Request) {
	res, err := h.listTutors.Execute(r.Context(), &list_tutors.Request{
		Language: r.URL.Query().Get("language"),
		Level:    r.URL.Query().Get("level"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	tutors := make([]Tutor, 0, len(res.Tutors))
	for _, t := range res.Tutors {
		tutors = append(tutors, toTutor(t))
	}
	h.writeJSON(w, http.StatusOK, ListTutorsResponse{
		Tutors:    tutors,
		Languages: res.Languages,
		Levels:    res.Levels,
	})
}

// QuoteCourse handles POST /api/v1/quotes/course.
func (h *Handler) QuoteCourse(w http.ResponseWriter, r *http.Request) {
	// 1. Decode and validate body
	var body QuoteCourseRequest
	if err := h.validator.decode(w, r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}

	// 2. Map body → application request
	start, at, err := h.parseSchedule(body.StartDate, body.StartTime)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	opts, err := domain.ParseOptions(body.Options)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	// 3. Call usecase
	resp, err := h.quoteCourse.Execute(r.Context(), &quote_course.Request{
		CourseID:      body.CourseID,
		StartDate:     start,
		StartTime:     at,
		PersonCount:   body.Persons,
		Options:       opts,
		DeriveOptions: body.DeriveOptions,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	// 4. Return response
	h.writeJSON(w, http.StatusOK, QuoteResponse{
		QuoteID:      resp.QuoteID,
		CourseID:     resp.Course.ID,
		ItemName:     resp.Course.Name,
		TotalPrice:   resp.Result.TotalPrice,
		ExactPrice:   resp.Result.Exact.String(),
		PriceLabel:   h.format.Price(resp.Result.TotalPrice),
		AppliedRules: resp.Result.AppliedRules,
		Options:      resp.Input.Options.Enabled(),
		EndDate:      formatDate(resp.EndDate),
		QuotedAt:     formatTimestamp(resp.QuotedAt),
	})
}

// QuoteTutor handles POST /api/v1/quotes/tutor.
func (h *Handler) QuoteTutor(w http.ResponseWriter, r *http.Request) {
	var body QuoteTutorRequest
	if err := h.validator.decode(w, r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := h.quoteTutor.Execute(r.Context(), &quote_tutor.Request{
		TutorID:       body.TutorID,
		DurationHours: body.DurationHours,
		PersonCount:   body.Persons,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, QuoteResponse{
		QuoteID:      resp.QuoteID,
		TutorID:      resp.Tutor.ID,
		ItemName:     resp.Tutor.Name,
		TotalPrice:   resp.Result.TotalPrice,
		ExactPrice:   resp.Result.Exact.String(),
		PriceLabel:   h.format.Price(resp.Result.TotalPrice),
		AppliedRules: resp.Result.AppliedRules,
		QuotedAt:     formatTimestamp(resp.QuotedAt),
	})
}

// ListOrders handles GET /api/v1/orders.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	size, err := queryInt(r, "page_size")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := h.listOrders.Execute(r.Context(), &list_orders.Request{
		PageSize:  size,
		PageToken: r.URL.Query().Get("page_token"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	orders := make([]Order, 0, len(res.Rows))
	for _, row := range res.Rows {
		orders = append(orders, h.toOrderRow(row))
	}
	h.writeJSON(w, http.StatusOK, ListOrdersResponse{
		Orders:        orders,
		NextPageToken: res.NextPageToken,
		TotalCount:    res.TotalCount,
	})
}

// GetOrder handles GET /api/v1/orders/{id}.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	row, err := h.getOrder.Execute(r.Context(), &get_order.Request{OrderID: id})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.toOrderRow(row))
}

// CreateOrder handles POST /api/v1/orders. The price is always computed
// server side.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var body CreateOrderRequest
	if err := h.validator.decode(w, r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}

	start, at, err := h.parseSchedule(body.StartDate, body.StartTime)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	opts, err := domain.ParseOptions(body.Options)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	order, err := h.placeOrder.Execute(r.Context(), &place_order.Request{
		CourseID:      body.CourseID,
		TutorID:       body.TutorID,
		StartDate:     start,
		StartTime:     at,
		PersonCount:   body.Persons,
		DurationHours: body.DurationHours,
		Options:       opts,
		DeriveOptions: body.DeriveOptions,
		StudentID:     body.StudentID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/orders/"+strconv.FormatInt(order.ID, 10))
	h.writeJSON(w, http.StatusCreated, h.toOrder(order))
}

// UpdateOrder handles PUT /api/v1/orders/{id}. The order is repriced with
// the same engine that priced it.
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var body UpdateOrderRequest
	if err := h.validator.decode(w, r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}

	req := &update_order.Request{
		OrderID:       id,
		PersonCount:   body.Persons,
		DurationHours: body.DurationHours,
		DeriveOptions: body.DeriveOptions,
	}
	if body.StartDate != nil || body.StartTime != nil {
		var date, tod string
		if body.StartDate != nil {
			date = *body.StartDate
		}
		if body.StartTime != nil {
			tod = *body.StartTime
		}
		start, at, err := h.parseSchedule(date, tod)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		if body.StartDate != nil {
			req.StartDate = &start
		}
		req.StartTime = at
	}
	if body.Options != nil {
		opts, err := domain.ParseOptions(*body.Options)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		req.Options = &opts
	}

	order, err := h.updateOrder.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.toOrder(order))
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.deleteOrder.Execute(r.Context(), &delete_order.Request{OrderID: id}); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
