package services

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/app/booking/gateway"
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
	"github.com/light-bringer/lingua-booking/internal/config"
	"github.com/light-bringer/lingua-booking/internal/pkg/clock"
	"github.com/light-bringer/lingua-booking/internal/transport/grpc/pricing"
	httptransport "github.com/light-bringer/lingua-booking/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Gateway      *gateway.Client
	Clock        clock.Clock
	Formatter    *presenter.Formatter
	CourseEngine *domain.CoursePricingEngine
	TutorEngine  *domain.TutorPricingEngine

	QuoteCourse *quote_course.Interactor
	QuoteTutor  *quote_tutor.Interactor
	ListCourses *list_courses.Query
	ListTutors  *list_tutors.Query

	PricingHandler *pricing.Handler
	HTTPHandler    *httptransport.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(cfg *config.Config, logger *zap.Logger) (*ServiceOptions, error) {
	// 1. Initialize the school API client
	client, err := gateway.NewClient(cfg.APIBaseURL, cfg.APIKey,
		gateway.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		gateway.WithRetries(cfg.RetryAttempts, 0),
		gateway.WithLocation(cfg.SchoolLocation),
		gateway.WithLogger(logger.Named("gateway")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create school api client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClockIn(cfg.SchoolLocation)
	format := presenter.NewFormatter(cfg.Locale)
	courseEngine := domain.NewCoursePricingEngine()
	tutorEngine := domain.NewTutorPricingEngine()

	// 3. Create command use cases (write operations)
	quoteCourseUseCase := quote_course.NewInteractor(client, courseEngine, clk, cfg.AutoOptions)
	quoteTutorUseCase := quote_tutor.NewInteractor(client, tutorEngine, clk)
	placeOrderUseCase := place_order.NewInteractor(client, client, clk, cfg.AutoOptions, logger)
	updateOrderUseCase := update_order.NewInteractor(client, client, clk, cfg.AutoOptions, logger)
	deleteOrderUseCase := delete_order.NewInteractor(client, logger)

	// 4. Create query use cases (read operations)
	listCoursesQuery := list_courses.NewQuery(client, cfg.PageSize)
	listTutorsQuery := list_tutors.NewQuery(client)
	listOrdersQuery := list_orders.NewQuery(client, client, cfg.PageSize)
	getOrderQuery := get_order.NewQuery(client, client)

	// 5. Create gRPC handler
	pricingHandler := pricing.NewHandler(
		quoteCourseUseCase,
		quoteTutorUseCase,
		listCoursesQuery,
		cfg.SchoolLocation,
	)

	// 6. Create HTTP handler
	httpHandler := httptransport.NewHandler(
		quoteCourseUseCase,
		quoteTutorUseCase,
		placeOrderUseCase,
		updateOrderUseCase,
		deleteOrderUseCase,
		listCoursesQuery,
		listTutorsQuery,
		listOrdersQuery,
		getOrderQuery,
		format,
		cfg.SchoolLocation,
		logger.Named("http"),
	)

	return &ServiceOptions{
		Gateway:        client,
		Clock:          clk,
		Formatter:      format,
		CourseEngine:   courseEngine,
		TutorEngine:    tutorEngine,
		QuoteCourse:    quoteCourseUseCase,
		QuoteTutor:     quoteTutorUseCase,
		ListCourses:    listCoursesQuery,
		ListTutors:     listTutorsQuery,
		PricingHandler: pricingHandler,
		HTTPHandler:    httpHandler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.Gateway != nil {
		s.Gateway.Close()
	}
}
