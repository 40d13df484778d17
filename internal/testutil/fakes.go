package testutil

import (
	"context"
	"sync"

	"github.com/light-bringer/lingua-booking/internal/app/booking/contracts"
	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
)

// FakeCatalog is an in-memory CatalogGateway.
type FakeCatalog struct {
	mu      sync.RWMutex
	courses []*domain.Course
	tutors  []*domain.Tutor

	// Err, when set, is returned by every call.
	Err error
}

var _ contracts.CatalogGateway = (*FakeCatalog)(nil)

// NewFakeCatalog creates a FakeCatalog holding the given entries.
func NewFakeCatalog(courses []*domain.Course, tutors []*domain.Tutor) *FakeCatalog {
	return &FakeCatalog{courses: courses, tutors: tutors}
}

func (f *FakeCatalog) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]*domain.Course(nil), f.courses...), nil
}

func (f *FakeCatalog) GetCourse(ctx context.Context, courseID int64) (*domain.Course, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for _, c := range f.courses {
		if c.ID == courseID {
			return c, nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

func (f *FakeCatalog) ListTutors(ctx context.Context) ([]*domain.Tutor, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]*domain.Tutor(nil), f.tutors...), nil
}

func (f *FakeCatalog) GetTutor(ctx context.Context, tutorID int64) (*domain.Tutor, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for _, t := range f.tutors {
		if t.ID == tutorID {
			return t, nil
		}
	}
	return nil, domain.ErrTutorNotFound
}

// FakeOrders is an in-memory OrderGateway that assigns sequential IDs.
type FakeOrders struct {
	mu     sync.Mutex
	orders map[int64]*domain.Order
	order  []int64
	nextID int64

	// Err, when set, is returned by every call.
	Err error
}

var _ contracts.OrderGateway = (*FakeOrders)(nil)

// NewFakeOrders creates a FakeOrders seeded with orders (IDs must be set).
func NewFakeOrders(orders ...*domain.Order) *FakeOrders {
	f := &FakeOrders{orders: make(map[int64]*domain.Order), nextID: 1}
	for _, o := range orders {
		f.put(o)
	}
	return f
}

func (f *FakeOrders) put(o *domain.Order) {
	cp := *o
	if _, ok := f.orders[cp.ID]; !ok {
		f.order = append(f.order, cp.ID)
	}
	f.orders[cp.ID] = &cp
	if cp.ID >= f.nextID {
		f.nextID = cp.ID + 1
	}
}

func (f *FakeOrders) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]*domain.Order, 0, len(f.order))
	for _, id := range f.order {
		cp := *f.orders[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (f *FakeOrders) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	o, ok := f.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *FakeOrders) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	cp := *order
	cp.ID = f.nextID
	f.put(&cp)
	return &cp, nil
}

func (f *FakeOrders) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if _, ok := f.orders[order.ID]; !ok {
		return nil, domain.ErrOrderNotFound
	}
	f.put(order)
	cp := *order
	return &cp, nil
}

func (f *FakeOrders) DeleteOrder(ctx context.Context, orderID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if _, ok := f.orders[orderID]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(f.orders, orderID)
	for i, id := range f.order {
		if id == orderID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored orders.
func (f *FakeOrders) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}
