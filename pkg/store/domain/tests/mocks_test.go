package tests

import (
	"errors"

	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
	"github.com/Brixomart/Brixo-mart/pkg/store/domain/service"
)

func testCatalog() *model.Catalog {
	return model.NewCatalog([]model.CatalogCategory{
		{
			Name: "Fresh Fruits",
			Products: []model.Product{
				{Name: "Shimla Apple", Price: "₹120/kg", OriginalPrice: "₹133/kg", Discount: "10% OFF"},
				{Name: "Robusta Banana", Price: "₹60/dozen"},
			},
		},
		{
			Name: "Staples",
			Products: []model.Product{
				{Name: "Basmati Rice", Price: "₹180/kg", OriginalPrice: "₹200/kg"},
				{Name: "Iodized Salt", Price: "₹25/kg"},
			},
		},
	})
}

var _ service.EventDispatcher = &mockEventDispatcher{}

type mockEventDispatcher struct {
	events []service.Event
}

func (m *mockEventDispatcher) Dispatch(event service.Event) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventDispatcher) Reset() {
	m.events = nil
}

var _ model.OrderRepository = &mockOrderRepository{}

type mockOrderRepository struct {
	orders    []*model.Order
	createErr error
}

func (m *mockOrderRepository) Create(order *model.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	stored := *order
	m.orders = append(m.orders, &stored)
	return nil
}

func (m *mockOrderRepository) Find(id int64) (*model.Order, error) {
	for _, o := range m.orders {
		if o.ID == id {
			clone := *o
			return &clone, nil
		}
	}
	return nil, model.ErrOrderNotFound
}

func (m *mockOrderRepository) List() ([]*model.Order, error) {
	return append([]*model.Order(nil), m.orders...), nil
}

var _ model.SessionRepository = &mockSessionRepository{}

type mockSessionRepository struct {
	session *model.Session
	saveErr error
}

func (m *mockSessionRepository) Save(session *model.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	saved := *session
	m.session = &saved
	return nil
}

func (m *mockSessionRepository) Load() (*model.Session, error) {
	if m.session == nil {
		return nil, model.ErrSessionNotFound
	}
	saved := *m.session
	return &saved, nil
}

func (m *mockSessionRepository) Clear() error {
	m.session = nil
	return nil
}

var errRepoDown = errors.New("repository unavailable")
