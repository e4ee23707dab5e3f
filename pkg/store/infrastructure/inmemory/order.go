package inmemory

import (
	"sync"

	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
)

// OrderRepository is the append-only in-memory order list, kept in
// insertion order.
type OrderRepository struct {
	mu     sync.Mutex
	orders []*model.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *order
	stored.Items = append([]model.CartLine(nil), order.Items...)
	r.orders = append(r.orders, &stored)
	return nil
}

func (r *OrderRepository) Find(id int64) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			clone := *o
			return &clone, nil
		}
	}
	return nil, model.ErrOrderNotFound
}

func (r *OrderRepository) List() ([]*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		clone := *o
		out = append(out, &clone)
	}
	return out, nil
}
