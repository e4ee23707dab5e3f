package service

import (
	"sync"

	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
)

// WishlistService keeps at most one entry per product name. Toggling an
// absent product adds it, toggling a present one removes it.
type WishlistService interface {
	Toggle(category string, index int) (added bool, err error)
	Items() []model.WishlistEntry
	Contains(productName string) bool
}

func NewWishlistService(catalog *model.Catalog, dispatcher EventDispatcher) WishlistService {
	return &wishlistService{catalog: catalog, dispatcher: dispatcher}
}

type wishlistService struct {
	mu         sync.Mutex
	catalog    *model.Catalog
	dispatcher EventDispatcher
	items      []model.WishlistEntry
}

func (s *wishlistService) Toggle(category string, index int) (bool, error) {
	product, err := s.catalog.FindByCategory(category, index)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.items {
		if entry.Name == product.Name {
			s.items = append(s.items[:i], s.items[i+1:]...)
			_ = s.dispatcher.Dispatch(model.WishlistToggled{ProductName: product.Name, Added: false})
			return false, nil
		}
	}

	s.items = append(s.items, model.WishlistEntry{
		Product:  product,
		Category: category,
		Index:    index,
	})
	_ = s.dispatcher.Dispatch(model.WishlistToggled{ProductName: product.Name, Added: true})
	return true, nil
}

func (s *wishlistService) Items() []model.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.WishlistEntry(nil), s.items...)
}

func (s *wishlistService) Contains(productName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.items {
		if entry.Name == productName {
			return true
		}
	}
	return false
}
