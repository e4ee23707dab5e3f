package service

import (
	"sync"

	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
)

// ViewRouter is the page state machine. The current route is the source of
// truth for what is on screen; rendering is keyed off it, never the other
// way round. Every Show appends a history record so back and forward can
// restore which page was visible. History restoration never touches cart
// or wishlist state.
type ViewRouter interface {
	// Show navigates to the route. Showing the already-current page is
	// idempotent in visible state but still re-runs setup (re-dispatches
	// PageShown, so a re-render happens).
	Show(route model.Route) error
	Current() model.Route
	Visible(page model.Page) bool

	// Back steps to the previous history record, landing on the categories
	// page when there is none.
	Back() model.Route
	// Forward re-applies the record undone by Back, if any.
	Forward() (model.Route, bool)
}

func NewViewRouter(catalog *model.Catalog, dispatcher EventDispatcher) ViewRouter {
	r := &viewRouter{catalog: catalog, dispatcher: dispatcher}
	// Initial load behaves like a replaceState onto categories.
	r.history = []model.Route{{Page: model.PageCategories}}
	r.position = 0
	return r
}

type viewRouter struct {
	mu         sync.Mutex
	catalog    *model.Catalog
	dispatcher EventDispatcher

	history  []model.Route
	position int
}

func (r *viewRouter) Show(route model.Route) error {
	if err := r.validate(route); err != nil {
		return err
	}

	r.mu.Lock()
	// Navigating from the middle of history drops the forward entries,
	// exactly like pushState after going back.
	r.history = append(r.history[:r.position+1], route)
	r.position = len(r.history) - 1
	r.mu.Unlock()

	_ = r.dispatcher.Dispatch(model.PageShown{Route: route})
	return nil
}

func (r *viewRouter) Current() model.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history[r.position]
}

func (r *viewRouter) Visible(page model.Page) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history[r.position].Page == page
}

func (r *viewRouter) Back() model.Route {
	r.mu.Lock()
	if r.position > 0 {
		r.position--
	} else {
		// No earlier record: fall back to categories, the pre-router state.
		r.history[0] = model.Route{Page: model.PageCategories}
	}
	route := r.history[r.position]
	r.mu.Unlock()

	_ = r.dispatcher.Dispatch(model.PageShown{Route: route})
	return route
}

func (r *viewRouter) Forward() (model.Route, bool) {
	r.mu.Lock()
	if r.position >= len(r.history)-1 {
		route := r.history[r.position]
		r.mu.Unlock()
		return route, false
	}
	r.position++
	route := r.history[r.position]
	r.mu.Unlock()

	_ = r.dispatcher.Dispatch(model.PageShown{Route: route})
	return route, true
}

func (r *viewRouter) validate(route model.Route) error {
	switch route.Page {
	case model.PageProducts:
		if !r.catalog.HasCategory(route.Category) {
			return model.ErrCategoryNotFound
		}
	case model.PageProductDetail:
		if _, err := r.catalog.FindByCategory(route.Category, route.ProductIndex); err != nil {
			return err
		}
	}
	return nil
}
