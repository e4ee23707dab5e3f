package geo

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// AddressPicker is one instance of the address autocomplete: the debounced
// lookup engine, the suggestion dropdown, the device locator and the map
// marker, wired together. The home address bar and the payment address
// form each hold their own instance; only their validation rules differ,
// and those live with the storefront service.
type AddressPicker struct {
	engine  *LookupEngine
	list    *SuggestionList
	locator Locator
	marker  *Marker
	log     log.FieldLogger
}

func NewAddressPicker(client *Client, locator Locator, debounce time.Duration, logger log.FieldLogger) *AddressPicker {
	if logger == nil {
		logger = log.StandardLogger()
	}
	list := NewSuggestionList()
	return &AddressPicker{
		engine:  NewLookupEngine(client, debounce, list.SetItems, logger),
		list:    list,
		locator: locator,
		marker:  NewMarker(client),
		log:     logger,
	}
}

// Input feeds one text change into the debounced lookup.
func (p *AddressPicker) Input(ctx context.Context, text string) {
	p.engine.Query(ctx, text)
}

// Lookup resolves suggestions synchronously (the HTTP surface's path).
func (p *AddressPicker) Lookup(ctx context.Context, text string) ([]Suggestion, error) {
	results, err := p.engine.Lookup(ctx, text)
	if err != nil {
		return nil, err
	}
	p.list.SetItems(results)
	return results, nil
}

func (p *AddressPicker) Suggestions() []Suggestion  { return p.list.Items() }
func (p *AddressPicker) MoveDown() int              { return p.list.MoveDown() }
func (p *AddressPicker) MoveUp() int                { return p.list.MoveUp() }
func (p *AddressPicker) Commit() (Suggestion, bool) { return p.list.Commit() }
func (p *AddressPicker) Select(i int) (Suggestion, bool) {
	return p.list.Select(i)
}
func (p *AddressPicker) Dismiss() { p.list.Dismiss() }

// UseCurrentLocation asks the device for its position and reverse-geocodes
// it onto the map marker. Locator failures come back as LocateErrors so
// the caller can show the mapped message.
func (p *AddressPicker) UseCurrentLocation(ctx context.Context) (*Place, error) {
	coord, err := p.locator.Current(ctx)
	if err != nil {
		return nil, err
	}
	place, err := p.marker.Place(ctx, coord)
	if err != nil {
		p.log.WithError(err).Warn("reverse geocode of current location failed")
		return nil, err
	}
	return place, nil
}

// DragMarker follows a marker drag with a fresh reverse geocode.
func (p *AddressPicker) DragMarker(ctx context.Context, coord Coord) (*Place, error) {
	return p.marker.Drag(ctx, coord)
}

func (p *AddressPicker) Marker() *Marker { return p.marker }
