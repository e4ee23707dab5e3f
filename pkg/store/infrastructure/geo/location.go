package geo

import (
	"context"
	"errors"
	"sync"
)

// LocateCode mirrors the device geolocation error codes.
type LocateCode int

const (
	LocatePermissionDenied LocateCode = iota + 1
	LocatePositionUnavailable
	LocateTimeout
)

// LocateError is a failed device-position request.
type LocateError struct {
	Code LocateCode
}

func (e *LocateError) Error() string {
	return LocateMessage(e)
}

// LocateMessage maps a locator failure to its user-facing message.
func LocateMessage(err error) string {
	var le *LocateError
	if errors.As(err, &le) {
		switch le.Code {
		case LocatePermissionDenied:
			return "Permission denied."
		case LocatePositionUnavailable:
			return "Location unavailable."
		case LocateTimeout:
			return "Request timed out."
		}
	}
	return "Unknown error."
}

// Locator is the device geolocation capability.
type Locator interface {
	Current(ctx context.Context) (Coord, error)
}

// StaticLocator always reports a fixed position. The server deployment
// has no real device to ask, so the coordinate comes from configuration.
type StaticLocator struct {
	Coord Coord
}

func (l StaticLocator) Current(context.Context) (Coord, error) {
	return l.Coord, nil
}

// UnavailableLocator reports the position-unavailable device error, for
// deployments with no configured location at all.
type UnavailableLocator struct{}

func (UnavailableLocator) Current(context.Context) (Coord, error) {
	return Coord{}, &LocateError{Code: LocatePositionUnavailable}
}

// Marker is the draggable map pin. Dragging it re-triggers reverse
// geocoding so the address fields follow the pin.
type Marker struct {
	mu      sync.Mutex
	client  *Client
	coord   Coord
	placed  bool
	address string
}

func NewMarker(client *Client) *Marker {
	return &Marker{client: client}
}

// Place puts the marker at coord and resolves its display address.
func (m *Marker) Place(ctx context.Context, coord Coord) (*Place, error) {
	place, err := m.client.Reverse(ctx, coord)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.coord = coord
	m.placed = true
	m.address = place.DisplayName
	m.mu.Unlock()
	return place, nil
}

// Drag moves an already-placed marker, same resolution as Place.
func (m *Marker) Drag(ctx context.Context, coord Coord) (*Place, error) {
	return m.Place(ctx, coord)
}

func (m *Marker) Position() (Coord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.coord, m.placed
}

func (m *Marker) Address() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.address
}
