package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&LocateError{Code: LocatePermissionDenied}, "Permission denied."},
		{&LocateError{Code: LocatePositionUnavailable}, "Location unavailable."},
		{&LocateError{Code: LocateTimeout}, "Request timed out."},
		{&LocateError{Code: LocateCode(99)}, "Unknown error."},
		{errors.New("socket closed"), "Unknown error."},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, LocateMessage(c.err))
	}
}

func TestStaticLocator(t *testing.T) {
	loc := StaticLocator{Coord: Coord{Lat: 12.9716, Lng: 77.5946}}
	coord, err := loc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12.9716, coord.Lat)
	assert.Equal(t, 77.5946, coord.Lng)
}

func TestUnavailableLocator(t *testing.T) {
	_, err := UnavailableLocator{}.Current(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Location unavailable.", LocateMessage(err))
}

func reverseServer(t *testing.T, displayName string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name":"` + displayName + `","address":{"road":"MG Road","city":"Bengaluru","state":"Karnataka","postcode":"560001"}}`))
	}))
}

func TestMarkerPlaceResolvesAddress(t *testing.T) {
	srv := reverseServer(t, "MG Road, Bengaluru, Karnataka")
	defer srv.Close()

	marker := NewMarker(NewClient(srv.URL, srv.URL, time.Second))

	_, placed := marker.Position()
	assert.False(t, placed)

	place, err := marker.Place(context.Background(), Coord{Lat: 12.97, Lng: 77.59})
	require.NoError(t, err)
	assert.Equal(t, "MG Road, Bengaluru, Karnataka", place.DisplayName)
	assert.Equal(t, "560001", place.Address.Postcode)

	coord, placed := marker.Position()
	assert.True(t, placed)
	assert.Equal(t, 12.97, coord.Lat)
	assert.Equal(t, "MG Road, Bengaluru, Karnataka", marker.Address())
}

func TestMarkerDragFollowsPin(t *testing.T) {
	srv := reverseServer(t, "Church Street, Bengaluru")
	defer srv.Close()

	marker := NewMarker(NewClient(srv.URL, srv.URL, time.Second))
	_, err := marker.Place(context.Background(), Coord{Lat: 12.97, Lng: 77.59})
	require.NoError(t, err)

	_, err = marker.Drag(context.Background(), Coord{Lat: 12.98, Lng: 77.60})
	require.NoError(t, err)

	coord, placed := marker.Position()
	assert.True(t, placed)
	assert.Equal(t, 12.98, coord.Lat)
	assert.Equal(t, 77.60, coord.Lng)
}

func TestMarkerPlaceFailureLeavesMarkerUnplaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "over capacity", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	marker := NewMarker(NewClient(srv.URL, srv.URL, time.Second))
	_, err := marker.Place(context.Background(), Coord{Lat: 12.97, Lng: 77.59})
	require.Error(t, err)

	_, placed := marker.Position()
	assert.False(t, placed)
	assert.Empty(t, marker.Address())
}
