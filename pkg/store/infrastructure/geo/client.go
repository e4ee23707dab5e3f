package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org"
	DefaultPincodeBaseURL   = "https://api.postalpincode.in"

	// Searches are biased to India, like the storefront they serve.
	countryBias = "in"
)

type Coord struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Suggestion is one autocomplete result.
type Suggestion struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat,omitempty"`
	Lon         string `json:"lon,omitempty"`
}

// PlaceAddress is the structured part of a reverse-geocode result.
type PlaceAddress struct {
	Road     string `json:"road"`
	Suburb   string `json:"suburb"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
}

// Place is a reverse-geocode result.
type Place struct {
	DisplayName string       `json:"display_name"`
	Address     PlaceAddress `json:"address"`
}

// Client talks to the two external geocoding services: the Nominatim
// search/reverse API and the PostalPincode lookup.
type Client struct {
	httpClient    *http.Client
	nominatimBase string
	pincodeBase   string
}

func NewClient(nominatimBase, pincodeBase string, timeout time.Duration) *Client {
	if nominatimBase == "" {
		nominatimBase = DefaultNominatimBaseURL
	}
	if pincodeBase == "" {
		pincodeBase = DefaultPincodeBaseURL
	}
	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		nominatimBase: nominatimBase,
		pincodeBase:   pincodeBase,
	}
}

// Search runs a free-text place search, limited to 5 results and biased to
// the storefront's country.
func (c *Client) Search(ctx context.Context, query string) ([]Suggestion, error) {
	u := fmt.Sprintf("%s/search?format=json&q=%s&addressdetails=1&limit=5&countrycodes=%s",
		c.nominatimBase, url.QueryEscape(query), countryBias)

	var results []Suggestion
	if err := c.getJSON(ctx, u, &results); err != nil {
		return nil, errors.Wrap(err, "place search")
	}
	return results, nil
}

type pincodeResponse struct {
	Status     string `json:"Status"`
	PostOffice []struct {
		Name     string `json:"Name"`
		District string `json:"District"`
		State    string `json:"State"`
		Pincode  string `json:"Pincode"`
	} `json:"PostOffice"`
}

// Pincode resolves a 6-digit postal code to its post-office localities.
// A non-success status yields no results, not an error.
func (c *Client) Pincode(ctx context.Context, code string) ([]Suggestion, error) {
	u := fmt.Sprintf("%s/pincode/%s", c.pincodeBase, url.PathEscape(code))

	var payload []pincodeResponse
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return nil, errors.Wrap(err, "pincode lookup")
	}
	if len(payload) == 0 || payload[0].Status != "Success" {
		return nil, nil
	}

	suggestions := make([]Suggestion, 0, len(payload[0].PostOffice))
	for _, po := range payload[0].PostOffice {
		suggestions = append(suggestions, Suggestion{
			DisplayName: fmt.Sprintf("%s, %s, %s (%s)", po.Name, po.District, po.State, po.Pincode),
		})
	}
	return suggestions, nil
}

// Reverse geocodes a coordinate to a display address.
func (c *Client) Reverse(ctx context.Context, coord Coord) (*Place, error) {
	u := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f&addressdetails=1",
		c.nominatimBase, coord.Lat, coord.Lng)

	var place Place
	if err := c.getJSON(ctx, u, &place); err != nil {
		return nil, errors.Wrap(err, "reverse geocode")
	}
	return &place, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
