package geo

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultDebounce is how long keystrokes are coalesced before a lookup
	// fires.
	DefaultDebounce = 250 * time.Millisecond

	minQueryLength = 2
)

var pincodeQuery = regexp.MustCompile(`^\d{6}$`)

// LookupEngine drives the address autocomplete. A 6-digit query goes to
// the pincode API, anything else to place search. Results are cached per
// exact query string for the session, duplicate in-flight lookups for the
// same query are collapsed, and each keystroke supersedes the previous
// one: the debounce timer cancels a lookup that has not fired yet, and a
// response arriving for a superseded query is discarded instead of
// clobbering the newer results.
type LookupEngine struct {
	client   *Client
	debounce time.Duration
	log      log.FieldLogger

	// deliver receives the suggestion list for the most recent query; a nil
	// list clears the box.
	deliver func([]Suggestion)

	mu      sync.Mutex
	cache   map[string][]Suggestion
	timer   *time.Timer
	current uuid.UUID

	group singleflight.Group
}

func NewLookupEngine(client *Client, debounce time.Duration, deliver func([]Suggestion), logger log.FieldLogger) *LookupEngine {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &LookupEngine{
		client:   client,
		debounce: debounce,
		log:      logger,
		deliver:  deliver,
		cache:    make(map[string][]Suggestion),
	}
}

// Query handles one input change. Short queries clear the suggestion box
// immediately; cached queries resolve immediately; everything else is
// scheduled behind the debounce window.
func (e *LookupEngine) Query(ctx context.Context, query string) {
	query = strings.TrimSpace(query)

	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	token := uuid.New()
	e.current = token

	if len(query) < minQueryLength {
		e.mu.Unlock()
		e.deliver(nil)
		return
	}
	if cached, ok := e.cache[query]; ok {
		e.mu.Unlock()
		e.deliver(cached)
		return
	}

	e.timer = time.AfterFunc(e.debounce, func() {
		e.fire(ctx, query, token)
	})
	e.mu.Unlock()
}

// Lookup is the synchronous form used by the HTTP surface: same dispatch
// and cache, no debounce and no staleness bookkeeping.
func (e *LookupEngine) Lookup(ctx context.Context, query string) ([]Suggestion, error) {
	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		return nil, nil
	}

	e.mu.Lock()
	if cached, ok := e.cache[query]; ok {
		e.mu.Unlock()
		return cached, nil
	}
	e.mu.Unlock()

	results, err := e.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.cache[query] = results
	e.mu.Unlock()
	return results, nil
}

func (e *LookupEngine) fire(ctx context.Context, query string, token uuid.UUID) {
	results, err := e.fetch(ctx, query)
	if err != nil {
		// Degrade to no results; the failure never reaches the user.
		e.log.WithError(err).WithField("query", query).Warn("address lookup failed")
		return
	}

	e.mu.Lock()
	e.cache[query] = results
	stale := e.current != token
	e.mu.Unlock()

	if stale {
		// A newer keystroke owns the suggestion box now.
		return
	}
	e.deliver(results)
}

func (e *LookupEngine) fetch(ctx context.Context, query string) ([]Suggestion, error) {
	v, err, _ := e.group.Do(query, func() (interface{}, error) {
		if pincodeQuery.MatchString(query) {
			return e.client.Pincode(ctx, query)
		}
		return e.client.Search(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	results, _ := v.([]Suggestion)
	return results, nil
}
