package search

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
)

const (
	// PageSize is the fixed number of venues per result page.
	PageSize = 12

	// DefaultFilterPrice is the initial price ceiling of a new session.
	DefaultFilterPrice = 500
)

const (
	msgSearchFailed   = "Search failed. Please try again."
	msgSearchTimedOut = "Search timed out. Please try again."
)

// Searcher dispatches a remote venue search for a committed term.
type Searcher interface {
	SearchVenues(ctx context.Context, term string) ([]noroff.Venue, error)
}

// Snapshot is one consistent view of the engine: the current page of
// matching venues plus everything the client needs to render the results
// header, empty state, and pagination control.
type Snapshot struct {
	Venues       []noroff.Venue `json:"venues"`
	SearchTerm   string         `json:"search_term"`
	FilterPrice  float64        `json:"filter_price"`
	Page         int            `json:"page"`
	TotalPages   int            `json:"total_pages"`
	ResultCount  int            `json:"result_count"`
	ActiveSearch bool           `json:"active_search"`
	IsSearching  bool           `json:"is_searching"`
	SearchError  string         `json:"search_error,omitempty"`
}

// Engine derives a single consistent page of matching venues from four
// independently changing inputs: the full venue list, the live search
// text, the price ceiling, and the page number. Search text is committed
// on a trailing-edge debounce; each committed non-empty term dispatches
// exactly one remote search, and only the response for the latest
// committed term is ever applied.
type Engine struct {
	searcher Searcher
	debounce time.Duration
	timeout  time.Duration

	mu          sync.Mutex
	raw         string
	committed   string
	all         []noroff.Venue
	results     []noroff.Venue
	filterPrice float64
	page        int
	searching   bool
	searchErr   string

	timer    *time.Timer
	timerGen uint64 // invalidates pending debounce timers
	gen      uint64 // invalidates in-flight search responses

	subs   map[chan Snapshot]struct{}
	closed bool
}

// NewEngine creates an engine. debounce is the quiet interval before a
// term is committed; timeout bounds each remote search dispatch.
func NewEngine(searcher Searcher, debounce, timeout time.Duration) *Engine {
	return &Engine{
		searcher:    searcher,
		debounce:    debounce,
		timeout:     timeout,
		filterPrice: DefaultFilterPrice,
		page:        1,
		subs:        map[chan Snapshot]struct{}{},
	}
}

// SetAllVenues replaces the base venue list. An empty list is valid and
// yields zero results.
func (e *Engine) SetAllVenues(venues []noroff.Venue) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.all = venues
	e.notifyLocked()
}

// SetSearchTerm records a keystroke. The raw term updates immediately;
// the debounce timer is restarted, so only the last keystroke of a burst
// commits. No network I/O happens here.
func (e *Engine) SetSearchTerm(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.raw = text
	e.timerGen++
	gen := e.timerGen

	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.debounce, func() {
		e.fireDebounce(gen)
	})

	e.notifyLocked()
}

// fireDebounce commits the raw term if no further keystroke invalidated
// this timer in the meantime.
func (e *Engine) fireDebounce(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.timerGen {
		return
	}
	e.commitLocked(strings.TrimSpace(e.raw))
}

// commitLocked adopts a debounced term. Empty terms clear search state
// without a network call; a changed non-empty term dispatches exactly one
// search tagged with a fresh generation.
func (e *Engine) commitLocked(term string) {
	if term == e.committed {
		return
	}

	e.committed = term
	e.page = 1
	e.gen++

	if term == "" {
		e.results = nil
		e.searchErr = ""
		e.searching = false
		e.notifyLocked()
		return
	}

	e.searching = true
	e.searchErr = ""
	gen := e.gen
	go e.dispatch(gen, term)
	e.notifyLocked()
}

// dispatch runs the remote search and applies the response only if it is
// still the latest committed term's request.
func (e *Engine) dispatch(gen uint64, term string) {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	venues, err := e.searcher.SearchVenues(ctx, term)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.gen {
		// A newer term was committed while this request was in flight.
		return
	}

	e.searching = false
	if err != nil {
		e.results = nil
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			e.searchErr = msgSearchTimedOut
		} else {
			e.searchErr = msgSearchFailed
		}
	} else {
		e.results = venues
		e.searchErr = ""
	}
	e.notifyLocked()
}

// SetFilterPrice updates the price ceiling. The value is taken as-is; a
// changed ceiling resets to the first page.
func (e *Engine) SetFilterPrice(value float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if value == e.filterPrice {
		return
	}
	e.filterPrice = value
	e.page = 1
	e.notifyLocked()
}

// GoToPage clamps n to the valid page range and adopts it. It reports
// whether the page actually changed, which signals the caller's
// scroll-to-top side effect.
func (e *Engine) GoToPage(n int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := e.totalPagesLocked()
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}

	if n == e.page {
		return false
	}
	e.page = n
	e.notifyLocked()
	return true
}

// ClearSearch resets the term, cached results, and any error in one
// atomic update. A pending debounce timer and any in-flight request are
// invalidated.
func (e *Engine) ClearSearch() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.raw = ""
	e.timerGen++
	if e.timer != nil {
		e.timer.Stop()
	}

	e.committed = ""
	e.results = nil
	e.searchErr = ""
	e.searching = false
	e.page = 1
	e.gen++
	e.notifyLocked()
}

// Snapshot returns the current consistent view.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// effectiveLocked is the venue set in play: search results while a search
// is active, the full list otherwise.
func (e *Engine) effectiveLocked() []noroff.Venue {
	if e.committed != "" {
		return e.results
	}
	return e.all
}

// visibleLocked applies the price ceiling.
func (e *Engine) visibleLocked() []noroff.Venue {
	effective := e.effectiveLocked()
	visible := make([]noroff.Venue, 0, len(effective))
	for _, v := range effective {
		if v.Price <= e.filterPrice {
			visible = append(visible, v)
		}
	}
	return visible
}

func (e *Engine) totalPagesLocked() int {
	pages := int(math.Ceil(float64(len(e.visibleLocked())) / float64(PageSize)))
	if pages < 1 {
		pages = 1
	}
	return pages
}

func (e *Engine) snapshotLocked() Snapshot {
	visible := e.visibleLocked()

	totalPages := int(math.Ceil(float64(len(visible)) / float64(PageSize)))
	if totalPages < 1 {
		totalPages = 1
	}

	// A stale page number referencing a now-shorter list must never be
	// exposed.
	if e.page > totalPages {
		e.page = totalPages
	}
	if e.page < 1 {
		e.page = 1
	}

	start := (e.page - 1) * PageSize
	end := start + PageSize
	if end > len(visible) {
		end = len(visible)
	}
	if start > len(visible) {
		start = len(visible)
	}

	return Snapshot{
		Venues:       visible[start:end],
		SearchTerm:   e.raw,
		FilterPrice:  e.filterPrice,
		Page:         e.page,
		TotalPages:   totalPages,
		ResultCount:  len(visible),
		ActiveSearch: e.committed != "",
		IsSearching:  e.searching,
		SearchError:  e.searchErr,
	}
}

// Subscribe registers a snapshot listener. Every state change delivers a
// fresh snapshot; slow listeners miss intermediate states rather than
// blocking the engine. The returned func unsubscribes.
func (e *Engine) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 8)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	e.subs[ch] = struct{}{}
	e.mu.Unlock()

	return ch, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, ok := e.subs[ch]; ok {
			delete(e.subs, ch)
			close(ch)
		}
	}
}

func (e *Engine) notifyLocked() {
	if len(e.subs) == 0 {
		return
	}
	snap := e.snapshotLocked()
	for ch := range e.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

// Close discards the engine: the debounce timer is stopped, in-flight
// responses are dropped, and subscribers are closed.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.timerGen++
	e.gen++
	if e.timer != nil {
		e.timer.Stop()
	}
	for ch := range e.subs {
		close(ch)
	}
	e.subs = map[chan Snapshot]struct{}{}
}
