package search

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"cookly/models"
)

const (
	DefaultDebounce = 400 * time.Millisecond
	DefaultLatency  = 200 * time.Millisecond
)

// Matcher computes the result set for one input. It may honour ctx to stop early.
type Matcher func(ctx context.Context, recipes []models.Recipe, query string, filters models.SearchFilters) ([]models.Recipe, error)

func filterMatcher(_ context.Context, recipes []models.Recipe, query string, filters models.SearchFilters) ([]models.Recipe, error) {
	return Filter(recipes, query, filters), nil
}

// Snapshot is the engine's observable state after one transition.
type Snapshot struct {
	Query     string               `json:"query"`
	Filters   models.SearchFilters `json:"filters"`
	Results   []models.Recipe      `json:"results"`
	State     models.SearchState   `json:"state"`
	IsLoading bool                 `json:"isLoading"`
	Err       error                `json:"-"`
	Error     string               `json:"error,omitempty"`
	Seq       uint64               `json:"seq"`
}

type Option func(*Engine)

// WithDebounce sets the quiet period after the last input before searching.
func WithDebounce(d time.Duration) Option {
	return func(e *Engine) { e.debounce = d }
}

// WithLatency sets the extra delay between the debounce firing and the search running.
func WithLatency(d time.Duration) Option {
	return func(e *Engine) { e.latency = d }
}

func WithMatcher(m Matcher) Option {
	return func(e *Engine) {
		if m != nil {
			e.match = m
		}
	}
}

// Engine runs debounced, last-write-wins searches over an in-memory recipe set.
// Each consumer (one websocket session, one test) owns its own Engine.
type Engine struct {
	recipes  []models.Recipe
	debounce time.Duration
	latency  time.Duration
	match    Matcher

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	snap    Snapshot
	updates chan Snapshot
	closed  bool
	wg      sync.WaitGroup
}

func NewEngine(recipes []models.Recipe, opts ...Option) *Engine {
	e := &Engine{
		recipes:  recipes,
		debounce: DefaultDebounce,
		latency:  DefaultLatency,
		match:    filterMatcher,
		snap:     Snapshot{State: models.SearchIdle, Results: []models.Recipe{}},
		updates:  make(chan Snapshot, 1),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Update supersedes any pending search with a new input. An idle input
// settles synchronously; anything else enters searching and schedules a run.
func (e *Engine) Update(query string, filters models.SearchFilters) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.gen++

	if IsIdle(query, filters) {
		e.publishLocked(Snapshot{
			Query:   query,
			Filters: filters,
			Results: []models.Recipe{},
			State:   models.SearchIdle,
		})
		return
	}

	e.publishLocked(Snapshot{
		Query:     query,
		Filters:   filters,
		Results:   e.snap.Results,
		State:     models.SearchSearching,
		IsLoading: true,
	})

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.wg.Add(1)
	go e.run(ctx, e.gen, query, filters)
}

func (e *Engine) run(ctx context.Context, gen uint64, query string, filters models.SearchFilters) {
	defer e.wg.Done()

	if !sleep(ctx, e.debounce) || !sleep(ctx, e.latency) {
		return
	}

	results, err := e.safeMatch(ctx, query, filters)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.gen {
		return
	}
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}

	next := Snapshot{Query: query, Filters: filters}
	if err != nil {
		log.Printf("[SearchEngine] query=%q failed: %v", query, err)
		next.State = models.SearchError
		next.Err = err
		next.Error = err.Error()
		next.Results = []models.Recipe{}
	} else {
		if results == nil {
			results = []models.Recipe{}
		}
		next.State = StateFor(results)
		next.Results = results
	}
	e.publishLocked(next)
}

func (e *Engine) safeMatch(ctx context.Context, query string, filters models.SearchFilters) (results []models.Recipe, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = fmt.Errorf("search panicked: %v", r)
		}
	}()
	return e.match(ctx, e.recipes, query, filters)
}

// publishLocked replaces any unread update, so a slow reader sees only the latest state.
func (e *Engine) publishLocked(s Snapshot) {
	s.Seq = e.snap.Seq + 1
	e.snap = s
	select {
	case <-e.updates:
	default:
	}
	e.updates <- s
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snap
}

// Updates delivers state changes, coalesced to the latest. It is closed by Close.
func (e *Engine) Updates() <-chan Snapshot {
	return e.updates
}

// Close cancels any pending search and waits for it to exit. Nothing is
// published after Close returns.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	close(e.updates)
	e.mu.Unlock()

	e.wg.Wait()
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
