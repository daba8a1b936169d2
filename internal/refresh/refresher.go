package refresh

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maxwell903/maxandjacob-sub000/internal/backend"
	"github.com/maxwell903/maxandjacob-sub000/internal/grocery"
	"github.com/maxwell903/maxandjacob-sub000/internal/model"
)

// Source supplies fridge and list snapshots. *backend.Client satisfies it.
type Source interface {
	Snapshot(ctx context.Context, listID int64) (*backend.Snapshot, error)
}

// Result is one reconciled view of a grocery list.
type Result struct {
	ListID    int64           `json:"list_id"`
	ListName  string          `json:"list_name,omitempty"`
	Filter    string          `json:"filter"`
	Buckets   grocery.Buckets `json:"buckets"`
	Summary   grocery.Summary `json:"summary"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Status describes the refresher's recent activity.
type Status struct {
	LastAttempt time.Time
	LastSuccess time.Time
	LastError   error
	Updates     int
}

// Config controls what is refreshed and how often.
type Config struct {
	ListID   int64
	Interval time.Duration
	Filter   grocery.ViewFilter
	// Buffer is the channel size handed to each subscriber.
	Buffer int
}

// Refresher periodically fetches a list and the fridge, reconciles them and
// publishes the result to subscribers whenever either snapshot changes.
type Refresher struct {
	src    Source
	cfg    Config
	logger *slog.Logger

	trigger chan struct{}

	mu      sync.RWMutex
	cancel  context.CancelFunc
	done    chan struct{}
	stopped bool
	latest  *Result
	status  Status
	subs    map[string]chan Result
	fridge  []model.FridgeItem
	list    *model.GroceryList
	entries []grocery.Entry
}

// New creates a refresher. It does nothing until Start or Refresh is called.
func New(src Source, cfg Config, logger *slog.Logger) *Refresher {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = 4
	}
	return &Refresher{
		src:     src,
		cfg:     cfg,
		logger:  logger.With("component", "refresh", "list_id", cfg.ListID),
		trigger: make(chan struct{}, 1),
		subs:    make(map[string]chan Result),
	}
}

// Start runs an immediate refresh and then one per interval until ctx is
// done or Stop is called. A Refresher runs at most once; later calls to
// Start do nothing.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	if r.done != nil {
		r.mu.Unlock()
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	done := make(chan struct{})
	r.done = done
	r.mu.Unlock()

	go func() {
		defer close(done)
		defer r.closeSubscribers()

		ticker := time.NewTicker(r.cfg.Interval)
		defer ticker.Stop()

		r.Refresh(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Refresh(ctx)
			case <-r.trigger:
				r.Refresh(ctx)
			}
		}
	}()
}

// Stop ends the loop and waits for it to exit. Subscriber channels are closed.
func (r *Refresher) Stop() {
	r.mu.RLock()
	cancel := r.cancel
	done := r.done
	r.mu.RUnlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Trigger requests a refresh outside the ticker. Requests made while one is
// already pending are coalesced.
func (r *Refresher) Trigger() {
	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

// Refresh fetches one snapshot and reconciles it. It reports whether a new
// result was published. On error the previous result is kept.
func (r *Refresher) Refresh(ctx context.Context) (bool, error) {
	now := time.Now()
	snap, err := r.src.Snapshot(ctx, r.cfg.ListID)

	r.mu.Lock()
	r.status.LastAttempt = now
	if err != nil {
		r.status.LastError = err
		r.mu.Unlock()
		r.logger.Warn("refresh failed, keeping last result", "error", err)
		return false, err
	}
	r.status.LastSuccess = now
	r.status.LastError = nil

	listChanged := r.list == nil || r.list.Name != snap.List.Name || !slices.Equal(r.list.Items, snap.List.Items)
	fridgeChanged := r.latest == nil || !slices.Equal(r.fridge, snap.Fridge)
	if !listChanged && !fridgeChanged {
		r.mu.Unlock()
		return false, nil
	}

	if listChanged {
		r.list = snap.List
		r.entries = grocery.Parse(snap.List.Items)
	}
	r.fridge = snap.Fridge

	buckets := grocery.ReconcileEntries(r.entries, grocery.NewStockIndex(r.fridge), r.cfg.Filter)
	res := Result{
		ListID:    r.cfg.ListID,
		ListName:  r.list.Name,
		Filter:    r.cfg.Filter.String(),
		Buckets:   buckets,
		Summary:   buckets.Summary(),
		UpdatedAt: snap.FetchedAt,
	}
	r.latest = &res
	r.status.Updates++
	r.mu.Unlock()

	r.logger.Debug("list reconciled",
		"list_changed", listChanged,
		"fridge_changed", fridgeChanged,
		"needed", res.Summary.Needed,
		"in_stock", res.Summary.InStock,
	)
	r.publish(res)
	return true, nil
}

// Latest returns the most recent result, or nil before the first success.
func (r *Refresher) Latest() *Result {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.latest == nil {
		return nil
	}
	res := *r.latest
	return &res
}

// Status returns the refresher's current status.
func (r *Refresher) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

// Subscribe registers a new subscriber and returns its id and channel.
// Once the loop has exited the channel is returned already closed.
func (r *Refresher) Subscribe() (string, <-chan Result) {
	id := uuid.NewString()
	ch := make(chan Result, r.cfg.Buffer)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		close(ch)
		return id, ch
	}
	r.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (r *Refresher) Unsubscribe(id string) {
	r.mu.Lock()
	if ch, ok := r.subs[id]; ok {
		delete(r.subs, id)
		close(ch)
	}
	r.mu.Unlock()
}

// SubscriberCount returns the number of registered subscribers.
func (r *Refresher) SubscriberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}

func (r *Refresher) publish(res Result) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, ch := range r.subs {
		select {
		case ch <- res:
		default:
			r.logger.Debug("subscriber buffer full, dropping update", "subscriber", id)
		}
	}
}

func (r *Refresher) closeSubscribers() {
	r.mu.Lock()
	r.stopped = true
	for id, ch := range r.subs {
		delete(r.subs, id)
		close(ch)
	}
	r.mu.Unlock()
}
