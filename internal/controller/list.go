// Package controller holds the view-model layer of the client: list and
// form controllers own fetch/submit lifecycles as explicit state machines
// and expose pure derived views, so they are testable without a terminal.
package controller

import (
	"errors"
	"sort"
	"time"

	"github.com/foliohq/folio/internal/api"
)

// Phase is the fetch lifecycle of a list.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// Predicate builds a filter function for one filter key from its chosen
// value. The empty value and "all" mean no filter and are never passed in.
type Predicate[T any] func(value string) func(T) bool

// Comparator orders two items for one sort key: negative when a sorts
// before b.
type Comparator[T any] func(a, b T) int

// ListConfig wires a List to its entity type.
type ListConfig[T any] struct {
	// IDOf extracts the server id used by Delete.
	IDOf func(T) string

	// Pinned reports items that sort first regardless of the active sort
	// key. Nil means no pinning.
	Pinned func(T) bool

	Predicates  map[string]Predicate[T]
	Comparators map[string]Comparator[T]

	DefaultSort string
	PageSize    int

	// ServerPaged lists delegate filtering and pagination to the backend:
	// filter and page changes require a reload and Visible does not slice.
	ServerPaged bool
}

// List owns a fetched collection and its filtered/sorted/paginated view.
//
// Loads supersede: every BeginLoad gets a monotonically increasing sequence
// number and ApplyLoad discards any response that is not the latest, so a
// slow stale response can never overwrite a newer one.
type List[T any] struct {
	cfg ListConfig[T]

	items      []T
	phase      Phase
	errMsg     string
	lastUpdate time.Time

	filters  map[string]string
	sortKey  string
	sortDesc bool

	page       int
	totalCount int

	loadSeq    uint64
	appliedSeq uint64
}

// NewList creates an idle List with no items.
func NewList[T any](cfg ListConfig[T]) *List[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	return &List[T]{
		cfg:     cfg,
		phase:   PhaseIdle,
		filters: map[string]string{},
		sortKey: cfg.DefaultSort,
		page:    1,
	}
}

// ── fetch lifecycle ──────────────────────────────────────────────────────────

// BeginLoad marks the list loading and returns the sequence number the
// eventual ApplyLoad must present. Previous items stay visible while
// loading.
func (l *List[T]) BeginLoad() uint64 {
	l.loadSeq++
	l.phase = PhaseLoading
	return l.loadSeq
}

// ApplyLoad resolves a load. Stale sequences are discarded and false is
// returned. On failure previous items are kept (stale-but-present beats
// empty) and the error is converted to a user-presentable message.
func (l *List[T]) ApplyLoad(seq uint64, items []T, total int, err error) bool {
	if seq != l.loadSeq || seq <= l.appliedSeq {
		return false
	}
	l.appliedSeq = seq

	if err != nil {
		l.phase = PhaseFailed
		l.errMsg = api.UserMessage(err)
		return true
	}

	l.items = items
	l.errMsg = ""
	l.phase = PhaseReady
	l.lastUpdate = time.Now()
	if l.cfg.ServerPaged {
		l.totalCount = total
	} else {
		l.totalCount = len(items)
	}
	return true
}

// Loading reports whether a fetch is in flight.
func (l *List[T]) Loading() bool { return l.phase == PhaseLoading }

// Phase returns the current fetch lifecycle phase.
func (l *List[T]) Phase() Phase { return l.phase }

// Err returns the user-presentable error message, or "".
func (l *List[T]) Err() string { return l.errMsg }

// ClearError dismisses the current error message.
func (l *List[T]) ClearError() { l.errMsg = "" }

// LastUpdate returns the time of the last successful load.
func (l *List[T]) LastUpdate() time.Time { return l.lastUpdate }

// Items returns the raw fetched items (the current server page for
// server-paged lists).
func (l *List[T]) Items() []T { return l.items }

// ── filter / sort / pagination state ─────────────────────────────────────────

// SetFilter records a filter value. The empty string and "all" clear the
// key. The returned flag is true when the change requires a reload
// (server-paged lists reset to page 1 and re-fetch).
func (l *List[T]) SetFilter(key, value string) (reload bool) {
	if value == "" || value == "all" {
		delete(l.filters, key)
	} else {
		l.filters[key] = value
	}
	if l.cfg.ServerPaged {
		l.page = 1
		return true
	}
	l.page = 1
	return false
}

// Filter returns the current value for a filter key ("" when unset).
func (l *List[T]) Filter(key string) string { return l.filters[key] }

// SetSort sets the active sort key and direction.
func (l *List[T]) SetSort(key string, desc bool) {
	l.sortKey = key
	l.sortDesc = desc
}

// SortKey returns the active sort key.
func (l *List[T]) SortKey() string { return l.sortKey }

// SortDesc reports whether the sort direction is descending.
func (l *List[T]) SortDesc() bool { return l.sortDesc }

// SetPage moves to a 1-based page, clamped into range. The returned flag is
// true when the change requires a reload.
func (l *List[T]) SetPage(page int) (reload bool) {
	if page < 1 {
		page = 1
	}
	if pages := l.TotalPages(); pages > 0 && page > pages {
		page = pages
	}
	changed := page != l.page
	l.page = page
	return changed && l.cfg.ServerPaged
}

// Page returns the current 1-based page.
func (l *List[T]) Page() int { return l.page }

// PageSize returns the configured page size.
func (l *List[T]) PageSize() int { return l.cfg.PageSize }

// TotalCount returns the total item count: server-reported for server-paged
// lists, the filtered count otherwise.
func (l *List[T]) TotalCount() int {
	if l.cfg.ServerPaged {
		return l.totalCount
	}
	return len(l.filtered())
}

// TotalPages returns the page count for the current totals.
func (l *List[T]) TotalPages() int {
	total := l.TotalCount()
	if total == 0 {
		return 1
	}
	return (total + l.cfg.PageSize - 1) / l.cfg.PageSize
}

// Query returns the server-side query matching the current state, for
// server-paged lists to hand to the API client.
func (l *List[T]) Query() api.ListQuery {
	return api.ListQuery{
		Page:     l.page,
		PageSize: l.cfg.PageSize,
		Status:   l.filters["status"],
		Category: l.filters["category"],
		Search:   l.filters["search"],
	}
}

// ── derived view ─────────────────────────────────────────────────────────────

// Visible computes the filtered, sorted, paginated view of the items. It is
// pure: identical state yields identical output and the underlying items
// are never mutated.
func (l *List[T]) Visible() []T {
	out := l.filtered()
	l.sortInto(out)

	if l.cfg.ServerPaged {
		return out
	}

	start := (l.page - 1) * l.cfg.PageSize
	if start >= len(out) {
		return []T{}
	}
	end := start + l.cfg.PageSize
	if end > len(out) {
		end = len(out)
	}
	return out[start:end]
}

// filtered returns a fresh slice of items passing every active predicate.
func (l *List[T]) filtered() []T {
	out := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if l.matches(item) {
			out = append(out, item)
		}
	}
	return out
}

func (l *List[T]) matches(item T) bool {
	for key, value := range l.filters {
		build, ok := l.cfg.Predicates[key]
		if !ok {
			continue
		}
		if !build(value)(item) {
			return false
		}
	}
	return true
}

// sortInto stable-sorts items in place: pinned items first regardless of
// sort key, the active comparator within each group, input order on ties.
func (l *List[T]) sortInto(items []T) {
	cmp := l.cfg.Comparators[l.sortKey]
	pinned := l.cfg.Pinned
	if cmp == nil && pinned == nil {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		if pinned != nil {
			pi, pj := pinned(items[i]), pinned(items[j])
			if pi != pj {
				return pi
			}
		}
		if cmp == nil {
			return false
		}
		c := cmp(items[i], items[j])
		if l.sortDesc {
			c = -c
		}
		return c < 0
	})
}

// ── delete ───────────────────────────────────────────────────────────────────

// ApplyDelete resolves a delete call for id. Removal is
// optimistic-after-confirm: the item leaves local state only once the
// server confirmed. A 404 is treated as idempotent success (the row is
// gone either way), so it removes the item and surfaces no error. Any other
// failure leaves items untouched and sets a user-presentable message.
func (l *List[T]) ApplyDelete(id string, err error) (removed bool) {
	if err != nil && !errors.Is(err, api.ErrGone) {
		l.errMsg = api.UserMessage(err)
		return false
	}

	kept := l.items[:0:0]
	for _, item := range l.items {
		if l.cfg.IDOf != nil && l.cfg.IDOf(item) == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return false
	}

	l.items = kept
	if l.cfg.ServerPaged && l.totalCount > 0 {
		l.totalCount--
	}
	if l.page > l.TotalPages() {
		l.page = l.TotalPages()
	}
	return true
}
