// Package listing holds the state behind every resource screen: the current
// criteria, the last page received, the edit modal and the pending delete.
// One generic Controller is bound once per resource family.
package listing

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/qradmin/internal/admin/models"
	"github.com/dmitrijs2005/qradmin/internal/logging"
)

var (
	// ErrSuperseded is returned by a fetch whose result arrived after a newer
	// fetch was issued. Its result was discarded.
	ErrSuperseded = errors.New("superseded by a newer request")

	ErrNoSelection   = errors.New("nothing selected")
	ErrUnknownFilter = errors.New("unknown filter")
	ErrModalBusy     = errors.New("edit is being saved")
)

// Source is the remote collection a controller pages through.
type Source[T models.Entity, P models.Patch] interface {
	List(ctx context.Context, crit models.Criteria) (models.PagedResult[T], error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) error
}

type Status int

const (
	Idle Status = iota
	Loading
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

type Controller[T models.Entity, P models.Patch] struct {
	src     Source[T, P]
	filters []string
	logger  logging.Logger

	mu         sync.Mutex
	gen        uint64
	crit       models.Criteria
	status     Status
	items      []T
	totalPages int
	err        error
	edit       EditModal[T]
	pending    *T
}

// New returns a controller on page 1 with no search and no filters. filters
// names the categorical keys SetFilter accepts.
func New[T models.Entity, P models.Patch](src Source[T, P], pageSize int, filters []string, logger logging.Logger) *Controller[T, P] {
	return &Controller[T, P]{
		src:        src,
		filters:    slices.Clone(filters),
		logger:     logger,
		crit:       models.NewCriteria(pageSize),
		totalPages: 1,
	}
}

// Filters lists the keys accepted by SetFilter.
func (c *Controller[T, P]) Filters() []string {
	return slices.Clone(c.filters)
}

func (c *Controller[T, P]) SetSearch(ctx context.Context, text string) error {
	c.mu.Lock()
	c.crit.Search = text
	c.crit.Page = 1
	c.mu.Unlock()
	return c.Refetch(ctx)
}

// SetFilter sets one categorical filter; an empty value removes it.
func (c *Controller[T, P]) SetFilter(ctx context.Context, key, value string) error {
	if !slices.Contains(c.filters, key) {
		return fmt.Errorf("%w %q (allowed: %v)", ErrUnknownFilter, key, c.filters)
	}
	c.mu.Lock()
	if value == "" {
		delete(c.crit.Filters, key)
	} else {
		c.crit.Filters[key] = value
	}
	c.crit.Page = 1
	c.mu.Unlock()
	return c.Refetch(ctx)
}

// SetPage clamps n into the known page range and fetches that page.
func (c *Controller[T, P]) SetPage(ctx context.Context, n int) error {
	c.mu.Lock()
	c.crit.Page = models.ClampPage(n, c.totalPages)
	c.mu.Unlock()
	return c.Refetch(ctx)
}

func (c *Controller[T, P]) NextPage(ctx context.Context) error {
	c.mu.Lock()
	n := c.crit.Page + 1
	c.mu.Unlock()
	return c.SetPage(ctx, n)
}

func (c *Controller[T, P]) PrevPage(ctx context.Context) error {
	c.mu.Lock()
	n := c.crit.Page - 1
	c.mu.Unlock()
	return c.SetPage(ctx, n)
}

// Refetch loads the page for the current criteria. Only the most recently
// issued fetch may change state; older ones return ErrSuperseded. When the
// backend reports fewer pages than requested the page is clamped and fetched
// once more.
func (c *Controller[T, P]) Refetch(ctx context.Context) error {
	return c.fetch(ctx, true)
}

func (c *Controller[T, P]) fetch(ctx context.Context, mayClamp bool) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	crit := c.crit.Clone()
	c.status = Loading
	c.mu.Unlock()

	res, err := c.src.List(ctx, crit)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		c.logger.Debug(ctx, "discarding stale page", "page", crit.Page)
		return ErrSuperseded
	}
	if err != nil {
		// the last good page stays visible
		c.status = Failed
		c.err = err
		c.mu.Unlock()
		c.logger.Warn(ctx, "list fetch failed", "page", crit.Page, "error", err)
		return err
	}

	total := max(res.TotalPages, 1)
	if mayClamp && crit.Page > total {
		c.crit.Page = total
		c.totalPages = total
		c.mu.Unlock()
		c.logger.Debug(ctx, "page out of range, clamping", "page", crit.Page, "total_pages", total)
		return c.fetch(ctx, false)
	}

	c.items = res.Items
	c.totalPages = total
	c.status = Loaded
	c.err = nil
	c.mu.Unlock()
	return nil
}

// refreshAfterMutation refetches after a successful mutation. Being
// superseded is fine there: a newer fetch is already on its way.
func (c *Controller[T, P]) refreshAfterMutation(ctx context.Context) error {
	err := c.Refetch(ctx)
	if err == nil || errors.Is(err, ErrSuperseded) {
		return nil
	}
	return fmt.Errorf("refresh: %w", err)
}

// Snapshot is a copy of the controller state at one instant.
type Snapshot[T any] struct {
	Criteria      models.Criteria
	Status        Status
	Items         []T
	TotalPages    int
	Err           error
	Edit          EditModal[T]
	PendingDelete *T
}

func (c *Controller[T, P]) State() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Snapshot[T]{
		Criteria:   c.crit.Clone(),
		Status:     c.status,
		Items:      slices.Clone(c.items),
		TotalPages: c.totalPages,
		Err:        c.err,
		Edit:       c.edit.clone(),
	}
	if c.pending != nil {
		p := *c.pending
		s.PendingDelete = &p
	}
	return s
}
