package domain

import (
	"strings"
	"time"
)

// Category is a catalog entity referenced by products. Products hold
// references to categories; they never own or mutate category state.
type Category struct {
	id        int64
	name      string
	createdAt time.Time
	updatedAt time.Time
	events    []DomainEvent
}

// NewCategory creates a transient Category (no identifier yet).
func NewCategory(name string, now time.Time) (*Category, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	c := &Category{
		name:      strings.TrimSpace(name),
		createdAt: now,
		updatedAt: now,
	}
	return c, nil
}

// ReconstructCategory rebuilds a persisted Category from stored state.
func ReconstructCategory(id int64, name string, createdAt, updatedAt time.Time) *Category {
	return &Category{id: id, name: name, createdAt: createdAt, updatedAt: updatedAt}
}

func (c *Category) ID() int64 {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

// Persisted reports whether the category has been assigned an identifier.
func (c *Category) Persisted() bool {
	return c.id != 0
}

// AssignID gives a transient category its generated identifier.
func (c *Category) AssignID(id int64) {
	if c.id == 0 {
		c.id = id
		c.events = append(c.events, &CategoryCreated{CategoryID: id, Name: c.name, At: c.createdAt})
	}
}

func (c *Category) DomainEvents() []DomainEvent {
	return c.events
}

// CategoryRef is a lazy handle to a Category: a value that identifies a
// category without necessarily having loaded its state. Constructing one
// never fails; resolving it against the store may report ErrNotFound.
// The two states are explicit: identifier-only, or resolved with a name.
type CategoryRef struct {
	id       int64
	name     string
	resolved bool
}

// CategoryRefFor returns an identifier-only reference.
func CategoryRefFor(id int64) CategoryRef {
	return CategoryRef{id: id}
}

// ResolvedCategoryRef returns a reference carrying the category name.
func ResolvedCategoryRef(id int64, name string) CategoryRef {
	return CategoryRef{id: id, name: name, resolved: true}
}

func (r CategoryRef) ID() int64 {
	return r.id
}

// Resolved reports whether the reference has been loaded.
func (r CategoryRef) Resolved() bool {
	return r.resolved
}

// Name returns the category name and whether the reference carries one.
func (r CategoryRef) Name() (string, bool) {
	return r.name, r.resolved
}
