package domain

import (
	"strconv"
	"time"
)

// DomainEvent is a fact about something that happened in the catalog.
// Events are persisted to the transactional outbox in the same commit as
// the mutation that produced them.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// ProductCreated is raised when a new product is persisted.
type ProductCreated struct {
	ProductID int64
	Name      string
	At        time.Time
}

func (e *ProductCreated) EventType() string { return "catalog.product.created" }
func (e *ProductCreated) AggregateID() string { return strconv.FormatInt(e.ProductID, 10) }
func (e *ProductCreated) OccurredAt() time.Time { return e.At }

// ProductUpdated is raised when a product is overwritten in place.
type ProductUpdated struct {
	ProductID int64
	At        time.Time
}

func (e *ProductUpdated) EventType() string { return "catalog.product.updated" }
func (e *ProductUpdated) AggregateID() string { return strconv.FormatInt(e.ProductID, 10) }
func (e *ProductUpdated) OccurredAt() time.Time { return e.At }

// ProductDeleted is raised when a product is removed from the store.
type ProductDeleted struct {
	ProductID int64
	At        time.Time
}

func (e *ProductDeleted) EventType() string { return "catalog.product.deleted" }
func (e *ProductDeleted) AggregateID() string { return strconv.FormatInt(e.ProductID, 10) }
func (e *ProductDeleted) OccurredAt() time.Time { return e.At }

// CategoryCreated is raised when a new category is persisted.
type CategoryCreated struct {
	CategoryID int64
	Name       string
	At         time.Time
}

func (e *CategoryCreated) EventType() string { return "catalog.category.created" }
func (e *CategoryCreated) AggregateID() string { return strconv.FormatInt(e.CategoryID, 10) }
func (e *CategoryCreated) OccurredAt() time.Time { return e.At }

// CategoryUpdated is raised when a category is renamed.
type CategoryUpdated struct {
	CategoryID int64
	Name       string
	At         time.Time
}

func (e *CategoryUpdated) EventType() string { return "catalog.category.updated" }
func (e *CategoryUpdated) AggregateID() string { return strconv.FormatInt(e.CategoryID, 10) }
func (e *CategoryUpdated) OccurredAt() time.Time { return e.At }

// CategoryDeleted is raised when a category is removed from the store.
type CategoryDeleted struct {
	CategoryID int64
	At         time.Time
}

func (e *CategoryDeleted) EventType() string { return "catalog.category.deleted" }
func (e *CategoryDeleted) AggregateID() string { return strconv.FormatInt(e.CategoryID, 10) }
func (e *CategoryDeleted) OccurredAt() time.Time { return e.At }
