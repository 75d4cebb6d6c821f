package domain

import (
	"strings"
	"time"
)

// Product is the aggregate root of the catalog. A persisted Product always
// has a non-zero identifier; a transient one never does.
type Product struct {
	id          int64
	name        string
	description string
	price       *Money
	imageURL    string
	date        time.Time
	createdAt   time.Time
	updatedAt   time.Time
	categories  []CategoryRef
	events      []DomainEvent
}

// NewProduct creates a transient Product from scalar fields.
// The identifier is assigned at persist time via AssignID.
func NewProduct(name, description string, price *Money, imageURL string, date time.Time, now time.Time) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	return &Product{
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		price:       price,
		imageURL:    strings.TrimSpace(imageURL),
		date:        date,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructProduct rebuilds a persisted Product from stored state.
// Used by the read model when loading rows.
func ReconstructProduct(id int64, name, description string, price *Money, imageURL string,
	date, createdAt, updatedAt time.Time, categories []CategoryRef) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		imageURL:    imageURL,
		date:        date,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		categories:  categories,
	}
}

// Getters

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() *Money {
	return p.price
}

func (p *Product) ImageURL() string {
	return p.imageURL
}

func (p *Product) Date() time.Time {
	return p.date
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Product) Categories() []CategoryRef {
	return p.categories
}

func (p *Product) DomainEvents() []DomainEvent {
	return p.events
}

// Persisted reports whether the product has been assigned an identifier.
func (p *Product) Persisted() bool {
	return p.id != 0
}

// AssignID gives a transient product its generated identifier.
// Assigning twice is a no-op; identity is immutable once set.
func (p *Product) AssignID(id int64) {
	if p.id == 0 {
		p.id = id
		p.events = append(p.events, &ProductCreated{ProductID: id, Name: p.name, At: p.createdAt})
	}
}

// ReplaceCategories replaces the full association set. The update path
// clears and rebuilds associations rather than diffing them.
func (p *Product) ReplaceCategories(refs []CategoryRef) {
	p.categories = refs
}

// Validation helpers

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	if len(trimmed) > 255 {
		return ErrNameTooLong
	}
	return nil
}

func validatePrice(price *Money) error {
	if price == nil {
		return ErrNilPrice
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
