package dto

import "time"

// CategoryDTO is the flattened transfer shape of a category: identifier
// plus denormalized display name, never an ownership edge to the entity.
type CategoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductDTO is the externally-facing projection of a product. Price is a
// decimal string to keep monetary precision across the wire.
type ProductDTO struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name" binding:"required"`
	Description string        `json:"description"`
	Price       string        `json:"price" binding:"required"`
	ImageURL    string        `json:"imgUrl"`
	Date        time.Time     `json:"date"`
	Categories  []CategoryDTO `json:"categories"`
}

// CategoryIDs returns the identifiers of the embedded categories, used by
// write paths to re-resolve category references.
func (d ProductDTO) CategoryIDs() []int64 {
	ids := make([]int64, 0, len(d.Categories))
	for _, c := range d.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// ProductProjection is the lightweight read-only shape returned by the
// first pass of the filtered search, before full rows are fetched.
type ProductProjection struct {
	ID   int64
	Name string
}

// ProductPage is a bounded slice of the ordered search result set plus the
// metadata needed to reconstruct the full set across repeated calls.
type ProductPage struct {
	Content       []ProductDTO `json:"content"`
	TotalElements int64        `json:"totalElements"`
	Page          int          `json:"page"`
	Size          int          `json:"size"`
}

// CategoryPage mirrors ProductPage for the category listing.
type CategoryPage struct {
	Content       []CategoryDTO `json:"content"`
	TotalElements int64         `json:"totalElements"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
}
