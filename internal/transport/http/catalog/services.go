package catalog

import (
	"context"

	"github.com/tkoval/catalog-service/internal/app/catalog/contracts"
	"github.com/tkoval/catalog-service/internal/app/catalog/dto"
)

// ProductService is the slice of the application layer the transport
// depends on: exactly the five product operations.
type ProductService interface {
	Search(ctx context.Context, name string, categoryID int64, page contracts.PageRequest) (*dto.ProductPage, error)
	FindByID(ctx context.Context, id int64) (*dto.ProductDTO, error)
	Insert(ctx context.Context, d dto.ProductDTO) (*dto.ProductDTO, error)
	Update(ctx context.Context, id int64, d dto.ProductDTO) (*dto.ProductDTO, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryService mirrors ProductService for categories.
type CategoryService interface {
	FindAll(ctx context.Context, page contracts.PageRequest) (*dto.CategoryPage, error)
	FindByID(ctx context.Context, id int64) (*dto.CategoryDTO, error)
	Insert(ctx context.Context, d dto.CategoryDTO) (*dto.CategoryDTO, error)
	Update(ctx context.Context, id int64, d dto.CategoryDTO) (*dto.CategoryDTO, error)
	Delete(ctx context.Context, id int64) error
}
