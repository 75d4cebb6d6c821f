package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tkoval/catalog-service/internal/app/catalog/contracts"
	"github.com/tkoval/catalog-service/internal/app/catalog/domain"
	"github.com/tkoval/catalog-service/internal/app/catalog/dto"
	"github.com/tkoval/catalog-service/internal/pkg/clock"
	commitplan "github.com/tkoval/catalog-service/internal/pkg/committer"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

var allowedSortFields = map[string]struct{}{
	"id":    {},
	"name":  {},
	"price": {},
	"date":  {},
}

// ProductService orchestrates search, lookup, creation, update and
// deletion of products. It owns the business rules between the HTTP
// resource layer and the store: existence checks against persisted state,
// referential-integrity-aware deletion, two-pass paginated search, and
// entity-to-transfer-object mapping with lazy category resolution.
type ProductService struct {
	reader    contracts.ProductReader
	repo      contracts.ProductRepo
	outbox    contracts.OutboxRepo
	committer contracts.Committer
	ids       contracts.IDGenerator
	clk       clock.Clock
}

func NewProductService(reader contracts.ProductReader, repo contracts.ProductRepo,
	outbox contracts.OutboxRepo, committer contracts.Committer,
	ids contracts.IDGenerator, clk clock.Clock) *ProductService {
	return &ProductService{
		reader:    reader,
		repo:      repo,
		outbox:    outbox,
		committer: committer,
		ids:       ids,
		clk:       clk,
	}
}

// Search returns one page of products matching a case-insensitive name
// substring and an optional category restriction (categoryID 0 means no
// filter). The search is two-pass: first the page of matching projections
// is resolved under the filter, then full rows are fetched for exactly
// those identifiers and reassembled in the page's order. The category
// join never multiplies or reorders rows within a page.
func (s *ProductService) Search(ctx context.Context, name string, categoryID int64, page contracts.PageRequest) (*dto.ProductPage, error) {
	page = normalizePage(page)
	filter := contracts.SearchFilter{
		Name:       strings.TrimSpace(name),
		CategoryID: categoryID,
	}

	projections, total, err := s.reader.Search(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	content := make([]dto.ProductDTO, 0, len(projections))
	if len(projections) > 0 {
		ids := make([]int64, 0, len(projections))
		for _, proj := range projections {
			ids = append(ids, proj.ID)
		}

		products, err := s.reader.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}

		byID := make(map[int64]*domain.Product, len(products))
		for _, p := range products {
			byID[p.ID()] = p
		}

		for _, proj := range projections {
			p, ok := byID[proj.ID]
			if !ok {
				// Row vanished between the two passes; reads are only
				// read-committed, so skip it.
				continue
			}
			content = append(content, dto.FromProduct(p))
		}
	}

	return &dto.ProductPage{
		Content:       content,
		TotalElements: total,
		Page:          page.Page,
		Size:          page.Size,
	}, nil
}

// FindByID returns the transfer object of one product, including its
// resolved categories. Fails with domain.ErrNotFound when the identifier
// is absent.
func (s *ProductService) FindByID(ctx context.Context, id int64) (*dto.ProductDTO, error) {
	p, err := s.reader.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// Insert persists a new product built from the transfer object's scalar
// fields, with category references resolved against the store first. The
// product row, its association rows, and the outbox event commit as one
// transaction. The generated identifier comes back in the returned
// transfer object.
func (s *ProductService) Insert(ctx context.Context, d dto.ProductDTO) (*dto.ProductDTO, error) {
	now := s.clk.Now()

	refs, err := s.resolveRefs(ctx, d)
	if err != nil {
		return nil, err
	}

	p, err := dto.NewProductFromDTO(d, now)
	if err != nil {
		return nil, err
	}
	p.AssignID(s.ids.NextID())
	p.ReplaceCategories(refs)

	plan := commitplan.NewPlan()
	plan.Add(s.repo.InsertMut(p))
	plan.Add(s.repo.CategoryMuts(p.ID(), refs)...)

	for _, ev := range p.DomainEvents() {
		outboxEv, err := newOutboxEvent(ev, now)
		if err != nil {
			return nil, err
		}
		plan.Add(s.outbox.InsertMut(outboxEv))
	}

	if err := s.committer.Apply(ctx, plan); err != nil {
		return nil, translateStorageErr(err)
	}

	out := dto.FromProduct(p)
	return &out, nil
}

// Update overwrites the scalar fields of an existing product from the
// transfer object and replaces its full category association set. The
// product itself is never read: the update mutation acts as the lazy
// reference, and a commit-time NotFound is translated to
// domain.ErrNotFound. Identity is preserved regardless of any identifier
// the transfer object carries.
func (s *ProductService) Update(ctx context.Context, id int64, d dto.ProductDTO) (*dto.ProductDTO, error) {
	now := s.clk.Now()

	refs, err := s.resolveRefs(ctx, d)
	if err != nil {
		return nil, err
	}

	// Detached carrier of the incoming scalar state; not loaded from the
	// store.
	p, err := dto.NewProductFromDTO(d, now)
	if err != nil {
		return nil, err
	}
	p.ReplaceCategories(refs)

	plan := commitplan.NewPlan()
	plan.Add(s.repo.UpdateMut(id, p))
	plan.Add(s.repo.ClearCategoriesMut(id))
	plan.Add(s.repo.CategoryMuts(id, refs)...)

	outboxEv, err := newOutboxEvent(&domain.ProductUpdated{ProductID: id, At: now}, now)
	if err != nil {
		return nil, err
	}
	plan.Add(s.outbox.InsertMut(outboxEv))

	if err := s.committer.Apply(ctx, plan); err != nil {
		err = translateStorageErr(err)
		// When the target row is absent the association inserts can trip
		// their foreign key before the update mutation reports NotFound.
		// Both mean the same thing here, so settle it with a lookup.
		if errors.Is(err, domain.ErrIntegrityViolation) {
			if exists, exErr := s.reader.Exists(ctx, id); exErr == nil && !exists {
				return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
			}
		}
		return nil, err
	}

	out := dto.FromProduct(p)
	out.ID = id
	return &out, nil
}

// Delete removes a product. The explicit existence check distinguishes
// "not found" from "found but blocked": an absent identifier fails with
// domain.ErrNotFound, while a store-level refusal to remove a product
// still referenced by dependent rows (order lines) fails with
// domain.ErrIntegrityViolation and leaves the record unchanged.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	exists, err := s.reader.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}

	now := s.clk.Now()

	plan := commitplan.NewPlan()
	plan.Add(s.repo.ClearCategoriesMut(id))
	plan.Add(s.repo.DeleteMut(id))

	outboxEv, err := newOutboxEvent(&domain.ProductDeleted{ProductID: id, At: now}, now)
	if err != nil {
		return err
	}
	plan.Add(s.outbox.InsertMut(outboxEv))

	if err := s.committer.Apply(ctx, plan); err != nil {
		return translateStorageErr(err)
	}
	return nil
}

// resolveRefs turns the transfer object's embedded category identifiers
// into resolved references. The association is a set: a repeated
// identifier collapses to one reference, so the plan never carries two
// inserts for the same association row. Constructing a reference never
// fails; the resolution against the store is where a dangling identifier
// surfaces as domain.ErrNotFound.
func (s *ProductService) resolveRefs(ctx context.Context, d dto.ProductDTO) ([]domain.CategoryRef, error) {
	seen := make(map[int64]struct{}, len(d.Categories))
	refs := make([]domain.CategoryRef, 0, len(d.Categories))
	for _, id := range d.CategoryIDs() {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		refs = append(refs, domain.CategoryRefFor(id))
	}
	return s.reader.ResolveCategoryRefs(ctx, refs)
}

// normalizePage clamps the page request and drops sort keys outside the
// whitelist. The reader appends the identifier tie-break.
func normalizePage(p contracts.PageRequest) contracts.PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}

	sort := make([]contracts.SortKey, 0, len(p.Sort))
	for _, key := range p.Sort {
		if _, ok := allowedSortFields[key.Field]; ok {
			sort = append(sort, key)
		}
	}
	p.Sort = sort
	return p
}
