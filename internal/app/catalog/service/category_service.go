package service

import (
	"context"
	"fmt"

	"github.com/tkoval/catalog-service/internal/app/catalog/contracts"
	"github.com/tkoval/catalog-service/internal/app/catalog/domain"
	"github.com/tkoval/catalog-service/internal/app/catalog/dto"
	"github.com/tkoval/catalog-service/internal/pkg/clock"
	commitplan "github.com/tkoval/catalog-service/internal/pkg/committer"
)

// CategoryService manages the category side of the catalog. Same
// transaction and error rules as products: a category referenced by any
// product cannot be deleted.
type CategoryService struct {
	reader    contracts.CategoryReader
	repo      contracts.CategoryRepo
	outbox    contracts.OutboxRepo
	committer contracts.Committer
	ids       contracts.IDGenerator
	clk       clock.Clock
}

func NewCategoryService(reader contracts.CategoryReader, repo contracts.CategoryRepo,
	outbox contracts.OutboxRepo, committer contracts.Committer,
	ids contracts.IDGenerator, clk clock.Clock) *CategoryService {
	return &CategoryService{
		reader:    reader,
		repo:      repo,
		outbox:    outbox,
		committer: committer,
		ids:       ids,
		clk:       clk,
	}
}

// FindAll returns one page of categories ordered by name.
func (s *CategoryService) FindAll(ctx context.Context, page contracts.PageRequest) (*dto.CategoryPage, error) {
	page = normalizePage(page)

	categories, total, err := s.reader.List(ctx, page)
	if err != nil {
		return nil, err
	}

	content := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		content = append(content, dto.FromCategory(c))
	}

	return &dto.CategoryPage{
		Content:       content,
		TotalElements: total,
		Page:          page.Page,
		Size:          page.Size,
	}, nil
}

// FindByID fails with domain.ErrNotFound when the identifier is absent.
func (s *CategoryService) FindByID(ctx context.Context, id int64) (*dto.CategoryDTO, error) {
	c, err := s.reader.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromCategory(c)
	return &out, nil
}

// Insert persists a new category and returns its transfer object with the
// generated identifier.
func (s *CategoryService) Insert(ctx context.Context, d dto.CategoryDTO) (*dto.CategoryDTO, error) {
	now := s.clk.Now()

	c, err := domain.NewCategory(d.Name, now)
	if err != nil {
		return nil, err
	}
	c.AssignID(s.ids.NextID())

	plan := commitplan.NewPlan()
	plan.Add(s.repo.InsertMut(c))

	for _, ev := range c.DomainEvents() {
		outboxEv, err := newOutboxEvent(ev, now)
		if err != nil {
			return nil, err
		}
		plan.Add(s.outbox.InsertMut(outboxEv))
	}

	if err := s.committer.Apply(ctx, plan); err != nil {
		return nil, translateStorageErr(err)
	}

	out := dto.FromCategory(c)
	return &out, nil
}

// Update renames an existing category. Like the product update, the row
// is not read first: the commit-time NotFound of the update mutation is
// translated to domain.ErrNotFound.
func (s *CategoryService) Update(ctx context.Context, id int64, d dto.CategoryDTO) (*dto.CategoryDTO, error) {
	now := s.clk.Now()

	c, err := domain.NewCategory(d.Name, now)
	if err != nil {
		return nil, err
	}

	plan := commitplan.NewPlan()
	plan.Add(s.repo.UpdateMut(id, c))

	outboxEv, err := newOutboxEvent(&domain.CategoryUpdated{CategoryID: id, Name: c.Name(), At: now}, now)
	if err != nil {
		return nil, err
	}
	plan.Add(s.outbox.InsertMut(outboxEv))

	if err := s.committer.Apply(ctx, plan); err != nil {
		return nil, translateStorageErr(err)
	}

	return &dto.CategoryDTO{ID: id, Name: c.Name()}, nil
}

// Delete removes a category unless some product still references it, in
// which case the store refuses and the failure surfaces as
// domain.ErrIntegrityViolation.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	exists, err := s.reader.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}

	now := s.clk.Now()

	plan := commitplan.NewPlan()
	plan.Add(s.repo.DeleteMut(id))

	outboxEv, err := newOutboxEvent(&domain.CategoryDeleted{CategoryID: id, At: now}, now)
	if err != nil {
		return err
	}
	plan.Add(s.outbox.InsertMut(outboxEv))

	if err := s.committer.Apply(ctx, plan); err != nil {
		return translateStorageErr(err)
	}
	return nil
}
