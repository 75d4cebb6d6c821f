package e2e

import (
	"context"
	"strconv"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkoval/catalog-service/internal/app/catalog/contracts"
	"github.com/tkoval/catalog-service/internal/app/catalog/domain"
	"github.com/tkoval/catalog-service/internal/app/catalog/dto"
	"github.com/tkoval/catalog-service/internal/models/m_orderitem"
)

func mustCreateCategory(ctx context.Context, t *testing.T, name string) dto.CategoryDTO {
	t.Helper()
	out, err := categories.Insert(ctx, dto.CategoryDTO{Name: name})
	require.NoError(t, err)
	require.NotZero(t, out.ID)
	return *out
}

func mustCreateProduct(ctx context.Context, t *testing.T, name, price string, cats ...dto.CategoryDTO) dto.ProductDTO {
	t.Helper()
	out, err := products.Insert(ctx, dto.ProductDTO{
		Name:        name,
		Description: "created by e2e",
		Price:       price,
		Date:        clk.Now(),
		Categories:  cats,
	})
	require.NoError(t, err)
	require.NotZero(t, out.ID)
	return *out
}

func TestProductCreationFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	computers := mustCreateCategory(ctx, t, "E2E Computers")
	created := mustCreateProduct(ctx, t, "E2E Macbook Pro", "1250.00", computers)

	fetched, err := products.FindByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "E2E Macbook Pro", fetched.Name)
	assert.Equal(t, "1250.00", fetched.Price)
	require.Len(t, fetched.Categories, 1)
	assert.Equal(t, computers.ID, fetched.Categories[0].ID)
	assert.Equal(t, "E2E Computers", fetched.Categories[0].Name)

	events := mustOutboxEvents(ctx, t, created.ID)
	require.Len(t, events, 1)
	assert.Equal(t, "catalog.product.created", events[0].Type)
	assert.Equal(t, "pending", events[0].Status)
	assert.Equal(t, created.ID, payloadID(t, events[0], "product_id"))
	assert.Equal(t, "E2E Macbook Pro", events[0].Payload["name"])
}

func TestProductSearchFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	books := mustCreateCategory(ctx, t, "E2E Books")
	electronics := mustCreateCategory(ctx, t, "E2E Electronics")

	mustCreateProduct(ctx, t, "E2E Search Phone", "399.00", electronics)
	mustCreateProduct(ctx, t, "E2E Search Novel", "12.50", books)
	mustCreateProduct(ctx, t, "E2E Search Cookbook", "25.00", books)

	// Name substring, case-insensitive.
	page, err := products.Search(ctx, "e2e search", 0, contracts.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalElements)
	require.Len(t, page.Content, 3)

	// Category restriction narrows the set without multiplying rows.
	page, err = products.Search(ctx, "e2e search", books.ID, contracts.PageRequest{
		Size: 10,
		Sort: []contracts.SortKey{{Field: "name"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalElements)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "E2E Search Cookbook", page.Content[0].Name)
	assert.Equal(t, "E2E Search Novel", page.Content[1].Name)
	for _, d := range page.Content {
		require.Len(t, d.Categories, 1, "each row carries its own categories exactly once")
	}
}

func TestProductSearchPaginationIsComplete(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cat := mustCreateCategory(ctx, t, "E2E Paging")
	const totalProducts = 5
	created := make(map[int64]struct{}, totalProducts)
	for i := 0; i < totalProducts; i++ {
		p := mustCreateProduct(ctx, t, "E2E Paging Item "+strconv.Itoa(i), "10.00", cat)
		created[p.ID] = struct{}{}
	}

	// Walk all pages of size 2; the union must be exactly the created set.
	seen := make(map[int64]struct{})
	for pageNum := 0; ; pageNum++ {
		page, err := products.Search(ctx, "e2e paging item", cat.ID, contracts.PageRequest{
			Page: pageNum,
			Size: 2,
			Sort: []contracts.SortKey{{Field: "date"}},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(totalProducts), page.TotalElements)
		if len(page.Content) == 0 {
			break
		}
		for _, d := range page.Content {
			_, dup := seen[d.ID]
			require.False(t, dup, "product %d appeared on two pages", d.ID)
			seen[d.ID] = struct{}{}
		}
	}
	assert.Equal(t, created, seen)
}

func TestProductUpdateFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	books := mustCreateCategory(ctx, t, "E2E Update Books")
	games := mustCreateCategory(ctx, t, "E2E Update Games")
	created := mustCreateProduct(ctx, t, "E2E Update Before", "30.00", books)

	clk.Advance(time.Minute)

	updated, err := products.Update(ctx, created.ID, dto.ProductDTO{
		Name:       "E2E Update After",
		Price:      "35.00",
		Date:       clk.Now(),
		Categories: []dto.CategoryDTO{{ID: games.ID}},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "identity survives the overwrite")

	fetched, err := products.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "E2E Update After", fetched.Name)
	assert.Equal(t, "35.00", fetched.Price)
	require.Len(t, fetched.Categories, 1, "the association set is replaced, not appended")
	assert.Equal(t, games.ID, fetched.Categories[0].ID)

	events := mustOutboxEvents(ctx, t, created.ID)
	require.GreaterOrEqual(t, len(events), 2)
	assert.Equal(t, []string{"catalog.product.created", "catalog.product.updated"}, eventTypes(events)[:2])
}

func TestProductUpdate_AbsentID(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := products.Update(ctx, 1000, dto.ProductDTO{
		Name:  "E2E Ghost",
		Price: "1.00",
		Date:  clk.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_AbsentIDWithCategory(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// With a real category attached, the commit carries an association
	// insert whose foreign key also fails for an absent product. The
	// caller must still see not-found, whichever constraint fires first.
	cat := mustCreateCategory(ctx, t, "E2E Ghost Category")

	_, err := products.Update(ctx, 1000, dto.ProductDTO{
		Name:       "E2E Ghost",
		Price:      "1.00",
		Date:       clk.Now(),
		Categories: []dto.CategoryDTO{{ID: cat.ID}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrIntegrityViolation)
}

func TestProductDelete_BlockedByOrderLine(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cat := mustCreateCategory(ctx, t, "E2E Blocked Delete")
	created := mustCreateProduct(ctx, t, "E2E Referenced Product", "50.00", cat)

	// A dependent order line pins the product in place.
	_, err := spClient.Apply(ctx, []*spanner.Mutation{
		m_orderitem.InsertMutation(created.ID+500000, created.ID, 2, clk.Now()),
	})
	require.NoError(t, err)

	err = products.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrIntegrityViolation)

	// The record is unchanged.
	fetched, err := products.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "E2E Referenced Product", fetched.Name)
}

func TestProductDelete_Flow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cat := mustCreateCategory(ctx, t, "E2E Delete")
	created := mustCreateProduct(ctx, t, "E2E Deletable", "5.00", cat)

	require.NoError(t, products.Delete(ctx, created.ID))

	_, err := products.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting again is a not-found, not a silent success.
	assert.ErrorIs(t, products.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestCategoryDelete_BlockedByProduct(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cat := mustCreateCategory(ctx, t, "E2E Category In Use")
	mustCreateProduct(ctx, t, "E2E Category User", "9.99", cat)

	err := categories.Delete(ctx, cat.ID)
	assert.ErrorIs(t, err, domain.ErrIntegrityViolation)

	fetched, err := categories.FindByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "E2E Category In Use", fetched.Name)
}

func TestCategoryRenameFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cat := mustCreateCategory(ctx, t, "E2E Rename Before")

	out, err := categories.Update(ctx, cat.ID, dto.CategoryDTO{Name: "E2E Rename After"})
	require.NoError(t, err)
	assert.Equal(t, cat.ID, out.ID)

	fetched, err := categories.FindByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "E2E Rename After", fetched.Name)

	// Renaming through a product read shows the fresh name immediately.
	p := mustCreateProduct(ctx, t, "E2E Rename Viewer", "1.00", *fetched)
	got, err := products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, "E2E Rename After", got.Categories[0].Name)
}
