package products

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/minjipark/tteokbang-backend/pkg/db/models"
	"github.com/minjipark/tteokbang-backend/pkg/enums"
	pkgerrors "github.com/minjipark/tteokbang-backend/pkg/errors"
	"github.com/minjipark/tteokbang-backend/pkg/pagination"
)

type stubProductsRepo struct {
	nextID   int64
	byID     map[int64]*models.Product
	createFn func(ctx context.Context, product *models.Product) (*models.Product, error)
}

func newStubProductsRepo() *stubProductsRepo {
	return &stubProductsRepo{byID: make(map[int64]*models.Product)}
}

func (s *stubProductsRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubProductsRepo) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if s.createFn != nil {
		return s.createFn(ctx, product)
	}
	s.nextID++
	product.ID = s.nextID
	copied := *product
	s.byID[product.ID] = &copied
	return product, nil
}

func (s *stubProductsRepo) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	product, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *product
	return &copied, nil
}

func (s *stubProductsRepo) FindByIDs(ctx context.Context, ids []int64) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		if product, ok := s.byID[id]; ok {
			out = append(out, *product)
		}
	}
	return out, nil
}

func (s *stubProductsRepo) Update(ctx context.Context, product *models.Product) error {
	copied := *product
	s.byID[product.ID] = &copied
	return nil
}

func (s *stubProductsRepo) Delete(ctx context.Context, id int64) error {
	delete(s.byID, id)
	return nil
}

func (s *stubProductsRepo) List(ctx context.Context, params pagination.Params, query string) ([]models.Product, string, error) {
	panic("not implemented")
}

func (s *stubProductsRepo) ListAll(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(s.byID))
	for _, product := range s.byID {
		out = append(out, *product)
	}
	return out, nil
}

func dec(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func TestCreateComputesAvailableUnits(t *testing.T) {
	svc, err := NewService(newStubProductsRepo())
	require.NoError(t, err)

	view, err := svc.Create(context.Background(), ProductInput{
		Name:          "송편",
		PricePerKg:    dec("15000"),
		PricePerPiece: dec("500"),
	})
	require.NoError(t, err)
	assert.Equal(t, "송편", view.Name)
	assert.Equal(t, []enums.Unit{enums.UnitKg, enums.UnitPiece}, view.AvailableUnits)
}

func TestCreateDuplicateNameReturnsConflict(t *testing.T) {
	repo := newStubProductsRepo()
	repo.createFn = func(ctx context.Context, product *models.Product) (*models.Product, error) {
		return nil, &pgconn.PgError{Code: "23505", ConstraintName: "products_name_key"}
	}
	svc, err := NewService(repo)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), ProductInput{
		Name:       "송편",
		PricePerKg: dec("15000"),
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	svc, err := NewService(newStubProductsRepo())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), ProductInput{
		Name:       "백설기",
		PricePerKg: dec("-1"),
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestUpdateReplacesPriceSheet(t *testing.T) {
	repo := newStubProductsRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)

	view, err := svc.Create(context.Background(), ProductInput{
		Name:       "꿀떡",
		PricePerKg: dec("12000"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), view.ID, ProductInput{
		Name:         "꿀떡",
		PricePerPack: dec("4000"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.PricePerKg)
	assert.Equal(t, []enums.Unit{enums.UnitPack}, updated.AvailableUnits)
}

func TestGetUnknownProductReturnsNotFound(t *testing.T) {
	svc, err := NewService(newStubProductsRepo())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestListByInitialFiltersCatalog(t *testing.T) {
	repo := newStubProductsRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)

	for _, name := range []string{"송편", "시루떡", "꿀떡"} {
		_, err := svc.Create(context.Background(), ProductInput{Name: name, PricePerKg: dec("10000")})
		require.NoError(t, err)
	}

	views, err := svc.ListByInitial(context.Background(), 'ㅅ')
	require.NoError(t, err)
	names := make([]string, 0, len(views))
	for _, view := range views {
		names = append(names, view.Name)
	}
	assert.ElementsMatch(t, []string{"송편", "시루떡"}, names)
}

func TestListByInitialRejectsNonInitial(t *testing.T) {
	svc, err := NewService(newStubProductsRepo())
	require.NoError(t, err)

	_, err = svc.ListByInitial(context.Background(), 'x')
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
