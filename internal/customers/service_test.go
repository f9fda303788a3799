package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/minjipark/tteokbang-backend/pkg/db/models"
	pkgerrors "github.com/minjipark/tteokbang-backend/pkg/errors"
	"github.com/minjipark/tteokbang-backend/pkg/pagination"
)

type stubCustomersRepo struct {
	nextID int64
	byID   map[int64]*models.Customer
}

func newStubCustomersRepo() *stubCustomersRepo {
	return &stubCustomersRepo{byID: make(map[int64]*models.Customer)}
}

func (s *stubCustomersRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubCustomersRepo) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	s.nextID++
	customer.ID = s.nextID
	copied := *customer
	s.byID[customer.ID] = &copied
	return customer, nil
}

func (s *stubCustomersRepo) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	customer, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *customer
	return &copied, nil
}

func (s *stubCustomersRepo) Update(ctx context.Context, customer *models.Customer) error {
	copied := *customer
	s.byID[customer.ID] = &copied
	return nil
}

func (s *stubCustomersRepo) Delete(ctx context.Context, id int64) error {
	delete(s.byID, id)
	return nil
}

func (s *stubCustomersRepo) List(ctx context.Context, params pagination.Params, query string) ([]models.Customer, string, error) {
	panic("not implemented")
}

func (s *stubCustomersRepo) ListAll(ctx context.Context) ([]models.Customer, error) {
	out := make([]models.Customer, 0, len(s.byID))
	for _, customer := range s.byID {
		out = append(out, *customer)
	}
	return out, nil
}

func TestCreateRequiresName(t *testing.T) {
	svc, err := NewService(newStubCustomersRepo())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CustomerInput{Phone: "010-1234-5678"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	svc, err := NewService(newStubCustomersRepo())
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), CustomerInput{
		Name:  "김철수",
		Phone: "010-1234-5678",
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "김철수", got.Name)
	assert.Equal(t, "010-1234-5678", got.Phone)
}

func TestUpdateUnknownCustomerReturnsNotFound(t *testing.T) {
	svc, err := NewService(newStubCustomersRepo())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), 99, CustomerInput{Name: "이영희"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestListByInitialFiltersCustomers(t *testing.T) {
	svc, err := NewService(newStubCustomersRepo())
	require.NoError(t, err)

	for _, name := range []string{"김철수", "이영희", "강민지"} {
		_, err := svc.Create(context.Background(), CustomerInput{Name: name})
		require.NoError(t, err)
	}

	views, err := svc.ListByInitial(context.Background(), 'ㄱ')
	require.NoError(t, err)
	names := make([]string, 0, len(views))
	for _, view := range views {
		names = append(names, view.Name)
	}
	assert.ElementsMatch(t, []string{"김철수", "강민지"}, names)
}
