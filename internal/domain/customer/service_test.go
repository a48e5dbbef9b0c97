package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardpos/internal/core/apperror"
	"hardpos/internal/core/id"
)

type stubRepo struct {
	findErr  error
	existing *Customer
	created  *Customer
}

func (r *stubRepo) Create(ctx context.Context, c *Customer) error {
	r.created = c
	return nil
}

func (r *stubRepo) Update(ctx context.Context, c *Customer) error { return nil }

func (r *stubRepo) GetByID(ctx context.Context, customerID id.ID) (*Customer, error) {
	return nil, apperror.NewNotFound("customer", customerID.String())
}

func (r *stubRepo) FindByPhone(ctx context.Context, phone string) (*Customer, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.existing != nil {
		return r.existing, nil
	}
	return nil, apperror.NewNotFound("customer", phone)
}

func (r *stubRepo) List(ctx context.Context, f Filter) ([]Customer, error) { return nil, nil }

func (r *stubRepo) GetStats(ctx context.Context) (Stats, error) { return Stats{}, nil }

func TestRegister_NewCustomer(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nil)

	c := NewCustomer("Rajesh Kumar", "9876543210", "", "")
	require.NoError(t, svc.Register(context.Background(), c))
	assert.Same(t, c, repo.created)
}

func TestRegister_DuplicatePhone(t *testing.T) {
	repo := &stubRepo{existing: NewCustomer("Sunita Sharma", "9876543210", "", "")}
	svc := NewService(repo, nil)

	err := svc.Register(context.Background(), NewCustomer("Rajesh Kumar", "9876543210", "", ""))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
	assert.Nil(t, repo.created)
}

func TestRegister_PhoneLookupErrorPropagates(t *testing.T) {
	repo := &stubRepo{findErr: errors.New("connection reset")}
	svc := NewService(repo, nil)

	err := svc.Register(context.Background(), NewCustomer("Rajesh Kumar", "9876543210", "", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Nil(t, repo.created)
}
