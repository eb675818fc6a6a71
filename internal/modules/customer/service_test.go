package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer_Validation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateCustomerRequest
	}{
		{"missing name", CreateCustomerRequest{Email: "a@b.com", Phone: "0555"}},
		{"missing email", CreateCustomerRequest{Name: "Amina", Phone: "0555"}},
		{"missing phone", CreateCustomerRequest{Name: "Amina", Email: "a@b.com"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req)
			assert.Error(t, err)
		})
	}
}

func TestCreateCustomer_DuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCustomerRequest{Name: "Amina", Email: "a@b.com", Phone: "0555"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateCustomerRequest{Name: "Karim", Email: "a@b.com", Phone: "0666"})
	assert.ErrorContains(t, err, "already in use")
}

func TestUpdateCustomer_PatchesOnlySuppliedFields(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateCustomerRequest{
		Name: "Amina", Email: "a@b.com", Phone: "0555", City: "Algiers",
	})
	require.NoError(t, err)

	city := "Oran"
	updated, err := svc.Update(ctx, c.ID, UpdateCustomerRequest{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Oran", updated.City)
	assert.Equal(t, "Amina", updated.Name)
	assert.Equal(t, "a@b.com", updated.Email)
}

func TestUpdateCustomer_EmailMustStayUnique(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCustomerRequest{Name: "Amina", Email: "a@b.com", Phone: "0555"})
	require.NoError(t, err)
	other, err := svc.Create(ctx, CreateCustomerRequest{Name: "Karim", Email: "k@b.com", Phone: "0666"})
	require.NoError(t, err)

	taken := "a@b.com"
	_, err = svc.Update(ctx, other.ID, UpdateCustomerRequest{Email: &taken})
	assert.ErrorContains(t, err, "already in use")

	// Re-submitting the current email is not a conflict.
	keep := "k@b.com"
	_, err = svc.Update(ctx, other.ID, UpdateCustomerRequest{Email: &keep})
	assert.NoError(t, err)
}

func TestDeleteCustomer_ThenGetFails(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateCustomerRequest{Name: "Amina", Email: "a@b.com", Phone: "0555"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, c.ID))

	_, err = svc.Get(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
