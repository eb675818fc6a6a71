package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterUser_HashesPasswordAndDefaultsRole(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	u, err := svc.RegisterUser(context.Background(), "Amina", "amina@example.com", "s3cret!")
	require.NoError(t, err)

	assert.Equal(t, "customer", u.Role)
	assert.NotEqual(t, "s3cret!", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret!")))
}

func TestRegisterUser_Validation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "", "a@b.com", "s3cret!")
	assert.ErrorContains(t, err, "name")

	_, err = svc.RegisterUser(ctx, "Amina", "", "s3cret!")
	assert.ErrorContains(t, err, "email")

	_, err = svc.RegisterUser(ctx, "Amina", "a@b.com", "short")
	assert.ErrorContains(t, err, "password")
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "Amina", "a@b.com", "s3cret!")
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, "Karim", "a@b.com", "s3cret!")
	assert.ErrorContains(t, err, "already registered")
}
