package auth

import (
	"context"
	"strconv"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souqline/souq-backend/internal/modules/user"
)

func TestLogin_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := user.NewMemoryRepository()
	users := user.NewService(repo)
	auth := NewService(repo, "test-secret")

	u, err := users.RegisterUser(ctx, "Amina", "amina@example.com", "s3cret!")
	require.NoError(t, err)

	tokenString, err := auth.Login(ctx, "amina@example.com", "s3cret!")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, strconv.Itoa(u.ID), claims.Subject)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	repo := user.NewMemoryRepository()
	users := user.NewService(repo)
	auth := NewService(repo, "test-secret")

	_, err := users.RegisterUser(ctx, "Amina", "amina@example.com", "s3cret!")
	require.NoError(t, err)

	_, err = auth.Login(ctx, "amina@example.com", "wrong")
	assert.ErrorContains(t, err, "invalid credentials")

	_, err = auth.Login(ctx, "nobody@example.com", "s3cret!")
	assert.ErrorContains(t, err, "invalid credentials")
}
