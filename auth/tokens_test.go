package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MehradEsmaeilZad81/TodoList/apperror"
)

const testSecret = "test-secret-0123456789"

func TestTokenManager_IssueVerify_RoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, "todolist", time.Hour)

	token, err := m.Issue(42, "john@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id.UserID)
	assert.Equal(t, "john@example.com", id.Email)
}

func TestTokenManager_TokensAreUnique(t *testing.T) {
	m := NewTokenManager(testSecret, "todolist", time.Hour)
	a, err := m.Issue(1, "a@example.com")
	require.NoError(t, err)
	b, err := m.Issue(1, "a@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestTokenManager_Verify_Rejects(t *testing.T) {
	m := NewTokenManager(testSecret, "todolist", time.Hour)
	valid, err := m.Issue(7, "x@example.com")
	require.NoError(t, err)

	expiredIssuer := NewTokenManager(testSecret, "todolist", time.Hour)
	expiredIssuer.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expired, err := expiredIssuer.Issue(7, "x@example.com")
	require.NoError(t, err)

	otherSecret, err := NewTokenManager("another-secret-0123456789", "todolist", time.Hour).Issue(7, "x@example.com")
	require.NoError(t, err)

	otherIssuer, err := NewTokenManager(testSecret, "someone-else", time.Hour).Issue(7, "x@example.com")
	require.NoError(t, err)

	now := time.Now()
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			Issuer:    "todolist",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "7", Issuer: "todolist"},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "john",
			Issuer:    "todolist",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"tampered signature", valid + "a"},
		{"expired", expired},
		{"wrong secret", otherSecret},
		{"wrong issuer", otherIssuer},
		{"unexpected algorithm", hs512},
		{"missing expiry", noExpiry},
		{"non numeric subject", badSubject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := m.Verify(tt.token)
			assert.Nil(t, id)
			require.Error(t, err)
			assert.True(t, apperror.IsAuthError(err))
		})
	}
}
