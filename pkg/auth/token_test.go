package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	v := NewTokenValidator("s3cret")
	token, err := v.Issue("42", "alice", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := v.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "admin", claims.Role)

	_, err = NewTokenValidator("other").Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := v.Issue("42", "alice", "admin", -time.Minute)
	require.NoError(t, err)
	_, err = v.Validate(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenValidatorWithoutSecret(t *testing.T) {
	assert.Nil(t, NewTokenValidator(""))
}

func TestActorFromContextDefaults(t *testing.T) {
	assert.Equal(t, DefaultActor, ActorFromContext(context.Background()))
	assert.Equal(t, "bob", ActorFromContext(WithActor(context.Background(), "bob")))
}

func TestOptionalAuthMiddleware(t *testing.T) {
	v := NewTokenValidator("s3cret")
	token, err := v.Issue("7", "carol", "user", time.Hour)
	require.NoError(t, err)

	var seen string
	h := OptionalAuthMiddleware(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ActorFromContext(r.Context())
	}))

	cases := map[string]string{
		"Bearer " + token: "carol",
		"Bearer garbage":  DefaultActor,
		"":                DefaultActor,
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, want, seen, "header %q", header)
	}
}
