package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/pos-service/pkg/util/errorutil"
)

func newGateApp(t *testing.T) (*fiber.App, *TokenCodec, *RevocationStore) {
	t.Helper()

	codec := newTestCodec(t)
	_, client := newTestRedis(t)
	revoked := NewRevocationStore(client)
	gate := NewTokenGate(codec, revoked)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Code})
		},
	})

	app.Get("/protected", gate.RequireAccess(), func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"user_id": claims.User.ID})
	})
	app.Post("/session", gate.RequireRefresh(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})

	return app, codec, revoked
}

func doRequest(t *testing.T, app *fiber.App, method, path, bearer string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestTokenGateRejectsMissingOrMalformedHeader(t *testing.T) {
	app, _, _ := newGateApp(t)

	resp := doRequest(t, app, http.MethodGet, "/protected", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/protected", "Basic abc123")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/protected", "Bearer not-a-token")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTokenGateAdmitsMatchingClass(t *testing.T) {
	app, codec, _ := newGateApp(t)
	subject := TokenSubject{ID: "user-1", Email: "user@example.com"}

	access, _, err := codec.Issue(subject, time.Hour, false)
	require.NoError(t, err)
	refresh, _, err := codec.Issue(subject, time.Hour, true)
	require.NoError(t, err)

	resp := doRequest(t, app, http.MethodGet, "/protected", "Bearer "+access)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/session", "Bearer "+refresh)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestTokenGateRejectsWrongClass(t *testing.T) {
	app, codec, _ := newGateApp(t)
	subject := TokenSubject{ID: "user-1", Email: "user@example.com"}

	access, _, err := codec.Issue(subject, time.Hour, false)
	require.NoError(t, err)
	refresh, _, err := codec.Issue(subject, time.Hour, true)
	require.NoError(t, err)

	resp := doRequest(t, app, http.MethodGet, "/protected", "Bearer "+refresh)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/session", "Bearer "+access)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTokenGateRejectsRevokedToken(t *testing.T) {
	app, codec, revoked := newGateApp(t)
	subject := TokenSubject{ID: "user-1", Email: "user@example.com"}

	access, _, err := codec.Issue(subject, time.Hour, false)
	require.NoError(t, err)

	resp := doRequest(t, app, http.MethodGet, "/protected", "Bearer "+access)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	claims, err := codec.Decode(access)
	require.NoError(t, err)
	require.NoError(t, revoked.Revoke(context.Background(), claims.ID, time.Hour))

	resp = doRequest(t, app, http.MethodGet, "/protected", "Bearer "+access)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
