package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laundry/internal/pkg/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer(t *testing.T) auth.TokenIssuer {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("unit-test-secret", time.Hour)
	require.NoError(t, err)
	return issuer
}

func echoRequest(t *testing.T, handler echo.HandlerFunc, middleware []echo.MiddlewareFunc, token string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/guarded", handler, middleware...)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	issuer := testIssuer(t)

	echoPrincipal := func(ctx echo.Context) error {
		principal, found := auth.PrincipalFromContext(ctx.Request().Context())
		require.True(t, found)
		return ctx.JSON(http.StatusOK, Envelope{Success: true, Message: principal.Subject + ":" + principal.Role})
	}

	t.Run("valid token reaches handler with principal", func(t *testing.T) {
		token, err := issuer.Issue("subject-1", "customer")
		require.NoError(t, err)

		rec := echoRequest(t, echoPrincipal, []echo.MiddlewareFunc{Authenticate(issuer)}, token)

		require.Equal(t, http.StatusOK, rec.Code)
		var body Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "subject-1:customer", body.Message)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		rec := echoRequest(t, echoPrincipal, []echo.MiddlewareFunc{Authenticate(issuer)}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		rec := echoRequest(t, echoPrincipal, []echo.MiddlewareFunc{Authenticate(issuer)}, "not.a.token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token from another issuer is rejected", func(t *testing.T) {
		other, err := auth.NewTokenIssuer("different-secret", time.Hour)
		require.NoError(t, err)
		token, err := other.Issue("subject-1", "customer")
		require.NoError(t, err)

		rec := echoRequest(t, echoPrincipal, []echo.MiddlewareFunc{Authenticate(issuer)}, token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	issuer := testIssuer(t)

	okHandler := func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, Envelope{Success: true, Message: "reached"})
	}

	t.Run("allowed role passes", func(t *testing.T) {
		token, err := issuer.Issue("subject-1", "delivery_partner")
		require.NoError(t, err)

		rec := echoRequest(t, okHandler,
			[]echo.MiddlewareFunc{Authenticate(issuer), RequireRole("delivery_partner")}, token)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role outside the allowed set gets 403", func(t *testing.T) {
		token, err := issuer.Issue("subject-1", "customer")
		require.NoError(t, err)

		rec := echoRequest(t, okHandler,
			[]echo.MiddlewareFunc{Authenticate(issuer), RequireRole("store", "admin")}, token)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing principal gets 401", func(t *testing.T) {
		rec := echoRequest(t, okHandler, []echo.MiddlewareFunc{RequireRole("admin")}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
