package http

import (
	"net/http"
	"strings"

	"laundry/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// Authenticate validates the Bearer token on incoming requests and stores
// the caller principal in the request context. Requests without a valid
// token get 401.
func Authenticate(issuer auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return ctx.JSON(http.StatusUnauthorized, Envelope{
					Success: false,
					Message: "missing or malformed authorization header",
				})
			}

			principal, err := issuer.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Envelope{
					Success: false,
					Message: "invalid or expired token",
				})
			}

			request := ctx.Request()
			ctx.SetRequest(request.WithContext(auth.WithPrincipal(request.Context(), principal)))
			return next(ctx)
		}
	}
}

// RequireRole rejects authenticated callers whose role is not in the allowed
// set with 403.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, found := principalFrom(ctx)
			if !found {
				return ctx.JSON(http.StatusUnauthorized, Envelope{
					Success: false,
					Message: "authentication required",
				})
			}

			if _, permitted := allowed[principal.Role]; !permitted {
				return ctx.JSON(http.StatusForbidden, Envelope{
					Success: false,
					Message: "insufficient role",
				})
			}

			return next(ctx)
		}
	}
}

func principalFrom(ctx echo.Context) (auth.Principal, bool) {
	return auth.PrincipalFromContext(ctx.Request().Context())
}
