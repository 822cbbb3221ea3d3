package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"stepwise/internal/domain/entity"
	domainerrors "stepwise/internal/domain/errors"
	"stepwise/internal/usecase"
)

// ContextKeyUser is the echo context key the resolved account is stored
// under.
const ContextKeyUser = "user"

// AuthMiddleware guards routes behind bearer-token authentication.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the Authorization header and resolves the token to
// an account. A missing or non-Bearer header fails with "Not authenticated";
// a present but unusable token fails with "Could not validate credentials".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrNotAuthenticated)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			return errors.WithStack(domainerrors.ErrNotAuthenticated)
		}

		user, err := m.authUC.Resolve(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// CurrentUser returns the account the auth middleware stored on the context.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*entity.User)

	return user, ok
}
