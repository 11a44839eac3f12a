package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sitepay/sitepay-backend-go/internal/domain/user"
	"github.com/sitepay/sitepay-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, user.ErrAdminAccessRequired.Error())
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, user.ErrAdminAccessRequired.Error())
			return
		}

		if user.Role(roleStr) != user.RoleAdmin {
			response.Forbidden(w, user.ErrAdminAccessRequired.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
