package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/authctx"
)

// AuthRequired rejects requests without a valid access token and stores
// the caller's identity in the request context for the service layer.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			identity := authctx.Identity{}
			if userID, ok := claims["user_id"].(string); ok {
				identity.UserID = userID
			}
			if email, ok := claims["email"].(string); ok {
				identity.Email = email
			}
			if role, ok := claims["role"].(string); ok {
				identity.Role = role
			}
			if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
				identity.EmployeeID = &employeeID
			}
			if identity.UserID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			ctx := authctx.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
