package middlewares

import (
	"context"
	"net/http"
	"strings"

	"petfirst-service/internal/pkg/constvars"
	"petfirst-service/internal/pkg/exceptions"
	"petfirst-service/internal/pkg/utils"
)

// AuthMiddleware validates the bearer token and stores the authenticated
// user ID on the request context.
func (m *Middlewares) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.AuthorizationBearerToken+" ")
		userID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_USER_ID_KEY, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
