package middleware

import (
	"errors"
	"net/http"
	"strings"

	"storefront-backend/config"
	"storefront-backend/internal/domain"
	"storefront-backend/pkg/logger"
	"storefront-backend/pkg/utils"
)

// NewIdentityMiddleware resolves the caller and stores it in the request context.
// A valid bearer token (or accessToken cookie) wins; otherwise the trusted
// identity header is used. It never rejects: handlers decide what a missing
// identity means.
func NewIdentityMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := userFromToken(r)
			if user == nil && cfg.TrustUserIDHeader {
				if id := strings.TrimSpace(r.Header.Get(cfg.UserIDHeader)); id != "" {
					user = &domain.User{ID: id}
				}
			}

			if user != nil {
				r = r.WithContext(domain.ContextWithUser(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func userFromToken(r *http.Request) *domain.User {
	claims, err := utils.ExtractClaims(r)
	if err != nil {
		if !errors.Is(err, utils.ErrNoToken) {
			logger.WithContext(r.Context()).Debug().Err(err).Msg("Ignoring invalid bearer token")
		}
		return nil
	}
	if claims.UserID == "" {
		return nil
	}
	return &domain.User{ID: claims.UserID, Role: claims.Role}
}
