package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/model"
	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/service"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Injected key type to avoid context collisions
type contextKey string

const UserContextKey = contextKey("user")

// UserFrom returns the authenticated user stored in the request context.
func UserFrom(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(UserContextKey).(*model.User)
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}

// AuthMiddleware authenticates requests with HTTP Basic credentials: the
// username is the user's email address, the password is compared against the
// stored bcrypt hash. Every rejection gets the same generic 401 body; the
// specific reason is only logged, so the response never reveals whether the
// email or the password was wrong.
func AuthMiddleware(users service.UserService, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok {
				logger.Warn().Msg("Auth header not found")
				accessDenied(w)
				return
			}

			user, err := users.GetByEmail(r.Context(), email)
			if err != nil {
				if errors.Is(err, service.ErrUserNotFound) {
					logger.Warn().Msgf("User not found for username: %s", email)
					accessDenied(w)
					return
				}
				logger.Error().Err(err).Msg("Failed to look up user during authentication")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"message": "Internal Server Error"})
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
				logger.Warn().Msgf("Authentication failure for username: %d", user.ID)
				accessDenied(w)
				return
			}

			logger.Info().Msgf("Authentication successful for username: %s %s", user.FirstName, user.LastName)
			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func accessDenied(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "Access Denied"})
}
