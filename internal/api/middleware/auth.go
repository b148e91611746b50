package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/lumiere-studio/StudioBookingService/internal/api/handlers"
)

// AdminTokenHeader заголовок с токеном административного доступа
const AdminTokenHeader = "X-Admin-Token"

const msgAdminTokenRequired = "потрібен токен адміністратора"

// AdminAuth middleware проверки токена администратора.
// Запросы без валидного токена получают 401
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminTokenHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, msgAdminTokenRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
