package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/Chalet-AvailabilityService/internal/api/handlers"
)

// userIDCtxKey ключ контекста для ID пользователя
type userIDCtxKey struct{}

// Auth middleware аутентификации по заголовку X-User-ID
// Выпуск сессий и проверка токенов делегированы внешнему шлюзу:
// сюда запрос приходит уже с проставленным идентификатором
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("X-User-ID")
		if header == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDCtxKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDCtxKey{}).(int64)
	return userID, ok
}
