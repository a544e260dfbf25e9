// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"
)

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーの値を検証せずにユーザーIDとしてコンテキストに設定します。
// ヘッダーがなければ匿名のまま通します。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		GetLogger(r.Context()).Debug("[DEV AUTH] user id set to context (no validation)", "user_id", userID)
		next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
	})
}
