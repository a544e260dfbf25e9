package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_vocab_galaxy/internal/model"
	"go_vocab_galaxy/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証します。
// ヘッダーがない場合は匿名として通し、ある場合は検証に失敗すれば 401 を返します。
// subject (sub) はそのまま不透明なユーザーIDとして扱います。
func JWTAuthMiddleware(secretKey string) func(http.Handler) http.Handler {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			// "Bearer {token}" の形式を検証
			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHENTICATED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthenticated))
				return
			}

			// 署名アルゴリズム(HS256)と有効期限(exp)を検証
			claims := jwt.MapClaims{}
			token, err := parser.ParseWithClaims(tokenString, claims, keyFunc)
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				msg := "トークンが無効です。"
				if errors.Is(err, jwt.ErrTokenExpired) {
					msg = "トークンの有効期限が切れています。"
				}
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", msg, "", model.ErrUnauthenticated))
				return
			}

			subject, err := claims.GetSubject()
			if err != nil || subject == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "トークンにユーザー情報が含まれていません。", "", model.ErrUnauthenticated))
				return
			}

			next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), subject)))
		})
	}
}

// withUserID はユーザーIDをコンテキストに入れ、ロガーにも user_id を付与します。
func withUserID(ctx context.Context, userID string) context.Context {
	ctx = context.WithValue(ctx, model.UserIDKey, userID)
	return WithLogger(ctx, GetLogger(ctx).With("user_id", userID))
}

// GetUserID はコンテキストのユーザーIDを返します。匿名なら空文字。
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(model.UserIDKey).(string)
	return userID
}

// RequireUserID はユーザーIDが必須のエンドポイント用です。
func RequireUserID(ctx context.Context) (string, error) {
	userID := GetUserID(ctx)
	if userID == "" {
		return "", model.NewAppError("UNAUTHENTICATED", "ユーザーIDが必要です。", "", model.ErrUnauthenticated)
	}
	return userID, nil
}
