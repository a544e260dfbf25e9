// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternalServer  = errors.New("internal server error")
	ErrConflict        = errors.New("resource conflict") // 一意制約違反
	ErrUnauthorized    = errors.New("unauthorized")      // 所有者不一致
	ErrUnauthenticated = errors.New("unauthenticated")   // トークン不正
	ErrQuotaExceeded   = errors.New("quota exceeded")
	ErrRateLimited     = errors.New("rate limit exceeded") // プロセス内の翻訳API制限

	ErrUpstreamRateLimited = errors.New("upstream rate limited")
	ErrUpstreamFailure     = errors.New("upstream failure")
)

// QuotaExceededError は月間上限に達したユーザーを保持します。
type QuotaExceededError struct {
	UserID string
	Limit  int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded for user %s (limit %d)", e.UserID, e.Limit)
}

func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

// UpstreamError は外部API (DeepL, LLM) の失敗を表します。
// 元のメッセージは Err に保持されます。
type UpstreamError struct {
	Service    string
	StatusCode int // HTTPステータス。タイムアウト・通信エラー時は 0
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s upstream failure (status %d): %v", e.Service, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s upstream failure: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool {
	switch target {
	case ErrUpstreamFailure:
		return true
	case ErrUpstreamRateLimited:
		return e.StatusCode == 429
	}
	return false
}

// ErrorDetail はAPIエラーレスポンスの中身です。
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はクライアントに返す情報と原因のエラーを束ねます。
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Detail.Code, e.Detail.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error { return e.Err }
