package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_vocab_galaxy/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{model.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("repo: %w", model.ErrNotFound), http.StatusNotFound},
		{model.ErrInvalidInput, http.StatusBadRequest},
		{fmt.Errorf("%w: invalid gender x", model.ErrInvalidGrammar), http.StatusBadRequest},
		{model.ErrConflict, http.StatusConflict},
		{model.ErrUnauthenticated, http.StatusUnauthorized},
		{model.ErrUnauthorized, http.StatusForbidden},
		{&model.QuotaExceededError{UserID: "u", Limit: 50}, http.StatusTooManyRequests},
		{model.ErrRateLimited, http.StatusTooManyRequests},
		{&model.UpstreamError{Service: "deepl", StatusCode: 429, Err: errors.New("x")}, http.StatusBadGateway},
		{&model.UpstreamError{Service: "llm", Err: errors.New("timeout")}, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "AppError はそのまま返す",
			err:         model.NewAppError("TRANSLATION_NOT_FOUND", "訳が見つかりませんでした。", "source", model.ErrNotFound),
			wantStatus:  http.StatusNotFound,
			wantCode:    "TRANSLATION_NOT_FOUND",
			wantMessage: "訳が見つかりませんでした。",
		},
		{
			name:        "クォータ超過",
			err:         fmt.Errorf("classify: %w", &model.QuotaExceededError{UserID: "user-1", Limit: 50}),
			wantStatus:  http.StatusTooManyRequests,
			wantCode:    "QUOTA_EXCEEDED",
			wantMessage: "quota exceeded for user user-1 (limit 50)",
		},
		{
			name:       "番兵エラー",
			err:        model.ErrConflict,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:        "予期せぬエラーは詳細を隠す",
			err:         errors.New("pq: password authentication failed"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: "サーバー内部でエラーが発生しました。",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			HandleError(rr, discardLogger, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp model.APIErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, resp.Error.Message)
			}
			assert.NotContains(t, rr.Body.String(), "password")
		})
	}
}

func TestValidateStruct(t *testing.T) {
	err := ValidateStruct(model.CreateLexiconRequest{Galaxy: "animals", Subtopic: strings.Repeat("x", 101)})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
	assert.Equal(t, "word,subtopic", appErr.Detail.Field)
	assert.Contains(t, appErr.Detail.Message, "単語は必須項目です。")
	assert.Contains(t, appErr.Detail.Message, "サブトピックは100以下で入力してください。")

	assert.NoError(t, ValidateStruct(model.CreateLexiconRequest{Word: "chat", Galaxy: "animals", Subtopic: "pets"}))
}

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "正常", body: `{"target":"house"}`},
		{name: "空", body: ``, wantErr: true},
		{name: "未知のフィールド", body: `{"target":"house","x":1}`, wantErr: true},
		{name: "型違い", body: `{"target":1}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst model.UpdateTranslationRequest
			err := DecodeJSONBody(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)), &dst)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "house", dst.Target)
		})
	}
}

func TestURLParamUUID(t *testing.T) {
	id := uuid.New()
	var got uuid.UUID
	var gotErr error

	r := chi.NewRouter()
	r.Get("/items/{id}", func(w http.ResponseWriter, req *http.Request) {
		got, gotErr = URLParamUUID(req, "id")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/"+id.String(), nil))
	require.NoError(t, gotErr)
	assert.Equal(t, id, got)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", nil))
	assert.ErrorIs(t, gotErr, model.ErrInvalidInput)
}
