package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_vocab_galaxy/internal/handlers"
	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"
	svcmocks "go_vocab_galaxy/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestClassificationHandler_Classify(t *testing.T) {
	tests := []struct {
		name           string
		headerUserID   string
		body           interface{}
		setupMock      func(app *testApp)
		expectedStatus int
		expectedCode   string
		expectedResult *model.ClassificationResult
	}{
		{
			name:         "正常系: 認証済みユーザーが優先される",
			headerUserID: "user-1",
			body:         model.ClassifyRequest{UserID: "someone-else", Input: "chat"},
			setupMock: func(app *testApp) {
				app.classification.On("Classify", mock.Anything, "user-1", "chat").
					Return(`{"theme":"Animaux","subtheme":"Animaux domestiques"}`, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedResult: &model.ClassificationResult{Theme: "Animaux", Subtheme: "Animaux domestiques"},
		},
		{
			name: "正常系: 匿名ならボディの userId",
			body: model.ClassifyRequest{UserID: "body-user", Input: "pomme"},
			setupMock: func(app *testApp) {
				app.classification.On("Classify", mock.Anything, "body-user", "pomme").
					Return(`{"theme":"Nourriture","subtheme":"Fruits"}`, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedResult: &model.ClassificationResult{Theme: "Nourriture", Subtheme: "Fruits"},
		},
		{
			name:           "異常系: 入力なし",
			body:           model.ClassifyRequest{UserID: "u"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:         "異常系: 月間上限",
			headerUserID: "user-1",
			body:         model.ClassifyRequest{Input: "chien"},
			setupMock: func(app *testApp) {
				app.classification.On("Classify", mock.Anything, "user-1", "chien").
					Return("", &model.QuotaExceededError{UserID: "user-1", Limit: 50}).Once()
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedCode:   "QUOTA_EXCEEDED",
		},
		{
			name:         "異常系: LLMの失敗",
			headerUserID: "user-1",
			body:         model.ClassifyRequest{Input: "chien"},
			setupMock: func(app *testApp) {
				app.classification.On("Classify", mock.Anything, "user-1", "chien").
					Return("", &model.UpstreamError{Service: "llm", StatusCode: 429, Err: errors.New("rate_limit_error")}).Once()
			},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "UPSTREAM_FAILURE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupTestApp(t)
			if tt.setupMock != nil {
				tt.setupMock(app)
			}

			rr := app.send(t, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/gpt/classify", Body: tt.body, UserID: tt.headerUserID})

			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rr).Code)
			}
			if tt.expectedResult != nil {
				assert.Equal(t, *tt.expectedResult, decodeBody[model.ClassificationResult](t, rr))
			}
		})
	}
}

func TestClassificationHandler_Classify_IgnoresBodyUserWhenAuthEnabled(t *testing.T) {
	svc := svcmocks.NewClassificationService(t)
	h := handlers.NewClassificationHandler(svc, testLogger, false)

	r := chi.NewRouter()
	r.Use(middleware.JWTAuthMiddleware("secret"))
	r.Post("/gpt/classify", h.Classify)

	// 匿名はすべて同じ枠で数える
	svc.On("Classify", mock.Anything, "", "chat").
		Return(`{"theme":"Animaux","subtheme":"Chats"}`, nil).Twice()

	for _, bodyUser := range []string{"alice", "bob"} {
		req := httptest.NewRequest(http.MethodPost, "/gpt/classify", strings.NewReader(`{"userId":"`+bodyUser+`","input":"chat"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestClassificationHandler_GetMonthlyStats(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		app := setupTestApp(t)
		app.classification.On("GetMonthlyStats", mock.Anything, "2025-07").
			Return(map[string]model.MonthlyUsage{"user1": {TotalTokens: 50, Requests: 2}}, nil).Once()

		rr := app.send(t, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/gpt/monthly-stats/2025-07"})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"user1":{"totalTokens":50,"requests":2}}`, rr.Body.String())
	})

	t.Run("該当なしは空オブジェクト", func(t *testing.T) {
		app := setupTestApp(t)
		app.classification.On("GetMonthlyStats", mock.Anything, "2024-01").Return(nil, nil).Once()

		rr := app.send(t, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/gpt/monthly-stats/2024-01"})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{}`, rr.Body.String())
	})

	t.Run("不正な月", func(t *testing.T) {
		app := setupTestApp(t)
		app.classification.On("GetMonthlyStats", mock.Anything, "July").
			Return(nil, model.NewAppError("INVALID_MONTH", "月は YYYY-MM 形式で指定してください。", "month", model.ErrInvalidInput)).Once()

		rr := app.send(t, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/gpt/monthly-stats/July"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "INVALID_MONTH", decodeError(t, rr).Code)
	})
}
