// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"go_vocab_galaxy/internal/handlers"
	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"
	svcmocks "go_vocab_galaxy/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// testApp はサービスをすべてモックにしたルーターです。
type testApp struct {
	router         *chi.Mux
	translation    *svcmocks.TranslationService
	classification *svcmocks.ClassificationService
	lexicon        *svcmocks.LexiconService
	grammar        *svcmocks.GrammarService
	media          *svcmocks.MediaService
	speech         *svcmocks.SpeechService
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	app := &testApp{
		translation:    svcmocks.NewTranslationService(t),
		classification: svcmocks.NewClassificationService(t),
		lexicon:        svcmocks.NewLexiconService(t),
		grammar:        svcmocks.NewGrammarService(t),
		media:          svcmocks.NewMediaService(t),
		speech:         svcmocks.NewSpeechService(t),
	}
	api := &handlers.API{
		Translation:    handlers.NewTranslationHandler(app.translation, testLogger),
		Classification: handlers.NewClassificationHandler(app.classification, testLogger, true),
		Lexicon:        handlers.NewLexiconHandler(app.lexicon, testLogger),
		Grammar:        handlers.NewGrammarHandler(app.grammar, testLogger),
		Media:          handlers.NewMediaHandler(app.media, testLogger),
		Speech:         handlers.NewSpeechHandler(app.speech, testLogger),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.LoggingMiddleware(testLogger))
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.DevUserContextMiddleware)
		api.Mount(r)
	})
	app.router = r
	return app
}

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
// Body が string ならそのまま送る (不正なJSONのテスト用)。
type httpRequestDetails struct {
	Method string
	Path   string
	Body   interface{}
	UserID string
}

func (a *testApp) send(t *testing.T, d httpRequestDetails) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	switch b := d.Body.(type) {
	case nil:
	case string:
		body = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err, "Failed to marshal request body")
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(d.Method, d.Path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if d.UserID != "" {
		req.Header.Set("X-User-ID", d.UserID)
	}

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

// decodeError はエラーレスポンスの中身を取り出します。
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Error
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func ptr[T any](v T) *T {
	return &v
}
