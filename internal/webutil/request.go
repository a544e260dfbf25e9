package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go_vocab_galaxy/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	maxBodyBytes   = 1 << 20
	maxUploadBytes = 25 << 20
)

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドは拒否。
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_BODY", "リクエストボディが空です。", "", model.ErrInvalidInput)
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return model.NewAppError("INVALID_BODY", "リクエストボディが空です。", "", model.ErrInvalidInput)
		}
		return model.NewAppError("INVALID_BODY", fmt.Sprintf("JSONの形式が正しくありません: %v", err), "", model.ErrInvalidInput)
	}
	return nil
}

// URLParamUUID はパスパラメータをUUIDとして取り出します。
func URLParamUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_ID", "IDの形式が正しくありません。", name, model.ErrInvalidInput)
	}
	return id, nil
}

// FormFile は multipart/form-data から1つのファイルを取り出します。呼び出し側で Close すること。
func FormFile(w http.ResponseWriter, r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, model.NewAppError("FILE_TOO_LARGE", fmt.Sprintf("ファイルは %d MB までです。", maxUploadBytes>>20), field, model.ErrInvalidInput)
		}
		return nil, nil, model.NewAppError("INVALID_BODY", "multipart/form-data で送信してください。", field, model.ErrInvalidInput)
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, model.NewAppError("INVALID_BODY", "ファイルがありません。", field, model.ErrInvalidInput)
	}
	return file, header, nil
}
