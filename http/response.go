package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"gcc-tools/domain"
	"gcc-tools/logger"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

// allowMethod writes 405 and returns false when r does not use method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeJSONError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// decodeJSON reads the request body into v. An empty body leaves v as is.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		logger.Debug("decode request body", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSONError(w, r, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("encode response", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("write response", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}

// writeError maps domain errors to status codes; anything unknown is a 500
// whose detail is logged, not returned.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", requestID(r.Context())),
			zap.Error(err),
		)
		writeJSONError(w, r, status, "internal server error")
		return
	}
	writeJSONError(w, r, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrArticleNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyChart):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrZeroTerm),
		errors.Is(err, domain.ErrTermTooLong),
		errors.Is(err, domain.ErrInvalidTenureUnit),
		errors.Is(err, domain.ErrUnsupportedVATRate),
		errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrInvalidHousingType),
		errors.Is(err, domain.ErrInvalidNationality),
		errors.Is(err, domain.ErrZeroPropertyValue),
		errors.Is(err, domain.ErrNoInvoiceItems),
		errors.Is(err, domain.ErrTooManyItems),
		errors.Is(err, domain.ErrResultOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeBinary(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
