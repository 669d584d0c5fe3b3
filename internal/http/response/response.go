package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
)

// Envelope is the wire shape of every response.
type Envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Data       any               `json:"data,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	Pagination any               `json:"pagination,omitempty"`
}

// ErrorCollector counts failures by code; wired to the metrics collector at
// startup.
type ErrorCollector interface {
	RecordError(code string)
}

var errorCollector ErrorCollector

func SetErrorCollector(c ErrorCollector) {
	errorCollector = c
}

func Write(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func JSON(w http.ResponseWriter, status int, data any) {
	Write(w, status, Envelope{Success: true, Data: data})
}

func Message(w http.ResponseWriter, status int, message string, data any) {
	Write(w, status, Envelope{Success: true, Message: message, Data: data})
}

func Page(w http.ResponseWriter, status int, data, pagination any) {
	Write(w, status, Envelope{Success: true, Data: data, Pagination: pagination})
}

func Error(w http.ResponseWriter, err error) {
	code := common.CodeOf(err)
	if errorCollector != nil {
		errorCollector.RecordError(string(code))
	}
	env := Envelope{Success: false, Message: messageOf(err, code)}
	var appErr *common.Error
	if errors.As(err, &appErr) && len(appErr.Fields) > 0 {
		env.Fields = appErr.Fields
	}
	Write(w, statusOf(code), env)
}

func statusOf(code common.Code) int {
	switch code {
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeInvalidID, common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func messageOf(err error, code common.Code) string {
	var appErr *common.Error
	if errors.As(err, &appErr) && code != common.CodeInternal {
		return appErr.Message
	}
	// Internal causes stay out of responses.
	return "internal server error"
}
