package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
)

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return common.NewError(common.CodeValidation, "request body is required", nil)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.NewError(common.CodeValidation, "invalid request body", err)
	}
	return nil
}

// idFromPath extracts and validates the path segment at index, counting from
// the leading slash ("/jobs/<id>" puts the id at index 1).
func idFromPath(r *http.Request, index int) (common.UUID, error) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if index >= len(parts) || parts[index] == "" {
		return "", common.NewError(common.CodeInvalidID, "invalid identifier", nil)
	}
	return common.ParseUUID(parts[index])
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}
