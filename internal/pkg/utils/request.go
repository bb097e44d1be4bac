package utils

import (
	"doctrack-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

// ParseJSONBody decodes the request body into dst and runs struct validation.
func ParseJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
