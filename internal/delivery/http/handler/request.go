package handler

import (
	"encoding/json"
	"net/http"

	"diagnostic-center-api/pkg/response"
	"diagnostic-center-api/pkg/validator"
)

const maxBodyBytes = 1 << 20

// decodeAndValidate writes a 400 response and returns false when the body is
// not valid JSON for v or fails validation.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}

	if err := v.Validate(dst); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}
