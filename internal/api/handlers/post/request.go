package post

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"Agora/internal/api/handlers"
	"Agora/internal/api/middleware"
)

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 1 * 1024 * 1024

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeBody parses a size-limited JSON body into dst, writing the error response on failure
func decodeBody(w http.ResponseWriter, r *http.Request, op string, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, op, "request_too_large",
				"Request body too large (max 1MB)")
			return false
		}
		writeError(w, http.StatusBadRequest, op, "bad_request", "Invalid request body")
		return false
	}
	return true
}

// validateRequest runs struct validation, writing a bad_request response on failure
func validateRequest(w http.ResponseWriter, op string, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, op, "bad_request", describeValidation(err))
		return false
	}
	return true
}

// describeValidation renders the first failing field as a short message
func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Invalid request"
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// authToken prefers the token sent in the payload and falls back to the bearer header
func authToken(r *http.Request, field string) string {
	if field != "" {
		return field
	}
	return middleware.GetUserAccessToken(r)
}

// queryInt parses an optional integer query parameter
func queryInt(r *http.Request, key string) (*int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &v, nil
}

// writeOK writes a successful operation response
func writeOK(w http.ResponseWriter, v interface{}) {
	handlers.WriteJSON(w, http.StatusOK, v)
}
