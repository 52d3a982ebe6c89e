package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// validate checks request payload constraints declared via struct tags.
var validate = validator.New(validator.WithRequiredStructEnabled())

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, log *zap.SugaredLogger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Errorw("encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, log *zap.SugaredLogger, status int, message string) {
	jsonResponse(w, log, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target and runs
// its validation tags.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return err
	}
	return validate.Struct(target)
}
