package rest

import (
	"encoding/json"
	"log"
	"net/http"

	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("REST: failed to encode response: %v", err)
	}
}

// statusFor maps error codes onto HTTP statuses
func statusFor(err error) int {
	switch dnderr.GetCode(err) {
	case dnderr.CodeValidation, dnderr.CodeInvalidArgument:
		return http.StatusBadRequest
	case dnderr.CodeNotFound:
		return http.StatusNotFound
	case dnderr.CodeUnauthenticated:
		return http.StatusUnauthorized
	case dnderr.CodeAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("REST: internal error: %v", err)
		message = "internal server error"
	}
	writeJSON(w, status, errorBody{Error: message})
}

func decodeBody(r *http.Request, target any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(target); err != nil {
		return dnderr.InvalidArgumentf("invalid request body: %v", err)
	}
	return nil
}
