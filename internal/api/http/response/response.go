// Package response writes JSON and binary bodies for HTTP handlers.
package response

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/dtroode/gophfeed-server/internal/model"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, Error{Error: message})
}

// WriteBlob streams blob with its stored content type and closes the body.
func WriteBlob(w http.ResponseWriter, blob model.Blob) error {
	defer blob.Body.Close()

	contentType := blob.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)

	_, err := io.Copy(w, blob.Body)
	return err
}
