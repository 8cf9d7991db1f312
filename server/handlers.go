package server

import (
	"encoding/json"
	"net/http"

	"AirFM/logger"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", logger.ErrorField(err))
	}
}

// writeError writes the standard error envelope. The message is a short
// description; internal error details stay in the logs.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeFileError writes the error envelope carrying the offending filename.
func writeFileError(w http.ResponseWriter, status int, message, filename string) {
	writeJSON(w, status, map[string]string{
		"error":    message,
		"filename": filename,
	})
}

// rootHandler lists the server's capabilities.
func rootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Audio Streaming Server API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"GET /api/stream/{filename}":   "Stream audio file",
			"GET /api/metadata/{filename}": "Audio file metadata",
			"GET /api/tracks":              "List of all tracks with metadata",
			"GET /api/info/{filename}":     "File information",
		},
	})
}

// notFoundHandler answers unmatched routes with the available route list.
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]interface{}{
		"error": "Route not found",
		"availableRoutes": []string{
			"GET /",
			"GET /api/stream/{filename}",
			"GET /api/metadata/{filename}",
			"GET /api/tracks",
			"GET /api/info/{filename}",
		},
	})
}
