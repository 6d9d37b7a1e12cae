package api

import (
	"encoding/json"
	"net/http"
)

// writeRecordJSON writes a raw JSON body without the response envelope.
// Airport endpoints return records exactly as they live in the backing
// document.
func writeRecordJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
