package response

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/playerdna/internal/model"
)

// SourceHeader reports where a served document came from
const SourceHeader = "X-Data-Source"

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Document writes a pass-through JSON document along with its source
func Document(w http.ResponseWriter, doc model.Document, source model.Source) {
	if len(doc) == 0 {
		doc = model.EmptyDocument()
	}
	w.Header().Set(SourceHeader, string(source))
	JSON(w, http.StatusOK, doc)
}

// Health is the body of the health endpoint
type Health struct {
	Status string `json:"status"`
}
