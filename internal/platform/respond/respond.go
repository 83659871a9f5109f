// Package respond arma el envelope {results, message|data} que usan todas las rutas /api.
package respond

import (
	"encoding/json"
	"net/http"
)

// Fields son las claves extra del envelope (data, message, image, imageUrl...).
type Fields map[string]any

// Failure es la forma del envelope cuando results=false.
type Failure struct {
	Results bool   `json:"results"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// OK escribe {results:true, ...fields}.
func OK(w http.ResponseWriter, status int, fields Fields) {
	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["results"] = true
	JSON(w, status, body)
}

// Fail escribe {results:false, message, error?}. err solo se expone si no es nil.
func Fail(w http.ResponseWriter, status int, message string, err error) {
	f := Failure{Results: false, Message: message}
	if err != nil {
		f.Error = err.Error()
	}
	JSON(w, status, f)
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
