// Package httpx writes the JSON envelope every endpoint speaks:
// {status: success|error, data?, message?, pagination?}.
package httpx

import (
	"encoding/json"
	"net/http"
)

// request bodies cap at 10mb
const maxBodyBytes = 10 << 20

type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

type Envelope struct {
	Status     string      `json:"status"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Stack      string      `json:"stack,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, Envelope{Status: "success", Data: data})
}

func WriteMessage(w http.ResponseWriter, status int, message string, data any) {
	WriteJSON(w, status, Envelope{Status: "success", Message: message, Data: data})
}

func WriteList(w http.ResponseWriter, items any, p Pagination) {
	WriteJSON(w, http.StatusOK, Envelope{Status: "success", Data: items, Pagination: &p})
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Envelope{Status: "error", Message: msg})
}

// Decode reads a JSON body with the size cap applied.
func Decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
