// Package response writes the JSON bodies shared by handlers and middleware.
package response

import (
	"net/http"

	"github.com/go-chi/render"
)

// Envelope wraps successful payloads of enveloped endpoints such as search.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// Failure is the enveloped error body. Stack is only filled outside production.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Stack   string `json:"stack,omitempty"`
}

// Message is the bare error body of the collection endpoints.
type Message struct {
	Error string `json:"error"`
}

// JSON writes v as JSON with the given status.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// OK writes an Envelope with success set.
func OK(w http.ResponseWriter, r *http.Request, data any) {
	JSON(w, r, http.StatusOK, Envelope{Success: true, Data: data})
}

// Fail writes a Failure without a stack.
func Fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSON(w, r, status, Failure{Error: msg})
}

// Error writes a Message.
func Error(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSON(w, r, status, Message{Error: msg})
}
