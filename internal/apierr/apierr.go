// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package apierr writes the fixed-shape JSON error bodies returned by the
// API: {"success": false, "error": <status>, "message": <text>}.
package apierr

import (
	"encoding/json"
	"net/http"
)

// Body is the JSON error payload.
type Body struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var messages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "Not found",
	http.StatusMethodNotAllowed:    "Method not allowed",
	http.StatusUnprocessableEntity: "Unprocessable",
	http.StatusTooManyRequests:     "Too many requests",
	http.StatusInternalServerError: "Internal Error",
}

// Message returns the fixed message for status. Statuses without a
// dedicated message fall back to the standard status text.
func Message(status int) string {
	if m, ok := messages[status]; ok {
		return m
	}
	return http.StatusText(status)
}

// New returns the error body for status.
func New(status int) Body {
	return Body{Success: false, Error: status, Message: Message(status)}
}

// Write sends the error body for status.
func Write(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(New(status))
}
