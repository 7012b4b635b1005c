// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Polywise API.
// Handlers are grouped by concern (articles, topics, uploads, translate,
// share) and receive their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"polywise/internal/store"
	"polywise/internal/translate"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeMessage writes the standard {"message": ...} error shape.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeError maps domain errors onto HTTP responses. Anything unrecognized
// is logged and reported as a generic 500 so internals never leak.
func writeError(w http.ResponseWriter, err error) {
	var (
		validationErr *store.ValidationError
		conflictErr   *store.ConflictError
		notFoundErr   *store.NotFoundError
		upstreamErr   *translate.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		writeMessage(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &conflictErr):
		writeMessage(w, http.StatusConflict, conflictErr.Message)
	case errors.As(err, &notFoundErr):
		writeMessage(w, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &upstreamErr):
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"message": upstreamErr.Message,
			"detail":  upstreamErr.Detail,
			"status":  upstreamErr.Status,
		})
	default:
		slog.Error("request failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "服务器内部错误")
	}
}

// decodeJSON parses a request body into dst. Returns false after writing
// a 400 when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "请求体不是合法的 JSON")
		return false
	}
	return true
}
