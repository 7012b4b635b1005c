// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"polywise/internal/storage"
)

// Uploads handles image uploads for article covers and inline media.
type Uploads struct {
	files *storage.Local
}

// NewUploads creates the upload handler.
func NewUploads(files *storage.Local) *Uploads {
	return &Uploads{files: files}
}

// Create accepts a multipart form with an "image" field, stores the file,
// and returns its relative URL.
func (h *Uploads) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, storage.MaxUploadSize)

	file, header, err := r.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "文件过大，最大支持 5 MB")
			return
		}
		writeMessage(w, http.StatusBadRequest, "未检测到文件")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, err)
		return
	}

	// Trust the payload over the declared header when sniffing the type.
	contentType := header.Header.Get("Content-Type")
	if sniffed := http.DetectContentType(data); sniffed != "application/octet-stream" {
		contentType = sniffed
	}

	saved, err := h.files.Save(header.Filename, contentType, data)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			writeMessage(w, http.StatusBadRequest, storage.ErrUnsupportedType.Error())
			return
		}
		writeError(w, err)
		return
	}

	slog.Info("file uploaded", "name", saved.Name, "size", saved.Size)
	writeJSON(w, http.StatusCreated, map[string]string{"url": saved.URL})
}
