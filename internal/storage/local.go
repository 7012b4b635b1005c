// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage persists uploaded images on local disk and hands back the
// stable relative URL they are later served under (/uploads/<name>). Wide
// images additionally get a JPEG thumbnail alongside the original.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "image/gif" // register GIF decoder
	_ "image/png" // register PNG decoder

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	// MaxUploadSize is the maximum allowed upload payload (5 MB).
	MaxUploadSize = 5 << 20

	// thumbMaxWidth is the maximum thumbnail width in pixels.
	thumbMaxWidth = 400

	// thumbQuality is the JPEG quality for generated thumbnails.
	thumbQuality = 80

	// maxImagePixels caps decoded size to prevent memory bombs.
	maxImagePixels = 100_000_000

	// urlPrefix is where the router serves stored files from.
	urlPrefix = "/uploads"
)

// ErrUnsupportedType is returned for payloads that are not images.
var ErrUnsupportedType = errors.New("仅支持图片上传")

// baseSanitizer strips everything but word characters, CJK ideographs, and
// hyphens from the original filename's base.
var baseSanitizer = regexp.MustCompile(`[^\w\x{4e00}-\x{9fa5}-]`)

// SavedFile describes a stored upload.
type SavedFile struct {
	Name     string // file name inside the uploads directory
	URL      string // stable relative URL, e.g. /uploads/cover-<id>.png
	ThumbURL string // relative URL of the thumbnail, empty when none
	Size     int64  // stored size in bytes
}

// Local is an upload store rooted at a single directory. Each Save is
// independent; there is no shared state beyond the directory itself.
type Local struct {
	dir string
}

// NewLocal creates the uploads directory if needed and returns a store.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

// Dir returns the backing directory, for static file serving.
func (l *Local) Dir() string { return l.dir }

// Save stores an image payload under a collision-free name derived from the
// original filename and returns its relative URL. Non-image content types
// are rejected with ErrUnsupportedType. A thumbnail is generated for images
// wider than the thumbnail cap; thumbnail failures are logged, not fatal.
func (l *Local) Save(originalName, contentType string, data []byte) (*SavedFile, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrUnsupportedType
	}

	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".png"
	}
	base := baseSanitizer.ReplaceAllString(strings.TrimSuffix(filepath.Base(originalName), ext), "")
	if base == "" {
		base = "image"
	}

	stem := fmt.Sprintf("%s-%s", base, uuid.New().String())
	name := stem + ext

	if err := os.WriteFile(filepath.Join(l.dir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	saved := &SavedFile{
		Name: name,
		URL:  urlPrefix + "/" + name,
		Size: int64(len(data)),
	}

	thumb, err := makeThumbnail(bytes.NewReader(data), thumbMaxWidth)
	if err != nil {
		slog.Warn("thumbnail generation failed", "name", name, "error", err)
	} else if thumb != nil {
		thumbName := stem + "_thumb.jpg"
		if err := os.WriteFile(filepath.Join(l.dir, thumbName), thumb, 0o644); err != nil {
			slog.Warn("thumbnail write failed", "name", thumbName, "error", err)
		} else {
			saved.ThumbURL = urlPrefix + "/" + thumbName
		}
	}

	return saved, nil
}

// makeThumbnail creates a JPEG thumbnail constrained to maxWidth while
// preserving aspect ratio. Returns nil when the image is already narrow
// enough (GIF animations and SVG never reach here — only decodable raster
// formats do).
func makeThumbnail(src io.ReadSeeker, maxWidth int) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if int64(cfg.Width)*int64(cfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("image too large: %dx%d exceeds %d pixels", cfg.Width, cfg.Height, maxImagePixels)
	}
	if cfg.Width <= maxWidth {
		return nil, nil
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	ratio := float64(maxWidth) / float64(bounds.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, int(float64(bounds.Dy())*ratio)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
