// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package translate proxies translation requests to the Google Cloud
// Translation v2 API. The server-side API key never reaches the browser;
// clients POST plain text here and the upstream call is made on their
// behalf.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the Google Cloud Translation v2 endpoint.
const DefaultBaseURL = "https://translation.googleapis.com/language/translate/v2"

// maxDetailBytes caps how much upstream body is echoed back to callers.
const maxDetailBytes = 400

// UpstreamError reports a failed or unusable upstream response. Detail is
// truncated so misbehaving upstreams cannot flood our own responses.
type UpstreamError struct {
	Status  int
	Message string
	Detail  string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("translate upstream (status %d): %s", e.Status, e.Message)
}

// Request carries one translation call. Q holds one or more source texts;
// Source may be empty or "auto" to let the upstream detect the language.
type Request struct {
	Q      []string
	Target string
	Source string
	Format string
}

// Translation is a single upstream result.
type Translation struct {
	TranslatedText         string `json:"translatedText"`
	DetectedSourceLanguage string `json:"detectedSourceLanguage,omitempty"`
}

// Result is what Translate returns. Single holds the sole translated text
// when exactly one translation came back; otherwise All carries the batch.
type Result struct {
	Single string
	All    []Translation
}

// Client calls the translation upstream with a fixed API key.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a translation client. baseURL falls back to DefaultBaseURL
// when empty; tests point it at a local server.
func New(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Translate performs the upstream call. The API key goes in the form body,
// not the URL, so it never lands in access logs.
func (c *Client) Translate(ctx context.Context, req Request) (*Result, error) {
	format := req.Format
	if format == "" {
		format = "text"
	}

	params := url.Values{}
	params.Set("target", req.Target)
	params.Set("format", format)
	params.Set("key", c.apiKey)
	for _, q := range req.Q {
		params.Add("q", q)
	}
	if req.Source != "" && req.Source != "auto" {
		params.Set("source", req.Source)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("translate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("translate http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("translate read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{
			Status:  resp.StatusCode,
			Message: "翻译服务返回错误",
			Detail:  truncate(body, maxDetailBytes),
		}
	}

	var parsed struct {
		Data struct {
			Translations []Translation `json:"translations"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &UpstreamError{
			Status:  resp.StatusCode,
			Message: "翻译结果为空",
			Detail:  truncate(body, maxDetailBytes),
		}
	}

	translations := parsed.Data.Translations
	if len(translations) == 0 {
		return nil, &UpstreamError{
			Status:  resp.StatusCode,
			Message: "翻译结果为空",
			Detail:  truncate(body, maxDetailBytes),
		}
	}

	if len(translations) == 1 {
		return &Result{Single: translations[0].TranslatedText}, nil
	}
	return &Result{All: translations}, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
