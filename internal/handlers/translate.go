// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"polywise/internal/translate"
)

// Translate proxies translation requests so the upstream API key stays
// server-side.
type Translate struct {
	client *translate.Client
	hasKey bool
}

// NewTranslate creates the translation handler. hasKey reflects whether a
// Google API key was configured at startup.
func NewTranslate(client *translate.Client, hasKey bool) *Translate {
	return &Translate{client: client, hasKey: hasKey}
}

// textOrList accepts either a JSON string or a JSON array of strings, the
// two shapes the upstream API takes for the q parameter.
type textOrList []string

func (t *textOrList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*t = nil
			return nil
		}
		*t = textOrList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = textOrList(many)
	return nil
}

type translateRequest struct {
	Q      textOrList `json:"q"`
	Target string     `json:"target"`
	Source string     `json:"source"`
	Format string     `json:"format"`
}

// Create forwards a translation request upstream. Single-text requests get
// a flat {translatedText} response; batches return the upstream shape.
func (h *Translate) Create(w http.ResponseWriter, r *http.Request) {
	var in translateRequest
	if !decodeJSON(w, r, &in) {
		return
	}

	if len(in.Q) == 0 || in.Target == "" {
		writeMessage(w, http.StatusBadRequest, "缺少必要参数 q 或 target")
		return
	}
	if !h.hasKey {
		writeMessage(w, http.StatusInternalServerError, "缺少 GOOGLE_API_KEY 环境变量")
		return
	}

	result, err := h.client.Translate(r.Context(), translate.Request{
		Q:      in.Q,
		Target: in.Target,
		Source: in.Source,
		Format: in.Format,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if result.All == nil {
		writeJSON(w, http.StatusOK, map[string]string{"translatedText": result.Single})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{"translations": result.All},
	})
}
