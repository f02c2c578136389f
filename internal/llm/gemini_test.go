package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiGenerateContent(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.0-flash:generateContent"), r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"ESG summary"}]}}]}`))
	}))
	defer srv.Close()

	g, err := NewGemini(context.Background(), Config{APIKey: "k", BaseURL: srv.URL, Model: "gemini-2.0-flash"})
	require.NoError(t, err)

	out, err := g.Complete(context.Background(), Request{System: "sys", User: "metrics"})
	require.NoError(t, err)
	assert.Equal(t, "ESG summary", out)
	assert.Contains(t, body, "systemInstruction")
	assert.Contains(t, body, "generationConfig")
}
