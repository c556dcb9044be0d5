package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/meeting-notes/internal/backend"
	"github.com/nguyentantai21042004/meeting-notes/internal/config"
	"github.com/nguyentantai21042004/meeting-notes/internal/export"
	"github.com/nguyentantai21042004/meeting-notes/internal/gate"
	"github.com/nguyentantai21042004/meeting-notes/internal/logger"
)

func TestRunHeadless(t *testing.T) {
	var emailed map[string]interface{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/summarize", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "summary": "- point 1", "summaryId": "abc123"})
	})
	mux.HandleFunc("/api/email", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&emailed)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := t.TempDir()
	transcript := filepath.Join(dir, "meeting.txt")
	require.NoError(t, os.WriteFile(transcript, []byte("Meeting notes..."), 0644))

	log := logger.NewWithOptions(logger.Options{Quiet: true})
	be := backend.New(config.BackendConfig{BaseURL: srv.URL + "/api"}, log)
	exp := export.New(filepath.Join(dir, "exports"), log)

	err := runHeadless(context.Background(), be, exp, log, headlessOptions{
		transcriptPath: transcript,
		instruction:    "Summarize in bullets",
		recipients:     "a@x.com, b@y.com",
		exportFormat:   "md",
	})
	require.NoError(t, err)

	assert.Equal(t, "abc123", emailed["summaryId"])
	assert.Equal(t, []interface{}{"a@x.com", "b@y.com"}, emailed["recipients"])
	assert.FileExists(t, filepath.Join(dir, "exports", "summary-abc123.md"))
}

func TestRunHeadlessValidation(t *testing.T) {
	log := logger.NewWithOptions(logger.Options{Quiet: true})
	be := backend.New(config.BackendConfig{BaseURL: "http://127.0.0.1:1"}, log)

	dir := t.TempDir()
	transcript := filepath.Join(dir, "meeting.txt")
	require.NoError(t, os.WriteFile(transcript, []byte("notes"), 0644))

	err := runHeadless(context.Background(), be, export.New(dir, log), log, headlessOptions{transcriptPath: transcript})

	var verr *gate.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, surfaced(err))
}

func TestRunHeadlessNeedsInput(t *testing.T) {
	log := logger.NewWithOptions(logger.Options{Quiet: true})
	err := runHeadless(context.Background(), nil, nil, log, headlessOptions{instruction: "x"})
	assert.Error(t, err)
	assert.False(t, surfaced(err))
}
