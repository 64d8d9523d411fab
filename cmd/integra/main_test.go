package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEnv clears every configuration variable and applies kv on top.
func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()

	for _, k := range []string{
		"HUGGINGFACE_API_KEY",
		"HUGGINGFACE_BASE_URL",
		"INTEGRA_DEFAULT_MODEL",
		"INTEGRA_TIMEOUT",
		"INTEGRA_LOG_LEVEL",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	for k, v := range kv {
		t.Setenv(k, v)
	}
}

type recordingServer struct {
	*httptest.Server

	mu    sync.Mutex
	paths []string
}

func newRecordingServer(t *testing.T, handler http.HandlerFunc) *recordingServer {
	t.Helper()

	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.mu.Lock()
		rs.paths = append(rs.paths, r.URL.Path)
		rs.mu.Unlock()

		handler(w, r)
	}))
	t.Cleanup(rs.Close)

	return rs
}

func (rs *recordingServer) Paths() []string {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	return append([]string(nil), rs.paths...)
}

func TestRun_MissingAPIKey(t *testing.T) {
	srv := newRecordingServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"generated_text":"unreachable"}]`)
	})
	setEnv(t, map[string]string{"HUGGINGFACE_BASE_URL": srv.URL + "/models"})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Empty(t, srv.Paths())

	lines := strings.Split(strings.TrimRight(stderr.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "HUGGINGFACE_API_KEY is not set")
	assert.Contains(t, lines[1], ".env")
}

func TestRun_InvalidConfig(t *testing.T) {
	setEnv(t, map[string]string{
		"HUGGINGFACE_API_KEY": "hf-test",
		"INTEGRA_LOG_LEVEL":   "loud",
	})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "INTEGRA_LOG_LEVEL")
}

func TestRun_Demo(t *testing.T) {
	srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer hf-test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/models/gpt2":
			_, _ = io.WriteString(w, `[{"generated_text":" they built a city of light."}]`)
		case "/models/microsoft/CodeGPT-small-js":
			_, _ = io.WriteString(w, `[{"generated_text":"\n  return n < 2 ? n : calculateFibonacci(n - 1) + calculateFibonacci(n - 2);\n}"}]`)
		default:
			_, _ = io.WriteString(w, `{"error":"unexpected shape"}`)
		}
	})
	setEnv(t, map[string]string{
		"HUGGINGFACE_API_KEY":  "hf-test",
		"HUGGINGFACE_BASE_URL": srv.URL + "/models",
	})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, []string{
		"/models/gpt2",
		"/models/microsoft/CodeGPT-small-js",
		"/models/microsoft/DialoGPT-large",
	}, srv.Paths())

	out := stdout.String()
	assert.Contains(t, out, "Welcome to Integra!")
	assert.Contains(t, out, "GPT-2 (gpt2)")
	assert.Contains(t, out, "BLOOM 560M (bloom)")
	assert.Contains(t, out, "they built a city of light.")
	assert.Contains(t, out, "calculateFibonacci(n - 1)")
	assert.Contains(t, out, "unexpected shape")
	assert.Contains(t, out, "Integra demo completed!")

	logs := stderr.String()
	assert.Contains(t, logs, "generating text")
	assert.NotContains(t, logs, "level=ERROR")
}

func TestRun_FailuresDoNotStopDemo(t *testing.T) {
	srv := newRecordingServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"error":"model loading"}`)
	})
	setEnv(t, map[string]string{
		"HUGGINGFACE_API_KEY":  "hf-test",
		"HUGGINGFACE_BASE_URL": srv.URL + "/models",
	})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Len(t, srv.Paths(), 3)
	assert.Equal(t, 3, strings.Count(stdout.String(), "Generation failed"))
	assert.Contains(t, stdout.String(), "Integra demo completed!")

	logs := stderr.String()
	assert.Equal(t, 3, strings.Count(logs, "api error"))
	assert.Contains(t, logs, "status=503")
	assert.Contains(t, logs, "model loading")
}

func TestRun_CanceledContextSkipsExamples(t *testing.T) {
	srv := newRecordingServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"generated_text":"x"}]`)
	})
	setEnv(t, map[string]string{
		"HUGGINGFACE_API_KEY":  "hf-test",
		"HUGGINGFACE_BASE_URL": srv.URL + "/models",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, srv.Paths())
	assert.Contains(t, stdout.String(), "Available AI Models:")
}
