package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":      LevelOff,
		"off":   LevelOff,
		"error": LevelError,
		"info":  LevelInfo,
		"debug": LevelDebug,
		"bogus": LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q)=%d want %d", in, got, want)
		}
	}
}

func TestRequestLogLevelQueryOverride(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/predict?log=debug", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("got %d", got)
	}
	r = httptest.NewRequest(http.MethodGet, "/predict?log=1", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("got %d", got)
	}
	r = httptest.NewRequest(http.MethodGet, "/predict?log=error", nil)
	if got := requestLogLevel(r); got != LevelError {
		t.Fatalf("got %d", got)
	}
}

func TestRequestLogLevelHeaderOverride(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/predict", nil)
	r.Header.Set("X-Log-Level", "info")
	if got := requestLogLevel(r); got != LevelInfo {
		t.Fatalf("got %d", got)
	}
}

func TestRequestLogLevelDefault(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/predict", nil)
	if got := requestLogLevel(r); got != defaultLogLevel {
		t.Fatalf("got %d want %d", got, defaultLogLevel)
	}
}
