package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"no accept header", "", "v1"},
		{"plain json", "application/json", "v1"},
		{"vendor v1", "application/vnd.nutrikit.trophe.v1+json", "v1"},
		{"vendor with params", "application/vnd.nutrikit.trophe.v1+json; charset=utf-8", "v1"},
		{"unknown version falls back", "application/vnd.nutrikit.trophe.v9+json", "v1"},
		{"other vendor ignored", "application/vnd.other.v2+json", "v1"},
		{"vendor among alternatives", "text/html, application/vnd.nutrikit.trophe.v1+json", "v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/v1/foods", nil)
			if tt.accept != "" {
				r.Header.Set("Accept", tt.accept)
			}
			if got := negotiateAPIVersion(r); got != tt.want {
				t.Errorf("negotiateAPIVersion(%q) = %q, want %q", tt.accept, got, tt.want)
			}
		})
	}
}

func TestSetAPIVersionHeader(t *testing.T) {
	w := httptest.NewRecorder()
	SetAPIVersionHeader(w, "v1")
	if got := w.Header().Get("X-API-Version"); got != "v1" {
		t.Errorf("X-API-Version = %q, want v1", got)
	}
}
