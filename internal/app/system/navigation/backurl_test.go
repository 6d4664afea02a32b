package navigation

import (
	"net/http/httptest"
	"testing"
)

func TestSafeBackURL(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"no return", "/about", "/dashboard"},
		{"valid return", "/about?return=/dashboard/energy", "/dashboard/energy"},
		{"foreign prefix", "/about?return=/export/roi.csv", "/dashboard"},
		{"calculator endpoint", "/about?return=/dashboard/energy/calculator", "/dashboard"},
		{"absolute url", "/about?return=https://evil.example/dashboard", "/dashboard"},
		{"preserves selection", "/about?property=Three+Amigos&horizon=6", "/dashboard?horizon=6&property=Three+Amigos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			if got := SafeBackURL(r, DashboardBackURL); got != tt.want {
				t.Errorf("SafeBackURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
