package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/healthz", want: false},
		{path: " /READYZ ", want: false},
		{path: "/docs", want: false},
		{path: "/docs/index.html", want: false},
		{path: "/openapi.yaml", want: false},
		{path: "/api/football-data/matches/live", want: true},
		{path: "/api/football-data/sync", want: true},
		{path: "/api/football-data/healthz", want: true},
		{path: "/", want: true},
	}

	for _, tt := range tests {
		if got := shouldTraceRequest(tt.path); got != tt.want {
			t.Fatalf("shouldTraceRequest(%q)=%v want=%v", tt.path, got, tt.want)
		}
	}
}
