package shared

import (
	"net/http/httptest"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/employees/page", 1, 20},
		{"explicit", "/employees/page?page=3&limit=10", 3, 10},
		{"clamped to max", "/employees/page?limit=500", 1, 100},
		{"garbage ignored", "/employees/page?page=abc&limit=-5", 1, 20},
		{"zero ignored", "/employees/page?page=0&limit=0", 1, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			p := ParsePagination(r, 20, 100)
			if p.Page != tc.wantPage || p.Limit != tc.wantLimit {
				t.Fatalf("got page=%d limit=%d, want page=%d limit=%d", p.Page, p.Limit, tc.wantPage, tc.wantLimit)
			}
		})
	}
}
