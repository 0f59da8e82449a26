// Copyright (c) 2026 Alor Foundation. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alorfdn/alor/pkg/pagination"
)

/*
TestFromRequest verifies query parameter parsing and clamping.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "?page=2&limit=5", 2, 5},
		{"negative_page", "?page=-3", 1, 10},
		{"zero_limit", "?limit=0", 1, 10},
		{"excessive_limit", "?limit=5000", 1, 10},
		{"garbage", "?page=abc&limit=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/items"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestOffset verifies SQL offset derivation.
*/
func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 5, pagination.Params{Page: 2, Limit: 5}.Offset())
	assert.Equal(t, 20, pagination.Params{Page: 3, Limit: 10}.Offset())
}

/*
TestNewMeta verifies page math: 12 items at limit 5 yields 3 pages, and the
second page holds exactly 5 items.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 5, 5, 12)

	assert.Equal(t, 5, meta.Count)
	assert.Equal(t, 12, meta.Total)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.Pages)
}

/*
TestNewMeta_Empty verifies zero-state metadata.
*/
func TestNewMeta_Empty(t *testing.T) {
	meta := pagination.NewMeta(1, 10, 0, 0)

	assert.Equal(t, 0, meta.Count)
	assert.Equal(t, 0, meta.Total)
	assert.Equal(t, 0, meta.Pages)
}
