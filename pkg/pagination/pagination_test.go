// Copyright (c) 2026 BookLog. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/booklogapp/booklog-server/pkg/pagination"
)

/*
TestFromRequest verifies query parsing with clamping of invalid values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/books", pagination.DefaultPage, pagination.DefaultLimit},
		{"explicit", "/books?page=3&limit=50", 3, 50},
		{"zero_page", "/books?page=0", pagination.DefaultPage, pagination.DefaultLimit},
		{"negative_limit", "/books?limit=-5", pagination.DefaultPage, pagination.DefaultLimit},
		{"excessive_limit", "/books?limit=5000", pagination.DefaultPage, pagination.DefaultLimit},
		{"garbage", "/books?page=abc&limit=xyz", pagination.DefaultPage, pagination.DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.target, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestOffset verifies the SQL offset derivation from 1-indexed pages.
*/
func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 3, Limit: 20}.Offset())
}

/*
TestNewMeta verifies total page math, including rounding up and the
zero-limit guard.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 20, 45)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, 45, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	empty := pagination.NewMeta(1, 20, 0)
	assert.Equal(t, 0, empty.TotalPages)

	zeroLimit := pagination.NewMeta(1, 0, 45)
	assert.Equal(t, 0, zeroLimit.TotalPages)
}
