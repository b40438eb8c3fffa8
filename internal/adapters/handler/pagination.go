package handler

import (
	"net/http"
	"strconv"

	"github.com/greenwheels/console-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// pageParams holds the parsed page and limit from a request's query string.
// Invalid, negative, or excessive values are clamped to the defaults.
type pageParams struct {
	Page  int
	Limit int
}

func pageFromRequest(r *http.Request) pageParams {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", defaultPageLimit)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	return pageParams{Page: page, Limit: limit}
}

func (p pageParams) window() ports.ListWindow {
	return ports.ListWindow{Offset: (p.Page - 1) * p.Limit, Limit: p.Limit}
}

// pageMeta is the pagination block included in list responses.
type pageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func metaFor(p pageParams, total int) pageMeta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}
	return pageMeta{Page: p.Page, Limit: p.Limit, Total: total, TotalPages: totalPages}
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
