package service

import (
	"time"

	"github.com/maxviazov/korfball-stats-service/internal/repository"
)

const (
	defaultFormWindow = 5
	maxFormWindow     = 50
	defaultTopLimit   = 5
	maxTopLimit       = 100
)

func normalizePage(p repository.Page) repository.Page {
	limit := p.Limit
	offset := p.Offset
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return repository.Page{Limit: limit, Offset: offset}
}

// normalizeWindow bounds the recent-matches window for form and trend queries.
func normalizeWindow(n int) int {
	if n <= 0 {
		return defaultFormWindow
	}
	if n > maxFormWindow {
		return maxFormWindow
	}
	return n
}

// normalizeLimit bounds the top-N truncation for rankings.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultTopLimit
	}
	if limit > maxTopLimit {
		return maxTopLimit
	}
	return limit
}

// isValidISODate accepts the date layouts that have historically appeared
// in match documents. Write-path validation only; reads stay tolerant.
func isValidISODate(s string) bool {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
