package listquery

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePagination reads page and limit from their raw request form.
// Empty values take the defaults silently. Non-numeric or non-positive
// values fall back to the defaults. A limit above maxLimit, or a page whose
// offset would overflow, is clamped. Every such case returns the clamped
// Pagination together with ErrInvalidPagination.
func ParsePagination(rawPage, rawLimit string, defaultLimit, maxLimit int) (Pagination, error) {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if defaultLimit <= 0 || defaultLimit > maxLimit {
		defaultLimit = min(DefaultLimit, maxLimit)
	}

	var (
		p    = Pagination{Page: DefaultPage, Limit: defaultLimit}
		errs []string
	)

	if rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		switch {
		case err != nil:
			errs = append(errs, "page is not a number")
		case page < 1:
			errs = append(errs, "page must be at least 1")
		default:
			p.Page = page
		}
	}

	if rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		switch {
		case err != nil:
			errs = append(errs, "limit is not a number")
		case limit < 1:
			errs = append(errs, "limit must be at least 1")
		case limit > maxLimit:
			errs = append(errs, "limit above "+strconv.Itoa(maxLimit))
			p.Limit = maxLimit
		default:
			p.Limit = limit
		}
	}

	// Keep (page-1)*limit representable as an OFFSET.
	if maxOffsetPages := math.MaxInt / p.Limit; p.Page-1 > maxOffsetPages {
		p.Page = maxOffsetPages + 1
		errs = append(errs, "page above "+strconv.Itoa(p.Page))
	}

	if len(errs) > 0 {
		return p, errors.Wrap(ErrInvalidPagination, strings.Join(errs, "; "))
	}

	return p, nil
}

// PageInfo is the pagination block of a list response.
type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

func NewPageInfo(p Pagination, total int64) PageInfo {
	if total < 0 {
		total = 0
	}

	totalPages := 0
	if p.Limit > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}

	return PageInfo{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}
