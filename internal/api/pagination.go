// ABOUTME: Pagination envelope shared by paginated list operations
// ABOUTME: Normalizes the backend's two envelope field spellings and estimates totals

package api

import "encoding/json"

// Pagination describes one page of a list response. Zero TotalPages
// and TotalCount mean the backend did not supply totals; callers
// should fall back to EstimateTotalPages.
type Pagination struct {
	Page       int
	Limit      int
	TotalPages int
	TotalCount int
}

// Known reports whether the backend supplied an explicit total.
func (p Pagination) Known() bool {
	return p.TotalPages > 0
}

// UnmarshalJSON accepts both envelope spellings the backend has used:
// {page, limit, totalPages, totalCount} and
// {currentPage, limit, totalPages, totalNotifications}.
func (p *Pagination) UnmarshalJSON(b []byte) error {
	var raw struct {
		Page               int `json:"page"`
		CurrentPage        int `json:"currentPage"`
		Limit              int `json:"limit"`
		TotalPages         int `json:"totalPages"`
		TotalCount         int `json:"totalCount"`
		TotalNotifications int `json:"totalNotifications"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	p.Page = raw.Page
	if p.Page == 0 {
		p.Page = raw.CurrentPage
	}
	p.Limit = raw.Limit
	p.TotalPages = raw.TotalPages
	p.TotalCount = raw.TotalCount
	if p.TotalCount == 0 {
		p.TotalCount = raw.TotalNotifications
	}
	return nil
}

// EstimateTotalPages infers a page total when the backend omits one.
// A full page means more pages may exist, so the estimate never marks
// the current page as last and never shrinks a previously known total.
// A short page means the current page is the last one. The heuristic
// cannot detect a collection of exactly limit items; backend-supplied
// totals are always preferred when present.
func EstimateTotalPages(known, page, got, limit int) int {
	if limit <= 0 {
		return page
	}
	if got < limit {
		if page == 1 {
			return 1
		}
		return page
	}
	if known > page {
		return known
	}
	return page + 1
}
