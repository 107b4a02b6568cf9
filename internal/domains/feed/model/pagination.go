package model

// Page describes the slice of a result set a feed response covers.
type Page struct {
	Number     int `json:"number"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ClampPage maps a requested 1-based page number onto the valid range.
// Requests below 1 get page 1; requests beyond the last page get the
// last page, never an error. An empty result set still has one page.
func ClampPage(requested, pageSize, total int) (offset, page, totalPages int) {
	totalPages = (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page = requested
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	offset = (page - 1) * pageSize
	return offset, page, totalPages
}
