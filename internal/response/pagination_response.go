package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// NormalizePage mengembalikan page >= 1 dan page size dalam batas wajar.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func NewPagination(page, pageSize int, totalItems int64, itemsOnPage int) *Pagination {
	page, pageSize = NormalizePage(page, pageSize)
	totalPages := totalItems / int64(pageSize)
	if totalItems%int64(pageSize) != 0 {
		totalPages++
	}
	p := &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
		HasMore:    int64(page) < totalPages,
	}
	if itemsOnPage > 0 {
		p.From = p.Offset() + 1
		p.To = p.Offset() + itemsOnPage
	}
	return p
}
