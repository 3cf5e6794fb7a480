package paginator

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Query is the page request bound from ?page=&limit=. Page is 1-indexed.
type Query struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// Adjust replaces out-of-range values with defaults and caps Limit.
func (q *Query) Adjust() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	switch {
	case q.Limit < 1:
		q.Limit = DefaultLimit
	case q.Limit > MaxLimit:
		q.Limit = MaxLimit
	}
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Paginator is the page metadata returned next to a listed page.
type Paginator struct {
	Total       int  `json:"total"`
	Count       int  `json:"count"`
	PerPage     int  `json:"per_page"`
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

func newPaginator(total, count int, q Query) Paginator {
	pages := 0
	if total > 0 {
		pages = (total + q.Limit - 1) / q.Limit
	}
	return Paginator{
		Total:       total,
		Count:       count,
		PerPage:     q.Limit,
		CurrentPage: q.Page,
		TotalPages:  pages,
		HasNext:     q.Page < pages,
		HasPrev:     q.Page > 1,
	}
}

// Paginate returns the requested page of items. A page past the end is empty.
func Paginate[T any](items []T, q Query) ([]T, Paginator) {
	q.Adjust()

	start := q.Offset()
	if start >= len(items) {
		return []T{}, newPaginator(len(items), 0, q)
	}
	end := min(start+q.Limit, len(items))

	page := items[start:end]
	return page, newPaginator(len(items), len(page), q)
}
