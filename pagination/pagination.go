package pagination

// DefaultPageSize is the fixed page size for listing views.
const DefaultPageSize = 5

// Pager holds the resolved window for one page of an ordered result set.
// Build it with New, then fetch the slice [Offset, Offset+Limit) from the
// store and wrap the result with NewPage.
type Pager struct {
	PageNumber int
	PageSize   int
	TotalCount int64
	TotalPages int
}

// New resolves a requested page against the total item count. The requested
// page is clamped silently into [1, max(totalPages, 1)]; out-of-range values
// never error. A non-positive or missing page behaves as page 1. An empty
// result set yields a single empty page.
func New(totalCount int64, requestedPage, pageSize int) Pager {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))

	page := requestedPage
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	return Pager{
		PageNumber: page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// Offset is the number of items to skip in the ordered result set.
func (p Pager) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// Limit is the maximum number of items on the page.
func (p Pager) Limit() int {
	return p.PageSize
}

// HasPrevious reports whether a page precedes this one.
func (p Pager) HasPrevious() bool {
	return p.PageNumber > 1
}

// HasNext reports whether a page follows this one.
func (p Pager) HasNext() bool {
	return p.PageNumber < p.TotalPages
}

// Page is one slice of an ordered listing together with its position.
type Page[T any] struct {
	Items       []T   `json:"items"`
	PageNumber  int   `json:"pageNumber"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
}

// NewPage wraps fetched items with the pager's position. The items slice is
// never nil so the JSON form is always an array.
func NewPage[T any](pager Pager, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		PageNumber:  pager.PageNumber,
		TotalPages:  pager.TotalPages,
		TotalCount:  pager.TotalCount,
		HasPrevious: pager.HasPrevious(),
		HasNext:     pager.HasNext(),
	}
}
