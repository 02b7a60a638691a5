package common

// Pagination holds the query window derived from page/size against a total.
type Pagination struct {
	Skip       int
	Limit      int
	TotalPages int
}

// NewPagination validates page/size and computes the skip/limit window.
// totalPages is ceil(total/size).
func NewPagination(page, size, total int) (Pagination, error) {
	if page < 0 || size <= 0 {
		return Pagination{}, InvalidArgumentf("page %d size %d", page, size)
	}

	totalPages := total / size
	if total%size != 0 {
		totalPages++
	}

	return Pagination{
		Skip:       page * size,
		Limit:      size,
		TotalPages: totalPages,
	}, nil
}
