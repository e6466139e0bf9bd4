package domain

// Result is the two-outcome envelope returned by every repository and
// service operation: it holds either data or an *Error, never both and never
// neither. Construct it with OK or Fail only.
type Result[T any] struct {
	data T
	err  *Error
}

// OK wraps a successful value.
func OK[T any](v T) Result[T] {
	return Result[T]{data: v}
}

// Fail wraps an error. A nil err is replaced by UnknownError so the
// exactly-one invariant holds.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		err = UnknownError()
	}
	return Result[T]{err: err}
}

// IsOK reports whether the result carries data.
func (r Result[T]) IsOK() bool {
	return r.err == nil
}

// Data returns the value and true on success, or the zero value and false.
func (r Result[T]) Data() (T, bool) {
	return r.data, r.err == nil
}

// Err returns the error envelope, or nil on success.
func (r Result[T]) Err() *Error {
	return r.err
}

// Unwrap converts the result into Go's (value, error) convention. It is the
// boundary where a returned envelope becomes an ordinary error.
func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.data, nil
}

// Pagination is the page metadata reported by the backend. Values are copied
// verbatim and never recomputed locally.
type Pagination struct {
	PageNumber      int  `json:"pageNumber"`
	PageSize        int  `json:"pageSize"`
	TotalRecords    int  `json:"totalRecords"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Page is one page of items plus its metadata.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// PageRequest selects a page. Zero values let the backend apply its defaults.
type PageRequest struct {
	PageNumber int
	PageSize   int
}

// Empty is the payload of operations that succeed without data (deletes).
type Empty struct{}
