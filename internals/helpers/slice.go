// file: internals/helpers/slice.go
package helper

// Slice is one page of results plus the total number of matching rows.
type Slice[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
}
