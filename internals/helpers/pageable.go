// file: internals/helpers/pageable.go
package helper

import (
	"strconv"
	"strings"
)

const (
	DefaultPageNumber = 0
	DefaultPageSize   = 5
	MaxPageSize       = 100
)

// Pageable is the normalized paging pair: Number is 0-based,
// Size is always within [1, MaxPageSize].
type Pageable struct {
	Number int
	Size   int
}

// CreatePageable normalizes the raw ?page= and ?size= query values.
// The page number is 1-based on the wire and 0-based internally; anything
// absent, non-numeric or below page 1 falls back to page 0. A size that is
// absent, non-numeric or outside [1, MaxPageSize] falls back to
// DefaultPageSize, so the size invariant holds for every possible input.
func CreatePageable(number, size string) Pageable {
	numberInt := DefaultPageNumber
	if n, err := strconv.Atoi(strings.TrimSpace(number)); err == nil {
		numberInt = n - 1
		if numberInt < 0 {
			numberInt = DefaultPageNumber
		}
	}

	sizeInt := DefaultPageSize
	if n, err := strconv.Atoi(strings.TrimSpace(size)); err == nil {
		sizeInt = n
		if sizeInt < 1 || sizeInt > MaxPageSize {
			sizeInt = DefaultPageSize
		}
	}

	return Pageable{Number: numberInt, Size: sizeInt}
}
