package sales

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: the referenced inventory item does not exist (or is not
	// owned by the calling profile). Not retryable.
	ErrNotFound = errors.New("inventory item not found")

	// ErrInvalidArgument: malformed quantity or price. Not retryable.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientStock: the requested quantity exceeds available
	// stock. The caller may retry with an adjusted quantity.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrStorageUnavailable: transient storage failure; safe to retry.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// InsufficientStockError carries the quantity still available so the
// caller can display it. errors.Is(err, ErrInsufficientStock) matches.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: only %d available", e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
