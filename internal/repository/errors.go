package repository

import (
	"fmt"

	"github.com/dstasiak/med-reminder/internal/domain"
)

// storageErr wraps a driver or connection failure so handlers can map it to
// a 503 storage-unavailable response. Nil passes through untouched.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}
