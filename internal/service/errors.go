// Package service contains the aggregation and orchestration layer between
// the HTTP transport and the repositories. Repository absence (a
// gorm.ErrRecordNotFound value) is converted into a user-facing not-found
// error here and nowhere else.
package service

import (
	"errors"

	"pinboard/internal/models"

	"gorm.io/gorm"
)

// asNotFound translates repository absence into the service-level
// not-found error; every other error passes through unchanged.
func asNotFound(err error, resource string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	return err
}
