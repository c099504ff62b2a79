// Package repository defines the persistence ports of the domain.
package repository

import (
	"context"

	"macts/internal/domain/entity"
	"macts/internal/errors"
)

// Sentinel errors shared by repository implementations.
var (
	// ErrStudentNotFound is returned when no student record exists for a user.
	ErrStudentNotFound = errors.New("student record not found")
	// ErrDuplicateStudent is returned when a student record already exists for a user.
	ErrDuplicateStudent = errors.New("student record already exists")
)

// StudentRepository provides access to the student registry.
type StudentRepository interface {
	// FindByUser retrieves the student record for an external user directory id.
	FindByUser(ctx context.Context, userID string) (*entity.StudentProfile, error)

	// CreateProfile persists a new student record.
	CreateProfile(ctx context.Context, profile *entity.StudentProfile) error

	// UpdateProfile replaces the mutable fields of an existing record.
	UpdateProfile(ctx context.Context, profile *entity.StudentProfile) error
}
