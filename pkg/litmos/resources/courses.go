package resources

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ===================================================================
// Courses
// ===================================================================

// CoursesService wraps the /courses endpoints.
type CoursesService struct {
	r Requester
}

// List lists courses matching opts.
func (s *CoursesService) List(ctx context.Context, opts ListOptions) ([]Course, error) {
	resp, err := s.r.Get(ctx, "courses", opts.params())
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return decodeMany[Course](resp, "courses")
}

// Get retrieves a course by ID.
func (s *CoursesService) Get(ctx context.Context, id string) (*Course, error) {
	if err := validation.Validate(id, validation.Required); err != nil {
		return nil, fmt.Errorf("invalid course id: %w", err)
	}

	resp, err := s.r.Get(ctx, resourcePath("courses", id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return decodeOne[Course](resp, "course")
}

// Users lists the users enrolled in a course.
func (s *CoursesService) Users(ctx context.Context, id string) ([]CourseUser, error) {
	if err := validation.Validate(id, validation.Required); err != nil {
		return nil, fmt.Errorf("invalid course id: %w", err)
	}

	resp, err := s.r.Get(ctx, resourcePath("courses", id, "users"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list course users: %w", err)
	}
	return decodeMany[CourseUser](resp, "course users")
}
