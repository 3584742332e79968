package resources

import (
	"context"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/litmos/pkg/litmos"
)

// ===================================================================
// Users
// ===================================================================
// All methods call the /users endpoints.

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UsersService wraps the /users endpoints.
type UsersService struct {
	r Requester
}

// NewUser holds the fields required to create a user.
type NewUser struct {
	UserName        string
	FirstName       string
	LastName        string
	Email           string
	AccessLevel     string
	DisableMessages bool
	SkipFirstLogin  bool
}

// Validate checks the required fields.
func (u NewUser) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.UserName, validation.Required),
		validation.Field(&u.FirstName, validation.Required),
		validation.Field(&u.LastName, validation.Required),
		validation.Field(&u.Email, validation.Required, validation.Match(emailPattern)),
	)
}

func (u NewUser) params() litmos.Params {
	accessLevel := u.AccessLevel
	if accessLevel == "" {
		accessLevel = "Learner"
	}

	return pascalize(litmos.Params{
		"user_name":        u.UserName,
		"first_name":       u.FirstName,
		"last_name":        u.LastName,
		"email":            u.Email,
		"access_level":     accessLevel,
		"disable_messages": u.DisableMessages,
		"skip_first_login": u.SkipFirstLogin,
	})
}

// List lists users matching opts.
func (s *UsersService) List(ctx context.Context, opts ListOptions) ([]User, error) {
	resp, err := s.r.Get(ctx, "users", opts.params())
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return decodeMany[User](resp, "users")
}

// Get retrieves a user by ID.
func (s *UsersService) Get(ctx context.Context, id string) (*User, error) {
	if err := validation.Validate(id, validation.Required); err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	resp, err := s.r.Get(ctx, resourcePath("users", id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return decodeOne[User](resp, "user")
}

// Create creates a user and returns it as stored by the API.
func (s *UsersService) Create(ctx context.Context, u NewUser) (*User, error) {
	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	resp, err := s.r.Post(ctx, "users", u.params(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return decodeOne[User](resp, "user")
}

// Update changes the given fields of a user. Field names use the same
// snake_case form as decoded responses, e.g. "first_name".
func (s *UsersService) Update(ctx context.Context, id string, fields litmos.Params) error {
	if err := validation.Validate(id, validation.Required); err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	if err := validation.Validate(map[string]any(fields), validation.Required); err != nil {
		return fmt.Errorf("invalid fields: %w", err)
	}

	body := pascalize(fields)
	body["Id"] = id

	if _, err := s.r.Put(ctx, resourcePath("users", id), body, nil); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// Delete deletes a user.
func (s *UsersService) Delete(ctx context.Context, id string) error {
	if err := validation.Validate(id, validation.Required); err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	if _, err := s.r.Delete(ctx, resourcePath("users", id), nil); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Courses lists the courses assigned to a user.
func (s *UsersService) Courses(ctx context.Context, id string) ([]UserCourse, error) {
	if err := validation.Validate(id, validation.Required); err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	resp, err := s.r.Get(ctx, resourcePath("users", id, "courses"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list user courses: %w", err)
	}
	return decodeMany[UserCourse](resp, "user courses")
}

// UnassignCourse removes a course from a user.
func (s *UsersService) UnassignCourse(ctx context.Context, userID, courseID string) error {
	if err := validation.Validate(userID, validation.Required); err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	if err := validation.Validate(courseID, validation.Required); err != nil {
		return fmt.Errorf("invalid course id: %w", err)
	}

	if _, err := s.r.Delete(ctx, resourcePath("users", userID, "courses", courseID), nil); err != nil {
		return fmt.Errorf("failed to unassign course: %w", err)
	}
	return nil
}
