package resources

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/litmos/pkg/litmos"
)

// ===================================================================
// Teams
// ===================================================================
// All methods call the /teams endpoints.

// TeamsService wraps the /teams endpoints.
type TeamsService struct {
	r Requester
}

// NewTeam holds the fields used to create a team.
type NewTeam struct {
	Name        string
	Description string
}

// Validate checks the required fields.
func (t NewTeam) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required, validation.Length(1, 255)),
	)
}

// List lists teams matching opts.
func (s *TeamsService) List(ctx context.Context, opts ListOptions) ([]Team, error) {
	resp, err := s.r.Get(ctx, "teams", opts.params())
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return decodeMany[Team](resp, "teams")
}

// Get retrieves a team by ID.
func (s *TeamsService) Get(ctx context.Context, id string) (*Team, error) {
	if err := validation.Validate(id, validation.Required); err != nil {
		return nil, fmt.Errorf("invalid team id: %w", err)
	}

	resp, err := s.r.Get(ctx, resourcePath("teams", id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return decodeOne[Team](resp, "team")
}

// Create creates a team.
func (s *TeamsService) Create(ctx context.Context, t NewTeam) (*Team, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	body := pascalize(litmos.Params{
		"name":        t.Name,
		"description": t.Description,
	})

	resp, err := s.r.Post(ctx, "teams", body, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return decodeOne[Team](resp, "team")
}

// Members lists the users in a team.
func (s *TeamsService) Members(ctx context.Context, id string) ([]User, error) {
	if err := validation.Validate(id, validation.Required); err != nil {
		return nil, fmt.Errorf("invalid team id: %w", err)
	}

	resp, err := s.r.Get(ctx, resourcePath("teams", id, "users"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	return decodeMany[User](resp, "team members")
}

// RemoveMember removes a user from a team.
func (s *TeamsService) RemoveMember(ctx context.Context, teamID, userID string) error {
	if err := validation.Validate(teamID, validation.Required); err != nil {
		return fmt.Errorf("invalid team id: %w", err)
	}
	if err := validation.Validate(userID, validation.Required); err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	if _, err := s.r.Delete(ctx, resourcePath("teams", teamID, "users", userID), nil); err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	return nil
}
