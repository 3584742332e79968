package resources

import "time"

// User is a Litmos user account.
type User struct {
	ID              string    `mapstructure:"id" json:"id" yaml:"id"`
	UserName        string    `mapstructure:"user_name" json:"user_name" yaml:"user_name"`
	FirstName       string    `mapstructure:"first_name" json:"first_name" yaml:"first_name"`
	LastName        string    `mapstructure:"last_name" json:"last_name" yaml:"last_name"`
	FullName        string    `mapstructure:"full_name" json:"full_name,omitempty" yaml:"full_name,omitempty"`
	Email           string    `mapstructure:"email" json:"email" yaml:"email"`
	AccessLevel     string    `mapstructure:"access_level" json:"access_level,omitempty" yaml:"access_level,omitempty"`
	Active          bool      `mapstructure:"active" json:"active" yaml:"active"`
	DisableMessages bool      `mapstructure:"disable_messages" json:"disable_messages" yaml:"disable_messages"`
	Brand           string    `mapstructure:"brand" json:"brand,omitempty" yaml:"brand,omitempty"`
	JobTitle        string    `mapstructure:"job_title" json:"job_title,omitempty" yaml:"job_title,omitempty"`
	CompanyName     string    `mapstructure:"company_name" json:"company_name,omitempty" yaml:"company_name,omitempty"`
	Street1         string    `mapstructure:"street1" json:"street1,omitempty" yaml:"street1,omitempty"`
	Street2         string    `mapstructure:"street2" json:"street2,omitempty" yaml:"street2,omitempty"`
	City            string    `mapstructure:"city" json:"city,omitempty" yaml:"city,omitempty"`
	Country         string    `mapstructure:"country" json:"country,omitempty" yaml:"country,omitempty"`
	TimeZone        string    `mapstructure:"time_zone" json:"time_zone,omitempty" yaml:"time_zone,omitempty"`
	LastLogin       time.Time `mapstructure:"last_login" json:"last_login,omitempty" yaml:"last_login,omitempty"`
	CreatedDate     time.Time `mapstructure:"created_date" json:"created_date,omitempty" yaml:"created_date,omitempty"`
}

// Team is a group of users.
type Team struct {
	ID                    string `mapstructure:"id" json:"id" yaml:"id"`
	Name                  string `mapstructure:"name" json:"name" yaml:"name"`
	Description           string `mapstructure:"description" json:"description,omitempty" yaml:"description,omitempty"`
	ParentTeamID          string `mapstructure:"parent_team_id" json:"parent_team_id,omitempty" yaml:"parent_team_id,omitempty"`
	TeamCodeForBulkImport string `mapstructure:"team_code_for_bulk_import" json:"team_code_for_bulk_import,omitempty" yaml:"team_code_for_bulk_import,omitempty"`
}

// Course is a course in the catalogue.
type Course struct {
	ID          string    `mapstructure:"id" json:"id" yaml:"id"`
	Code        string    `mapstructure:"code" json:"code,omitempty" yaml:"code,omitempty"`
	Name        string    `mapstructure:"name" json:"name" yaml:"name"`
	Active      bool      `mapstructure:"active" json:"active" yaml:"active"`
	ForSale     bool      `mapstructure:"for_sale" json:"for_sale" yaml:"for_sale"`
	Description string    `mapstructure:"description" json:"description,omitempty" yaml:"description,omitempty"`
	CreatedDate time.Time `mapstructure:"created_date" json:"created_date,omitempty" yaml:"created_date,omitempty"`
}

// UserCourse is a course assignment with the user's progress.
type UserCourse struct {
	ID                 string    `mapstructure:"id" json:"id" yaml:"id"`
	Name               string    `mapstructure:"name" json:"name" yaml:"name"`
	Completed          bool      `mapstructure:"complete" json:"complete" yaml:"complete"`
	PercentageComplete float64   `mapstructure:"percentage_complete" json:"percentage_complete" yaml:"percentage_complete"`
	AssignedDate       time.Time `mapstructure:"assigned_date" json:"assigned_date,omitempty" yaml:"assigned_date,omitempty"`
	DateCompleted      time.Time `mapstructure:"date_completed" json:"date_completed,omitempty" yaml:"date_completed,omitempty"`
}

// CourseUser is a user enrolled in a course.
type CourseUser struct {
	ID        string `mapstructure:"id" json:"id" yaml:"id"`
	UserName  string `mapstructure:"user_name" json:"user_name" yaml:"user_name"`
	FirstName string `mapstructure:"first_name" json:"first_name" yaml:"first_name"`
	LastName  string `mapstructure:"last_name" json:"last_name" yaml:"last_name"`
	Completed bool   `mapstructure:"completed" json:"completed" yaml:"completed"`
}
