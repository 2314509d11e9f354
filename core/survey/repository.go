package survey

import (
	"context"
	"errors"
)

var (
	// errors
	ErrNotFound = errors.New("not found")
)

// Repository gives read access to the survey data.
type Repository interface {
	// QueryPrograms returns all programs with their group and area names, ordered by area, group and program name.
	QueryPrograms(ctx context.Context) ([]ProgramDetail, error)
	QueryProgramQuestions(ctx context.Context, programID int) ([]Question, error)
	// QueryOrganizations returns the organizations matching ids, or all of them when no id is given.
	QueryOrganizations(ctx context.Context, ids ...int) ([]Organization, error)
	GetOrganization(ctx context.Context, id int) (Organization, error)
	QueryOrganizationUsers(ctx context.Context, organizationID int) ([]User, error)
	// QueryEvolutionAnswers returns the choices a user selected for the evolution questions of a program.
	QueryEvolutionAnswers(ctx context.Context, userID, programID int) ([]EvolutionChoice, error)
	// QueryLinkagesSelections returns the programs selected by any of the users in the linkages answers of a program.
	QueryLinkagesSelections(ctx context.Context, userIDs []int, programID int) ([]int, error)
}
