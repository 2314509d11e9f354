package sqlxrepos

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/epic-app/epic/core/survey"
)

type surveyRepository struct {
	db *sqlx.DB
}

var _ survey.Repository = (*surveyRepository)(nil) // interface compliance check

func NewSurveyRepository(db *sqlx.DB) survey.Repository {
	return &surveyRepository{db: db}
}

// selectContext builds the query with ? placeholders, and rebinds them for the driver.
func (repo *surveyRepository) selectContext(ctx context.Context, dest interface{}, b sq.SelectBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, "building query")
	}
	return repo.db.SelectContext(ctx, dest, repo.db.Rebind(query), args...)
}

func (repo *surveyRepository) getContext(ctx context.Context, dest interface{}, b sq.SelectBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, "building query")
	}
	err = repo.db.GetContext(ctx, dest, repo.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return survey.ErrNotFound
	}
	return err
}

func (repo *surveyRepository) QueryPrograms(ctx context.Context) ([]survey.ProgramDetail, error) {
	var progs []survey.ProgramDetail
	err := repo.selectContext(ctx, &progs,
		sq.Select("p.id", "p.name", "p.description", "p.group_id", "g.name AS group_name", "a.name AS area_name").
			From("epic_program p").
			Join("epic_group g ON g.id = p.group_id").
			Join("epic_area a ON a.id = g.area_id").
			OrderBy("a.name", "g.name", "p.name", "p.id"),
	)
	return progs, errors.Wrap(err, "selecting programs")
}

type questionRow struct {
	ID                   int    `db:"id"`
	ProgramID            int    `db:"program_id"`
	Kind                 string `db:"kind"`
	Title                string `db:"title"`
	Description          string `db:"description"`
	NascentDescription   string `db:"nascent_description"`
	EngagedDescription   string `db:"engaged_description"`
	CapableDescription   string `db:"capable_description"`
	EffectiveDescription string `db:"effective_description"`
}

func (row questionRow) question() (survey.Question, error) {
	q := survey.Question{ID: row.ID, ProgramID: row.ProgramID, Title: row.Title}
	switch row.Kind {
	case survey.KindAgreement:
		q.Kind = survey.AgreementQuestion{Description: row.Description}
	case survey.KindKeyAgencyActions:
		q.Kind = survey.KeyAgencyActionsQuestion{Description: row.Description}
	case survey.KindEvolution:
		q.Kind = survey.EvolutionQuestion{
			NascentDescription:   row.NascentDescription,
			EngagedDescription:   row.EngagedDescription,
			CapableDescription:   row.CapableDescription,
			EffectiveDescription: row.EffectiveDescription,
		}
	case survey.KindLinkages:
		q.Kind = survey.LinkagesQuestion{}
	default:
		return q, errors.Errorf("question %d: unknown kind %q", row.ID, row.Kind)
	}
	return q, nil
}

func (repo *surveyRepository) QueryProgramQuestions(ctx context.Context, programID int) ([]survey.Question, error) {
	var rows []questionRow
	err := repo.selectContext(ctx, &rows,
		sq.Select("id", "program_id", "kind", "title", "description",
			"nascent_description", "engaged_description", "capable_description", "effective_description").
			From("epic_question").
			Where(sq.Eq{"program_id": programID}).
			OrderBy("id"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "selecting questions")
	}
	qs := make([]survey.Question, 0, len(rows))
	for _, row := range rows {
		q, err := row.question()
		if err != nil {
			return nil, err
		}
		qs = append(qs, q)
	}
	return qs, nil
}

func (repo *surveyRepository) QueryOrganizations(ctx context.Context, ids ...int) ([]survey.Organization, error) {
	b := sq.Select("id", "name").From("epic_organization").OrderBy("id")
	if len(ids) > 0 {
		b = b.Where(sq.Eq{"id": ids})
	}
	var orgs []survey.Organization
	err := repo.selectContext(ctx, &orgs, b)
	return orgs, errors.Wrap(err, "selecting organizations")
}

func (repo *surveyRepository) GetOrganization(ctx context.Context, id int) (survey.Organization, error) {
	var org survey.Organization
	err := repo.getContext(ctx, &org, sq.Select("id", "name").From("epic_organization").Where(sq.Eq{"id": id}))
	if err == survey.ErrNotFound {
		return org, err
	}
	return org, errors.Wrap(err, "getting organization")
}

func (repo *surveyRepository) QueryOrganizationUsers(ctx context.Context, organizationID int) ([]survey.User, error) {
	var users []survey.User
	err := repo.selectContext(ctx, &users,
		sq.Select("id", "username", "organization_id").
			From("epic_user").
			Where(sq.Eq{"organization_id": organizationID}).
			OrderBy("id"),
	)
	return users, errors.Wrap(err, "selecting users")
}

func (repo *surveyRepository) QueryEvolutionAnswers(ctx context.Context, userID, programID int) ([]survey.EvolutionChoice, error) {
	var choices []survey.EvolutionChoice
	err := repo.selectContext(ctx, &choices,
		sq.Select("a.selected_choice").
			From("epic_answer a").
			Join("epic_question q ON q.id = a.question_id").
			Where(sq.Eq{"a.user_id": userID, "q.program_id": programID, "q.kind": survey.KindEvolution}).
			OrderBy("a.id"),
	)
	return choices, errors.Wrap(err, "selecting evolution answers")
}

func (repo *surveyRepository) QueryLinkagesSelections(ctx context.Context, userIDs []int, programID int) ([]int, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var ids []int
	err := repo.selectContext(ctx, &ids,
		sq.Select("s.program_id").
			From("epic_answer_selected_program s").
			Join("epic_answer a ON a.id = s.answer_id").
			Join("epic_question q ON q.id = a.question_id").
			Where(sq.Eq{"a.user_id": userIDs, "q.program_id": programID, "q.kind": survey.KindLinkages}),
	)
	return ids, errors.Wrap(err, "selecting linkages")
}
