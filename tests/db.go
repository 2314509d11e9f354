package testutil

import (
	"context"
	"path/filepath"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/epic-app/epic/core"
	"github.com/epic-app/epic/core/survey"
	"github.com/epic-app/epic/storage/database"
)

// PrepareDB opens a migrated sqlite database, removed at the end of the test.
func PrepareDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conf := &core.Config{Database: core.DatabaseConfig{
		Engine: database.SQLite,
		Name:   filepath.Join(t.TempDir(), "epic.db"),
	}}
	db, err := database.Open(conf)
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err = database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	return db
}

func insert(t *testing.T, db *sqlx.DB, b sq.InsertBuilder) {
	t.Helper()
	query, args, err := b.ToSql()
	if err != nil {
		t.Fatalf("insert() failed: %v", err)
	}
	if _, err = db.Exec(db.Rebind(query), args...); err != nil {
		t.Fatalf("insert() failed: %v", err)
	}
}

// SeedDB inserts the survey fixture into db.
func SeedDB(t *testing.T, db *sqlx.DB) {
	t.Helper()
	for _, a := range Areas {
		insert(t, db, sq.Insert("epic_area").Columns("id", "name").Values(a.ID, a.Name))
	}
	for _, g := range Groups {
		insert(t, db, sq.Insert("epic_group").Columns("id", "name", "area_id").Values(g.ID, g.Name, g.AreaID))
	}
	for _, p := range Programs {
		insert(t, db, sq.Insert("epic_program").
			Columns("id", "name", "description", "group_id").
			Values(p.ID, p.Name, p.Description, p.GroupID))
	}
	for _, q := range Questions {
		b := sq.Insert("epic_question").Columns("id", "program_id", "kind", "title")
		switch kind := q.Kind.(type) {
		case survey.AgreementQuestion:
			b = b.Columns("description").Values(q.ID, q.ProgramID, survey.KindAgreement, q.Title, kind.Description)
		case survey.KeyAgencyActionsQuestion:
			b = b.Columns("description").Values(q.ID, q.ProgramID, survey.KindKeyAgencyActions, q.Title, kind.Description)
		case survey.EvolutionQuestion:
			b = b.Columns("nascent_description", "engaged_description", "capable_description", "effective_description").
				Values(q.ID, q.ProgramID, survey.KindEvolution, q.Title,
					kind.NascentDescription, kind.EngagedDescription, kind.CapableDescription, kind.EffectiveDescription)
		default:
			b = b.Values(q.ID, q.ProgramID, survey.KindName(q.Kind), q.Title)
		}
		insert(t, db, b)
	}
	for _, o := range Organizations {
		insert(t, db, sq.Insert("epic_organization").Columns("id", "name").Values(o.ID, o.Name))
	}
	for _, u := range Users {
		insert(t, db, sq.Insert("epic_user").Columns("id", "username", "organization_id").Values(u.ID, u.Username, u.OrganizationID))
	}
	answerID := 0
	for _, a := range EvolutionAnswers {
		answerID++
		insert(t, db, sq.Insert("epic_answer").
			Columns("id", "user_id", "question_id", "selected_choice", "justify").
			Values(answerID, a.UserID, a.QuestionID, string(a.SelectedChoice), a.Justify))
	}
	for _, a := range LinkagesAnswers {
		answerID++
		insert(t, db, sq.Insert("epic_answer").Columns("id", "user_id", "question_id").Values(answerID, a.UserID, a.QuestionID))
		for _, progID := range a.SelectedPrograms {
			insert(t, db, sq.Insert("epic_answer_selected_program").Columns("answer_id", "program_id").Values(answerID, progID))
		}
	}
}
