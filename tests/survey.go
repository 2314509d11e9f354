package testutil

import (
	"testing"

	"github.com/epic-app/epic/core/survey"
	"github.com/epic-app/epic/storage/database/dummy"
)

// Survey fixture:
//
//	Governance / G1 / Program 1 (1): 2 evolution questions, 1 linkages question
//	Governance / G1 / Program 3 (3): no question
//	Health     / G2 / Program 2 (2): 1 evolution question, 1 linkages question, 1 agreement question
//
// Org A (1) has users 1 and 2, Org B (2) has user 3, Org C (3) has user 4 who answered nothing.
// Evolution averages: Program 1 = mean(mean(2.5, 4), 1) = 2.125, Program 2 = 3, Program 3 = no data.
var (
	Areas = []survey.Area{
		{ID: 1, Name: "Governance"},
		{ID: 2, Name: "Health"},
	}
	Groups = []survey.Group{
		{ID: 1, Name: "G1", AreaID: 1},
		{ID: 2, Name: "G2", AreaID: 2},
	}
	Programs = []survey.Program{
		{ID: 1, Name: "Program 1", GroupID: 1},
		{ID: 2, Name: "Program 2", GroupID: 2},
		{ID: 3, Name: "Program 3", GroupID: 1},
	}
	Questions = []survey.Question{
		{ID: 1, ProgramID: 1, Title: "Q1", Kind: survey.EvolutionQuestion{NascentDescription: "n", EngagedDescription: "e"}},
		{ID: 2, ProgramID: 1, Title: "Q2", Kind: survey.EvolutionQuestion{}},
		{ID: 3, ProgramID: 2, Title: "Q3", Kind: survey.EvolutionQuestion{}},
		{ID: 4, ProgramID: 1, Title: survey.LinkagesTitle, Kind: survey.LinkagesQuestion{}},
		{ID: 5, ProgramID: 2, Title: survey.LinkagesTitle, Kind: survey.LinkagesQuestion{}},
		{ID: 6, ProgramID: 2, Title: "Q6", Kind: survey.AgreementQuestion{Description: "national framework"}},
	}
	Organizations = []survey.Organization{
		{ID: 1, Name: "Org A"},
		{ID: 2, Name: "Org B"},
		{ID: 3, Name: "Org C"},
	}
	Users = []survey.User{
		{ID: 1, Username: "u1", OrganizationID: 1},
		{ID: 2, Username: "u2", OrganizationID: 1},
		{ID: 3, Username: "u3", OrganizationID: 2},
		{ID: 4, Username: "u4", OrganizationID: 3},
	}
	EvolutionAnswers = []survey.EvolutionAnswer{
		{UserID: 1, QuestionID: 1, SelectedChoice: survey.Engaged},
		{UserID: 1, QuestionID: 2, SelectedChoice: survey.Capable},
		{UserID: 2, QuestionID: 1, SelectedChoice: survey.Effective},
		{UserID: 3, QuestionID: 1, SelectedChoice: survey.Nascent},
		{UserID: 3, QuestionID: 3, SelectedChoice: survey.Capable},
	}
	LinkagesAnswers = []survey.MultipleChoiceAnswer{
		{UserID: 1, QuestionID: 4, SelectedPrograms: []int{3, 2}},
		{UserID: 3, QuestionID: 4, SelectedPrograms: []int{3}},
		{UserID: 2, QuestionID: 5, SelectedPrograms: []int{1}},
	}
)

// SeedSurvey fills db with the survey fixture.
func SeedSurvey(t *testing.T, db *dummydb.DB) {
	t.Helper()
	for _, a := range Areas {
		db.AddArea(a)
	}
	for _, g := range Groups {
		db.AddGroup(g)
	}
	for _, p := range Programs {
		db.AddProgram(p)
	}
	for _, q := range Questions {
		db.AddQuestion(q)
	}
	for _, o := range Organizations {
		db.AddOrganization(o)
	}
	for _, u := range Users {
		db.AddUser(u)
	}
	for _, a := range EvolutionAnswers {
		db.AddEvolutionAnswer(a)
	}
	for _, a := range LinkagesAnswers {
		db.AddLinkagesAnswer(a)
	}
}

// NewSurveyRepository returns a dummy repository filled with the survey fixture.
func NewSurveyRepository(t *testing.T) survey.Repository {
	t.Helper()
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	SeedSurvey(t, db)
	return dummydb.NewSurveyRepository(db)
}
