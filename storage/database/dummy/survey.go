package dummydb

import (
	"context"
	"sort"

	"github.com/epic-app/epic/core/survey"
)

type surveyRepository struct {
	db *DB
}

var _ survey.Repository = (*surveyRepository)(nil) // interface compliance check

func NewSurveyRepository(db *DB) survey.Repository {
	return &surveyRepository{db: db}
}

func (repo *surveyRepository) QueryPrograms(ctx context.Context) ([]survey.ProgramDetail, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	progs := make([]survey.ProgramDetail, 0, len(repo.db.programs))
	for _, p := range repo.db.programs {
		grp := repo.db.groups[p.GroupID]
		progs = append(progs, survey.ProgramDetail{
			Program:   p,
			GroupName: grp.Name,
			AreaName:  repo.db.areas[grp.AreaID].Name,
		})
	}
	sort.Slice(progs, func(i, j int) bool {
		pi, pj := progs[i], progs[j]
		if pi.AreaName != pj.AreaName {
			return pi.AreaName < pj.AreaName
		}
		if pi.GroupName != pj.GroupName {
			return pi.GroupName < pj.GroupName
		}
		if pi.Name != pj.Name {
			return pi.Name < pj.Name
		}
		return pi.ID < pj.ID
	})
	return progs, nil
}

func (repo *surveyRepository) QueryProgramQuestions(ctx context.Context, programID int) ([]survey.Question, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var qs []survey.Question
	for _, q := range repo.db.questions {
		if q.ProgramID == programID {
			qs = append(qs, q)
		}
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })
	return qs, nil
}

func (repo *surveyRepository) QueryOrganizations(ctx context.Context, ids ...int) ([]survey.Organization, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	orgs := make([]survey.Organization, 0, len(repo.db.organizations))
	if len(ids) == 0 {
		for _, o := range repo.db.organizations {
			orgs = append(orgs, o)
		}
	} else {
		seen := make(map[int]bool, len(ids))
		for _, id := range ids {
			if o, ok := repo.db.organizations[id]; ok && !seen[id] {
				seen[id] = true
				orgs = append(orgs, o)
			}
		}
	}
	sort.Slice(orgs, func(i, j int) bool { return orgs[i].ID < orgs[j].ID })
	return orgs, nil
}

func (repo *surveyRepository) GetOrganization(ctx context.Context, id int) (survey.Organization, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if o, ok := repo.db.organizations[id]; ok {
		return o, nil
	}
	return survey.Organization{}, survey.ErrNotFound
}

func (repo *surveyRepository) QueryOrganizationUsers(ctx context.Context, organizationID int) ([]survey.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var users []survey.User
	for _, u := range repo.db.users {
		if u.OrganizationID == organizationID {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (repo *surveyRepository) QueryEvolutionAnswers(ctx context.Context, userID, programID int) ([]survey.EvolutionChoice, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var choices []survey.EvolutionChoice
	for _, a := range repo.db.evoAnswers {
		q, ok := repo.db.questions[a.QuestionID]
		if a.UserID == userID && ok && q.ProgramID == programID && q.IsEvolution() {
			choices = append(choices, a.SelectedChoice)
		}
	}
	return choices, nil
}

func (repo *surveyRepository) QueryLinkagesSelections(ctx context.Context, userIDs []int, programID int) ([]int, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	users := make(map[int]bool, len(userIDs))
	for _, id := range userIDs {
		users[id] = true
	}
	var selected []int
	for _, a := range repo.db.linkAnswers {
		q, ok := repo.db.questions[a.QuestionID]
		if users[a.UserID] && ok && q.ProgramID == programID && q.IsLinkages() {
			selected = append(selected, a.SelectedPrograms...)
		}
	}
	return selected, nil
}
