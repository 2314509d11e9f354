package dummydb

import (
	"sync"

	"github.com/epic-app/epic/core/survey"
)

type (
	// DB is an in-memory survey store. Tables are filled with the Add* helpers.
	DB struct {
		sync.RWMutex
		areas         map[int]survey.Area
		groups        map[int]survey.Group
		programs      map[int]survey.Program
		questions     map[int]survey.Question
		organizations map[int]survey.Organization
		users         map[int]survey.User
		evoAnswers    []survey.EvolutionAnswer
		linkAnswers   []survey.MultipleChoiceAnswer
	}
)

func Open() (*DB, error) {
	db := &DB{
		areas:         make(map[int]survey.Area),
		groups:        make(map[int]survey.Group),
		programs:      make(map[int]survey.Program),
		questions:     make(map[int]survey.Question),
		organizations: make(map[int]survey.Organization),
		users:         make(map[int]survey.User),
	}
	return db, nil
}

func (db *DB) AddArea(a survey.Area) {
	db.Lock()
	defer db.Unlock()
	db.areas[a.ID] = a
}

func (db *DB) AddGroup(g survey.Group) {
	db.Lock()
	defer db.Unlock()
	db.groups[g.ID] = g
}

func (db *DB) AddProgram(p survey.Program) {
	db.Lock()
	defer db.Unlock()
	db.programs[p.ID] = p
}

func (db *DB) AddQuestion(q survey.Question) {
	db.Lock()
	defer db.Unlock()
	db.questions[q.ID] = q
}

func (db *DB) AddOrganization(o survey.Organization) {
	db.Lock()
	defer db.Unlock()
	db.organizations[o.ID] = o
}

func (db *DB) AddUser(u survey.User) {
	db.Lock()
	defer db.Unlock()
	db.users[u.ID] = u
}

func (db *DB) AddEvolutionAnswer(a survey.EvolutionAnswer) {
	db.Lock()
	defer db.Unlock()
	db.evoAnswers = append(db.evoAnswers, a)
}

func (db *DB) AddLinkagesAnswer(a survey.MultipleChoiceAnswer) {
	db.Lock()
	defer db.Unlock()
	db.linkAnswers = append(db.linkAnswers, a)
}
