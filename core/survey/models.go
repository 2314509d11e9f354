package survey

import "encoding/json"

type Area struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Group struct {
	ID     int    `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	AreaID int    `json:"area" db:"area_id"`
}

type Agency struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Program struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	GroupID     int    `json:"group" db:"group_id"`
}

// ProgramDetail is a Program along with the names of the Group and Area it belongs to.
type ProgramDetail struct {
	Program
	GroupName string `json:"group_name" db:"group_name"`
	AreaName  string `json:"area_name" db:"area_name"`
}

type Organization struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type User struct {
	ID             int    `json:"id" db:"id"`
	Username       string `json:"username" db:"username"`
	OrganizationID int    `json:"organization" db:"organization_id"`
}

// Question is asked once per Program. What it asks (and how it is answered) depends on its Kind.
type Question struct {
	ID        int          `json:"id"`
	ProgramID int          `json:"program"`
	Title     string       `json:"title"`
	Kind      QuestionKind `json:"kind"`
}

func (q Question) IsEvolution() bool {
	_, ok := q.Kind.(EvolutionQuestion)
	return ok
}

func (q Question) IsLinkages() bool {
	_, ok := q.Kind.(LinkagesQuestion)
	return ok
}

// QuestionKind is one of AgreementQuestion, KeyAgencyActionsQuestion, EvolutionQuestion or LinkagesQuestion.
type QuestionKind interface {
	questionKind()
}

// AgreementQuestion is answered with yes/no and a justification (national framework).
type AgreementQuestion struct {
	Description string `json:"description"`
}

// KeyAgencyActionsQuestion is answered with yes/no and a justification.
type KeyAgencyActionsQuestion struct {
	Description string `json:"description"`
}

// EvolutionQuestion is answered by picking one of the four EvolutionChoice levels.
type EvolutionQuestion struct {
	NascentDescription   string `json:"nascent_description"`
	EngagedDescription   string `json:"engaged_description"`
	CapableDescription   string `json:"capable_description"`
	EffectiveDescription string `json:"effective_description"`
}

// LinkagesQuestion is answered by selecting up to MaxLinkages other programs.
type LinkagesQuestion struct{}

func (AgreementQuestion) questionKind()        {}
func (KeyAgencyActionsQuestion) questionKind() {}
func (EvolutionQuestion) questionKind()        {}
func (LinkagesQuestion) questionKind()         {}

// Question kind names, as stored.
const (
	KindAgreement        = "nfq"
	KindKeyAgencyActions = "kaa"
	KindEvolution        = "evo"
	KindLinkages         = "lnk"
)

// MaxLinkages is the max number of programs a LinkagesQuestion answer can select.
const MaxLinkages = 3

// LinkagesTitle is the title every generated LinkagesQuestion gets.
const LinkagesTitle = "Please select three programs that will help you deliver better results in your program if you could have better collaboration? "

func KindName(kind QuestionKind) string {
	switch kind.(type) {
	case AgreementQuestion:
		return KindAgreement
	case KeyAgencyActionsQuestion:
		return KindKeyAgencyActions
	case EvolutionQuestion:
		return KindEvolution
	case LinkagesQuestion:
		return KindLinkages
	default:
		return ""
	}
}

// Answers

type YesNoAnswerType string

const (
	Yes YesNoAnswerType = "Y"
	No  YesNoAnswerType = "N"
)

// YesNoAnswer answers an AgreementQuestion or a KeyAgencyActionsQuestion.
type YesNoAnswer struct {
	UserID      int             `json:"user" db:"user_id"`
	QuestionID  int             `json:"question" db:"question_id"`
	ShortAnswer YesNoAnswerType `json:"short_answer" db:"short_answer"`
	Justify     string          `json:"justify" db:"justify"`
}

// EvolutionAnswer answers an EvolutionQuestion.
type EvolutionAnswer struct {
	UserID         int             `json:"user" db:"user_id"`
	QuestionID     int             `json:"question" db:"question_id"`
	SelectedChoice EvolutionChoice `json:"selected_choice" db:"selected_choice"`
	Justify        string          `json:"justify" db:"justify"`
}

// MultipleChoiceAnswer answers a LinkagesQuestion.
type MultipleChoiceAnswer struct {
	UserID           int   `json:"user"`
	QuestionID       int   `json:"question"`
	SelectedPrograms []int `json:"selected_programs"`
}

func (q Question) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        int          `json:"id"`
		ProgramID int          `json:"program"`
		Title     string       `json:"title"`
		Kind      string       `json:"kind"`
		Details   QuestionKind `json:"details"`
	}{q.ID, q.ProgramID, q.Title, KindName(q.Kind), q.Kind})
}
