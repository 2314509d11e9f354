package survey

import "strings"

// EvolutionChoice is one of the four ordered evolution levels.
type EvolutionChoice string

const (
	Nascent   EvolutionChoice = "NASCENT"
	Engaged   EvolutionChoice = "ENGAGED"
	Capable   EvolutionChoice = "CAPABLE"
	Effective EvolutionChoice = "EFFECTIVE"
)

// EvolutionChoices lists all choices, lowest level first.
var EvolutionChoices = []EvolutionChoice{Nascent, Engaged, Capable, Effective}

// Rank maps the choice to 1..4. An empty or unknown choice has no rank.
func (c EvolutionChoice) Rank() (int, bool) {
	for i, choice := range EvolutionChoices {
		if choice == c {
			return i + 1, true
		}
	}
	return 0, false
}

// Label is the display name of the choice: "Nascent", "Engaged"...
func (c EvolutionChoice) Label() string {
	if _, ok := c.Rank(); !ok {
		return ""
	}
	s := string(c)
	return s[:1] + strings.ToLower(s[1:])
}

// EvolutionChoiceFromRank is the inverse of EvolutionChoice.Rank.
func EvolutionChoiceFromRank(rank int) (EvolutionChoice, bool) {
	if rank < 1 || rank > len(EvolutionChoices) {
		return "", false
	}
	return EvolutionChoices[rank-1], true
}
