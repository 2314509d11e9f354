// Package summary aggregates survey answers into per-program summaries.
package summary

import (
	"context"
	"math"

	"github.com/pkg/errors"

	"github.com/epic-app/epic/core/survey"
)

// AnswerSource is the part of survey.Repository needed to average evolution answers.
type AnswerSource interface {
	QueryOrganizationUsers(ctx context.Context, organizationID int) ([]survey.User, error)
	QueryEvolutionAnswers(ctx context.Context, userID, programID int) ([]survey.EvolutionChoice, error)
}

// NoData is reported as the average of a program nobody answered.
// It is a display value: 0 is not a possible mean of ranks 1..4.
const NoData = 0

// EvolutionAverage averages the evolution answers given to a program:
// each user averages the ranks of their answers, each organization averages its users' averages,
// and the result averages the organizations' averages.
// Users and organizations without any answer are left out instead of counting as 0.
// The result is rounded to 2 decimals (half away from zero), or NoData if nobody answered.
func EvolutionAverage(ctx context.Context, src AnswerSource, program survey.Program, orgs []survey.Organization) (float64, error) {
	orgAvgs := make([]float64, 0, len(orgs))
	for _, org := range orgs {
		avg, ok, err := organizationAverage(ctx, src, org, program)
		if err != nil {
			return 0, err
		}
		if ok {
			orgAvgs = append(orgAvgs, avg)
		}
	}
	avg, ok := mean(orgAvgs)
	if !ok {
		return NoData, nil
	}
	return Round(avg), nil
}

func organizationAverage(ctx context.Context, src AnswerSource, org survey.Organization, program survey.Program) (float64, bool, error) {
	users, err := src.QueryOrganizationUsers(ctx, org.ID)
	if err != nil {
		return 0, false, errors.Wrapf(err, "querying users of organization %d", org.ID)
	}
	usrAvgs := make([]float64, 0, len(users))
	for _, usr := range users {
		avg, ok, err := userAverage(ctx, src, usr, program)
		if err != nil {
			return 0, false, err
		}
		if ok {
			usrAvgs = append(usrAvgs, avg)
		}
	}
	avg, ok := mean(usrAvgs)
	return avg, ok, nil
}

func userAverage(ctx context.Context, src AnswerSource, usr survey.User, program survey.Program) (float64, bool, error) {
	choices, err := src.QueryEvolutionAnswers(ctx, usr.ID, program.ID)
	if err != nil {
		return 0, false, errors.Wrapf(err, "querying evolution answers of user %d", usr.ID)
	}
	ranks := make([]float64, 0, len(choices))
	for _, c := range choices {
		if rank, ok := c.Rank(); ok {
			ranks = append(ranks, float64(rank))
		}
	}
	avg, ok := mean(ranks)
	return avg, ok, nil
}

// mean is false when there is nothing to average.
func mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

// Round rounds to 2 decimals, halves away from zero.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
