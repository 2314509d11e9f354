package summary

import (
	"context"
	"runtime"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/epic-app/epic/core"
	"github.com/epic-app/epic/core/survey"
)

type (
	// EvolutionSummary is the evolution average of a Program over a set of organizations.
	EvolutionSummary struct {
		ID      int     `json:"id"`
		Area    string  `json:"area"`
		Group   string  `json:"group"`
		Program string  `json:"program"`
		Average float64 `json:"average"`
	}

	OrganizationEvolution struct {
		ID               int                `json:"id"`
		Organization     string             `json:"organization"`
		EvolutionSummary []EvolutionSummary `json:"evolution_summary"`
	}

	// LinkagesSummary lists the programs an organization's users would like better collaboration with.
	LinkagesSummary struct {
		ID               int    `json:"id"`
		Name             string `json:"name"`
		SelectedPrograms []int  `json:"selected_programs"`
	}

	Service struct {
		repo    survey.Repository
		logger  core.Logger
		workers int
	}
)

func NewService(repo survey.Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger, workers: runtime.NumCPU()}
}

func (svc *Service) organizations(ctx context.Context, ids []int) ([]survey.Organization, error) {
	orgs, err := svc.repo.QueryOrganizations(ctx, ids...)
	if err != nil {
		return nil, errors.Wrap(err, "querying organizations")
	}
	if len(ids) > 0 && len(orgs) != len(uniqueInts(ids)) {
		return nil, errors.Wrap(survey.ErrNotFound, "organization")
	}
	return orgs, nil
}

// EvolutionSummary averages the evolution answers of every program over the given organizations (all when none given).
// Programs are computed concurrently; the result keeps the repository's program ordering.
func (svc *Service) EvolutionSummary(ctx context.Context, orgIDs ...int) ([]EvolutionSummary, error) {
	orgs, err := svc.organizations(ctx, orgIDs)
	if err != nil {
		return nil, err
	}
	return svc.evolutionSummary(ctx, orgs)
}

func (svc *Service) evolutionSummary(ctx context.Context, orgs []survey.Organization) ([]EvolutionSummary, error) {
	programs, err := svc.repo.QueryPrograms(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying programs")
	}

	summaries := make([]EvolutionSummary, len(programs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(svc.workers)
	for i, prog := range programs {
		i, prog := i, prog
		g.Go(func() error {
			avg, err := EvolutionAverage(gctx, svc.repo, prog.Program, orgs)
			if err != nil {
				return errors.Wrapf(err, "averaging program %q", prog.Name)
			}
			summaries[i] = EvolutionSummary{
				ID:      prog.ID,
				Area:    prog.AreaName,
				Group:   prog.GroupName,
				Program: prog.Name,
				Average: avg,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	svc.logger.Debug("evolution summary computed", map[string]interface{}{"programs": len(programs), "organizations": len(orgs)})
	return summaries, nil
}

func (svc *Service) OrganizationEvolution(ctx context.Context, orgID int) (OrganizationEvolution, error) {
	org, err := svc.repo.GetOrganization(ctx, orgID)
	if err != nil {
		return OrganizationEvolution{}, errors.Wrap(err, "getting organization")
	}
	summaries, err := svc.evolutionSummary(ctx, []survey.Organization{org})
	if err != nil {
		return OrganizationEvolution{}, err
	}
	return OrganizationEvolution{ID: org.ID, Organization: org.Name, EvolutionSummary: summaries}, nil
}

// LinkagesSummary collects, for every program, the distinct programs selected in the linkages answers
// of the given organizations' users (all organizations when none given).
func (svc *Service) LinkagesSummary(ctx context.Context, orgIDs ...int) ([]LinkagesSummary, error) {
	orgs, err := svc.organizations(ctx, orgIDs)
	if err != nil {
		return nil, err
	}
	var userIDs []int
	for _, org := range orgs {
		users, err := svc.repo.QueryOrganizationUsers(ctx, org.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "querying users of organization %d", org.ID)
		}
		for _, usr := range users {
			userIDs = append(userIDs, usr.ID)
		}
	}

	programs, err := svc.repo.QueryPrograms(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying programs")
	}
	summaries := make([]LinkagesSummary, 0, len(programs))
	for _, prog := range programs {
		selected := []int{}
		if len(userIDs) > 0 {
			ids, err := svc.repo.QueryLinkagesSelections(ctx, userIDs, prog.ID)
			if err != nil {
				return nil, errors.Wrapf(err, "querying linkages of program %q", prog.Name)
			}
			selected = uniqueInts(ids)
		}
		summaries = append(summaries, LinkagesSummary{ID: prog.ID, Name: prog.Name, SelectedPrograms: selected})
	}
	return summaries, nil
}

// uniqueInts returns the sorted distinct values of ids.
func uniqueInts(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}
