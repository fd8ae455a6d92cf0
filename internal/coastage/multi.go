package coastage

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// SolveAcrossContributions runs the solver at several monthly deposit levels
// and compares where each one lets contributions stop.
func (s *Solver) SolveAcrossContributions(
	ctx context.Context,
	base SolveRequest,
	contributions []decimal.Decimal,
) (*MultiContributionResult, error) {

	if len(contributions) == 0 {
		return nil, &CoastAgeError{
			Operation: "solve_across_contributions",
			Message:   "at least one contribution level is required",
		}
	}

	var results []SolveResult

	for _, monthly := range contributions {
		req := base
		req.MonthlyContribution = monthly

		result, err := s.Solve(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Skip levels that fail validation but keep sweeping
			continue
		}

		results = append(results, *result)
	}

	if len(results) == 0 {
		return nil, &CoastAgeError{
			Operation: "solve_across_contributions",
			Message:   "no contribution level produced a result",
		}
	}

	multi := &MultiContributionResult{
		Results: results,
	}

	// Find the earliest coast point and the smallest deposit that still coasts
	for i := range results {
		if !results[i].Success {
			continue
		}
		if multi.EarliestCoast == nil ||
			results[i].Result.CoastAge < multi.EarliestCoast.Result.CoastAge {
			multi.EarliestCoast = &results[i]
		}
		if multi.SmallestContribution == nil ||
			results[i].Request.MonthlyContribution.LessThan(multi.SmallestContribution.Request.MonthlyContribution) {
			multi.SmallestContribution = &results[i]
		}
	}

	multi.Recommendations = s.generateContributionRecommendations(multi)

	return multi, nil
}

// generateContributionRecommendations summarizes the sweep in plain language
func (s *Solver) generateContributionRecommendations(result *MultiContributionResult) []string {
	var recommendations []string

	if result.EarliestCoast != nil {
		recommendations = append(recommendations, fmt.Sprintf(
			"Depositing %s/month lets contributions stop at age %d",
			result.EarliestCoast.Request.MonthlyContribution.StringFixed(0),
			result.EarliestCoast.Result.CoastAge))
	}

	if result.SmallestContribution != nil &&
		(result.EarliestCoast == nil ||
			!result.SmallestContribution.Request.MonthlyContribution.Equal(result.EarliestCoast.Request.MonthlyContribution)) {
		recommendations = append(recommendations, fmt.Sprintf(
			"%s/month is the smallest deposit that still reaches the target by age %d",
			result.SmallestContribution.Request.MonthlyContribution.StringFixed(0),
			result.SmallestContribution.Result.CoastAge))
	}

	if result.EarliestCoast == nil {
		recommendations = append(recommendations,
			"No level in this sweep reaches the target before retirement; try a larger deposit or a later retirement age")
	}

	return recommendations
}
