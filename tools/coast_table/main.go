package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	calc "github.com/kmenon/coastfire/internal/calculation"
	"github.com/kmenon/coastfire/internal/coastage"
	"github.com/kmenon/coastfire/internal/config"
)

func main() {
	// Args: [scenario-file] [scenario-name], built-in defaults when absent
	scenario := config.DefaultScenario()
	if len(os.Args) > 1 {
		p := config.NewInputParser()
		file, err := p.LoadFromFile(os.Args[1])
		if err != nil {
			panic(err)
		}
		scenario = file.Scenarios[0]
		if len(os.Args) > 2 {
			found, err := file.ScenarioByName(os.Args[2])
			if err != nil {
				panic(err)
			}
			scenario = *found
		}
	}

	engine := calc.NewEngine()
	if scenario.WithdrawalRate > 0 {
		engine.WithdrawalRate = decimal.NewFromFloat(scenario.WithdrawalRate)
	}

	solver := coastage.NewSolver(engine, coastage.SolverOptions{CollectTrace: true})

	solve, err := solver.Solve(context.Background(), coastage.SolveRequest{
		Input:               scenario.ResolvedInput(),
		MonthlyContribution: scenario.Contribution(),
		Schedule:            scenario.Schedule(),
	})
	if err != nil {
		panic(err)
	}

	target := solve.Result.TargetNumber
	fmt.Printf("Scenario %s: deposit %s/month, target %s\n",
		scenario.Name, solve.Request.MonthlyContribution.StringFixed(0), target.StringFixed(0))

	// Header
	fmt.Println("Age,YearsContributing,ContributionRate,Accumulated,CoastRate,Projected,Reached")

	for _, candidate := range solve.Trace {
		fmt.Printf("%d,%d,%s,%s,%s,%s,%v\n",
			candidate.Age,
			candidate.YearsContributing,
			candidate.ContributionRate.StringFixed(4),
			candidate.Accumulated.StringFixed(0),
			candidate.CoastRate.StringFixed(4),
			candidate.Projected.StringFixed(0),
			candidate.Reached,
		)
	}

	if solve.Success {
		fmt.Printf("\nCoast age %d: projected %s vs target %s\n",
			solve.Result.CoastAge,
			solve.Result.ProjectedAtRetirement.StringFixed(0),
			target.StringFixed(0))
	} else {
		fmt.Println("\nNo coast point found within the horizon; deposits must continue to retirement")
	}
}
