package main

import (
	"fmt"
	"os"

	calc "github.com/windplan/windfarm-planner/internal/calculation"
	"github.com/windplan/windfarm-planner/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_payback <plan-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	plan, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	computed, err := calc.EvaluateAll(plan.Scenarios)
	if err != nil {
		panic(err)
	}

	fmt.Println("Index,Name,Install,Income,Maintenance,Net,Payback")
	for i, sc := range computed {
		fmt.Printf("%d,%s,%s,%s,%s,%s,%s\n",
			i+1, sc.Name,
			sc.InstallCost.StringFixed(2),
			sc.TotalIncome.StringFixed(2),
			sc.TotalMaintenance.StringFixed(2),
			sc.NetAnnualSavings.StringFixed(2),
			sc.Payback,
		)
	}

	rec := calc.SelectRecommendation(computed)
	if rec.HasWinner {
		fmt.Println("winner:", rec.WinnerName)
	} else {
		fmt.Println("no viable plan")
	}
}
