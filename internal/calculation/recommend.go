package calculation

import (
	"fmt"

	"github.com/windplan/windfarm-planner/internal/domain"
)

// NoViablePlanJustification is reported when every scenario has an unbounded
// payback. Kept ASCII-only so it can be embedded verbatim in any report.
const NoViablePlanJustification = "No scenario recovers its installation cost; every plan has maintenance costs at or above its income."

// SelectRecommendation chooses the scenario with the strictly shortest finite
// payback period. Ties on the exact minimum go to the scenario appearing
// earliest in the input ordering. When no scenario has a finite payback the
// result carries HasWinner=false and the caller must render a warning rather
// than a recommendation.
//
// The function does not mutate any scenario; the winner index refers into the
// slice passed in.
func SelectRecommendation(scenarios []domain.ComputedScenario) domain.Recommendation {
	winner := -1
	for i, sc := range scenarios {
		if !sc.Payback.IsFinite() {
			continue
		}
		if winner == -1 || sc.Payback.ShorterThan(scenarios[winner].Payback) {
			winner = i
		}
	}

	if winner == -1 {
		return domain.Recommendation{
			HasWinner:     false,
			WinnerIndex:   -1,
			Justification: NoViablePlanJustification,
		}
	}

	w := scenarios[winner]
	return domain.Recommendation{
		HasWinner:   true,
		WinnerIndex: winner,
		WinnerName:  w.Name,
		Justification: fmt.Sprintf("%s recovers its installation cost fastest, with a payback period of %s years.",
			w.Name, w.Payback.Years.StringFixed(2)),
	}
}
