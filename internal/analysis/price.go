package analysis

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// PriceNode returns a state node that resolves a price for every classified
// module in classifier order. Pricing never fails; unknown modules and levels
// fall through to catalog defaults.
func PriceNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		cmd, err := extractCommand(s)
		if err != nil {
			return s, fmt.Errorf("price: %w", err)
		}

		classification, err := extractClassification(s)
		if err != nil {
			return s, fmt.Errorf("price: %w", err)
		}

		priced := make([]PricedModule, 0, len(classification.Modules))
		var total float64

		for _, m := range classification.Modules {
			price := rt.Catalog.Resolve(ctx, m.Name, m.Level, cmd.IsStudent)
			priced = append(priced, PricedModule{
				Name:        m.Name,
				Level:       m.Level,
				Description: m.Description,
				Price:       price,
			})
			total += price
		}

		rt.Logger.InfoContext(
			ctx, "price node complete",
			"module_count", len(priced),
			"total", total,
		)

		s = s.Set(KeyPricedModules, priced)
		s = s.Set(KeyTotal, total)
		return s, nil
	})
}
