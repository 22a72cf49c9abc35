package sides

import (
	"context"
	"fmt"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/cart"
)

// ValidationResult is what checkout gates on. Errors are
// customer-readable, one per violating line; never exceptions.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateCart re-checks every cart line against the CURRENT side
// policy of its originating item. Policies are re-resolved here, not
// trusted from add time, because the configuration may have changed
// since the line was added.
//
// Only explicitly configured policies can fail a line: the daily and
// general fallbacks are suggestions (min 0), and package-linked
// synthetic lines resolve to no configuration at all.
func (r *Resolver) ValidateCart(ctx context.Context, lines []cart.Line) (ValidationResult, error) {
	result := ValidationResult{Valid: true}

	for _, line := range lines {
		policy, err := r.Resolve(ctx, line.ItemID, line.DailyID)
		if err != nil {
			return ValidationResult{}, err
		}
		if policy.Source != SourceConfigured {
			continue
		}

		n := len(line.Sides)
		switch {
		case policy.Required && n < policy.MinSelect:
			result.Errors = append(result.Errors, fmt.Sprintf(
				"%s: köretválasztás szükséges (legalább %d)",
				line.Name, policy.MinSelect,
			))
		case policy.MaxSelect > 0 && n > policy.MaxSelect:
			result.Errors = append(result.Errors, fmt.Sprintf(
				"%s: túl sok köret (legfeljebb %d)",
				line.Name, policy.MaxSelect,
			))
		}
	}

	result.Valid = len(result.Errors) == 0
	return result, nil
}
