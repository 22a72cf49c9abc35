package sides

import (
	"errors"
	"fmt"
)

var ErrTooFewSides = errors.New("not enough sides selected")

// Selection tracks which candidates the customer has picked for one
// policy, oldest pick first.
type Selection struct {
	policy Policy
	chosen []Option
}

// NewSelection starts a selection with the policy's defaults
// pre-selected.
func NewSelection(policy Policy) *Selection {
	s := &Selection{policy: policy}
	for _, id := range policy.Defaults {
		for _, cand := range policy.Candidates {
			if cand.ID == id {
				s.chosen = append(s.chosen, cand)
			}
		}
	}
	return s
}

// Pick applies one tap on a candidate.
//
// With maxSelect == 1 the pick replaces the prior choice (radio
// semantics). Otherwise a pick toggles membership, and picking a new
// item while already at maxSelect evicts the OLDEST pick instead of
// rejecting, so the customer can always move forward without an
// explicit deselect step.
func (s *Selection) Pick(opt Option) {
	if s.policy.MaxSelect == 1 {
		s.chosen = []Option{opt}
		return
	}

	for i, c := range s.chosen {
		if c.ID == opt.ID {
			s.chosen = append(s.chosen[:i], s.chosen[i+1:]...)
			return
		}
	}

	if s.policy.MaxSelect > 0 && len(s.chosen) >= s.policy.MaxSelect {
		s.chosen = s.chosen[1:]
	}
	s.chosen = append(s.chosen, opt)
}

// Chosen returns the picks in selection order.
func (s *Selection) Chosen() []Option {
	out := make([]Option, len(s.chosen))
	copy(out, s.chosen)
	return out
}

// Confirm closes the side step, rejecting selections below the
// required minimum.
func (s *Selection) Confirm() error {
	if len(s.chosen) < s.policy.MinSelect {
		return fmt.Errorf("%w: válassz még köretet (legalább %d szükséges)",
			ErrTooFewSides, s.policy.MinSelect)
	}
	return nil
}
