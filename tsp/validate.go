// Package tsp - option validation shared by every engine.
//
// Checks are O(1), side-effect free and return sentinels from types.go.

package tsp

import "fmt"

// validateOptions checks opts against instance in.
func validateOptions(in *Instance, opts Options) error {
	if in == nil {
		return fmt.Errorf("%w: nil instance", ErrInvalidOption)
	}
	if err := validateTabuOptions(opts); err != nil {
		return err
	}

	return validateStartVertex(in.Len(), opts.StartVertex)
}

// validateTabuOptions checks the tabu-specific fields.
func validateTabuOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return fmt.Errorf("%w: negative time limit %s", ErrInvalidOption, opts.TimeLimit)
	}
	if opts.TabuTenure < 0 {
		return fmt.Errorf("%w: negative tabu tenure %d", ErrInvalidOption, opts.TabuTenure)
	}
	if opts.TabuNeighborhood < 2 {
		return fmt.Errorf("%w: tabu neighborhood %d < 2", ErrInvalidOption, opts.TabuNeighborhood)
	}

	return nil
}

// validateStartVertex requires start ∈ [0,n). An empty instance accepts 0.
func validateStartVertex(n, start int) error {
	if n == 0 && start == 0 {
		return nil
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}
