package rules

import "github.com/expr-lang/expr/vm"

// Rule is a movement-cost modifier: when its condition matches an edge,
// the edge cost is scaled by Factor, or the edge is forbidden outright.
// Factors below 1 are rejected at compile time — discounts would break the
// admissibility of the search heuristics.
type Rule struct {
	Name         string  // human-readable identifier
	Priority     int     // higher = applied first
	ConditionSrc string  // expr source (preserved for serialization)
	Factor       float64 // cost multiplier, >= 1; ignored when Forbid is set
	Forbid       bool    // if true, a match makes the edge impassable

	program *vm.Program // compiled bytecode
}
