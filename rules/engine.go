package rules

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Engine applies compiled movement rules to edge costs. Rules match in
// priority order; a Forbid match short-circuits to the infinite-cost
// sentinel. The engine is safe for concurrent use by parallel searches.
type Engine struct {
	mu    sync.RWMutex
	rules []*Rule
}

// NewEngine compiles all rule conditions into expr bytecode and sorts by
// priority. A nil or empty rule set yields an engine that never modifies
// a cost.
func NewEngine(rules []*Rule) (*Engine, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{rules: compiled}, nil
}

// Apply runs every rule against the edge and returns the adjusted cost.
// Rule condition errors are logged and skipped — a broken modifier must
// not block movement outright.
func (e *Engine) Apply(env MoveEnv, cost float64) float64 {
	if e == nil {
		return cost
	}
	e.mu.RLock()
	rules := e.rules
	e.mu.RUnlock()

	for _, r := range rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("movement rule condition error", "rule", r.Name, "error", err)
			continue
		}
		match, ok := result.(bool)
		if !ok || !match {
			continue
		}
		if r.Forbid {
			return math.Inf(1)
		}
		cost *= r.Factor
	}
	return cost
}

// Swap atomically replaces the rule set. Compiles first; if compilation
// fails the old rules remain active.
func (e *Engine) Swap(newRules []*Rule) error {
	compiled, err := compileRules(newRules)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.rules = compiled
	e.mu.Unlock()
	slog.Info("movement rule set swapped", "count", len(compiled))
	return nil
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		if !r.Forbid && r.Factor < 1 {
			return nil, fmt.Errorf("rule %q: factor %v below 1 would break heuristic admissibility", r.Name, r.Factor)
		}
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(MoveEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
