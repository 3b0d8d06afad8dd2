package layout

import (
	"math"
	"slices"
	"sort"
)

// item is the allocator's working state for one segment or spacer. It is
// stack-owned by a single split call and discarded afterwards.
type item struct {
	min, preferred, max int // targets resolved against the axis length
	weight              int
	priority            int
	overfill            bool
	fixed               bool // preassigned gap, excluded from growth phases
	bias                int  // remainder tie-break within a priority group
	order               int  // declaration index
	size                int  // signed allocated length
}

type allocOptions struct {
	// legacySlack skips the max phase and routes all leftover to the
	// overfill-flagged slack owner, reproducing the historical
	// single-owner-of-slack behavior.
	legacySlack bool
}

// allocate grows the items from zero until their lengths account for the
// whole axis length. Fixed gaps are preassigned and never shrunk; everything
// else passes through four monotone growth phases: min, preferred, max, and
// overfill. The allocator is total: it never fails, and starvation or forced
// overgrowth are legal outcomes.
func allocate(items []*item, length int, opts allocOptions) {
	budget := length
	for _, it := range items {
		if it.fixed {
			it.size = it.preferred
			budget = satAdd(budget, -it.size)
		}
	}
	if budget < 0 {
		budget = 0
	}

	budget = growPhase(items, budget, func(it *item) int { return it.min }, true, false)
	budget = growPhase(items, budget, func(it *item) int { return it.preferred }, true, false)
	if !opts.legacySlack {
		budget = growPhase(items, budget, func(it *item) int { return it.max }, false, true)
	}
	if budget > 0 {
		overfillPhase(items, budget)
	}
}

// growPhase visits priority groups in order (ascending or descending by
// priority value) and grants each eligible item growth up to the phase
// target or the remaining budget, whichever runs out first. A group that
// cannot be fully funded splits the rest proportionally to growth weight.
// Returns the unspent budget.
func growPhase(items []*item, budget int, target func(*item) int, ascending, gateWeight bool) int {
	if budget <= 0 {
		return budget
	}

	for _, group := range priorityGroups(items, ascending) {
		var active []*item
		need := 0
		saturated := false
		for _, it := range group {
			if it.fixed || (gateWeight && it.weight == 0) {
				continue
			}
			if d := target(it) - it.size; d > 0 {
				active = append(active, it)
				if need > math.MaxInt-d {
					saturated = true
				}
				need = satAdd(need, d)
			}
		}
		if len(active) == 0 {
			continue
		}
		// A need past the int range always exceeds the budget.
		if !saturated && budget >= need {
			for _, it := range active {
				it.size = target(it)
			}
			budget -= need
			continue
		}
		distribute(active, budget, target)
		return 0
	}
	return budget
}

// overfillPhase hands the entire remaining budget to the highest-priority
// group of overfill-eligible items so the total equals the axis length
// exactly. When no item is flagged for overfill, every non-gap item becomes
// eligible.
func overfillPhase(items []*item, budget int) {
	var eligible []*item
	for _, it := range items {
		if !it.fixed && it.overfill {
			eligible = append(eligible, it)
		}
	}
	if len(eligible) == 0 {
		for _, it := range items {
			if !it.fixed {
				eligible = append(eligible, it)
			}
		}
	}
	if len(eligible) == 0 {
		return
	}

	top := eligible[0].priority
	for _, it := range eligible[1:] {
		if it.priority > top {
			top = it.priority
		}
	}
	var group []*item
	for _, it := range eligible {
		if it.priority == top {
			group = append(group, it)
		}
	}
	distribute(group, budget, nil)
}

// priorityGroups partitions the items into slices sharing a priority value,
// ordered ascending or descending by that value. Declaration order is
// preserved within a group.
func priorityGroups(items []*item, ascending bool) [][]*item {
	byPriority := make(map[int][]*item)
	var priorities []int
	for _, it := range items {
		if _, ok := byPriority[it.priority]; !ok {
			priorities = append(priorities, it.priority)
		}
		byPriority[it.priority] = append(byPriority[it.priority], it)
	}

	sort.Ints(priorities)
	if !ascending {
		slices.Reverse(priorities)
	}

	groups := make([][]*item, 0, len(priorities))
	for _, p := range priorities {
		groups = append(groups, byPriority[p])
	}
	return groups
}

// distribute splits budget across the active items proportionally to their
// growth weights, capped at each item's remaining deficit when target is
// non-nil. A nil target means unbounded growth (the overfill phase). Integer
// remainders go one cell at a time to the earliest item in bias-then-
// declaration order. A group whose weights are all zero splits equally.
func distribute(active []*item, budget int, target func(*item) int) {
	// weightSum carries the true total when the int accumulator saturates,
	// so giant weights still divide by their actual proportions.
	totalWeight := 0
	weightSum := 0.0
	for _, it := range active {
		w := max(0, it.weight)
		totalWeight = satAdd(totalWeight, w)
		weightSum += float64(w)
	}
	weightOf := func(it *item) int { return max(0, it.weight) }
	if totalWeight == 0 {
		totalWeight = len(active)
		weightSum = float64(len(active))
		weightOf = func(*item) int { return 1 }
	}

	deficit := func(it *item) int {
		if target == nil {
			return budget
		}
		return target(it) - it.size
	}

	// Proportional floor pass. Cumulative grants never exceed the budget.
	granted := 0
	for _, it := range active {
		g := proportion(budget, weightOf(it), totalWeight, weightSum)
		if d := deficit(it); g > d {
			g = d
		}
		if g > budget-granted {
			g = budget - granted
		}
		if g > 0 {
			it.size += g
			granted += g
		}
	}
	budget -= granted

	// Hand out the remainder one cell at a time, earliest first.
	ordered := slices.Clone(active)
	slices.SortStableFunc(ordered, func(a, b *item) int {
		if a.bias != b.bias {
			return a.bias - b.bias
		}
		return a.order - b.order
	})
	for budget > 0 {
		progressed := false
		for _, it := range ordered {
			if budget == 0 {
				break
			}
			if deficit(it) > 0 {
				it.size++
				budget--
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
}

// proportion computes budget*weight/total without wrapping. totalF is the
// unsaturated weight total; the float path is taken when the 64-bit product
// would overflow or when total saturated below the true sum.
func proportion(budget, weight, total int, totalF float64) int {
	if weight <= 0 || total <= 0 || budget <= 0 {
		return 0
	}
	b, w := int64(budget), int64(weight)
	p := b * w
	if p/b != w || float64(total) != totalF {
		return int(float64(budget) * (float64(weight) / totalF))
	}
	return int(p / int64(total))
}
