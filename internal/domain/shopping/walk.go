package shopping

import "fmt"

// VisitFunc receives every planned dish inside a scope along with its slot
// label ("w<week>:<day>:<meal>").
type VisitFunc func(week int, day, meal, slot string, dish PlannedDish)

// Walk visits every dish the scope covers in a fixed week/day/meal order.
// Aggregation does not depend on this order (folding is commutative), but a
// fixed order keeps traversal cheap to reason about.
func (p PlanSnapshot) Walk(scope Scope, visit VisitFunc) {
	for _, week := range scope.weeks() {
		dayPlan, ok := p[week]
		if !ok {
			continue
		}
		for _, day := range weekdayOrder {
			if !scope.includesDay(day) {
				continue
			}
			slots, ok := dayPlan[day]
			if !ok {
				continue
			}
			for _, meal := range mealOrder {
				for _, dish := range slots[meal] {
					visit(week, day, meal, fmt.Sprintf("w%d:%s:%s", week, day, meal), dish)
				}
			}
		}
	}
}
