package shopping

// ScopeKind discriminates the shopping scope variants.
type ScopeKind string

const (
	ScopeKindDay   ScopeKind = "day"
	ScopeKindWeek  ScopeKind = "week"
	ScopeKindRange ScopeKind = "range"
)

// Scope selects which planned dishes feed into aggregation: a single day,
// a single week, or an inclusive week range.
type Scope struct {
	Kind     ScopeKind
	Week     int    // day and week scopes
	Day      string // day scope only, lowercase weekday name
	FromWeek int    // range scope
	ToWeek   int    // range scope
}

// DayScope selects one day of one week.
func DayScope(week int, day string) Scope {
	return Scope{Kind: ScopeKindDay, Week: week, Day: day}
}

// WeekScope selects every day of one week.
func WeekScope(week int) Scope {
	return Scope{Kind: ScopeKindWeek, Week: week}
}

// RangeScope selects every day of weeks from..to inclusive. An inverted
// range is normalized by swapping the bounds rather than failing.
func RangeScope(from, to int) Scope {
	if from > to {
		from, to = to, from
	}
	return Scope{Kind: ScopeKindRange, FromWeek: from, ToWeek: to}
}

// weeks returns the week indexes the scope covers.
func (s Scope) weeks() []int {
	switch s.Kind {
	case ScopeKindDay, ScopeKindWeek:
		return []int{s.Week}
	case ScopeKindRange:
		from, to := s.FromWeek, s.ToWeek
		if from > to {
			from, to = to, from
		}
		ws := make([]int, 0, to-from+1)
		for w := from; w <= to; w++ {
			ws = append(ws, w)
		}
		return ws
	default:
		return nil
	}
}

// includesDay reports whether the scope covers the given day of a week it
// already covers.
func (s Scope) includesDay(day string) bool {
	if s.Kind == ScopeKindDay {
		return s.Day == day
	}
	return true
}
