package intervals

// ConsecutiveRuns splits values into runs of consecutive integers, each
// reported as the closed interval [first, last]. Values are read in order;
// a run breaks wherever v[i+1] != v[i]+1.
func ConsecutiveRuns(values []int) []Interval[int] {
	if len(values) == 0 {
		return nil
	}
	var runs []Interval[int]
	cur := Interval[int]{Start: values[0], End: values[0]}
	for _, v := range values[1:] {
		if v == cur.End+1 {
			cur.End = v
			continue
		}
		runs = append(runs, cur)
		cur = Interval[int]{Start: v, End: v}
	}
	return append(runs, cur)
}

// Run is a maximal stretch of equal values. Span is half-open: it covers
// positions Span.Start up to but excluding Span.End.
type Run[T comparable] struct {
	Value T
	Span  Interval[int]
}

func (r Run[T]) Len() int {
	return r.Span.End - r.Span.Start
}

// IdenticalRuns splits values into maximal runs of equal adjacent values.
func IdenticalRuns[T comparable](values []T) []Run[T] {
	if len(values) == 0 {
		return nil
	}
	var runs []Run[T]
	start := 0
	for i := 1; i <= len(values); i++ {
		if i < len(values) && values[i] == values[start] {
			continue
		}
		runs = append(runs, Run[T]{Value: values[start], Span: Interval[int]{Start: start, End: i}})
		start = i
	}
	return runs
}
