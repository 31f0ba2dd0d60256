package source

import "fmt"

// Range is a half-open byte interval [Start, End). It never implies a
// coordinate space on its own; every use site states whether the interval is
// over a plain-text buffer, a raw literal set, or a single source line.
type Range struct {
	Start int
	End   int
}

func (r Range) Empty() bool {
	return r.Start >= r.End
}

func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether other lies fully inside r.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}
