package strength

// Label is one of the five strength categories.
type Label int

const (
	VeryWeak Label = iota
	Weak
	Medium
	Strong
	VeryStrong
)

func (l Label) String() string {
	switch l {
	case VeryStrong:
		return "Very Strong"
	case Strong:
		return "Strong"
	case Medium:
		return "Medium"
	case Weak:
		return "Weak"
	default:
		return "Very Weak"
	}
}

// CriterionResult is the pass/fail outcome of a single criterion.
type CriterionResult struct {
	Name        string
	Description string
	Passed      bool
}

// Result is the outcome of evaluating one candidate password. It is built
// fresh per evaluation and never mutated afterwards.
type Result struct {
	Criteria    []CriterionResult
	Score       int
	MaxScore    int
	Percentage  float64
	EntropyBits float64 // rounded to two decimals for reporting
	Warnings    []string
	Label       Label
}
