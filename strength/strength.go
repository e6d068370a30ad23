package strength

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/pivotal-cf/password-meter/strength/matchers"
)

const repeatRunLength = 3

// weakPattern pairs a known breakable substring with its prepared matcher.
type weakPattern struct {
	text    string
	matcher matchers.Matcher
}

// Evaluator scores candidate passwords against a fixed rule table. All
// tables are read-only after construction, so a single Evaluator may be
// shared by concurrent callers.
type Evaluator struct {
	criteria  []Criterion
	sequences []weakPattern
	keyboard  []weakPattern
	repeats   matchers.Matcher
	levels    []level
}

// NewEvaluator returns an Evaluator using the default criterion, pattern,
// and strength tables.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		criteria:  defaultCriteria,
		sequences: newWeakPatterns(weakSequences),
		keyboard:  newWeakPatterns(keyboardWalks),
		repeats:   matchers.Repeat(repeatRunLength),
		levels:    defaultLevels,
	}
}

func newWeakPatterns(patterns []string) []weakPattern {
	ps := make([]weakPattern, len(patterns))
	for i, p := range patterns {
		ps[i] = weakPattern{text: p, matcher: matchers.Fold(p)}
	}
	return ps
}

// CheckCriteria tests the candidate against each criterion, preserving the
// definition order. The empty password fails every criterion.
func (e *Evaluator) CheckCriteria(password string) []CriterionResult {
	candidate := []byte(password)

	results := make([]CriterionResult, 0, len(e.criteria))
	for _, criterion := range e.criteria {
		passed, _, _ := criterion.Matcher.Match(candidate)
		results = append(results, CriterionResult{
			Name:        criterion.Name,
			Description: criterion.Description,
			Passed:      passed,
		})
	}

	return results
}

// CalculateEntropy estimates entropy in bits as length × log2(alphabet),
// where the alphabet sums the sizes of exactly the character classes
// present in this candidate. Characters outside every class count toward
// length without widening the alphabet.
func (e *Evaluator) CalculateEntropy(password string) float64 {
	candidate := []byte(password)

	alphabet := 0
	for _, class := range alphabetClasses {
		if present, _, _ := class.matcher.Match(candidate); present {
			alphabet += class.size
		}
	}

	if alphabet == 0 {
		return 0.0
	}

	return float64(utf8.RuneCountInString(password)) * math.Log2(float64(alphabet))
}

// DetectWeakPatterns searches the candidate for known weak sequences, then
// keyboard walks, then runs of repeated characters, returning one warning
// per match. A substring in both lists is reported twice.
func (e *Evaluator) DetectWeakPatterns(password string) []string {
	candidate := []byte(password)

	var warnings []string
	for _, p := range e.sequences {
		if found, _, _ := p.matcher.Match(candidate); found {
			warnings = append(warnings, fmt.Sprintf("Contains common sequence: '%s'", p.text))
		}
	}

	for _, p := range e.keyboard {
		if found, _, _ := p.matcher.Match(candidate); found {
			warnings = append(warnings, fmt.Sprintf("Contains keyboard pattern: '%s'", p.text))
		}
	}

	if found, _, _ := e.repeats.Match(candidate); found {
		warnings = append(warnings, "Contains repeated characters")
	}

	return warnings
}

// Classify applies the ordered strength table to an evaluated candidate.
// The first satisfied row determines the label.
func (e *Evaluator) Classify(percentage, entropyBits float64, warnings []string) Label {
	for _, lvl := range e.levels {
		if percentage < lvl.minPercent || entropyBits < lvl.minEntropy {
			continue
		}
		if lvl.noWarnings && len(warnings) > 0 {
			continue
		}
		return lvl.label
	}

	return VeryWeak
}

// Evaluate scores the candidate and classifies it. Every input, including
// the empty string, yields a Result; there is no failure mode.
func (e *Evaluator) Evaluate(password string) Result {
	criteria := e.CheckCriteria(password)
	entropy := e.CalculateEntropy(password)
	warnings := e.DetectWeakPatterns(password)

	var score, maxScore int
	for i, criterion := range e.criteria {
		maxScore += criterion.Weight
		if criteria[i].Passed {
			score += criterion.Weight
		}
	}

	percentage := float64(score) / float64(maxScore) * 100

	return Result{
		Criteria:    criteria,
		Score:       score,
		MaxScore:    maxScore,
		Percentage:  percentage,
		EntropyBits: math.Round(entropy*100) / 100,
		Warnings:    warnings,
		Label:       e.Classify(percentage, entropy, warnings),
	}
}
