package strength

import "github.com/pivotal-cf/password-meter/strength/matchers"

const specialChars = `!@#$%^&*(),.?":{}|<>`

// Criterion is one named check contributing weighted points to the score.
type Criterion struct {
	Name        string
	Description string
	Weight      int
	Matcher     matchers.Matcher
}

var defaultCriteria = []Criterion{
	{Name: "length", Description: "At least 8 characters", Weight: 2, Matcher: matchers.MinLength(8)},
	{Name: "uppercase", Description: "Contains uppercase letters", Weight: 2, Matcher: matchers.Range('A', 'Z')},
	{Name: "lowercase", Description: "Contains lowercase letters", Weight: 2, Matcher: matchers.Range('a', 'z')},
	{Name: "digits", Description: "Contains numbers", Weight: 2, Matcher: matchers.Range('0', '9')},
	{Name: "special", Description: "Contains special characters", Weight: 2, Matcher: matchers.Any(specialChars)},
}

var weakSequences = []string{"123456", "abcdef", "qwerty", "password", "admin", "letmein"}

var keyboardWalks = []string{"qwerty", "asdfgh", "zxcvbn", "1qaz2wsx"}

// alphabetClass maps a character class to the keyspace it contributes when
// at least one of its characters is present in the candidate.
type alphabetClass struct {
	size    int
	matcher matchers.Matcher
}

var alphabetClasses = []alphabetClass{
	{size: 26, matcher: matchers.Range('a', 'z')},
	{size: 26, matcher: matchers.Range('A', 'Z')},
	{size: 10, matcher: matchers.Range('0', '9')},
	{size: 32, matcher: matchers.Any(specialChars)},
}

// level is one row of the strength table. Rows are tried in order and the
// first satisfied row wins.
type level struct {
	minPercent float64
	minEntropy float64
	noWarnings bool
	label      Label
}

var defaultLevels = []level{
	{minPercent: 80, minEntropy: 50, noWarnings: true, label: VeryStrong},
	{minPercent: 60, minEntropy: 35, label: Strong},
	{minPercent: 40, minEntropy: 25, label: Medium},
	{minPercent: 20, label: Weak},
}
