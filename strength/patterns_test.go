package strength_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/password-meter/strength"
)

var _ = Describe("DetectWeakPatterns", func() {
	var evaluator *strength.Evaluator

	BeforeEach(func() {
		evaluator = strength.NewEvaluator()
	})

	It("matches common sequences case-insensitively", func() {
		Expect(evaluator.DetectWeakPatterns("Password1!")).To(Equal([]string{
			"Contains common sequence: 'password'",
		}))
	})

	It("reports a single warning for repeated characters", func() {
		Expect(evaluator.DetectWeakPatterns("aaaa")).To(Equal([]string{
			"Contains repeated characters",
		}))
	})

	It("reports one warning even with several repeated runs", func() {
		Expect(evaluator.DetectWeakPatterns("xxxyyy")).To(Equal([]string{
			"Contains repeated characters",
		}))
	})

	It("reports qwerty as both a common sequence and a keyboard pattern", func() {
		Expect(evaluator.DetectWeakPatterns("qwerty")).To(Equal([]string{
			"Contains common sequence: 'qwerty'",
			"Contains keyboard pattern: 'qwerty'",
		}))
	})

	It("orders warnings as sequences, then keyboard patterns, then repeats", func() {
		Expect(evaluator.DetectWeakPatterns("admin1qaz2wsxddd")).To(Equal([]string{
			"Contains common sequence: 'admin'",
			"Contains keyboard pattern: '1qaz2wsx'",
			"Contains repeated characters",
		}))
	})

	It("returns no warnings for clean passwords", func() {
		Expect(evaluator.DetectWeakPatterns("Tr0ub4dor&X")).To(BeEmpty())
	})

	It("returns no warnings for the empty password", func() {
		Expect(evaluator.DetectWeakPatterns("")).To(BeEmpty())
	})
})
