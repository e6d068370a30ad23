package strength_test

import (
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/password-meter/strength"
)

var _ = Describe("CalculateEntropy", func() {
	var evaluator *strength.Evaluator

	BeforeEach(func() {
		evaluator = strength.NewEvaluator()
	})

	It("returns zero for the empty password", func() {
		Expect(evaluator.CalculateEntropy("")).To(Equal(0.0))
	})

	It("returns zero when no recognized class is present", func() {
		Expect(evaluator.CalculateEntropy("   ")).To(Equal(0.0))
	})

	It("uses a 26 character alphabet for all-lowercase passwords", func() {
		entropy := evaluator.CalculateEntropy("abcdefgh")
		Expect(entropy).To(BeNumerically("~", 8*math.Log2(26), 1e-9))
		Expect(entropy).To(BeNumerically("~", 37.60, 0.01))
	})

	It("sums the sizes of every class present", func() {
		entropy := evaluator.CalculateEntropy("Abc123!@")
		Expect(entropy).To(BeNumerically("~", 8*math.Log2(26+26+10+32), 1e-9))
		Expect(entropy).To(BeNumerically("~", 52.44, 0.01))
	})

	It("counts a class once no matter how often it occurs", func() {
		Expect(evaluator.CalculateEntropy("aaaa")).To(BeNumerically("~", 4*math.Log2(26), 1e-9))
	})

	It("counts unrecognized characters toward length but not the alphabet", func() {
		Expect(evaluator.CalculateEntropy("ab c")).To(BeNumerically("~", 4*math.Log2(26), 1e-9))
	})

	It("counts multi-byte characters as single characters", func() {
		Expect(evaluator.CalculateEntropy("abcé")).To(BeNumerically("~", 4*math.Log2(26), 1e-9))
	})
})
