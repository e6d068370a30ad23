package matchers_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/password-meter/strength/matchers"
)

var _ = Describe("Fold", func() {
	var matcher matchers.Matcher

	BeforeEach(func() {
		matcher = matchers.Fold("qwerty")
	})

	It("matches regardless of case", func() {
		matched, start, end := matcher.Match([]byte("xxQWErtyxx"))
		Expect(matched).To(BeTrue())
		Expect(start).To(Equal(2))
		Expect(end).To(Equal(8))
	})

	It("matches at the start of the candidate", func() {
		matched, start, end := matcher.Match([]byte("qwerty"))
		Expect(matched).To(BeTrue())
		Expect(start).To(Equal(0))
		Expect(end).To(Equal(6))
	})

	It("returns false when the substring is absent", func() {
		Expect(matcher.Match([]byte("qwert"))).To(BeFalse())
	})

	It("returns false for the empty candidate", func() {
		Expect(matcher.Match([]byte(""))).To(BeFalse())
	})
})
