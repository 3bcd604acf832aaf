package extraction

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("NormalizeAmount", func() {
	var (
		input  string
		result decimal.Decimal
		ok     bool
	)

	JustBeforeEach(func() {
		result, ok = NormalizeAmount(input)
	})

	When("the input has thousands separators", func() {
		BeforeEach(func() {
			input = "1,234.56"
		})

		It("should parse", func() {
			Expect(ok).To(BeTrue())
		})

		It("should strip the commas", func() {
			Expect(result.StringFixed(2)).To(Equal("1234.56"))
		})
	})

	When("the input is already normalized", func() {
		BeforeEach(func() {
			input = "1234.56"
		})

		It("should return the same value", func() {
			Expect(ok).To(BeTrue())
			Expect(result.StringFixed(2)).To(Equal("1234.56"))
		})
	})

	When("the input has surrounding whitespace", func() {
		BeforeEach(func() {
			input = "  99.90  "
		})

		It("should trim and parse", func() {
			Expect(ok).To(BeTrue())
			Expect(result.StringFixed(2)).To(Equal("99.90"))
		})
	})

	When("the input is not a number", func() {
		BeforeEach(func() {
			input = "abc"
		})

		It("should report no value", func() {
			Expect(ok).To(BeFalse())
		})
	})

	When("the input is negative", func() {
		BeforeEach(func() {
			input = "-12.00"
		})

		It("should report no value", func() {
			Expect(ok).To(BeFalse())
		})
	})

	When("the input is empty", func() {
		BeforeEach(func() {
			input = ""
		})

		It("should report no value", func() {
			Expect(ok).To(BeFalse())
		})
	})
})

var _ = Describe("FormatILS", func() {
	var (
		input  decimal.Decimal
		result string
	)

	JustBeforeEach(func() {
		result = FormatILS(input)
	})

	When("the amount has a fractional part", func() {
		BeforeEach(func() {
			input = decimal.RequireFromString("1234.56")
		})

		It("should group thousands with dots and use a comma decimal separator", func() {
			Expect(result).To(Equal("₪1.234,56"))
		})
	})

	When("the amount is a round number", func() {
		BeforeEach(func() {
			input = decimal.RequireFromString("1500")
		})

		It("should pad two decimal places", func() {
			Expect(result).To(Equal("₪1.500,00"))
		})
	})

	When("the amount needs more than one group", func() {
		BeforeEach(func() {
			input = decimal.RequireFromString("1234567.8")
		})

		It("should group every three digits", func() {
			Expect(result).To(Equal("₪1.234.567,80"))
		})
	})

	When("the amount is small", func() {
		BeforeEach(func() {
			input = decimal.RequireFromString("7.5")
		})

		It("should not add grouping", func() {
			Expect(result).To(Equal("₪7,50"))
		})
	})

	When("the amount is zero", func() {
		BeforeEach(func() {
			input = decimal.Zero
		})

		It("should format as zero shekels", func() {
			Expect(result).To(Equal("₪0,00"))
		})
	})

	When("the amount is negative", func() {
		BeforeEach(func() {
			input = decimal.RequireFromString("-5")
		})

		It("should return an empty string", func() {
			Expect(result).To(BeEmpty())
		})
	})
})
