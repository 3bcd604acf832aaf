package extraction

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PatternExtractor", func() {
	var (
		extractor *PatternExtractor
		data      []byte
		mimeType  string
		guess     *Guess
		text      string
		err       error
	)

	BeforeEach(func() {
		extractor = NewPatternExtractor()
	})

	JustBeforeEach(func() {
		guess, text, err = extractor.Extract(data, mimeType)
	})

	When("the document is an image", func() {
		BeforeEach(func() {
			data = []byte("fake image data")
			mimeType = "image/jpeg"
		})

		It("should not return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return an empty guess", func() {
			Expect(guess.Date).To(BeEmpty())
			Expect(guess.Amount.Valid).To(BeFalse())
			Expect(guess.Vendor).To(BeEmpty())
		})

		It("should return no text", func() {
			Expect(text).To(BeEmpty())
		})
	})

	When("the content type has odd casing and whitespace", func() {
		BeforeEach(func() {
			data = []byte("fake image data")
			mimeType = "  IMAGE/PNG "
		})

		It("should still bypass extraction without error", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(guess).NotTo(BeNil())
		})
	})

	When("the bytes are not a well-formed PDF", func() {
		BeforeEach(func() {
			data = []byte("definitely not a pdf")
			mimeType = "application/pdf"
		})

		It("should return an error for the caller to degrade on", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("extracting pdf text"))
		})
	})
})
