package validation_test

import (
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sosportal/portal/validation"
)

var _ = Describe("Validation", func() {
	Describe("IsValidCPF", func() {
		DescribeTable("checks the length and both check digits",
			func(cpf string, expected bool) {
				Expect(validation.IsValidCPF(cpf)).To(Equal(expected))
			},
			Entry("masked valid cpf", "529.982.247-25", true),
			Entry("unmasked valid cpf", "52998224725", true),
			Entry("valid cpf with a zero first check digit", "123.456.789-09", true),
			Entry("another valid cpf", "111.444.777-35", true),
			Entry("valid cpf surrounded by noise", " 529-982 247/25 ", true),
			Entry("wrong second check digit", "123.456.789-00", false),
			Entry("wrong first check digit", "529.982.247-35", false),
			Entry("all digits equal", "111.111.111-11", false),
			Entry("all zeros", "00000000000", false),
			Entry("too short", "5299822472", false),
			Entry("too long", "529982247250", false),
			Entry("empty", "", false),
			Entry("letters only", "abc.def.ghi-jk", false),
		)

		It("accepts every cpf completed with CompleteCPF", func() {
			for _, base := range []string{"123456789", "000000001", "987654321", "529982247"} {
				Expect(validation.IsValidCPF(validation.CompleteCPF(base))).To(BeTrue(), base)
			}
		})
	})

	Describe("CompleteCPF", func() {
		It("appends both check digits", func() {
			Expect(validation.CompleteCPF("529.982.247")).To(Equal("52998224725"))
			Expect(validation.CompleteCPF("123456789")).To(Equal("12345678909"))
		})

		It("returns an empty string for a base of the wrong size", func() {
			Expect(validation.CompleteCPF("12345678")).To(BeEmpty())
		})
	})

	Describe("IsCPFShaped", func() {
		DescribeTable("matches masked and unmasked cpfs",
			func(value string, expected bool) {
				Expect(validation.IsCPFShaped(value)).To(Equal(expected))
			},
			Entry("masked", "123.456.789-00", true),
			Entry("unmasked", "12345678900", true),
			Entry("partially masked", "123456.789-00", true),
			Entry("too short", "123.456.789-0", false),
			Entry("e-mail", "joao@exemplo.com", false),
		)
	})

	Describe("IsValidEmail", func() {
		DescribeTable("matches the permissive pattern",
			func(email string, expected bool) {
				Expect(validation.IsValidEmail(email)).To(Equal(expected))
			},
			Entry("simple", "joao.silva@exemplo.com", true),
			Entry("plus and subdomain", "a+b@b.com.br", true),
			Entry("missing at sign", "email-invalido", false),
			Entry("missing domain dot", "a@b", false),
			Entry("missing local part", "@b.com", false),
			Entry("missing domain", "a@", false),
			Entry("contains space", "a b@c.com", false),
			Entry("two at signs", "a@b@c.com", false),
			Entry("empty", "", false),
		)
	})

	Describe("IsValidDateAt", func() {
		now := time.Date(2026, time.October, 17, 15, 30, 0, 0, time.UTC)

		DescribeTable("validates calendar dates that are not in the future",
			func(date string, expected bool) {
				Expect(validation.IsValidDateAt(date, now)).To(Equal(expected))
			},
			Entry("masked date", "01/01/2000", true),
			Entry("unmasked date", "01012000", true),
			Entry("leap day", "29/02/2000", true),
			Entry("today", "17/10/2026", true),
			Entry("tomorrow", "18/10/2026", false),
			Entry("next year", "01/01/2027", false),
			Entry("february 30", "30/02/2000", false),
			Entry("february 29 of a common year", "29/02/2001", false),
			Entry("april 31", "31/04/1990", false),
			Entry("month 13", "01/13/2000", false),
			Entry("month 0", "01/00/2000", false),
			Entry("day 0", "00/01/2000", false),
			Entry("day 32", "32/01/2000", false),
			Entry("year 50", "01/01/0050", false),
			Entry("year 0", "01/01/0000", false),
			Entry("year 99", "31/12/0099", false),
			Entry("year 100", "01/01/0100", true),
			Entry("incomplete", "01/01/200", false),
			Entry("empty", "", false),
		)

		It("rejects february 30 of any year", func() {
			for year := 1900; year <= 2024; year += 4 {
				date := fmt.Sprintf("30/02/%04d", year)
				Expect(validation.IsValidDateAt(date, now)).To(BeFalse(), date)
			}
		})
	})

	Describe("IsValidDate", func() {
		It("rejects a date in the future", func() {
			future := time.Now().AddDate(0, 0, 2).Format("02012006")
			Expect(validation.IsValidDate(future)).To(BeFalse())
		})

		It("accepts a date in the past", func() {
			Expect(validation.IsValidDate("15/03/1985")).To(BeTrue())
		})
	})

	Describe("FormatCPF", func() {
		DescribeTable("masks the digits progressively",
			func(input string, expected string) {
				Expect(validation.FormatCPF(input)).To(Equal(expected))
			},
			Entry("full cpf", "12345678900", "123.456.789-00"),
			Entry("already masked", "123.456.789-00", "123.456.789-00"),
			Entry("three digits", "123", "123"),
			Entry("five digits", "12345", "123.45"),
			Entry("seven digits", "1234567", "123.456.7"),
			Entry("nine digits", "123456789", "123.456.789"),
			Entry("ten digits", "1234567890", "123.456.789-0"),
			Entry("more than eleven digits", "1234567890012", "123.456.789-00"),
			Entry("non digits", "abc", ""),
		)
	})

	Describe("FormatDate", func() {
		DescribeTable("masks the digits progressively",
			func(input string, expected string) {
				Expect(validation.FormatDate(input)).To(Equal(expected))
			},
			Entry("full date", "01012000", "01/01/2000"),
			Entry("already masked", "01/01/2000", "01/01/2000"),
			Entry("two digits", "01", "01"),
			Entry("three digits", "010", "01/0"),
			Entry("four digits", "0101", "01/01"),
			Entry("five digits", "01012", "01/01/2"),
			Entry("digits after the year are dropped", "0101200099", "01/01/2000"),
		)
	})

	Describe("DateToISO", func() {
		It("converts a masked date", func() {
			Expect(validation.DateToISO("01/01/2000")).To(Equal("2000-01-01"))
		})

		It("converts raw digits", func() {
			Expect(validation.DateToISO("25121990")).To(Equal("1990-12-25"))
		})

		It("does not panic on short input", func() {
			Expect(validation.DateToISO("2512")).To(Equal("-12-25"))
		})
	})

	Describe("ISOToDate", func() {
		It("converts an iso date back to the display form", func() {
			Expect(validation.ISOToDate("1990-12-25")).To(Equal("25/12/1990"))
		})

		It("returns an empty string for an invalid date", func() {
			Expect(validation.ISOToDate("not-a-date")).To(BeEmpty())
		})
	})
})
