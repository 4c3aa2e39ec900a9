package errors_test

import (
	"errors"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errs "github.com/sosportal/portal/errors"
)

var _ = Describe("HttpError", func() {
	failure := errors.New("Erro ao carregar pacientes")

	It("ignores successful responses", func() {
		Expect(errs.FromResponse(&http.Response{StatusCode: http.StatusCreated}, failure)).To(Succeed())
	})

	It("carries the status code of failed responses", func() {
		err := errs.FromResponse(&http.Response{StatusCode: http.StatusServiceUnavailable}, failure)
		Expect(err).To(MatchError(failure))
		Expect(err.Error()).To(Equal("Erro ao carregar pacientes"))
		Expect(errs.StatusCode(err)).To(Equal(http.StatusServiceUnavailable))
	})

	It("keeps the message of transport failures", func() {
		cause := errors.New("connection refused")
		err := errs.Transport(cause, failure)
		Expect(err.Error()).To(Equal("Erro ao carregar pacientes"))
		Expect(err).To(MatchError(failure))
		Expect(err).To(MatchError(cause))
		Expect(errs.StatusCode(err)).To(BeZero())
	})

	It("returns zero for other errors", func() {
		Expect(errs.StatusCode(failure)).To(BeZero())
	})

	DescribeTable("IsSuccess",
		func(code int, expected bool) {
			Expect(errs.IsSuccess(code)).To(Equal(expected))
		},
		Entry("200", http.StatusOK, true),
		Entry("204", http.StatusNoContent, true),
		Entry("301", http.StatusMovedPermanently, false),
		Entry("404", http.StatusNotFound, false),
		Entry("500", http.StatusInternalServerError, false),
	)
})
