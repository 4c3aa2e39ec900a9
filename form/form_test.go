package form_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sosportal/portal/form"
)

var _ = Describe("Form validation", func() {
	DescribeTable("ValidateField",
		func(field form.Field, value string, expected string) {
			Expect(form.ValidateField(field, value)).To(Equal(expected))
		},
		Entry("empty full name", form.FieldFullName, "", form.MessageFullNameRequired),
		Entry("blank full name", form.FieldFullName, "   ", form.MessageFullNameRequired),
		Entry("single word full name", form.FieldFullName, "João", form.MessageFullNameIncomplete),
		Entry("full name with surrounding spaces", form.FieldFullName, "  João  ", form.MessageFullNameIncomplete),
		Entry("complete full name", form.FieldFullName, "João Silva", ""),
		Entry("empty cpf", form.FieldCpf, "", form.MessageCpfRequired),
		Entry("cpf with wrong check digits", form.FieldCpf, "123.456.789-00", form.MessageCpfInvalid),
		Entry("incomplete cpf", form.FieldCpf, "123.456", form.MessageCpfInvalid),
		Entry("valid masked cpf", form.FieldCpf, "529.982.247-25", ""),
		Entry("empty birth date", form.FieldBirthDate, "", form.MessageBirthDateRequired),
		Entry("impossible birth date", form.FieldBirthDate, "31/02/2000", form.MessageBirthDateInvalid),
		Entry("birth date in the future", form.FieldBirthDate, "01/01/9999", form.MessageBirthDateInvalid),
		Entry("valid birth date", form.FieldBirthDate, "15/03/1990", ""),
		Entry("empty email", form.FieldEmail, "", form.MessageEmailRequired),
		Entry("malformed email", form.FieldEmail, "email-invalido", form.MessageEmailInvalid),
		Entry("valid email", form.FieldEmail, "joao@example.com", ""),
	)

	Describe("Validate", func() {
		It("reports every required field of an empty form", func() {
			errs := form.Validate(form.Data{})
			Expect(errs).To(Equal(form.Errors{
				form.FieldFullName:  "Nome completo é obrigatório",
				form.FieldCpf:       "CPF é obrigatório",
				form.FieldBirthDate: "Data de nascimento é obrigatória",
				form.FieldEmail:     "E-mail é obrigatório",
			}))
			Expect(errs.HasErrors()).To(BeTrue())
		})

		It("returns no errors for valid data", func() {
			errs := form.Validate(form.Data{
				FullName:  "Maria Souza",
				Cpf:       "111.444.777-35",
				BirthDate: "01/01/1980",
				Email:     "maria@example.com",
			})
			Expect(errs).To(BeEmpty())
			Expect(errs.HasErrors()).To(BeFalse())
		})
	})

	Describe("DecodeData", func() {
		It("maps values by field name", func() {
			data, err := form.DecodeData(map[string]interface{}{
				"fullName": "Maria Souza",
				"email":    "maria@example.com",
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(data).To(Equal(form.Data{FullName: "Maria Souza", Email: "maria@example.com"}))
		})

		It("fails when a value is not a string", func() {
			_, err := form.DecodeData(map[string]interface{}{"cpf": []int{1, 2}})
			Expect(err).To(HaveOccurred())
		})
	})
})
