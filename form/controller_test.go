package form_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sosportal/portal/form"
	"github.com/sosportal/portal/patients"
	patientsTest "github.com/sosportal/portal/patients/test"
)

var _ = Describe("Form Controller", func() {
	var controller *form.Controller
	var service *patientsTest.MockService
	var serviceCtrl *gomock.Controller

	fillValid := func() {
		controller.Change(form.FieldFullName, "João Silva")
		controller.Change(form.FieldCpf, "52998224725")
		controller.Change(form.FieldBirthDate, "15031990")
		controller.Change(form.FieldEmail, "joao@example.com")
	}

	BeforeEach(func() {
		serviceCtrl = gomock.NewController(GinkgoT())
		service = patientsTest.NewMockService(serviceCtrl)
		controller = form.NewController(service, zap.NewNop().Sugar())
	})

	AfterEach(func() {
		serviceCtrl.Finish()
	})

	It("starts idle and empty", func() {
		Expect(controller.State()).To(Equal(form.State{Type: form.StateIdle}))
		Expect(controller.Data()).To(Equal(form.Data{}))
		Expect(controller.Errors()).To(BeEmpty())
	})

	Describe("Change", func() {
		It("masks the cpf", func() {
			controller.Change(form.FieldCpf, "12345678909")
			Expect(controller.Data().Cpf).To(Equal("123.456.789-09"))
		})

		It("masks the birth date", func() {
			controller.Change(form.FieldBirthDate, "150319901")
			Expect(controller.Data().BirthDate).To(Equal("15/03/1990"))
		})

		It("keeps the full name and email as typed", func() {
			controller.Change(form.FieldFullName, "João ")
			controller.Change(form.FieldEmail, "JOAO@example.com")
			Expect(controller.Data().FullName).To(Equal("João "))
			Expect(controller.Data().Email).To(Equal("JOAO@example.com"))
		})

		It("clears the error of the edited field only", func() {
			Expect(controller.Submit(context.Background())).To(MatchError(form.ErrInvalid))
			controller.Change(form.FieldEmail, "j")

			errs := controller.Errors()
			Expect(errs).ToNot(HaveKey(form.FieldEmail))
			Expect(errs).To(HaveLen(3))
		})
	})

	Describe("Fill", func() {
		It("applies every provided value", func() {
			Expect(controller.Fill(map[string]interface{}{
				"fullName":  "Maria Souza",
				"cpf":       "11144477735",
				"birthDate": "01011980",
			})).To(Succeed())

			Expect(controller.Data()).To(Equal(form.Data{
				FullName:  "Maria Souza",
				Cpf:       "111.444.777-35",
				BirthDate: "01/01/1980",
			}))
		})

		It("leaves absent fields untouched", func() {
			controller.Change(form.FieldEmail, "maria@example.com")
			Expect(controller.Fill(map[string]interface{}{"fullName": "Maria Souza"})).To(Succeed())
			Expect(controller.Data().Email).To(Equal("maria@example.com"))
		})
	})

	Describe("Blur", func() {
		It("reports an incomplete full name", func() {
			controller.Change(form.FieldFullName, "João")
			Expect(controller.Blur(form.FieldFullName)).To(Equal("Digite o nome completo"))
			Expect(controller.Errors()).To(HaveKeyWithValue(form.FieldFullName, "Digite o nome completo"))
		})

		It("reports an invalid email", func() {
			controller.Change(form.FieldEmail, "email-invalido")
			Expect(controller.Blur(form.FieldEmail)).To(Equal("E-mail inválido"))
		})

		It("reports an invalid cpf", func() {
			controller.Change(form.FieldCpf, "12345678900")
			Expect(controller.Blur(form.FieldCpf)).To(Equal("CPF inválido"))
		})

		It("clears the error once the value is valid", func() {
			controller.Change(form.FieldEmail, "email-invalido")
			controller.Blur(form.FieldEmail)
			controller.Change(form.FieldEmail, "joao@example.com")
			Expect(controller.Blur(form.FieldEmail)).To(BeEmpty())
			Expect(controller.Errors()).To(BeEmpty())
		})
	})

	Describe("Submit", func() {
		It("does not call the service when the form is empty", func() {
			err := controller.Submit(context.Background())
			Expect(err).To(MatchError(form.ErrInvalid))
			Expect(controller.Errors()).To(Equal(form.Errors{
				form.FieldFullName:  "Nome completo é obrigatório",
				form.FieldCpf:       "CPF é obrigatório",
				form.FieldBirthDate: "Data de nascimento é obrigatória",
				form.FieldEmail:     "E-mail é obrigatório",
			}))
			Expect(controller.State().Type).To(Equal(form.StateIdle))
		})

		It("creates the patient with an ISO birth date", func() {
			fillValid()
			service.EXPECT().
				Create(gomock.Any(), patients.NewPatient{
					FullName:  "João Silva",
					Cpf:       "529.982.247-25",
					BirthDate: "1990-03-15",
					Email:     "joao@example.com",
				}).
				Return(&patients.Patient{Id: "1"}, nil)

			Expect(controller.Submit(context.Background())).To(Succeed())
			Expect(controller.State()).To(Equal(form.State{Type: form.StateSuccess, Message: "Paciente cadastrado com sucesso!"}))
			Expect(controller.Data()).To(Equal(form.Data{}))
			Expect(controller.Errors()).To(BeEmpty())
		})

		It("returns to idle when the form is edited after a success", func() {
			fillValid()
			service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&patients.Patient{Id: "1"}, nil)
			Expect(controller.Submit(context.Background())).To(Succeed())

			controller.Change(form.FieldFullName, "M")
			Expect(controller.State()).To(Equal(form.State{Type: form.StateIdle}))
		})

		It("returns to idle on reset", func() {
			fillValid()
			service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&patients.Patient{Id: "1"}, nil)
			Expect(controller.Submit(context.Background())).To(Succeed())

			controller.Reset()
			Expect(controller.State().Type).To(Equal(form.StateIdle))
		})

		DescribeTable("shows a failed submission under the matching field",
			func(failure error, field form.Field) {
				fillValid()
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, failure)

				err := controller.Submit(context.Background())
				Expect(err).To(MatchError(failure))
				Expect(controller.Errors()).To(Equal(form.Errors{field: failure.Error()}))
				Expect(controller.State()).To(Equal(form.State{Type: form.StateError, Message: failure.Error()}))
				Expect(controller.Data().FullName).To(Equal("João Silva"))
			},
			Entry("duplicate cpf", patients.ErrDuplicateCPF, form.FieldCpf),
			Entry("duplicate email", patients.ErrDuplicateEmail, form.FieldEmail),
			Entry("create failure", patients.ErrCreate, form.FieldEmail),
			Entry("unexpected failure", errors.New("boom"), form.FieldEmail),
		)

		It("rejects a second submission while the first is in flight", func() {
			fillValid()
			started := make(chan struct{})
			release := make(chan struct{})
			service.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ patients.NewPatient) (*patients.Patient, error) {
					close(started)
					<-release
					return &patients.Patient{Id: "1"}, nil
				}).
				Times(1)

			done := make(chan error, 1)
			go func() {
				defer GinkgoRecover()
				done <- controller.Submit(context.Background())
			}()

			Eventually(started).Should(BeClosed())
			Expect(controller.IsSubmitting()).To(BeTrue())
			Expect(controller.Submit(context.Background())).To(MatchError(form.ErrSubmissionInProgress))

			controller.Change(form.FieldFullName, "Outro Nome")
			Expect(controller.Data().FullName).To(Equal("João Silva"))

			close(release)
			Eventually(done).Should(Receive(BeNil()))
			Expect(controller.State().Type).To(Equal(form.StateSuccess))
		})
	})
})
