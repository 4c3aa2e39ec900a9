package export

import (
	"io"

	"github.com/tealeg/xlsx/v3"

	"github.com/sosportal/portal/patients"
	"github.com/sosportal/portal/validation"
)

const (
	SheetName         = "Pacientes"
	CreatedTimeFormat = "02/01/2006 15:04"
)

var Header = []string{"Nome", "CPF", "Data de nascimento", "E-mail", "Cadastrado em"}

type Report struct {
	patients []patients.Patient
}

func NewReport(list []patients.Patient) Report {
	return Report{patients: list}
}

func (r Report) Generate() (*xlsx.File, error) {
	report := xlsx.NewFile()

	sh, err := report.AddSheet(SheetName)
	if err != nil {
		return nil, err
	}

	currentRow := sh.AddRow()
	for _, title := range Header {
		currentRow.AddCell().SetValue(title)
	}

	for _, p := range r.patients {
		currentRow = sh.AddRow()
		currentRow.AddCell().SetValue(p.FullName)
		currentRow.AddCell().SetValue(validation.FormatCPF(p.Cpf))
		currentRow.AddCell().SetValue(validation.ISOToDate(p.BirthDate))
		currentRow.AddCell().SetValue(p.Email)
		if p.CreatedAt.IsZero() {
			currentRow.AddCell()
		} else {
			currentRow.AddCell().SetValue(p.CreatedAt.Local().Format(CreatedTimeFormat))
		}
	}

	return report, nil
}

// Write renders the patient list as an xlsx workbook
func Write(w io.Writer, list []patients.Patient) error {
	report, err := NewReport(list).Generate()
	if err != nil {
		return err
	}
	return report.Write(w)
}
