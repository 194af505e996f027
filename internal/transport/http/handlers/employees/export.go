package employeehandler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"

	"hrdesk/internal/domain/records"
)

// handleResumePDF renders the employee's resume as a PDF and streams it
// to the client.
func (h *Handler) handleResumePDF(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	employee, err := h.Directory.GetEmployee(r.Context(), employeeID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	resume, err := h.Records.EmployeeResume(r.Context(), employeeID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, employee.FullName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if employee.JobPosition != "" {
		pdf.Cell(0, 7, employee.JobPosition)
		pdf.Ln(6)
	}
	if employee.WorkEmail != "" {
		pdf.Cell(0, 7, employee.WorkEmail)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
	}

	if len(resume.Experiences) > 0 {
		section("Experience")
		for _, exp := range resume.Experiences {
			pdf.Cell(0, 6, fmt.Sprintf("%s (%s - %s)", exp.Title, orDash(exp.DateFrom), orDash(exp.DateTo)))
			pdf.Ln(5)
			if exp.JobDescription != "" {
				pdf.MultiCell(0, 5, exp.JobDescription, "", "", false)
			}
			pdf.Ln(2)
		}
		pdf.Ln(3)
	}

	if len(resume.Educations) > 0 {
		section("Education")
		for _, edu := range resume.Educations {
			pdf.Cell(0, 6, fmt.Sprintf("%s, %s (%s - %s)", edu.Title, edu.School, orDash(edu.FromDate), orDash(edu.ToDate)))
			pdf.Ln(5)
		}
		pdf.Ln(3)
	}

	skills := skillLines(resume)
	if len(skills) > 0 {
		section("Skills")
		for _, line := range skills {
			pdf.Cell(0, 6, line)
			pdf.Ln(5)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "resume-"+employeeID+".pdf"))
	if err := pdf.Output(w); err != nil {
		h.fail(w, r, err)
	}
}

func skillLines(resume *records.Resume) []string {
	lines := []string{}
	for _, skill := range resume.ProgrammingSkills {
		lines = append(lines, fmt.Sprintf("%s - %s", skill.Name, skill.Level))
	}
	for _, skill := range resume.LanguageSkills {
		lines = append(lines, fmt.Sprintf("%s - %s", skill.LanguageName, skill.Level))
	}
	for _, skill := range resume.OtherSkills {
		lines = append(lines, fmt.Sprintf("%s - %s", skill.SkillName, skill.Level))
	}
	return lines
}

func orDash(date string) string {
	if date == "" {
		return "-"
	}
	return date
}
