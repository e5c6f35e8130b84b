package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// CourseFormCourse is one row of the registration table.
type CourseFormCourse struct {
	Code  string
	Title string
	Units int
}

// CourseFormSignature labels a signature line at the bottom of the form.
type CourseFormSignature struct {
	Role string
	Name string
}

// CourseForm carries everything rendered onto a registration form PDF.
type CourseForm struct {
	Institution string
	Session     string
	Semester    string
	FullName    string
	Matric      string
	Department  string
	Level       string
	Status      string
	Courses     []CourseFormCourse
	TotalUnits  int
	Signatures  []CourseFormSignature
}

// CourseFormExporter renders a student's registration as a printable PDF.
type CourseFormExporter struct{}

// NewCourseFormExporter constructs a course form exporter.
func NewCourseFormExporter() *CourseFormExporter {
	return &CourseFormExporter{}
}

// Render produces the PDF bytes for the form.
func (e *CourseFormExporter) Render(form CourseForm) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	title := form.Institution
	if title == "" {
		title = "COURSE REGISTRATION FORM"
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 9, strings.ToUpper(title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s Course Form", form.Semester), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	info := [][2]string{
		{"Name", form.FullName},
		{"Matric Number", form.Matric},
		{"Department", form.Department},
		{"Level", form.Level},
		{"Status", form.Status},
	}
	for _, pair := range info {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(40, 6, pair[0]+":", "", 0, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, pair[1], "", 1, "", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 8, "Course Code", "1", 0, "C", false, 0, "")
	pdf.CellFormat(110, 8, "Course Title", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Units", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, course := range form.Courses {
		pdf.CellFormat(40, 7, course.Code, "1", 0, "", false, 0, "")
		pdf.CellFormat(110, 7, course.Title, "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", course.Units), "1", 1, "C", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(150, 8, "Total Units", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%d", form.TotalUnits), "1", 1, "C", false, 0, "")
	pdf.Ln(14)

	for _, sig := range form.Signatures {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(80, 6, "_________________________", "", 0, "", false, 0, "")
		pdf.Ln(5)
		label := sig.Role
		if sig.Name != "" {
			label = fmt.Sprintf("%s (%s)", sig.Name, sig.Role)
		}
		pdf.CellFormat(80, 6, label, "", 1, "", false, 0, "")
		pdf.Ln(6)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render course form pdf: %w", err)
	}
	return buf.Bytes(), nil
}
