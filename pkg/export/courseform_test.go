package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseFormRender(t *testing.T) {
	exporter := NewCourseFormExporter()

	data, err := exporter.Render(CourseForm{
		Semester:   "First Semester",
		FullName:   "Ada Obi",
		Matric:     "csc/2025/6612",
		Department: "Computer Science",
		Level:      "300",
		Status:     "approved",
		Courses: []CourseFormCourse{
			{Code: "CSC301", Title: "Algorithms", Units: 3},
			{Code: "CSC305", Title: "Operating Systems", Units: 4},
		},
		TotalUnits: 7,
		Signatures: []CourseFormSignature{
			{Role: "hod", Name: "Dr. Eze"},
		},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
	assert.Greater(t, len(data), 1000)
}

func TestCourseFormRenderEmptyCourses(t *testing.T) {
	exporter := NewCourseFormExporter()

	data, err := exporter.Render(CourseForm{
		Semester: "Second Semester",
		FullName: "Ada Obi",
		Matric:   "csc/2025/6612",
		Status:   "not_started",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
