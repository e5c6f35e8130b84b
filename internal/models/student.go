package models

import "time"

// SemesterKey identifies one of the two registration periods on a student
// record.
type SemesterKey string

const (
	FirstSemester  SemesterKey = "first_semester"
	SecondSemester SemesterKey = "second_semester"
)

// ValidSemesterKey reports whether the raw value names a known semester.
func ValidSemesterKey(raw string) bool {
	key := SemesterKey(raw)
	return key == FirstSemester || key == SecondSemester
}

// RegistrationStatus is the per-semester lifecycle value of a registration.
type RegistrationStatus string

const (
	StatusNotStarted RegistrationStatus = "not_started"
	StatusPending    RegistrationStatus = "pending"
	StatusApproved   RegistrationStatus = "approved"
	StatusRejected   RegistrationStatus = "rejected"
)

// Course is one entry in a registration or catalog. Units drive the cap
// check; everything else is opaque to the workflow.
type Course struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Units int    `json:"units"`
}

// TotalUnits sums the unit counts of a course list.
func TotalUnits(courses []Course) int {
	total := 0
	for _, c := range courses {
		total += c.Units
	}
	return total
}

// Student is a portal account keyed by matric number.
type Student struct {
	FullName           string                             `json:"full_name"`
	MatricNumber       string                             `json:"matric_number"`
	Department         string                             `json:"department"`
	Level              string                             `json:"level"`
	Email              string                             `json:"email"`
	Phone              string                             `json:"phone"`
	PasswordHash       string                             `json:"password"`
	Photo              string                             `json:"photo,omitempty"`
	RegisteredCourses  map[SemesterKey][]Course           `json:"registered_courses"`
	RegistrationStatus map[SemesterKey]RegistrationStatus `json:"registration_status"`
	CreatedAt          time.Time                          `json:"created_at"`
}

// StatusFor returns the student's status for a semester, defaulting to
// not_started for records predating the semester key.
func (s *Student) StatusFor(semester SemesterKey) RegistrationStatus {
	if s.RegistrationStatus == nil {
		return StatusNotStarted
	}
	if status, ok := s.RegistrationStatus[semester]; ok && status != "" {
		return status
	}
	return StatusNotStarted
}

// CoursesFor returns the student's registered courses for a semester.
func (s *Student) CoursesFor(semester SemesterKey) []Course {
	if s.RegisteredCourses == nil {
		return nil
	}
	return s.RegisteredCourses[semester]
}

// StudentSummary is the password-free projection returned to clients.
type StudentSummary struct {
	FullName     string `json:"full_name"`
	MatricNumber string `json:"matric_number"`
	Department   string `json:"department"`
	Level        string `json:"level"`
}

// Summary projects the student into its public form.
func (s *Student) Summary() StudentSummary {
	return StudentSummary{
		FullName:     s.FullName,
		MatricNumber: s.MatricNumber,
		Department:   s.Department,
		Level:        s.Level,
	}
}

// StudentProfile is the full record minus the credential, for API output.
type StudentProfile struct {
	FullName           string                             `json:"full_name"`
	MatricNumber       string                             `json:"matric_number"`
	Department         string                             `json:"department"`
	Level              string                             `json:"level"`
	Email              string                             `json:"email"`
	Phone              string                             `json:"phone"`
	Photo              string                             `json:"photo,omitempty"`
	RegisteredCourses  map[SemesterKey][]Course           `json:"registered_courses"`
	RegistrationStatus map[SemesterKey]RegistrationStatus `json:"registration_status"`
	CreatedAt          time.Time                          `json:"created_at"`
}

// Profile strips the password hash from the record.
func (s *Student) Profile() StudentProfile {
	return StudentProfile{
		FullName:           s.FullName,
		MatricNumber:       s.MatricNumber,
		Department:         s.Department,
		Level:              s.Level,
		Email:              s.Email,
		Phone:              s.Phone,
		Photo:              s.Photo,
		RegisteredCourses:  s.RegisteredCourses,
		RegistrationStatus: s.RegistrationStatus,
		CreatedAt:          s.CreatedAt,
	}
}
