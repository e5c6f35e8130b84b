package models

import "time"

// Semester is the two-valued active-semester setting held in portal config.
// It is mapped onto SemesterKey when checked against student records.
type Semester string

const (
	SemesterFirst  Semester = "first"
	SemesterSecond Semester = "second"
)

// DefaultMaxUnits is the unit cap applied when a level has no configured
// entry, including unrecognized level strings.
const DefaultMaxUnits = 24

// Admin is a portal administrator account stored inside the config record.
type Admin struct {
	FullName     string    `json:"full_name"`
	MatricNumber string    `json:"matric_number"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"created_at"`
}

// Signature is a role-labelled signatory shown on course forms.
type Signature struct {
	Name      string    `json:"name"`
	Image     string    `json:"signature,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PortalConfig is the process-wide singleton governing registration.
type PortalConfig struct {
	ActiveSemester       Semester             `json:"active_semester"`
	RegistrationDeadline string               `json:"registration_deadline"`
	MaxUnits             map[string]int       `json:"max_units"`
	Admins               []Admin              `json:"admins"`
	Signatures           map[string]Signature `json:"signatures"`
}

// DefaultPortalConfig mirrors the seed document written on first boot.
func DefaultPortalConfig() PortalConfig {
	return PortalConfig{
		ActiveSemester:       SemesterFirst,
		RegistrationDeadline: "2025-12-31",
		MaxUnits: map[string]int{
			"100": DefaultMaxUnits,
			"200": DefaultMaxUnits,
			"300": DefaultMaxUnits,
			"400": DefaultMaxUnits,
			"500": DefaultMaxUnits,
		},
		Admins:     []Admin{},
		Signatures: map[string]Signature{},
	}
}

// FindAdmin returns the admin with the given matric number, if any.
func (c *PortalConfig) FindAdmin(matric string) *Admin {
	for i := range c.Admins {
		if c.Admins[i].MatricNumber == matric {
			return &c.Admins[i]
		}
	}
	return nil
}

// PublicConfig is the student-visible subset of portal config.
type PublicConfig struct {
	ActiveSemester       Semester       `json:"active_semester"`
	RegistrationDeadline string         `json:"registration_deadline"`
	MaxUnits             map[string]int `json:"max_units"`
}
