package service

import "github.com/campusware/portal-api/internal/models"

// ActiveSemesterKey maps the config's two-valued active_semester setting to
// the semester-key vocabulary used on student records.
func ActiveSemesterKey(cfg models.PortalConfig) models.SemesterKey {
	if cfg.ActiveSemester == models.SemesterSecond {
		return models.SecondSemester
	}
	return models.FirstSemester
}

// MaxUnitsFor returns the unit cap for a level, defaulting to 24 when the
// level has no configured entry. Unrecognized level strings get the same
// default.
func MaxUnitsFor(level string, cfg models.PortalConfig) int {
	if limit, ok := cfg.MaxUnits[level]; ok {
		return limit
	}
	return models.DefaultMaxUnits
}

// SemesterDisplay renders a semester key for messages and forms.
func SemesterDisplay(semester models.SemesterKey) string {
	if semester == models.SecondSemester {
		return "Second Semester"
	}
	return "First Semester"
}
