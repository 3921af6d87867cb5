package constants

import "fmt"

// Role names as stored on accounts.role
const (
	RoleParent    = "parent"
	RoleTeacher   = "teacher"
	RoleAdmission = "admission"
	RoleEducation = "education"
	RoleHR        = "hr"
)

// Role error message templates
const (
	ErrOnlyParentsCanAccess   = "Only parents may access %s."
	ErrOnlyAdmissionCanAccess = "Only admission staff may access %s."
	ErrOnlyEducationCanAccess = "Only education staff may access %s."
	ErrOnlyTeachersCanAccess  = "Only teachers may access %s."
	ErrOnlyHRCanAccess        = "Only HR staff may access %s."
)

func RoleErrorParent(feature string) string {
	return fmt.Sprintf(ErrOnlyParentsCanAccess, feature)
}

func RoleErrorAdmission(feature string) string {
	return fmt.Sprintf(ErrOnlyAdmissionCanAccess, feature)
}

func RoleErrorEducation(feature string) string {
	return fmt.Sprintf(ErrOnlyEducationCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorHR(feature string) string {
	return fmt.Sprintf(ErrOnlyHRCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleParent,
		RoleTeacher,
		RoleAdmission,
		RoleEducation,
		RoleHR,
	}

	StaffRoles = []string{
		RoleTeacher,
		RoleAdmission,
		RoleEducation,
		RoleHR,
	}

	EducationAndTeacher = []string{
		RoleEducation,
		RoleTeacher,
	}

	ParentOnly = []string{
		RoleParent,
	}

	AdmissionOnly = []string{
		RoleAdmission,
	}

	EducationOnly = []string{
		RoleEducation,
	}

	HROnly = []string{
		RoleHR,
	}
)
