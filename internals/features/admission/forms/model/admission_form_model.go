package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormStatus is the closed set of admission form lifecycle states.
type FormStatus string

const (
	FormStatusPending   FormStatus = "PENDING_APPROVAL"
	FormStatusApproved  FormStatus = "APPROVED"
	FormStatusRejected  FormStatus = "REJECTED"
	FormStatusCancelled FormStatus = "CANCELLED"
)

func (s FormStatus) Valid() bool {
	switch s {
	case FormStatusPending, FormStatusApproved, FormStatusRejected, FormStatusCancelled:
		return true
	}
	return false
}

type AdmissionFormModel struct {
	AdmissionFormID uuid.UUID `gorm:"column:admission_form_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admission_form_id"`

	AdmissionFormParentID  uuid.UUID `gorm:"column:admission_form_parent_id;type:uuid;not null;index" json:"admission_form_parent_id"`
	AdmissionFormStudentID uuid.UUID `gorm:"column:admission_form_student_id;type:uuid;not null;index" json:"admission_form_student_id"`
	AdmissionFormTermID    uuid.UUID `gorm:"column:admission_form_term_id;type:uuid;not null;index" json:"admission_form_term_id"`

	AdmissionFormHouseholdRegistrationAddress string `gorm:"column:admission_form_household_registration_address;type:varchar(150);not null" json:"admission_form_household_registration_address"`

	AdmissionFormBirthCertificateImage      string `gorm:"column:admission_form_birth_certificate_image;type:text;not null" json:"admission_form_birth_certificate_image"`
	AdmissionFormHouseholdRegistrationImage string `gorm:"column:admission_form_household_registration_image;type:text;not null" json:"admission_form_household_registration_image"`
	AdmissionFormProfileImage               string `gorm:"column:admission_form_profile_image;type:text;not null" json:"admission_form_profile_image"`
	AdmissionFormCommitmentImage            string `gorm:"column:admission_form_commitment_image;type:text;not null" json:"admission_form_commitment_image"`

	AdmissionFormStatus       FormStatus `gorm:"column:admission_form_status;type:varchar(20);not null;default:'PENDING_APPROVAL';index" json:"admission_form_status"`
	AdmissionFormCancelReason *string    `gorm:"column:admission_form_cancel_reason;type:varchar(100)" json:"admission_form_cancel_reason,omitempty"`
	AdmissionFormNote         *string    `gorm:"column:admission_form_note;type:varchar(100)" json:"admission_form_note,omitempty"`

	AdmissionFormSubmittedDate time.Time `gorm:"column:admission_form_submitted_date;type:date;not null" json:"admission_form_submitted_date"`

	AdmissionFormCreatedAt time.Time      `gorm:"column:admission_form_created_at;autoCreateTime" json:"admission_form_created_at"`
	AdmissionFormUpdatedAt time.Time      `gorm:"column:admission_form_updated_at;autoUpdateTime" json:"admission_form_updated_at"`
	AdmissionFormDeletedAt gorm.DeletedAt `gorm:"column:admission_form_deleted_at;index" json:"-"`
}

func (AdmissionFormModel) TableName() string { return "admission_forms" }

func (m *AdmissionFormModel) BeforeSave(_ *gorm.DB) error {
	m.AdmissionFormHouseholdRegistrationAddress = strings.TrimSpace(m.AdmissionFormHouseholdRegistrationAddress)
	if m.AdmissionFormStatus == "" {
		m.AdmissionFormStatus = FormStatusPending
	}
	if !m.AdmissionFormStatus.Valid() {
		return fmt.Errorf("invalid admission form status: %q", m.AdmissionFormStatus)
	}
	return nil
}
