package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"preschoolku_backend/internals/features/admission/forms/model"
	"preschoolku_backend/internals/features/admission/forms/service"
)

// =======================
// Request DTO
// =======================

type AdmissionFormSubmitDTO struct {
	AdmissionFormStudentID uuid.UUID `json:"admission_form_student_id" validate:"required"`
	AdmissionFormTermID    uuid.UUID `json:"admission_form_term_id"    validate:"required"`

	AdmissionFormHouseholdRegistrationAddress string `json:"admission_form_household_registration_address"`

	AdmissionFormBirthCertificateImage      string `json:"admission_form_birth_certificate_image"`
	AdmissionFormHouseholdRegistrationImage string `json:"admission_form_household_registration_image"`
	AdmissionFormProfileImage               string `json:"admission_form_profile_image"`
	AdmissionFormCommitmentImage            string `json:"admission_form_commitment_image"`
}

type AdmissionFormProcessDTO struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
	Reason   string `json:"reason"`
}

// =======================
// Response DTO
// =======================

type AdmissionFormResponseDTO struct {
	AdmissionFormID        uuid.UUID `json:"admission_form_id"`
	AdmissionFormParentID  uuid.UUID `json:"admission_form_parent_id"`
	AdmissionFormStudentID uuid.UUID `json:"admission_form_student_id"`
	AdmissionFormTermID    uuid.UUID `json:"admission_form_term_id"`

	AdmissionFormHouseholdRegistrationAddress string `json:"admission_form_household_registration_address"`

	AdmissionFormBirthCertificateImage      string `json:"admission_form_birth_certificate_image"`
	AdmissionFormHouseholdRegistrationImage string `json:"admission_form_household_registration_image"`
	AdmissionFormProfileImage               string `json:"admission_form_profile_image"`
	AdmissionFormCommitmentImage            string `json:"admission_form_commitment_image"`

	AdmissionFormStatus       model.FormStatus `json:"admission_form_status"`
	AdmissionFormCancelReason *string          `json:"admission_form_cancel_reason,omitempty"`
	AdmissionFormNote         *string          `json:"admission_form_note,omitempty"`

	AdmissionFormSubmittedDate time.Time `json:"admission_form_submitted_date"`
	AdmissionFormCreatedAt     time.Time `json:"admission_form_created_at"`
}

// =======================
// Helpers
// =======================

func (p *AdmissionFormSubmitDTO) Normalize() {
	p.AdmissionFormHouseholdRegistrationAddress = strings.TrimSpace(p.AdmissionFormHouseholdRegistrationAddress)
	p.AdmissionFormBirthCertificateImage = strings.TrimSpace(p.AdmissionFormBirthCertificateImage)
	p.AdmissionFormHouseholdRegistrationImage = strings.TrimSpace(p.AdmissionFormHouseholdRegistrationImage)
	p.AdmissionFormProfileImage = strings.TrimSpace(p.AdmissionFormProfileImage)
	p.AdmissionFormCommitmentImage = strings.TrimSpace(p.AdmissionFormCommitmentImage)
}

func (p *AdmissionFormSubmitDTO) Documents() service.FormDocuments {
	return service.FormDocuments{
		HouseholdRegistrationAddress: p.AdmissionFormHouseholdRegistrationAddress,
		BirthCertificateImage:        p.AdmissionFormBirthCertificateImage,
		HouseholdRegistrationImage:   p.AdmissionFormHouseholdRegistrationImage,
		ProfileImage:                 p.AdmissionFormProfileImage,
		CommitmentImage:              p.AdmissionFormCommitmentImage,
	}
}

func (p *AdmissionFormSubmitDTO) ToModel(parentID uuid.UUID, submittedDate time.Time) model.AdmissionFormModel {
	return model.AdmissionFormModel{
		AdmissionFormParentID:                     parentID,
		AdmissionFormStudentID:                    p.AdmissionFormStudentID,
		AdmissionFormTermID:                       p.AdmissionFormTermID,
		AdmissionFormHouseholdRegistrationAddress: p.AdmissionFormHouseholdRegistrationAddress,
		AdmissionFormBirthCertificateImage:        p.AdmissionFormBirthCertificateImage,
		AdmissionFormHouseholdRegistrationImage:   p.AdmissionFormHouseholdRegistrationImage,
		AdmissionFormProfileImage:                 p.AdmissionFormProfileImage,
		AdmissionFormCommitmentImage:              p.AdmissionFormCommitmentImage,
		AdmissionFormStatus:                       model.FormStatusPending,
		AdmissionFormSubmittedDate:                submittedDate,
	}
}

func FromModel(ent model.AdmissionFormModel) AdmissionFormResponseDTO {
	return AdmissionFormResponseDTO{
		AdmissionFormID:                           ent.AdmissionFormID,
		AdmissionFormParentID:                     ent.AdmissionFormParentID,
		AdmissionFormStudentID:                    ent.AdmissionFormStudentID,
		AdmissionFormTermID:                       ent.AdmissionFormTermID,
		AdmissionFormHouseholdRegistrationAddress: ent.AdmissionFormHouseholdRegistrationAddress,
		AdmissionFormBirthCertificateImage:        ent.AdmissionFormBirthCertificateImage,
		AdmissionFormHouseholdRegistrationImage:   ent.AdmissionFormHouseholdRegistrationImage,
		AdmissionFormProfileImage:                 ent.AdmissionFormProfileImage,
		AdmissionFormCommitmentImage:              ent.AdmissionFormCommitmentImage,
		AdmissionFormStatus:                       ent.AdmissionFormStatus,
		AdmissionFormCancelReason:                 ent.AdmissionFormCancelReason,
		AdmissionFormNote:                         ent.AdmissionFormNote,
		AdmissionFormSubmittedDate:                ent.AdmissionFormSubmittedDate,
		AdmissionFormCreatedAt:                    ent.AdmissionFormCreatedAt,
	}
}

func FromModels(list []model.AdmissionFormModel) []AdmissionFormResponseDTO {
	out := make([]AdmissionFormResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
