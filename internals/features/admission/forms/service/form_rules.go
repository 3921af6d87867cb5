package service

import (
	"errors"
	"path/filepath"
	"strings"
)

const (
	maxHouseholdAddressLen = 150
	maxRejectReasonLen     = 100

	// MsgStudentAlreadyRegistered is returned for the duplicate (parent,
	// student) pre-submit check regardless of the earlier form's status.
	MsgStudentAlreadyRegistered = "This student was already registered"

	// MsgRejectReasonRequired covers both the empty and the over-length case.
	MsgRejectReasonRequired = "Reject reason is required when form is rejected"
)

var (
	ErrHouseholdAddressRequired = errors.New("Household registration address is required")
	ErrHouseholdAddressTooLong  = errors.New("Household registration address must be at most 150 characters")

	ErrBirthCertificateImageInvalid      = errors.New("Birth certificate image must be a valid image file")
	ErrHouseholdRegistrationImageInvalid = errors.New("Household registration image must be a valid image file")
	ErrProfileImageInvalid               = errors.New("Profile image must be a valid image file")
	ErrCommitmentImageInvalid            = errors.New("Commitment letter image must be a valid image file")

	ErrRejectReasonRequired = errors.New(MsgRejectReasonRequired)
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
}

// IsImageReference reports whether ref is non-empty and carries a known image
// file extension, case-insensitive.
func IsImageReference(ref string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return false
	}
	ext := strings.ToLower(filepath.Ext(ref))
	_, ok := imageExtensions[ext]
	return ok
}

// FormDocuments is the document part of a submission, validated after the
// child profile.
type FormDocuments struct {
	HouseholdRegistrationAddress string
	BirthCertificateImage        string
	HouseholdRegistrationImage   string
	ProfileImage                 string
	CommitmentImage              string
}

// ValidateFormDocuments checks the household address and the four document
// references in submission order, returning the first failure.
func ValidateFormDocuments(d FormDocuments) error {
	addr := strings.TrimSpace(d.HouseholdRegistrationAddress)
	if addr == "" {
		return ErrHouseholdAddressRequired
	}
	if len(addr) > maxHouseholdAddressLen {
		return ErrHouseholdAddressTooLong
	}

	if !IsImageReference(d.BirthCertificateImage) {
		return ErrBirthCertificateImageInvalid
	}
	if !IsImageReference(d.HouseholdRegistrationImage) {
		return ErrHouseholdRegistrationImageInvalid
	}
	if !IsImageReference(d.ProfileImage) {
		return ErrProfileImageInvalid
	}
	if !IsImageReference(d.CommitmentImage) {
		return ErrCommitmentImageInvalid
	}
	return nil
}

// ValidateRejectReason enforces the rejection precondition: a reason must be
// present and fit the stored column.
func ValidateRejectReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" || len(reason) > maxRejectReasonLen {
		return ErrRejectReasonRequired
	}
	return nil
}
