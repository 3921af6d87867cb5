package service

import (
	"strings"
	"testing"
)

func validDocuments() FormDocuments {
	return FormDocuments{
		HouseholdRegistrationAddress: "12 Orchard Lane",
		BirthCertificateImage:        "uploads/birth-cert.jpg",
		HouseholdRegistrationImage:   "uploads/household.PNG",
		ProfileImage:                 "uploads/profile.jpeg",
		CommitmentImage:              "uploads/commitment.bmp",
	}
}

func TestIsImageReference(t *testing.T) {
	cases := []struct {
		ref  string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.JPG", true},
		{"photo.jpeg", true},
		{"scan.png", true},
		{"scan.gif", true},
		{"scan.bmp", true},
		{"dir/with.dots/scan.PnG", true},
		{"", false},
		{"   ", false},
		{"document.pdf", false},
		{"archive.zip", false},
		{"noextension", false},
		{"trailingdot.", false},
	}
	for _, tc := range cases {
		if got := IsImageReference(tc.ref); got != tc.want {
			t.Errorf("IsImageReference(%q) = %v, want %v", tc.ref, got, tc.want)
		}
	}
}

func TestValidateFormDocuments_Order(t *testing.T) {
	if err := ValidateFormDocuments(validDocuments()); err != nil {
		t.Fatalf("valid documents rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*FormDocuments)
		want   error
	}{
		{"missing address", func(d *FormDocuments) { d.HouseholdRegistrationAddress = "  " }, ErrHouseholdAddressRequired},
		{"address too long", func(d *FormDocuments) { d.HouseholdRegistrationAddress = strings.Repeat("a", 151) }, ErrHouseholdAddressTooLong},
		{"missing birth certificate", func(d *FormDocuments) { d.BirthCertificateImage = "" }, ErrBirthCertificateImageInvalid},
		{"birth certificate wrong type", func(d *FormDocuments) { d.BirthCertificateImage = "cert.pdf" }, ErrBirthCertificateImageInvalid},
		{"household image wrong type", func(d *FormDocuments) { d.HouseholdRegistrationImage = "card.docx" }, ErrHouseholdRegistrationImageInvalid},
		{"missing profile image", func(d *FormDocuments) { d.ProfileImage = "" }, ErrProfileImageInvalid},
		{"commitment wrong type", func(d *FormDocuments) { d.CommitmentImage = "letter.txt" }, ErrCommitmentImageInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDocuments()
			tc.mutate(&d)
			if err := ValidateFormDocuments(d); err != tc.want {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}

	// address failure wins over a later image failure
	d := validDocuments()
	d.HouseholdRegistrationAddress = ""
	d.ProfileImage = "broken"
	if err := ValidateFormDocuments(d); err != ErrHouseholdAddressRequired {
		t.Fatalf("expected first failure in order, got %v", err)
	}
}

func TestValidateRejectReason(t *testing.T) {
	if err := ValidateRejectReason("Incomplete documents"); err != nil {
		t.Fatalf("valid reason rejected: %v", err)
	}
	if err := ValidateRejectReason(strings.Repeat("a", 100)); err != nil {
		t.Fatalf("100-char reason rejected: %v", err)
	}
	if err := ValidateRejectReason(""); err != ErrRejectReasonRequired {
		t.Fatalf("empty reason: got %v", err)
	}
	if err := ValidateRejectReason("   "); err != ErrRejectReasonRequired {
		t.Fatalf("blank reason: got %v", err)
	}
	if err := ValidateRejectReason(strings.Repeat("a", 101)); err != ErrRejectReasonRequired {
		t.Fatalf("101-char reason: got %v", err)
	}
	if got := ErrRejectReasonRequired.Error(); got != "Reject reason is required when form is rejected" {
		t.Fatalf("unexpected reject message: %q", got)
	}
}
