package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"preschoolku_backend/internals/features/admission/parents/model"
)

type ParentUpdateDTO struct {
	ParentFullName *string `json:"parent_full_name,omitempty" validate:"omitempty,max=100"`
	ParentPhone    *string `json:"parent_phone,omitempty"     validate:"omitempty,max=20"`
	ParentAddress  *string `json:"parent_address,omitempty"   validate:"omitempty,max=150"`
}

type ParentResponseDTO struct {
	ParentID        uuid.UUID `json:"parent_id"`
	ParentAccountID uuid.UUID `json:"parent_account_id"`
	ParentFullName  string    `json:"parent_full_name"`
	ParentPhone     *string   `json:"parent_phone,omitempty"`
	ParentAddress   *string   `json:"parent_address,omitempty"`
	ParentCreatedAt time.Time `json:"parent_created_at"`
}

func (u *ParentUpdateDTO) ApplyUpdates(ent *model.ParentModel) {
	if u.ParentFullName != nil {
		ent.ParentFullName = strings.TrimSpace(*u.ParentFullName)
	}
	if u.ParentPhone != nil {
		ent.ParentPhone = u.ParentPhone
	}
	if u.ParentAddress != nil {
		ent.ParentAddress = u.ParentAddress
	}
}

func ParentFromModel(ent model.ParentModel) ParentResponseDTO {
	return ParentResponseDTO{
		ParentID:        ent.ParentID,
		ParentAccountID: ent.ParentAccountID,
		ParentFullName:  ent.ParentFullName,
		ParentPhone:     ent.ParentPhone,
		ParentAddress:   ent.ParentAddress,
		ParentCreatedAt: ent.ParentCreatedAt,
	}
}
