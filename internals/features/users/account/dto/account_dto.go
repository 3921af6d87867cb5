package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"preschoolku_backend/internals/features/users/account/model"
)

// =======================
// Request DTO
// =======================

type AccountCreateDTO struct {
	AccountUserName string `json:"account_user_name" validate:"required,min=3,max=50"`
	AccountEmail    string `json:"account_email"     validate:"required,email"`
	AccountPassword string `json:"account_password"  validate:"required,min=8"`
	// staff roles only; parents register through /auth/register
	AccountRole  string  `json:"account_role"  validate:"required,oneof=teacher admission education hr"`
	AccountPhone *string `json:"account_phone" validate:"omitempty,max=20"`
}

type AccountUpdateDTO struct {
	AccountUserName *string `json:"account_user_name,omitempty" validate:"omitempty,min=3,max=50"`
	AccountPhone    *string `json:"account_phone,omitempty"     validate:"omitempty,max=20"`
	AccountIsActive *bool   `json:"account_is_active,omitempty"`
}

// =======================
// Response DTO
// =======================

type AccountResponseDTO struct {
	AccountID       uuid.UUID `json:"account_id"`
	AccountUserName string    `json:"account_user_name"`
	AccountEmail    string    `json:"account_email"`
	AccountRole     string    `json:"account_role"`
	AccountIsActive bool      `json:"account_is_active"`
	AccountPhone    *string   `json:"account_phone,omitempty"`
	AccountCreatedAt time.Time `json:"account_created_at"`
}

// =======================
// Helpers
// =======================

func (p *AccountCreateDTO) Normalize() {
	p.AccountUserName = strings.TrimSpace(p.AccountUserName)
	p.AccountEmail = strings.ToLower(strings.TrimSpace(p.AccountEmail))
	p.AccountRole = strings.ToLower(strings.TrimSpace(p.AccountRole))
}

func (p *AccountCreateDTO) ToModel(hashedPassword string) model.AccountModel {
	return model.AccountModel{
		AccountUserName: p.AccountUserName,
		AccountEmail:    p.AccountEmail,
		AccountPassword: hashedPassword,
		AccountRole:     p.AccountRole,
		AccountIsActive: true,
		AccountPhone:    p.AccountPhone,
	}
}

func (u *AccountUpdateDTO) ApplyUpdates(ent *model.AccountModel) {
	if u.AccountUserName != nil {
		ent.AccountUserName = strings.TrimSpace(*u.AccountUserName)
	}
	if u.AccountPhone != nil {
		ent.AccountPhone = u.AccountPhone
	}
	if u.AccountIsActive != nil {
		ent.AccountIsActive = *u.AccountIsActive
	}
}

func FromModel(ent model.AccountModel) AccountResponseDTO {
	return AccountResponseDTO{
		AccountID:        ent.AccountID,
		AccountUserName:  ent.AccountUserName,
		AccountEmail:     ent.AccountEmail,
		AccountRole:      ent.AccountRole,
		AccountIsActive:  ent.AccountIsActive,
		AccountPhone:     ent.AccountPhone,
		AccountCreatedAt: ent.AccountCreatedAt,
	}
}

func FromModels(list []model.AccountModel) []AccountResponseDTO {
	out := make([]AccountResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
