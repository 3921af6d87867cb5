package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountModel struct {
	AccountID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:account_id" json:"account_id"`
	AccountUserName string    `gorm:"type:varchar(50);not null;column:account_user_name" json:"account_user_name"`
	AccountEmail    string    `gorm:"type:varchar(255);not null;uniqueIndex;column:account_email" json:"account_email"`
	AccountPassword string    `gorm:"type:text;not null;column:account_password" json:"-"`

	// parent | teacher | admission | education | hr
	AccountRole     string `gorm:"type:varchar(20);not null;column:account_role" json:"account_role"`
	AccountIsActive bool   `gorm:"not null;default:true;column:account_is_active" json:"account_is_active"`

	AccountPhone *string `gorm:"type:varchar(20);column:account_phone" json:"account_phone,omitempty"`

	AccountCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:account_created_at" json:"account_created_at"`
	AccountUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:account_updated_at" json:"account_updated_at"`
	AccountDeletedAt gorm.DeletedAt `gorm:"column:account_deleted_at;index" json:"account_deleted_at,omitempty"`
}

func (AccountModel) TableName() string { return "accounts" }

func (m *AccountModel) BeforeSave(tx *gorm.DB) error {
	m.AccountUserName = strings.TrimSpace(m.AccountUserName)
	m.AccountEmail = strings.ToLower(strings.TrimSpace(m.AccountEmail))
	m.AccountRole = strings.ToLower(strings.TrimSpace(m.AccountRole))
	return nil
}
