package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParentModel struct {
	ParentID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parent_id" json:"parent_id"`
	ParentAccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:parent_account_id" json:"parent_account_id"`

	ParentFullName string  `gorm:"type:varchar(100);not null;column:parent_full_name" json:"parent_full_name"`
	ParentPhone    *string `gorm:"type:varchar(20);column:parent_phone" json:"parent_phone,omitempty"`
	ParentAddress  *string `gorm:"type:varchar(150);column:parent_address" json:"parent_address,omitempty"`

	ParentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:parent_created_at" json:"parent_created_at"`
	ParentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:parent_updated_at" json:"parent_updated_at"`
	ParentDeletedAt gorm.DeletedAt `gorm:"column:parent_deleted_at;index" json:"parent_deleted_at,omitempty"`
}

func (ParentModel) TableName() string { return "parents" }

func (m *ParentModel) BeforeSave(tx *gorm.DB) error {
	m.ParentFullName = strings.TrimSpace(m.ParentFullName)
	return nil
}
