package model

import (
	"time"

	"github.com/google/uuid"
)

type SchoolModel struct {
	SchoolID       uuid.UUID `gorm:"column:school_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"school_id"`
	SchoolName     string    `gorm:"column:school_name;type:varchar(200);not null" json:"school_name"`
	SchoolIsActive bool      `gorm:"column:school_is_active;not null;default:true" json:"school_is_active"`
	CreatedAt      time.Time `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	UpdatedAt      time.Time `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
