package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormConfig is the main record of a user-defined form. PublicID is the
// identifier exposed over the API; the numeric primary key never leaves
// the storage layer.
type FormConfig struct {
	BaseModel
	PublicID    string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`

	// GORM relations
	Fields []FormField `gorm:"foreignKey:FormConfigID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// BeforeCreate assigns the public identifier.
func (f *FormConfig) BeforeCreate(tx *gorm.DB) error {
	if f.PublicID == "" {
		f.PublicID = uuid.NewString()
	}
	return nil
}
