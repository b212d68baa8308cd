package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormField is one field definition belonging to a FormConfig.
// Options holds a JSON-encoded string array; NULL means the field has
// no options. Position preserves the author's field order across reads.
type FormField struct {
	BaseModel
	PublicID     string  `gorm:"type:varchar(36);uniqueIndex;not null"`
	FormConfigID uint    `gorm:"index;not null"` // form_configs.id FK
	Name         string  `gorm:"type:varchar(255);not null"`
	Type         string  `gorm:"type:varchar(20);not null"`
	Options      *string `gorm:"type:text"`
	Required     bool    `gorm:"type:boolean;default:false"`
	Position     int     `gorm:"not null"`
}

// BeforeCreate assigns the public identifier.
func (f *FormField) BeforeCreate(tx *gorm.DB) error {
	if f.PublicID == "" {
		f.PublicID = uuid.NewString()
	}
	return nil
}
