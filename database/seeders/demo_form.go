package seeders

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/M-Sanjay12o52o/formulate/configs/configslog"
	"github.com/M-Sanjay12o52o/formulate/models"
)

// SeedDemoForm inserts a sample form configuration when no forms exist
// yet, so a fresh install has something to look at.
func SeedDemoForm(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.FormConfig{}).Count(&count).Error; err != nil {
		configslog.Log.Error("Existing forms could not be counted", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Debug("Forms already present, demo seed skipped.")
		return nil
	}

	shirtSizes := `["S","M","L","XL"]`
	demo := models.FormConfig{
		Title:       "Event Signup",
		Description: "Demo form seeded on first run",
		Fields: []models.FormField{
			{Name: "Full Name", Type: "text", Required: true, Position: 0},
			{Name: "Age", Type: "number", Position: 1},
			{Name: "Shirt Size", Type: "select", Options: &shirtSizes, Position: 2},
			{Name: "Subscribe to updates", Type: "checkbox", Position: 3},
		},
	}

	if err := db.Create(&demo).Error; err != nil {
		configslog.Log.Error("Demo form could not be created", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Demo form seeded: %s", demo.PublicID)
	return nil
}
