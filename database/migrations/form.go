package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/M-Sanjay12o52o/formulate/configs/configslog"
	"github.com/M-Sanjay12o52o/formulate/models"
)

// MigrateFormsTables creates/updates the form_configs and form_fields
// tables.
func MigrateFormsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating form_configs & form_fields tables...")
	err := db.AutoMigrate(&models.FormConfig{}, &models.FormField{})
	if err != nil {
		configslog.Log.Error("Failed to migrate form_configs & form_fields tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Form_configs & form_fields tables migrated successfully")
	return nil
}
