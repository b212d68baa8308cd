package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/M-Sanjay12o52o/formulate/configs/configslog"
	"github.com/M-Sanjay12o52o/formulate/database/migrations"
	"github.com/M-Sanjay12o52o/formulate/database/seeders"
)

// Initialize runs migrations and/or seeders inside one transaction.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed requested, nothing to do.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Database transaction could not be started", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Database initialization failed (panic)", zap.Any("panic_info", r))
		}
	}()

	configslog.SLog.Info("Database initialization starting...")

	if migrate {
		configslog.SLog.Info("Running migrations...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migration failed", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Migrations completed.")
	}

	if seed {
		configslog.SLog.Info("Running seeders...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding failed", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Seeders completed.")
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit failed", zap.Error(err))
		return
	}

	configslog.SLog.Info("Database initialization completed successfully")
}

// RunMigrationsInOrder runs every migration in dependency order.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info(" -> Running form migrations...")
	if err := migrations.MigrateFormsTables(db); err != nil {
		configslog.Log.Error("Forms tables migration failed", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Form migrations completed.")
	return nil
}

// CheckAndRunSeeders runs every seeder; each is expected to be
// idempotent.
func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> Running demo form seeder...")
	if err := seeders.SeedDemoForm(db); err != nil {
		configslog.Log.Error("Demo form could not be seeded", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Demo form seeder completed.")
	return nil
}
