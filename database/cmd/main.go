package main

import (
	"flag"

	"github.com/M-Sanjay12o52o/formulate/configs"
	"github.com/M-Sanjay12o52o/formulate/configs/configsdatabase"
	"github.com/M-Sanjay12o52o/formulate/configs/configslog"
	"github.com/M-Sanjay12o52o/formulate/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Run database migrations")
	seedFlag := flag.Bool("seed", false, "Run database seeders")
	flag.Parse()

	configs.LoadEnv()
	cfg := configs.GetConfig()

	configsdatabase.InitDB(cfg.DatabaseURL)
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Running database initialization...")
	database.Initialize(db, *migrateFlag, *seedFlag)
	configslog.SLog.Info("Database initialization finished.")
}
