package db

import (
	"github.com/dwnGnL/paymentService/models"
	"github.com/dwnGnL/paymentService/pkg/pretty"
	"github.com/dwnGnL/paymentService/pkg/setting"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// Setup initializes the database instance
func Setup() {
	var err error

	logLevel := logger.Warn
	if setting.Config.DB.LogSQL {
		logLevel = logger.Info
	}

	db, err = gorm.Open(postgres.Open(setting.Config.DB.DSN), &gorm.Config{Logger: logger.Default.LogMode(logLevel)})

	if err != nil {
		pretty.LoglnFatal("db.Setup err:", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		pretty.LoglnFatal("db.Setup err:", err)
	}
	if setting.Config.DB.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(setting.Config.DB.MaxOpenConns)
	}

	if err := AutoMigrate(db); err != nil {
		pretty.LoglnFatal("db.Setup migrate:", err)
	}
	pretty.Logln("DB successfully connected! ")
}

// CloseDB closes database connection (unnecessary)
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		pretty.Logln("Error on closing the DB: ", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		pretty.Logln("Error on closing the DB: ", err)
	}
}

func GetDB() *gorm.DB {
	return db
}

// AutoMigrate creates or updates the users and payments tables.
func AutoMigrate(gdb *gorm.DB) error {
	dbSilent := gdb.Session(&gorm.Session{Logger: logger.Default.LogMode(logger.Silent)})
	for _, model := range []interface{}{
		(*models.TUser)(nil),
		(*models.Payment)(nil),
	} {
		if err := dbSilent.AutoMigrate(model); err != nil {
			return err
		}
	}
	return nil
}
