package db

import (
	"fmt"
	"log"

	"github.com/linskybing/bodhi-go/internal/config"
	"github.com/linskybing/bodhi-go/internal/domain/compose"
	"github.com/linskybing/bodhi-go/internal/domain/override"
	"github.com/linskybing/bodhi-go/internal/domain/release"
	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)
}

func Init() {
	var err error
	DB, err = gorm.Open(postgres.Open(DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&release.Release{},
		&user.User{},
		&update.Update{},
		&update.Build{},
		&update.Bug{},
		&update.Comment{},
		&update.BugKarma{},
		&update.TestCaseKarma{},
		&compose.Compose{},
		&override.BuildrootOverride{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
