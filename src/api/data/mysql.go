package data

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/whiskerworks/spycat/src/api/types"
)

func MustMySQL(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	return db
}

// Migrate creates or updates the schema. Order matters: cats before
// missions before targets, so foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&types.Cat{}, &types.Mission{}, &types.Target{})
}
