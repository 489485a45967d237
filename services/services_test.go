package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// openTestDB opens an isolated in-memory database with the full schema
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Technology{},
		&models.Project{},
		&models.Skill{},
		&models.Experience{},
		&models.ContactMessage{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// testConfig returns a config with no Redis so the cache stays local
func testConfig() *config.Config {
	return &config.Config{}
}

func newTestCache() *CacheService {
	return NewCacheService(testConfig())
}
