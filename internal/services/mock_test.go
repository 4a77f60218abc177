package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2026, time.October, 14, 20, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// newMockDB returns a gorm handle backed by sqlmock with postgres dialect.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func q(sql string) string { return regexp.QuoteMeta(sql) }

var venueColumns = []string{
	"id", "name", "city", "state", "address", "phone", "image_link", "genres",
	"facebook_link", "website_link", "seeking_talent", "seeking_description",
	"created_at", "updated_at",
}

var artistColumns = []string{
	"id", "name", "city", "state", "phone", "genres", "image_link",
	"facebook_link", "website_link", "seeking_venue", "seeking_description",
	"created_at", "updated_at",
}

var showColumns = []string{"id", "start_date", "venue_id", "artist_id", "created_at"}

func boolPtr(b bool) *bool { return &b }
