package repository

import (
	"testing"
	"time"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// satu koneksi supaya database :memory: tidak terpecah per koneksi
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

type fixture struct {
	user      model.User
	job       model.Job
	applicant model.Applicant
	location  model.Location
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	code := "BUDI01"
	f := fixture{
		user:     model.User{Name: "Budi", Email: "budi@example.com", Role: model.RoleCandidate, ReferralCode: &code},
		job:      model.Job{JobCode: "DESAINJOB-SOF-0001", Title: "Software Engineer"},
		location: model.Location{Name: "Kantor Denpasar", Address: "Jl. Teuku Umar"},
	}
	require.NoError(t, db.Create(&f.user).Error)
	require.NoError(t, db.Create(&f.job).Error)
	require.NoError(t, db.Create(&f.location).Error)

	f.applicant = model.Applicant{UserID: f.user.ID, JobID: f.job.ID, Stage: model.StageApplication}
	require.NoError(t, db.Omit("User", "Job", "ReferredBy").Create(&f.applicant).Error)
	return f
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}
