package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/middleware"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/repository"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/usecase"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubGenerator struct {
	reply string
}

func (s stubGenerator) Generate(context.Context, string) (string, error) {
	return s.reply, nil
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) SendGroupMessage(_ context.Context, message string) error {
	n.messages = append(n.messages, message)
	return nil
}

type testEnv struct {
	app       *fiber.App
	db        *gorm.DB
	notifier  *recordingNotifier
	admin     model.User
	candidate model.User
	evaluator model.User
	job       model.Job
	openJob   model.Job
	location  model.Location
	applicant model.Applicant
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(model.All()...))

	env := &testEnv{db: db, notifier: &recordingNotifier{}}
	env.seed(t)

	log, _ := test.NewNullLogger()
	jobRepo := repository.NewJobRepository(db)
	applicantRepo := repository.NewApplicantRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	recommendationUC := usecase.NewRecommendationUsecase(stubGenerator{reply: "```json\n[\"Backend Engineer\",\"Platform Engineer\"]\n```"}, nil, nil, log)
	applicantUC := usecase.NewApplicantUsecase(applicantRepo, repository.NewHistoryCandidateRepository(db), repository.NewReferralRepository(db), jobRepo, env.notifier, log)
	scheduleUC := usecase.NewScheduleUsecase(
		repository.NewScheduleInterviewRepository(db),
		repository.NewScheduleHiredRepository(db),
		repository.NewScheduleTimeRepository(db),
		applicantRepo,
		locationRepo,
	)
	evaluatorUC := usecase.NewEvaluatorUsecase(repository.NewEvaluatorReviewRepository(db))
	conversationUC := usecase.NewConversationUsecase(repository.NewConversationRepository(db))
	mbtiUC := usecase.NewMbtiUsecase(repository.NewMbtiTestRepository(db), applicantRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, nil, log)

	env.app = fiber.New()
	api := env.app.Group("/api", middleware.Session())
	Register(api,
		NewRecommendationHandler(recommendationUC),
		NewApplicantHandler(applicantUC),
		NewScheduleHandler(scheduleUC),
		NewEvaluatorHandler(evaluatorUC),
		NewConversationHandler(conversationUC),
		NewMbtiHandler(mbtiUC),
		NewJobHandler(jobUC),
	)
	return env
}

func (e *testEnv) seed(t *testing.T) {
	t.Helper()
	code := "BUDI01"
	e.admin = model.User{Name: "Admin OSS", Email: "admin@example.com", Role: model.RoleAdmin}
	e.candidate = model.User{Name: "Budi", Email: "budi@example.com", Role: model.RoleCandidate, ReferralCode: &code}
	e.evaluator = model.User{Name: "Sari", Email: "sari@example.com", Role: model.RoleEvaluator}
	e.location = model.Location{Name: "Kantor Denpasar", Address: "Jl. Teuku Umar"}
	for _, row := range []any{&e.admin, &e.candidate, &e.evaluator, &e.location} {
		require.NoError(t, e.db.Create(row).Error)
	}

	e.job = model.Job{JobCode: "DESAINJOB-SOF-0001", Title: "Software Engineer", IsPublished: true}
	e.openJob = model.Job{JobCode: "DESAINJOB-DES-0002", Title: "Designer", IsPublished: true}
	require.NoError(t, e.db.Omit("Location").Create(&e.job).Error)
	require.NoError(t, e.db.Omit("Location").Create(&e.openJob).Error)

	e.applicant = model.Applicant{UserID: e.candidate.ID, JobID: e.job.ID, Stage: model.StageApplication}
	require.NoError(t, e.db.Omit("User", "Job", "ReferredBy").Create(&e.applicant).Error)
}

// call mengirim request JSON sebagai user tertentu, user nil berarti anonim.
func (e *testEnv) call(t *testing.T, method, path string, body any, as *model.User) (int, gjson.Result) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if as != nil {
		req.Header.Set(middleware.HeaderUserID, as.ID.String())
		req.Header.Set(middleware.HeaderUserName, as.Name)
		req.Header.Set(middleware.HeaderUserRole, string(as.Role))
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, gjson.ParseBytes(raw)
}
