package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/config"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/domain/fiber/handler"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/logger"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/middleware"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/model"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/repository"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/service"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/usecase"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	// Load .env file
	envErr := godotenv.Load()

	appConfig := config.LoadAppConfig()
	log := logger.L()
	if envErr != nil {
		log.Info("Could not load .env file, using process environment")
	}

	app := fiber.New(fiber.Config{
		AppName:     appConfig.Name,
		ProxyHeader: appConfig.ProxyHeader,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return util.ErrorResponse(c, util.ErrorResponseFormat{Code: code, Message: message}, err)
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.HeaderUserID + ", " + middleware.HeaderUserName + ", " + middleware.HeaderUserRole,
	}))
	// Use middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.Session())
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB(log)

	// repositories
	jobRepo := repository.NewJobRepository(db)
	applicantRepo := repository.NewApplicantRepository(db)
	historyRepo := repository.NewHistoryCandidateRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	// services
	gemini, err := service.NewGeminiService(ctx)
	if err != nil {
		log.WithError(err).Warn("Gemini disabled, job embeddings are skipped")
	}
	var embedder service.Embedder
	if gemini != nil {
		embedder = gemini
	}

	var llm service.TextGenerator
	switch provider := config.LoadRecommendationConfig().Provider; provider {
	case config.ProviderOpenRouter:
		llm = service.NewOpenRouterService()
	default:
		if gemini == nil {
			log.Fatal("RECOMMENDATION_PROVIDER=gemini requires GEMINI_API_KEY")
		}
		llm = gemini
	}

	var notifier service.Notifier
	if waConfig := config.LoadWhatsAppConfig(); waConfig.Enabled() {
		notifier = service.NewWhatsAppService(*waConfig)
	} else {
		log.Warn("WhatsApp credentials not set, stage notifications are disabled")
	}

	// usecases
	recommendationUC := usecase.NewRecommendationUsecase(llm, embedder, jobRepo, log)
	applicantUC := usecase.NewApplicantUsecase(applicantRepo, historyRepo, referralRepo, jobRepo, notifier, log)
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
	jobUC := usecase.NewJobUsecase(jobRepo, embedder, log)

	api := app.Group("/api")
	handler.Register(api,
		handler.NewRecommendationHandler(recommendationUC),
		handler.NewApplicantHandler(applicantUC),
		handler.NewScheduleHandler(scheduleUC),
		handler.NewEvaluatorHandler(evaluatorUC),
		handler.NewConversationHandler(conversationUC),
		handler.NewMbtiHandler(mbtiUC),
		handler.NewJobHandler(jobUC),
	)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Debugf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("shutdown failed")
		}
	}()

	log.Infof("Server running on %s", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB(log *logrus.Logger) *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)  // cukup 5 idle
		pgDB.SetMaxOpenConns(10) // max 10 koneksi aktif
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)           // simpan 20 koneksi siap pakai
		pgDB.SetMaxOpenConns(200)          // max 200 koneksi aktif
		pgDB.SetConnMaxLifetime(time.Hour) // recycle tiap 1 jam
	}

	for _, ext := range []string{"vector", "uuid-ossp"} {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "` + ext + `"`).Error; err != nil {
			log.Fatalf("enable extension %s: %v", ext, err)
		}
	}

	// migrasi tabel
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
