package app

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hris-onboarding/internal/catalog"
	"hris-onboarding/internal/config"
	"hris-onboarding/internal/employee"
	"hris-onboarding/internal/messaging/kafka"
	"hris-onboarding/internal/onboarding"
	"hris-onboarding/internal/probation"
	"hris-onboarding/internal/rbac"
	"hris-onboarding/internal/rbac/infra"
	"hris-onboarding/internal/shared/audit"
)

// services is everything the api and the consumer share.
type services struct {
	catalog    catalog.Service
	onboarding onboarding.Service
	bulk       *onboarding.BulkCoordinator
}

func buildServices(
	cfg *config.Configuration,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) (*services, error) {
	builtin, err := catalog.LoadBuiltin(cfg.Onboarding.CatalogFile)
	if err != nil {
		return nil, err
	}
	checkinDays, err := cfg.ProbationCheckinDays()
	if err != nil {
		return nil, err
	}

	// --- Repositories ---
	catalogRepo := catalog.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	onboardingRepo := onboarding.NewRepository(gormDB)
	probationRepo := probation.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	catalogService := catalog.NewService(db, catalogRepo, builtin, catalog.CacheOptions{
		Redis:    rdb,
		RedisTTL: time.Duration(cfg.Onboarding.CatalogCacheTTLSeconds) * time.Second,
		LocalTTL: time.Duration(cfg.Onboarding.CatalogLocalCacheTTLSeconds) * time.Second,
	}, logger)
	employeeService := employee.NewService(employeeRepo, logger)
	scheduler := probation.NewScheduler(probationRepo, checkinDays, logger)
	notifier := onboarding.NewNotifier(outboxRepo, audit.NewLogger(logger.Named("audit")), logger)

	onboardingService := onboarding.NewService(
		db,
		onboardingRepo,
		catalogService,
		employeeService,
		scheduler,
		notifier,
		onboarding.Options{
			FileCompleteRequiresPhaseOne: cfg.FileCompleteRequiresPhaseOne(),
			DefaultDueDays:               cfg.Onboarding.DefaultDueDays,
		},
		logger,
	)
	bulk := onboarding.NewBulkCoordinator(onboardingService, catalogService, cfg.Onboarding.BulkConcurrency, logger)

	return &services{
		catalog:    catalogService,
		onboarding: onboardingService,
		bulk:       bulk,
	}, nil
}

func registerModules(
	router *gin.Engine,
	cfg *config.Configuration,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	svc, err := buildServices(cfg, db, gormDB, rdb, logger)
	if err != nil {
		return err
	}

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbac.NewRepository(gormDB), enforcer, logger)

	// --- Handlers ---
	catalogHandler := catalog.NewHandler(svc.catalog, logger)
	onboardingHandler := onboarding.NewHandler(svc.onboarding, svc.bulk, rdb, logger)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler, rbacService, logger)
		onboarding.RegisterRoutes(api, onboardingHandler, rbacService, rdb, logger)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
