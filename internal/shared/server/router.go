package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"teamlens-backend/internal/analysis"
	"teamlens-backend/internal/attendance"
	"teamlens-backend/internal/mbti"
	"teamlens-backend/internal/notify"
	"teamlens-backend/internal/people"
	"teamlens-backend/internal/profitability"
	"teamlens-backend/internal/reports"
	"teamlens-backend/internal/shared/config"
	"teamlens-backend/internal/shared/metrics"
	"teamlens-backend/internal/shared/server/middleware"
	"teamlens-backend/internal/shared/server/respond"
	"teamlens-backend/internal/shared/storage/db"
	"teamlens-backend/internal/talents"
	"teamlens-backend/internal/teams"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"ANALYSIS": {Rate: 5, Burst: 10},
				"DEFAULT":  {Rate: 20, Burst: 40},
			},
			DefaultGroup: "DEFAULT",
			GroupFor: func(c *gin.Context) string {
				if strings.HasSuffix(c.FullPath(), "/analysis") {
					return "ANALYSIS"
				}
				return "DEFAULT"
			},
		}),
	)

	// Static catalogs. Validate fails fast on malformed data; a broken
	// catalog must never serve traffic.
	talentCatalog := talents.Default()
	profileCatalog := mbti.Default()
	if err := profileCatalog.Validate(talentCatalog); err != nil {
		log.Panicf("personality catalog is invalid: %v", err)
	}
	engine := analysis.NewEngine(talentCatalog, profileCatalog)

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var peopleRepo people.Repo
	var reportsRepo reports.Repo
	if sqlDB != nil {
		peopleRepo = &people.PGRepo{DB: sqlDB}
		reportsRepo = &reports.PGRepo{DB: sqlDB}
	} else {
		peopleRepo = people.NewMemoryRepo()
		reportsRepo = reports.NewMemoryRepo()
	}

	reportsSvc := reports.NewService(reportsRepo)
	peopleSvc := people.NewService(peopleRepo, engine, talentCatalog)
	peopleSvc.Recorder = reportsSvc

	teamsSvc := teams.NewService(peopleRepo, engine, talentCatalog, profileCatalog)

	rules, err := attendance.RulesFromConfig(&cfg)
	if err != nil {
		log.Printf("invalid attendance thresholds, using defaults: %v", err)
		rules = attendance.Rules{
			DayStart: 9 * time.Hour,
			DayEnd:   18 * time.Hour,
			Grace:    10 * time.Minute,
			MinHours: 8,
		}
	}
	attendanceHandler := attendance.NewHandler(rules)

	if webhook := notify.NewWebhookClient(&cfg); webhook != nil {
		peopleSvc.Notifier = webhook
		attendanceHandler.Notifier = webhook
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	registerCatalogRoutes(api, talentCatalog, profileCatalog)
	people.NewHandler(peopleSvc).RegisterRoutes(api)
	reports.NewHandler(reportsSvc).RegisterRoutes(api)
	teams.NewHandler(teamsSvc).RegisterRoutes(api)
	attendanceHandler.RegisterRoutes(api)
	profitability.NewHandler().RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
