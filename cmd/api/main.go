package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/segus-engineering/ops-backend-go/internal/config"
	appHTTP "github.com/segus-engineering/ops-backend-go/internal/handler/http"
	"github.com/segus-engineering/ops-backend-go/internal/pkg/cron"
	"github.com/segus-engineering/ops-backend-go/internal/pkg/database"
	"github.com/segus-engineering/ops-backend-go/internal/pkg/jwt"
	"github.com/segus-engineering/ops-backend-go/internal/pkg/sse"
	"github.com/segus-engineering/ops-backend-go/internal/repository/postgresql"
	gamificationService "github.com/segus-engineering/ops-backend-go/internal/service/gamification"
	notificationService "github.com/segus-engineering/ops-backend-go/internal/service/notification"
	worksessionService "github.com/segus-engineering/ops-backend-go/internal/service/worksession"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "segus-ops"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	sessionRepo := postgresql.NewWorkSessionRepository(db)
	objectiveRepo := postgresql.NewObjectiveRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	badgeRepo := postgresql.NewBadgeRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()

	notifService := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{}, logger)
	defer notifService.Stop()

	sessionService := worksessionService.NewWorkSessionService(db, sessionRepo, employeeRepo)
	gamifService := gamificationService.NewGamificationService(
		db,
		objectiveRepo,
		performanceRepo,
		badgeRepo,
		statsRepo,
		sessionRepo,
		employeeRepo,
		notifService,
		logger,
	)

	sessionHandler := appHTTP.NewWorkSessionHandler(sessionService)
	gamificationHandler := appHTTP.NewGamificationHandler(gamifService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)
	notificationHandler := appHTTP.NewNotificationHandler(notifService, jwtService)

	scheduler := cron.NewScheduler()
	jobs := cron.NewSessionJobs(
		sessionRepo,
		performanceRepo,
		gamifService,
		notifService,
		time.Duration(cfg.Sessions.StaleAfterHours)*time.Hour,
		logger,
	)
	jobs.Register(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		logger,
		jwtService,
		sessionHandler,
		gamificationHandler,
		employeeHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
