package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/httplog/v3"

	"github.com/cuidaemprego/ponto-backend-go/internal/config"
	appHTTP "github.com/cuidaemprego/ponto-backend-go/internal/handler/http"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/database"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/jwt"
	"github.com/cuidaemprego/ponto-backend-go/internal/repository/postgresql"
	authService "github.com/cuidaemprego/ponto-backend-go/internal/service/auth"
	employeeService "github.com/cuidaemprego/ponto-backend-go/internal/service/employee"
	leaveService "github.com/cuidaemprego/ponto-backend-go/internal/service/leave"
	notificationService "github.com/cuidaemprego/ponto-backend-go/internal/service/notification"
	overtimeService "github.com/cuidaemprego/ponto-backend-go/internal/service/overtime"
	reviewService "github.com/cuidaemprego/ponto-backend-go/internal/service/review"
	timeentryService "github.com/cuidaemprego/ponto-backend-go/internal/service/timeentry"
	vacationService "github.com/cuidaemprego/ponto-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ponto-backend"),
		slog.String("env", cfg.App.Env),
	)

	accessExp, err := time.ParseDuration(cfg.JWT.AccessExpiration)
	if err != nil {
		log.Fatal("Invalid JWT_ACCESS_EXPIRATION_TIME: ", err)
	}
	refreshExp, err := time.ParseDuration(cfg.JWT.RefreshExpiration)
	if err != nil {
		log.Fatal("Invalid JWT_REFRESH_EXPIRATION_TIME: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, accessExp, refreshExp)

	notifier := notificationService.NewService(notificationRepo)
	authSvc := authService.NewService(userRepo, employeeRepo, refreshTokenRepo, jwtService)
	employeeSvc := employeeService.NewService(employeeRepo)
	vacationSvc := vacationService.NewService(vacationRepo, employeeRepo, notifier, logger)
	leaveSvc := leaveService.NewService(db, leaveRepo, employeeRepo, notifier, logger)
	overtimeSvc := overtimeService.NewService(db, overtimeRepo, employeeRepo, notifier, logger)
	timeEntrySvc := timeentryService.NewService(timeEntryRepo, employeeRepo)
	reviewSvc := reviewService.NewService(requestRepo, employeeRepo, notifier, logger)

	router := appHTTP.NewRouter(jwtService, logger, cfg.App.FrontendURL, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Vacation:     appHTTP.NewVacationHandler(vacationSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Overtime:     appHTTP.NewOvertimeHandler(overtimeSvc),
		TimeEntry:    appHTTP.NewTimeEntryHandler(timeEntrySvc),
		Review:       appHTTP.NewReviewHandler(reviewSvc),
		Notification: appHTTP.NewNotificationHandler(notifier),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
