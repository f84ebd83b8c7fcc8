package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/konveksi/payroll-backend-go/internal/config"
	appHTTP "github.com/konveksi/payroll-backend-go/internal/handler/http"
	"github.com/konveksi/payroll-backend-go/internal/pkg/cron"
	"github.com/konveksi/payroll-backend-go/internal/pkg/database"
	"github.com/konveksi/payroll-backend-go/internal/pkg/jwt"
	"github.com/konveksi/payroll-backend-go/internal/pkg/lock"
	"github.com/konveksi/payroll-backend-go/internal/repository/postgresql"
	allowanceService "github.com/konveksi/payroll-backend-go/internal/service/allowance"
	attendanceService "github.com/konveksi/payroll-backend-go/internal/service/attendance"
	bonusService "github.com/konveksi/payroll-backend-go/internal/service/bonus"
	deductionService "github.com/konveksi/payroll-backend-go/internal/service/deduction"
	employeeService "github.com/konveksi/payroll-backend-go/internal/service/employee"
	payrollService "github.com/konveksi/payroll-backend-go/internal/service/payroll"
)

const (
	appName    = "konveksi-payroll"
	appVersion = "v1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})).With(
		slog.String("app", appName),
		slog.String("version", appVersion),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	if err := run(cfg); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	locker, closeLocker, err := newLocker(cfg)
	if err != nil {
		return err
	}
	defer closeLocker()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	allowanceRepo := postgresql.NewAllowanceRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	transactor := postgresql.NewTransactor(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	allowanceSvc := allowanceService.NewAllowanceService(allowanceRepo, employeeRepo)
	bonusSvc := bonusService.NewBonusService(bonusRepo, employeeRepo)
	deductionSvc := deductionService.NewDeductionService(deductionRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		transactor,
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		allowanceRepo,
		bonusRepo,
		deductionRepo,
		locker,
		cfg.Payroll.ApprovalLockTTL,
	)

	scheduler := cron.NewScheduler()
	if cfg.Payroll.AutoGenerate {
		cron.NewPayrollJobs(payrollSvc, cfg.Payroll.AutoGenerateDay, cfg.Payroll.Location).RegisterJobs(scheduler)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			AppName:     appName,
			Version:     appVersion,
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
			LogLevel:    cfg.SlogLevel(),
		},
		JWTService,
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewAllowanceHandler(allowanceSvc),
		appHTTP.NewBonusHandler(bonusSvc),
		appHTTP.NewDeductionHandler(deductionSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newLocker uses Redis when configured so that approvals are serialized
// across API instances; a single instance can run with the in-memory lock.
func newLocker(cfg *config.Config) (lock.Locker, func(), error) {
	addr := cfg.RedisAddr()
	if addr == "" {
		slog.Warn("REDIS_HOST not set, payroll approval lock is in-process only")
		return lock.NewMemoryLocker(), func() {}, nil
	}

	redisLocker, err := lock.NewRedisLocker(lock.RedisConfig{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Redis approval lock connected", "addr", addr)

	return redisLocker, func() {
		if err := redisLocker.Close(); err != nil {
			slog.Warn("failed to close Redis client", "error", err)
		}
	}, nil
}
