package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/konveksi/payroll-backend-go/internal/domain/user"
	"github.com/konveksi/payroll-backend-go/internal/handler/http/middleware"
	"github.com/konveksi/payroll-backend-go/internal/pkg/jwt"
)

type RouterOptions struct {
	AppName     string
	Version     string
	Env         string
	FrontendURL string
	LogLevel    slog.Level
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	allowanceHandler AllowanceHandler,
	bonusHandler BonusHandler,
	deductionHandler DeductionHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", opts.AppName),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionEmployeeView))
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/", employeeHandler.Update)
					r.Post("/deactivate", employeeHandler.Deactivate)

					r.Get("/attendance", attendanceHandler.List)
					r.Get("/attendance/summary", attendanceHandler.Summary)

					r.Get("/allowances", allowanceHandler.ListByEmployee)
					r.Post("/allowances", allowanceHandler.Create)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionCompensationView))

				r.Route("/allowances", func(r chi.Router) {
					r.Put("/{id}", allowanceHandler.Update)
					r.Delete("/{id}", allowanceHandler.Delete)
				})

				r.Route("/bonuses", func(r chi.Router) {
					r.Get("/", bonusHandler.List)
					r.Post("/", bonusHandler.Create)
					r.Put("/{id}", bonusHandler.Update)
					r.Delete("/{id}", bonusHandler.Delete)

					// Owner only
					r.With(middleware.RequireOwner).Post("/{id}/approve", bonusHandler.Approve)
				})

				r.Route("/deductions", func(r chi.Router) {
					r.Get("/", deductionHandler.List)
					r.Post("/", deductionHandler.Create)
					r.Get("/{id}", deductionHandler.Get)
					r.Put("/{id}", deductionHandler.Update)
					r.Delete("/{id}", deductionHandler.Delete)
				})
			})

			r.Route("/payroll/periods", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionPayrollView))
				r.Get("/", payrollHandler.ListPeriods)
				r.Post("/", payrollHandler.GeneratePayroll)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetPeriod)
					r.Get("/summary", payrollHandler.GetSummary)
					r.Post("/submit", payrollHandler.SubmitForApproval)

					// Owner only
					r.With(middleware.RequireOwner).Post("/approve", payrollHandler.ApprovePayroll)
				})
			})
		})
	})
	return r
}
