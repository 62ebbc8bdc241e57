package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/config"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/middleware"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Shift        ShiftHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Bill         ExpenseHandler
	AuditExpense ExpenseHandler
	Advance      AdvanceHandler
	Payslip      PayslipHandler
	Cashbook     CashbookHandler
	Holiday      HolidayHandler
	Notification NotificationHandler
	Report       ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffdesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// The SSE stream authenticates with its own short-lived token.
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Shift.List)
				r.Post("/", h.Shift.Create)
				r.Get("/{id}", h.Shift.Get)
				r.Put("/{id}", h.Shift.Update)
				r.Delete("/{id}", h.Shift.Delete)
				r.Post("/{id}/qr", h.Shift.IssueQRToken)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch-in", h.Attendance.PunchIn)
				r.Post("/punch-out", h.Attendance.PunchOut)
				r.Get("/me", h.Attendance.GetMyAttendance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Attendance.List)
					r.Put("/{id}", h.Attendance.Update)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/me", h.Leave.GetMyLeaves)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.List)
					r.Put("/{id}/status", h.Leave.Decide)
				})
			})

			r.Route("/bills", func(r chi.Router) {
				r.Get("/", h.Bill.List)
				r.Post("/", h.Bill.Create)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}/approve", h.Bill.Approve)
					r.Put("/{id}/revalidate", h.Bill.Revalidate)
				})
			})

			r.Route("/audit-expenses", func(r chi.Router) {
				r.Get("/", h.AuditExpense.List)
				r.Post("/", h.AuditExpense.Create)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}/approve", h.AuditExpense.Approve)
					r.Put("/{id}/revalidate", h.AuditExpense.Revalidate)
				})
			})

			r.Route("/advances", func(r chi.Router) {
				r.Get("/me", h.Advance.GetMyAdvances)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Advance.List)
					r.Post("/", h.Advance.Create)
				})
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/me", h.Payslip.GetMyPayslips)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Payslip.List)
					r.Get("/{employeeID}/{year}/{month}", h.Payslip.Preview)
					r.Post("/{employeeID}/{year}/{month}/generate", h.Payslip.Generate)
					r.Post("/generate-all", h.Payslip.GenerateAll)
					r.Post("/{id}/settle", h.Payslip.Settle)
					r.Get("/{id}", h.Payslip.Get)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/payroll.csv", h.Report.AttendanceCSV)
				r.Get("/payroll.xlsx", h.Report.PayrollRegisterXLSX)
				r.Get("/payslips/{id}.pdf", h.Report.PayslipPDF)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Holiday.Create)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})

			r.Route("/cashbook", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Cashbook.List)
				r.Post("/", h.Cashbook.Create)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/sse-token", h.Notification.GetSSEToken)
				r.Put("/{id}/read", h.Notification.MarkRead)
				r.Put("/read-all", h.Notification.MarkAllRead)
			})
		})
	})
	return r
}
