package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/config"
	appHTTP "github.com/staffdesk/staffdesk-backend-go/internal/handler/http"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/cron"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/sse"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/expense"
	advanceService "github.com/staffdesk/staffdesk-backend-go/internal/service/advance"
	attendanceService "github.com/staffdesk/staffdesk-backend-go/internal/service/attendance"
	authService "github.com/staffdesk/staffdesk-backend-go/internal/service/auth"
	cashbookService "github.com/staffdesk/staffdesk-backend-go/internal/service/cashbook"
	employeeService "github.com/staffdesk/staffdesk-backend-go/internal/service/employee"
	expenseService "github.com/staffdesk/staffdesk-backend-go/internal/service/expense"
	holidayService "github.com/staffdesk/staffdesk-backend-go/internal/service/holiday"
	leaveService "github.com/staffdesk/staffdesk-backend-go/internal/service/leave"
	notificationService "github.com/staffdesk/staffdesk-backend-go/internal/service/notification"
	payslipService "github.com/staffdesk/staffdesk-backend-go/internal/service/payslip"
	reportService "github.com/staffdesk/staffdesk-backend-go/internal/service/report"
	shiftService "github.com/staffdesk/staffdesk-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "staffdesk"),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	cashbookRepo := postgresql.NewCashbookRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.JWT.QRExpiration)
	hub := sse.NewHub()

	notifSvc := notificationService.NewNotificationService(notificationRepo, userRepo, hub, logger)
	authSvc := authService.NewAuthService(userRepo, jwtRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, jwtSvc, cfg.Shift)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, jwtSvc)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, notifSvc)
	expenseSvc := expenseService.NewExpenseService(expenseRepo, notifSvc)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, employeeRepo)
	cashbookSvc := cashbookService.NewCashbookService(cashbookRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	payslipSvc := payslipService.NewPayslipService(
		db,
		payslipRepo,
		employeeRepo,
		attendanceRepo,
		leaveRepo,
		expenseRepo,
		advanceRepo,
		holidayRepo,
		cashbookSvc,
		notifSvc,
		logger,
	)
	reportSvc := reportService.NewReportService(attendanceRepo, payslipRepo)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(jwtSvc, authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Shift:        appHTTP.NewShiftHandler(shiftSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Bill:         appHTTP.NewExpenseHandler(expenseSvc, expense.KindBill),
		AuditExpense: appHTTP.NewExpenseHandler(expenseSvc, expense.KindAudit),
		Advance:      appHTTP.NewAdvanceHandler(advanceSvc),
		Payslip:      appHTTP.NewPayslipHandler(payslipSvc),
		Cashbook:     appHTTP.NewCashbookHandler(cashbookSvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
		Notification: appHTTP.NewNotificationHandler(notifSvc, jwtSvc, hub),
		Report:       appHTTP.NewReportHandler(reportSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtSvc, handlers)

	marker := attendanceService.NewAbsentMarker(attendanceRepo, leaveRepo, holidayRepo, logger)
	scheduler := cron.NewScheduler()
	scheduler.AddJob("absent-marker", cfg.App.AbsentMarkerInterval, marker.Run)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", cfg.App.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
}
