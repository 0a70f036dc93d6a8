package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/humbingo/hrms-backend-go/internal/config"
	appHTTP "github.com/humbingo/hrms-backend-go/internal/handler/http"
	"github.com/humbingo/hrms-backend-go/internal/pkg/cron"
	"github.com/humbingo/hrms-backend-go/internal/pkg/database"
	"github.com/humbingo/hrms-backend-go/internal/pkg/email"
	"github.com/humbingo/hrms-backend-go/internal/pkg/jwt"
	"github.com/humbingo/hrms-backend-go/internal/pkg/sse"
	"github.com/humbingo/hrms-backend-go/internal/pkg/storage"
	"github.com/humbingo/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/humbingo/hrms-backend-go/internal/service/attendance"
	authService "github.com/humbingo/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/humbingo/hrms-backend-go/internal/service/dashboard"
	departmentService "github.com/humbingo/hrms-backend-go/internal/service/department"
	employeeService "github.com/humbingo/hrms-backend-go/internal/service/employee"
	leaveService "github.com/humbingo/hrms-backend-go/internal/service/leave"
	salaryService "github.com/humbingo/hrms-backend-go/internal/service/salary"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}
	slipArchive, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		log.Fatal("Failed to initialize slip archive: ", err)
	}
	events := sse.NewHub()

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, emailService, cfg.App)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, events, cfg.HR)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	salarySvc := salaryService.NewSalaryService(salaryRepo, employeeRepo, attendanceRepo, emailService, slipArchive, cfg.HR)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc, events)

	router := appHTTP.NewRouter(
		cfg.App,
		jwtService,
		authHandler,
		employeeHandler,
		departmentHandler,
		attendanceHandler,
		leaveHandler,
		salaryHandler,
		dashboardHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Shutdown error: ", err)
	}
}
