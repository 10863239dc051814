package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"school-backend/internal/auth"
	"school-backend/internal/cache"
	"school-backend/internal/config"
	"school-backend/internal/database"
	"school-backend/internal/db"
	"school-backend/internal/handlers"
	"school-backend/internal/health"
	h "school-backend/internal/http"
	"school-backend/internal/middleware"
	"school-backend/internal/monitoring"
	"school-backend/internal/notify"
	"school-backend/internal/repositories"
	"school-backend/internal/services"
	"school-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer pool.Close()
	log.Printf("Connected to database %s@%s:%d", cfg.Database.Name, cfg.Database.Host, cfg.Database.Port)

	// Redis is optional - login falls back to bcrypt only
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run embedded migrations so the binary works standalone
	migrator := database.NewMigrator(pool, migrations.FS)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	healthChecker := health.NewHealthChecker(pool)

	// Operations dashboard on its own port
	go monitoring.NewServer(pool, cfg.Monitoring.Port).Start()

	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	studentRepo := repositories.NewStudentRepository(pool)
	studentFeeRepo := repositories.NewStudentFeeRepository(pool)
	feeGenRepo := repositories.NewFeeGenerationRepository(pool)
	teacherRepo := repositories.NewTeacherRepository(pool)
	teacherPayRepo := repositories.NewTeacherPayRepository(pool)
	payGenRepo := repositories.NewPayGenerationRepository(pool)
	expenseRepo := repositories.NewExpenseRepository(pool)
	ledgerRepo := repositories.NewLedgerRepository(pool)
	onlineTransactionRepo := repositories.NewOnlineTransactionRepository(pool)

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	feeService := services.NewFeeService(studentFeeRepo, studentRepo)
	studentService := services.NewStudentService(studentRepo, studentFeeRepo)
	feeGenService := services.NewFeeGenerationService(feeGenRepo, studentFeeRepo, studentRepo)
	teacherService := services.NewTeacherService(teacherRepo, teacherPayRepo)
	payrollService := services.NewPayrollService(payGenRepo, teacherPayRepo, teacherRepo)
	expenseService := services.NewExpenseService(expenseRepo)
	ledgerService := services.NewLedgerService(ledgerRepo, studentFeeRepo, teacherPayRepo, expenseRepo)
	dashboardService := services.NewDashboardService(pool)
	receiptService := services.NewReceiptService(cfg.Server.SchoolName, studentFeeRepo, studentRepo)
	razorpayService := services.NewRazorpayService(&cfg.Razorpay, onlineTransactionRepo, feeService)

	// Fee reminder SMS provider falls back to log-only when no key is set
	var smsProvider notify.SMSProvider
	if apiKey := os.Getenv("FAST2SMS_API_KEY"); apiKey != "" {
		smsProvider = notify.NewFast2SMSService(apiKey)
	} else {
		log.Println("[Reminder] FAST2SMS_API_KEY not set, reminders will only print to logs")
		smsProvider = notify.NewMockSMSService()
	}
	reminderService := notify.NewFeeReminderService(studentRepo, smsProvider)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	studentHandler := handlers.NewStudentHandler(studentService)
	studentFeeHandler := handlers.NewStudentFeeHandler(feeService, receiptService)
	feeGenHandler := handlers.NewFeeGenerationHandler(feeGenService)
	teacherHandler := handlers.NewTeacherHandler(teacherService)
	teacherPayHandler := handlers.NewTeacherPayHandler(payrollService)
	payGenHandler := handlers.NewPayGenerationHandler(payrollService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	razorpayHandler := handlers.NewRazorpayHandler(razorpayService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler,
		userHandler,
		studentHandler,
		studentFeeHandler,
		feeGenHandler,
		teacherHandler,
		teacherPayHandler,
		payGenHandler,
		expenseHandler,
		ledgerHandler,
		dashboardHandler,
		razorpayHandler,
		reminderHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
