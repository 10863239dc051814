package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"school-backend/internal/handlers"
	"school-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	studentHandler *handlers.StudentHandler,
	studentFeeHandler *handlers.StudentFeeHandler,
	feeGenerationHandler *handlers.FeeGenerationHandler,
	teacherHandler *handlers.TeacherHandler,
	teacherPayHandler *handlers.TeacherPayHandler,
	payGenerationHandler *handlers.PayGenerationHandler,
	expenseHandler *handlers.ExpenseHandler,
	ledgerHandler *handlers.LedgerHandler,
	dashboardHandler *handlers.DashboardHandler,
	razorpayHandler *handlers.RazorpayHandler,
	reminderHandler *handlers.ReminderHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Public API routes - Razorpay webhook (authenticated by signature, not JWT)
	r.HandleFunc("/api/payments/webhook", razorpayHandler.HandleWebhook).Methods("POST")
	r.HandleFunc("/api/payments/status", razorpayHandler.GetStatus).Methods("GET")

	// Protected API routes - Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.ListUsers)).ServeHTTP).Methods("GET")
	usersAPI.HandleFunc("", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.CreateUser)).ServeHTTP).Methods("POST")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.GetUser)).ServeHTTP).Methods("GET")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.UpdateUser)).ServeHTTP).Methods("PUT")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.DeleteUser)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Students
	studentsAPI := r.PathPrefix("/api/students").Subrouter()
	studentsAPI.Use(authMiddleware.Authenticate)
	studentsAPI.HandleFunc("", studentHandler.ListStudents).Methods("GET")
	studentsAPI.HandleFunc("", studentHandler.AdmitStudent).Methods("POST")
	studentsAPI.HandleFunc("/{roll_no}", studentHandler.GetStudent).Methods("GET")
	studentsAPI.HandleFunc("/{roll_no}", studentHandler.UpdateStudent).Methods("PUT")
	studentsAPI.HandleFunc("/{roll_no}", authMiddleware.RequireRole("admin")(http.HandlerFunc(studentHandler.DeleteStudent)).ServeHTTP).Methods("DELETE")
	studentsAPI.HandleFunc("/{roll_no}/graduate", studentHandler.GraduateStudent).Methods("POST")
	studentsAPI.HandleFunc("/{roll_no}/statement", studentFeeHandler.GetStatement).Methods("GET")

	// Protected API routes - Alumni
	alumniAPI := r.PathPrefix("/api/alumni").Subrouter()
	alumniAPI.Use(authMiddleware.Authenticate)
	alumniAPI.HandleFunc("", studentHandler.ListAlumni).Methods("GET")

	// Protected API routes - Student Fees
	feesAPI := r.PathPrefix("/api/fees").Subrouter()
	feesAPI.Use(authMiddleware.Authenticate)
	feesAPI.HandleFunc("", studentFeeHandler.ListFees).Methods("GET")
	feesAPI.HandleFunc("", studentFeeHandler.RecordFee).Methods("POST")
	feesAPI.HandleFunc("/{id}", studentFeeHandler.GetFee).Methods("GET")
	feesAPI.HandleFunc("/{id}", studentFeeHandler.UpdateFee).Methods("PUT")
	feesAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(studentFeeHandler.DeleteFee)).ServeHTTP).Methods("DELETE")
	feesAPI.HandleFunc("/{id}/receipt", studentFeeHandler.GetReceipt).Methods("GET")

	// Protected API routes - Fee Generation
	feeGenAPI := r.PathPrefix("/api/fee-generations").Subrouter()
	feeGenAPI.Use(authMiddleware.Authenticate)
	feeGenAPI.HandleFunc("", feeGenerationHandler.ListGenerations).Methods("GET")
	feeGenAPI.HandleFunc("", feeGenerationHandler.Generate).Methods("POST")
	feeGenAPI.HandleFunc("/{serial}", feeGenerationHandler.GetGeneration).Methods("GET")

	// Protected API routes - Teachers
	teachersAPI := r.PathPrefix("/api/teachers").Subrouter()
	teachersAPI.Use(authMiddleware.Authenticate)
	teachersAPI.HandleFunc("", teacherHandler.ListTeachers).Methods("GET")
	teachersAPI.HandleFunc("", teacherHandler.HireTeacher).Methods("POST")
	teachersAPI.HandleFunc("/{id}", teacherHandler.GetTeacher).Methods("GET")
	teachersAPI.HandleFunc("/{id}", teacherHandler.UpdateTeacher).Methods("PUT")
	teachersAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(teacherHandler.DeleteTeacher)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Teacher Pays
	paysAPI := r.PathPrefix("/api/pays").Subrouter()
	paysAPI.Use(authMiddleware.Authenticate)
	paysAPI.HandleFunc("", teacherPayHandler.ListPays).Methods("GET")
	paysAPI.HandleFunc("", teacherPayHandler.RecordPay).Methods("POST")
	paysAPI.HandleFunc("/{id}", teacherPayHandler.GetPay).Methods("GET")
	paysAPI.HandleFunc("/{id}", teacherPayHandler.UpdatePay).Methods("PUT")
	paysAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(teacherPayHandler.DeletePay)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Pay Generation
	payGenAPI := r.PathPrefix("/api/pay-generations").Subrouter()
	payGenAPI.Use(authMiddleware.Authenticate)
	payGenAPI.HandleFunc("", payGenerationHandler.ListGenerations).Methods("GET")
	payGenAPI.HandleFunc("", payGenerationHandler.Generate).Methods("POST")
	payGenAPI.HandleFunc("/{id}", payGenerationHandler.GetGeneration).Methods("GET")
	payGenAPI.HandleFunc("/{id}", payGenerationHandler.UpdateGeneration).Methods("PUT")
	payGenAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(payGenerationHandler.DeleteGeneration)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Expenses
	expensesAPI := r.PathPrefix("/api/expenses").Subrouter()
	expensesAPI.Use(authMiddleware.Authenticate)
	expensesAPI.HandleFunc("", expenseHandler.ListExpenses).Methods("GET")
	expensesAPI.HandleFunc("", expenseHandler.RecordExpense).Methods("POST")
	expensesAPI.HandleFunc("/{id}", expenseHandler.GetExpense).Methods("GET")
	expensesAPI.HandleFunc("/{id}", expenseHandler.UpdateExpense).Methods("PUT")
	expensesAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(expenseHandler.DeleteExpense)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Ledger
	ledgerAPI := r.PathPrefix("/api/ledger").Subrouter()
	ledgerAPI.Use(authMiddleware.Authenticate)
	ledgerAPI.HandleFunc("", ledgerHandler.ListEntries).Methods("GET")
	ledgerAPI.HandleFunc("/populate", ledgerHandler.Populate).Methods("POST")
	ledgerAPI.HandleFunc("/breakdown", ledgerHandler.GetBreakdown).Methods("GET")
	ledgerAPI.HandleFunc("/{id}", ledgerHandler.GetEntry).Methods("GET")
	ledgerAPI.HandleFunc("/{id}", ledgerHandler.UpdateEntry).Methods("PUT")
	ledgerAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(ledgerHandler.DeleteEntry)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Dashboard
	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("/summary", dashboardHandler.GetSummary).Methods("GET")

	// Protected API routes - Online Payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("/create-order", razorpayHandler.CreateOrder).Methods("POST")
	paymentsAPI.HandleFunc("/verify", razorpayHandler.VerifyPayment).Methods("POST")
	paymentsAPI.HandleFunc("/transactions", razorpayHandler.ListTransactions).Methods("GET")

	// Protected API routes - Fee Reminders
	remindersAPI := r.PathPrefix("/api/reminders").Subrouter()
	remindersAPI.Use(authMiddleware.Authenticate)
	remindersAPI.HandleFunc("/fees", reminderHandler.SendFeeReminders).Methods("POST")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
