package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/config"
	"github.com/coachdesk/coachdesk-api/database"
	"github.com/coachdesk/coachdesk-api/handlers"
	auth_handlers "github.com/coachdesk/coachdesk-api/handlers/auth"
	course_handlers "github.com/coachdesk/coachdesk-api/handlers/course"
	dashboard_handlers "github.com/coachdesk/coachdesk-api/handlers/dashboard"
	enquiry_handlers "github.com/coachdesk/coachdesk-api/handlers/enquiry"
	importer_handlers "github.com/coachdesk/coachdesk-api/handlers/importer"
	payment_handlers "github.com/coachdesk/coachdesk-api/handlers/payment"
	report_handlers "github.com/coachdesk/coachdesk-api/handlers/report"
	student_handlers "github.com/coachdesk/coachdesk-api/handlers/student"
	user_handlers "github.com/coachdesk/coachdesk-api/handlers/user"
	"github.com/coachdesk/coachdesk-api/utils/auth"
	"github.com/coachdesk/coachdesk-api/utils/cache"
	"github.com/coachdesk/coachdesk-api/utils/middleware"
)

// SetupRoutes wires every handler onto the fiber app
func SetupRoutes(app *fiber.App, store database.Storage) {
	getEnv, err := config.Get()
	if err != nil {
		log.Fatal("Failed to load configuration")
	}
	if getEnv.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := getEnv.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "coachdesk-api"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret:        getEnv.JWT_SECRET,
		Expiry:        24 * time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        jwtIssuer,
	})

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Redis-backed login lockout; the panel works without it
	var bruteForceProtection *middleware.BruteForceProtection
	if getEnv.REDIS_URL != "" {
		redisCache, err := cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			log.Printf("Warning: failed to connect to Redis: %v. Login rate limiting disabled.", err)
		} else {
			bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
		}
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)
	userHandler := user_handlers.NewUserHandler(db)
	courseHandler := course_handlers.NewCourseHandler(db)
	studentHandler := student_handlers.NewStudentHandler(db)
	paymentHandler := payment_handlers.NewPaymentHandler(db)
	enquiryHandler := enquiry_handlers.NewEnquiryHandler(db)
	reportHandler := report_handlers.NewReportHandler(db)
	dashboardHandler := dashboard_handlers.NewDashboardHandler(db)
	importHandler := importer_handlers.NewImportHandler(db)

	// Health
	app.Get("/health", func(c *fiber.Ctx) error {
		return handlers.HandleCheckHealth(c, store)
	})

	v1 := app.Group("/api/v1")

	// Auth
	authGroup := v1.Group("/auth")
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckLockout(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/refresh", authHandler.Refresh)

	// Everything below requires a valid token
	required := authMiddleware.Required()
	admin := middleware.RequireAdmin()

	// Users (admin only)
	users := v1.Group("/users", required, admin)
	users.Get("/", userHandler.ListUsers)
	users.Post("/", userHandler.CreateUser)
	users.Delete("/:id", userHandler.DeleteUser)
	users.Put("/:id/password", userHandler.UpdatePassword)

	// Courses (catalog edits are admin only)
	courses := v1.Group("/courses", required)
	courses.Get("/", courseHandler.ListCourses)
	courses.Get("/:id", courseHandler.GetCourse)
	courses.Post("/", admin, courseHandler.CreateCourse)
	courses.Put("/:id", admin, courseHandler.UpdateCourse)
	courses.Delete("/:id", admin, courseHandler.DeleteCourse)

	// Students
	students := v1.Group("/students", required)
	students.Get("/", studentHandler.ListStudents)
	students.Get("/:id", studentHandler.GetStudent)
	students.Get("/:id/ledger", studentHandler.GetLedger)
	students.Post("/", studentHandler.AdmitStudent)
	students.Post("/:id/enrollments", studentHandler.AddEnrollment)
	students.Delete("/:id", admin, studentHandler.DeleteStudent)

	// Payments (append-only, no delete route)
	payments := v1.Group("/payments", required)
	payments.Get("/", paymentHandler.ListPayments)
	payments.Post("/", paymentHandler.RecordPayment)
	payments.Put("/:id", paymentHandler.AmendPayment)

	// Enquiries
	enquiries := v1.Group("/enquiries", required)
	enquiries.Get("/", enquiryHandler.ListEnquiries)
	enquiries.Post("/", enquiryHandler.CreateEnquiry)
	enquiries.Delete("/:id", enquiryHandler.DeleteEnquiry)
	enquiries.Post("/:id/convert", enquiryHandler.ConvertEnquiry)

	// Reports and dashboard
	reports := v1.Group("/reports", required)
	reports.Get("/payments", reportHandler.Payments)
	reports.Get("/balances", reportHandler.Balances)
	reports.Get("/dues", reportHandler.Dues)
	v1.Get("/dashboard", required, dashboardHandler.Get)

	// Legacy data import (admin only)
	v1.Post("/import/legacy", required, admin, importHandler.ImportLegacy)
}
