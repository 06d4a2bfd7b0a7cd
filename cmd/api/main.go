package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"motortrack/internal/database"
	"motortrack/internal/middleware"
	"motortrack/internal/modules/company"
	"motortrack/internal/modules/dashboard"
	"motortrack/internal/modules/invoice"
	"motortrack/internal/modules/job"
	"motortrack/internal/modules/motor"
	"motortrack/internal/modules/report"
	"motortrack/internal/modules/user"
	"motortrack/internal/modules/warranty"
	"motortrack/internal/repository"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	companyRepo := repository.NewCompanyRepository(db)
	motorRepo := repository.NewMotorRepository(db)
	jobRepo := repository.NewJobRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	warrantyRepo := repository.NewWarrantyRepository(db)
	userRepo := repository.NewUserRepository(db)

	companyService := company.NewService(companyRepo)
	companyHandler := company.NewHandler(companyService)

	motorService := motor.NewService(motorRepo, companyService)
	motorHandler := motor.NewHandler(motorService)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	jobService := job.NewService(jobRepo, companyService, motorService, userService)
	jobHandler := job.NewHandler(jobService)

	invoiceService := invoice.NewService(invoiceRepo, companyService, jobService)
	invoiceHandler := invoice.NewHandler(invoiceService)

	warrantyService := warranty.NewService(warrantyRepo, companyService, motorService, jobService)
	warrantyHandler := warranty.NewHandler(warrantyService)

	dashboardService := dashboard.NewService(companyService, jobService, invoiceService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	reportService := report.NewService(companyService, motorService, jobService, invoiceService, userService)
	reportHandler := report.NewHandler(reportService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	limiter := middleware.NewIPRateLimiter(rate.Limit(envFloat("RATE_LIMIT_PER_SEC", 20)), 40)
	r.Use(middleware.RateLimit(limiter))

	cacheTTL := time.Duration(envInt("CACHE_TTL_SECONDS", 30)) * time.Second
	responseCache := gocache.New(cacheTTL, 2*cacheTTL)

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		cached := v1.Group("/")
		cached.Use(middleware.Cache(responseCache, cacheTTL))
		{
			dashboard.RegisterRoutes(cached, dashboardHandler)
			report.RegisterRoutes(cached, reportHandler)
		}

		company.RegisterRoutes(v1, companyHandler)
		motor.RegisterRoutes(v1, motorHandler)
		job.RegisterRoutes(v1, jobHandler)
		invoice.RegisterRoutes(v1, invoiceHandler)
		warranty.RegisterRoutes(v1, warrantyHandler)
		user.RegisterRoutes(v1, userHandler)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
