package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Aradhyakapil/food-safe/internal/auth"
	"github.com/Aradhyakapil/food-safe/internal/business"
	"github.com/Aradhyakapil/food-safe/internal/compliance"
	"github.com/Aradhyakapil/food-safe/internal/consumer"
	"github.com/Aradhyakapil/food-safe/internal/db"
	"github.com/Aradhyakapil/food-safe/internal/facility"
	"github.com/Aradhyakapil/food-safe/internal/middleware"
	"github.com/Aradhyakapil/food-safe/internal/onboarding"
	"github.com/Aradhyakapil/food-safe/internal/storage"
	"github.com/Aradhyakapil/food-safe/internal/team"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	businessRepo := business.NewPostgresRepository(pgDB)
	teamRepo := team.NewPostgresRepository(pgDB)
	facilityRepo := facility.NewPostgresRepository(pgDB)
	complianceRepo := compliance.NewPostgresRepository(pgDB)
	consumerRepo := consumer.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	businessService := business.NewService(businessRepo)
	consumerService := consumer.NewService(consumerRepo)

	onboardingService := onboarding.NewService(
		businessRepo,
		teamRepo,
		facilityRepo,
		r2Client,
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	businessHandler := business.NewHandler(businessService)
	consumerHandler := consumer.NewHandler(consumerService)
	onboardingHandler := onboarding.NewHandler(onboardingService)
	teamHandler := team.NewHandler(teamRepo)
	facilityHandler := facility.NewHandler(facilityRepo)
	complianceHandler := compliance.NewHandler(complianceRepo)

	// ───────────────────────── CONSUMER ROUTES ─────────────────────────
	consumers := r.Group("/consumer")
	{
		consumers.POST("/register", consumerHandler.Register)
		consumers.POST("/login", consumerHandler.Login)
	}

	// ───────────────────────── BUSINESS ROUTES ─────────────────────────
	businesses := r.Group("/business")
	{
		// Onboarding is the creation path for the login credential pair,
		// so it cannot sit behind business auth.
		businesses.POST("/onboard", onboardingHandler.Onboard)
		businesses.POST("/login", businessHandler.Login)
		businesses.GET("/verify/:license", businessHandler.VerifyByLicense)
		businesses.GET("/:id", businessHandler.Get)

		// Public safety record
		businesses.GET("/:id/hygiene-ratings", complianceHandler.ListHygieneRatings)
		businesses.GET("/:id/certifications", complianceHandler.ListCertifications)
		businesses.GET("/:id/lab-reports", complianceHandler.ListLabReports)
		businesses.GET("/:id/team-members", teamHandler.List)
		businesses.GET("/:id/facility-photos", facilityHandler.List)
		businesses.GET("/:id/reviews", complianceHandler.ListReviews)
	}

	protected := r.Group("/business")
	protected.Use(middleware.AuthMiddleware(), middleware.RequireActor(auth.ActorBusiness))
	{
		protected.PUT("/:id", businessHandler.Update)
		protected.POST("/:id/certifications", complianceHandler.CreateCertification)
		protected.POST("/:id/lab-reports", complianceHandler.CreateLabReport)
		protected.POST("/:id/team-members", teamHandler.Create)
		protected.POST("/:id/facility-photos", facilityHandler.Create)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
