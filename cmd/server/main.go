package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"portfolio-backend/auth"
	"portfolio-backend/handlers"
	"portfolio-backend/repository"
	"portfolio-backend/service"
	"portfolio-backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	db, err := initPostgres()
	if err != nil {
		log.Fatal("Failed to initialize Postgres:", err)
	}
	defer db.Close()

	fileStorage, err := storage.NewStorageFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Println("Storage initialized")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}
	tokens := auth.NewTokenManager(secret, auth.DefaultTTL)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	socialLinkRepo := repository.NewSocialLinkRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	screenshotRepo := repository.NewScreenshotRepository(db)
	experienceRepo := repository.NewExperienceRepository(db)
	educationRepo := repository.NewEducationRepository(db)
	certificationRepo := repository.NewCertificationRepository(db)
	blogPostRepo := repository.NewBlogPostRepository(db)
	keyFactRepo := repository.NewKeyFactRepository(db)
	contactMessageRepo := repository.NewContactMessageRepository(db)
	resumeDownloadRepo := repository.NewResumeDownloadRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	mediaAssetRepo := repository.NewMediaAssetRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	siteSettingRepo := repository.NewSiteSettingRepository(db)
	appSettingRepo := repository.NewAppSettingRepository(db)
	navigationPrefRepo := repository.NewNavigationPrefRepository(db)

	// Services
	authService := service.NewAuthService(
		service.WithUserStore(userRepo),
		service.WithTokenManager(tokens),
	)
	resumeService := service.NewResumeService(
		service.ResumeWithProfileStore(userRepo),
		service.ResumeWithDownloadLog(resumeDownloadRepo),
		service.ResumeWithStorage(fileStorage),
	)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userRepo, handlers.ProfileSources{
		Skills:         skillRepo,
		Projects:       projectRepo,
		Experiences:    experienceRepo,
		Education:      educationRepo,
		Certifications: certificationRepo,
		KeyFacts:       keyFactRepo,
		SocialLinks:    socialLinkRepo,
		Testimonials:   testimonialRepo,
	})
	socialLinkHandler := handlers.NewSocialLinkHandler(socialLinkRepo)
	skillHandler := handlers.NewSkillHandler(skillRepo)
	projectHandler := handlers.NewProjectHandler(projectRepo, screenshotRepo)
	experienceHandler := handlers.NewExperienceHandler(experienceRepo)
	educationHandler := handlers.NewEducationHandler(educationRepo)
	certificationHandler := handlers.NewCertificationHandler(certificationRepo)
	blogPostHandler := handlers.NewBlogPostHandler(blogPostRepo)
	keyFactHandler := handlers.NewKeyFactHandler(keyFactRepo)
	contactMessageHandler := handlers.NewContactMessageHandler(contactMessageRepo)
	resumeHandler := handlers.NewResumeHandler(resumeService, resumeDownloadRepo)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialRepo)
	mediaHandler := handlers.NewMediaHandler(mediaAssetRepo, fileStorage)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsRepo)
	settingsHandler := handlers.NewSettingsHandler(siteSettingRepo, appSettingRepo, navigationPrefRepo)

	r := gin.Default()
	r.Use(corsMiddleware())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")

	// Public routes: reads plus the anonymous write paths (contact form,
	// visit tracking).
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	api.POST("/page-visits", analyticsHandler.CreatePageVisit)
	api.POST("/section-visits", analyticsHandler.CreateSectionVisit)

	users := api.Group("/users/:user_id")
	users.GET("", userHandler.GetProfile)
	users.GET("/social-media-links", socialLinkHandler.ListSocialLinks)
	users.GET("/social-media-links/:id", socialLinkHandler.GetSocialLink)
	users.GET("/skills", skillHandler.ListSkills)
	users.GET("/skills/:id", skillHandler.GetSkill)
	users.GET("/projects", projectHandler.ListProjects)
	users.GET("/projects/:id", projectHandler.GetProject)
	users.GET("/projects/:id/screenshots", projectHandler.ListScreenshots)
	users.GET("/projects/:id/screenshots/:screenshot_id", projectHandler.GetScreenshot)
	users.GET("/experiences", experienceHandler.ListExperiences)
	users.GET("/experiences/:id", experienceHandler.GetExperience)
	users.GET("/education", educationHandler.ListEducation)
	users.GET("/education/:id", educationHandler.GetEducation)
	users.GET("/certifications", certificationHandler.ListCertifications)
	users.GET("/certifications/:id", certificationHandler.GetCertification)
	users.GET("/blog-posts", blogPostHandler.ListBlogPosts)
	users.GET("/blog-posts/:id", blogPostHandler.GetBlogPost)
	users.GET("/blog-posts/slug/:slug", blogPostHandler.GetBlogPostBySlug)
	users.GET("/key-facts", keyFactHandler.ListKeyFacts)
	users.GET("/key-facts/:id", keyFactHandler.GetKeyFact)
	users.GET("/testimonials", testimonialHandler.ListTestimonials)
	users.GET("/testimonials/:id", testimonialHandler.GetTestimonial)
	users.GET("/site-settings", settingsHandler.GetSiteSetting)
	users.POST("/contact-messages", contactMessageHandler.CreateContactMessage)

	// Protected routes: every other mutation and the owner-only reads.
	protected := api.Group("")
	protected.Use(auth.Middleware(tokens, userRepo))

	protected.GET("/page-visits", analyticsHandler.ListPageVisits)
	protected.GET("/page-visits/stats", analyticsHandler.GetPageVisitStats)
	protected.GET("/section-visits", analyticsHandler.ListSectionVisits)
	protected.GET("/section-visits/stats", analyticsHandler.GetSectionVisitStats)

	owner := protected.Group("/users/:user_id")
	owner.PATCH("", userHandler.UpdateUser)

	owner.POST("/social-media-links", socialLinkHandler.CreateSocialLink)
	owner.PATCH("/social-media-links/:id", socialLinkHandler.UpdateSocialLink)
	owner.DELETE("/social-media-links/:id", socialLinkHandler.DeleteSocialLink)

	owner.POST("/skills", skillHandler.CreateSkill)
	owner.PATCH("/skills/:id", skillHandler.UpdateSkill)
	owner.DELETE("/skills/:id", skillHandler.DeleteSkill)

	owner.POST("/projects", projectHandler.CreateProject)
	owner.PATCH("/projects/:id", projectHandler.UpdateProject)
	owner.DELETE("/projects/:id", projectHandler.DeleteProject)
	owner.POST("/projects/:id/screenshots", projectHandler.CreateScreenshot)
	owner.PATCH("/projects/:id/screenshots/:screenshot_id", projectHandler.UpdateScreenshot)
	owner.DELETE("/projects/:id/screenshots/:screenshot_id", projectHandler.DeleteScreenshot)

	owner.POST("/experiences", experienceHandler.CreateExperience)
	owner.PATCH("/experiences/:id", experienceHandler.UpdateExperience)
	owner.DELETE("/experiences/:id", experienceHandler.DeleteExperience)

	owner.POST("/education", educationHandler.CreateEducation)
	owner.PATCH("/education/:id", educationHandler.UpdateEducation)
	owner.DELETE("/education/:id", educationHandler.DeleteEducation)

	owner.POST("/certifications", certificationHandler.CreateCertification)
	owner.PATCH("/certifications/:id", certificationHandler.UpdateCertification)
	owner.DELETE("/certifications/:id", certificationHandler.DeleteCertification)

	owner.POST("/blog-posts", blogPostHandler.CreateBlogPost)
	owner.PATCH("/blog-posts/:id", blogPostHandler.UpdateBlogPost)
	owner.DELETE("/blog-posts/:id", blogPostHandler.DeleteBlogPost)

	owner.POST("/key-facts", keyFactHandler.CreateKeyFact)
	owner.PATCH("/key-facts/:id", keyFactHandler.UpdateKeyFact)
	owner.DELETE("/key-facts/:id", keyFactHandler.DeleteKeyFact)

	owner.POST("/testimonials", testimonialHandler.CreateTestimonial)
	owner.PATCH("/testimonials/:id", testimonialHandler.UpdateTestimonial)
	owner.DELETE("/testimonials/:id", testimonialHandler.DeleteTestimonial)

	owner.GET("/contact-messages", contactMessageHandler.ListContactMessages)
	owner.GET("/contact-messages/:id", contactMessageHandler.GetContactMessage)
	owner.PATCH("/contact-messages/:id", contactMessageHandler.UpdateContactMessage)
	owner.DELETE("/contact-messages/:id", contactMessageHandler.DeleteContactMessage)

	owner.POST("/resume-downloads", resumeHandler.GenerateResume)
	owner.GET("/resume-downloads", resumeHandler.ListResumeDownloads)
	owner.GET("/resume-downloads/:id", resumeHandler.GetResumeDownload)

	owner.POST("/media-assets", mediaHandler.UploadMediaAsset)
	owner.GET("/media-assets", mediaHandler.ListMediaAssets)
	owner.GET("/media-assets/:id", mediaHandler.GetMediaAsset)
	owner.GET("/media-assets/:id/content", mediaHandler.DownloadMediaAsset)
	owner.PATCH("/media-assets/:id", mediaHandler.UpdateMediaAsset)
	owner.DELETE("/media-assets/:id", mediaHandler.DeleteMediaAsset)

	owner.POST("/site-settings", settingsHandler.CreateSiteSetting)
	owner.PATCH("/site-settings", settingsHandler.UpdateSiteSetting)
	owner.DELETE("/site-settings", settingsHandler.DeleteSiteSetting)

	owner.POST("/app-settings", settingsHandler.CreateAppSetting)
	owner.GET("/app-settings", settingsHandler.GetAppSetting)
	owner.PATCH("/app-settings", settingsHandler.UpdateAppSetting)
	owner.DELETE("/app-settings", settingsHandler.DeleteAppSetting)

	owner.POST("/navigation-preferences", settingsHandler.CreateNavigationPref)
	owner.GET("/navigation-preferences", settingsHandler.GetNavigationPref)
	owner.PATCH("/navigation-preferences", settingsHandler.UpdateNavigationPref)
	owner.DELETE("/navigation-preferences", settingsHandler.DeleteNavigationPref)

	registerSPA(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func initPostgres() (*pgxpool.Pool, error) {
	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		host := getenv("DB_HOST", "localhost")
		port := getenv("DB_PORT", "5432")
		user := getenv("DB_USER", "postgres")
		password := getenv("DB_PASSWORD", "postgres")
		name := getenv("DB_NAME", "portfolio")
		connString = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			user, password, host, port, name)
	}

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Postgres connection established")
	return pool, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if origin := os.Getenv("FRONTEND_URL"); origin != "" {
		cfg.AllowOrigins = []string{origin}
	} else {
		cfg.AllowAllOrigins = true
	}
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	return cors.New(cfg)
}

// registerSPA serves the built frontend for every non-API GET. Unknown paths
// fall back to index.html so client-side routing works on refresh.
func registerSPA(r *gin.Engine) {
	staticDir := os.Getenv("STATIC_DIR")

	r.NoRoute(func(c *gin.Context) {
		if staticDir == "" || strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"success":    false,
				"message":    "Route not found",
				"error_code": "ROUTE_NOT_FOUND",
				"timestamp":  time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusMethodNotAllowed)
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	})
}
