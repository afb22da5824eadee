package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-api/cmd/api/auth"
	"portfolio-api/cmd/api/handlers"
	"portfolio-api/cmd/api/middleware"
	"portfolio-api/cmd/api/services"
	"portfolio-api/config"
	"portfolio-api/cv"
	_ "portfolio-api/docs"
	"portfolio-api/repositories"
)

// New wires repositories, services and handlers onto a gin engine.
func New(database *mongo.Database, jwtManager *auth.JWTManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogging())
	r.Use(middleware.CORS(config.GetConfig().CORS.Origins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	userRepo := repositories.NewUserRepository(database)
	skillRepo := repositories.NewSkillRepository(database)
	languageRepo := repositories.NewLanguageRepository(database)
	educationRepo := repositories.NewEducationRepository(database)
	experienceRepo := repositories.NewExperienceRepository(database)
	projectRepo := repositories.NewProjectRepository(database)
	socialLinkRepo := repositories.NewSocialLinkRepository(database)

	authSvc := services.NewAuthService(userRepo, jwtManager)
	userSvc := services.NewUserService(userRepo)
	skillSvc := services.NewSkillService(skillRepo)
	languageSvc := services.NewLanguageService(languageRepo)
	educationSvc := services.NewEducationService(educationRepo)
	experienceSvc := services.NewExperienceService(experienceRepo)
	projectSvc := services.NewProjectService(projectRepo)
	socialLinkSvc := services.NewSocialLinkService(socialLinkRepo)

	generator := cv.NewGenerator(cv.Stores{
		Profiles:   userRepo,
		Skills:     skillRepo,
		Languages:  languageRepo,
		Education:  educationRepo,
		Experience: experienceRepo,
		Projects:   projectRepo,
	}, cv.NewTemplateStore(config.TemplatesDir()), cv.NewChromeCompositor())

	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", handlers.RegisterHandler(authSvc))
		api.POST("/auth/login", handlers.LoginHandler(authSvc))

		api.GET("/users/:id/public", handlers.GetPublicProfileHandler(userSvc))

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(authSvc))
		{
			authed.GET("/users/me", handlers.GetMyInfoHandler(userSvc))
			authed.PATCH("/users/me", handlers.UpdateBasicInfoHandler(userSvc))

			authed.POST("/skills", handlers.CreateSkillHandler(skillSvc))
			authed.GET("/skills", handlers.ListSkillsHandler(skillSvc))
			authed.GET("/skills/categories", handlers.ListSkillCategoriesHandler(skillSvc))
			authed.PATCH("/skills/:id", handlers.UpdateSkillHandler(skillSvc))
			authed.POST("/skills/:id/hide", handlers.HideSkillHandler(skillSvc))
			authed.POST("/skills/:id/recover", handlers.RecoverSkillHandler(skillSvc))
			authed.DELETE("/skills/:id", handlers.DeleteSkillHandler(skillSvc))

			authed.POST("/languages", handlers.CreateLanguageHandler(languageSvc))
			authed.GET("/languages", handlers.ListLanguagesHandler(languageSvc))
			authed.PATCH("/languages/:id", handlers.UpdateLanguageHandler(languageSvc))
			authed.POST("/languages/:id/hide", handlers.HideLanguageHandler(languageSvc))
			authed.POST("/languages/:id/recover", handlers.RecoverLanguageHandler(languageSvc))
			authed.DELETE("/languages/:id", handlers.DeleteLanguageHandler(languageSvc))

			authed.POST("/education", handlers.CreateEducationHandler(educationSvc))
			authed.GET("/education", handlers.ListEducationHandler(educationSvc))
			authed.PATCH("/education/:id", handlers.UpdateEducationHandler(educationSvc))
			authed.POST("/education/:id/hide", handlers.HideEducationHandler(educationSvc))
			authed.POST("/education/:id/recover", handlers.RecoverEducationHandler(educationSvc))
			authed.DELETE("/education/:id", handlers.DeleteEducationHandler(educationSvc))

			authed.POST("/experiences", handlers.CreateExperienceHandler(experienceSvc))
			authed.GET("/experiences", handlers.ListExperiencesHandler(experienceSvc))
			authed.PATCH("/experiences/:id", handlers.UpdateExperienceHandler(experienceSvc))
			authed.POST("/experiences/:id/hide", handlers.HideExperienceHandler(experienceSvc))
			authed.POST("/experiences/:id/recover", handlers.RecoverExperienceHandler(experienceSvc))
			authed.DELETE("/experiences/:id", handlers.DeleteExperienceHandler(experienceSvc))

			authed.POST("/projects", handlers.CreateProjectHandler(projectSvc))
			authed.GET("/projects", handlers.ListProjectsHandler(projectSvc))
			authed.PATCH("/projects/:id", handlers.UpdateProjectHandler(projectSvc))
			authed.POST("/projects/:id/hide", handlers.HideProjectHandler(projectSvc))
			authed.POST("/projects/:id/recover", handlers.RecoverProjectHandler(projectSvc))
			authed.DELETE("/projects/:id", handlers.DeleteProjectHandler(projectSvc))

			authed.POST("/social-links", handlers.CreateSocialLinkHandler(socialLinkSvc))
			authed.GET("/social-links", handlers.ListSocialLinksHandler(socialLinkSvc))
			authed.PATCH("/social-links/:id", handlers.UpdateSocialLinkHandler(socialLinkSvc))
			authed.POST("/social-links/:id/hide", handlers.HideSocialLinkHandler(socialLinkSvc))
			authed.POST("/social-links/:id/recover", handlers.RecoverSocialLinkHandler(socialLinkSvc))
			authed.DELETE("/social-links/:id", handlers.DeleteSocialLinkHandler(socialLinkSvc))

			authed.POST("/cv", handlers.GenerateCVHandler(generator))
		}
	}

	return r
}
