package routes

import (
	"html/template"

	"github.com/jaiohri/Portfolio/admin"
	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/controllers"
	"github.com/jaiohri/Portfolio/middleware"
	"github.com/jaiohri/Portfolio/services"
	"github.com/jaiohri/Portfolio/services/container"
	"github.com/jaiohri/Portfolio/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.SetFuncMap(template.FuncMap{
		"markdown": utils.RenderMarkdown,
	})
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	// Uploaded images
	r.Static("/media", cfg.MediaRoot)

	// Cookie sessions back both the identity and the flash notices
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("portfolio_session", store))

	// Create the service container
	serviceContainer := container.NewServiceContainer(db, cfg)

	// Initialize the auth middleware and resolve the identity once per
	// request; anonymous visitors become the shared guest account
	middleware.InitAuthMiddleware(serviceContainer.GetService("auth").(services.InterfaceAuthService))
	r.Use(middleware.ResolveIdentity())

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	registerPublicRoutes(r, container)
	registerExperienceRoutes(r, container)
	registerConsoleRoutes(r, container)
}

// registerPublicRoutes registers the public pages and the auth flow
func registerPublicRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	r.GET("/", controllers.HandlePageFunc(container, "home"))
	r.GET("/about/", controllers.HandlePageFunc(container, "about"))
	r.GET("/portfolio/", controllers.HandlePageFunc(container, "portfolio"))
	r.GET("/contact/", controllers.HandlePageFunc(container, "contact"))
	r.POST("/contact/", controllers.HandlePageFunc(container, "contact"))
	r.GET("/favicon.ico", controllers.HandlePageFunc(container, "favicon"))

	r.GET("/login/", controllers.HandleAuthFunc(container, "login"))
	r.POST("/login/", controllers.HandleAuthFunc(container, "login"))
	r.GET("/logout/", controllers.HandleAuthFunc(container, "logout"))
}

// registerExperienceRoutes registers the experience management pages.
// These evaluate the admin predicate inside the handlers so that a
// failed check can soft-redirect instead of erroring.
func registerExperienceRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	r.GET("/experiences/", controllers.HandleExperienceFunc(container, "list"))
	r.GET("/experiences/add/", controllers.HandleExperienceFunc(container, "add"))
	r.POST("/experiences/add/", controllers.HandleExperienceFunc(container, "add"))
	r.GET("/experiences/:id/edit/", controllers.HandleExperienceFunc(container, "edit"))
	r.POST("/experiences/:id/edit/", controllers.HandleExperienceFunc(container, "edit"))
	// Deletion tolerates GET links as well as form posts
	r.GET("/experiences/:id/delete/", controllers.HandleExperienceFunc(container, "delete"))
	r.POST("/experiences/:id/delete/", controllers.HandleExperienceFunc(container, "delete"))
}

// registerConsoleRoutes registers the staff-gated admin console
func registerConsoleRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	console := r.Group("/admin")
	console.Use(middleware.RequireStaff())

	console.GET("/", admin.HandleIndexFunc(container))

	console.GET("/technologies/", admin.HandleTechnologyAdminFunc(container, "list"))
	console.GET("/technologies/add/", admin.HandleTechnologyAdminFunc(container, "form"))
	console.POST("/technologies/add/", admin.HandleTechnologyAdminFunc(container, "save"))
	console.GET("/technologies/:id/edit/", admin.HandleTechnologyAdminFunc(container, "form"))
	console.POST("/technologies/:id/edit/", admin.HandleTechnologyAdminFunc(container, "save"))
	console.POST("/technologies/:id/delete/", admin.HandleTechnologyAdminFunc(container, "delete"))

	console.GET("/projects/", admin.HandleProjectAdminFunc(container, "list"))
	console.GET("/projects/add/", admin.HandleProjectAdminFunc(container, "form"))
	console.POST("/projects/add/", admin.HandleProjectAdminFunc(container, "save"))
	console.GET("/projects/:id/edit/", admin.HandleProjectAdminFunc(container, "form"))
	console.POST("/projects/:id/edit/", admin.HandleProjectAdminFunc(container, "save"))
	console.POST("/projects/:id/delete/", admin.HandleProjectAdminFunc(container, "delete"))

	console.GET("/skills/", admin.HandleSkillAdminFunc(container, "list"))
	console.GET("/skills/add/", admin.HandleSkillAdminFunc(container, "form"))
	console.POST("/skills/add/", admin.HandleSkillAdminFunc(container, "save"))
	console.GET("/skills/:id/edit/", admin.HandleSkillAdminFunc(container, "form"))
	console.POST("/skills/:id/edit/", admin.HandleSkillAdminFunc(container, "save"))
	console.POST("/skills/:id/inline/", admin.HandleSkillAdminFunc(container, "inline"))
	console.POST("/skills/:id/delete/", admin.HandleSkillAdminFunc(container, "delete"))

	console.GET("/experiences/", admin.HandleExperienceAdminFunc(container, "list"))
	console.GET("/experiences/add/", admin.HandleExperienceAdminFunc(container, "form"))
	console.POST("/experiences/add/", admin.HandleExperienceAdminFunc(container, "save"))
	console.GET("/experiences/:id/edit/", admin.HandleExperienceAdminFunc(container, "form"))
	console.POST("/experiences/:id/edit/", admin.HandleExperienceAdminFunc(container, "save"))
	console.POST("/experiences/:id/inline/", admin.HandleExperienceAdminFunc(container, "inline"))
	console.POST("/experiences/:id/delete/", admin.HandleExperienceAdminFunc(container, "delete"))

	console.GET("/messages/", admin.HandleMessageAdminFunc(container, "list"))
	// Message creation stays disabled; both verbs get the refusal page
	console.GET("/messages/add/", admin.HandleMessageAdminFunc(container, "add"))
	console.POST("/messages/add/", admin.HandleMessageAdminFunc(container, "add"))
	console.GET("/messages/:id/edit/", admin.HandleMessageAdminFunc(container, "form"))
	console.POST("/messages/:id/edit/", admin.HandleMessageAdminFunc(container, "save"))
	console.POST("/messages/:id/inline/", admin.HandleMessageAdminFunc(container, "inline"))
	console.POST("/messages/:id/delete/", admin.HandleMessageAdminFunc(container, "delete"))
}
