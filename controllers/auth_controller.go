package controllers

import (
	"net/http"
	"strings"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/middleware"
	"github.com/jaiohri/Portfolio/services"
	"github.com/jaiohri/Portfolio/services/container"
	"github.com/jaiohri/Portfolio/utils"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController defines the login/logout controller
type InterfaceAuthController interface {
	Login()
	Logout()
}

// AuthController serves the login and logout pages
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAuthFunc returns a gin handler dispatching to the auth controller
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		default:
			ctx.Status(http.StatusNotFound)
		}
	}
}

// Login renders the credential form and establishes the session
// identity. An already signed-in admin is sent straight home.
func (c *AuthController) Login() {
	if middleware.IsAdmin(middleware.CurrentUser(c.Ctx)) {
		c.Ctx.Redirect(http.StatusFound, "/")
		return
	}

	var formError string
	if c.Ctx.Request.Method == http.MethodPost {
		authService := c.Container.GetService("auth").(services.InterfaceAuthService)

		username := c.Ctx.PostForm("username")
		password := c.Ctx.PostForm("password")

		user, err := authService.Authenticate(username, password)
		if err == nil {
			if err := middleware.SignIn(c.Ctx, user); err != nil {
				config.Error("failed to establish session: %v", err)
			}
			utils.AddNotice(c.Ctx, utils.NoticeSuccess, "Welcome back, "+user.Username+"!")

			next := c.Ctx.Query("next")
			if next != "" && strings.HasPrefix(next, "/") {
				c.Ctx.Redirect(http.StatusFound, next)
				return
			}
			c.Ctx.Redirect(http.StatusFound, "/")
			return
		}
		formError = "Please enter a correct username and password."
	}

	data := pageData(c.Ctx, "Admin Login")
	data["FormError"] = formError
	data["Next"] = c.Ctx.Query("next")
	c.Ctx.HTML(http.StatusOK, "login.html", data)
}

// Logout clears the session and redirects home. Requests without a
// session identity are sent to the login page first.
func (c *AuthController) Logout() {
	if middleware.CurrentUser(c.Ctx) == nil {
		c.Ctx.Redirect(http.StatusFound, "/login/?next=/logout/")
		return
	}

	if err := middleware.SignOut(c.Ctx); err != nil {
		config.Error("failed to clear session: %v", err)
	}
	utils.AddNotice(c.Ctx, utils.NoticeSuccess, "You have been logged out successfully.")
	c.Ctx.Redirect(http.StatusFound, "/")
}
