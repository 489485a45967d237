package controllers

import (
	"net/http"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/services"
	"github.com/jaiohri/Portfolio/services/container"
	"github.com/jaiohri/Portfolio/utils"

	"github.com/gin-gonic/gin"
)

// InterfacePageController defines the public page controller
type InterfacePageController interface {
	Home()
	About()
	Portfolio()
	Contact()
	Favicon()
}

// PageController serves the public pages
type PageController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPageController creates a new page controller
func NewPageController(ctx *gin.Context, container *container.ServiceContainer) *PageController {
	return &PageController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandlePageFunc returns a gin handler dispatching to the page controller
func HandlePageFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPageController(ctx, container)

		switch method {
		case "home":
			controller.Home()
		case "about":
			controller.About()
		case "portfolio":
			controller.Portfolio()
		case "contact":
			controller.Contact()
		case "favicon":
			controller.Favicon()
		default:
			ctx.Status(http.StatusNotFound)
		}
	}
}

// Home renders the static landing page
func (c *PageController) Home() {
	data := pageData(c.Ctx, "Welcome to My Personal Website")
	c.Ctx.HTML(http.StatusOK, "home.html", data)
}

// About renders the skills and experience page, or its fragment for
// partial navigation
func (c *PageController) About() {
	skillService := c.Container.GetService("skill").(services.InterfaceSkillService)
	experienceService := c.Container.GetService("experience").(services.InterfaceExperienceService)

	skillGroups, err := skillService.GetSkillsByCategory()
	if err != nil {
		config.Error("failed to load skills: %v", err)
	}
	experiences, err := experienceService.GetAllExperiences()
	if err != nil {
		config.Error("failed to load experiences: %v", err)
	}

	mode := ModeFor(c.Ctx)
	var data gin.H
	if mode == Fragment {
		data = fragmentData(c.Ctx, "About Me")
	} else {
		data = pageData(c.Ctx, "About Me")
	}
	data["SkillGroups"] = skillGroups
	data["Experiences"] = experiences

	if mode == Fragment {
		c.Ctx.HTML(http.StatusOK, "about_content.html", data)
		return
	}
	c.Ctx.HTML(http.StatusOK, "about.html", data)
}

// Portfolio renders the project list page, or its fragment for partial
// navigation
func (c *PageController) Portfolio() {
	projectService := c.Container.GetService("project").(services.InterfaceProjectService)

	projects, err := projectService.GetAllProjects()
	if err != nil {
		config.Error("failed to load projects: %v", err)
	}
	featured, err := projectService.GetFeaturedProject()
	if err != nil {
		config.Error("failed to load featured project: %v", err)
	}

	mode := ModeFor(c.Ctx)
	var data gin.H
	if mode == Fragment {
		data = fragmentData(c.Ctx, "My Portfolio")
	} else {
		data = pageData(c.Ctx, "My Portfolio")
	}
	data["Projects"] = projects
	data["FeaturedProject"] = featured

	if mode == Fragment {
		c.Ctx.HTML(http.StatusOK, "portfolio_content.html", data)
		return
	}
	c.Ctx.HTML(http.StatusOK, "portfolio.html", data)
}

// Contact renders the contact page and accepts form submissions. A
// submission is stored only when all four fields are present; partial
// submissions are dropped without an error, matching the public form's
// behavior since launch.
func (c *PageController) Contact() {
	if c.Ctx.Request.Method == http.MethodPost {
		c.submitContact()
		return
	}
	c.renderContact()
}

func (c *PageController) submitContact() {
	contactService := c.Container.GetService("contact").(services.InterfaceContactService)

	name := c.Ctx.PostForm("name")
	email := c.Ctx.PostForm("email")
	subject := c.Ctx.PostForm("subject")
	message := c.Ctx.PostForm("message")

	if name != "" && email != "" && subject != "" && message != "" {
		if _, err := contactService.CreateMessage(name, email, subject, message); err != nil {
			config.Error("failed to store contact message: %v", err)
		}
	}

	thanks := "Thank you " + name + "! Your message has been sent successfully."
	if ModeFor(c.Ctx) == Fragment {
		c.Ctx.HTML(http.StatusOK, "contact_success.html", gin.H{
			"Message": thanks,
		})
		return
	}

	utils.AddNotice(c.Ctx, utils.NoticeSuccess, thanks)
	c.renderContact()
}

func (c *PageController) renderContact() {
	mode := ModeFor(c.Ctx)
	var data gin.H
	if mode == Fragment {
		data = fragmentData(c.Ctx, "Get In Touch")
	} else {
		data = pageData(c.Ctx, "Get In Touch")
	}
	data["ContactInfo"] = config.GetContactInfo()

	if mode == Fragment {
		c.Ctx.HTML(http.StatusOK, "contact_content.html", data)
		return
	}
	c.Ctx.HTML(http.StatusOK, "contact.html", data)
}

// Favicon answers the icon probe with no content
func (c *PageController) Favicon() {
	c.Ctx.Status(http.StatusNoContent)
}
