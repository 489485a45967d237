package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/middleware"
	"github.com/jaiohri/Portfolio/models"
	"github.com/jaiohri/Portfolio/services"
	"github.com/jaiohri/Portfolio/services/container"
	"github.com/jaiohri/Portfolio/utils"

	"github.com/gin-gonic/gin"
)

// InterfaceExperienceController defines the experience management controller
type InterfaceExperienceController interface {
	List()
	Add()
	Edit()
	Delete()
}

// ExperienceController serves the admin-only experience management pages
type ExperienceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewExperienceController creates a new experience controller
func NewExperienceController(ctx *gin.Context, container *container.ServiceContainer) *ExperienceController {
	return &ExperienceController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleExperienceFunc returns a gin handler dispatching to the
// experience controller
func HandleExperienceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewExperienceController(ctx, container)

		switch method {
		case "list":
			controller.List()
		case "add":
			controller.Add()
		case "edit":
			controller.Edit()
		case "delete":
			controller.Delete()
		default:
			ctx.Status(http.StatusNotFound)
		}
	}
}

// requireAdmin applies the admin predicate: on failure it queues a
// warning notice and redirects to the login page instead of returning an
// authorization status.
func (c *ExperienceController) requireAdmin(action string) bool {
	if middleware.IsAdmin(middleware.CurrentUser(c.Ctx)) {
		return true
	}
	utils.AddNotice(c.Ctx, utils.NoticeWarning, "You must be logged in as admin to "+action+" experiences.")
	c.Ctx.Redirect(http.StatusFound, "/login/")
	return false
}

func (c *ExperienceController) experienceService() services.InterfaceExperienceService {
	return c.Container.GetService("experience").(services.InterfaceExperienceService)
}

// List shows all experience entries
func (c *ExperienceController) List() {
	if !c.requireAdmin("edit") {
		return
	}

	experiences, err := c.experienceService().GetAllExperiences()
	if err != nil {
		config.Error("failed to load experiences: %v", err)
	}

	data := pageData(c.Ctx, "Edit Experiences")
	data["Experiences"] = experiences
	c.Ctx.HTML(http.StatusOK, "experiences.html", data)
}

// Add creates a new experience entry
func (c *ExperienceController) Add() {
	if !c.requireAdmin("add") {
		return
	}

	form := NewExperienceForm(nil)
	if c.Ctx.Request.Method == http.MethodPost {
		form = BindExperienceForm(c.Ctx)
		if form.Validate() {
			var experience models.Experience
			form.Apply(&experience)
			if form.SaveImage(c.Ctx, c.Container.GetConfig().MediaRoot, &experience) {
				if err := c.experienceService().CreateExperience(&experience); err != nil {
					config.Error("failed to create experience: %v", err)
				} else {
					utils.AddNotice(c.Ctx, utils.NoticeSuccess,
						"Experience \""+experience.Title+" at "+experience.Company+"\" added successfully!")
					c.Ctx.Redirect(http.StatusFound, "/experiences/")
					return
				}
			}
		}
	}

	data := pageData(c.Ctx, "Add Experience")
	data["Form"] = form
	c.Ctx.HTML(http.StatusOK, "experience_form.html", data)
}

// Edit updates an existing experience entry
func (c *ExperienceController) Edit() {
	if !c.requireAdmin("edit") {
		return
	}

	experience, ok := c.lookupExperience()
	if !ok {
		return
	}

	form := NewExperienceForm(experience)
	if c.Ctx.Request.Method == http.MethodPost {
		form = BindExperienceForm(c.Ctx)
		if form.Validate() {
			form.Apply(experience)
			if form.SaveImage(c.Ctx, c.Container.GetConfig().MediaRoot, experience) {
				if err := c.experienceService().UpdateExperience(experience); err != nil {
					config.Error("failed to update experience: %v", err)
				} else {
					utils.AddNotice(c.Ctx, utils.NoticeSuccess,
						"Experience \""+experience.Title+" at "+experience.Company+"\" updated successfully!")
					c.Ctx.Redirect(http.StatusFound, "/experiences/")
					return
				}
			}
		}
	}

	data := pageData(c.Ctx, "Edit Experience")
	data["Form"] = form
	data["Experience"] = experience
	c.Ctx.HTML(http.StatusOK, "experience_form.html", data)
}

// Delete removes an experience entry, tolerating a missing id with a
// notice rather than an error page
func (c *ExperienceController) Delete() {
	if !c.requireAdmin("delete") {
		return
	}

	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Experience not found.")
		c.Ctx.Redirect(http.StatusFound, "/experiences/")
		return
	}

	experience, err := c.experienceService().DeleteExperience(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrExperienceNotFound) {
			utils.AddNotice(c.Ctx, utils.NoticeError, "Experience not found.")
		} else {
			config.Error("failed to delete experience: %v", err)
			utils.AddNotice(c.Ctx, utils.NoticeError, "Experience could not be deleted.")
		}
		c.Ctx.Redirect(http.StatusFound, "/experiences/")
		return
	}

	utils.AddNotice(c.Ctx, utils.NoticeSuccess,
		"Experience \""+experience.Title+" at "+experience.Company+"\" deleted successfully!")
	c.Ctx.Redirect(http.StatusFound, "/experiences/")
}

// lookupExperience resolves the :id route parameter, handling the
// missing-record case with a notice and redirect
func (c *ExperienceController) lookupExperience() (*models.Experience, bool) {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Experience not found.")
		c.Ctx.Redirect(http.StatusFound, "/experiences/")
		return nil, false
	}

	experience, err := c.experienceService().GetExperienceByID(uint(id))
	if err != nil {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Experience not found.")
		c.Ctx.Redirect(http.StatusFound, "/experiences/")
		return nil, false
	}
	return experience, true
}
