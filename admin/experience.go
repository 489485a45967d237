package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/models"
	"github.com/jaiohri/Portfolio/services"
	"github.com/jaiohri/Portfolio/services/container"
	"github.com/jaiohri/Portfolio/utils"

	"github.com/gin-gonic/gin"
)

// ExperienceAdminController manages experiences in the console. The
// public-facing experience pages have their own controller; this one
// exists for the grouped-fieldset console view and inline ordering.
type ExperienceAdminController struct {
	Console
}

// HandleExperienceAdminFunc returns a gin handler dispatching to the
// experience console controller
func HandleExperienceAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &ExperienceAdminController{Console{Ctx: ctx, Container: container}}

		switch method {
		case "list":
			controller.List()
		case "form":
			controller.Form()
		case "save":
			controller.Save()
		case "inline":
			controller.InlineEdit()
		case "delete":
			controller.Delete()
		default:
			ctx.Status(http.StatusNotFound)
		}
	}
}

func (c *ExperienceAdminController) service() services.InterfaceExperienceService {
	return c.Container.GetService("experience").(services.InterfaceExperienceService)
}

// List shows all experiences; display order is editable in place
func (c *ExperienceAdminController) List() {
	experiences, err := c.service().SearchExperiences(c.Ctx.Query("q"))
	if err != nil {
		config.Error("console: failed to list experiences: %v", err)
	}

	created := c.Ctx.Query("created")
	current := c.boolFilter("current")
	rows := make([]Row, 0, len(experiences))
	for _, experience := range experiences {
		if !createdWithin(experience.CreatedAt, created) {
			continue
		}
		if current != nil && experience.IsCurrent() != *current {
			continue
		}

		endDate := ""
		if experience.EndDate != nil {
			endDate = experience.EndDate.Format("Jan 2, 2006")
		}
		rows = append(rows, Row{
			ID:    experience.ID,
			Label: experience.Title,
			Cells: []Cell{
				{Field: "title", Value: experience.Title},
				{Field: "company", Value: experience.Company},
				{Field: "start_date", Value: experience.StartDate.Format("Jan 2, 2006")},
				{Field: "end_date", Value: endDate},
				{Field: "is_current", Value: experience.IsCurrent()},
				{Field: "display_order", Value: experience.DisplayOrder, Editable: true},
			},
		})
	}
	c.renderList(experienceConfig, rows)
}

// Form renders the grouped add/edit form
func (c *ExperienceAdminController) Form() {
	data := gin.H{}
	if c.Ctx.Param("id") != "" {
		id, ok := c.paramID()
		if !ok {
			c.redirectToList(experienceConfig)
			return
		}
		experience, err := c.service().GetExperienceByID(id)
		if err != nil {
			utils.AddNotice(c.Ctx, utils.NoticeError, "Experience not found.")
			c.redirectToList(experienceConfig)
			return
		}
		data["Experience"] = experience
	}
	c.renderForm(experienceConfig, "admin_experience_form.html", data)
}

// Save persists a new or edited experience; timestamps stay server-set
func (c *ExperienceAdminController) Save() {
	experience, ok := c.loadOrNew()
	if !ok {
		return
	}

	experience.Title = c.Ctx.PostForm("title")
	experience.Company = c.Ctx.PostForm("company")
	experience.Description = c.Ctx.PostForm("description")

	if start, err := time.Parse("2006-01-02", c.Ctx.PostForm("start_date")); err == nil {
		experience.StartDate = start
	}
	if raw := c.Ctx.PostForm("end_date"); raw == "" {
		experience.EndDate = nil
	} else if end, err := time.Parse("2006-01-02", raw); err == nil {
		experience.EndDate = &end
	}
	if order, err := strconv.Atoi(c.Ctx.PostForm("display_order")); err == nil && order >= 0 {
		experience.DisplayOrder = uint(order)
	}

	if file, err := c.Ctx.FormFile("image"); err == nil {
		path, err := utils.SaveUploadedImage(c.Ctx, file, c.Container.GetConfig().MediaRoot, "experiences")
		if err != nil {
			utils.AddNotice(c.Ctx, utils.NoticeError, "Upload a valid image.")
			c.redirectToList(experienceConfig)
			return
		}
		experience.Image = path
	}

	var err error
	if experience.ID == 0 {
		err = c.service().CreateExperience(experience)
	} else {
		err = c.service().UpdateExperience(experience)
	}
	if err != nil {
		config.Error("console: failed to save experience: %v", err)
		utils.AddNotice(c.Ctx, utils.NoticeError, "Experience could not be saved.")
	} else {
		utils.AddNotice(c.Ctx, utils.NoticeSuccess, "Experience \""+experience.Title+"\" saved.")
	}
	c.redirectToList(experienceConfig)
}

// InlineEdit updates the display order from the list screen
func (c *ExperienceAdminController) InlineEdit() {
	id, ok := c.paramID()
	if !ok {
		c.redirectToList(experienceConfig)
		return
	}
	experience, err := c.service().GetExperienceByID(id)
	if err != nil {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Experience not found.")
		c.redirectToList(experienceConfig)
		return
	}

	if c.Ctx.PostForm("field") != "display_order" {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Field is not editable.")
		c.redirectToList(experienceConfig)
		return
	}
	value, parseErr := strconv.Atoi(c.Ctx.PostForm("value"))
	if parseErr != nil || value < 0 {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Enter a non-negative number.")
		c.redirectToList(experienceConfig)
		return
	}

	experience.DisplayOrder = uint(value)
	if err := c.service().UpdateExperience(experience); err != nil {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Experience could not be saved.")
	}
	c.redirectToList(experienceConfig)
}

// Delete removes an experience
func (c *ExperienceAdminController) Delete() {
	id, ok := c.paramID()
	if !ok {
		c.redirectToList(experienceConfig)
		return
	}
	if _, err := c.service().DeleteExperience(id); err != nil {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Experience not found.")
	} else {
		utils.AddNotice(c.Ctx, utils.NoticeSuccess, "Experience deleted.")
	}
	c.redirectToList(experienceConfig)
}

// loadOrNew resolves the target record for Save
func (c *ExperienceAdminController) loadOrNew() (*models.Experience, bool) {
	if c.Ctx.Param("id") == "" {
		return &models.Experience{}, true
	}
	id, ok := c.paramID()
	if !ok {
		c.redirectToList(experienceConfig)
		return nil, false
	}
	experience, err := c.service().GetExperienceByID(id)
	if err != nil {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Experience not found.")
		c.redirectToList(experienceConfig)
		return nil, false
	}
	return experience, true
}
