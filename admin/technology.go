package admin

import (
	"net/http"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/models"
	"github.com/jaiohri/Portfolio/services"
	"github.com/jaiohri/Portfolio/services/container"
	"github.com/jaiohri/Portfolio/utils"

	"github.com/gin-gonic/gin"
)

// TechnologyAdminController manages technologies in the console
type TechnologyAdminController struct {
	Console
}

// HandleTechnologyAdminFunc returns a gin handler dispatching to the
// technology console controller
func HandleTechnologyAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &TechnologyAdminController{Console{Ctx: ctx, Container: container}}

		switch method {
		case "list":
			controller.List()
		case "form":
			controller.Form()
		case "save":
			controller.Save()
		case "delete":
			controller.Delete()
		default:
			ctx.Status(http.StatusNotFound)
		}
	}
}

func (c *TechnologyAdminController) service() services.InterfaceTechnologyService {
	return c.Container.GetService("technology").(services.InterfaceTechnologyService)
}

// List shows all technologies with name search and created-date filter
func (c *TechnologyAdminController) List() {
	technologies, err := c.service().SearchTechnologies(c.Ctx.Query("q"))
	if err != nil {
		config.Error("console: failed to list technologies: %v", err)
	}

	created := c.Ctx.Query("created")
	rows := make([]Row, 0, len(technologies))
	for _, tech := range technologies {
		if !createdWithin(tech.CreatedAt, created) {
			continue
		}
		rows = append(rows, Row{
			ID:    tech.ID,
			Label: tech.Name,
			Cells: []Cell{
				{Field: "name", Value: tech.Name},
				{Field: "created_at", Value: tech.CreatedAt.Format("Jan 2, 2006")},
			},
		})
	}
	c.renderList(technologyConfig, rows)
}

// Form renders the add/edit form
func (c *TechnologyAdminController) Form() {
	data := gin.H{}
	if c.Ctx.Param("id") != "" {
		id, ok := c.paramID()
		if !ok {
			c.redirectToList(technologyConfig)
			return
		}
		technology, err := c.service().GetTechnologyByID(id)
		if err != nil {
			utils.AddNotice(c.Ctx, utils.NoticeError, "Technology not found.")
			c.redirectToList(technologyConfig)
			return
		}
		data["Technology"] = technology
	}
	c.renderForm(technologyConfig, "admin_technology_form.html", data)
}

// Save persists a new or edited technology
func (c *TechnologyAdminController) Save() {
	technology := &models.Technology{Name: c.Ctx.PostForm("name")}
	if c.Ctx.Param("id") != "" {
		id, ok := c.paramID()
		if !ok {
			c.redirectToList(technologyConfig)
			return
		}
		existing, err := c.service().GetTechnologyByID(id)
		if err != nil {
			utils.AddNotice(c.Ctx, utils.NoticeError, "Technology not found.")
			c.redirectToList(technologyConfig)
			return
		}
		existing.Name = technology.Name
		technology = existing
	}

	if technology.Name == "" {
		c.renderForm(technologyConfig, "admin_technology_form.html", gin.H{
			"Technology": technology,
			"FormError":  "Name is required.",
		})
		return
	}

	if err := c.service().SaveTechnology(technology); err != nil {
		config.Error("console: failed to save technology: %v", err)
		utils.AddNotice(c.Ctx, utils.NoticeError, "Technology could not be saved.")
	} else {
		utils.AddNotice(c.Ctx, utils.NoticeSuccess, "Technology \""+technology.Name+"\" saved.")
	}
	c.redirectToList(technologyConfig)
}

// Delete removes a technology
func (c *TechnologyAdminController) Delete() {
	id, ok := c.paramID()
	if !ok {
		c.redirectToList(technologyConfig)
		return
	}
	if err := c.service().DeleteTechnology(id); err != nil {
		config.Error("console: failed to delete technology: %v", err)
		utils.AddNotice(c.Ctx, utils.NoticeError, "Technology could not be deleted.")
	} else {
		utils.AddNotice(c.Ctx, utils.NoticeSuccess, "Technology deleted.")
	}
	c.redirectToList(technologyConfig)
}
