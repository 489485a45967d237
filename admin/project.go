package admin

import (
	"net/http"
	"strconv"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/models"
	"github.com/jaiohri/Portfolio/services"
	"github.com/jaiohri/Portfolio/services/container"
	"github.com/jaiohri/Portfolio/utils"

	"github.com/gin-gonic/gin"
)

// ProjectAdminController manages projects in the console
type ProjectAdminController struct {
	Console
}

// HandleProjectAdminFunc returns a gin handler dispatching to the
// project console controller
func HandleProjectAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &ProjectAdminController{Console{Ctx: ctx, Container: container}}

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

func (c *ProjectAdminController) service() services.InterfaceProjectService {
	return c.Container.GetService("project").(services.InterfaceProjectService)
}

func (c *ProjectAdminController) technologyService() services.InterfaceTechnologyService {
	return c.Container.GetService("technology").(services.InterfaceTechnologyService)
}

// List shows all projects with search and featured/created filters
func (c *ProjectAdminController) List() {
	projects, err := c.service().SearchProjects(c.Ctx.Query("q"), c.boolFilter("featured"))
	if err != nil {
		config.Error("console: failed to list projects: %v", err)
	}

	created := c.Ctx.Query("created")
	rows := make([]Row, 0, len(projects))
	for _, project := range projects {
		if !createdWithin(project.CreatedAt, created) {
			continue
		}
		rows = append(rows, Row{
			ID:    project.ID,
			Label: project.Title,
			Cells: []Cell{
				{Field: "title", Value: project.Title},
				{Field: "featured", Value: project.Featured},
				{Field: "display_order", Value: project.DisplayOrder},
				{Field: "created_at", Value: project.CreatedAt.Format("Jan 2, 2006")},
			},
		})
	}
	c.renderList(projectConfig, rows)
}

// Form renders the add/edit form with the technology multi-select
func (c *ProjectAdminController) Form() {
	technologies, err := c.technologyService().GetAllTechnologies()
	if err != nil {
		config.Error("console: failed to load technologies: %v", err)
	}

	selected := map[uint]bool{}
	data := gin.H{"AllTechnologies": technologies, "SelectedTechnologies": selected}
	if c.Ctx.Param("id") != "" {
		id, ok := c.paramID()
		if !ok {
			c.redirectToList(projectConfig)
			return
		}
		project, err := c.service().GetProjectByID(id)
		if err != nil {
			utils.AddNotice(c.Ctx, utils.NoticeError, "Project not found.")
			c.redirectToList(projectConfig)
			return
		}
		data["Project"] = project
		for _, tech := range project.Technologies {
			selected[tech.ID] = true
		}
	}
	c.renderForm(projectConfig, "admin_project_form.html", data)
}

// Save persists a new or edited project; timestamps stay server-set
func (c *ProjectAdminController) Save() {
	project := &models.Project{}
	if c.Ctx.Param("id") != "" {
		id, ok := c.paramID()
		if !ok {
			c.redirectToList(projectConfig)
			return
		}
		existing, err := c.service().GetProjectByID(id)
		if err != nil {
			utils.AddNotice(c.Ctx, utils.NoticeError, "Project not found.")
			c.redirectToList(projectConfig)
			return
		}
		project = existing
	}

	project.Title = c.Ctx.PostForm("title")
	project.Description = c.Ctx.PostForm("description")
	project.GithubURL = c.Ctx.PostForm("github_url")
	project.Featured = c.Ctx.PostForm("featured") != ""
	if order, err := strconv.Atoi(c.Ctx.PostForm("display_order")); err == nil && order >= 0 {
		project.DisplayOrder = uint(order)
	}

	if file, err := c.Ctx.FormFile("image"); err == nil {
		path, err := utils.SaveUploadedImage(c.Ctx, file, c.Container.GetConfig().MediaRoot, "projects")
		if err != nil {
			utils.AddNotice(c.Ctx, utils.NoticeError, "Upload a valid image.")
			c.redirectToList(projectConfig)
			return
		}
		project.Image = path
	}

	var technologyIDs []uint
	for _, raw := range c.Ctx.PostFormArray("technologies") {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			technologyIDs = append(technologyIDs, uint(id))
		}
	}

	if err := c.service().SaveProject(project, technologyIDs); err != nil {
		config.Error("console: failed to save project: %v", err)
		utils.AddNotice(c.Ctx, utils.NoticeError, "Project could not be saved.")
	} else {
		utils.AddNotice(c.Ctx, utils.NoticeSuccess, "Project \""+project.Title+"\" saved.")
	}
	c.redirectToList(projectConfig)
}

// Delete removes a project
func (c *ProjectAdminController) Delete() {
	id, ok := c.paramID()
	if !ok {
		c.redirectToList(projectConfig)
		return
	}
	if err := c.service().DeleteProject(id); err != nil {
		config.Error("console: failed to delete project: %v", err)
		utils.AddNotice(c.Ctx, utils.NoticeError, "Project could not be deleted.")
	} else {
		utils.AddNotice(c.Ctx, utils.NoticeSuccess, "Project deleted.")
	}
	c.redirectToList(projectConfig)
}
