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

// SkillAdminController manages skills in the console
type SkillAdminController struct {
	Console
}

// HandleSkillAdminFunc returns a gin handler dispatching to the skill
// console controller
func HandleSkillAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &SkillAdminController{Console{Ctx: ctx, Container: container}}

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

func (c *SkillAdminController) service() services.InterfaceSkillService {
	return c.Container.GetService("skill").(services.InterfaceSkillService)
}

// List shows all skills; display order and level are editable in place
func (c *SkillAdminController) List() {
	skills, err := c.service().SearchSkills(c.Ctx.Query("q"))
	if err != nil {
		config.Error("console: failed to list skills: %v", err)
	}

	created := c.Ctx.Query("created")
	rows := make([]Row, 0, len(skills))
	for _, skill := range skills {
		if !createdWithin(skill.CreatedAt, created) {
			continue
		}
		rows = append(rows, Row{
			ID:    skill.ID,
			Label: skill.Name,
			Cells: []Cell{
				{Field: "name", Value: skill.Name},
				{Field: "icon", Value: skill.Icon},
				{Field: "level", Value: skill.Level, Editable: true},
				{Field: "display_order", Value: skill.DisplayOrder, Editable: true},
				{Field: "created_at", Value: skill.CreatedAt.Format("Jan 2, 2006")},
			},
		})
	}
	c.renderList(skillConfig, rows)
}

// Form renders the add/edit form
func (c *SkillAdminController) Form() {
	data := gin.H{"Categories": models.SkillCategories}
	if c.Ctx.Param("id") != "" {
		id, ok := c.paramID()
		if !ok {
			c.redirectToList(skillConfig)
			return
		}
		skill, err := c.service().GetSkillByID(id)
		if err != nil {
			utils.AddNotice(c.Ctx, utils.NoticeError, "Skill not found.")
			c.redirectToList(skillConfig)
			return
		}
		data["Skill"] = skill
	}
	c.renderForm(skillConfig, "admin_skill_form.html", data)
}

// Save persists a new or edited skill; the model hook rejects levels
// outside 0-100
func (c *SkillAdminController) Save() {
	skill := &models.Skill{}
	if c.Ctx.Param("id") != "" {
		id, ok := c.paramID()
		if !ok {
			c.redirectToList(skillConfig)
			return
		}
		existing, err := c.service().GetSkillByID(id)
		if err != nil {
			utils.AddNotice(c.Ctx, utils.NoticeError, "Skill not found.")
			c.redirectToList(skillConfig)
			return
		}
		skill = existing
	}

	skill.Name = c.Ctx.PostForm("name")
	skill.Category = c.Ctx.PostForm("category")
	skill.Icon = c.Ctx.PostForm("icon")
	if level, err := strconv.Atoi(c.Ctx.PostForm("level")); err == nil && level >= 0 {
		skill.Level = uint(level)
	}
	if order, err := strconv.Atoi(c.Ctx.PostForm("display_order")); err == nil && order >= 0 {
		skill.DisplayOrder = uint(order)
	}

	if err := c.service().SaveSkill(skill); err != nil {
		config.Error("console: failed to save skill: %v", err)
		utils.AddNotice(c.Ctx, utils.NoticeError, "Skill could not be saved: "+err.Error())
	} else {
		utils.AddNotice(c.Ctx, utils.NoticeSuccess, "Skill \""+skill.Name+"\" saved.")
	}
	c.redirectToList(skillConfig)
}

// InlineEdit updates a single whitelisted field from the list screen
func (c *SkillAdminController) InlineEdit() {
	id, ok := c.paramID()
	if !ok {
		c.redirectToList(skillConfig)
		return
	}
	skill, err := c.service().GetSkillByID(id)
	if err != nil {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Skill not found.")
		c.redirectToList(skillConfig)
		return
	}

	field := c.Ctx.PostForm("field")
	value, parseErr := strconv.Atoi(c.Ctx.PostForm("value"))
	if parseErr != nil || value < 0 {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Enter a non-negative number.")
		c.redirectToList(skillConfig)
		return
	}

	switch field {
	case "level":
		skill.Level = uint(value)
	case "display_order":
		skill.DisplayOrder = uint(value)
	default:
		utils.AddNotice(c.Ctx, utils.NoticeError, "Field is not editable.")
		c.redirectToList(skillConfig)
		return
	}

	if err := c.service().SaveSkill(skill); err != nil {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Skill could not be saved: "+err.Error())
	}
	c.redirectToList(skillConfig)
}

// Delete removes a skill
func (c *SkillAdminController) Delete() {
	id, ok := c.paramID()
	if !ok {
		c.redirectToList(skillConfig)
		return
	}
	if err := c.service().DeleteSkill(id); err != nil {
		config.Error("console: failed to delete skill: %v", err)
		utils.AddNotice(c.Ctx, utils.NoticeError, "Skill could not be deleted.")
	} else {
		utils.AddNotice(c.Ctx, utils.NoticeSuccess, "Skill deleted.")
	}
	c.redirectToList(skillConfig)
}
