// Package admin implements the staff-only console: hand-declared
// list/search/filter/edit screens over the content schema.
package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jaiohri/Portfolio/middleware"
	"github.com/jaiohri/Portfolio/services/container"
	"github.com/jaiohri/Portfolio/utils"

	"github.com/gin-gonic/gin"
)

// Cell is one rendered list cell. Editable cells render as an inline
// form posting back to the entity's inline endpoint.
type Cell struct {
	Field    string
	Value    interface{}
	Editable bool
}

// IsBool reports whether the cell holds a boolean value, which the list
// screen renders as a checkbox instead of a text input
func (c Cell) IsBool() bool {
	_, ok := c.Value.(bool)
	return ok
}

// BoolValue returns the cell's boolean value, false for non-bool cells
func (c Cell) BoolValue() bool {
	value, _ := c.Value.(bool)
	return value
}

// Row is one rendered list row
type Row struct {
	ID    uint
	Label string
	Cells []Cell
}

// Console hosts the shared rendering and parsing helpers used by every
// entity controller
type Console struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// HandleIndexFunc renders the console landing page listing all entities
func HandleIndexFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := middleware.CurrentUser(ctx)
		ctx.HTML(http.StatusOK, "admin_index.html", gin.H{
			"Title":    "Site administration",
			"Entities": Registry,
			"User":     user,
			"Notices":  utils.ConsumeNotices(ctx),
		})
	}
}

// renderList renders the shared list screen for one entity
func (c *Console) renderList(cfg EntityConfig, rows []Row) {
	selected := map[string]string{}
	for _, filter := range cfg.Filters {
		selected[filter.Param] = c.Ctx.Query(filter.Param)
	}

	c.Ctx.HTML(http.StatusOK, "admin_list.html", gin.H{
		"Title":    cfg.TitlePlural,
		"Config":   cfg,
		"Rows":     rows,
		"Search":   c.Ctx.Query("q"),
		"Selected": selected,
		"User":     middleware.CurrentUser(c.Ctx),
		"Notices":  utils.ConsumeNotices(c.Ctx),
	})
}

// renderForm renders an entity form template with the shared context
func (c *Console) renderForm(cfg EntityConfig, template string, data gin.H) {
	data["Title"] = cfg.Title
	data["Config"] = cfg
	data["User"] = middleware.CurrentUser(c.Ctx)
	data["Notices"] = utils.ConsumeNotices(c.Ctx)
	c.Ctx.HTML(http.StatusOK, template, data)
}

// paramID parses the :id route parameter
func (c *Console) paramID() (uint, bool) {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Record not found.")
		return 0, false
	}
	return uint(id), true
}

// boolFilter reads a yes/no filter parameter, returning nil when unset
func (c *Console) boolFilter(param string) *bool {
	switch c.Ctx.Query(param) {
	case "1":
		value := true
		return &value
	case "0":
		value := false
		return &value
	}
	return nil
}

// createdWithin reports whether a timestamp falls inside the selected
// created-date filter period; an unset filter matches everything
func createdWithin(created time.Time, period string) bool {
	now := time.Now()
	switch period {
	case "today":
		return created.Year() == now.Year() && created.YearDay() == now.YearDay()
	case "week":
		return created.After(now.AddDate(0, 0, -7))
	case "month":
		return created.Year() == now.Year() && created.Month() == now.Month()
	case "year":
		return created.Year() == now.Year()
	default:
		return true
	}
}

// redirectToList sends the browser back to the entity list
func (c *Console) redirectToList(cfg EntityConfig) {
	c.Ctx.Redirect(http.StatusFound, "/admin/"+cfg.Slug+"/")
}
