package controllers

import (
	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/middleware"
	"github.com/jaiohri/Portfolio/utils"

	"github.com/gin-gonic/gin"
)

// RenderMode selects between a full document and an HTMX fragment
type RenderMode int

const (
	// FullPage renders the complete document
	FullPage RenderMode = iota
	// Fragment renders only the dynamic content for partial navigation
	Fragment
)

// ModeFor decides the render mode once per request from the HX-Request
// header. The data queries behind both modes are identical.
func ModeFor(c *gin.Context) RenderMode {
	if c.GetHeader("HX-Request") != "" {
		return Fragment
	}
	return FullPage
}

// pageData builds the context shared by every full-page render: site
// identity, the resolved user, and any pending notices
func pageData(c *gin.Context, title string) gin.H {
	user := middleware.CurrentUser(c)
	return gin.H{
		"Title":   title,
		"Name":    config.SiteName,
		"Tagline": config.SiteTagline,
		"About":   config.SiteAbout,
		"User":    user,
		"IsAdmin": middleware.IsAdmin(user),
		"Notices": utils.ConsumeNotices(c),
	}
}

// fragmentData builds the context for fragment renders. Notices are not
// consumed here; fragments carry no notice area.
func fragmentData(c *gin.Context, title string) gin.H {
	return gin.H{
		"Title":   title,
		"Name":    config.SiteName,
		"Tagline": config.SiteTagline,
		"About":   config.SiteAbout,
	}
}
