package utils

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Notice levels
const (
	NoticeSuccess = "success"
	NoticeWarning = "warning"
	NoticeError   = "error"
)

var noticeLevels = []string{NoticeSuccess, NoticeWarning, NoticeError}

// Notice is a one-shot user-visible message rendered on the next page
type Notice struct {
	Level   string
	Message string
}

// AddNotice queues a flash notice for the next rendered page
func AddNotice(c *gin.Context, level, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, level)
	_ = session.Save()
}

// ConsumeNotices pops and returns all pending notices
func ConsumeNotices(c *gin.Context) []Notice {
	session := sessions.Default(c)
	var notices []Notice
	for _, level := range noticeLevels {
		for _, flash := range session.Flashes(level) {
			if message, ok := flash.(string); ok {
				notices = append(notices, Notice{Level: level, Message: message})
			}
		}
	}
	if len(notices) > 0 {
		_ = session.Save()
	}
	return notices
}
