package admin

import (
	"net/http"
	"strconv"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/services"
	"github.com/jaiohri/Portfolio/services/container"
	"github.com/jaiohri/Portfolio/utils"

	"github.com/gin-gonic/gin"
)

// MessageAdminController reviews contact messages in the console.
// Messages are authored exclusively by the public contact form: the
// console can read them, flag them read, and delete them, but creating
// one here is permanently refused.
type MessageAdminController struct {
	Console
}

// HandleMessageAdminFunc returns a gin handler dispatching to the
// message console controller
func HandleMessageAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &MessageAdminController{Console{Ctx: ctx, Container: container}}

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
		case "add":
			controller.RefuseAdd()
		default:
			ctx.Status(http.StatusNotFound)
		}
	}
}

func (c *MessageAdminController) service() services.InterfaceContactService {
	return c.Container.GetService("contact").(services.InterfaceContactService)
}

// List shows all messages with search and read/created filters; the
// read flag is editable in place
func (c *MessageAdminController) List() {
	messages, err := c.service().SearchMessages(c.Ctx.Query("q"), c.boolFilter("read"))
	if err != nil {
		config.Error("console: failed to list messages: %v", err)
	}

	created := c.Ctx.Query("created")
	rows := make([]Row, 0, len(messages))
	for _, message := range messages {
		if !createdWithin(message.CreatedAt, created) {
			continue
		}
		rows = append(rows, Row{
			ID:    message.ID,
			Label: message.Subject,
			Cells: []Cell{
				{Field: "name", Value: message.Name},
				{Field: "email", Value: message.Email},
				{Field: "subject", Value: message.Subject},
				{Field: "read", Value: message.Read, Editable: true},
				{Field: "created_at", Value: message.CreatedAt.Format("Jan 2, 2006")},
			},
		})
	}
	c.renderList(messageConfig, rows)
}

// Form shows a single message; every content field is read-only
func (c *MessageAdminController) Form() {
	id, ok := c.paramID()
	if !ok {
		c.redirectToList(messageConfig)
		return
	}
	message, err := c.service().GetMessageByID(id)
	if err != nil {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Message not found.")
		c.redirectToList(messageConfig)
		return
	}
	c.renderForm(messageConfig, "admin_message_form.html", gin.H{"Message": message})
}

// Save updates only the read flag; message content is immutable
func (c *MessageAdminController) Save() {
	id, ok := c.paramID()
	if !ok {
		c.redirectToList(messageConfig)
		return
	}
	read := c.Ctx.PostForm("read") != ""
	if err := c.service().SetRead(id, read); err != nil {
		config.Error("console: failed to update message: %v", err)
		utils.AddNotice(c.Ctx, utils.NoticeError, "Message could not be updated.")
	} else {
		utils.AddNotice(c.Ctx, utils.NoticeSuccess, "Message updated.")
	}
	c.redirectToList(messageConfig)
}

// InlineEdit toggles the read flag from the list screen
func (c *MessageAdminController) InlineEdit() {
	id, ok := c.paramID()
	if !ok {
		c.redirectToList(messageConfig)
		return
	}
	if c.Ctx.PostForm("field") != "read" {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Field is not editable.")
		c.redirectToList(messageConfig)
		return
	}
	// The checkbox posts "1" when checked and nothing when not;
	// ParseBool also tolerates "true"/"false"
	read, _ := strconv.ParseBool(c.Ctx.PostForm("value"))
	if err := c.service().SetRead(id, read); err != nil {
		utils.AddNotice(c.Ctx, utils.NoticeError, "Message could not be updated.")
	}
	c.redirectToList(messageConfig)
}

// Delete removes a message
func (c *MessageAdminController) Delete() {
	id, ok := c.paramID()
	if !ok {
		c.redirectToList(messageConfig)
		return
	}
	if err := c.service().DeleteMessage(id); err != nil {
		config.Error("console: failed to delete message: %v", err)
		utils.AddNotice(c.Ctx, utils.NoticeError, "Message could not be deleted.")
	} else {
		utils.AddNotice(c.Ctx, utils.NoticeSuccess, "Message deleted.")
	}
	c.redirectToList(messageConfig)
}

// RefuseAdd permanently refuses message creation through the console
func (c *MessageAdminController) RefuseAdd() {
	c.Ctx.HTML(http.StatusForbidden, "admin_refused.html", gin.H{
		"Title":   "Not allowed",
		"Message": "Contact messages can only be created through the public contact form.",
	})
}
