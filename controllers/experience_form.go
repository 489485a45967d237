package controllers

import (
	"strconv"
	"time"

	"github.com/jaiohri/Portfolio/models"
	"github.com/jaiohri/Portfolio/utils"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// ExperienceForm binds and validates the add/edit experience form. It
// carries the raw posted values so an invalid submission can be
// re-rendered exactly as entered.
type ExperienceForm struct {
	Title        string
	Company      string
	StartDate    string
	EndDate      string
	Description  string
	DisplayOrder string

	Errors map[string]string
}

// NewExperienceForm pre-fills the form from an existing record for the
// edit screen
func NewExperienceForm(experience *models.Experience) *ExperienceForm {
	form := &ExperienceForm{Errors: map[string]string{}}
	if experience == nil {
		return form
	}
	form.Title = experience.Title
	form.Company = experience.Company
	form.StartDate = experience.StartDate.Format(dateLayout)
	if experience.EndDate != nil {
		form.EndDate = experience.EndDate.Format(dateLayout)
	}
	form.Description = experience.Description
	form.DisplayOrder = strconv.FormatUint(uint64(experience.DisplayOrder), 10)
	return form
}

// BindExperienceForm reads the posted form values
func BindExperienceForm(c *gin.Context) *ExperienceForm {
	return &ExperienceForm{
		Title:        c.PostForm("title"),
		Company:      c.PostForm("company"),
		StartDate:    c.PostForm("start_date"),
		EndDate:      c.PostForm("end_date"),
		Description:  c.PostForm("description"),
		DisplayOrder: c.PostForm("display_order"),
		Errors:       map[string]string{},
	}
}

// Validate checks every field and collects per-field error messages.
// It returns true when the form is clean.
func (f *ExperienceForm) Validate() bool {
	if f.Title == "" {
		f.Errors["title"] = "This field is required."
	}
	if f.Company == "" {
		f.Errors["company"] = "This field is required."
	}
	if f.Description == "" {
		f.Errors["description"] = "This field is required."
	}

	if f.StartDate == "" {
		f.Errors["start_date"] = "This field is required."
	} else if _, err := time.Parse(dateLayout, f.StartDate); err != nil {
		f.Errors["start_date"] = "Enter a valid date."
	}

	if f.EndDate != "" {
		if _, err := time.Parse(dateLayout, f.EndDate); err != nil {
			f.Errors["end_date"] = "Enter a valid date."
		}
	}

	if f.DisplayOrder != "" {
		order, err := strconv.Atoi(f.DisplayOrder)
		if err != nil {
			f.Errors["display_order"] = "Enter a whole number."
		} else if order < 0 {
			f.Errors["display_order"] = "Ensure this value is greater than or equal to 0."
		}
	}

	return len(f.Errors) == 0
}

// Apply copies the validated values onto the record. Call only after
// Validate has returned true.
func (f *ExperienceForm) Apply(experience *models.Experience) {
	experience.Title = f.Title
	experience.Company = f.Company
	experience.Description = f.Description

	start, _ := time.Parse(dateLayout, f.StartDate)
	experience.StartDate = start

	if f.EndDate == "" {
		experience.EndDate = nil
	} else {
		end, _ := time.Parse(dateLayout, f.EndDate)
		experience.EndDate = &end
	}

	if f.DisplayOrder == "" {
		experience.DisplayOrder = 0
	} else {
		order, _ := strconv.Atoi(f.DisplayOrder)
		experience.DisplayOrder = uint(order)
	}
}

// SaveImage stores an uploaded image, if any, and records its path.
// A missing file is not an error; a non-image upload is.
func (f *ExperienceForm) SaveImage(c *gin.Context, mediaRoot string, experience *models.Experience) bool {
	file, err := c.FormFile("image")
	if err != nil {
		return true
	}
	path, err := utils.SaveUploadedImage(c, file, mediaRoot, "experiences")
	if err != nil {
		f.Errors["image"] = "Upload a valid image."
		return false
	}
	experience.Image = path
	return true
}
