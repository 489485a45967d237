package config

// Site identity shown on every page. These mirror the hardcoded view
// context of the site owner rather than anything stored in the database.
const (
	SiteName    = "Jai Ohri"
	SiteTagline = "Developer, Designer, and Problem Solver"
	SiteAbout   = "I am passionate about creating innovative solutions and building meaningful digital experiences."
)

// ContactInfo holds the static contact details rendered on the contact page.
type ContactInfo struct {
	Email    string
	Phone    string
	Location string
	LinkedIn string
	GitHub   string
	Twitter  string
}

// GetContactInfo returns the site owner's contact details
func GetContactInfo() ContactInfo {
	return ContactInfo{
		Email:    "jai@example.com",
		Phone:    "+1 (555) 123-4567",
		Location: "San Francisco, CA",
		LinkedIn: "https://linkedin.com/in/jai-ohri",
		GitHub:   "https://github.com/jai-ohri",
		Twitter:  "https://twitter.com/jai_ohri",
	}
}
