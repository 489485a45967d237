package admin

// FilterOption is one selectable value of a list filter
type FilterOption struct {
	Value string
	Label string
}

// Filter narrows a console list by a query parameter
type Filter struct {
	Param   string
	Label   string
	Options []FilterOption
}

// Fieldset groups form fields under a legend, optionally collapsed
type Fieldset struct {
	Legend    string
	Fields    []string
	Collapsed bool
}

// EntityConfig declares how one entity appears in the console. The
// console is driven entirely by these hand-declared tables; nothing is
// derived from the schema at runtime.
type EntityConfig struct {
	Slug           string
	Title          string
	TitlePlural    string
	Columns        []string
	SearchFields   []string
	Filters        []Filter
	InlineEditable []string
	ReadOnlyFields []string
	DisableAdd     bool
	Fieldsets      []Fieldset
}

// ColumnSpan is the full width of the list table: the declared columns
// plus the trailing actions column
func (c EntityConfig) ColumnSpan() int {
	return len(c.Columns) + 1
}

var yesNoOptions = []FilterOption{
	{Value: "1", Label: "Yes"},
	{Value: "0", Label: "No"},
}

var createdOptions = []FilterOption{
	{Value: "today", Label: "Today"},
	{Value: "week", Label: "Past 7 days"},
	{Value: "month", Label: "This month"},
	{Value: "year", Label: "This year"},
}

var technologyConfig = EntityConfig{
	Slug:         "technologies",
	Title:        "Technology",
	TitlePlural:  "Technologies",
	Columns:      []string{"Name", "Created"},
	SearchFields: []string{"name"},
	Filters: []Filter{
		{Param: "created", Label: "Created", Options: createdOptions},
	},
	Fieldsets: []Fieldset{
		{Legend: "Technology", Fields: []string{"name"}},
	},
}

var projectConfig = EntityConfig{
	Slug:         "projects",
	Title:        "Project",
	TitlePlural:  "Projects",
	Columns:      []string{"Title", "Featured", "Display order", "Created"},
	SearchFields: []string{"title", "description"},
	Filters: []Filter{
		{Param: "featured", Label: "Featured", Options: yesNoOptions},
		{Param: "created", Label: "Created", Options: createdOptions},
	},
	ReadOnlyFields: []string{"created_at", "updated_at"},
	Fieldsets: []Fieldset{
		{Legend: "Basic Information", Fields: []string{"title", "description", "image"}},
		{Legend: "Links", Fields: []string{"github_url"}},
		{Legend: "Technologies & Display", Fields: []string{"technologies", "featured", "display_order"}},
		{Legend: "Timestamps", Fields: []string{"created_at", "updated_at"}, Collapsed: true},
	},
}

var skillConfig = EntityConfig{
	Slug:           "skills",
	Title:          "Skill",
	TitlePlural:    "Skills",
	Columns:        []string{"Name", "Icon", "Level", "Display order", "Created"},
	SearchFields:   []string{"name"},
	InlineEditable: []string{"display_order", "level"},
	Filters: []Filter{
		{Param: "created", Label: "Created", Options: createdOptions},
	},
	Fieldsets: []Fieldset{
		{Legend: "Skill", Fields: []string{"name", "category", "icon", "level", "display_order"}},
	},
}

var experienceConfig = EntityConfig{
	Slug:           "experiences",
	Title:          "Experience",
	TitlePlural:    "Experiences",
	Columns:        []string{"Title", "Company", "Start date", "End date", "Current", "Display order"},
	SearchFields:   []string{"title", "company", "description"},
	InlineEditable: []string{"display_order"},
	Filters: []Filter{
		{Param: "current", Label: "Current position", Options: yesNoOptions},
		{Param: "created", Label: "Created", Options: createdOptions},
	},
	ReadOnlyFields: []string{"created_at", "updated_at"},
	Fieldsets: []Fieldset{
		{Legend: "Position Details", Fields: []string{"title", "company", "image", "description"}},
		{Legend: "Dates", Fields: []string{"start_date", "end_date"}},
		{Legend: "Display", Fields: []string{"display_order"}},
		{Legend: "Timestamps", Fields: []string{"created_at", "updated_at"}, Collapsed: true},
	},
}

var messageConfig = EntityConfig{
	Slug:           "messages",
	Title:          "Contact Message",
	TitlePlural:    "Contact Messages",
	Columns:        []string{"Name", "Email", "Subject", "Read", "Created"},
	SearchFields:   []string{"name", "email", "subject", "message"},
	InlineEditable: []string{"read"},
	// Messages arrive only through the public contact form
	DisableAdd:     true,
	ReadOnlyFields: []string{"name", "email", "subject", "message", "created_at"},
	Filters: []Filter{
		{Param: "read", Label: "Read", Options: yesNoOptions},
		{Param: "created", Label: "Created", Options: createdOptions},
	},
	Fieldsets: []Fieldset{
		{Legend: "Contact Information", Fields: []string{"name", "email"}},
		{Legend: "Message", Fields: []string{"subject", "message"}},
		{Legend: "Status", Fields: []string{"read"}},
		{Legend: "Timestamps", Fields: []string{"created_at"}, Collapsed: true},
	},
}

// Registry lists every entity managed by the console, in menu order
var Registry = []EntityConfig{
	technologyConfig,
	projectConfig,
	skillConfig,
	experienceConfig,
	messageConfig,
}
