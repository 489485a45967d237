package services

import (
	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/models"

	"gorm.io/gorm"
)

// InterfaceSeedService defines the content seeding contract
type InterfaceSeedService interface {
	SeedProjects() (int, error)
	SeedSkills() (int, error)
}

// SeedService upserts the fixed reference catalogues. Both seeders are
// idempotent: re-running them never duplicates rows.
type SeedService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  InterfaceCacheService
}

// NewSeedService creates a new seed service
func NewSeedService(db *gorm.DB, cfg *config.Config, cache InterfaceCacheService) *SeedService {
	return &SeedService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

type seedProject struct {
	Title        string
	Technologies []string
	Description  string
	DisplayOrder uint
}

var projectCatalogue = []seedProject{
	{
		Title:        "Generative AI - Dean's Research",
		Technologies: []string{"Python", "Hugging Face"},
		Description:  "Built an end-to-end NLP pipeline for smart-city text, including scraping, normalization, zero-shot topic classification, and interactive ranking UI. Benchmarked BERT/GPT/BART models; deployed a BART-MNLI inference pipeline with 0.7 confidence routing and semantic retrieval to improve precision; presented results in a DRA poster.",
		DisplayOrder: 1,
	},
	{
		Title:        "Arcane Events – Lottery-Based Android Event Platform",
		Technologies: []string{"Java", "Android Studio", "Firebase", "GitHub Projects", "Figma", "QR Scanning", "Geolocation APIs"},
		Description:  "Developed a production-scale Android application enabling lottery-based event registration with multi-role access (entrant, organizer, admin), real-time notifications, QR code scanning, and Firebase-backed data persistence. Executed the full software engineering lifecycle in a 7-person team, including requirements gathering, UML/CRC design, sprint planning, backlog management, and iterative delivery with documented agile workflows.",
		DisplayOrder: 2,
	},
	{
		Title:        "Portfolio Website",
		Technologies: []string{"Python", "Django", "HTML", "CSS", "JavaScript", "Tailwind CSS", "PostgreSQL", "Docker"},
		Description:  "Developed a production-grade full-stack Django platform with a custom CMS, Dockerized PostgreSQL, and modular Tailwind/HTMX frontend architecture. Implemented interactive features (cursor effects, partial page loads, admin dashboards) to improve UX and maintainability.",
		DisplayOrder: 3,
	},
	{
		Title:        "Autonomous Game AI Controller",
		Technologies: []string{"Python", "NumPy", "SciPy", "scikit-fuzzy", "Genetic Algorithms"},
		Description:  "Built a fuzzy-logic autonomous game controller integrating real-time targeting, collision avoidance, and motion control using multi-sensor inputs (bullet time, angular error, collision risk, ship dynamics). Optimized controller behavior using a genetic algorithm, tuning fuzzy parameters to maximize hit rate while minimizing deaths through simulation-based fitness evaluation.",
		DisplayOrder: 4,
	},
}

type seedSkill struct {
	Name         string
	Icon         string
	Level        uint
	DisplayOrder uint
	Category     string
}

var skillCatalogue = []seedSkill{
	// Languages
	{"Python", "🐍", 95, 1, models.CategoryLanguages},
	{"C", "🇨", 80, 2, models.CategoryLanguages},
	{"C++", "➕", 85, 3, models.CategoryLanguages},
	{"Java", "☕", 85, 4, models.CategoryLanguages},
	{"Rust", "🦀", 75, 5, models.CategoryLanguages},
	{"JavaScript", "📜", 90, 6, models.CategoryLanguages},
	{"HTML/CSS", "🎨", 95, 7, models.CategoryLanguages},

	// Frameworks
	{"Django", "🎸", 95, 1, models.CategoryFrameworks},
	{"Flask", "⚗️", 90, 2, models.CategoryFrameworks},
	{"React", "⚛️", 85, 3, models.CategoryFrameworks},
	{"Tailwind", "🌬️", 90, 4, models.CategoryFrameworks},
	{"HTMX", "🔄", 85, 5, models.CategoryFrameworks},
	{"Framer", "🖼️", 80, 6, models.CategoryFrameworks},

	// AI/ML
	{"ANN", "🧠", 85, 1, models.CategoryAIML},
	{"CNN", "👁️", 85, 2, models.CategoryAIML},
	{"RAG", "📚", 90, 3, models.CategoryAIML},
	{"LangChain", "🦜", 90, 4, models.CategoryAIML},
	{"LangGraph", "📊", 85, 5, models.CategoryAIML},
	{"NLP Pipelines", "🗣️", 90, 6, models.CategoryAIML},

	// Backend/Databases
	{"PostgreSQL", "🐘", 90, 1, models.CategoryBackend},
	{"MongoDB", "🍃", 85, 2, models.CategoryBackend},
	{"Redis", "🔴", 80, 3, models.CategoryBackend},
	{"Celery", "🥦", 80, 4, models.CategoryBackend},

	// Cloud/DevOps
	{"Docker", "🐳", 85, 1, models.CategoryCloud},
	{"AWS", "☁️", 80, 2, models.CategoryCloud},
	{"Pipedream", "🔗", 85, 3, models.CategoryCloud},

	// Developer Tools
	{"Git", "🌲", 95, 1, models.CategoryTools},
	{"VS Code", "📝", 95, 2, models.CategoryTools},
	{"Cursor", "🖱️", 95, 3, models.CategoryTools},
	{"Jira", "🎫", 85, 4, models.CategoryTools},
	{"LangSmith", "🛠️", 85, 5, models.CategoryTools},

	// CS Fundamentals
	{"Data Structures", "🌳", 90, 1, models.CategoryFundamentals},
	{"Algorithms", "🧮", 90, 2, models.CategoryFundamentals},
	{"OOP", "📦", 95, 3, models.CategoryFundamentals},
	{"System Design", "🏗️", 85, 4, models.CategoryFundamentals},
}

// SeedProjects upserts the project catalogue, matching rows by title.
// Existing rows get their description and display order refreshed and
// their technology set replaced.
func (s *SeedService) SeedProjects() (int, error) {
	count := 0
	for _, data := range projectCatalogue {
		var project models.Project
		err := s.DB.Where("title = ?", data.Title).
			Attrs(models.Project{
				Description:  data.Description,
				DisplayOrder: data.DisplayOrder,
				Featured:     true,
			}).
			FirstOrCreate(&project, models.Project{Title: data.Title}).Error
		if err != nil {
			return count, err
		}

		// Refresh mutable fields on re-run
		project.Description = data.Description
		project.DisplayOrder = data.DisplayOrder
		if err := s.DB.Save(&project).Error; err != nil {
			return count, err
		}

		technologies := make([]models.Technology, 0, len(data.Technologies))
		for _, name := range data.Technologies {
			var tech models.Technology
			err := s.DB.Where("name = ?", name).FirstOrCreate(&tech, models.Technology{Name: name}).Error
			if err != nil {
				return count, err
			}
			technologies = append(technologies, tech)
		}
		if err := s.DB.Model(&project).Association("Technologies").Replace(technologies); err != nil {
			return count, err
		}
		count++
	}

	s.Cache.Invalidate(CacheKeyProjects)
	return count, nil
}

// SeedSkills upserts the skill catalogue, matching rows by name.
// Category, icon, level and display order are always overwritten.
func (s *SeedService) SeedSkills() (int, error) {
	count := 0
	for _, data := range skillCatalogue {
		var skill models.Skill
		err := s.DB.Where("name = ?", data.Name).FirstOrCreate(&skill, models.Skill{Name: data.Name}).Error
		if err != nil {
			return count, err
		}

		skill.Category = data.Category
		skill.Icon = data.Icon
		skill.Level = data.Level
		skill.DisplayOrder = data.DisplayOrder
		if err := s.DB.Save(&skill).Error; err != nil {
			return count, err
		}
		count++
	}

	s.Cache.Invalidate(CacheKeySkills)
	return count, nil
}
