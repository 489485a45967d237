package container

import (
	"sync"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/services"

	"gorm.io/gorm"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// Infrastructure services
	cacheService services.InterfaceCacheService
	authService  services.InterfaceAuthService

	// Content services
	projectService    services.InterfaceProjectService
	technologyService services.InterfaceTechnologyService
	skillService      services.InterfaceSkillService
	experienceService services.InterfaceExperienceService
	contactService    services.InterfaceContactService
	seedService       services.InterfaceSeedService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("configuration is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// The cache degrades to in-process storage when Redis is absent
	c.cacheService = services.NewCacheService(c.config)

	c.authService = services.NewAuthService(c.db, c.config)

	c.projectService = services.NewProjectService(c.db, c.config, c.cacheService)
	c.technologyService = services.NewTechnologyService(c.db, c.config)
	c.skillService = services.NewSkillService(c.db, c.config, c.cacheService)
	c.experienceService = services.NewExperienceService(c.db, c.config, c.cacheService)
	c.contactService = services.NewContactService(c.db, c.config)
	c.seedService = services.NewSeedService(c.db, c.config, c.cacheService)
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "cache":
		return c.cacheService
	case "auth":
		return c.authService
	case "project":
		return c.projectService
	case "technology":
		return c.technologyService
	case "skill":
		return c.skillService
	case "experience":
		return c.experienceService
	case "contact":
		return c.contactService
	case "seed":
		return c.seedService
	default:
		return nil
	}
}

// GetDB returns the shared database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	return c.db
}

// GetConfig returns the application configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}
