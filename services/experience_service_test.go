package services

import (
	"errors"
	"testing"
	"time"

	"github.com/jaiohri/Portfolio/models"
)

func newTestExperienceService(t *testing.T) *ExperienceService {
	t.Helper()
	return NewExperienceService(openTestDB(t), testConfig(), newTestCache())
}

func TestExperienceLifecycle(t *testing.T) {
	service := newTestExperienceService(t)

	experience := &models.Experience{
		Title:       "Software Engineer",
		Company:     "Acme",
		StartDate:   time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		Description: "Built things",
	}
	if err := service.CreateExperience(experience); err != nil {
		t.Fatalf("CreateExperience returned %v", err)
	}

	experience.Company = "Acme Corp"
	if err := service.UpdateExperience(experience); err != nil {
		t.Fatalf("UpdateExperience returned %v", err)
	}

	reloaded, err := service.GetExperienceByID(experience.ID)
	if err != nil {
		t.Fatalf("GetExperienceByID returned %v", err)
	}
	if reloaded.Company != "Acme Corp" {
		t.Errorf("Company = %q after update, want %q", reloaded.Company, "Acme Corp")
	}

	deleted, err := service.DeleteExperience(experience.ID)
	if err != nil {
		t.Fatalf("DeleteExperience returned %v", err)
	}
	if deleted.Title != "Software Engineer" {
		t.Errorf("DeleteExperience returned %q, want the deleted record", deleted.Title)
	}

	if _, err := service.GetExperienceByID(experience.ID); !errors.Is(err, ErrExperienceNotFound) {
		t.Errorf("lookup after delete returned %v, want ErrExperienceNotFound", err)
	}
}

func TestDeleteMissingExperience(t *testing.T) {
	service := newTestExperienceService(t)

	if _, err := service.DeleteExperience(9999); !errors.Is(err, ErrExperienceNotFound) {
		t.Errorf("DeleteExperience(9999) returned %v, want ErrExperienceNotFound", err)
	}
}

func TestExperienceOrdering(t *testing.T) {
	service := newTestExperienceService(t)

	second := &models.Experience{
		Title: "Intern", Company: "Acme",
		StartDate: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), DisplayOrder: 2,
	}
	first := &models.Experience{
		Title: "Engineer", Company: "Acme",
		StartDate: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), DisplayOrder: 1,
	}
	service.CreateExperience(second)
	service.CreateExperience(first)

	experiences, err := service.GetAllExperiences()
	if err != nil {
		t.Fatalf("GetAllExperiences returned %v", err)
	}
	if len(experiences) != 2 {
		t.Fatalf("GetAllExperiences returned %d entries, want 2", len(experiences))
	}
	if experiences[0].Title != "Engineer" {
		t.Errorf("first entry is %q, want lowest display order first", experiences[0].Title)
	}
}
