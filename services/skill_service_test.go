package services

import (
	"testing"

	"github.com/jaiohri/Portfolio/models"
)

func TestGetSkillsByCategory(t *testing.T) {
	db := openTestDB(t)
	service := NewSkillService(db, testConfig(), newTestCache())

	seed := []models.Skill{
		{Name: "Docker", Category: models.CategoryCloud, Level: 80, DisplayOrder: 1},
		{Name: "Go", Category: models.CategoryLanguages, Level: 90, DisplayOrder: 2},
		{Name: "Python", Category: models.CategoryLanguages, Level: 95, DisplayOrder: 1},
	}
	for i := range seed {
		if err := service.SaveSkill(&seed[i]); err != nil {
			t.Fatalf("SaveSkill returned %v", err)
		}
	}

	groups, err := service.GetSkillsByCategory()
	if err != nil {
		t.Fatalf("GetSkillsByCategory returned %v", err)
	}

	// Empty categories are dropped; the rest keep their declared order
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Category != "Languages" || groups[1].Category != "Cloud/DevOps" {
		t.Errorf("group order = %q, %q; want Languages then Cloud/DevOps",
			groups[0].Category, groups[1].Category)
	}
	if groups[0].Skills[0].Name != "Python" {
		t.Errorf("first language is %q, want display order respected", groups[0].Skills[0].Name)
	}
}

func TestGetSkillsByCategoryCachesResult(t *testing.T) {
	db := openTestDB(t)
	service := NewSkillService(db, testConfig(), newTestCache())

	skill := models.Skill{Name: "Go", Category: models.CategoryLanguages, Level: 90}
	if err := service.SaveSkill(&skill); err != nil {
		t.Fatalf("SaveSkill returned %v", err)
	}
	if _, err := service.GetSkillsByCategory(); err != nil {
		t.Fatalf("GetSkillsByCategory returned %v", err)
	}

	// Bypass the service so the cached copy goes stale
	if err := db.Model(&models.Skill{}).Where("name = ?", "Go").
		Update("level", 10).Error; err != nil {
		t.Fatalf("failed to tweak skill: %v", err)
	}

	groups, err := service.GetSkillsByCategory()
	if err != nil {
		t.Fatalf("second GetSkillsByCategory returned %v", err)
	}
	if groups[0].Skills[0].Level != 90 {
		t.Errorf("level = %d, want the cached value 90", groups[0].Skills[0].Level)
	}

	// Saving through the service invalidates the cache
	skill.Level = 85
	if err := service.SaveSkill(&skill); err != nil {
		t.Fatalf("SaveSkill returned %v", err)
	}
	groups, err = service.GetSkillsByCategory()
	if err != nil {
		t.Fatalf("third GetSkillsByCategory returned %v", err)
	}
	if groups[0].Skills[0].Level != 85 {
		t.Errorf("level = %d after save, want 85", groups[0].Skills[0].Level)
	}
}
