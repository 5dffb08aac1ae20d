// Mr_Evra | 2025
// dataset_test.go

package seed

import (
	"testing"
)

func TestDatasetShape(t *testing.T) {
	categories := categorySeeds()
	if len(categories) != 5 {
		t.Fatalf("categories = %d, want 5", len(categories))
	}

	skills := skillSeeds(categories)
	if len(skills) != 30 {
		t.Fatalf("skills = %d, want 30", len(skills))
	}

	projects := projectSeeds()
	if len(projects) != 5 {
		t.Fatalf("projects = %d, want 5", len(projects))
	}

	hackathons := hackathonSeeds()
	if len(hackathons) != 5 {
		t.Fatalf("hackathons = %d, want 5", len(hackathons))
	}
}

func TestSkillSeedsReferenceCategories(t *testing.T) {
	categories := categorySeeds()
	known := make(map[string]bool, len(categories))
	for _, cat := range categories {
		known[cat.ID] = true
	}

	for _, skill := range skillSeeds(categories) {
		if !known[skill.CategoryID] {
			t.Errorf("skill %s points at unknown category %s",
				skill.NameEn, skill.CategoryID)
		}
		if skill.Level < 0 || skill.Level > 100 {
			t.Errorf("skill %s level %d out of range", skill.NameEn, skill.Level)
		}
	}
}

func TestDatasetIsBilingual(t *testing.T) {
	hero := heroSeed()
	if hero.TitleEn == "" || hero.TitleFr == "" {
		t.Error("hero missing a language")
	}

	about := aboutSeed()
	if about.DescriptionEn == "" || about.DescriptionFr == "" {
		t.Error("about missing a language")
	}

	for _, project := range projectSeeds() {
		if project.TitleEn == "" || project.TitleFr == "" {
			t.Errorf("project %s missing a language", project.ID)
		}
		if !project.Published {
			t.Errorf("project %s should seed as published", project.TitleEn)
		}
	}

	for _, hackathon := range hackathonSeeds() {
		if hackathon.NameEn == "" || hackathon.NameFr == "" {
			t.Errorf("hackathon %s missing a language", hackathon.ID)
		}
		if hackathon.Date.IsZero() {
			t.Errorf("hackathon %s missing a date", hackathon.NameEn)
		}
	}
}
