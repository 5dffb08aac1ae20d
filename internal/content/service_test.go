// Mr_Evra | 2025
// service_test.go

package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/mr-evra/portfolio-api/internal/core"
)

type fakeRepository struct {
	hero       *HeroSection
	about      *AboutSection
	categories map[string]*SkillCategory
	skills     map[string]*Skill
	projects   map[string]*Project
	hackathons map[string]*Hackathon

	forcedErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		categories: make(map[string]*SkillCategory),
		skills:     make(map[string]*Skill),
		projects:   make(map[string]*Project),
		hackathons: make(map[string]*Hackathon),
	}
}

func (f *fakeRepository) UpsertHero(ctx context.Context, hero *HeroSection) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if f.hero != nil {
		hero.ID = f.hero.ID
		hero.CreatedAt = f.hero.CreatedAt
	}
	copied := *hero
	f.hero = &copied
	return nil
}

func (f *fakeRepository) GetHero(ctx context.Context) (*HeroSection, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	if f.hero == nil {
		return nil, core.ErrNotFound
	}
	copied := *f.hero
	return &copied, nil
}

func (f *fakeRepository) UpsertAbout(ctx context.Context, about *AboutSection) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if f.about != nil {
		about.ID = f.about.ID
		about.CreatedAt = f.about.CreatedAt
	}
	copied := *about
	f.about = &copied
	return nil
}

func (f *fakeRepository) GetAbout(ctx context.Context) (*AboutSection, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	if f.about == nil {
		return nil, core.ErrNotFound
	}
	copied := *f.about
	return &copied, nil
}

func (f *fakeRepository) CreateSkillCategory(ctx context.Context, cat *SkillCategory) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	copied := *cat
	f.categories[cat.ID] = &copied
	return nil
}

func (f *fakeRepository) UpdateSkillCategory(ctx context.Context, cat *SkillCategory) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, ok := f.categories[cat.ID]; !ok {
		return core.ErrNotFound
	}
	copied := *cat
	f.categories[cat.ID] = &copied
	return nil
}

func (f *fakeRepository) DeleteSkillCategory(ctx context.Context, id string) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, ok := f.categories[id]; !ok {
		return core.ErrNotFound
	}
	for _, skill := range f.skills {
		if skill.CategoryID == id {
			return core.ErrConflict
		}
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeRepository) GetSkillCategory(ctx context.Context, id string) (*SkillCategory, error) {
	if cat, ok := f.categories[id]; ok {
		copied := *cat
		return &copied, nil
	}
	return nil, core.ErrNotFound
}

// The fake lists sort the way the store queries do, so ordering
// assertions hold at the service layer too.
func (f *fakeRepository) ListSkillCategories(ctx context.Context) ([]SkillCategory, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]SkillCategory, 0, len(f.categories))
	for _, cat := range f.categories {
		out = append(out, *cat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeRepository) CreateSkill(ctx context.Context, skill *Skill) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, ok := f.categories[skill.CategoryID]; !ok {
		return core.ErrConflict
	}
	copied := *skill
	f.skills[skill.ID] = &copied
	return nil
}

func (f *fakeRepository) UpdateSkill(ctx context.Context, skill *Skill) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, ok := f.skills[skill.ID]; !ok {
		return core.ErrNotFound
	}
	if _, ok := f.categories[skill.CategoryID]; !ok {
		return core.ErrConflict
	}
	copied := *skill
	f.skills[skill.ID] = &copied
	return nil
}

func (f *fakeRepository) DeleteSkill(ctx context.Context, id string) error {
	if _, ok := f.skills[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.skills, id)
	return nil
}

func (f *fakeRepository) GetSkill(ctx context.Context, id string) (*Skill, error) {
	if skill, ok := f.skills[id]; ok {
		copied := *skill
		return &copied, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) ListSkills(ctx context.Context) ([]Skill, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]Skill, 0, len(f.skills))
	for _, skill := range f.skills {
		out = append(out, *skill)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeRepository) CreateProject(ctx context.Context, project *Project) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	copied := *project
	f.projects[project.ID] = &copied
	return nil
}

func (f *fakeRepository) UpdateProject(ctx context.Context, project *Project) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, ok := f.projects[project.ID]; !ok {
		return core.ErrNotFound
	}
	copied := *project
	f.projects[project.ID] = &copied
	return nil
}

func (f *fakeRepository) DeleteProject(ctx context.Context, id string) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, ok := f.projects[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

func (f *fakeRepository) GetProject(ctx context.Context, id string) (*Project, error) {
	if project, ok := f.projects[id]; ok {
		copied := *project
		return &copied, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) ListProjects(ctx context.Context, publishedOnly bool) ([]Project, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]Project, 0, len(f.projects))
	for _, project := range f.projects {
		if publishedOnly && !project.Published {
			continue
		}
		out = append(out, *project)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeRepository) CreateHackathon(ctx context.Context, hackathon *Hackathon) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	copied := *hackathon
	f.hackathons[hackathon.ID] = &copied
	return nil
}

func (f *fakeRepository) UpdateHackathon(ctx context.Context, hackathon *Hackathon) error {
	if _, ok := f.hackathons[hackathon.ID]; !ok {
		return core.ErrNotFound
	}
	copied := *hackathon
	f.hackathons[hackathon.ID] = &copied
	return nil
}

func (f *fakeRepository) DeleteHackathon(ctx context.Context, id string) error {
	if _, ok := f.hackathons[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.hackathons, id)
	return nil
}

func (f *fakeRepository) GetHackathon(ctx context.Context, id string) (*Hackathon, error) {
	if hackathon, ok := f.hackathons[id]; ok {
		copied := *hackathon
		return &copied, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) ListHackathons(ctx context.Context, publishedOnly bool) ([]Hackathon, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]Hackathon, 0, len(f.hackathons))
	for _, hackathon := range f.hackathons {
		if publishedOnly && !hackathon.Published {
			continue
		}
		out = append(out, *hackathon)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeRepository) Counts(ctx context.Context) (*DashboardCounts, error) {
	counts := &DashboardCounts{
		ProjectsCount:   len(f.projects),
		SkillsCount:     len(f.skills),
		CategoriesCount: len(f.categories),
		HackathonsCount: len(f.hackathons),
	}
	for _, project := range f.projects {
		if project.Published {
			counts.PublishedProjects++
		}
	}
	for _, hackathon := range f.hackathons {
		if hackathon.Published {
			counts.PublishedHackathons++
		}
	}
	return counts, nil
}

type fakeViewCache struct {
	view        *PublicView
	invalidated int
	getErr      error
	setErr      error
}

func (f *fakeViewCache) GetPublicView(ctx context.Context) (*PublicView, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.view == nil {
		return nil, core.ErrNotFound
	}
	return f.view, nil
}

func (f *fakeViewCache) SetPublicView(ctx context.Context, view *PublicView) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.view = view
	return nil
}

func (f *fakeViewCache) Invalidate(ctx context.Context) error {
	f.invalidated++
	f.view = nil
	return nil
}

func newTestService(repo Repository, cache ViewCache) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, cache, logger)
}

func intp(v int) *int       { return &v }
func boolp(v bool) *bool    { return &v }
func strp(v string) *string { return &v }

func timep(v time.Time) *time.Time { return &v }

func validHeroPayload() HeroPayload {
	return HeroPayload{
		FirstName: "Evra",
		LastName:  "DJIGBEGNONHOU",
		Nickname:  "Mr_Evra",
		TitleEn:   "Software Engineer",
		TitleFr:   "Ingénieur Logiciel",
		TaglineEn: "Building things",
		TaglineFr: "Je construis des choses",
		CTATextEn: "View projects",
		CTATextFr: "Voir les projets",
		CTALink:   "#projects",
	}
}

func validAboutPayload() AboutPayload {
	return AboutPayload{
		IntroEn:           "Hello",
		IntroFr:           "Bonjour",
		DescriptionEn:     "Long description",
		DescriptionFr:     "Longue description",
		YearsExperience:   intp(5),
		ProjectsCompleted: intp(50),
		ClientsSatisfied:  intp(30),
	}
}

func validProjectPayload() ProjectPayload {
	return ProjectPayload{
		TitleEn:       "Portfolio",
		TitleFr:       "Portfolio",
		ShortDescEn:   "Short",
		ShortDescFr:   "Court",
		DescriptionEn: "Full",
		DescriptionFr: "Complet",
		TechStack:     []string{"Go", "PostgreSQL"},
		Role:          "Lead developer",
		ImpactEn:      "Shipped",
		ImpactFr:      "Livré",
		Images:        []string{"/images/portfolio.png"},
		Featured:      boolp(true),
		Published:     boolp(true),
		Order:         intp(1),
	}
}

func validHackathonPayload() HackathonPayload {
	return HackathonPayload{
		NameEn:        "HackTheNorth",
		NameFr:        "HackTheNorth",
		DescriptionEn: "48h build",
		DescriptionFr: "48h de construction",
		Position:      "1st place",
		Date:          timep(time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC)),
		Location:      "Waterloo",
		TechStack:     []string{"Go"},
		Published:     boolp(true),
		Order:         intp(1),
	}
}

func TestUpsertHeroRoundTrip(t *testing.T) {
	repo := newFakeRepository()
	cache := &fakeViewCache{}
	svc := newTestService(repo, cache)

	result := svc.UpsertHero(context.Background(), validHeroPayload())
	if !result.Success {
		t.Fatalf("expected success, got error %q code %q", result.Error, result.Code)
	}
	if result.ID == "" {
		t.Fatal("expected a generated id")
	}

	hero, err := repo.GetHero(context.Background())
	if err != nil {
		t.Fatalf("get hero: %v", err)
	}
	if hero.Nickname != "Mr_Evra" {
		t.Errorf("nickname = %q, want Mr_Evra", hero.Nickname)
	}
}

func TestUpsertHeroKeepsOriginalID(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeViewCache{})

	first := svc.UpsertHero(context.Background(), validHeroPayload())
	if !first.Success {
		t.Fatalf("first upsert failed: %q", first.Error)
	}

	second := validHeroPayload()
	second.TitleEn = "Staff Engineer"
	result := svc.UpsertHero(context.Background(), second)
	if !result.Success {
		t.Fatalf("second upsert failed: %q", result.Error)
	}

	if result.ID != first.ID {
		t.Errorf("id changed across upserts: %q then %q", first.ID, result.ID)
	}

	hero, err := repo.GetHero(context.Background())
	if err != nil {
		t.Fatalf("get hero: %v", err)
	}
	if hero.TitleEn != "Staff Engineer" {
		t.Errorf("title = %q, want second payload value", hero.TitleEn)
	}
}

func TestUpsertHeroValidation(t *testing.T) {
	svc := newTestService(newFakeRepository(), &fakeViewCache{})

	payload := validHeroPayload()
	payload.FirstName = ""

	result := svc.UpsertHero(context.Background(), payload)
	if result.Success {
		t.Fatal("expected validation failure")
	}
	if result.Code != CodeValidation {
		t.Errorf("code = %q, want %q", result.Code, CodeValidation)
	}
	if result.Error == "" {
		t.Error("expected a validation message")
	}
}

func TestUpsertAboutKeepsOriginalID(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeViewCache{})

	first := svc.UpsertAbout(context.Background(), validAboutPayload())
	if !first.Success {
		t.Fatalf("first upsert failed: %q", first.Error)
	}

	second := validAboutPayload()
	second.YearsExperience = intp(6)
	result := svc.UpsertAbout(context.Background(), second)
	if !result.Success {
		t.Fatalf("second upsert failed: %q", result.Error)
	}
	if result.ID != first.ID {
		t.Errorf("id changed across upserts: %q then %q", first.ID, result.ID)
	}

	about, err := repo.GetAbout(context.Background())
	if err != nil {
		t.Fatalf("get about: %v", err)
	}
	if about.YearsExperience != 6 {
		t.Errorf("years = %d, want 6", about.YearsExperience)
	}
}

func TestAboutZeroCountersAccepted(t *testing.T) {
	svc := newTestService(newFakeRepository(), &fakeViewCache{})

	payload := validAboutPayload()
	payload.ClientsSatisfied = intp(0)

	result := svc.UpsertAbout(context.Background(), payload)
	if !result.Success {
		t.Fatalf("zero counter rejected: %q", result.Error)
	}
}

func TestCreateSkillLevelBounds(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeViewCache{})

	cat := svc.CreateSkillCategory(context.Background(), SkillCategoryPayload{
		NameEn: "Languages",
		NameFr: "Langages",
		Order:  intp(1),
	})
	if !cat.Success {
		t.Fatalf("create category failed: %q", cat.Error)
	}

	base := SkillPayload{
		CategoryID: cat.ID,
		NameEn:     "Go",
		NameFr:     "Go",
		Order:      intp(1),
	}

	for _, level := range []int{0, 100} {
		payload := base
		payload.Level = intp(level)
		result := svc.CreateSkill(context.Background(), payload)
		if !result.Success {
			t.Errorf("level %d rejected: %q", level, result.Error)
		}
	}

	for _, level := range []int{-1, 101, 150} {
		payload := base
		payload.Level = intp(level)
		result := svc.CreateSkill(context.Background(), payload)
		if result.Success {
			t.Errorf("level %d accepted, want rejection", level)
		}
		if result.Code != CodeValidation {
			t.Errorf("level %d code = %q, want %q", level, result.Code, CodeValidation)
		}
	}
}

func TestDeleteCategoryRejectedWhileReferenced(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeViewCache{})

	cat := svc.CreateSkillCategory(context.Background(), SkillCategoryPayload{
		NameEn: "Backend",
		NameFr: "Backend",
		Order:  intp(1),
	})
	skill := svc.CreateSkill(context.Background(), SkillPayload{
		CategoryID: cat.ID,
		NameEn:     "PostgreSQL",
		NameFr:     "PostgreSQL",
		Level:      intp(80),
		Order:      intp(1),
	})
	if !skill.Success {
		t.Fatalf("create skill failed: %q", skill.Error)
	}

	result := svc.DeleteSkillCategory(context.Background(), cat.ID)
	if result.Success {
		t.Fatal("delete succeeded while a skill still references the category")
	}
	if result.Code != CodeConflict {
		t.Errorf("code = %q, want %q", result.Code, CodeConflict)
	}

	if _, err := repo.GetSkillCategory(context.Background(), cat.ID); err != nil {
		t.Errorf("category gone after rejected delete: %v", err)
	}

	if del := svc.DeleteSkill(context.Background(), skill.ID); !del.Success {
		t.Fatalf("delete skill failed: %q", del.Error)
	}
	if result := svc.DeleteSkillCategory(context.Background(), cat.ID); !result.Success {
		t.Errorf("delete failed after last skill removed: %q", result.Error)
	}
}

func TestUpdateProjectReplacesRecord(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeViewCache{})

	created := svc.CreateProject(context.Background(), validProjectPayload())
	if !created.Success {
		t.Fatalf("create failed: %q", created.Error)
	}

	replacement := validProjectPayload()
	replacement.TitleEn = "Portfolio v2"
	replacement.GithubURL = strp("https://github.com/mr-evra/portfolio")
	replacement.Featured = boolp(false)

	result := svc.UpdateProject(context.Background(), created.ID, replacement)
	if !result.Success {
		t.Fatalf("update failed: %q", result.Error)
	}
	if result.ID != created.ID {
		t.Errorf("id changed on update: %q then %q", created.ID, result.ID)
	}

	project, err := repo.GetProject(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if project.TitleEn != "Portfolio v2" {
		t.Errorf("title = %q, want replacement value", project.TitleEn)
	}
	if project.Featured {
		t.Error("featured flag not replaced")
	}
	if project.GithubURL == nil || *project.GithubURL != "https://github.com/mr-evra/portfolio" {
		t.Error("github url not replaced")
	}
}

func TestUpdateProjectMissing(t *testing.T) {
	svc := newTestService(newFakeRepository(), &fakeViewCache{})

	result := svc.UpdateProject(context.Background(), "nope", validProjectPayload())
	if result.Success {
		t.Fatal("expected not found")
	}
	if result.Code != CodeNotFound {
		t.Errorf("code = %q, want %q", result.Code, CodeNotFound)
	}
}

func TestDeleteProjectMissing(t *testing.T) {
	svc := newTestService(newFakeRepository(), &fakeViewCache{})

	result := svc.DeleteProject(context.Background(), "nope")
	if result.Success {
		t.Fatal("expected not found")
	}
	if result.Code != CodeNotFound {
		t.Errorf("code = %q, want %q", result.Code, CodeNotFound)
	}
}

func TestStorageFailureCode(t *testing.T) {
	repo := newFakeRepository()
	repo.forcedErr = fmt.Errorf("connection refused: %w", errors.New("dial tcp"))
	svc := newTestService(repo, &fakeViewCache{})

	result := svc.CreateProject(context.Background(), validProjectPayload())
	if result.Success {
		t.Fatal("expected storage failure")
	}
	if result.Code != CodeStorage {
		t.Errorf("code = %q, want %q", result.Code, CodeStorage)
	}
}

func TestPublicViewFiltersUnpublished(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeViewCache{})

	published := validProjectPayload()
	if result := svc.CreateProject(context.Background(), published); !result.Success {
		t.Fatalf("create published: %q", result.Error)
	}

	draft := validProjectPayload()
	draft.TitleEn = "Draft"
	draft.Published = boolp(false)
	if result := svc.CreateProject(context.Background(), draft); !result.Success {
		t.Fatalf("create draft: %q", result.Error)
	}

	view, err := svc.PublicView(context.Background())
	if err != nil {
		t.Fatalf("public view: %v", err)
	}
	if len(view.Projects) != 1 {
		t.Fatalf("public projects = %d, want 1", len(view.Projects))
	}
	if view.Projects[0].TitleEn == "Draft" {
		t.Error("draft project leaked into public view")
	}

	admin, err := svc.AdminProjects(context.Background())
	if err != nil {
		t.Fatalf("admin projects: %v", err)
	}
	if len(admin) != 2 {
		t.Errorf("admin projects = %d, want 2", len(admin))
	}
}

func TestPublicViewHackathonsNewestFirst(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeViewCache{})

	ctx := context.Background()

	dates := []time.Time{
		time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		payload := validHackathonPayload()
		payload.NameEn = fmt.Sprintf("Hackathon %d", i)
		payload.NameFr = payload.NameEn
		payload.Date = timep(d)
		if result := svc.CreateHackathon(ctx, payload); !result.Success {
			t.Fatalf("create hackathon %d: %q", i, result.Error)
		}
	}

	view, err := svc.PublicView(ctx)
	if err != nil {
		t.Fatalf("public view: %v", err)
	}
	if len(view.Hackathons) != 3 {
		t.Fatalf("hackathons = %d, want 3", len(view.Hackathons))
	}

	want := []time.Time{
		time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	for i, hackathon := range view.Hackathons {
		if !hackathon.Date.Equal(want[i]) {
			t.Errorf("position %d date = %s, want %s",
				i,
				hackathon.Date.Format("2006-01-02"),
				want[i].Format("2006-01-02"),
			)
		}
	}
}

func TestPublicViewProjectsOrderedAscending(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeViewCache{})

	ctx := context.Background()

	for _, order := range []int{3, 1, 2} {
		payload := validProjectPayload()
		payload.TitleEn = fmt.Sprintf("Project %d", order)
		payload.Order = intp(order)
		if result := svc.CreateProject(ctx, payload); !result.Success {
			t.Fatalf("create project %d: %q", order, result.Error)
		}
	}

	view, err := svc.PublicView(ctx)
	if err != nil {
		t.Fatalf("public view: %v", err)
	}
	if len(view.Projects) != 3 {
		t.Fatalf("projects = %d, want 3", len(view.Projects))
	}
	for i, project := range view.Projects {
		if project.Order != i+1 {
			t.Errorf("position %d has order %d, want %d", i, project.Order, i+1)
		}
	}
}

func TestPublicViewAbsentSingletonsAreNull(t *testing.T) {
	svc := newTestService(newFakeRepository(), &fakeViewCache{})

	view, err := svc.PublicView(context.Background())
	if err != nil {
		t.Fatalf("public view: %v", err)
	}
	if view.Hero != nil || view.About != nil {
		t.Error("unconfigured singletons should be null, not an error")
	}
}

func TestPublicViewServedFromCache(t *testing.T) {
	repo := newFakeRepository()
	cached := &PublicView{Hero: &HeroSection{Nickname: "cached"}}
	cache := &fakeViewCache{view: cached}
	svc := newTestService(repo, cache)

	view, err := svc.PublicView(context.Background())
	if err != nil {
		t.Fatalf("public view: %v", err)
	}
	if view.Hero == nil || view.Hero.Nickname != "cached" {
		t.Error("expected the cached projection, not a rebuild")
	}
}

func TestPublicViewSurvivesCacheOutage(t *testing.T) {
	repo := newFakeRepository()
	cache := &fakeViewCache{
		getErr: errors.New("redis down"),
		setErr: errors.New("redis down"),
	}
	svc := newTestService(repo, cache)

	if result := svc.UpsertHero(context.Background(), validHeroPayload()); !result.Success {
		t.Fatalf("upsert failed: %q", result.Error)
	}

	view, err := svc.PublicView(context.Background())
	if err != nil {
		t.Fatalf("public view with cache down: %v", err)
	}
	if view.Hero == nil {
		t.Error("expected hero from direct query")
	}
}

func TestMutationsInvalidateCache(t *testing.T) {
	repo := newFakeRepository()
	cache := &fakeViewCache{}
	svc := newTestService(repo, cache)

	ctx := context.Background()

	if result := svc.UpsertHero(ctx, validHeroPayload()); !result.Success {
		t.Fatalf("upsert hero: %q", result.Error)
	}
	created := svc.CreateHackathon(ctx, validHackathonPayload())
	if !created.Success {
		t.Fatalf("create hackathon: %q", created.Error)
	}
	if result := svc.DeleteHackathon(ctx, created.ID); !result.Success {
		t.Fatalf("delete hackathon: %q", result.Error)
	}

	if cache.invalidated != 3 {
		t.Errorf("invalidations = %d, want one per successful mutation", cache.invalidated)
	}
}

func TestFailedMutationDoesNotInvalidateCache(t *testing.T) {
	cache := &fakeViewCache{}
	svc := newTestService(newFakeRepository(), cache)

	payload := validHeroPayload()
	payload.FirstName = ""
	if result := svc.UpsertHero(context.Background(), payload); result.Success {
		t.Fatal("expected validation failure")
	}
	if result := svc.DeleteProject(context.Background(), "nope"); result.Success {
		t.Fatal("expected not found")
	}

	if cache.invalidated != 0 {
		t.Errorf("invalidations = %d, want 0", cache.invalidated)
	}
}

func TestCategoriesWithSkillsNesting(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeViewCache{})

	ctx := context.Background()

	empty := svc.CreateSkillCategory(ctx, SkillCategoryPayload{
		NameEn: "Security", NameFr: "Sécurité", Order: intp(2),
	})
	langs := svc.CreateSkillCategory(ctx, SkillCategoryPayload{
		NameEn: "Languages", NameFr: "Langages", Order: intp(1),
	})

	skills := []struct {
		name  string
		order int
	}{
		{"Python", 2},
		{"Go", 1},
	}
	for _, s := range skills {
		result := svc.CreateSkill(ctx, SkillPayload{
			CategoryID: langs.ID,
			NameEn:     s.name,
			NameFr:     s.name,
			Level:      intp(90),
			Order:      intp(s.order),
		})
		if !result.Success {
			t.Fatalf("create skill %s: %q", s.name, result.Error)
		}
	}

	nested, err := svc.CategoriesWithSkills(ctx)
	if err != nil {
		t.Fatalf("categories with skills: %v", err)
	}
	if len(nested) != 2 {
		t.Fatalf("categories = %d, want 2", len(nested))
	}

	if nested[0].ID != langs.ID || nested[1].ID != empty.ID {
		t.Fatal("categories not in ascending order")
	}

	langSkills := nested[0].Skills
	if len(langSkills) != 2 {
		t.Fatalf("language skills = %d, want 2", len(langSkills))
	}
	if langSkills[0].NameEn != "Go" || langSkills[1].NameEn != "Python" {
		t.Errorf("skills not in ascending order: %s, %s",
			langSkills[0].NameEn, langSkills[1].NameEn)
	}

	if nested[1].Skills == nil {
		t.Error("empty category skills should be an empty slice, not nil")
	}
	if len(nested[1].Skills) != 0 {
		t.Errorf("security skills = %d, want 0", len(nested[1].Skills))
	}
}

func TestDashboardCounts(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeViewCache{})

	ctx := context.Background()

	if result := svc.CreateProject(ctx, validProjectPayload()); !result.Success {
		t.Fatalf("create published project: %q", result.Error)
	}
	draft := validProjectPayload()
	draft.Published = boolp(false)
	if result := svc.CreateProject(ctx, draft); !result.Success {
		t.Fatalf("create draft project: %q", result.Error)
	}
	if result := svc.CreateHackathon(ctx, validHackathonPayload()); !result.Success {
		t.Fatalf("create hackathon: %q", result.Error)
	}

	counts, err := svc.DashboardCounts(ctx)
	if err != nil {
		t.Fatalf("dashboard counts: %v", err)
	}
	if counts.ProjectsCount != 2 || counts.PublishedProjects != 1 {
		t.Errorf("projects = %d/%d published, want 2/1",
			counts.ProjectsCount, counts.PublishedProjects)
	}
	if counts.HackathonsCount != 1 || counts.PublishedHackathons != 1 {
		t.Errorf("hackathons = %d/%d published, want 1/1",
			counts.HackathonsCount, counts.PublishedHackathons)
	}
}
