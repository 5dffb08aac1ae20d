// Mr_Evra | 2025
// service.go

package content

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mr-evra/portfolio-api/internal/core"
)

// Service owns validation, mutation and projection for all six content
// kinds. No error escapes a mutation: every outcome is a MutationResult
// the caller can branch on.
type Service struct {
	repo      Repository
	cache     ViewCache
	validator *validator.Validate
	logger    *slog.Logger
}

func NewService(
	repo Repository,
	cache ViewCache,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

func (s *Service) UpsertHero(
	ctx context.Context,
	payload HeroPayload,
) MutationResult {
	if err := s.validator.Struct(payload); err != nil {
		return invalid(err)
	}

	hero := &HeroSection{
		ID:           uuid.New().String(),
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Nickname:     payload.Nickname,
		TitleEn:      payload.TitleEn,
		TitleFr:      payload.TitleFr,
		TaglineEn:    payload.TaglineEn,
		TaglineFr:    payload.TaglineFr,
		CTATextEn:    payload.CTATextEn,
		CTATextFr:    payload.CTATextFr,
		CTALink:      payload.CTALink,
		ProfileImage: payload.ProfileImage,
		ResumeURL:    payload.ResumeURL,
	}

	if err := s.repo.UpsertHero(ctx, hero); err != nil {
		return s.failure(ctx, "upsert hero", err)
	}

	return s.committed(ctx, hero.ID)
}

func (s *Service) UpsertAbout(
	ctx context.Context,
	payload AboutPayload,
) MutationResult {
	if err := s.validator.Struct(payload); err != nil {
		return invalid(err)
	}

	about := &AboutSection{
		ID:                uuid.New().String(),
		IntroEn:           payload.IntroEn,
		IntroFr:           payload.IntroFr,
		DescriptionEn:     payload.DescriptionEn,
		DescriptionFr:     payload.DescriptionFr,
		YearsExperience:   *payload.YearsExperience,
		ProjectsCompleted: *payload.ProjectsCompleted,
		ClientsSatisfied:  *payload.ClientsSatisfied,
		Image:             payload.Image,
	}

	if err := s.repo.UpsertAbout(ctx, about); err != nil {
		return s.failure(ctx, "upsert about", err)
	}

	return s.committed(ctx, about.ID)
}

func (s *Service) CreateSkillCategory(
	ctx context.Context,
	payload SkillCategoryPayload,
) MutationResult {
	if err := s.validator.Struct(payload); err != nil {
		return invalid(err)
	}

	cat := categoryFromPayload(uuid.New().String(), payload)

	if err := s.repo.CreateSkillCategory(ctx, cat); err != nil {
		return s.failure(ctx, "create skill category", err)
	}

	return s.committed(ctx, cat.ID)
}

func (s *Service) UpdateSkillCategory(
	ctx context.Context,
	id string,
	payload SkillCategoryPayload,
) MutationResult {
	if err := s.validator.Struct(payload); err != nil {
		return invalid(err)
	}

	cat := categoryFromPayload(id, payload)

	if err := s.repo.UpdateSkillCategory(ctx, cat); err != nil {
		return s.failure(ctx, "update skill category", err)
	}

	return s.committed(ctx, cat.ID)
}

// DeleteSkillCategory is rejected while skills still reference the
// category. Deleting the skills first is the admin's call to make.
func (s *Service) DeleteSkillCategory(
	ctx context.Context,
	id string,
) MutationResult {
	if err := s.repo.DeleteSkillCategory(ctx, id); err != nil {
		return s.failure(ctx, "delete skill category", err)
	}

	return s.committed(ctx, id)
}

func (s *Service) CreateSkill(
	ctx context.Context,
	payload SkillPayload,
) MutationResult {
	if err := s.validator.Struct(payload); err != nil {
		return invalid(err)
	}

	skill := skillFromPayload(uuid.New().String(), payload)

	if err := s.repo.CreateSkill(ctx, skill); err != nil {
		return s.failure(ctx, "create skill", err)
	}

	return s.committed(ctx, skill.ID)
}

func (s *Service) UpdateSkill(
	ctx context.Context,
	id string,
	payload SkillPayload,
) MutationResult {
	if err := s.validator.Struct(payload); err != nil {
		return invalid(err)
	}

	skill := skillFromPayload(id, payload)

	if err := s.repo.UpdateSkill(ctx, skill); err != nil {
		return s.failure(ctx, "update skill", err)
	}

	return s.committed(ctx, skill.ID)
}

func (s *Service) DeleteSkill(ctx context.Context, id string) MutationResult {
	if err := s.repo.DeleteSkill(ctx, id); err != nil {
		return s.failure(ctx, "delete skill", err)
	}

	return s.committed(ctx, id)
}

func (s *Service) CreateProject(
	ctx context.Context,
	payload ProjectPayload,
) MutationResult {
	if err := s.validator.Struct(payload); err != nil {
		return invalid(err)
	}

	project := projectFromPayload(uuid.New().String(), payload)

	if err := s.repo.CreateProject(ctx, project); err != nil {
		return s.failure(ctx, "create project", err)
	}

	return s.committed(ctx, project.ID)
}

func (s *Service) UpdateProject(
	ctx context.Context,
	id string,
	payload ProjectPayload,
) MutationResult {
	if err := s.validator.Struct(payload); err != nil {
		return invalid(err)
	}

	project := projectFromPayload(id, payload)

	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return s.failure(ctx, "update project", err)
	}

	return s.committed(ctx, project.ID)
}

func (s *Service) DeleteProject(
	ctx context.Context,
	id string,
) MutationResult {
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return s.failure(ctx, "delete project", err)
	}

	return s.committed(ctx, id)
}

func (s *Service) CreateHackathon(
	ctx context.Context,
	payload HackathonPayload,
) MutationResult {
	if err := s.validator.Struct(payload); err != nil {
		return invalid(err)
	}

	hackathon := hackathonFromPayload(uuid.New().String(), payload)

	if err := s.repo.CreateHackathon(ctx, hackathon); err != nil {
		return s.failure(ctx, "create hackathon", err)
	}

	return s.committed(ctx, hackathon.ID)
}

func (s *Service) UpdateHackathon(
	ctx context.Context,
	id string,
	payload HackathonPayload,
) MutationResult {
	if err := s.validator.Struct(payload); err != nil {
		return invalid(err)
	}

	hackathon := hackathonFromPayload(id, payload)

	if err := s.repo.UpdateHackathon(ctx, hackathon); err != nil {
		return s.failure(ctx, "update hackathon", err)
	}

	return s.committed(ctx, hackathon.ID)
}

func (s *Service) DeleteHackathon(
	ctx context.Context,
	id string,
) MutationResult {
	if err := s.repo.DeleteHackathon(ctx, id); err != nil {
		return s.failure(ctx, "delete hackathon", err)
	}

	return s.committed(ctx, id)
}

// PublicView assembles the public projection, serving from cache when a
// fresh copy exists. Cache failures degrade to a direct query.
func (s *Service) PublicView(ctx context.Context) (*PublicView, error) {
	cached, err := s.cache.GetPublicView(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		s.logger.WarnContext(ctx, "public view cache read failed",
			"error", err)
	}

	view, err := s.buildPublicView(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetPublicView(ctx, view); err != nil {
		s.logger.WarnContext(ctx, "public view cache write failed",
			"error", err)
	}

	return view, nil
}

func (s *Service) buildPublicView(ctx context.Context) (*PublicView, error) {
	view := &PublicView{}

	hero, err := s.repo.GetHero(ctx)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}
	view.Hero = hero

	about, err := s.repo.GetAbout(ctx)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}
	view.About = about

	categories, err := s.CategoriesWithSkills(ctx)
	if err != nil {
		return nil, err
	}
	view.Categories = categories

	projects, err := s.repo.ListProjects(ctx, true)
	if err != nil {
		return nil, err
	}
	view.Projects = projects

	hackathons, err := s.repo.ListHackathons(ctx, true)
	if err != nil {
		return nil, err
	}
	view.Hackathons = hackathons

	return view, nil
}

// CategoriesWithSkills nests every skill under its category; both levels
// keep ascending (order, id) ordering from the store.
func (s *Service) CategoriesWithSkills(
	ctx context.Context,
) ([]CategoryWithSkills, error) {
	categories, err := s.repo.ListSkillCategories(ctx)
	if err != nil {
		return nil, err
	}

	skills, err := s.repo.ListSkills(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]Skill, len(categories))
	for _, skill := range skills {
		byCategory[skill.CategoryID] = append(
			byCategory[skill.CategoryID],
			skill,
		)
	}

	nested := make([]CategoryWithSkills, 0, len(categories))
	for _, cat := range categories {
		entry := CategoryWithSkills{
			SkillCategory: cat,
			Skills:        byCategory[cat.ID],
		}
		if entry.Skills == nil {
			entry.Skills = []Skill{}
		}
		nested = append(nested, entry)
	}

	return nested, nil
}

func (s *Service) AdminProjects(ctx context.Context) ([]Project, error) {
	return s.repo.ListProjects(ctx, false)
}

func (s *Service) AdminHackathons(ctx context.Context) ([]Hackathon, error) {
	return s.repo.ListHackathons(ctx, false)
}

func (s *Service) DashboardCounts(
	ctx context.Context,
) (*DashboardCounts, error) {
	return s.repo.Counts(ctx)
}

func (s *Service) GetProject(
	ctx context.Context,
	id string,
) (*Project, error) {
	return s.repo.GetProject(ctx, id)
}

func (s *Service) GetHackathon(
	ctx context.Context,
	id string,
) (*Hackathon, error) {
	return s.repo.GetHackathon(ctx, id)
}

func (s *Service) GetSkill(ctx context.Context, id string) (*Skill, error) {
	return s.repo.GetSkill(ctx, id)
}

func (s *Service) GetSkillCategory(
	ctx context.Context,
	id string,
) (*SkillCategory, error) {
	return s.repo.GetSkillCategory(ctx, id)
}

func invalid(err error) MutationResult {
	return MutationResult{
		Error: core.FormatValidationError(err),
		Code:  CodeValidation,
	}
}

func (s *Service) failure(
	ctx context.Context,
	op string,
	err error,
) MutationResult {
	switch {
	case errors.Is(err, core.ErrNotFound):
		return MutationResult{
			Error: "record not found",
			Code:  CodeNotFound,
		}
	case errors.Is(err, core.ErrConflict):
		return MutationResult{
			Error: "record is still referenced by other records",
			Code:  CodeConflict,
		}
	default:
		s.logger.ErrorContext(ctx, "storage failure",
			"op", op,
			"error", err,
		)
		return MutationResult{
			Error: "storage failure",
			Code:  CodeStorage,
		}
	}
}

func (s *Service) committed(ctx context.Context, id string) MutationResult {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "cache invalidation failed", "error", err)
	}

	return MutationResult{Success: true, ID: id}
}

func categoryFromPayload(
	id string,
	payload SkillCategoryPayload,
) *SkillCategory {
	return &SkillCategory{
		ID:     id,
		NameEn: payload.NameEn,
		NameFr: payload.NameFr,
		Order:  *payload.Order,
		Icon:   payload.Icon,
	}
}

func skillFromPayload(id string, payload SkillPayload) *Skill {
	return &Skill{
		ID:         id,
		CategoryID: payload.CategoryID,
		NameEn:     payload.NameEn,
		NameFr:     payload.NameFr,
		Level:      *payload.Level,
		Order:      *payload.Order,
		Icon:       payload.Icon,
	}
}

func projectFromPayload(id string, payload ProjectPayload) *Project {
	return &Project{
		ID:            id,
		TitleEn:       payload.TitleEn,
		TitleFr:       payload.TitleFr,
		ShortDescEn:   payload.ShortDescEn,
		ShortDescFr:   payload.ShortDescFr,
		DescriptionEn: payload.DescriptionEn,
		DescriptionFr: payload.DescriptionFr,
		TechStack:     StringList(payload.TechStack),
		Role:          payload.Role,
		ImpactEn:      payload.ImpactEn,
		ImpactFr:      payload.ImpactFr,
		Images:        StringList(payload.Images),
		GithubURL:     payload.GithubURL,
		LiveURL:       payload.LiveURL,
		Featured:      *payload.Featured,
		Published:     *payload.Published,
		Order:         *payload.Order,
		StartDate:     payload.StartDate,
		EndDate:       payload.EndDate,
	}
}

func hackathonFromPayload(id string, payload HackathonPayload) *Hackathon {
	return &Hackathon{
		ID:            id,
		NameEn:        payload.NameEn,
		NameFr:        payload.NameFr,
		DescriptionEn: payload.DescriptionEn,
		DescriptionFr: payload.DescriptionFr,
		Position:      payload.Position,
		Award:         payload.Award,
		Date:          *payload.Date,
		Location:      payload.Location,
		TeamSize:      payload.TeamSize,
		TechStack:     StringList(payload.TechStack),
		ProjectURL:    payload.ProjectURL,
		Image:         payload.Image,
		Published:     *payload.Published,
		Order:         *payload.Order,
	}
}
