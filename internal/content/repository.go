// Mr_Evra | 2025
// repository.go

package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mr-evra/portfolio-api/internal/core"
)

type Repository interface {
	UpsertHero(ctx context.Context, hero *HeroSection) error
	GetHero(ctx context.Context) (*HeroSection, error)

	UpsertAbout(ctx context.Context, about *AboutSection) error
	GetAbout(ctx context.Context) (*AboutSection, error)

	CreateSkillCategory(ctx context.Context, cat *SkillCategory) error
	UpdateSkillCategory(ctx context.Context, cat *SkillCategory) error
	DeleteSkillCategory(ctx context.Context, id string) error
	GetSkillCategory(ctx context.Context, id string) (*SkillCategory, error)
	ListSkillCategories(ctx context.Context) ([]SkillCategory, error)

	CreateSkill(ctx context.Context, skill *Skill) error
	UpdateSkill(ctx context.Context, skill *Skill) error
	DeleteSkill(ctx context.Context, id string) error
	GetSkill(ctx context.Context, id string) (*Skill, error)
	ListSkills(ctx context.Context) ([]Skill, error)

	CreateProject(ctx context.Context, project *Project) error
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id string) error
	GetProject(ctx context.Context, id string) (*Project, error)
	ListProjects(ctx context.Context, publishedOnly bool) ([]Project, error)

	CreateHackathon(ctx context.Context, hackathon *Hackathon) error
	UpdateHackathon(ctx context.Context, hackathon *Hackathon) error
	DeleteHackathon(ctx context.Context, id string) error
	GetHackathon(ctx context.Context, id string) (*Hackathon, error)
	ListHackathons(ctx context.Context, publishedOnly bool) ([]Hackathon, error)

	Counts(ctx context.Context) (*DashboardCounts, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// UpsertHero keeps the singleton invariant in the store itself: the
// constant-true singleton column is unique, so concurrent saves collapse
// onto one row and the original id survives every rewrite.
func (r *repository) UpsertHero(ctx context.Context, hero *HeroSection) error {
	query := `
		INSERT INTO hero_section (
			id, singleton, first_name, last_name, nickname,
			title_en, title_fr, tagline_en, tagline_fr,
			cta_text_en, cta_text_fr, cta_link, profile_image, resume_url
		) VALUES (
			$1, true, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
		ON CONFLICT (singleton) DO UPDATE SET
			first_name    = EXCLUDED.first_name,
			last_name     = EXCLUDED.last_name,
			nickname      = EXCLUDED.nickname,
			title_en      = EXCLUDED.title_en,
			title_fr      = EXCLUDED.title_fr,
			tagline_en    = EXCLUDED.tagline_en,
			tagline_fr    = EXCLUDED.tagline_fr,
			cta_text_en   = EXCLUDED.cta_text_en,
			cta_text_fr   = EXCLUDED.cta_text_fr,
			cta_link      = EXCLUDED.cta_link,
			profile_image = EXCLUDED.profile_image,
			resume_url    = EXCLUDED.resume_url,
			updated_at    = NOW()
		RETURNING id, created_at, updated_at`

	row := struct {
		ID        string       `db:"id"`
		CreatedAt sql.NullTime `db:"created_at"`
		UpdatedAt sql.NullTime `db:"updated_at"`
	}{}

	err := r.db.GetContext(ctx, &row, query,
		hero.ID,
		hero.FirstName,
		hero.LastName,
		hero.Nickname,
		hero.TitleEn,
		hero.TitleFr,
		hero.TaglineEn,
		hero.TaglineFr,
		hero.CTATextEn,
		hero.CTATextFr,
		hero.CTALink,
		hero.ProfileImage,
		hero.ResumeURL,
	)
	if err != nil {
		return fmt.Errorf("upsert hero: %w", err)
	}

	hero.ID = row.ID
	hero.CreatedAt = row.CreatedAt.Time
	hero.UpdatedAt = row.UpdatedAt.Time

	return nil
}

func (r *repository) GetHero(ctx context.Context) (*HeroSection, error) {
	query := `
		SELECT id, first_name, last_name, nickname,
		       title_en, title_fr, tagline_en, tagline_fr,
		       cta_text_en, cta_text_fr, cta_link, profile_image, resume_url,
		       created_at, updated_at
		FROM hero_section`

	var hero HeroSection
	err := r.db.GetContext(ctx, &hero, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get hero: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get hero: %w", err)
	}

	return &hero, nil
}

func (r *repository) UpsertAbout(
	ctx context.Context,
	about *AboutSection,
) error {
	query := `
		INSERT INTO about_section (
			id, singleton, intro_en, intro_fr, description_en, description_fr,
			years_experience, projects_completed, clients_satisfied, image
		) VALUES (
			$1, true, $2, $3, $4, $5, $6, $7, $8, $9
		)
		ON CONFLICT (singleton) DO UPDATE SET
			intro_en           = EXCLUDED.intro_en,
			intro_fr           = EXCLUDED.intro_fr,
			description_en     = EXCLUDED.description_en,
			description_fr     = EXCLUDED.description_fr,
			years_experience   = EXCLUDED.years_experience,
			projects_completed = EXCLUDED.projects_completed,
			clients_satisfied  = EXCLUDED.clients_satisfied,
			image              = EXCLUDED.image,
			updated_at         = NOW()
		RETURNING id, created_at, updated_at`

	row := struct {
		ID        string       `db:"id"`
		CreatedAt sql.NullTime `db:"created_at"`
		UpdatedAt sql.NullTime `db:"updated_at"`
	}{}

	err := r.db.GetContext(ctx, &row, query,
		about.ID,
		about.IntroEn,
		about.IntroFr,
		about.DescriptionEn,
		about.DescriptionFr,
		about.YearsExperience,
		about.ProjectsCompleted,
		about.ClientsSatisfied,
		about.Image,
	)
	if err != nil {
		return fmt.Errorf("upsert about: %w", err)
	}

	about.ID = row.ID
	about.CreatedAt = row.CreatedAt.Time
	about.UpdatedAt = row.UpdatedAt.Time

	return nil
}

func (r *repository) GetAbout(ctx context.Context) (*AboutSection, error) {
	query := `
		SELECT id, intro_en, intro_fr, description_en, description_fr,
		       years_experience, projects_completed, clients_satisfied, image,
		       created_at, updated_at
		FROM about_section`

	var about AboutSection
	err := r.db.GetContext(ctx, &about, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get about: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get about: %w", err)
	}

	return &about, nil
}

func (r *repository) CreateSkillCategory(
	ctx context.Context,
	cat *SkillCategory,
) error {
	query := `
		INSERT INTO skill_categories (id, name_en, name_fr, sort_order, icon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, cat, query,
		cat.ID,
		cat.NameEn,
		cat.NameFr,
		cat.Order,
		cat.Icon,
	)
	if err != nil {
		return fmt.Errorf("create skill category: %w", err)
	}

	return nil
}

func (r *repository) UpdateSkillCategory(
	ctx context.Context,
	cat *SkillCategory,
) error {
	query := `
		UPDATE skill_categories
		SET name_en = $2, name_fr = $3, sort_order = $4, icon = $5,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &cat.UpdatedAt, query,
		cat.ID,
		cat.NameEn,
		cat.NameFr,
		cat.Order,
		cat.Icon,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update skill category: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update skill category: %w", err)
	}

	return nil
}

// DeleteSkillCategory surfaces the FK RESTRICT violation as ErrConflict:
// a category still referenced by skills is not deletable.
func (r *repository) DeleteSkillCategory(
	ctx context.Context,
	id string,
) error {
	query := `DELETE FROM skill_categories WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("delete skill category: %w", core.ErrConflict)
		}
		return fmt.Errorf("delete skill category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete skill category: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete skill category: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) GetSkillCategory(
	ctx context.Context,
	id string,
) (*SkillCategory, error) {
	query := `
		SELECT id, name_en, name_fr, sort_order, icon, created_at, updated_at
		FROM skill_categories
		WHERE id = $1`

	var cat SkillCategory
	err := r.db.GetContext(ctx, &cat, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get skill category: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get skill category: %w", err)
	}

	return &cat, nil
}

func (r *repository) ListSkillCategories(
	ctx context.Context,
) ([]SkillCategory, error) {
	query := `
		SELECT id, name_en, name_fr, sort_order, icon, created_at, updated_at
		FROM skill_categories
		ORDER BY sort_order ASC, id ASC`

	var cats []SkillCategory
	if err := r.db.SelectContext(ctx, &cats, query); err != nil {
		return nil, fmt.Errorf("list skill categories: %w", err)
	}

	return cats, nil
}

func (r *repository) CreateSkill(ctx context.Context, skill *Skill) error {
	query := `
		INSERT INTO skills (id, category_id, name_en, name_fr, level,
		                    sort_order, icon)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, skill, query,
		skill.ID,
		skill.CategoryID,
		skill.NameEn,
		skill.NameFr,
		skill.Level,
		skill.Order,
		skill.Icon,
	)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("create skill: %w", core.ErrConflict)
		}
		return fmt.Errorf("create skill: %w", err)
	}

	return nil
}

func (r *repository) UpdateSkill(ctx context.Context, skill *Skill) error {
	query := `
		UPDATE skills
		SET category_id = $2, name_en = $3, name_fr = $4, level = $5,
		    sort_order = $6, icon = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &skill.UpdatedAt, query,
		skill.ID,
		skill.CategoryID,
		skill.NameEn,
		skill.NameFr,
		skill.Level,
		skill.Order,
		skill.Icon,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update skill: %w", core.ErrNotFound)
	}
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("update skill: %w", core.ErrConflict)
		}
		return fmt.Errorf("update skill: %w", err)
	}

	return nil
}

func (r *repository) DeleteSkill(ctx context.Context, id string) error {
	query := `DELETE FROM skills WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete skill: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) GetSkill(ctx context.Context, id string) (*Skill, error) {
	query := `
		SELECT id, category_id, name_en, name_fr, level, sort_order, icon,
		       created_at, updated_at
		FROM skills
		WHERE id = $1`

	var skill Skill
	err := r.db.GetContext(ctx, &skill, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get skill: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get skill: %w", err)
	}

	return &skill, nil
}

func (r *repository) ListSkills(ctx context.Context) ([]Skill, error) {
	query := `
		SELECT id, category_id, name_en, name_fr, level, sort_order, icon,
		       created_at, updated_at
		FROM skills
		ORDER BY sort_order ASC, id ASC`

	var skills []Skill
	if err := r.db.SelectContext(ctx, &skills, query); err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	return skills, nil
}

func (r *repository) CreateProject(
	ctx context.Context,
	project *Project,
) error {
	query := `
		INSERT INTO projects (
			id, title_en, title_fr, short_desc_en, short_desc_fr,
			description_en, description_fr, tech_stack, role,
			impact_en, impact_fr, images, github_url, live_url,
			featured, published, sort_order, start_date, end_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, project, query,
		project.ID,
		project.TitleEn,
		project.TitleFr,
		project.ShortDescEn,
		project.ShortDescFr,
		project.DescriptionEn,
		project.DescriptionFr,
		project.TechStack,
		project.Role,
		project.ImpactEn,
		project.ImpactFr,
		project.Images,
		project.GithubURL,
		project.LiveURL,
		project.Featured,
		project.Published,
		project.Order,
		project.StartDate,
		project.EndDate,
	)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

func (r *repository) UpdateProject(
	ctx context.Context,
	project *Project,
) error {
	query := `
		UPDATE projects
		SET title_en = $2, title_fr = $3, short_desc_en = $4,
		    short_desc_fr = $5, description_en = $6, description_fr = $7,
		    tech_stack = $8, role = $9, impact_en = $10, impact_fr = $11,
		    images = $12, github_url = $13, live_url = $14, featured = $15,
		    published = $16, sort_order = $17, start_date = $18,
		    end_date = $19, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &project.UpdatedAt, query,
		project.ID,
		project.TitleEn,
		project.TitleFr,
		project.ShortDescEn,
		project.ShortDescFr,
		project.DescriptionEn,
		project.DescriptionFr,
		project.TechStack,
		project.Role,
		project.ImpactEn,
		project.ImpactFr,
		project.Images,
		project.GithubURL,
		project.LiveURL,
		project.Featured,
		project.Published,
		project.Order,
		project.StartDate,
		project.EndDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update project: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}

	return nil
}

func (r *repository) DeleteProject(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete project: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) GetProject(
	ctx context.Context,
	id string,
) (*Project, error) {
	query := `
		SELECT id, title_en, title_fr, short_desc_en, short_desc_fr,
		       description_en, description_fr, tech_stack, role,
		       impact_en, impact_fr, images, github_url, live_url,
		       featured, published, sort_order, start_date, end_date,
		       created_at, updated_at
		FROM projects
		WHERE id = $1`

	var project Project
	err := r.db.GetContext(ctx, &project, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get project: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	return &project, nil
}

func (r *repository) ListProjects(
	ctx context.Context,
	publishedOnly bool,
) ([]Project, error) {
	query := `
		SELECT id, title_en, title_fr, short_desc_en, short_desc_fr,
		       description_en, description_fr, tech_stack, role,
		       impact_en, impact_fr, images, github_url, live_url,
		       featured, published, sort_order, start_date, end_date,
		       created_at, updated_at
		FROM projects`

	if publishedOnly {
		query += `
		WHERE published = true`
	}

	query += `
		ORDER BY sort_order ASC, id ASC`

	var projects []Project
	if err := r.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

func (r *repository) CreateHackathon(
	ctx context.Context,
	hackathon *Hackathon,
) error {
	query := `
		INSERT INTO hackathons (
			id, name_en, name_fr, description_en, description_fr,
			position, award, date, location, team_size,
			tech_stack, project_url, image, published, sort_order
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, hackathon, query,
		hackathon.ID,
		hackathon.NameEn,
		hackathon.NameFr,
		hackathon.DescriptionEn,
		hackathon.DescriptionFr,
		hackathon.Position,
		hackathon.Award,
		hackathon.Date,
		hackathon.Location,
		hackathon.TeamSize,
		hackathon.TechStack,
		hackathon.ProjectURL,
		hackathon.Image,
		hackathon.Published,
		hackathon.Order,
	)
	if err != nil {
		return fmt.Errorf("create hackathon: %w", err)
	}

	return nil
}

func (r *repository) UpdateHackathon(
	ctx context.Context,
	hackathon *Hackathon,
) error {
	query := `
		UPDATE hackathons
		SET name_en = $2, name_fr = $3, description_en = $4,
		    description_fr = $5, position = $6, award = $7, date = $8,
		    location = $9, team_size = $10, tech_stack = $11,
		    project_url = $12, image = $13, published = $14,
		    sort_order = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &hackathon.UpdatedAt, query,
		hackathon.ID,
		hackathon.NameEn,
		hackathon.NameFr,
		hackathon.DescriptionEn,
		hackathon.DescriptionFr,
		hackathon.Position,
		hackathon.Award,
		hackathon.Date,
		hackathon.Location,
		hackathon.TeamSize,
		hackathon.TechStack,
		hackathon.ProjectURL,
		hackathon.Image,
		hackathon.Published,
		hackathon.Order,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update hackathon: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update hackathon: %w", err)
	}

	return nil
}

func (r *repository) DeleteHackathon(ctx context.Context, id string) error {
	query := `DELETE FROM hackathons WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete hackathon: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete hackathon: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete hackathon: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) GetHackathon(
	ctx context.Context,
	id string,
) (*Hackathon, error) {
	query := `
		SELECT id, name_en, name_fr, description_en, description_fr,
		       position, award, date, location, team_size,
		       tech_stack, project_url, image, published, sort_order,
		       created_at, updated_at
		FROM hackathons
		WHERE id = $1`

	var hackathon Hackathon
	err := r.db.GetContext(ctx, &hackathon, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get hackathon: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get hackathon: %w", err)
	}

	return &hackathon, nil
}

func (r *repository) ListHackathons(
	ctx context.Context,
	publishedOnly bool,
) ([]Hackathon, error) {
	query := `
		SELECT id, name_en, name_fr, description_en, description_fr,
		       position, award, date, location, team_size,
		       tech_stack, project_url, image, published, sort_order,
		       created_at, updated_at
		FROM hackathons`

	if publishedOnly {
		query += `
		WHERE published = true`
	}

	query += `
		ORDER BY date DESC, id ASC`

	var hackathons []Hackathon
	if err := r.db.SelectContext(ctx, &hackathons, query); err != nil {
		return nil, fmt.Errorf("list hackathons: %w", err)
	}

	return hackathons, nil
}

func (r *repository) Counts(ctx context.Context) (*DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM projects)                          AS projects_count,
			(SELECT COUNT(*) FROM projects WHERE published = true)   AS published_projects,
			(SELECT COUNT(*) FROM skills)                            AS skills_count,
			(SELECT COUNT(*) FROM skill_categories)                  AS categories_count,
			(SELECT COUNT(*) FROM hackathons)                        AS hackathons_count,
			(SELECT COUNT(*) FROM hackathons WHERE published = true) AS published_hackathons`

	var counts DashboardCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}

	return &counts, nil
}

func isForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
