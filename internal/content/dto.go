// Mr_Evra | 2025
// dto.go

package content

import (
	"time"
)

// Payload DTOs are whole-record: update replaces every field, there is no
// field-by-field patch. Required numerics and booleans are pointers so a
// legitimate zero value still satisfies the required tag.

type HeroPayload struct {
	FirstName    string  `json:"first_name"    validate:"required,max=100"`
	LastName     string  `json:"last_name"     validate:"required,max=100"`
	Nickname     string  `json:"nickname"      validate:"required,max=100"`
	TitleEn      string  `json:"title_en"      validate:"required,max=255"`
	TitleFr      string  `json:"title_fr"      validate:"required,max=255"`
	TaglineEn    string  `json:"tagline_en"    validate:"required"`
	TaglineFr    string  `json:"tagline_fr"    validate:"required"`
	CTATextEn    string  `json:"cta_text_en"   validate:"required,max=100"`
	CTATextFr    string  `json:"cta_text_fr"   validate:"required,max=100"`
	CTALink      string  `json:"cta_link"      validate:"required,max=500"`
	ProfileImage *string `json:"profile_image" validate:"omitempty,max=500"`
	ResumeURL    *string `json:"resume_url"    validate:"omitempty,max=500"`
}

type AboutPayload struct {
	IntroEn           string  `json:"intro_en"           validate:"required"`
	IntroFr           string  `json:"intro_fr"           validate:"required"`
	DescriptionEn     string  `json:"description_en"     validate:"required"`
	DescriptionFr     string  `json:"description_fr"     validate:"required"`
	YearsExperience   *int    `json:"years_experience"   validate:"required,min=0"`
	ProjectsCompleted *int    `json:"projects_completed" validate:"required,min=0"`
	ClientsSatisfied  *int    `json:"clients_satisfied"  validate:"required,min=0"`
	Image             *string `json:"image"              validate:"omitempty,max=500"`
}

type SkillCategoryPayload struct {
	NameEn string  `json:"name_en" validate:"required,max=100"`
	NameFr string  `json:"name_fr" validate:"required,max=100"`
	Order  *int    `json:"order"   validate:"required"`
	Icon   *string `json:"icon"    validate:"omitempty,max=100"`
}

type SkillPayload struct {
	CategoryID string  `json:"category_id" validate:"required,uuid"`
	NameEn     string  `json:"name_en"     validate:"required,max=100"`
	NameFr     string  `json:"name_fr"     validate:"required,max=100"`
	Level      *int    `json:"level"       validate:"required,min=0,max=100"`
	Order      *int    `json:"order"       validate:"required"`
	Icon       *string `json:"icon"        validate:"omitempty,max=100"`
}

type ProjectPayload struct {
	TitleEn       string     `json:"title_en"       validate:"required,max=255"`
	TitleFr       string     `json:"title_fr"       validate:"required,max=255"`
	ShortDescEn   string     `json:"short_desc_en"  validate:"required"`
	ShortDescFr   string     `json:"short_desc_fr"  validate:"required"`
	DescriptionEn string     `json:"description_en" validate:"required"`
	DescriptionFr string     `json:"description_fr" validate:"required"`
	TechStack     []string   `json:"tech_stack"     validate:"dive,required"`
	Role          string     `json:"role"           validate:"required,max=255"`
	ImpactEn      string     `json:"impact_en"      validate:"required"`
	ImpactFr      string     `json:"impact_fr"      validate:"required"`
	Images        []string   `json:"images"         validate:"dive,required"`
	GithubURL     *string    `json:"github_url"     validate:"omitempty,url"`
	LiveURL       *string    `json:"live_url"       validate:"omitempty,url"`
	Featured      *bool      `json:"featured"       validate:"required"`
	Published     *bool      `json:"published"      validate:"required"`
	Order         *int       `json:"order"          validate:"required"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
}

type HackathonPayload struct {
	NameEn        string     `json:"name_en"        validate:"required,max=255"`
	NameFr        string     `json:"name_fr"        validate:"required,max=255"`
	DescriptionEn string     `json:"description_en" validate:"required"`
	DescriptionFr string     `json:"description_fr" validate:"required"`
	Position      string     `json:"position"       validate:"required,max=100"`
	Award         *string    `json:"award"          validate:"omitempty,max=255"`
	Date          *time.Time `json:"date"           validate:"required"`
	Location      string     `json:"location"       validate:"required,max=255"`
	TeamSize      *int       `json:"team_size"      validate:"omitempty,min=1"`
	TechStack     []string   `json:"tech_stack"     validate:"dive,required"`
	ProjectURL    *string    `json:"project_url"    validate:"omitempty,url"`
	Image         *string    `json:"image"          validate:"omitempty,max=500"`
	Published     *bool      `json:"published"      validate:"required"`
	Order         *int       `json:"order"          validate:"required"`
}

// MutationResult is the uniform outcome shape for every write. Failures
// are values, not panics: validation, not-found, conflict and storage
// errors all land here.
type MutationResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	ID      string `json:"id,omitempty"`
}

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
	CodeStorage    = "STORAGE_ERROR"
)

// CategoryWithSkills nests each category's skills for the projection
// views, both ordered ascending by (order, id).
type CategoryWithSkills struct {
	SkillCategory
	Skills []Skill `json:"skills"`
}

// PublicView is the composite read backing the public site. Absent
// singletons are null, meaning "not configured yet", never an error.
type PublicView struct {
	Hero       *HeroSection         `json:"hero"`
	About      *AboutSection        `json:"about"`
	Categories []CategoryWithSkills `json:"skill_categories"`
	Projects   []Project            `json:"projects"`
	Hackathons []Hackathon          `json:"hackathons"`
}

type DashboardCounts struct {
	ProjectsCount       int `db:"projects_count"        json:"projects_count"`
	PublishedProjects   int `db:"published_projects"    json:"published_projects"`
	SkillsCount         int `db:"skills_count"          json:"skills_count"`
	CategoriesCount     int `db:"categories_count"      json:"categories_count"`
	HackathonsCount     int `db:"hackathons_count"      json:"hackathons_count"`
	PublishedHackathons int `db:"published_hackathons"  json:"published_hackathons"`
}
