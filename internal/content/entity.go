// Mr_Evra | 2025
// entity.go

package content

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is an ordered list of strings stored as a JSONB array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan string list: unsupported type %T", src)
	}

	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("scan string list: %w", err)
	}

	return nil
}

// HeroSection is a singleton: the store never holds more than one row.
type HeroSection struct {
	ID           string    `db:"id"            json:"id"`
	FirstName    string    `db:"first_name"    json:"first_name"`
	LastName     string    `db:"last_name"     json:"last_name"`
	Nickname     string    `db:"nickname"      json:"nickname"`
	TitleEn      string    `db:"title_en"      json:"title_en"`
	TitleFr      string    `db:"title_fr"      json:"title_fr"`
	TaglineEn    string    `db:"tagline_en"    json:"tagline_en"`
	TaglineFr    string    `db:"tagline_fr"    json:"tagline_fr"`
	CTATextEn    string    `db:"cta_text_en"   json:"cta_text_en"`
	CTATextFr    string    `db:"cta_text_fr"   json:"cta_text_fr"`
	CTALink      string    `db:"cta_link"      json:"cta_link"`
	ProfileImage *string   `db:"profile_image" json:"profile_image"`
	ResumeURL    *string   `db:"resume_url"    json:"resume_url"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updated_at"`
}

// AboutSection is the second singleton. Long-form intro/description text
// is split into paragraphs at blank lines by the presentation layer.
type AboutSection struct {
	ID                string    `db:"id"                 json:"id"`
	IntroEn           string    `db:"intro_en"           json:"intro_en"`
	IntroFr           string    `db:"intro_fr"           json:"intro_fr"`
	DescriptionEn     string    `db:"description_en"     json:"description_en"`
	DescriptionFr     string    `db:"description_fr"     json:"description_fr"`
	YearsExperience   int       `db:"years_experience"   json:"years_experience"`
	ProjectsCompleted int       `db:"projects_completed" json:"projects_completed"`
	ClientsSatisfied  int       `db:"clients_satisfied"  json:"clients_satisfied"`
	Image             *string   `db:"image"              json:"image"`
	CreatedAt         time.Time `db:"created_at"         json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"         json:"updated_at"`
}

type SkillCategory struct {
	ID        string    `db:"id"         json:"id"`
	NameEn    string    `db:"name_en"    json:"name_en"`
	NameFr    string    `db:"name_fr"    json:"name_fr"`
	Order     int       `db:"sort_order" json:"order"`
	Icon      *string   `db:"icon"       json:"icon"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Skill struct {
	ID         string    `db:"id"          json:"id"`
	CategoryID string    `db:"category_id" json:"category_id"`
	NameEn     string    `db:"name_en"     json:"name_en"`
	NameFr     string    `db:"name_fr"     json:"name_fr"`
	Level      int       `db:"level"       json:"level"`
	Order      int       `db:"sort_order"  json:"order"`
	Icon       *string   `db:"icon"        json:"icon"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"  json:"updated_at"`
}

type Project struct {
	ID            string     `db:"id"             json:"id"`
	TitleEn       string     `db:"title_en"       json:"title_en"`
	TitleFr       string     `db:"title_fr"       json:"title_fr"`
	ShortDescEn   string     `db:"short_desc_en"  json:"short_desc_en"`
	ShortDescFr   string     `db:"short_desc_fr"  json:"short_desc_fr"`
	DescriptionEn string     `db:"description_en" json:"description_en"`
	DescriptionFr string     `db:"description_fr" json:"description_fr"`
	TechStack     StringList `db:"tech_stack"     json:"tech_stack"`
	Role          string     `db:"role"           json:"role"`
	ImpactEn      string     `db:"impact_en"      json:"impact_en"`
	ImpactFr      string     `db:"impact_fr"      json:"impact_fr"`
	Images        StringList `db:"images"         json:"images"`
	GithubURL     *string    `db:"github_url"     json:"github_url"`
	LiveURL       *string    `db:"live_url"       json:"live_url"`
	Featured      bool       `db:"featured"       json:"featured"`
	Published     bool       `db:"published"      json:"published"`
	Order         int        `db:"sort_order"     json:"order"`
	StartDate     *time.Time `db:"start_date"     json:"start_date"`
	EndDate       *time.Time `db:"end_date"       json:"end_date"`
	CreatedAt     time.Time  `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"     json:"updated_at"`
}

type Hackathon struct {
	ID            string     `db:"id"             json:"id"`
	NameEn        string     `db:"name_en"        json:"name_en"`
	NameFr        string     `db:"name_fr"        json:"name_fr"`
	DescriptionEn string     `db:"description_en" json:"description_en"`
	DescriptionFr string     `db:"description_fr" json:"description_fr"`
	Position      string     `db:"position"       json:"position"`
	Award         *string    `db:"award"          json:"award"`
	Date          time.Time  `db:"date"           json:"date"`
	Location      string     `db:"location"       json:"location"`
	TeamSize      *int       `db:"team_size"      json:"team_size"`
	TechStack     StringList `db:"tech_stack"     json:"tech_stack"`
	ProjectURL    *string    `db:"project_url"    json:"project_url"`
	Image         *string    `db:"image"          json:"image"`
	Published     bool       `db:"published"      json:"published"`
	Order         int        `db:"sort_order"     json:"order"`
	CreatedAt     time.Time  `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"     json:"updated_at"`
}
