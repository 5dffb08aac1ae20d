// Mr_Evra | 2025
// seed.go

package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mr-evra/portfolio-api/internal/config"
	"github.com/mr-evra/portfolio-api/internal/content"
	"github.com/mr-evra/portfolio-api/internal/core"
	"github.com/mr-evra/portfolio-api/internal/user"
)

const defaultAdminPassword = "SecurePassword123!"

// Run wipes every content table and loads the fixed starting dataset:
// one hero, one about, five skill categories, thirty skills, five
// projects, five hackathons and the single admin account. Everything
// happens in one transaction so a failed seed leaves the store as it was.
func Run(
	ctx context.Context,
	db *sqlx.DB,
	cfg config.SeedConfig,
	logger *slog.Logger,
) error {
	password := cfg.AdminPassword
	if password == "" {
		logger.Warn("ADMIN_PASSWORD not set, using default seed password")
		password = defaultAdminPassword
	}

	passwordHash, err := core.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	err = core.InTx(ctx, db, func(tx *sqlx.Tx) error {
		truncate := `
			TRUNCATE hackathons, skills, skill_categories, projects,
			         about_section, hero_section, refresh_tokens, users`
		if _, err := tx.ExecContext(ctx, truncate); err != nil {
			return fmt.Errorf("truncate tables: %w", err)
		}

		users := user.NewRepository(tx)
		admin := &user.User{
			ID:           uuid.New().String(),
			Email:        cfg.AdminEmail,
			PasswordHash: passwordHash,
			Name:         "Evra DJIGBEGNONHOU",
			Role:         user.RoleAdmin,
		}
		if err := users.Create(ctx, admin); err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}

		repo := content.NewRepository(tx)

		if err := repo.UpsertHero(ctx, heroSeed()); err != nil {
			return fmt.Errorf("seed hero: %w", err)
		}

		if err := repo.UpsertAbout(ctx, aboutSeed()); err != nil {
			return fmt.Errorf("seed about: %w", err)
		}

		categories := categorySeeds()
		for i := range categories {
			if err := repo.CreateSkillCategory(ctx, &categories[i]); err != nil {
				return fmt.Errorf(
					"seed skill category %q: %w",
					categories[i].NameEn,
					err,
				)
			}
		}

		skills := skillSeeds(categories)
		for i := range skills {
			if err := repo.CreateSkill(ctx, &skills[i]); err != nil {
				return fmt.Errorf("seed skill %q: %w", skills[i].NameEn, err)
			}
		}

		projects := projectSeeds()
		for i := range projects {
			if err := repo.CreateProject(ctx, &projects[i]); err != nil {
				return fmt.Errorf(
					"seed project %q: %w",
					projects[i].TitleEn,
					err,
				)
			}
		}

		hackathons := hackathonSeeds()
		for i := range hackathons {
			if err := repo.CreateHackathon(ctx, &hackathons[i]); err != nil {
				return fmt.Errorf(
					"seed hackathon %q: %w",
					hackathons[i].NameEn,
					err,
				)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("seed completed",
		"admin_email", cfg.AdminEmail,
		"categories", 5,
		"skills", 30,
		"projects", 5,
		"hackathons", 5,
	)

	return nil
}
