package seed

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"notesapi/internal/model"
	"notesapi/internal/repository"
)

const (
	// DemoUsername is the fixed development account, only touched when
	// demo seeding is explicitly enabled.
	DemoUsername = "demo"
	demoEmail    = "demo@example.com"
	demoPassword = "demo"

	bcryptCost = 10
)

// DefaultCategories are the fixed rows every deployment starts with.
// Slugs are stable identifiers; names and colors follow them.
func DefaultCategories() []model.Category {
	return []model.Category{
		{Name: "Random Thoughts", ColorHex: "#FFB08F", Slug: "random-thoughts"},
		{Name: "School", ColorHex: "#FFD966", Slug: "school"},
		{Name: "Personal", ColorHex: "#7DD3C0", Slug: "personal"},
	}
}

// Categories creates the default categories that don't exist yet, keyed by
// slug. Existing rows are left untouched, so running it twice yields the
// same three rows with no duplicates.
func Categories(ctx context.Context, repo repository.CategoryRepository) (created int, err error) {
	for _, category := range DefaultCategories() {
		wasCreated, err := repo.GetOrCreateBySlug(ctx, &category)
		if err != nil {
			return created, fmt.Errorf("seed category %q: %w", category.Slug, err)
		}
		if wasCreated {
			created++
			log.Printf("created category: %s", category.Name)
		} else {
			log.Printf("category already exists: %s", category.Name)
		}
	}
	return created, nil
}

// EnsureDemoUser creates the demo account if absent and resets its password
// on every run. A development convenience only; callers gate it behind the
// SEED_DEMO_USER flag.
func EnsureDemoUser(ctx context.Context, repo repository.UserRepository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	user, err := repo.FindByUsername(ctx, DemoUsername)
	switch {
	case err == nil:
		user.PasswordHash = string(hash)
		user.Active = true
		if err := repo.Update(ctx, user); err != nil {
			return fmt.Errorf("reset demo user: %w", err)
		}
		log.Printf("demo user already exists (id=%d), password reset", user.ID)
	case err == gorm.ErrRecordNotFound:
		user = &model.User{
			Username:     DemoUsername,
			Email:        demoEmail,
			PasswordHash: string(hash),
			Active:       true,
		}
		if err := repo.Create(ctx, user); err != nil {
			return fmt.Errorf("create demo user: %w", err)
		}
		log.Printf("created demo user (id=%d)", user.ID)
	default:
		return fmt.Errorf("find demo user: %w", err)
	}
	return nil
}
