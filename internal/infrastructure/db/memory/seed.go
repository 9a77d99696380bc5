package memory

import (
	"context"
	"time"

	"github.com/luminastudio/portfolio-system/internal/core/domain"
)

// Seed loads the demo fixture data: two accounts (one admin, one
// client, plaintext passwords as the demo backend stores them), a small
// catalog and a couple of posts. Ids are assigned by the repositories.
func Seed(services *ServiceRepository, posts *PostRepository, users *UserRepository) {
	ctx := context.Background()
	seeded := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	_, _ = users.Create(ctx, &domain.User{
		Name:      "Ada Moretti",
		Email:     "admin@example.com",
		Password:  "admin123",
		Role:      domain.RoleAdmin,
		Avatar:    domain.DefaultAvatar,
		CreatedAt: seeded,
	})
	_, _ = users.Create(ctx, &domain.User{
		Name:      "Carlo Bianchi",
		Email:     "client@example.com",
		Password:  "client123",
		Role:      domain.RoleClient,
		Avatar:    domain.DefaultAvatar,
		CreatedAt: seeded,
	})

	_, _ = services.Create(ctx, &domain.Service{
		Title:           "Web Development",
		Description:     "Responsive websites built with modern tooling",
		FullDescription: "Full-stack web development: design, build, deploy and maintain responsive sites tailored to your brand and audience.",
		Price:           1200,
		Category:        "development",
		Image:           "https://images.pexels.com/photos/270348/pexels-photo-270348.jpeg",
		Featured:        true,
		Tags:            []string{"react", "typescript", "responsive"},
		Duration:        "2-4 weeks",
		CreatedAt:       seeded,
	})
	_, _ = services.Create(ctx, &domain.Service{
		Title:           "Brand Identity",
		Description:     "Logo, palette and visual language for your brand",
		FullDescription: "A complete brand identity package covering logo design, colour palette, typography and usage guidelines ready for print and web.",
		Price:           800,
		Category:        "design",
		Image:           "https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg",
		Featured:        false,
		Tags:            []string{"branding", "logo"},
		Duration:        "1-2 weeks",
		CreatedAt:       seeded,
	})

	_, _ = posts.Create(ctx, &domain.BlogPost{
		Title:       "Designing for slow connections",
		Content:     "Most of the web is consumed over connections far slower than the ones we develop on...",
		Excerpt:     "Why performance budgets matter more than pixel perfection.",
		Author:      "Ada Moretti",
		PublishedAt: seeded,
		Image:       "https://images.pexels.com/photos/265087/pexels-photo-265087.jpeg",
		Tags:        []string{"performance", "design"},
		Featured:    true,
	})
	_, _ = posts.Create(ctx, &domain.BlogPost{
		Title:       "A sane git workflow for solo projects",
		Content:     "Branching strategies are written for teams, but solo work benefits from structure too...",
		Excerpt:     "Keeping history readable when you are the only committer.",
		Author:      "Ada Moretti",
		PublishedAt: seeded.AddDate(0, 0, 4),
		Image:       "https://images.pexels.com/photos/1181671/pexels-photo-1181671.jpeg",
		Tags:        []string{"git", "workflow"},
		Featured:    false,
	})
}
