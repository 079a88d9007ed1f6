// Command seed fills the database with demo accounts, posts, and comments.
// Every account is created with the password "password123". The data set is
// generated with a fixed random seed so repeated runs against a fresh
// database produce the same content.
package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/paveldk/go-blog-api/internal/config"
	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/internal/service"
	"github.com/paveldk/go-blog-api/internal/store"
	"github.com/paveldk/go-blog-api/models"
)

const seedPassword = "password123"

type seedAccount struct {
	username string
	email    string
	role     models.Role
}

var seedAccounts = []seedAccount{
	{username: "ada", email: "ada@example.com", role: models.RoleAuthor},
	{username: "brian", email: "brian@example.com", role: models.RoleAuthor},
	{username: "ken", email: "ken@example.com", role: models.RoleAuthor},
	{username: "donald", email: "donald@example.com", role: models.RoleAuthor},
	{username: "erin", email: "erin@example.com", role: models.RoleUser},
	{username: "felix", email: "felix@example.com", role: models.RoleUser},
	{username: "grace", email: "grace@example.com", role: models.RoleUser},
	{username: "hana", email: "hana@example.com", role: models.RoleUser},
}

var seedTitles = []string{
	"Notes on error handling",
	"A tour of the standard library",
	"Why I still like plain SQL",
	"Profiling a slow endpoint",
	"Structured logging in practice",
	"Migrations without fear",
	"Small interfaces, big wins",
	"Graceful shutdown checklist",
	"Testing HTTP handlers end to end",
	"Choosing boring technology",
	"Context propagation pitfalls",
	"On naming things",
	"Zero values are a feature",
	"Retries, timeouts, and budgets",
	"My terminal setup",
	"Reading other people's code",
}

var seedParagraphs = []string{
	"The first version of this was much more complicated. Then I deleted half of it and nothing broke, which told me everything I needed to know.",
	"There is a recurring pattern here: start with the concrete case, make it work, and only then look for the abstraction. Going the other way around has burned me every time.",
	"I benchmarked three approaches and the boring one won by a wide margin. The clever one was also the only one with a subtle bug.",
	"Most of the difficulty was not in the happy path but in deciding what should happen when things go wrong halfway through.",
	"After a week of running this in production the logs told a very different story than the unit tests did.",
	"A colleague asked why not use a library for this. Fair question. The answer is that the library solves a harder problem than the one we have.",
	"If you take one thing away from this post, let it be this: write the failure message you would want to read at 3am.",
	"None of this is new, of course. But writing it down forced me to understand which parts I had been cargo-culting.",
}

var seedComments = []string{
	"Great writeup, thanks for sharing.",
	"This matches my experience almost exactly.",
	"Did you consider the streaming approach instead?",
	"The 3am failure message advice is gold.",
	"I disagree with the second point, but the rest is solid.",
	"Bookmarked. We hit the same issue last quarter.",
	"What version were you running when you measured this?",
	"Short and to the point, more of this please.",
	"The bit about deleting half the code made me laugh, too real.",
	"Would love a follow-up with the profiling details.",
}

func main() {
	log := logger.NewLogger("blog-seed")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, cfg, log)

	rng := rand.New(rand.NewSource(42))

	users, err := seedUsers(ctx, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error seeding users")
	}
	log.Info().Int("count", len(users)).Msg("seeded users")

	posts, err := seedPosts(ctx, services, rng, users)
	if err != nil {
		log.Fatal().Err(err).Msg("error seeding posts")
	}
	log.Info().Int("count", len(posts)).Msg("seeded posts")

	comments, err := seedPostComments(ctx, services, rng, users, posts)
	if err != nil {
		log.Fatal().Err(err).Msg("error seeding comments")
	}
	log.Info().Int("count", comments).Msg("seeded comments")

	fmt.Printf("Seeded %d users, %d posts, %d comments. All passwords: %q\n",
		len(users), len(posts), comments, seedPassword)
}

func seedUsers(ctx context.Context, services *service.Services) ([]models.User, error) {
	users := make([]models.User, 0, len(seedAccounts))
	for _, account := range seedAccounts {
		user, err := services.AuthService.Register(ctx, models.RegisterRequest{
			Username: account.username,
			Email:    account.email,
			Password: seedPassword,
			Role:     account.role,
		})
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", account.username, err)
		}
		users = append(users, user)
	}

	return users, nil
}

func seedPosts(ctx context.Context, services *service.Services, rng *rand.Rand, users []models.User) ([]models.Post, error) {
	var posts []models.Post
	titleIdx := 0

	for _, user := range users {
		if user.Role != models.RoleAuthor {
			continue
		}

		postCount := 2 + rng.Intn(3)
		for i := 0; i < postCount; i++ {
			title := seedTitles[titleIdx%len(seedTitles)]
			titleIdx++

			content := seedParagraphs[rng.Intn(len(seedParagraphs))] +
				"\n\n" + seedParagraphs[rng.Intn(len(seedParagraphs))]

			post, err := services.PostService.Create(ctx, user.ID, models.PostCreateRequest{
				Title:   title,
				Content: content,
			})
			if err != nil {
				return nil, fmt.Errorf("create post for %s: %w", user.Username, err)
			}

			// roughly 70% of posts go live, the rest stay drafts
			if rng.Float64() < 0.7 {
				post, err = services.PostService.TogglePublish(ctx, user.ID, post.ID)
				if err != nil {
					return nil, fmt.Errorf("publish post %d: %w", post.ID, err)
				}
			}

			posts = append(posts, post)
		}
	}

	return posts, nil
}

func seedPostComments(ctx context.Context, services *service.Services, rng *rand.Rand, users []models.User, posts []models.Post) (int, error) {
	total := 0

	for _, post := range posts {
		if !post.Published {
			continue
		}

		commentCount := 2 + rng.Intn(4)
		for i := 0; i < commentCount; i++ {
			commenter := users[rng.Intn(len(users))]
			_, err := services.CommentService.Create(ctx, commenter.ID, post.ID, models.CommentCreateRequest{
				Content: seedComments[rng.Intn(len(seedComments))],
			})
			if err != nil {
				return total, fmt.Errorf("comment on post %d: %w", post.ID, err)
			}
			total++
		}
	}

	return total, nil
}
