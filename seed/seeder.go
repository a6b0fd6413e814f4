package seed

import (
	"errors"
	"fmt"

	"Yatube/models"
	"Yatube/utils/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var users = []models.User{
	{
		Username:  "leo",
		FirstName: "Leo",
		LastName:  "Tolstoy",
		Email:     "leo@example.com",
		Password:  "password123",
	},
	{
		Username:  "anton",
		FirstName: "Anton",
		LastName:  "Chekhov",
		Email:     "anton@example.com",
		Password:  "password123",
	},
}

var groups = []models.Group{
	{
		Title:       "Classics",
		Slug:        "classics",
		Description: "Long reads from the nineteenth century.",
	},
	{
		Title:       "Short stories",
		Slug:        "short-stories",
		Description: "Everything that fits on a page or two.",
	},
}

var posts = []struct {
	author int
	group  int
	text   string
}{
	{0, 0, "All happy families are alike; each unhappy family is unhappy in its own way."},
	{0, -1, "If you want to be happy, be."},
	{1, 1, "Brevity is the sister of talent."},
	{1, 0, "Any idiot can face a crisis. It is this day-to-day living that wears you out."},
}

// Load inserts demo users, groups, posts and one follow edge. Records that
// already exist are left alone, so running it twice is harmless.
func Load(db *gorm.DB) error {
	if db == nil {
		return ErrNoDatabase
	}
	if err := models.Migrate(db); err != nil {
		return fmt.Errorf("cannot migrate tables: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.User{}).Where("username IN ?", []string{users[0].Username, users[1].Username}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			logger.Logger.Info("demo data already present, skipping seed")
			return nil
		}

		seededUsers := make([]models.User, len(users))
		for i := range users {
			seededUsers[i] = users[i]
			seededUsers[i].Prepare()
			if _, err := seededUsers[i].SaveUser(tx); err != nil {
				return fmt.Errorf("cannot seed users table: %w", err)
			}
		}

		seededGroups := make([]models.Group, len(groups))
		for i := range groups {
			seededGroups[i] = groups[i]
			seededGroups[i].Prepare()
			if errorMessages := seededGroups[i].Validate(); len(errorMessages) > 0 {
				return fmt.Errorf("invalid demo group %q: %v", groups[i].Slug, errorMessages)
			}
			if err := tx.Where(models.Group{Slug: groups[i].Slug}).FirstOrCreate(&seededGroups[i]).Error; err != nil {
				return fmt.Errorf("cannot seed groups table: %w", err)
			}
		}

		for _, p := range posts {
			post := models.Post{Text: p.text, AuthorID: seededUsers[p.author].ID}
			if p.group >= 0 {
				post.GroupID = &seededGroups[p.group].ID
			}
			if _, err := post.SavePost(tx); err != nil {
				return fmt.Errorf("cannot seed posts table: %w", err)
			}
		}

		if _, err := models.FollowAuthor(tx, seededUsers[1].ID, seededUsers[0].ID); err != nil {
			return fmt.Errorf("cannot seed follows table: %w", err)
		}

		logger.Logger.Info("demo data loaded",
			zap.Int("users", len(seededUsers)),
			zap.Int("groups", len(seededGroups)),
			zap.Int("posts", len(posts)),
		)
		return nil
	})
}

// ErrNoDatabase is returned when Load is called without a connection.
var ErrNoDatabase = errors.New("seed: no database connection")
