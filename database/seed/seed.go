package seed

import (
	"fmt"
	"time"

	"newshub/internal/httpapi/models"

	"gorm.io/gorm"
)

// CommentFixture references its parent article by title. Fixture
// authors write titles, not generated ids; Run resolves them after the
// articles are inserted.
type CommentFixture struct {
	ArticleTitle string
	Body         string
	Votes        int
	Author       string
	CreatedAt    time.Time
}

type Data struct {
	Topics   []models.Topic
	Users    []models.User
	Articles []models.Article
	Comments []CommentFixture
}

// Run rebuilds the schema and loads the given fixture set. Tables are
// created and inserted in foreign-key order; all inserts run in one
// transaction.
func Run(db *gorm.DB, data Data) error {
	if err := db.Migrator().DropTable(
		&models.Comment{}, &models.Article{}, &models.User{}, &models.Topic{},
	); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	if err := db.AutoMigrate(
		&models.Topic{}, &models.User{}, &models.Article{}, &models.Comment{},
	); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if len(data.Topics) > 0 {
			if err := tx.Create(&data.Topics).Error; err != nil {
				return fmt.Errorf("seed topics: %w", err)
			}
		}
		if len(data.Users) > 0 {
			if err := tx.Create(&data.Users).Error; err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
		if len(data.Articles) > 0 {
			if err := tx.Create(&data.Articles).Error; err != nil {
				return fmt.Errorf("seed articles: %w", err)
			}
		}

		// Resolve article titles to generated ids before inserting comments.
		idByTitle := make(map[string]int64, len(data.Articles))
		for _, a := range data.Articles {
			idByTitle[a.Title] = a.ArticleID
		}

		comments := make([]models.Comment, 0, len(data.Comments))
		for _, f := range data.Comments {
			articleID, ok := idByTitle[f.ArticleTitle]
			if !ok {
				return fmt.Errorf("seed comments: no article titled %q", f.ArticleTitle)
			}
			author := f.Author
			comments = append(comments, models.Comment{
				ArticleID: &articleID,
				Body:      f.Body,
				Votes:     f.Votes,
				Author:    &author,
				CreatedAt: f.CreatedAt,
			})
		}
		if len(comments) > 0 {
			if err := tx.Create(&comments).Error; err != nil {
				return fmt.Errorf("seed comments: %w", err)
			}
		}
		return nil
	})
}
