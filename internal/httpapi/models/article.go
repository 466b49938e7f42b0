package models

import "time"

type Article struct {
	ArticleID     int64     `json:"article_id" gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title" gorm:"not null"`
	Topic         *string   `json:"topic" gorm:"size:100;index"`
	Author        *string   `json:"author" gorm:"size:100;index"`
	Body          string    `json:"body" gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	Votes         int       `json:"votes" gorm:"not null;default:0"`
	ArticleImgURL string    `json:"article_img_url" gorm:"size:1000"`

	// Associations. Deleting a topic or user nulls the reference
	// instead of cascading into the article.
	TopicRef  *Topic `json:"-" gorm:"foreignKey:Topic;references:Slug;constraint:OnDelete:SET NULL;"`
	AuthorRef *User  `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnDelete:SET NULL;"`
}

func (Article) TableName() string {
	return "articles"
}

// ArticleSummary is the listing row shape: every article column except
// body, plus the derived comment count.
type ArticleSummary struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         *string   `json:"topic"`
	Author        *string   `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// ArticleDetail is the single-article shape: the full row including
// body, plus the derived comment count.
type ArticleDetail struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         *string   `json:"topic"`
	Author        *string   `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}
