package models

import "time"

type Comment struct {
	CommentID int64     `json:"comment_id" gorm:"primaryKey;autoIncrement"`
	ArticleID *int64    `json:"article_id" gorm:"index"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	Votes     int       `json:"votes" gorm:"not null;default:0"`
	Author    *string   `json:"author" gorm:"size:100;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Article   *Article `json:"-" gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnDelete:SET NULL;"`
	AuthorRef *User    `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnDelete:SET NULL;"`
}

func (Comment) TableName() string {
	return "comments"
}
