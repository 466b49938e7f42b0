package models

type Topic struct {
	Slug        string `json:"slug" gorm:"primaryKey;size:100"`
	Description string `json:"description" gorm:"not null"`
	ImgURL      string `json:"img_url" gorm:"size:1000"`
}

func (Topic) TableName() string {
	return "topics"
}
