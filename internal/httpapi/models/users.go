package models

type User struct {
	Username  string `json:"username" gorm:"primaryKey;size:100"`
	Name      string `json:"name" gorm:"not null"`
	AvatarURL string `json:"avatar_url" gorm:"size:1000"`
}

func (User) TableName() string {
	return "users"
}
