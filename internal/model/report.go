package model

import "time"

// Report 结题报告，每个项目至多一份；记录存在即代表报告已提交
type Report struct {
	ProjectID uint      `gorm:"primaryKey" json:"project_id"`
	VideoURL  string    `gorm:"type:varchar(255)" json:"video_url"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
