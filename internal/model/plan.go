package model

import "time"

// Plan 计划书，每个项目至多一份；记录存在即代表计划书已提交
type Plan struct {
	ProjectID         uint      `gorm:"primaryKey" json:"project_id"`
	Goal              string    `gorm:"type:text;not null" json:"goal"`
	Content           string    `gorm:"type:text;not null" json:"content"`
	PdfURL            string    `gorm:"type:varchar(255)" json:"pdf_url"` // 计划书 PDF，可选
	StartDate         string    `gorm:"type:varchar(20)" json:"start_date"`
	EndDate           string    `gorm:"type:varchar(20)" json:"end_date"`
	IncludeResultPage bool      `json:"include_result_page"`
	IncludeCode       bool      `json:"include_code"`
	IncludeOutcome    bool      `json:"include_outcome"`
	IncludeOthers     bool      `json:"include_others"`
	OthersDescription string    `gorm:"type:varchar(255)" json:"others_description"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
