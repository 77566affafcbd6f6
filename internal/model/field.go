package model

// Field 项目领域标签（WEB、APP、GAME 等）
type Field struct {
	Model
	Label string `gorm:"type:varchar(30);uniqueIndex;not null" json:"label"`
}

// ProjectField 项目与领域的多对多关联行，(project_id, field_id) 唯一
type ProjectField struct {
	ProjectID uint `gorm:"primaryKey" json:"project_id"`
	FieldID   uint `gorm:"primaryKey" json:"field_id"`
}
