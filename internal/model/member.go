package model

// Member 项目成员，(project_id, user_id) 联合主键
type Member struct {
	ProjectID uint   `gorm:"primaryKey" json:"project_id"`
	UserID    uint   `gorm:"primaryKey" json:"user_id"`
	Role      string `gorm:"type:varchar(30)" json:"role"` // 成员在队伍中的分工

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
