package model

const (
	RoleWriter = 0 // 普通用户（项目作者）
	RoleAdmin  = 1 // 管理员（拥有审核权限）
)

type User struct {
	Model
	Email     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Name      string `gorm:"type:varchar(30);uniqueIndex;not null" json:"name"`
	StudentNo string `gorm:"type:varchar(20)" json:"student_no"` // 学号，可选
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	RoleID    int    `gorm:"default:0;not null" json:"role_id"`
}
