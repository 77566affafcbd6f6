package model

type Project struct {
	Model
	Name        string `gorm:"type:varchar(100);not null" json:"name"`      // 项目名称
	TeamName    string `gorm:"type:varchar(60);not null" json:"team_name"`  // 队伍名称
	TechStack   string `gorm:"type:varchar(255)" json:"tech_stack"`         // 技术栈描述
	Type        string `gorm:"type:varchar(30);not null" json:"type"`       // 项目类型标签
	TeacherName string `gorm:"type:varchar(30)" json:"teacher_name"`        // 指导教师
	RepoLink    string `gorm:"type:varchar(255)" json:"repo_link"`          // 代码仓库链接，可选
	ServiceLink string `gorm:"type:varchar(255)" json:"service_link"`       // 线上服务链接，可选
	DocsLink    string `gorm:"type:varchar(255)" json:"docs_link"`          // 文档链接，可选
	WriterID    uint   `gorm:"not null;index" json:"writer_id"`             // 提交者，外键指向用户表

	// 关联关系，仓储层按需 Preload，不做隐式加载
	Writer  User     `gorm:"foreignKey:WriterID" json:"writer,omitempty"`
	Plan    *Plan    `gorm:"foreignKey:ProjectID" json:"plan,omitempty"`
	Report  *Report  `gorm:"foreignKey:ProjectID" json:"report,omitempty"`
	Status  *Status  `gorm:"foreignKey:ProjectID" json:"status,omitempty"`
	Members []Member `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
	Fields  []Field  `gorm:"many2many:project_field" json:"fields,omitempty"`
}
