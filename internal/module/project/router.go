package project

import (
	"project-submission-system/internal/global/middleware"
	"project-submission-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (m *ModuleProject) InitRouter(r *gin.RouterGroup) {
	projectGroup := r.Group("/project")

	// 展示类端点无需登录
	projectGroup.GET("/list", ListConfirmedProjects)
	projectGroup.GET("/search", SearchProjects)
	projectGroup.GET("/detail/:id", GetProjectDetail)

	adminGroup := projectGroup.Group("").Use(middleware.Auth(model.RoleAdmin))
	{
		// 待审核列表端点
		adminGroup.GET("/pending-list", ListPendingProjects)
		// 项目总览导出端点
		adminGroup.GET("/export", ExportProjects)
	}

	commonGroup := projectGroup.Group("").Use(middleware.Auth(model.RoleWriter))
	{
		// 项目报名端点
		commonGroup.POST("/create", CreateProject)
		// 计划书提交端点
		commonGroup.POST("/submit/:id/plan", SubmitPlan)
		// 结题报告提交端点
		commonGroup.POST("/submit/:id/report", SubmitReport)
	}
}
