package confirm

import (
	"project-submission-system/internal/global/middleware"
	"project-submission-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (m *ModuleConfirm) InitRouter(r *gin.RouterGroup) {
	// 审核端点仅限管理员
	adminGroup := r.Group("/project").Use(middleware.Auth(model.RoleAdmin))
	{
		adminGroup.POST("/confirm", ConfirmProject)
	}
}
