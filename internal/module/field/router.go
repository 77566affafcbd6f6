package field

import (
	"project-submission-system/internal/global/middleware"
	"project-submission-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (f *ModuleField) InitRouter(r *gin.RouterGroup) {
	fieldGroup := r.Group("/field")

	fieldGroup.GET("/list", ListFields)

	adminGroup := fieldGroup.Group("").Use(middleware.Auth(model.RoleAdmin))
	{
		adminGroup.POST("/create", CreateField)
	}
}
