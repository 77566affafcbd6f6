package user

import (
	"project-submission-system/internal/global/middleware"
	"project-submission-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	userGroup := r.Group("/user")
	{
		userGroup.POST("/register", Register)
		userGroup.POST("/login", Login)
	}

	authGroup := userGroup.Group("").Use(middleware.Auth(model.RoleWriter))
	{
		authGroup.GET("/me", GetMe)
	}
}
