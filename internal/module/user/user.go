package user

import (
	"strings"

	"project-submission-system/internal/global/database"
	"project-submission-system/internal/global/jwt"
	"project-submission-system/internal/global/response"
	"project-submission-system/internal/model"
	"project-submission-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// LoginReq 定义登录请求的结构体
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login 处理用户登录请求
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var user model.User
	err := database.DB.Where("email = ?", req.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("用户不存在", "email", req.Email)
		response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("密码错误", "email", req.Email)
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	log.Info("用户登录成功",
		"user_id", user.ID,
		"role_id", user.RoleID)

	response.Success(c, gin.H{
		"token": jwt.CreateToken(jwt.Payload{
			UserID: user.ID,
			Email:  user.Email,
			RoleID: user.RoleID,
		}),
		"user_id": user.ID,
		"name":    user.Name,
		"role_id": user.RoleID,
	})
}

// validatePasswordStrength 验证密码强度
func validatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("密码长度必须至少8字符")
	}

	hasLetter := false
	hasDigit := false
	hasSpecial := false
	specialChars := "!@#$%^&*-"

	for _, char := range password {
		switch {
		case strings.ContainsRune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ", char):
			hasLetter = true
		case strings.ContainsRune("0123456789", char):
			hasDigit = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasLetter {
		return errors.New("密码必须包含至少一个字母")
	}
	if !hasDigit {
		return errors.New("密码必须包含至少一个数字")
	}
	if !hasSpecial {
		return errors.New("密码必须包含至少一个特殊字符（!@#$%^&*-）")
	}

	return nil
}

// RegisterReq 定义注册请求的结构体
type RegisterReq struct {
	Email     string `json:"email" binding:"required,email"`
	Name      string `json:"name" binding:"required"`
	StudentNo string `json:"student_no"`
	Password  string `json:"password" binding:"required"`
}

// Register 处理用户注册请求
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定注册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if err := validatePasswordStrength(req.Password); err != nil {
		log.Warn("密码强度验证失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	var existingUser model.User
	err := database.DB.Where("email = ? OR name = ?", req.Email, req.Name).First(&existingUser).Error
	if err == nil {
		log.Warn("用户已存在", "email", req.Email)
		response.Fail(c, response.ErrAlreadyExists.WithTips("邮箱或昵称已被占用"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("数据库查询失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	user := model.User{
		Email:     req.Email,
		Name:      req.Name,
		StudentNo: req.StudentNo,
		Password:  tools.PasswordEncrypt(req.Password),
		RoleID:    model.RoleWriter,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		log.Error("创建用户失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户注册成功",
		"user_id", user.ID,
		"name", user.Name)
	response.Success(c)
}

// GetMe 查询当前登录用户信息
func GetMe(c *gin.Context) {
	payload, exist := jwt.GetUserPayload(c)
	if !exist {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var user model.User
	if err := database.DB.First(&user, payload.UserID).Error; err != nil {
		log.Error("查询用户失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, user)
}
