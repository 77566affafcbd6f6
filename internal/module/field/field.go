package field

import (
	"time"

	"project-submission-system/internal/global/cache"
	"project-submission-system/internal/global/response"
	"project-submission-system/internal/model"

	"github.com/gin-gonic/gin"
)

// 领域标签变化极少，列表走 redis 缓存
const (
	fieldListCacheKey = "field:list"
	fieldListCacheTTL = 10 * time.Minute
)

// ListFields 获取全部领域标签
func ListFields(c *gin.Context) {
	var cached []model.Field
	if hit, err := cache.GetJSON(c.Request.Context(), fieldListCacheKey, &cached); err != nil {
		log.Warn("读取领域标签缓存失败", "error", err)
	} else if hit {
		response.Success(c, cached)
		return
	}

	fields, err := fieldRepo.List()
	if err != nil {
		log.Error("查询领域标签失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := cache.SetJSON(c.Request.Context(), fieldListCacheKey, fields, fieldListCacheTTL); err != nil {
		log.Warn("写入领域标签缓存失败", "error", err)
	}
	response.Success(c, fields)
}

// CreateFieldReq 定义创建领域标签请求的结构体
type CreateFieldReq struct {
	Label string `json:"label" binding:"required"`
}

// CreateField 创建领域标签（管理员），写入后使列表缓存失效
func CreateField(c *gin.Context) {
	var req CreateFieldReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建领域标签请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	field, err := fieldRepo.Create(req.Label)
	if err != nil {
		log.Error("创建领域标签失败", "error", err, "label", req.Label)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := cache.Delete(c.Request.Context(), fieldListCacheKey); err != nil {
		log.Warn("清除领域标签缓存失败", "error", err)
	}

	log.Info("领域标签创建成功", "label", req.Label)
	response.Success(c, field)
}
