package project

import (
	"strconv"
	"strings"

	"project-submission-system/internal/global/response"
	"project-submission-system/internal/model"
	"project-submission-system/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PageReq 分页查询参数，page 从 1 开始
type PageReq struct {
	Limit int `form:"limit" json:"limit"`
	Page  int `form:"page" json:"page"`
}

func (p *PageReq) normalize() {
	if p.Limit < 1 {
		p.Limit = 8
	}
	if p.Page < 1 {
		p.Page = 1
	}
}

func pageBody(projects []model.Project, total int64, limit, page int) gin.H {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return gin.H{
		"projects":    projects,
		"total":       total,
		"total_pages": totalPages,
		"page":        page,
		"limit":       limit,
	}
}

// ListConfirmedReq 定义获取已结项项目列表的查询参数结构体
type ListConfirmedReq struct {
	PageReq
	Field string `form:"field" json:"field"` // 领域标签筛选，逗号分隔，可选
}

// ListConfirmedProjects 获取两条轨道均审核通过的项目列表
func ListConfirmedProjects(c *gin.Context) {
	var req ListConfirmedReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("绑定查询参数失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	req.normalize()

	var fieldIDs []uint
	if req.Field != "" {
		labels := strings.Split(req.Field, ",")
		ids, err := fieldRepo.IDsByLabels(labels)
		if err != nil {
			log.Error("解析领域标签失败", "error", err, "field", req.Field)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		// 标签一个都没匹配上时按"无匹配"处理，而不是放开过滤
		if len(ids) == 0 {
			response.Success(c, pageBody(nil, 0, req.Limit, req.Page))
			return
		}
		fieldIDs = ids
	}

	projects, total, err := projectRepo.ListConfirmed(req.Limit, req.Page, fieldIDs)
	if err != nil {
		log.Error("查询已结项项目失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, pageBody(projects, total, req.Limit, req.Page))
}

// ListPendingReq 定义获取待审核项目列表的查询参数结构体
type ListPendingReq struct {
	PageReq
	Type string `form:"type" json:"type" binding:"required"` // 文档类型：plan / report
}

// ListPendingProjects 获取指定文档类型的待审核项目列表，先提交的排在前面
func ListPendingProjects(c *gin.Context) {
	var req ListPendingReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("绑定查询参数失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	req.normalize()

	track, ok := model.ParseTrack(req.Type)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("type 仅支持 plan / report"))
		return
	}

	projects, total, err := projectRepo.ListPending(track, req.Limit, req.Page)
	if err != nil {
		log.Error("查询待审核项目失败", "error", err, "type", req.Type)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, pageBody(projects, total, req.Limit, req.Page))
}

// SearchReq 定义项目搜索的查询参数结构体
type SearchReq struct {
	PageReq
	Query string `form:"query" json:"query" binding:"required"` // 项目名称关键词
}

// SearchProjects 按项目名称做子串搜索
func SearchProjects(c *gin.Context) {
	var req SearchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("绑定查询参数失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	req.normalize()

	projects, total, err := projectRepo.Search(req.Query, req.Limit, req.Page)
	if err != nil {
		log.Error("搜索项目失败", "error", err, "query", req.Query)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, pageBody(projects, total, req.Limit, req.Page))
}

// GetProjectDetail 获取单个项目详情，加载全部关联
func GetProjectDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("项目ID格式错误"))
		return
	}

	project, err := projectRepo.FindDetail(uint(id),
		repository.RelPlan,
		repository.RelReport,
		repository.RelMembers,
		repository.RelFields,
		repository.RelStatus,
		repository.RelWriter,
	)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrNotFound.WithTips("项目不存在"))
		return
	}
	if err != nil {
		log.Error("查询项目详情失败", "error", err, "project_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, project)
}
