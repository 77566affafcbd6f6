package confirm

import (
	"project-submission-system/internal/global/response"
	"project-submission-system/internal/model"

	"github.com/gin-gonic/gin"
)

// ConfirmReq 定义审核请求的结构体
type ConfirmReq struct {
	ProjectID uint   `json:"project_id" binding:"required"` // 项目ID
	Type      string `json:"type" binding:"required"`       // 文档类型：plan / report
	Decision  string `json:"decision" binding:"required"`   // 审核决定：approve / deny
	Comment   string `json:"comment"`                       // 审核意见，随通知发给作者
}

// ConfirmProject 审核项目文档
func ConfirmProject(c *gin.Context) {
	var req ConfirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定审核请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 枚举值在进入工作流之前校验
	track, ok := model.ParseTrack(req.Type)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("type 仅支持 plan / report"))
		return
	}
	decision, ok := model.ParseDecision(req.Decision)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("decision 仅支持 approve / deny"))
		return
	}

	if err := workflow.Confirm(c.Request.Context(), req.ProjectID, track, decision, req.Comment); err != nil {
		log.Warn("项目审核失败",
			"project_id", req.ProjectID,
			"type", req.Type,
			"decision", req.Decision,
			"error", err)
		response.Fail(c, err)
		return
	}

	log.Info("项目审核完成",
		"project_id", req.ProjectID,
		"type", req.Type,
		"decision", req.Decision)
	response.Success(c)
}
