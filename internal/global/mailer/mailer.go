package mailer

import (
	"context"

	"project-submission-system/internal/model"
)

// Template 邮件模板名，由 (轨道, 决定) 二元组唯一确定
type Template string

const (
	TplPlanApproved   Template = "planApproved"
	TplPlanDenied     Template = "planDenied"
	TplReportApproved Template = "reportApproved"
	TplReportDenied   Template = "reportDenied"
)

// Context 模板渲染上下文
type Context struct {
	ProjectName string `json:"project_name"`
	Comment     string `json:"comment"`
}

// Notifier 审核通知发送方。实现方不关心传输细节（SMTP、模板引擎由邮件网关承担）
type Notifier interface {
	Send(ctx context.Context, recipient, subject string, tpl Template, tplCtx Context) error
}

// ForDecision 固定的 4 路模板/标题表
func ForDecision(track model.Track, decision model.Decision) (Template, string) {
	switch {
	case track == model.TrackPlan && decision == model.DecisionApprove:
		return TplPlanApproved, "[项目平台] 计划书审核通过"
	case track == model.TrackPlan && decision == model.DecisionDeny:
		return TplPlanDenied, "[项目平台] 计划书审核未通过"
	case track == model.TrackReport && decision == model.DecisionApprove:
		return TplReportApproved, "[项目平台] 结题报告审核通过"
	default:
		return TplReportDenied, "[项目平台] 结题报告审核未通过"
	}
}
