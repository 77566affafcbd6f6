package confirm

import (
	"context"

	"project-submission-system/internal/global/mailer"
	"project-submission-system/internal/global/response"
	"project-submission-system/internal/model"
	"project-submission-system/internal/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Workflow 审核工作流：加载项目 -> 状态机校验 -> 条件更新落库 -> 通知作者。
// 协作方全部通过构造函数注入，不依赖全局容器
type Workflow struct {
	projects *repository.ProjectRepository
	statuses *repository.StatusRepository
	notifier mailer.Notifier
}

func NewWorkflow(projects *repository.ProjectRepository, statuses *repository.StatusRepository, notifier mailer.Notifier) *Workflow {
	return &Workflow{
		projects: projects,
		statuses: statuses,
		notifier: notifier,
	}
}

// Confirm 处理一次审核请求。通知在决定持久化之后发送，发送失败不回滚审核，
// 而是以 ErrMailSend 区别于审核本身的失败
func (w *Workflow) Confirm(ctx context.Context, projectID uint, track model.Track, decision model.Decision, comment string) error {
	project, err := w.projects.FindDetail(projectID, repository.RelWriter, repository.RelStatus)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.ErrNotFound.WithTips("项目不存在")
	}
	if err != nil {
		return response.ErrDatabase.WithOrigin(err)
	}
	if project.Status == nil {
		// 状态行与项目同事务创建，缺失说明数据被破坏
		return response.ErrServer.WithTips("项目状态缺失")
	}

	// 状态机预检，尽早给出明确的失败原因
	status := *project.Status
	if stateErr := status.Confirm(track, decision); stateErr != nil {
		return conflictError(stateErr)
	}

	// 条件更新是并发下的最终裁决：竞争中后到的请求在这里拿到冲突
	if err := w.statuses.ConfirmTrack(projectID, track, decision); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return response.ErrNotFound.WithTips("项目不存在")
		case errors.Is(err, model.ErrTrackNotSubmitted), errors.Is(err, model.ErrTrackAlreadyReviewed):
			return conflictError(err)
		default:
			return response.ErrDatabase.WithOrigin(err)
		}
	}

	tpl, subject := mailer.ForDecision(track, decision)
	if err := w.notifier.Send(ctx, project.Writer.Email, subject, tpl, mailer.Context{
		ProjectName: project.Name,
		Comment:     comment,
	}); err != nil {
		return response.ErrMailSend.WithOrigin(err)
	}
	return nil
}

func conflictError(err error) error {
	switch {
	case errors.Is(err, model.ErrTrackNotSubmitted):
		return response.ErrConflict.WithTips("文档尚未提交")
	case errors.Is(err, model.ErrTrackAlreadyReviewed):
		return response.ErrConflict.WithTips("文档已完成审核")
	}
	return response.ErrConflict
}
