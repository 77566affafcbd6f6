package confirm

import (
	"context"
	"fmt"
	"testing"
	"time"

	"project-submission-system/internal/global/mailer"
	"project-submission-system/internal/global/response"
	"project-submission-system/internal/model"
	"project-submission-system/internal/repository"
	"project-submission-system/test"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sentMail struct {
	recipient string
	subject   string
	tpl       mailer.Template
	tplCtx    mailer.Context
}

// fakeNotifier 记录每次发送，err 非空时模拟邮件网关故障
type fakeNotifier struct {
	mails []sentMail
	err   error
}

func (f *fakeNotifier) Send(_ context.Context, recipient, subject string, tpl mailer.Template, tplCtx mailer.Context) error {
	f.mails = append(f.mails, sentMail{recipient, subject, tpl, tplCtx})
	return f.err
}

func newTestWorkflow(t *testing.T) (*gorm.DB, *Workflow, *fakeNotifier) {
	db := test.NewDB(t)
	notifier := &fakeNotifier{}
	wf := NewWorkflow(
		repository.NewProjectRepository(db),
		repository.NewStatusRepository(db),
		notifier,
	)
	return db, wf, notifier
}

func seedProject(t *testing.T, db *gorm.DB, id uint, status model.Status) *model.Project {
	writer := model.User{
		Email:    fmt.Sprintf("writer%d@example.com", id),
		Name:     fmt.Sprintf("作者%d", id),
		Password: "encrypted",
	}
	require.NoError(t, db.Create(&writer).Error)

	project := model.Project{
		Model:    model.Model{ID: id},
		Name:     fmt.Sprintf("项目%d", id),
		TeamName: "测试小队",
		Type:     "team",
		WriterID: writer.ID,
	}
	require.NoError(t, db.Create(&project).Error)

	status.ProjectID = project.ID
	require.NoError(t, db.Create(&status).Error)
	return &project
}

func planPending() model.Status {
	now := time.Now()
	return model.Status{
		IsPlanSubmitted: true,
		PlanSubmittedAt: &now,
		PlanReview:      model.ReviewPending,
		ReportReview:    model.ReviewPending,
	}
}

func loadStatus(t *testing.T, db *gorm.DB, projectID uint) model.Status {
	var status model.Status
	require.NoError(t, db.First(&status, "project_id = ?", projectID).Error)
	return status
}

func TestConfirmApproveThenConflict(t *testing.T) {
	db, wf, notifier := newTestWorkflow(t)
	project := seedProject(t, db, 7, planPending())
	ctx := context.Background()

	require.NoError(t, wf.Confirm(ctx, project.ID, model.TrackPlan, model.DecisionApprove, "good work"))

	status := loadStatus(t, db, project.ID)
	require.Equal(t, model.ReviewApproved, status.PlanReview)
	require.Equal(t, model.ReviewPending, status.ReportReview)

	require.Len(t, notifier.mails, 1)
	mail := notifier.mails[0]
	require.Equal(t, "writer7@example.com", mail.recipient)
	require.Equal(t, mailer.TplPlanApproved, mail.tpl)
	require.Equal(t, "项目7", mail.tplCtx.ProjectName)
	require.Equal(t, "good work", mail.tplCtx.Comment)

	// 已终态的轨道再次审核报冲突，不再发通知，落库决定不变
	err := wf.Confirm(ctx, project.ID, model.TrackPlan, model.DecisionDeny, "改判")
	require.ErrorIs(t, err, response.ErrConflict)
	require.Len(t, notifier.mails, 1)
	require.Equal(t, model.ReviewApproved, loadStatus(t, db, project.ID).PlanReview)
}

func TestConfirmDeny(t *testing.T) {
	db, wf, notifier := newTestWorkflow(t)
	project := seedProject(t, db, 1, planPending())

	require.NoError(t, wf.Confirm(context.Background(), project.ID, model.TrackPlan, model.DecisionDeny, "方案不完整"))

	require.Equal(t, model.ReviewDenied, loadStatus(t, db, project.ID).PlanReview)
	require.Len(t, notifier.mails, 1)
	require.Equal(t, mailer.TplPlanDenied, notifier.mails[0].tpl)
}

func TestConfirmReportTrack(t *testing.T) {
	db, wf, notifier := newTestWorkflow(t)
	now := time.Now()
	project := seedProject(t, db, 2, model.Status{
		IsPlanSubmitted:   true,
		IsReportSubmitted: true,
		PlanSubmittedAt:   &now,
		ReportSubmittedAt: &now,
		PlanReview:        model.ReviewApproved,
		ReportReview:      model.ReviewPending,
	})

	require.NoError(t, wf.Confirm(context.Background(), project.ID, model.TrackReport, model.DecisionApprove, ""))

	status := loadStatus(t, db, project.ID)
	require.Equal(t, model.ReviewApproved, status.ReportReview)
	// 计划书轨道不受影响
	require.Equal(t, model.ReviewApproved, status.PlanReview)
	require.Equal(t, mailer.TplReportApproved, notifier.mails[0].tpl)
}

func TestConfirmNotSubmitted(t *testing.T) {
	db, wf, notifier := newTestWorkflow(t)
	project := seedProject(t, db, 3, planPending())

	err := wf.Confirm(context.Background(), project.ID, model.TrackReport, model.DecisionApprove, "")
	require.ErrorIs(t, err, response.ErrConflict)
	require.Empty(t, notifier.mails)
	require.Equal(t, model.ReviewPending, loadStatus(t, db, project.ID).ReportReview)
}

func TestConfirmUnknownProject(t *testing.T) {
	_, wf, notifier := newTestWorkflow(t)

	for _, track := range []model.Track{model.TrackPlan, model.TrackReport} {
		err := wf.Confirm(context.Background(), 404, track, model.DecisionApprove, "")
		require.ErrorIs(t, err, response.ErrNotFound)
	}
	require.Empty(t, notifier.mails)
}

// 通知失败不回滚已落库的审核决定
func TestConfirmMailFailure(t *testing.T) {
	db, wf, notifier := newTestWorkflow(t)
	notifier.err = fmt.Errorf("邮件网关超时")
	project := seedProject(t, db, 5, planPending())

	err := wf.Confirm(context.Background(), project.ID, model.TrackPlan, model.DecisionApprove, "")
	require.ErrorIs(t, err, response.ErrMailSend)
	require.Equal(t, model.ReviewApproved, loadStatus(t, db, project.ID).PlanReview)
}
