package repository

import (
	"testing"
	"time"

	"project-submission-system/internal/model"
	"project-submission-system/test"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConfirmTrack(t *testing.T) {
	db := test.NewDB(t)
	repo := NewStatusRepository(db)

	project := seedProject(t, db, "待审核项目", planSubmitted(0, model.ReviewPending))

	require.NoError(t, repo.ConfirmTrack(project.ID, model.TrackPlan, model.DecisionApprove))

	var status model.Status
	require.NoError(t, db.First(&status, "project_id = ?", project.ID).Error)
	require.Equal(t, model.ReviewApproved, status.PlanReview)
	require.Equal(t, model.ReviewPending, status.ReportReview)

	// 终态后重复审核被拒绝，已落库的决定不变
	err := repo.ConfirmTrack(project.ID, model.TrackPlan, model.DecisionDeny)
	require.ErrorIs(t, err, model.ErrTrackAlreadyReviewed)
	require.NoError(t, db.First(&status, "project_id = ?", project.ID).Error)
	require.Equal(t, model.ReviewApproved, status.PlanReview)
}

func TestConfirmTrackNotSubmitted(t *testing.T) {
	db := test.NewDB(t)
	repo := NewStatusRepository(db)

	project := seedProject(t, db, "只交了计划书", planSubmitted(0, model.ReviewPending))

	err := repo.ConfirmTrack(project.ID, model.TrackReport, model.DecisionApprove)
	require.ErrorIs(t, err, model.ErrTrackNotSubmitted)

	var status model.Status
	require.NoError(t, db.First(&status, "project_id = ?", project.ID).Error)
	require.Equal(t, model.ReviewPending, status.ReportReview)
}

func TestConfirmTrackUnknownProject(t *testing.T) {
	db := test.NewDB(t)
	repo := NewStatusRepository(db)

	err := repo.ConfirmTrack(99999, model.TrackPlan, model.DecisionApprove)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSubmitTrack(t *testing.T) {
	db := test.NewDB(t)

	project := seedProject(t, db, "准备交报告", planSubmitted(0, model.ReviewApproved))
	submitAt := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, SubmitTrack(db, project.ID, model.TrackReport, submitAt))

	var status model.Status
	require.NoError(t, db.First(&status, "project_id = ?", project.ID).Error)
	require.True(t, status.IsReportSubmitted)
	require.NotNil(t, status.ReportSubmittedAt)
	require.True(t, status.ReportSubmittedAt.Equal(submitAt))
	// 另一条轨道不受影响
	require.Equal(t, model.ReviewApproved, status.PlanReview)

	require.ErrorIs(t, SubmitTrack(db, 99999, model.TrackPlan, submitAt), gorm.ErrRecordNotFound)
}
