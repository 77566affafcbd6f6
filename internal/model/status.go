package model

import (
	"time"

	"github.com/pkg/errors"
)

// Track 文档轨道：计划书与结题报告各自独立走 提交 -> 审核 的生命周期
type Track string

const (
	TrackPlan   Track = "plan"
	TrackReport Track = "report"
)

func ParseTrack(s string) (Track, bool) {
	switch Track(s) {
	case TrackPlan, TrackReport:
		return Track(s), true
	}
	return "", false
}

// Decision 管理员的审核决定
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionDeny    Decision = "deny"
)

func ParseDecision(s string) (Decision, bool) {
	switch Decision(s) {
	case DecisionApprove, DecisionDeny:
		return Decision(s), true
	}
	return "", false
}

// ReviewState 审核状态。approved / denied 均为终态，不再发生任何迁移
type ReviewState string

const (
	ReviewPending  ReviewState = "pending"
	ReviewApproved ReviewState = "approved"
	ReviewDenied   ReviewState = "denied"
)

// Review 返回该决定落库后的审核状态
func (d Decision) Review() ReviewState {
	if d == DecisionApprove {
		return ReviewApproved
	}
	return ReviewDenied
}

var (
	ErrTrackNotSubmitted    = errors.New("文档尚未提交，无法审核")
	ErrTrackAlreadyReviewed = errors.New("文档已完成审核，禁止重复审核")
)

// Status 项目生命周期状态，与项目同事务创建，1:1 绑定
type Status struct {
	ProjectID         uint        `gorm:"primaryKey" json:"project_id"`
	IsPlanSubmitted   bool        `gorm:"not null;default:false" json:"is_plan_submitted"`
	IsReportSubmitted bool        `gorm:"not null;default:false" json:"is_report_submitted"`
	PlanSubmittedAt   *time.Time  `json:"plan_submitted_at"`
	ReportSubmittedAt *time.Time  `json:"report_submitted_at"`
	PlanReview        ReviewState `gorm:"type:varchar(16);not null;default:pending" json:"plan_review"`
	ReportReview      ReviewState `gorm:"type:varchar(16);not null;default:pending" json:"report_review"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

func (s *Status) SubmittedOf(t Track) bool {
	if t == TrackPlan {
		return s.IsPlanSubmitted
	}
	return s.IsReportSubmitted
}

func (s *Status) ReviewOf(t Track) ReviewState {
	if t == TrackPlan {
		return s.PlanReview
	}
	return s.ReportReview
}

func (s *Status) setReview(t Track, r ReviewState) {
	if t == TrackPlan {
		s.PlanReview = r
	} else {
		s.ReportReview = r
	}
}

// Confirm 状态机迁移：NotSubmitted -> Submitted -> {Approved | Denied}
// 未提交或已达终态的轨道拒绝迁移；这是内存中唯一允许改写审核状态的入口，
// 落库由仓储层的条件更新保证原子性
func (s *Status) Confirm(t Track, d Decision) error {
	if !s.SubmittedOf(t) {
		return ErrTrackNotSubmitted
	}
	if s.ReviewOf(t) != ReviewPending {
		return ErrTrackAlreadyReviewed
	}
	s.setReview(t, d.Review())
	return nil
}
