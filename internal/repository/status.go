package repository

import (
	"time"

	"project-submission-system/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type StatusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// ConfirmTrack 落库审核决定。整个 检查-写入 是一条以 review = pending 为
// 守卫条件的 UPDATE，两个并发请求只会有一个命中，后到者回读现状并报冲突
func (r *StatusRepository) ConfirmTrack(projectID uint, track model.Track, decision model.Decision) error {
	cols := trackColumns[track]
	res := r.db.Model(&model.Status{}).
		Where("project_id = ?", projectID).
		Where(cols.submitted+" = ?", true).
		Where(cols.review+" = ?", model.ReviewPending).
		Update(cols.review, decision.Review())
	if res.Error != nil {
		return errors.Wrap(res.Error, "更新审核状态失败")
	}
	if res.RowsAffected == 1 {
		return nil
	}

	// 条件更新未命中，回读现状区分失败原因
	var status model.Status
	err := r.db.First(&status, "project_id = ?", projectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return gorm.ErrRecordNotFound
	}
	if err != nil {
		return errors.Wrap(err, "查询项目状态失败")
	}
	if stateErr := status.Confirm(track, decision); stateErr != nil {
		return stateErr
	}
	return errors.New("审核状态更新未生效")
}

// SubmitTrack 在提交事务内标记轨道已提交并记录时间戳，由文档提交流程调用
func SubmitTrack(tx *gorm.DB, projectID uint, track model.Track, at time.Time) error {
	cols := trackColumns[track]
	res := tx.Model(&model.Status{}).
		Where("project_id = ?", projectID).
		Updates(map[string]any{
			cols.submitted:   true,
			cols.submittedAt: at,
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "更新提交状态失败")
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
