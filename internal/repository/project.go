package repository

import (
	"fmt"

	"project-submission-system/internal/model"

	"gorm.io/gorm"
)

// Relation 详情查询可选加载的关联，未列出的关联一律不 join
type Relation string

const (
	RelPlan    Relation = "plan"
	RelReport  Relation = "report"
	RelMembers Relation = "members"
	RelFields  Relation = "fields"
	RelStatus  Relation = "status"
	RelWriter  Relation = "writer"
)

var preloadNames = map[Relation][]string{
	RelPlan:    {"Plan"},
	RelReport:  {"Report"},
	RelMembers: {"Members", "Members.User"},
	RelFields:  {"Fields"},
	RelStatus:  {"Status"},
	RelWriter:  {"Writer"},
}

// trackCols 状态表中每条轨道对应的列名
type trackCols struct {
	submitted   string
	submittedAt string
	review      string
}

var trackColumns = map[model.Track]trackCols{
	model.TrackPlan:   {"is_plan_submitted", "plan_submitted_at", "plan_review"},
	model.TrackReport: {"is_report_submitted", "report_submitted_at", "report_review"},
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindDetail 按 id 查询单个项目，只加载调用方指定的关联。
// 未知 id 返回 gorm.ErrRecordNotFound，绝不返回空壳对象
func (r *ProjectRepository) FindDetail(id uint, relations ...Relation) (*model.Project, error) {
	tx := r.db
	for _, rel := range relations {
		for _, name := range preloadNames[rel] {
			tx = tx.Preload(name)
		}
	}

	var project model.Project
	if err := tx.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListPending 查询指定轨道已提交且未审核的项目，先提交的先审
func (r *ProjectRepository) ListPending(track model.Track, limit, page int) ([]model.Project, int64, error) {
	cols := trackColumns[track]
	wrapper := r.db.Model(&model.Project{}).
		Joins("JOIN status ON status.project_id = project.id").
		Where(fmt.Sprintf("status.%s = ?", cols.submitted), true).
		Where(fmt.Sprintf("status.%s = ?", cols.review), model.ReviewPending)

	var total int64
	if err := wrapper.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []model.Project
	if err := wrapper.
		Select("project.*").
		Preload("Status").
		Preload("Fields").
		Order(fmt.Sprintf("status.%s ASC, project.id ASC", cols.submittedAt)).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// ListConfirmed 查询两条轨道均已通过的项目，按报告提交时间升序。
// fieldIDs 非空时限定为关联了其中任一领域的项目；空切片表示不过滤
func (r *ProjectRepository) ListConfirmed(limit, page int, fieldIDs []uint) ([]model.Project, int64, error) {
	wrapper := r.db.Model(&model.Project{}).
		Joins("JOIN status ON status.project_id = project.id").
		Where("status.plan_review = ? AND status.report_review = ?",
			model.ReviewApproved, model.ReviewApproved)

	if len(fieldIDs) > 0 {
		// 子查询过滤，避免 join 连接表产生重复行
		wrapper = wrapper.Where("project.id IN (?)",
			r.db.Table("project_field").Select("project_id").Where("field_id IN ?", fieldIDs))
	}

	var total int64
	if err := wrapper.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []model.Project
	if err := wrapper.
		Select("project.*").
		Preload("Status").
		Preload("Fields").
		Preload("Writer").
		Order("status.report_submitted_at ASC, project.id ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// Search 按项目名称做子串匹配，id 升序保证分页稳定
func (r *ProjectRepository) Search(query string, limit, page int) ([]model.Project, int64, error) {
	wrapper := r.db.Model(&model.Project{}).
		Where("name LIKE ?", "%"+query+"%")

	var total int64
	if err := wrapper.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []model.Project
	if err := wrapper.
		Preload("Fields").
		Preload("Status").
		Order("id ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}
