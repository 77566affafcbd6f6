package repository

import (
	"project-submission-system/internal/model"

	"gorm.io/gorm"
)

type FieldRepository struct {
	db *gorm.DB
}

func NewFieldRepository(db *gorm.DB) *FieldRepository {
	return &FieldRepository{db: db}
}

func (r *FieldRepository) List() ([]model.Field, error) {
	var fields []model.Field
	err := r.db.Order("id ASC").Find(&fields).Error
	return fields, err
}

// IDsByLabels 将领域标签解析为 id。未知标签直接丢弃，
// 全部未知时返回空切片，由调用方决定空过滤的语义
func (r *FieldRepository) IDsByLabels(labels []string) ([]uint, error) {
	if len(labels) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.Model(&model.Field{}).
		Where("label IN ?", labels).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *FieldRepository) Create(label string) (*model.Field, error) {
	field := model.Field{Label: label}
	if err := r.db.Create(&field).Error; err != nil {
		return nil, err
	}
	return &field, nil
}
