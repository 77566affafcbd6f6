package model

import (
	"time"
)

type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Model) CreateTime() int64 {
	return m.CreatedAt.UnixMilli()
}

func (m *Model) UpdateTime() int64 {
	return m.UpdatedAt.UnixMilli()
}
