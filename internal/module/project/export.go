package project

import (
	"time"

	"project-submission-system/internal/global/database"
	"project-submission-system/internal/global/response"
	"project-submission-system/internal/model"
	"project-submission-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type exportRow struct {
	ID           uint   `excel:"项目ID"`
	Name         string `excel:"项目名称"`
	TeamName     string `excel:"队伍"`
	Type         string `excel:"类型"`
	Writer       string `excel:"提交人"`
	Email        string `excel:"邮箱"`
	PlanAt       string `excel:"计划书提交时间"`
	PlanReview   string `excel:"计划书审核"`
	ReportAt     string `excel:"报告提交时间"`
	ReportReview string `excel:"报告审核"`
}

func formatSubmittedAt(at *time.Time) string {
	if at == nil {
		return "未提交"
	}
	return at.Format("2006-01-02 15:04:05")
}

// ExportProjects 导出全部项目及两条轨道的提交/审核状态（管理员）
func ExportProjects(c *gin.Context) {
	var projects []model.Project
	if err := database.DB.Preload("Status").Preload("Writer").Order("id ASC").Find(&projects).Error; err != nil {
		log.Error("查询项目总览失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := make([]exportRow, 0, len(projects))
	for _, p := range projects {
		row := exportRow{
			ID:       p.ID,
			Name:     p.Name,
			TeamName: p.TeamName,
			Type:     p.Type,
			Writer:   p.Writer.Name,
			Email:    p.Writer.Email,
		}
		if p.Status != nil {
			row.PlanAt = formatSubmittedAt(p.Status.PlanSubmittedAt)
			row.PlanReview = string(p.Status.PlanReview)
			row.ReportAt = formatSubmittedAt(p.Status.ReportSubmittedAt)
			row.ReportReview = string(p.Status.ReportReview)
		}
		rows = append(rows, row)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "项目总览"
	if err := tools.ExportToExcel(f, sheet, rows); err != nil {
		log.Error("生成项目总览表失败", "error", err)
		response.Fail(c, response.ErrServer.WithOrigin(err))
		return
	}
	if len(rows) > 0 {
		// 没有数据时导出器不会建新表，保留默认工作表避免空工作簿
		f.DeleteSheet("Sheet1")
	}

	if err := tools.SendExcel(c, f, "项目总览.xlsx"); err != nil {
		log.Error("下发项目总览表失败", "error", err)
	}
}
