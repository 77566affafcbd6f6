package repository

import (
	"fmt"
	"testing"
	"time"

	"project-submission-system/internal/model"
	"project-submission-system/test"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var userSeq int

func seedWriter(t *testing.T, db *gorm.DB) *model.User {
	userSeq++
	user := &model.User{
		Email:    fmt.Sprintf("writer%d@example.com", userSeq),
		Name:     fmt.Sprintf("作者%d", userSeq),
		Password: "encrypted",
		RoleID:   model.RoleWriter,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedProject 创建项目及其状态行，可选挂上领域标签
func seedProject(t *testing.T, db *gorm.DB, name string, status model.Status, fieldIDs ...uint) *model.Project {
	writer := seedWriter(t, db)
	project := &model.Project{
		Name:     name,
		TeamName: name + "小队",
		Type:     "team",
		WriterID: writer.ID,
	}
	require.NoError(t, db.Create(project).Error)

	status.ProjectID = project.ID
	require.NoError(t, db.Create(&status).Error)

	for _, fid := range fieldIDs {
		require.NoError(t, db.Create(&model.ProjectField{ProjectID: project.ID, FieldID: fid}).Error)
	}
	return project
}

func at(hours int) *time.Time {
	ts := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC).Add(time.Duration(hours) * time.Hour)
	return &ts
}

func planSubmitted(hours int, review model.ReviewState) model.Status {
	return model.Status{
		IsPlanSubmitted: true,
		PlanSubmittedAt: at(hours),
		PlanReview:      review,
		ReportReview:    model.ReviewPending,
	}
}

func bothApproved(reportHours int) model.Status {
	return model.Status{
		IsPlanSubmitted:   true,
		IsReportSubmitted: true,
		PlanSubmittedAt:   at(0),
		ReportSubmittedAt: at(reportHours),
		PlanReview:        model.ReviewApproved,
		ReportReview:      model.ReviewApproved,
	}
}

func TestFindDetailRelations(t *testing.T) {
	db := test.NewDB(t)
	repo := NewProjectRepository(db)

	project := seedProject(t, db, "智能浇花", planSubmitted(0, model.ReviewPending))
	require.NoError(t, db.Create(&model.Plan{ProjectID: project.ID, Goal: "自动化浇水"}).Error)
	require.NoError(t, db.Create(&model.Report{ProjectID: project.ID, Content: "结题总结"}).Error)

	teammate := seedWriter(t, db)
	require.NoError(t, db.Create(&model.Member{ProjectID: project.ID, UserID: teammate.ID, Role: "前端"}).Error)

	web, err := NewFieldRepository(db).Create("WEB")
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.ProjectField{ProjectID: project.ID, FieldID: web.ID}).Error)

	// 只加载指定的关联，未指定的保持零值
	got, err := repo.FindDetail(project.ID, RelPlan, RelStatus)
	require.NoError(t, err)
	require.NotNil(t, got.Plan)
	require.Equal(t, "自动化浇水", got.Plan.Goal)
	require.NotNil(t, got.Status)
	require.Nil(t, got.Report)
	require.Empty(t, got.Members)
	require.Empty(t, got.Fields)

	got, err = repo.FindDetail(project.ID, RelReport, RelMembers, RelFields, RelWriter)
	require.NoError(t, err)
	require.NotNil(t, got.Report)
	require.Len(t, got.Members, 1)
	require.Equal(t, teammate.ID, got.Members[0].User.ID)
	require.Len(t, got.Fields, 1)
	require.Equal(t, "WEB", got.Fields[0].Label)
	require.Equal(t, project.WriterID, got.Writer.ID)

	_, err = repo.FindDetail(99999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListPending(t *testing.T) {
	db := test.NewDB(t)
	repo := NewProjectRepository(db)

	later := seedProject(t, db, "后提交的", planSubmitted(5, model.ReviewPending))
	earlier := seedProject(t, db, "先提交的", planSubmitted(1, model.ReviewPending))
	seedProject(t, db, "已通过的", planSubmitted(2, model.ReviewApproved))
	seedProject(t, db, "未提交的", model.Status{
		PlanReview:   model.ReviewPending,
		ReportReview: model.ReviewPending,
	})

	rows, total, err := repo.ListPending(model.TrackPlan, 8, 1)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, rows, 2)
	// 先提交的先审
	require.Equal(t, earlier.ID, rows[0].ID)
	require.Equal(t, later.ID, rows[1].ID)
	require.NotNil(t, rows[0].Status)

	// 报告轨道与计划书轨道互不影响
	rows, total, err = repo.ListPending(model.TrackReport, 8, 1)
	require.NoError(t, err)
	require.EqualValues(t, 0, total)
	require.Empty(t, rows)
}

func TestListConfirmed(t *testing.T) {
	db := test.NewDB(t)
	repo := NewProjectRepository(db)
	fields := NewFieldRepository(db)

	web, err := fields.Create("WEB")
	require.NoError(t, err)
	game, err := fields.Create("GAME")
	require.NoError(t, err)

	second := seedProject(t, db, "双轨通过乙", bothApproved(4), web.ID)
	first := seedProject(t, db, "双轨通过甲", bothApproved(2))
	seedProject(t, db, "报告未审", model.Status{
		IsPlanSubmitted:   true,
		IsReportSubmitted: true,
		PlanSubmittedAt:   at(0),
		ReportSubmittedAt: at(1),
		PlanReview:        model.ReviewApproved,
		ReportReview:      model.ReviewPending,
	})
	seedProject(t, db, "计划被拒", model.Status{
		IsPlanSubmitted:   true,
		IsReportSubmitted: true,
		PlanSubmittedAt:   at(0),
		ReportSubmittedAt: at(1),
		PlanReview:        model.ReviewDenied,
		ReportReview:      model.ReviewApproved,
	})

	rows, total, err := repo.ListConfirmed(8, 1, nil)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, rows, 2)
	require.Equal(t, first.ID, rows[0].ID)
	require.Equal(t, second.ID, rows[1].ID)

	// 按领域过滤
	rows, total, err = repo.ListConfirmed(8, 1, []uint{web.ID})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, second.ID, rows[0].ID)

	// 无项目关联该领域时结果为空，不报错
	rows, total, err = repo.ListConfirmed(8, 1, []uint{game.ID})
	require.NoError(t, err)
	require.EqualValues(t, 0, total)
	require.Empty(t, rows)
}

func TestSearch(t *testing.T) {
	db := test.NewDB(t)
	repo := NewProjectRepository(db)

	robo := seedProject(t, db, "RoboArm", planSubmitted(0, model.ReviewPending))
	seedProject(t, db, "Garden", planSubmitted(1, model.ReviewPending))

	rows, total, err := repo.Search("Robo", 8, 1)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	require.Equal(t, robo.ID, rows[0].ID)

	rows, total, err = repo.Search("不存在的项目", 8, 1)
	require.NoError(t, err)
	require.EqualValues(t, 0, total)
	require.Empty(t, rows)
}

// 分页应不重不漏地切分全集
func TestListConfirmedPagination(t *testing.T) {
	db := test.NewDB(t)
	repo := NewProjectRepository(db)

	want := make(map[uint]bool)
	for i := 0; i < 5; i++ {
		p := seedProject(t, db, fmt.Sprintf("项目%d", i), bothApproved(i))
		want[p.ID] = true
	}

	seen := make(map[uint]bool)
	limit := 2
	for page := 1; page <= 3; page++ {
		rows, total, err := repo.ListConfirmed(limit, page, nil)
		require.NoError(t, err)
		require.EqualValues(t, 5, total)
		for _, row := range rows {
			require.False(t, seen[row.ID], "项目 %d 出现在多页", row.ID)
			seen[row.ID] = true
		}
	}
	require.Equal(t, want, seen)

	// 超出末页返回空页，总数不变
	rows, total, err := repo.ListConfirmed(limit, 4, nil)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Empty(t, rows)
}

func TestFieldIDsByLabels(t *testing.T) {
	db := test.NewDB(t)
	repo := NewFieldRepository(db)

	web, err := repo.Create("WEB")
	require.NoError(t, err)
	app, err := repo.Create("APP")
	require.NoError(t, err)

	ids, err := repo.IDsByLabels([]string{"WEB", "APP", "未知标签"})
	require.NoError(t, err)
	require.ElementsMatch(t, []uint{web.ID, app.ID}, ids)

	ids, err = repo.IDsByLabels([]string{"未知标签"})
	require.NoError(t, err)
	require.Empty(t, ids)

	ids, err = repo.IDsByLabels(nil)
	require.NoError(t, err)
	require.Empty(t, ids)
}
