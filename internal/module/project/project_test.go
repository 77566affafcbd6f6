package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-submission-system/internal/global/database"
	"project-submission-system/internal/global/jwt"
	"project-submission-system/internal/global/response"
	"project-submission-system/internal/model"
	"project-submission-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupIntake(t *testing.T) *gorm.DB {
	db := setupList(t)
	database.DB = db
	return db
}

// doAuthedRequest 模拟通过鉴权中间件后的请求：payload 已注入上下文，可带路径参数
func doAuthedRequest(t *testing.T, handler gin.HandlerFunc, userID uint, roleID int, id string, body any) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	bodyBytes, err := json.Marshal(body)
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(bodyBytes))
	c.Request.Header.Set("Content-Type", "application/json")
	if id != "" {
		c.Params = gin.Params{{Key: "id", Value: id}}
	}
	c.Set("payload", &jwt.Claims{Payload: jwt.Payload{UserID: userID, RoleID: roleID}})

	handler(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

func seedUser(t *testing.T, db *gorm.DB, email, name string) *model.User {
	user := &model.User{Email: email, Name: name, Password: "encrypted"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestCreateProject(t *testing.T) {
	db := setupIntake(t)
	writer := seedUser(t, db, "writer@example.com", "作者")
	teammate := seedUser(t, db, "mate@example.com", "队友")
	require.NoError(t, db.Create(&model.Field{Label: "WEB"}).Error)

	resp := doAuthedRequest(t, CreateProject, writer.ID, model.RoleWriter, "", CreateProjectReq{
		Name:     "智能浇花",
		TeamName: "绿手指",
		Type:     "team",
		Members:  []MemberReq{{UserID: teammate.ID, Role: "前端"}},
		Fields:   []string{"WEB"},
	})
	test.NoError(t, resp)

	// 项目、状态行、成员、领域关联同事务落库
	var project model.Project
	require.NoError(t, db.Preload("Status").Preload("Members").Preload("Fields").
		First(&project, "name = ?", "智能浇花").Error)
	require.Equal(t, writer.ID, project.WriterID)
	require.NotNil(t, project.Status)
	require.False(t, project.Status.IsPlanSubmitted)
	require.Equal(t, model.ReviewPending, project.Status.PlanReview)
	require.Len(t, project.Members, 1)
	require.Len(t, project.Fields, 1)
}

func TestCreateProjectUnknownField(t *testing.T) {
	db := setupIntake(t)
	writer := seedUser(t, db, "writer@example.com", "作者")

	resp := doAuthedRequest(t, CreateProject, writer.ID, model.RoleWriter, "", CreateProjectReq{
		Name:     "智能浇花",
		TeamName: "绿手指",
		Type:     "team",
		Fields:   []string{"不存在的领域"},
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)

	var count int64
	require.NoError(t, db.Model(&model.Project{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestSubmitReport(t *testing.T) {
	db := setupIntake(t)
	project := seedProject(t, db, "智能浇花", pendingPlanStatus())
	projectIDStr := fmt.Sprintf("%d", project.ID)

	resp := doAuthedRequest(t, SubmitReport, project.WriterID, model.RoleWriter, projectIDStr, SubmitReportReq{
		Content:  "结题总结",
		VideoURL: "https://example.com/demo.mp4",
	})
	test.NoError(t, resp)

	var status model.Status
	require.NoError(t, db.First(&status, "project_id = ?", project.ID).Error)
	require.True(t, status.IsReportSubmitted)
	require.NotNil(t, status.ReportSubmittedAt)

	// 报告仅允许提交一次
	resp = doAuthedRequest(t, SubmitReport, project.WriterID, model.RoleWriter, projectIDStr, SubmitReportReq{
		Content: "第二份",
	})
	test.ErrorEqual(t, response.ErrAlreadyExists, resp)

	// 非项目作者禁止提交，管理员放行
	stranger := seedUser(t, db, "stranger@example.com", "路人")
	resp = doAuthedRequest(t, SubmitReport, stranger.ID, model.RoleWriter, projectIDStr, SubmitReportReq{
		Content: "冒名提交",
	})
	test.ErrorEqual(t, response.ErrForbidden, resp)

	resp = doAuthedRequest(t, SubmitReport, stranger.ID, model.RoleAdmin, projectIDStr, SubmitReportReq{
		Content: "管理员代交",
	})
	// 报告已存在，管理员也只会拿到重复提交错误而不是权限错误
	test.ErrorEqual(t, response.ErrAlreadyExists, resp)
}

func TestSubmitReportUnknownProject(t *testing.T) {
	db := setupIntake(t)
	writer := seedUser(t, db, "writer@example.com", "作者")

	resp := doAuthedRequest(t, SubmitReport, writer.ID, model.RoleWriter, "99999", SubmitReportReq{
		Content: "结题总结",
	})
	test.ErrorEqual(t, response.ErrNotFound, resp)

	resp = doAuthedRequest(t, SubmitReport, writer.ID, model.RoleWriter, "abc", SubmitReportReq{
		Content: "结题总结",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}
