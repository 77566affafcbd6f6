package project

import (
	"mime/multipart"
	"strconv"
	"time"

	"project-submission-system/internal/global/database"
	"project-submission-system/internal/global/jwt"
	"project-submission-system/internal/global/objstore"
	"project-submission-system/internal/global/response"
	"project-submission-system/internal/model"
	"project-submission-system/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// MemberReq 项目成员
type MemberReq struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role"`
}

// CreateProjectReq 定义项目报名请求的结构体
type CreateProjectReq struct {
	Name        string      `json:"name" binding:"required"`      // 项目名称
	TeamName    string      `json:"team_name" binding:"required"` // 队伍名称
	TechStack   string      `json:"tech_stack"`                   // 技术栈描述
	Type        string      `json:"type" binding:"required"`      // 项目类型标签
	TeacherName string      `json:"teacher_name"`                 // 指导教师
	RepoLink    string      `json:"repo_link"`                    // 代码仓库链接，可选
	ServiceLink string      `json:"service_link"`                 // 线上服务链接，可选
	DocsLink    string      `json:"docs_link"`                    // 文档链接，可选
	Members     []MemberReq `json:"members"`                      // 项目成员
	Fields      []string    `json:"fields"`                       // 领域标签
}

// CreateProject 处理项目报名请求。项目、状态行、成员与领域关联在同一事务内创建
func CreateProject(c *gin.Context) {
	payload, exist := jwt.GetUserPayload(c)
	if !exist {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req CreateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定项目报名请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	fieldIDs, err := fieldRepo.IDsByLabels(req.Fields)
	if err != nil {
		log.Error("解析领域标签失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if len(fieldIDs) != len(req.Fields) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("存在未知的领域标签"))
		return
	}

	project := model.Project{
		Name:        req.Name,
		TeamName:    req.TeamName,
		TechStack:   req.TechStack,
		Type:        req.Type,
		TeacherName: req.TeacherName,
		RepoLink:    req.RepoLink,
		ServiceLink: req.ServiceLink,
		DocsLink:    req.DocsLink,
		WriterID:    payload.UserID,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		// 状态行与项目同事务创建，生命周期从两条轨道均未提交开始
		if err := tx.Create(&model.Status{ProjectID: project.ID}).Error; err != nil {
			return err
		}
		for _, m := range req.Members {
			member := model.Member{ProjectID: project.ID, UserID: m.UserID, Role: m.Role}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		for _, fid := range fieldIDs {
			if err := tx.Create(&model.ProjectField{ProjectID: project.ID, FieldID: fid}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("创建项目失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("项目报名成功",
		"project_id", project.ID,
		"name", project.Name,
		"writer_id", payload.UserID)
	response.Success(c, gin.H{"project_id": project.ID})
}

// SubmitPlanReq 定义计划书提交请求（multipart form-data，PDF 可选）
type SubmitPlanReq struct {
	Goal              string                `form:"goal" binding:"required"`
	Content           string                `form:"content" binding:"required"`
	StartDate         string                `form:"start_date"`
	EndDate           string                `form:"end_date"`
	IncludeResultPage bool                  `form:"include_result_page"`
	IncludeCode       bool                  `form:"include_code"`
	IncludeOutcome    bool                  `form:"include_outcome"`
	IncludeOthers     bool                  `form:"include_others"`
	OthersDescription string                `form:"others_description"`
	Pdf               *multipart.FileHeader `form:"pdf" binding:"omitempty"`
}

// SubmitPlan 提交计划书：每个项目仅允许一次，提交时间戳进入状态行
func SubmitPlan(c *gin.Context) {
	projectID, project, ok := ownedProject(c)
	if !ok {
		return
	}

	var req SubmitPlanReq
	if err := c.ShouldBind(&req); err != nil {
		log.Error("绑定计划书提交请求失败", "error", err, "project_id", projectID)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if project.Plan != nil {
		response.Fail(c, response.ErrAlreadyExists.WithTips("计划书已提交"))
		return
	}

	pdfURL := ""
	if req.Pdf != nil {
		if objstore.Default == nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("对象存储未启用，无法上传 PDF"))
			return
		}
		url, err := objstore.Default.Upload(c.Request.Context(), req.Pdf, "application/pdf")
		if err != nil {
			log.Error("上传计划书 PDF 失败", "error", err, "project_id", projectID)
			response.Fail(c, response.ErrServer.WithOrigin(err))
			return
		}
		pdfURL = url
	}

	plan := model.Plan{
		ProjectID:         projectID,
		Goal:              req.Goal,
		Content:           req.Content,
		PdfURL:            pdfURL,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		IncludeResultPage: req.IncludeResultPage,
		IncludeCode:       req.IncludeCode,
		IncludeOutcome:    req.IncludeOutcome,
		IncludeOthers:     req.IncludeOthers,
		OthersDescription: req.OthersDescription,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}
		return repository.SubmitTrack(tx, projectID, model.TrackPlan, time.Now())
	})
	if err != nil {
		log.Error("提交计划书失败", "error", err, "project_id", projectID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("计划书提交成功", "project_id", projectID)
	response.Success(c, plan)
}

// SubmitReportReq 定义结题报告提交请求的结构体
type SubmitReportReq struct {
	VideoURL string `json:"video_url"`
	Content  string `json:"content" binding:"required"`
}

// SubmitReport 提交结题报告：每个项目仅允许一次
func SubmitReport(c *gin.Context) {
	projectID, project, ok := ownedProject(c)
	if !ok {
		return
	}

	var req SubmitReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定结题报告提交请求失败", "error", err, "project_id", projectID)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if project.Report != nil {
		response.Fail(c, response.ErrAlreadyExists.WithTips("结题报告已提交"))
		return
	}

	report := model.Report{
		ProjectID: projectID,
		VideoURL:  req.VideoURL,
		Content:   req.Content,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return err
		}
		return repository.SubmitTrack(tx, projectID, model.TrackReport, time.Now())
	})
	if err != nil {
		log.Error("提交结题报告失败", "error", err, "project_id", projectID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("结题报告提交成功", "project_id", projectID)
	response.Success(c, report)
}

// ownedProject 解析路径中的项目ID并校验当前用户是项目提交者（管理员放行）
func ownedProject(c *gin.Context) (uint, *model.Project, bool) {
	payload, exist := jwt.GetUserPayload(c)
	if !exist {
		response.Fail(c, response.ErrUnauthorized)
		return 0, nil, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("项目ID格式错误"))
		return 0, nil, false
	}

	project, err := projectRepo.FindDetail(uint(id), repository.RelPlan, repository.RelReport)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrNotFound.WithTips("项目不存在"))
		return 0, nil, false
	}
	if err != nil {
		log.Error("查询项目失败", "error", err, "project_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return 0, nil, false
	}

	if project.WriterID != payload.UserID && payload.RoleID < model.RoleAdmin {
		response.Fail(c, response.ErrForbidden)
		return 0, nil, false
	}
	return uint(id), project, true
}
