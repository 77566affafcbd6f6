package field

import (
	"testing"

	"project-submission-system/internal/global/logger"
	"project-submission-system/internal/global/response"
	"project-submission-system/internal/repository"
	"project-submission-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log = logger.New("Field")
	fieldRepo = repository.NewFieldRepository(test.NewDB(t))
}

func TestCreateAndListFields(t *testing.T) {
	setup(t)

	for _, label := range []string{"WEB", "APP"} {
		resp := test.DoRequest(t, CreateField, CreateFieldReq{Label: label})
		test.NoError(t, resp)
	}

	resp := test.DoGetRequest(t, ListFields, "")
	test.NoError(t, resp)
	fields, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, fields, 2)

	// 标签唯一，重复创建失败
	resp = test.DoRequest(t, CreateField, CreateFieldReq{Label: "WEB"})
	test.ErrorEqual(t, response.ErrDatabase, resp)

	resp = test.DoRequest(t, CreateField, CreateFieldReq{})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}
