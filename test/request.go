package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-submission-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// DoRequest 以 JSON 请求体调用单个 handler 并解析统一响应体
func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, request any) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	requestBytes, err := json.Marshal(request)
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(requestBytes))
	c.Request.Header.Set("Content-Type", "application/json")
	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// DoGetRequest 以查询串调用单个 handler 并解析统一响应体
func DoGetRequest(t *testing.T, handlerFunc gin.HandlerFunc, rawQuery string) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	target := "/test"
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}
