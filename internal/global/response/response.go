package response

import (
	"fmt"
	"net/http"

	"project-submission-system/config"
	"project-submission-system/internal/global/sentry"

	"github.com/gin-gonic/gin"
)

// ResponseBody 统一响应体
type ResponseBody struct {
	Code   int32       `json:"code"`
	Msg    string      `json:"msg"`
	Data   interface{} `json:"data,omitempty"`
	Origin string      `json:"origin,omitempty"`
}

// Success 返回成功响应，data 至多一个
func Success(c *gin.Context, data ...interface{}) {
	body := ResponseBody{
		Code: 200,
		Msg:  "ok",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应。非 *Error 的错误统一包装为服务器内部错误
func Fail(c *gin.Context, err error) {
	e, ok := err.(*Error)
	if !ok {
		e = ErrServer.WithOrigin(err)
	}

	body := ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
	}
	// 原始错误只在 debug 模式下暴露给前端
	if config.Get().Mode == config.ModeDebug {
		body.Origin = e.Origin
	}

	c.Set(ErrorContextKey, e)
	// 服务端错误上报 Sentry，业务错误不上报
	sentry.CaptureException(c, e)

	c.JSON(http.StatusOK, body)
}

// Recovery 捕获 handler panic，统一转换为服务器内部错误响应
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		Fail(c, ErrServer.WithOrigin(err))
		c.Abort()
	}
}
