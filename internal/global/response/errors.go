package response

// 业务错误码表。HTTP 层统一返回 200，错误语义由 code 表达：
// 4xxxx 调用方错误，5xxxx 服务端/依赖错误
var (
	ErrInvalidRequest  = newError(40001, "请求参数错误")
	ErrUnauthorized    = newError(40101, "未授权的访问")
	ErrTokenInvalid    = newError(40102, "登录凭证无效或已过期")
	ErrInvalidPassword = newError(40103, "密码错误")
	ErrForbidden       = newError(40301, "没有操作权限")
	ErrNotFound        = newError(40401, "资源不存在")
	ErrAlreadyExists   = newError(40901, "资源已存在")
	// ErrConflict 状态机前置条件不满足：文档未提交，或审核已达终态
	ErrConflict = newError(40902, "审核状态冲突")
	ErrServer   = newError(50000, "服务器内部错误")
	ErrDatabase = newError(50001, "数据库操作失败")
	// ErrMailSend 审核结果已落库但通知发送失败，需要人工补发，不回滚审核
	ErrMailSend = newError(50201, "审核已生效，但通知邮件发送失败")
)
