package core

import "errors"

// DomainError 是领域层的统一错误类型，按 Module + Code 区分。
//
//   - store：NOT_FOUND
//   - repository：NOT_FOUND（求职者/职位不存在）、UNAVAILABLE
//   - model：UNAVAILABLE、INVALID_INPUT（产物缺失、特征顺序不符）、INTERNAL_ERROR（输出异常）
//
// 调用方应使用 errors.Is 或 IsXXX 判断，而不是比较 Message。
type DomainError struct {
	Module  string
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError 创建领域错误。
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{Module: module, Code: code, Message: message}
}

// GetDomainError 沿 %w 包装链取出 DomainError，没有则返回 nil。
func GetDomainError(err error) *DomainError {
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}
	return nil
}

const (
	ErrorCodeNotFound      = "NOT_FOUND"
	ErrorCodeUnavailable   = "UNAVAILABLE"
	ErrorCodeInvalidInput  = "INVALID_INPUT"
	ErrorCodeInternalError = "INTERNAL_ERROR"
)

const (
	ModuleStore      = "store"
	ModuleRepository = "repository"
	ModuleModel      = "model"
	ModuleFeature    = "feature"
)

func hasCode(err error, code string) bool {
	de := GetDomainError(err)
	return de != nil && de.Code == code
}

// IsNotFound 资源不存在。
func IsNotFound(err error) bool { return hasCode(err, ErrorCodeNotFound) }

// IsUnavailable 依赖服务（Redis、Postgres、模型服务）不可用。
func IsUnavailable(err error) bool { return hasCode(err, ErrorCodeUnavailable) }

// IsInvalidInput 输入不合法。
func IsInvalidInput(err error) bool { return hasCode(err, ErrorCodeInvalidInput) }

// IsInternalError 内部错误，如模型输出数量或取值异常。
func IsInternalError(err error) bool { return hasCode(err, ErrorCodeInternalError) }
