package model

import "errors"

// センチネルエラー - 不正な入力パラメータ
var (
	ErrUnknownMetric = errors.New("unknown metric")
)

// ValidationError はバリデーションエラーを表す型
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError はValidationErrorを生成するヘルパー関数
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
