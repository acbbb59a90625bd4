package config

import (
	"errors"
	"fmt"
)

// ErrNotFound は参照されたファイルが存在しないことを示すセンチネルエラーなのだ。
var ErrNotFound = errors.New("ファイルが見つからない")

// MalformedInputError は構造化データとしてパースできない入力を表します。
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("'%s' のJSONパースに失敗したのだ: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// MissingFieldError は必須フィールドの欠落を表します。
// 最初に見つかった1件のみを報告するのだ。
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("設定に必須フィールド '%s' がないのだ", e.Field)
}
