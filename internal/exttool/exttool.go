package exttool

import (
	"context"
	"fmt"
)

// Error は外部ツールが失敗ステータスを返したことを表す型付きエラーなのだ。
// 診断のために標準エラー出力を保持する。
type Error struct {
	Tool   string
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("外部ツール %s の実行に失敗したのだ: %v: %s", e.Tool, e.Err, e.Stderr)
	}
	return fmt.Sprintf("外部ツール %s の実行に失敗したのだ: %v", e.Tool, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Rasterizer はベクターフレームをビットマップへ変換する外部コラボレータの契約です。
// 呼び出しは同期的なファイル入出力（入力パス → 出力パス）で、終了ステータスで成否を表します。
type Rasterizer interface {
	Rasterize(ctx context.Context, svgPath, pngPath string, width, height int) error
}
