package exttool

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// InkscapeRasterizer は Inkscape CLI を同期的に起動する標準実装なのだ。
// シェル文字列の組み立ては行わず、argv を明示的に構築する。
// 各起動には無限ハング防止のタイムアウトがかかる。
type InkscapeRasterizer struct {
	bin     string
	timeout time.Duration
}

// NewInkscapeRasterizer は指定コマンド・タイムアウトのラスタライザを生成して返すのだ。
func NewInkscapeRasterizer(bin string, timeout time.Duration) *InkscapeRasterizer {
	if bin == "" {
		bin = "inkscape"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &InkscapeRasterizer{bin: bin, timeout: timeout}
}

// Rasterize はSVGファイルを指定サイズのPNGへ変換するのだ。
// 終了ステータスが非ゼロの場合は標準エラー出力を添えた Error を返す。
func (r *InkscapeRasterizer) Rasterize(ctx context.Context, svgPath, pngPath string, width, height int) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.bin, buildExportArgs(svgPath, pngPath, width, height)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &Error{
			Tool:   r.bin,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return nil
}

// buildExportArgs は Inkscape のエクスポート引数ベクタを組み立てるのだ。
func buildExportArgs(svgPath, pngPath string, width, height int) []string {
	return []string{
		svgPath,
		"--export-filename=" + pngPath,
		fmt.Sprintf("--export-width=%d", width),
		fmt.Sprintf("--export-height=%d", height),
	}
}
