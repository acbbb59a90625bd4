package runner

import (
	"context"
	"log/slog"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/shouni/go-svgvideo-kit/internal/config"
	"github.com/shouni/go-svgvideo-kit/internal/exttool"
)

// EncodeRunner は、ビットマップ列を1本の動画へ結合するためのインターフェース。
type EncodeRunner interface {
	// Run は連番ビットマップをファイル名昇順で読み込み、動画ファイルを生成する。
	Run(ctx context.Context, framesDir string, frameRate float64, outputPath string) error
}

// FFmpegEncodeRunner は ffmpeg を1回だけ起動してH.264動画を生成する実体なのだ。
// 部分的・再開可能なエンコードはサポートしない。
type FFmpegEncodeRunner struct{}

// NewFFmpegEncodeRunner は FFmpegEncodeRunner の新しいインスタンスを生成して返す。
func NewFFmpegEncodeRunner() *FFmpegEncodeRunner {
	return &FFmpegEncodeRunner{}
}

// Run は frame_%03d.png の連番を結合して動画を生成するのだ。
// frameRate は入力のペーシングのみを制御し、出力は常に 30fps・yuv420p（広く再生可能な形式）なのだ。
func (er *FFmpegEncodeRunner) Run(ctx context.Context, framesDir string, frameRate float64, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pattern := filepath.Join(framesDir, config.BitmapFilePattern)
	slog.Info("動画エンコードを開始するのだ", "input", pattern, "frame_rate", frameRate, "output", outputPath)

	err := ffmpeg.Input(pattern, ffmpeg.KwArgs{"framerate": frameRate}).
		Output(outputPath, ffmpeg.KwArgs{
			"c:v":     "libx264",
			"r":       config.OutputFrameRate,
			"pix_fmt": "yuv420p",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return &exttool.Error{Tool: "ffmpeg", Err: err}
	}

	slog.Info("動画が完成したのだ！", "output", outputPath)
	return nil
}
