package runner

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/shouni/go-svgvideo-kit/internal/config"
	"github.com/shouni/go-svgvideo-kit/internal/exttool"
	"github.com/shouni/go-svgvideo-kit/pkg/domain"
)

// RasterRunner は、保存済みフレーム群をビットマップへ変換するためのインターフェース。
type RasterRunner interface {
	// Run は全フレームのラスタライズを実行し、インデックス順のビットマップパスを返す。
	Run(ctx context.Context, frames []domain.Frame) ([]string, error)
}

// ParallelRasterRunner は外部ラスタライザを並列に起動する実体なのだ。
// 各フレームは互いに素なファイルへ書き込むため、ワーカー間のロックは不要なのだ。
type ParallelRasterRunner struct {
	raster  exttool.Rasterizer
	width   int
	height  int
	workers int
}

// NewParallelRasterRunner は ParallelRasterRunner の新しいインスタンスを生成して返す。
func NewParallelRasterRunner(raster exttool.Rasterizer, width, height, workers int) *ParallelRasterRunner {
	if workers <= 0 {
		workers = config.DefaultRasterWorkers
	}
	return &ParallelRasterRunner{
		raster:  raster,
		width:   width,
		height:  height,
		workers: workers,
	}
}

// Run は並列処理を用いて各フレームをPNGへ変換するメインロジックなのだ。
// 最初の失敗でグループのコンテキストがキャンセルされるフェイルファスト方針を採る。
// 起動待ちのワーカーは中断され、実行中の外部プロセスは CommandContext 経由で停止される。
func (rr *ParallelRasterRunner) Run(ctx context.Context, frames []domain.Frame) ([]string, error) {
	bitmaps := make([]string, len(frames))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(rr.workers)

	// 起動直後のプロセス殺到を避けるため、一定間隔で外部ツールの起動をペーシングするのだ
	// Burst 2 により、開始直後に2件までは同時に起動できるのだ
	limiter := rate.NewLimiter(rate.Every(config.DefaultLaunchInterval), 2)
	slog.Info("並列ラスタライズを開始するのだ", "count", len(frames), "workers", rr.workers, "size", fmt.Sprintf("%dx%d", rr.width, rr.height))

	for i, frame := range frames {
		i, frame := i, frame // ゴルーチンのクロージャ対策なのだ

		eg.Go(func() error {
			// 1. 自分の起動順が来るまで待機するのだ
			if err := limiter.Wait(egCtx); err != nil {
				return err
			}

			pngPath := bitmapPath(frame.Path)
			slog.Info("フレームを変換中...", "frame", frame.ID())

			// 2. 外部ラスタライザを起動するのだ（同期・タイムアウト付き）
			if err := rr.raster.Rasterize(egCtx, frame.Path, pngPath, rr.width, rr.height); err != nil {
				slog.Error("ラスタライズに失敗したのだ", "frame", frame.ID(), "error", err)
				return fmt.Errorf("フレーム %s の変換に失敗したのだ: %w", frame.ID(), err)
			}

			bitmaps[i] = pngPath
			return nil
		})
	}

	// すべての並列処理が完了するのを待つのだ
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slog.Info("すべてのフレームが正常に変換されたのだ", "total", len(bitmaps))
	return bitmaps, nil
}

// bitmapPath はSVGパスの拡張子だけを差し替えたPNGパスを導出するのだ。
// 完了順に関係なく、インデックスとファイル名の対応は常に保たれる。
func bitmapPath(svgPath string) string {
	return strings.TrimSuffix(svgPath, filepath.Ext(svgPath)) + ".png"
}
