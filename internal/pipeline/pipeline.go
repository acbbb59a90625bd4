package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shouni/go-svgvideo-kit/internal/builder"
	"github.com/shouni/go-svgvideo-kit/internal/config"
	"github.com/shouni/go-svgvideo-kit/pkg/agent"
	"github.com/shouni/go-svgvideo-kit/pkg/domain"
	"github.com/shouni/go-svgvideo-kit/pkg/store"
)

// ErrNoFrames は、処理対象のフレームが1枚もないことを示すのだ。
// prompts が空の実行はクラッシュせずここまで到達し、ゼロ件のエンコードを
// 黙って試みる代わりにこの型付きエラーで明示的に完了する。
var ErrNoFrames = errors.New("生成対象のフレームが0件なのだ（prompts が空）")

// Execute は 解決 → 合成 → 保存 → 変換 → 結合 の全フェーズを実行するのだ。
func Execute(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(cfg)
	if err != nil {
		return err
	}

	// --- Phase 1: Frame Phase (属性解決とSVG合成) ---
	frames, err := runFrameStep(ctx, appCtx)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		slog.Warn("prompts が空なのでラスタライズとエンコードは行わないのだ")
		return ErrNoFrames
	}

	// --- Phase 2: Raster Phase (ビットマップ変換) ---
	if _, err := runRasterStep(ctx, appCtx, frames); err != nil {
		return err
	}

	// --- Phase 3: Encode Phase (動画結合) ---
	return runEncodeStep(ctx, appCtx)
}

// ExecuteFramesOnly は SVGフレームの合成と保存（Phase 1）だけを実行するのだ。
// ラスタライズやエンコードのコストをかけずにフレームを確認・調整したい場合に便利なのだ。
func ExecuteFramesOnly(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(cfg)
	if err != nil {
		return err
	}

	frames, err := runFrameStep(ctx, appCtx)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		slog.Warn("prompts が空なので何も生成されなかったのだ")
		return ErrNoFrames
	}

	slog.Info("SVGフレームの生成が完了したのだ！", "total", len(frames), "dir", appCtx.Options.FrameDir)
	return nil
}

// ExecuteEncodeOnly は、保存済みのSVGフレームを読み込んで
// 変換と動画結合（Phase 2 & 3）のみを実行する再開ステージなのだ。
func ExecuteEncodeOnly(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(cfg)
	if err != nil {
		return err
	}

	st := store.NewFrameStore(appCtx.Options.FrameDir)
	paths, err := st.ListFrames()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		slog.Warn("フレームディレクトリにSVGが見つからないのだ", "dir", appCtx.Options.FrameDir)
		return ErrNoFrames
	}

	// ファイル名はゼロ埋め連番なので、昇順の並びがそのままインデックス順になるのだ
	frames := make([]domain.Frame, len(paths))
	for i, p := range paths {
		frames[i] = domain.Frame{Index: i, Path: p}
	}

	if _, err := runRasterStep(ctx, appCtx, frames); err != nil {
		return err
	}
	return runEncodeStep(ctx, appCtx)
}

// setupAppContext は、実行構成とエージェント定義をロードして
// アプリケーションコンテキストを初期化して返すのだ。
// ローダーの失敗は即時中断であり、部分的な実行は開始しない。
func setupAppContext(cfg *config.Config) (*builder.AppContext, error) {
	sc, err := config.LoadScenario(cfg.Options.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("実行構成のロードに失敗したのだ: %w", err)
	}

	defs, err := config.LoadAgentDefinitions(cfg.Options.AgentsFile)
	if err != nil {
		return nil, fmt.Errorf("エージェント定義のロードに失敗したのだ: %w", err)
	}

	registry := agent.NewRegistry(defs)
	slog.Info("エージェントレジストリを構築したのだ", "agents", registry.Len(), "prompts", sc.FrameCount())

	appCtx := builder.NewAppContext(cfg, *sc, registry)
	return &appCtx, nil
}

// runFrameStep は FrameRunner を使ってSVGフレームを逐次生成するのだ
func runFrameStep(ctx context.Context, appCtx *builder.AppContext) ([]domain.Frame, error) {
	slog.Info("Phase 1: SVGフレーム生成を開始するのだ...", "prompts", appCtx.Scenario.FrameCount())
	frameRunner := builder.BuildFrameRunner(appCtx)

	frames, err := frameRunner.Run(ctx, appCtx.Scenario)
	if err != nil {
		return nil, fmt.Errorf("SVGフレーム生成に失敗したのだ: %w", err)
	}
	return frames, nil
}

// runRasterStep は RasterRunner を使ってフレームを並列変換するのだ
func runRasterStep(ctx context.Context, appCtx *builder.AppContext, frames []domain.Frame) ([]string, error) {
	slog.Info("Phase 2: ラスタライズを開始するのだ...", "frames", len(frames))
	rasterRunner := builder.BuildRasterRunner(appCtx)

	bitmaps, err := rasterRunner.Run(ctx, frames)
	if err != nil {
		return nil, fmt.Errorf("ラスタライズに失敗したのだ: %w", err)
	}
	return bitmaps, nil
}

// runEncodeStep は EncodeRunner を使ってビットマップ列を動画へ結合するのだ
func runEncodeStep(ctx context.Context, appCtx *builder.AppContext) error {
	slog.Info("Phase 3: 動画結合を開始するのだ...")
	encodeRunner := builder.BuildEncodeRunner(appCtx)

	err := encodeRunner.Run(ctx, appCtx.Options.FrameDir, appCtx.Scenario.FrameRate, appCtx.Scenario.OutputVideo)
	if err != nil {
		return fmt.Errorf("動画結合に失敗したのだ: %w", err)
	}
	return nil
}
