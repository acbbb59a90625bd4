package builder

import (
	"github.com/shouni/go-svgvideo-kit/internal/exttool"
	"github.com/shouni/go-svgvideo-kit/internal/runner"
	"github.com/shouni/go-svgvideo-kit/pkg/resolver"
	"github.com/shouni/go-svgvideo-kit/pkg/store"
	"github.com/shouni/go-svgvideo-kit/pkg/svg"
)

// BuildFrameRunner は属性解決とSVG合成を担当する Runner を構築します。
func BuildFrameRunner(appCtx *AppContext) runner.FrameRunner {
	res := resolver.New(appCtx.Registry, appCtx.Executor)
	syn := svg.NewSynthesizer(appCtx.Scenario.Width, appCtx.Scenario.Height)
	st := store.NewFrameStore(appCtx.Options.FrameDir)

	return runner.NewSVGFrameRunner(res, syn, st)
}

// BuildRasterRunner は外部ラスタライザの並列起動を担当する Runner を構築します。
// コマンド名はフラグ指定を優先し、なければ環境設定（RASTERIZER_BIN）に従うのだ。
func BuildRasterRunner(appCtx *AppContext) runner.RasterRunner {
	bin := appCtx.Options.RasterizerBin
	if bin == "" {
		bin = appCtx.Config.RasterizerBin
	}

	ink := exttool.NewInkscapeRasterizer(bin, appCtx.Options.ToolTimeout)
	return runner.NewParallelRasterRunner(ink, appCtx.Scenario.Width, appCtx.Scenario.Height, appCtx.Options.RasterWorkers)
}

// BuildEncodeRunner は動画結合を担当する Runner を構築します。
func BuildEncodeRunner(appCtx *AppContext) runner.EncodeRunner {
	return runner.NewFFmpegEncodeRunner()
}
