package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-svgvideo-kit/internal/config"
	"github.com/shouni/go-svgvideo-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// renderCmd は、全フェーズ（解決・合成・変換・結合）を一括実行するのだ。
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "プロンプト列から動画を一括生成するのだ。",
	Long: `実行構成とエージェント定義を読み込み、SVGフレームの合成、
PNGへの変換、動画への結合までを一気通貫で実行するのだ。`,
	RunE: renderCommand,
}

func init() {
}

func renderCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 環境変数から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("動画生成パイプラインを起動するのだ！",
		"config", opts.ConfigFile,
		"agents", opts.AgentsFile,
		"frame_dir", opts.FrameDir)

	// 2. 更新した config を考慮しつつパイプラインを実行するのだ
	if err := pipeline.Execute(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}
