package cmd

import (
	"log/slog"

	"github.com/shouni/go-svgvideo-kit/internal/config"
	"github.com/shouni/go-svgvideo-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// framesCmd は、SVGフレームの合成と保存（Phase 1）だけを実行するサブコマンドなのだ。
// 外部ツールを起動しないので、テンプレートや配色の調整を素早く確認できるのだ。
var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "SVGフレームだけを合成して保存するのだ。",
	Long: `ラスタライズと動画結合をスキップして、SVGフレームの生成だけを行うのだ。
エージェントの出力やテンプレートの見た目を確認・調整したい場合に便利なのだ。`,
	RunE: framesCommand,
}

func init() {
}

func framesCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("フレーム生成モードを起動するのだ！",
		"config", opts.ConfigFile,
		"agents", opts.AgentsFile,
		"frame_dir", opts.FrameDir)

	return pipeline.ExecuteFramesOnly(ctx, cfg)
}
