package cmd

import (
	"log/slog"

	"github.com/shouni/go-svgvideo-kit/internal/config"
	"github.com/shouni/go-svgvideo-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// encodeCmd は、保存済みのSVGフレームから変換と動画結合（Phase 2 & 3）を実行するサブコマンドなのだ。
// フレーム合成をスキップして、ラスタライズ設定やエンコードの再実行だけを行いたい場合に便利なのだ。
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "保存済みフレームを変換して動画に結合するのだ。",
	Long: `フレームディレクトリにあるSVG連番を読み込み、PNGへの変換と
動画への結合だけを実行するのだ。キャンバスサイズと出力先は実行構成JSONに従うのだ。`,
	RunE: encodeCommand,
}

func init() {
}

func encodeCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("エンコードモードを起動するのだ！",
		"config", opts.ConfigFile,
		"frame_dir", opts.FrameDir)

	return pipeline.ExecuteEncodeOnly(ctx, cfg)
}
