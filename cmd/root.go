package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shouni/go-svgvideo-kit/internal/config"

	"github.com/spf13/cobra"
)

// opts は全サブコマンドで共有される実行時オプションなのだ。
var opts config.RenderOptions

// rootCmd はアプリケーションのトップレベルコマンドなのだ。
var rootCmd = &cobra.Command{
	Use:   "ap-svgvideo-go",
	Short: "プロンプト列からSVGアニメ動画を生成するパイプラインなのだ。",
	Long: `テキストプロンプトの列をエージェント（物語・配色・モーション）で膨らませ、
SVGフレームを合成し、ラスタライズと動画結合まで一気通貫で行うのだ。`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(config.LoadConfig().LogFile)
	},
}

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", config.DefaultConfigFile, "実行構成JSON（prompts, width, height, output_video）のパスなのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.AgentsFile, "agents", "a", config.DefaultAgentsFile, "エージェント定義JSONのパスなのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.FrameDir, "frame-dir", "o", config.DefaultFrameDir, "SVGフレームとPNGを保存するディレクトリなのだ。")

	// --- 外部ツール・実行制御 ---
	rootCmd.PersistentFlags().StringVar(&opts.RasterizerBin, "rasterizer", "", "ベクター→ビットマップ変換に使うコマンド名（既定は環境変数 RASTERIZER_BIN か inkscape）なのだ。")
	rootCmd.PersistentFlags().IntVarP(&opts.RasterWorkers, "raster-workers", "w", config.DefaultRasterWorkers, "並列ラスタライズのワーカー数なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.ToolTimeout, "tool-timeout", config.DefaultToolTimeout, "外部ツール1回あたりのタイムアウトなのだ。")
}

// setupLogger は slog の出力先を構成するのだ。
// PIPELINE_LOG が設定されていれば、追記専用のファイルにも同じレコードを書き込む。
func setupLogger(logFile string) {
	w := io.Writer(os.Stderr)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ログファイル '%s' を開けなかったのだ: %v\n", logFile, err)
		} else {
			w = io.MultiWriter(os.Stderr, f)
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, nil)))
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
// 中断シグナルはコンテキストのキャンセルとして全フェーズに伝播する。
func Execute() {
	addAppFlags(rootCmd)
	rootCmd.AddCommand(
		renderCmd,
		framesCmd,
		encodeCmd,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
