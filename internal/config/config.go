package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultConfigFile     = "examples/ai_svg_prompts.json"
	DefaultAgentsFile     = "examples/agents.json"
	DefaultFrameDir       = "output/svg_frames"
	DefaultRasterizerBin  = "inkscape"
	DefaultToolTimeout    = 60 * time.Second
	DefaultRasterWorkers  = 4
	DefaultLaunchInterval = 200 * time.Millisecond // 外部ツールの起動ペーシング間隔
	DefaultFrameRate      = 1.0                    // frame_rate 未指定時の入力ペース

	// OutputFrameRate は出力動画のフレームレートなのだ。入力のペース（frame_rate）とは独立している。
	OutputFrameRate = 30

	// BitmapFilePattern は ffmpeg に渡す連番ビットマップのパターンなのだ。
	BitmapFilePattern = "frame_%03d.png"
)

// Config はアプリケーション全体の環境設定を保持する構造体なのだ。
type Config struct {
	RasterizerBin string // ベクター→ビットマップ変換に使う外部コマンド
	LogFile       string // 追記専用のログファイル（空なら標準エラーのみ）

	Options RenderOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	return &Config{
		RasterizerBin: envutil.GetEnv("RASTERIZER_BIN", DefaultRasterizerBin),
		LogFile:       envutil.GetEnv("PIPELINE_LOG", ""),
	}
}

// RenderOptions は CLI フラグから渡される実行時のパラメータなのだ。
type RenderOptions struct {
	// ソース入力関連
	ConfigFile string // --config
	AgentsFile string // --agents

	// 生成結果の出力設定
	FrameDir string // --frame-dir

	// 外部ツール・実行制御
	RasterizerBin string        // --rasterizer（空なら環境変数 RASTERIZER_BIN に従う）
	RasterWorkers int           // --raster-workers
	ToolTimeout   time.Duration // --tool-timeout
}
