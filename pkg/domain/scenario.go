package domain

// Scenario は1回のレンダリング実行を定義する実行構成です。
// JSON設定ファイルから一度だけロードされ、パイプライン開始後は不変として扱います。
type Scenario struct {
	Prompts     []string `json:"prompts"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	FrameRate   float64  `json:"frame_rate"`
	OutputVideo string   `json:"output_video"`
}

// FrameCount は生成されるフレーム数（= プロンプト数）を返すのだ。
func (s Scenario) FrameCount() int {
	return len(s.Prompts)
}
