package domain

// 属性バッグで使うキーの定義なのだ。
const (
	AttrRawPrompt       = "raw_prompt"
	AttrFrameIndex      = "frame_index"
	AttrInspiredPrompt  = "inspired_prompt"
	AttrPrompt          = "prompt"
	AttrEnhancedPrompt  = "enhanced_prompt"
	AttrEmotionTone     = "emotion_tone"
	AttrBackgroundColor = "background_color"
	AttrAccentColor     = "accent_color"
	AttrMoodProfile     = "mood_profile"
	AttrAnimationStyle  = "animation_style"
	AttrPulseRate       = "pulse_rate"
	AttrMotionCurve     = "motion_curve"
)

// ステージが何も解決しなかった場合に適用されるデフォルト値なのだ。
const (
	DefaultBackgroundColor = "#f0f2f5"
	DefaultAccentColor     = "#333"
	DefaultMoodProfile     = "neutral"
	DefaultPulseRate       = 1.0
)

// Attributes はフレームごとの解決済み属性を蓄積する一時的なバッグなのだ。
// フレーム合成が終わった時点で役目を終え、フレームをまたいで共有されることはない。
type Attributes map[string]any

// String はキーに対応する文字列値を返すのだ。未設定・型違い・空文字列の場合は fallback を返す。
func (a Attributes) String(key, fallback string) string {
	if v, ok := a[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// Float はキーに対応する数値を返すのだ。JSON経由のfloat64とGoコード上のintの両方を受け付ける。
func (a Attributes) Float(key string, fallback float64) float64 {
	switch v := a[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return fallback
}

// Merge は other のキーをすべて取り込むのだ。既存のキーは上書きされる。
func (a Attributes) Merge(other Attributes) {
	for k, v := range other {
		a[k] = v
	}
}

// Clone はバッグの浅いコピーを返すのだ。キャッシュした結果を呼び出し元に汚染されないために使う。
func (a Attributes) Clone() Attributes {
	copied := make(Attributes, len(a))
	for k, v := range a {
		copied[k] = v
	}
	return copied
}
