package agent

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/shouni/go-svgvideo-kit/pkg/domain"
)

const (
	defaultCacheExpiration = 10 * time.Minute
	cacheCleanupInterval   = 15 * time.Minute
)

// エージェントロジックの固定値なのだ。
const (
	narrativeSuffix  = " (Enhanced with metaphors)"
	defaultMood      = "hope"
	unmappedColor    = "#ffffff" // 表に載っていないムードのフォールバック色
	defaultAccent    = "#000000"
	defaultStyle     = "default"
	defaultPulseRate = 1.5
	defaultCurve     = "sine-wave"
)

// Executor はエージェント1体を入力バッグに対して実行する実行器なのだ。
// エージェントは決定論的なので、同じ入力に対する出力はキャッシュして再利用するのだよ。
type Executor struct {
	results *cache.Cache
}

// NewExecutor は結果キャッシュ付きの Executor を生成して返すのだ。
func NewExecutor() *Executor {
	return &Executor{
		results: cache.New(defaultCacheExpiration, cacheCleanupInterval),
	}
}

// Execute は定義の能力種別に応じてエージェントを実行し、出力バッグを返すのだ。
// 未知の種別は警告ログを出して空のバッグを返す（決して致命的にしない）。
func (e *Executor) Execute(def domain.AgentDefinition, inputs domain.Attributes) (domain.Attributes, error) {
	kind := def.ResolveKind()

	key := cacheKey(def.Name, kind, inputs)
	if cached, found := e.results.Get(key); found {
		return cached.(domain.Attributes).Clone(), nil
	}

	var outputs domain.Attributes
	switch kind {
	case domain.KindNarrative:
		outputs = executeNarrative(inputs)
	case domain.KindColor:
		outputs = executeColor(def, inputs)
	case domain.KindMotion:
		outputs = executeMotion(def, inputs)
	default:
		slog.Warn("未知のエージェント種別なのだ。空の出力を返す", "agent", def.Name, "kind", string(kind))
		outputs = domain.Attributes{}
	}

	e.results.Set(key, outputs.Clone(), cache.DefaultExpiration)
	return outputs, nil
}

// executeNarrative は raw_prompt を決定論的に膨らませた inspired_prompt を返すのだ。
// 出力は必ず入力を含み、かつ入力と異なる文字列になる。
func executeNarrative(inputs domain.Attributes) domain.Attributes {
	raw := inputs.String(domain.AttrRawPrompt, "")
	if raw == "" {
		return domain.Attributes{}
	}
	return domain.Attributes{
		domain.AttrInspiredPrompt: raw + narrativeSuffix,
	}
}

// executeColor はプロンプトからムードを決定し、配色の組を返すのだ。
// ムード判定は color_mapping のキーをソートした順でプロンプト内を走査する決定論的な手続きで、
// どのキーにも一致しなければ既定のムード "hope" に落ちる。
func executeColor(def domain.AgentDefinition, inputs domain.Attributes) domain.Attributes {
	prompt := strings.ToLower(inputs.String(domain.AttrPrompt, ""))

	keys := make([]string, 0, len(def.Logic.ColorMapping))
	for k := range def.Logic.ColorMapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mood := defaultMood
	for _, k := range keys {
		if strings.Contains(prompt, strings.ToLower(k)) {
			mood = k
			break
		}
	}

	// ムードが表に載っていなくても決して失敗せず、固定のフォールバック色に落ちるのだ
	background := unmappedColor
	if c, ok := def.Logic.ColorMapping[mood]; ok {
		background = c
	}

	return domain.Attributes{
		domain.AttrBackgroundColor: background,
		domain.AttrAccentColor:     defaultAccent,
		domain.AttrMoodProfile:     mood,
	}
}

// executeMotion は emotion_tone からアニメーション様式と脈動パラメータを引くのだ。
// 表にないトーンはリテラル "default" の様式に落ち、pulse_rate は常に正の値になる。
func executeMotion(def domain.AgentDefinition, inputs domain.Attributes) domain.Attributes {
	tone := inputs.String(domain.AttrEmotionTone, "awe")

	style := defaultStyle
	if s, ok := def.Logic.EmotionMappedMotion[tone]; ok {
		style = s
	}

	pulse := defaultPulseRate
	if p, ok := def.Logic.PulseRates[tone]; ok && p > 0 {
		pulse = p
	}

	return domain.Attributes{
		domain.AttrAnimationStyle: style,
		domain.AttrPulseRate:      pulse,
		domain.AttrMotionCurve:    defaultCurve,
	}
}

// cacheKey は名前・種別と入力バッグから安定したキャッシュキーを組み立てるのだ。
// キーの列挙順をソートして、マップの走査順に依存しないようにする。
func cacheKey(name string, kind domain.Kind, inputs domain.Attributes) string {
	keys := make([]string, 0, len(inputs))
	for k := range inputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('|')
	sb.WriteString(string(kind))
	for _, k := range keys {
		fmt.Fprintf(&sb, "|%s=%v", k, inputs[k])
	}
	return sb.String()
}
