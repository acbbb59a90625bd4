package domain

// Kind はエージェントの能力種別（ケイパビリティ）を表すタグなのだ。
// ディスパッチは名前の文字列比較ではなく、このタグに対して行う。
type Kind string

const (
	KindNarrative Kind = "narrative-enhancement"
	KindColor     Kind = "color-assignment"
	KindMotion    Kind = "motion-assignment"
	KindUnknown   Kind = "unknown"
)

// kindByName は従来の固定エージェント名と能力種別の対応表です。
// kind フィールドを持たない既存の agents.json を読めるようにするためのものなのだ。
var kindByName = map[string]Kind{
	"SceneInspireAgent": KindNarrative,
	"ColorAuraAgent":    KindColor,
	"MotionMoodAgent":   KindMotion,
}

// AgentDefinition は agents.json の1エントリ（名前とロジック表）を保持します。
type AgentDefinition struct {
	Name  string     `json:"name"`
	Kind  Kind       `json:"kind,omitempty"`
	Logic AgentLogic `json:"logic"`
}

// AgentLogic はエージェントが参照するルックアップ表の集合です。
// 未知のキーはデコード時に黙って無視されます。
type AgentLogic struct {
	ColorMapping        map[string]string  `json:"color_mapping,omitempty"`
	EmotionMappedMotion map[string]string  `json:"emotion_mapped_motion,omitempty"`
	PulseRates          map[string]float64 `json:"pulse_rates,omitempty"`
}

// ResolveKind は明示的な kind 指定を優先し、なければ既知のエージェント名から種別を導出するのだ。
// どちらでも特定できない場合は KindUnknown を返す。
func (d AgentDefinition) ResolveKind() Kind {
	if d.Kind != "" {
		return d.Kind
	}
	if k, ok := kindByName[d.Name]; ok {
		return k
	}
	return KindUnknown
}
