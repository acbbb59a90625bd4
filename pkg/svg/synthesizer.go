package svg

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/shouni/go-svgvideo-kit/pkg/domain"
)

//go:embed frame.svg.tmpl
var frameTemplate string

// frameTmpl は起動時に一度だけパースされる固定スキーマのテンプレートなのだ。
var frameTmpl = template.Must(template.New("frame").Parse(frameTemplate))

const (
	baseRadius         = 20
	radiusSwing        = 10
	circleBottomMargin = 60
)

// xmlEscaper は任意のプロンプト文字列をSVGに安全に埋め込むための置換器なのだ。
// エスケープなしの埋め込みは整形不良やマークアップ注入の原因になるため、全ての可変値に適用する。
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Synthesizer は解決済み属性バッグから固定テンプレートのSVG文書を合成するのだ。
// width/height は Configuration Loader の契約（正の整数）を信頼し、ここでは検証しない。
type Synthesizer struct {
	width  int
	height int
}

// NewSynthesizer は指定されたキャンバスサイズの Synthesizer を生成して返すのだ。
func NewSynthesizer(width, height int) *Synthesizer {
	return &Synthesizer{width: width, height: height}
}

// frameData はテンプレートに流し込む値の集合です。文字列値はすべてエスケープ済みです。
type frameData struct {
	Width           int
	Height          int
	SceneNumber     int
	Prompt          string
	BackgroundColor string
	AccentColor     string
	CenterX         int
	BaselineY       int
	BaseRadius      int
	RadiusValues    string
	PulseDur        string
}

// Synthesize は1フレーム分のSVG文書を合成して返すのだ。
// 画面下部の円は半径 20〜30 を pulse_rate 秒周期で無限に脈動する。
func (s *Synthesizer) Synthesize(index int, attrs domain.Attributes) (domain.Frame, error) {
	pulse := attrs.Float(domain.AttrPulseRate, domain.DefaultPulseRate)

	data := frameData{
		Width:           s.width,
		Height:          s.height,
		SceneNumber:     index + 1,
		Prompt:          xmlEscaper.Replace(attrs.String(domain.AttrEnhancedPrompt, "")),
		BackgroundColor: xmlEscaper.Replace(attrs.String(domain.AttrBackgroundColor, domain.DefaultBackgroundColor)),
		AccentColor:     xmlEscaper.Replace(attrs.String(domain.AttrAccentColor, domain.DefaultAccentColor)),
		CenterX:         s.width / 2,
		BaselineY:       s.height - circleBottomMargin,
		BaseRadius:      baseRadius,
		RadiusValues:    fmt.Sprintf("%d;%d;%d", baseRadius, baseRadius+radiusSwing, baseRadius),
		PulseDur:        strconv.FormatFloat(pulse, 'g', -1, 64),
	}

	var sb strings.Builder
	if err := frameTmpl.Execute(&sb, data); err != nil {
		return domain.Frame{}, fmt.Errorf("フレーム %d のテンプレート展開に失敗したのだ: %w", index, err)
	}

	return domain.Frame{Index: index, Document: sb.String()}, nil
}
