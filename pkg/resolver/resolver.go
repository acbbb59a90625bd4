package resolver

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-svgvideo-kit/pkg/agent"
	"github.com/shouni/go-svgvideo-kit/pkg/domain"
)

// Resolver は1プロンプト分の属性バッグを固定順のステージ連鎖で解決するのだ。
// 各フレームの解決は互いに独立しており、フレーム間に状態を持たない。
// この独立性が、後段で安全に並列ラスタライズできることの根拠なのだよ。
type Resolver struct {
	registry *agent.Registry
	executor *agent.Executor
}

// New は Resolver を生成して返すのだ。
func New(registry *agent.Registry, executor *agent.Executor) *Resolver {
	return &Resolver{
		registry: registry,
		executor: executor,
	}
}

// Resolve は narrative → color → motion の固定順でステージを実行し、
// 完全に解決された属性バッグを返すのだ。不在のステージはスキップされ、
// 未解決の属性にはデフォルト値が適用される。
func (r *Resolver) Resolve(prompt string, index int) (domain.Attributes, error) {
	// --- Stage 1: 物語強化 ---
	narrative, err := r.runStage(domain.KindNarrative, domain.Attributes{
		domain.AttrRawPrompt:  prompt,
		domain.AttrFrameIndex: index,
	})
	if err != nil {
		return nil, fmt.Errorf("フレーム %d の物語ステージに失敗したのだ: %w", index, err)
	}
	enhanced := narrative.String(domain.AttrInspiredPrompt, prompt)

	// --- Stage 2: 配色 ---
	colors, err := r.runStage(domain.KindColor, domain.Attributes{
		domain.AttrPrompt:     enhanced,
		domain.AttrFrameIndex: index,
	})
	if err != nil {
		return nil, fmt.Errorf("フレーム %d の配色ステージに失敗したのだ: %w", index, err)
	}
	mood := colors.String(domain.AttrMoodProfile, domain.DefaultMoodProfile)

	// --- Stage 3: モーション ---
	motion, err := r.runStage(domain.KindMotion, domain.Attributes{
		domain.AttrEnhancedPrompt: enhanced,
		domain.AttrEmotionTone:    mood,
	})
	if err != nil {
		return nil, fmt.Errorf("フレーム %d のモーションステージに失敗したのだ: %w", index, err)
	}

	resolved := domain.Attributes{
		domain.AttrEnhancedPrompt:  enhanced,
		domain.AttrBackgroundColor: colors.String(domain.AttrBackgroundColor, domain.DefaultBackgroundColor),
		domain.AttrAccentColor:     colors.String(domain.AttrAccentColor, domain.DefaultAccentColor),
		domain.AttrMoodProfile:     mood,
		domain.AttrPulseRate:       motion.Float(domain.AttrPulseRate, domain.DefaultPulseRate),
	}

	// animation_style と motion_curve はフレームテンプレートでは未使用だが、
	// 解決済みの値として保持しておくのだ
	if style := motion.String(domain.AttrAnimationStyle, ""); style != "" {
		resolved[domain.AttrAnimationStyle] = style
	}
	if curve := motion.String(domain.AttrMotionCurve, ""); curve != "" {
		resolved[domain.AttrMotionCurve] = curve
	}

	return resolved, nil
}

// runStage は種別に対応するエージェントを実行するのだ。
// 不在のステージは空のバッグで素通りする（不在はエラーではなく想定内の劣化動作なのだ）。
func (r *Resolver) runStage(kind domain.Kind, inputs domain.Attributes) (domain.Attributes, error) {
	def, ok := r.registry.Lookup(kind)
	if !ok {
		slog.Debug("エージェント不在のためステージをスキップするのだ", "kind", string(kind))
		return domain.Attributes{}, nil
	}
	return r.executor.Execute(def, inputs)
}
