package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-svgvideo-kit/pkg/domain"
	"github.com/shouni/go-svgvideo-kit/pkg/resolver"
	"github.com/shouni/go-svgvideo-kit/pkg/store"
	"github.com/shouni/go-svgvideo-kit/pkg/svg"
)

// FrameRunner は、実行構成の全プロンプトからSVGフレームを合成して保存するためのインターフェース。
type FrameRunner interface {
	// Run は全プロンプトに対して 解決 → 合成 → 保存 を実行し、保存済みフレームのリストを返す。
	Run(ctx context.Context, sc domain.Scenario) ([]domain.Frame, error)
}

// SVGFrameRunner は属性解決とSVG合成を逐次実行する実体なのだ。
// 1フレーム内の属性連鎖（narrative → color → motion）がそもそも逐次依存なので、
// このフェーズを並列化する利点はないのだよ。
type SVGFrameRunner struct {
	resolver    *resolver.Resolver
	synthesizer *svg.Synthesizer
	store       *store.FrameStore
}

// NewSVGFrameRunner は SVGFrameRunner の新しいインスタンスを生成して返す。
func NewSVGFrameRunner(res *resolver.Resolver, syn *svg.Synthesizer, st *store.FrameStore) *SVGFrameRunner {
	return &SVGFrameRunner{
		resolver:    res,
		synthesizer: syn,
		store:       st,
	}
}

// Run はプロンプトをインデックス順に処理してフレームを生成するメインロジックなのだ。
// 1つの不正プロンプトでバッチ全体を中断する方針を採る。
func (fr *SVGFrameRunner) Run(ctx context.Context, sc domain.Scenario) ([]domain.Frame, error) {
	frames := make([]domain.Frame, 0, len(sc.Prompts))

	for i, prompt := range sc.Prompts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		attrs, err := fr.resolver.Resolve(prompt, i)
		if err != nil {
			return nil, err
		}

		frame, err := fr.synthesizer.Synthesize(i, attrs)
		if err != nil {
			return nil, err
		}

		path, err := fr.store.Store(frame)
		if err != nil {
			return nil, fmt.Errorf("フレーム %s の保存に失敗したのだ: %w", frame.ID(), err)
		}
		frame.Path = path

		slog.Info("SVGフレームを保存したのだ", "frame", frame.ID(), "path", path, "mood", attrs.String(domain.AttrMoodProfile, domain.DefaultMoodProfile))
		frames = append(frames, frame)
	}

	return frames, nil
}
