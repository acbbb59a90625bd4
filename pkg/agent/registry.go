package agent

import (
	"log/slog"

	"github.com/shouni/go-svgvideo-kit/pkg/domain"
)

// Registry はロード済みエージェント定義を能力種別で引けるようにした検索表なのだ。
// 一度構築したら不変として扱う。不在は想定内の状態であり、エラーではない。
type Registry struct {
	byKind map[domain.Kind]domain.AgentDefinition
}

// NewRegistry は定義リストからレジストリを構築するのだ。
// 種別を特定できない定義は警告ログを出して無視する（決して致命的にはしない）。
func NewRegistry(defs []domain.AgentDefinition) *Registry {
	byKind := make(map[domain.Kind]domain.AgentDefinition, len(defs))
	for _, def := range defs {
		kind := def.ResolveKind()
		if kind == domain.KindUnknown {
			slog.Warn("未知のエージェントなので無視するのだ", "agent", def.Name)
			continue
		}
		if _, exists := byKind[kind]; exists {
			slog.Warn("同じ能力種別のエージェントが重複しているのだ。先勝ちにする", "agent", def.Name, "kind", string(kind))
			continue
		}
		byKind[kind] = def
	}
	return &Registry{byKind: byKind}
}

// Lookup は能力種別で定義を検索するのだ。
// 見つからない場合は ok=false を返すだけで、決して失敗しない。ステージの劣化動作は呼び出し側に委ねる。
func (r *Registry) Lookup(kind domain.Kind) (domain.AgentDefinition, bool) {
	def, ok := r.byKind[kind]
	return def, ok
}

// Len は登録済みエージェントの数を返すのだ。
func (r *Registry) Len() int {
	return len(r.byKind)
}
