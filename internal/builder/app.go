package builder

import (
	"github.com/shouni/go-svgvideo-kit/internal/config"
	"github.com/shouni/go-svgvideo-kit/pkg/agent"
	"github.com/shouni/go-svgvideo-kit/pkg/domain"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
// 出力先やツール設定はすべてここを経由して運ばれ、プロセス全体の可変グローバルは持たない。
type AppContext struct {
	Config   *config.Config       // Configは、環境変数から読み込まれたグローバルな設定です。
	Options  config.RenderOptions // Optionsは、コマンドラインから渡された実行時の設定です。
	Scenario domain.Scenario      // Scenarioは、検証済みの実行構成（プロンプト列・キャンバスサイズなど）です。
	Registry *agent.Registry      // Registryは、能力種別で引けるエージェント定義の検索表です。
	Executor *agent.Executor      // Executorは、結果キャッシュを持つエージェント実行器です。
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(cfg *config.Config, sc domain.Scenario, registry *agent.Registry) AppContext {
	return AppContext{
		Config:   cfg,
		Options:  cfg.Options,
		Scenario: sc,
		Registry: registry,
		Executor: agent.NewExecutor(),
	}
}
