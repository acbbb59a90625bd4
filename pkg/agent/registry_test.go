package agent

import (
	"testing"

	"github.com/shouni/go-svgvideo-kit/pkg/domain"
)

func TestRegistry_Lookup(t *testing.T) {
	defs := []domain.AgentDefinition{
		{Name: "SceneInspireAgent"},
		{Name: "ColorAuraAgent"},
		{Name: "MysteryAgent"}, // 未知の種別は無視されるのだ
	}
	r := NewRegistry(defs)

	t.Run("能力種別で定義を引けるのだ", func(t *testing.T) {
		def, ok := r.Lookup(domain.KindNarrative)
		if !ok {
			t.Fatal("narrative エージェントが見つからないのだ")
		}
		if def.Name != "SceneInspireAgent" {
			t.Errorf("引けた定義が違うのだ: %s", def.Name)
		}
	})

	t.Run("不在の種別は ok=false を返すだけなのだ", func(t *testing.T) {
		if _, ok := r.Lookup(domain.KindMotion); ok {
			t.Error("登録していない motion エージェントが見つかってしまったのだ")
		}
	})

	t.Run("未知の種別はレジストリに入らないのだ", func(t *testing.T) {
		if r.Len() != 2 {
			t.Errorf("登録数が違うのだ。期待: 2, 実際: %d", r.Len())
		}
	})
}

func TestRegistry_DuplicateKind(t *testing.T) {
	t.Run("同じ種別の重複は先勝ちになるのだ", func(t *testing.T) {
		defs := []domain.AgentDefinition{
			{Name: "ColorAuraAgent"},
			{Name: "SecondColorAgent", Kind: domain.KindColor},
		}
		r := NewRegistry(defs)

		def, ok := r.Lookup(domain.KindColor)
		if !ok {
			t.Fatal("color エージェントが見つからないのだ")
		}
		if def.Name != "ColorAuraAgent" {
			t.Errorf("先勝ちになっていないのだ: %s", def.Name)
		}
	})
}
