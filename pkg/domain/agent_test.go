package domain

import (
	"encoding/json"
	"testing"
)

func TestAgentDefinition_ResolveKind(t *testing.T) {
	t.Run("既知のエージェント名から種別を導出できるのだ", func(t *testing.T) {
		cases := map[string]Kind{
			"SceneInspireAgent": KindNarrative,
			"ColorAuraAgent":    KindColor,
			"MotionMoodAgent":   KindMotion,
		}
		for name, want := range cases {
			def := AgentDefinition{Name: name}
			if got := def.ResolveKind(); got != want {
				t.Errorf("%s の種別が違うのだ。期待: %s, 実際: %s", name, want, got)
			}
		}
	})

	t.Run("明示的な kind 指定が名前より優先されるのだ", func(t *testing.T) {
		def := AgentDefinition{Name: "SceneInspireAgent", Kind: KindMotion}
		if got := def.ResolveKind(); got != KindMotion {
			t.Errorf("kind フィールドが優先されていないのだ: %s", got)
		}
	})

	t.Run("特定できない定義は KindUnknown になるのだ", func(t *testing.T) {
		def := AgentDefinition{Name: "MysteryAgent"}
		if got := def.ResolveKind(); got != KindUnknown {
			t.Errorf("未知のエージェントは KindUnknown のはずなのだ: %s", got)
		}
	})
}

func TestAgentDefinition_JSON(t *testing.T) {
	t.Run("agents.json のエントリ形式をパースできるのだ", func(t *testing.T) {
		inputJSON := `{
			"name": "ColorAuraAgent",
			"logic": {
				"color_mapping": {"hope": "#ffe9a8", "night": "#1b2a41"},
				"unknown_key": "ignored"
			}
		}`

		var def AgentDefinition
		if err := json.Unmarshal([]byte(inputJSON), &def); err != nil {
			t.Fatalf("パース失敗なのだ: %v", err)
		}

		if def.Name != "ColorAuraAgent" {
			t.Errorf("名前が違うのだ: %s", def.Name)
		}
		if def.Logic.ColorMapping["night"] != "#1b2a41" {
			t.Errorf("color_mapping が正しくパースされていないのだ: %+v", def.Logic.ColorMapping)
		}
	})
}
