package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-svgvideo-kit/pkg/domain"
)

// requiredScenarioFields は実行構成に必須のキーを報告順に並べたものなのだ。
var requiredScenarioFields = []string{"prompts", "width", "height", "output_video"}

// LoadScenario は実行構成JSONを読み込み、検証済みの Scenario を返すのだ。
// 失敗時に部分的なオブジェクトを返すことはない。ログ出力は観測目的であり、
// エラーは必ず呼び出し元へ伝播させる。
func LoadScenario(path string) (*domain.Scenario, error) {
	data, err := readJSONFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Error("実行構成のパースに失敗したのだ", "path", path, "error", err)
		return nil, &MalformedInputError{Path: path, Err: err}
	}

	for _, field := range requiredScenarioFields {
		if _, ok := raw[field]; !ok {
			slog.Error("必須フィールドが欠落しているのだ", "path", path, "field", field)
			return nil, &MissingFieldError{Field: field}
		}
	}

	var sc domain.Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		slog.Error("実行構成のデコードに失敗したのだ", "path", path, "error", err)
		return nil, &MalformedInputError{Path: path, Err: err}
	}

	if sc.Width <= 0 || sc.Height <= 0 {
		return nil, &MalformedInputError{
			Path: path,
			Err:  fmt.Errorf("width/height は正の整数でなければならないのだ: %dx%d", sc.Width, sc.Height),
		}
	}
	if sc.OutputVideo == "" {
		return nil, &MissingFieldError{Field: "output_video"}
	}
	if sc.FrameRate <= 0 {
		sc.FrameRate = DefaultFrameRate
	}

	return &sc, nil
}

// LoadAgentDefinitions は agents.json を読み込み、定義のリストを返すのだ。
// 未知のエージェントを含んでいても失敗しない（レジストリ側で無視される）。
func LoadAgentDefinitions(path string) ([]domain.AgentDefinition, error) {
	data, err := readJSONFile(path)
	if err != nil {
		return nil, err
	}

	var defs []domain.AgentDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		slog.Error("エージェント定義のパースに失敗したのだ", "path", path, "error", err)
		return nil, &MalformedInputError{Path: path, Err: err}
	}
	return defs, nil
}

// readJSONFile は存在チェックつきでファイル内容を読み込む内部ヘルパーなのだ。
func readJSONFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Error("ファイルが見つからないのだ", "path", path)
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("'%s' の読み込みに失敗したのだ: %w", path, err)
	}
	return data, nil
}
