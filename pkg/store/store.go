package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/shouni/go-svgvideo-kit/pkg/domain"
)

// FrameStore は合成済みフレームを決定論的でソート可能なファイル名で永続化するのだ。
// 出力ディレクトリは最初の書き込み時に冪等に作成される。
type FrameStore struct {
	dir    string
	mkOnce sync.Once
	mkErr  error
}

// NewFrameStore は指定ディレクトリに書き込む FrameStore を生成して返すのだ。
func NewFrameStore(dir string) *FrameStore {
	return &FrameStore{dir: dir}
}

// Store はフレーム文書を書き込み、保存先パスを返すのだ。
// 既存ファイルは黙って上書きする（バージョニングなし）。I/O の失敗はそのまま伝播させる。
func (s *FrameStore) Store(frame domain.Frame) (string, error) {
	s.mkOnce.Do(func() {
		s.mkErr = os.MkdirAll(s.dir, 0o755)
	})
	if s.mkErr != nil {
		return "", fmt.Errorf("出力ディレクトリ '%s' の作成に失敗したのだ: %w", s.dir, s.mkErr)
	}

	path := filepath.Join(s.dir, frame.FileName())
	if err := os.WriteFile(path, []byte(frame.Document), 0o644); err != nil {
		return "", fmt.Errorf("フレーム %s の書き込みに失敗したのだ: %w", frame.ID(), err)
	}
	return path, nil
}

// Dir は出力ディレクトリのパスを返すのだ。
func (s *FrameStore) Dir() string {
	return s.dir
}

// ListFrames は保存済みSVGフレームをファイル名昇順（= インデックス順）で返すのだ。
// エンコードのみの再実行で使う。
func (s *FrameStore) ListFrames() ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "frame_*.svg"))
	if err != nil {
		return nil, fmt.Errorf("フレームディレクトリ '%s' の走査に失敗したのだ: %w", s.dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}
