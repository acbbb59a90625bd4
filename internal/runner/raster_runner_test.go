package runner

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shouni/go-svgvideo-kit/pkg/domain"
)

// stubRasterizer はテスト用のラスタライザなのだ。
// フレームごとの遅延や失敗を注入して並列実行の挙動を観察する。
type stubRasterizer struct {
	mu      sync.Mutex
	calls   []string
	delays  map[string]time.Duration
	failOn  string
	failErr error
}

func (s *stubRasterizer) Rasterize(ctx context.Context, svgPath, pngPath string, width, height int) error {
	s.mu.Lock()
	s.calls = append(s.calls, svgPath)
	s.mu.Unlock()

	if d, ok := s.delays[svgPath]; ok {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if s.failOn != "" && svgPath == s.failOn {
		return s.failErr
	}
	return nil
}

func makeFrames(dir string, count int) []domain.Frame {
	frames := make([]domain.Frame, count)
	for i := range frames {
		frames[i] = domain.Frame{
			Index: i,
			Path:  filepath.Join(dir, domain.Frame{Index: i}.FileName()),
		}
	}
	return frames
}

func TestParallelRasterRunner_Run(t *testing.T) {
	t.Run("完了順によらずインデックス順のパスが返るのだ", func(t *testing.T) {
		frames := makeFrames("/tmp/frames", 4)

		// 先頭フレームだけ遅らせて、後続が先に完了する状況を作るのだ
		stub := &stubRasterizer{
			delays: map[string]time.Duration{frames[0].Path: 50 * time.Millisecond},
		}
		rr := NewParallelRasterRunner(stub, 640, 360, 4)

		bitmaps, err := rr.Run(context.Background(), frames)
		if err != nil {
			t.Fatalf("実行に失敗したのだ: %v", err)
		}
		if len(bitmaps) != 4 {
			t.Fatalf("ビットマップ数が違うのだ: %d", len(bitmaps))
		}
		for i, path := range bitmaps {
			want := strings.TrimSuffix(frames[i].Path, ".svg") + ".png"
			if path != want {
				t.Errorf("位置 %d のパスが違うのだ。期待: %s, 実際: %s", i, want, path)
			}
		}
	})

	t.Run("1件の失敗でバッチ全体が失敗し、フレーム名が報告されるのだ", func(t *testing.T) {
		frames := makeFrames("/tmp/frames", 4)

		toolErr := errors.New("inkscape exploded")
		stub := &stubRasterizer{
			failOn:  frames[2].Path,
			failErr: toolErr,
		}
		rr := NewParallelRasterRunner(stub, 640, 360, 4)

		_, err := rr.Run(context.Background(), frames)
		if err == nil {
			t.Fatal("失敗を期待したのだ")
		}
		if !errors.Is(err, toolErr) {
			t.Errorf("元のエラーがラップされていないのだ: %v", err)
		}
		if !strings.Contains(err.Error(), "frame_002") {
			t.Errorf("エラーに失敗フレーム名が含まれていないのだ: %v", err)
		}
	})

	t.Run("キャンセル済みコンテキストでは起動されないのだ", func(t *testing.T) {
		frames := makeFrames("/tmp/frames", 2)
		stub := &stubRasterizer{}
		rr := NewParallelRasterRunner(stub, 640, 360, 2)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := rr.Run(ctx, frames)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("context.Canceled を期待したのだ: %v", err)
		}
	})

	t.Run("空のフレームリストは空の結果で成功するのだ", func(t *testing.T) {
		rr := NewParallelRasterRunner(&stubRasterizer{}, 640, 360, 2)

		bitmaps, err := rr.Run(context.Background(), nil)
		if err != nil {
			t.Fatalf("実行に失敗したのだ: %v", err)
		}
		if len(bitmaps) != 0 {
			t.Errorf("空の結果を期待したのだ: %v", bitmaps)
		}
	})
}

func TestBitmapPath(t *testing.T) {
	t.Run("拡張子だけが差し替わるのだ", func(t *testing.T) {
		got := bitmapPath("output/svg_frames/frame_012.svg")
		if got != "output/svg_frames/frame_012.png" {
			t.Errorf("PNGパスが違うのだ: %s", got)
		}
	})
}
