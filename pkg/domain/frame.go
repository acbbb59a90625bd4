package domain

import "fmt"

// Frame は1つの場面を表すベクターフレームなのだ。
// 合成された時点で不変となり、Frame Store によって一度だけ書き込まれる。
type Frame struct {
	Index    int    // ゼロ始まりの連番。プロンプトの順序と一致する
	Document string // 固定スキーマのSVG文書
	Path     string // Frame Store への書き込み後に確定する保存先
}

// ID は frame_000 形式のゼロ埋め識別子を返すのだ。
// ファイル名のソート順がインデックス順と一致することを保証する要なのだ。
func (f Frame) ID() string {
	return fmt.Sprintf("frame_%03d", f.Index)
}

// FileName は保存時のファイル名を返すのだ。
func (f Frame) FileName() string {
	return f.ID() + ".svg"
}
