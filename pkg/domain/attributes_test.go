package domain

import "testing"

func TestAttributes_Getters(t *testing.T) {
	t.Run("文字列と数値の取り出しができるのだ", func(t *testing.T) {
		attrs := Attributes{
			AttrMoodProfile: "hope",
			AttrPulseRate:   1.5,
			AttrFrameIndex:  3,
		}

		if got := attrs.String(AttrMoodProfile, "neutral"); got != "hope" {
			t.Errorf("String の結果が違うのだ: %s", got)
		}
		if got := attrs.Float(AttrPulseRate, 1.0); got != 1.5 {
			t.Errorf("Float の結果が違うのだ: %v", got)
		}
		// Goコード上で int として詰めた値も数値として読めるのだ
		if got := attrs.Float(AttrFrameIndex, 0); got != 3 {
			t.Errorf("int 値が Float で読めないのだ: %v", got)
		}
	})

	t.Run("未設定・空文字列はフォールバックに落ちるのだ", func(t *testing.T) {
		attrs := Attributes{AttrMoodProfile: ""}

		if got := attrs.String(AttrMoodProfile, "neutral"); got != "neutral" {
			t.Errorf("空文字列でフォールバックしないのだ: %s", got)
		}
		if got := attrs.String("missing", "fallback"); got != "fallback" {
			t.Errorf("未設定キーでフォールバックしないのだ: %s", got)
		}
		if got := attrs.Float("missing", 2.5); got != 2.5 {
			t.Errorf("未設定キーの Float がフォールバックしないのだ: %v", got)
		}
	})
}

func TestAttributes_MergeAndClone(t *testing.T) {
	t.Run("Merge は既存キーを上書きするのだ", func(t *testing.T) {
		base := Attributes{AttrMoodProfile: "neutral"}
		base.Merge(Attributes{AttrMoodProfile: "hope", AttrPulseRate: 1.2})

		if base.String(AttrMoodProfile, "") != "hope" {
			t.Error("Merge で上書きされていないのだ")
		}
		if base.Float(AttrPulseRate, 0) != 1.2 {
			t.Error("Merge で新キーが追加されていないのだ")
		}
	})

	t.Run("Clone は元のバッグから独立しているのだ", func(t *testing.T) {
		original := Attributes{AttrMoodProfile: "hope"}
		copied := original.Clone()
		copied[AttrMoodProfile] = "night"

		if original.String(AttrMoodProfile, "") != "hope" {
			t.Error("Clone の変更が元のバッグに漏れているのだ")
		}
	})
}

func TestFrame_ID(t *testing.T) {
	t.Run("ゼロ埋め3桁の識別子になるのだ", func(t *testing.T) {
		cases := map[int]string{
			0:   "frame_000",
			7:   "frame_007",
			42:  "frame_042",
			123: "frame_123",
		}
		for index, want := range cases {
			f := Frame{Index: index}
			if got := f.ID(); got != want {
				t.Errorf("ID が違うのだ。期待: %s, 実際: %s", want, got)
			}
			if got := f.FileName(); got != want+".svg" {
				t.Errorf("FileName が違うのだ: %s", got)
			}
		}
	})
}
