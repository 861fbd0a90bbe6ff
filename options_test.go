package paint

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.width != DefaultWidth || o.height != DefaultHeight {
		t.Errorf("size = %dx%d", o.width, o.height)
	}
	if o.fillLimit != DefaultFillLimit || DefaultFillLimit != 500_000 {
		t.Errorf("fillLimit = %d", o.fillLimit)
	}
	if o.historyLimit != 0 {
		t.Errorf("historyLimit = %d, want unlimited", o.historyLimit)
	}
	if o.lang != language.English || o.now == nil || o.rand != nil || o.onNotice != nil {
		t.Errorf("unexpected defaults: lang %v", o.lang)
	}
}

func TestOptions(t *testing.T) {
	clock := func() time.Time { return time.Unix(1, 0) }
	st := DefaultState()
	st.Tool = ToolFill

	o := defaultOptions()
	for _, opt := range []Option{
		WithSize(3, 4),
		WithFillLimit(-1),
		WithHistoryLimit(8),
		WithLanguage(language.Spanish),
		WithClock(clock),
		WithClock(nil),
		WithState(st),
	} {
		opt(&o)
	}

	if o.width != 3 || o.height != 4 || o.fillLimit != -1 || o.historyLimit != 8 {
		t.Errorf("options = %dx%d fill %d history %d", o.width, o.height, o.fillLimit, o.historyLimit)
	}
	if o.lang != language.Spanish || o.state != st {
		t.Errorf("lang %v state %+v", o.lang, o.state)
	}
	if o.now == nil || !o.now().Equal(time.Unix(1, 0)) {
		t.Error("WithClock(nil) should keep the previous clock")
	}
}

func TestWithHistoryLimit(t *testing.T) {
	s := newTestSession(t, 8, 8, WithHistoryLimit(3))
	for i := 0; i < 5; i++ {
		drag(s, Pt(1, float64(i)), Pt(6, float64(i)))
	}
	if s.HistoryLen() != 3 {
		t.Errorf("HistoryLen = %d, want 3", s.HistoryLen())
	}
	undos := 0
	for s.Undo() {
		undos++
	}
	if undos != 2 {
		t.Errorf("undos = %d, want 2", undos)
	}
}

func TestWithFillLimitUnlimited(t *testing.T) {
	s := newTestSession(t, 30, 30, WithFillLimit(0))
	if res := s.FloodFill(0, 0, Solid(Black)); res.Filled != 900 || res.Capped {
		t.Errorf("FloodFill = %+v, want 900 uncapped", res)
	}
}
