package paint

import (
	"math/rand/v2"
	"time"

	"golang.org/x/text/language"
)

// Default surface size, used when the UI has not measured its drawing area.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Option configures a Session during creation.
//
// Example:
//
//	s, err := paint.New(
//	    paint.WithSize(1024, 768),
//	    paint.WithNoticeHandler(showToast),
//	    paint.WithLanguage(paint.MatchLanguage(acceptLanguage)),
//	)
type Option func(*options)

// options holds optional configuration for Session creation.
type options struct {
	width        int
	height       int
	fillLimit    int
	historyLimit int
	rand         *rand.Rand
	onNotice     NoticeHandler
	lang         language.Tag
	now          func() time.Time
	state        State
}

// defaultOptions returns the default session options.
func defaultOptions() options {
	return options{
		width:     DefaultWidth,
		height:    DefaultHeight,
		fillLimit: DefaultFillLimit,
		lang:      language.English,
		now:       time.Now,
		state:     DefaultState(),
	}
}

// WithSize sets the initial surface size.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithFillLimit sets the maximum number of pixels one bucket fill may
// write. n <= 0 removes the cap.
func WithFillLimit(n int) Option {
	return func(o *options) {
		o.fillLimit = n
	}
}

// WithHistoryLimit caps the number of retained undo snapshots. Each
// snapshot holds a full copy of the surface. n <= 0 (the default) keeps
// every snapshot.
func WithHistoryLimit(n int) Option {
	return func(o *options) {
		o.historyLimit = n
	}
}

// WithRand sets the random source used to resolve rainbow strokes.
// By default the global source is used.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithNoticeHandler sets the callback that receives user-visible notices.
func WithNoticeHandler(h NoticeHandler) Option {
	return func(o *options) {
		o.onNotice = h
	}
}

// WithLanguage sets the language notices are written in.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// WithClock sets the time source used for export file names.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithState sets the initial tool selection.
func WithState(st State) Option {
	return func(o *options) {
		o.state = st
	}
}
