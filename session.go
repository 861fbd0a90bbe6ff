package paint

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/message"
)

// Session is one drawing session: the surface, its undo history, the tool
// selection and any gesture in progress.
//
// All methods are safe for concurrent use. Every mutation of the surface
// and history happens under a single lock, so each pointer event or action
// runs to completion before the next one starts. Encoding for export runs
// on an immutable snapshot outside the lock.
type Session struct {
	mu sync.Mutex

	id      string
	surface *Surface
	history *History
	state   State

	// in-progress gestures; at most one is non-nil
	stroke *activeStroke
	sel    *selection

	capture *Capture

	fillLimit int
	rand      *rand.Rand
	onNotice  NoticeHandler
	printer   *message.Printer
	now       func() time.Time
}

// activeStroke is a paint or erase drag between pointer down and up.
type activeStroke struct {
	last     Point
	segments int
}

// New creates a session with a blank white surface and a single-entry
// history.
func New(opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.state.Validate(); err != nil {
		return nil, err
	}

	surface, err := NewSurface(o.width, o.height)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:        uuid.NewString(),
		surface:   surface,
		state:     o.state,
		fillLimit: o.fillLimit,
		rand:      o.rand,
		onNotice:  o.onNotice,
		printer:   newPrinter(o.lang),
		now:       o.now,
	}
	s.history = NewHistory(surface.Snapshot(), o.historyLimit)

	s.log().Info("session started", "width", o.width, "height", o.height)
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) log() *slog.Logger {
	return Logger().With("session", s.id)
}

func (s *Session) notify(kind NoticeKind, key string) {
	if s.onNotice == nil {
		return
	}
	s.onNotice(newNotice(s.printer, kind, key))
}

// Resize replaces the surface with a blank one of the new size and resets
// the history to that blank surface. Prior content is discarded, not
// resampled.
func (s *Session) Resize(width, height int) error {
	surface, err := NewSurface(width, height)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.surface = surface
	s.history.Reset(surface.Snapshot())
	s.stroke, s.sel, s.capture = nil, nil, nil

	s.log().Info("surface initialized", "width", width, "height", height)
	return nil
}

// Size returns the surface dimensions.
func (s *Session) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface.Width(), s.surface.Height()
}

// Pixel returns the color at (x, y), or false outside the surface.
func (s *Session) Pixel(x, y int) (Color, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface.Pixel(x, y)
}

// SetPixel writes one pixel without recording history. Out-of-bounds
// writes are ignored.
func (s *Session) SetPixel(x, y int, c Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surface.SetPixel(x, y, c)
}

// Snapshot returns a copy of the current surface.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface.Snapshot()
}

// Render calls fn with the live surface under the session lock, for UIs
// that blit the buffer directly. fn must not retain the surface or call
// back into the session.
func (s *Session) Render(fn func(*Surface)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.surface)
}

// State returns the current tool selection.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetTool selects a tool. A gesture in progress is finished first.
func (s *Session) SetTool(t Tool) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownTool, t)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endGesture()
	s.state.Tool = t
	return nil
}

// SetColor selects a color from a color string or "rainbow".
func (s *Session) SetColor(spec string) error {
	cs, err := ParseColorSpec(spec)
	if err != nil {
		return err
	}
	s.SetColorSpec(cs)
	return nil
}

// SetColorSpec selects a parsed color.
func (s *Session) SetColorSpec(cs ColorSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Color = cs
}

// SetBrushWidth sets the paint stroke width in pixels (>= 1).
func (s *Session) SetBrushWidth(n float64) error {
	if !(n >= 1) {
		return fmt.Errorf("%w: brush %v", ErrInvalidWidth, n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.BrushWidth = n
	return nil
}

// SetEraserWidth sets the eraser stroke width in pixels (>= 1).
func (s *Session) SetEraserWidth(n float64) error {
	if !(n >= 1) {
		return fmt.Errorf("%w: eraser %v", ErrInvalidWidth, n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.EraserWidth = n
	return nil
}

// commit pushes the current surface as one undoable step.
func (s *Session) commit() {
	s.history.Push(s.surface.Snapshot())
}

// Undo steps back one edit. It reports false when there is nothing to undo.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endGesture()

	snap, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.restore(snap)
	s.log().Debug("undo", "index", s.history.Index(), "len", s.history.Len())
	return true
}

// Redo re-applies an undone edit. It reports false when there is nothing to
// redo, including after a new edit truncated the redo branch.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endGesture()

	snap, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.restore(snap)
	s.log().Debug("redo", "index", s.history.Index(), "len", s.history.Len())
	return true
}

func (s *Session) restore(snap Snapshot) {
	if err := s.surface.Restore(snap); err != nil {
		// History is reset on every resize, so sizes always match.
		s.log().Error("restore failed", "err", err)
	}
}

// Clear paints the whole surface white as one undoable step.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endGesture()
	s.surface.Clear(White)
	s.commit()
}

// CanUndo reports whether Undo would change the surface.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would change the surface.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanRedo()
}

// HistoryLen returns the number of snapshots in the history.
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Len()
}

// HistoryIndex returns the position of the current snapshot.
func (s *Session) HistoryIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Index()
}

// FloodFill bucket-fills the region containing (x, y) with the fill
// resolution of spec and records one history step if anything changed.
// A capped fill keeps its partial result and emits the fill-too-large
// advisory.
func (s *Session) FloodFill(x, y int, spec ColorSpec) FillResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endGesture()
	return s.floodFill(x, y, spec)
}

func (s *Session) floodFill(x, y int, spec ColorSpec) FillResult {
	res := s.surface.FloodFill(x, y, spec.ForFill(), s.fillLimit)
	if !res.Changed() {
		return res
	}
	s.commit()

	s.log().Debug("fill", "x", x, "y", y, "filled", res.Filled, "capped", res.Capped)
	if res.Capped {
		s.log().Warn("fill capped", "limit", s.fillLimit)
		s.notify(NoticeAdvisory, MsgFillTooLarge)
	}
	return res
}

// DrawStroke rasterizes a complete stroke and records it as one step.
// Strokes with no points are ignored.
func (s *Session) DrawStroke(st Stroke) {
	if len(st.Points) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endGesture()
	st.Draw(s.surface)
	s.commit()
}

// Export encodes the current surface in the named format.
func (s *Session) Export(format string, opts ...ExportOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.ExportTo(&buf, format, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportTo encodes the current surface in the named format to w.
// The surface and history are unaffected by failures.
func (s *Session) ExportTo(w io.Writer, format string, opts ...ExportOption) error {
	snap := s.Snapshot()
	if err := Encode(w, snap.Image(), format, opts...); err != nil {
		s.log().Warn("export failed", "format", format, "err", err)
		return err
	}
	return nil
}

// Save exports the surface into dir as kids-art-<millis>.<ext> and emits a
// success or failure notice. It returns the written path.
func (s *Session) Save(dir, format string, opts ...ExportOption) (string, error) {
	f, err := LookupFormat(format)
	if err != nil {
		s.saveFailed(err)
		return "", err
	}
	data, err := s.Export(f.Name, opts...)
	if err != nil {
		s.saveFailed(err)
		return "", err
	}
	path := filepath.Join(dir, Filename(ArtPrefix, f.Ext, s.now()))
	return path, s.writeFile(path, data)
}

func (s *Session) writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		err = fmt.Errorf("paint: save: %w", err)
		s.saveFailed(err)
		return err
	}
	s.log().Info("saved", "path", path, "bytes", len(data))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify(NoticeSuccess, MsgSaved)
	return nil
}

func (s *Session) saveFailed(err error) {
	s.log().Warn("save failed", "err", err)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify(NoticeFailure, MsgSaveFailed)
}

// Capture returns the region captured by the last select drag.
func (s *Session) Capture() (Capture, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.capture == nil {
		return Capture{}, false
	}
	return *s.capture, true
}

// DiscardCapture drops the pending capture.
func (s *Session) DiscardCapture() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capture = nil
}

// SaveCapture writes the pending capture into dir as
// kids-art-capture-<millis>.png and drops it.
func (s *Session) SaveCapture(dir string) (string, error) {
	s.mu.Lock()
	c := s.capture
	s.mu.Unlock()
	if c == nil {
		return "", ErrNoCapture
	}

	data, err := EncodeBytes(c.Image, "png")
	if err != nil {
		s.saveFailed(err)
		return "", err
	}
	path := filepath.Join(dir, Filename(CapturePrefix, "png", s.now()))
	if err := s.writeFile(path, data); err != nil {
		return "", err
	}

	s.mu.Lock()
	if s.capture == c {
		s.capture = nil
	}
	s.mu.Unlock()
	return path, nil
}
