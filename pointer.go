package paint

// The pointer interface is input-source agnostic: mouse and touch handlers
// in the UI both funnel into PointerDown, PointerMove, PointerUp and
// PointerCancel, in surface-local pixel coordinates.

// PointerDown starts a gesture for the current tool.
//
//   - paint, erase: starts a stroke and draws a dot at p
//   - fill: bucket-fills the pixel containing p
//   - select: starts a selection rectangle
//
// A gesture still in progress (a missed pointer-up) is finished first.
func (s *Session) PointerDown(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endGesture()

	p := Pt(x, y)
	switch tool := s.state.Tool; {
	case tool.draws():
		s.stroke = &activeStroke{last: p}
		s.surface.DrawDot(p, s.segmentColor(), s.state.strokeWidth())
	case tool == ToolFill:
		px := p.Floor()
		s.floodFill(px.X, px.Y, s.state.Color)
	case tool == ToolSelect:
		s.sel = &selection{start: p, end: p}
		s.capture = nil
	}
}

// PointerMove extends the gesture in progress. Strokes are rasterized
// immediately, one segment per move, but not committed to the history.
// Moves without a gesture in progress are ignored.
func (s *Session) PointerMove(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Pt(x, y)
	switch {
	case s.stroke != nil:
		s.surface.DrawSegment(s.stroke.last, p, s.segmentColor(), s.state.strokeWidth())
		s.stroke.last = p
		s.stroke.segments++
	case s.sel != nil:
		s.sel.end = p
	}
}

// PointerUp ends the gesture in progress. A stroke is committed to the
// history as a single step; a selection becomes the pending capture.
func (s *Session) PointerUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endGesture()
}

// PointerCancel ends the gesture as PointerUp does. UIs call it when the
// pointer leaves the surface or a touch is cancelled.
func (s *Session) PointerCancel() {
	s.PointerUp()
}

// Drawing reports whether a stroke is in progress.
func (s *Session) Drawing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stroke != nil
}

// endGesture finishes any stroke or selection in progress. Callers hold mu.
func (s *Session) endGesture() {
	if s.stroke != nil {
		s.commit()
		s.log().Debug("stroke committed",
			"tool", s.state.Tool, "segments", s.stroke.segments, "index", s.history.Index())
		s.stroke = nil
	}
	if s.sel != nil {
		if r, ok := s.sel.rect(s.surface.Bounds()); ok {
			s.capture = &Capture{Rect: r, Image: s.surface.Crop(r)}
		}
		s.sel = nil
	}
}

// segmentColor resolves the color of the next stroke segment. The eraser
// always paints opaque white.
func (s *Session) segmentColor() Color {
	if s.state.Tool == ToolErase {
		return White
	}
	return s.state.Color.ForSegment(s.rand)
}
