package paint

import (
	"fmt"
	"strings"
)

// Tool is the active drawing tool.
type Tool int

const (
	// ToolPaint draws freehand strokes in the selected color.
	ToolPaint Tool = iota
	// ToolErase draws freehand strokes in opaque white.
	ToolErase
	// ToolFill bucket-fills the region under the pointer.
	ToolFill
	// ToolSelect drags a rectangle and captures that region as an image.
	ToolSelect
)

var toolNames = [...]string{
	ToolPaint:  "paint",
	ToolErase:  "erase",
	ToolFill:   "fill",
	ToolSelect: "select",
}

// String returns the canonical tool name.
func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// Valid reports whether t is a known tool.
func (t Tool) Valid() bool {
	return t >= ToolPaint && t <= ToolSelect
}

// draws reports whether the tool produces freehand strokes.
func (t Tool) draws() bool {
	return t == ToolPaint || t == ToolErase
}

// ParseTool maps a tool name to a Tool. Toolbar names ("paintbrush",
// "eraser", "background") are accepted alongside the canonical ones.
func ParseTool(name string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "paint", "paintbrush", "brush":
		return ToolPaint, nil
	case "erase", "eraser":
		return ToolErase, nil
	case "fill", "bucket":
		return ToolFill, nil
	case "select", "background", "capture":
		return ToolSelect, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// State is the tool selection of one session. It is changed only through
// the session's tool-selection calls and read by stroke rasterization and
// fill.
type State struct {
	Tool        Tool
	Color       ColorSpec
	BrushWidth  float64
	EraserWidth float64
}

// DefaultState returns the selection a new session starts with: black
// paint, medium brush, medium eraser.
func DefaultState() State {
	return State{
		Tool:        ToolPaint,
		Color:       Solid(Black),
		BrushWidth:  BrushMedium,
		EraserWidth: EraserMedium,
	}
}

// Validate checks the tool and widths.
func (st State) Validate() error {
	if !st.Tool.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownTool, st.Tool)
	}
	if st.BrushWidth < 1 {
		return fmt.Errorf("%w: brush %v", ErrInvalidWidth, st.BrushWidth)
	}
	if st.EraserWidth < 1 {
		return fmt.Errorf("%w: eraser %v", ErrInvalidWidth, st.EraserWidth)
	}
	return nil
}

// strokeWidth returns the width freehand strokes use for the current tool.
func (st State) strokeWidth() float64 {
	if st.Tool == ToolErase {
		return st.EraserWidth
	}
	return st.BrushWidth
}
