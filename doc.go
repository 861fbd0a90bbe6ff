// Package paint is the drawing core of a children's canvas: freehand
// paint and erase, bucket fill, undo/redo and image export over a raw RGBA
// pixel buffer.
//
// # Overview
//
// The UI (toolbar, swatches, device events, downloads) lives outside this
// package. It forwards pointer events and tool selections to a [Session]
// and renders the session's surface.
//
// # Quick Start
//
//	s, err := paint.New(paint.WithSize(800, 600))
//	if err != nil {
//	    return err
//	}
//
//	// Draw a stroke
//	s.SetColor("#FF0000")
//	s.PointerDown(10, 10)
//	s.PointerMove(120, 80)
//	s.PointerUp() // one undoable step
//
//	// Bucket fill
//	s.SetTool(paint.ToolFill)
//	s.PointerDown(400, 300)
//
//	s.Undo()
//	png, err := s.Export("png")
//
// # Architecture
//
//   - Surface: W×H non-premultiplied RGBA buffer with silent out-of-bounds access
//   - Stroke rasterizer (internal/raster): round caps and joins, hard edges
//   - Fill engine (internal/flood): 4-connected BFS with a pixel cap
//   - History: linear snapshot stack, new edits truncate the redo branch
//   - Session: tool state, pointer gestures, one lock around surface and history
//   - Export: format registry (png, bmp, tiff, pdf) with optional scaling
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - A stroke covers pixel (px, py) when the integer point (px, py) is within
//     half the brush width of the stroke
//
// # Erasing
//
// The eraser paints opaque white. It never produces transparent pixels.
package paint
