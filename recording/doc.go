// Package recording captures drawing operations as a flat list of commands
// alongside the drawing tree they produce.
//
// A Recorder forwards every call to a live drawing.DrawingContext and
// appends the matching Command. The command list is a pre-order
// linearization of the tree: a Draw command per leaf, and a Push command,
// the group's content and a Pop command per pushed group.
//
// # Architecture
//
//   - Recorder: drives a DrawingContext and keeps the command list
//   - Recording: the finished command list and materialized tree
//   - Backend: receives the commands again on Playback
//
// # Basic Usage
//
//	v := drawing.NewDrawingVisual()
//	rec := recording.NewVisualRecorder(v)
//
//	rec.PushTransform(&drawing.TranslateTransform{X: 10, Y: 10})
//	rec.DrawLine(drawing.NewPen(drawing.Brushes.Red, 5), drawing.Pt(0, 0), drawing.Pt(100, 100))
//	rec.DrawText(text, drawing.Pt(1.5, -1.5))
//
//	// Finish closes the context and appends a Pop for every
//	// bracket still open.
//	r, err := rec.Finish()
//
// # Recording rules
//
// A command is recorded only when the context creates a node for it:
//
//   - DrawLine needs a pen
//   - DrawRectangle, DrawRoundedRectangle and DrawEllipse need a brush or a pen
//   - DrawGeometry needs a geometry and a brush or a pen
//   - DrawGlyphRun needs both a brush and a glyph run
//   - DrawImage, DrawVideo, DrawDrawing and DrawText need their payload
//
// Push commands are always recorded, nil payload included. DrawText is
// recorded as PushGuidelineSet, DrawText, Pop since the context wraps
// text in a guideline group.
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/drawing/recording/backends/tree"
//
//	b, _ := recording.NewBackend("tree")
//	if err := r.Playback(b); err != nil {
//	    // ...
//	}
//	root := b.(recording.DrawingBackend).Drawing()
//
// The "trace" backend writes one line per operation and implements
// WriterBackend.
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to automatically register it.
//
// # Thread Safety
//
// Recorder is not safe for concurrent use. A finished Recording is
// read-only and may be shared. The registry functions are safe for
// concurrent use.
package recording
