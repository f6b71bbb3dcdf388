// Package drawing provides a retained-mode 2D drawing model: primitive
// value types, media resources, a recording DrawingContext and the tree of
// Drawings it produces.
//
// # Overview
//
// A DrawingContext is obtained from a DrawingVisual (RenderOpen) or a
// DrawingGroup (Open, Append). Draw calls append leaves; Push calls open a
// child DrawingGroup that carries exactly one attribute (clip, opacity,
// transform, guideline set or bitmap effect) until the matching Pop. Close
// commits the content:
//
//	v := drawing.NewDrawingVisual()
//	dc := v.RenderOpen()
//	dc.PushOpacity(0.5)
//	dc.DrawLine(drawing.NewPen(drawing.Brushes.Red, 5), drawing.Pt(0, 0), drawing.Pt(100, 100))
//	dc.Pop()
//	dc.Close()
//
//	root := v.Drawing() // group{ group{opacity 0.5}{ GeometryDrawing } }
//
// Draw calls whose payload is missing (a nil pen for DrawLine, neither brush
// nor pen for shapes, and so on) record nothing.
//
// The recording package captures the same calls as a flat command list and
// the verify package checks that a tree is the hierarchical reconstruction
// of such a list.
//
// # Value types
//
// Point, Vector, Size, Rect and Matrix follow the conventions of retained
// 2D APIs: Matrix uses row vectors, angles are in degrees, and the empty
// Rect is (+Inf, +Inf, -Inf, -Inf). All of them parse from and format to
// comma separated invariant strings.
package drawing
