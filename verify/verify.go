package verify

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/gogpu/drawing"
	"github.com/gogpu/drawing/recording"
)

// ErrCommandsExhausted is wrapped by the error Verify returns when the
// command list ends while a bracket is still expected to close. It means
// the list was not well-formed.
var ErrCommandsExhausted = errors.New("verify: commands exhausted")

// Verifier checks drawing trees against command lists. A Verifier holds
// only configuration and may be used from several goroutines; each call
// to Verify has its own cursor.
type Verifier struct {
	reporter Reporter
	logger   *slog.Logger
	eq       drawing.Equality
}

// New creates a Verifier.
func New(opts ...Option) *Verifier {
	v := &Verifier{
		logger: drawing.Logger(),
		eq:     drawing.DefaultEquality,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify is shorthand for New(opts...).Verify(root, cmds).
func Verify(root *drawing.DrawingGroup, cmds []recording.Command, opts ...Option) ([]Mismatch, error) {
	return New(opts...).Verify(root, cmds)
}

// Verify walks root and cmds in lockstep and returns every mismatch found.
//
// An empty command list matches only a nil root. Otherwise root must be a
// group with default opacity, transform and clip, its children must match
// the commands left to right, and no command may be left over. Matching is
// greedy with no backtracking; after a mismatch the walk resynchronizes
// and continues, so one call reports independent defects together.
//
// The error is non-nil only when cmds ends inside an unclosed bracket. The
// mismatches found up to that point are still returned.
func (v *Verifier) Verify(root *drawing.DrawingGroup, cmds []recording.Command) ([]Mismatch, error) {
	m := &matcher{v: v, cmds: cmds}
	err := m.verify(root)
	return m.found, err
}

type matcher struct {
	v     *Verifier
	cmds  []recording.Command
	pos   int
	found []Mismatch
	what  string // subject of attribute messages
}

func (m *matcher) report(path, msg string, expected, actual any) {
	mm := Mismatch{Path: path, Message: msg, Expected: expected, Actual: actual}
	m.found = append(m.found, mm)
	m.v.logger.Debug("verify: mismatch",
		"path", path,
		"message", msg,
		"expected", show(expected),
		"actual", show(actual))
	if m.v.reporter != nil {
		m.v.reporter.Report(mm)
	}
}

func (m *matcher) peek() (recording.Command, bool) {
	if m.pos >= len(m.cmds) {
		return nil, false
	}
	return m.cmds[m.pos], true
}

func (m *matcher) exhausted(path string) error {
	return fmt.Errorf("%w at %s (%d commands)", ErrCommandsExhausted, path, len(m.cmds))
}

func (m *matcher) verify(root *drawing.DrawingGroup) error {
	const path = "root"

	if len(m.cmds) == 0 {
		if root != nil {
			m.report(path, "expected no drawing", nil, root)
		}
		return nil
	}
	if root == nil {
		m.report(path, "expected a drawing, got nil", "*drawing.DrawingGroup", nil)
		return nil
	}

	m.what = "top-level group"
	m.value(path, "Opacity", 1.0, root.Opacity)
	m.deep(path, "Transform", nil, root.Transform)
	m.deep(path, "ClipGeometry", nil, root.ClipGeometry)

	if err := m.children(path, root.Children); err != nil {
		return err
	}
	if n := len(m.cmds) - m.pos; n > 0 {
		m.report(path, fmt.Sprintf("%d unconsumed command(s), first is %v", n, m.cmds[m.pos].Type()), 0, n)
	}
	return nil
}

func (m *matcher) children(path string, children []drawing.Drawing) error {
	for i, c := range children {
		if err := m.child(fmt.Sprintf("%s/children[%d]", path, i), c); err != nil {
			return err
		}
	}
	return nil
}

// --------------------------------------------------------------------------
// Dispatch
// --------------------------------------------------------------------------

var (
	geometryAccepts = []recording.CommandType{
		recording.CmdDrawLine, recording.CmdDrawEllipse, recording.CmdDrawRectangle,
		recording.CmdDrawRoundedRectangle, recording.CmdDrawGeometry, recording.CmdDrawDrawing,
	}
	imageAccepts    = []recording.CommandType{recording.CmdDrawImage, recording.CmdDrawDrawing}
	glyphRunAccepts = []recording.CommandType{recording.CmdDrawGlyphRun, recording.CmdDrawText, recording.CmdDrawDrawing}
	videoAccepts    = []recording.CommandType{recording.CmdDrawVideo, recording.CmdDrawDrawing}
	groupAccepts    = []recording.CommandType{
		recording.CmdDrawDrawing, recording.CmdPushClip, recording.CmdPushOpacity,
		recording.CmdPushTransform, recording.CmdPushGuidelineSet, recording.CmdPushEffect,
	}
)

func accepts(d drawing.Drawing) []recording.CommandType {
	switch d.(type) {
	case *drawing.GeometryDrawing:
		return geometryAccepts
	case *drawing.ImageDrawing:
		return imageAccepts
	case *drawing.GlyphRunDrawing:
		return glyphRunAccepts
	case *drawing.VideoDrawing:
		return videoAccepts
	case *drawing.DrawingGroup:
		return groupAccepts
	}
	return nil
}

func alternatives(types []recording.CommandType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, " || ")
}

func (m *matcher) child(path string, d drawing.Drawing) error {
	if drawing.IsNil(d) {
		m.report(path, "nil drawing in tree", nil, nil)
		return nil
	}

	want := accepts(d)
	cmd, ok := m.peek()
	if !ok {
		m.report(path, "expected "+alternatives(want)+", got end of commands", alternatives(want), nil)
		return nil
	}

	m.v.logger.Debug("verify: node", "path", path, "node", fmt.Sprintf("%T", d), "command", cmd.Type(), "index", m.pos)

	if !slices.Contains(want, cmd.Type()) {
		m.report(path, "expected "+alternatives(want)+", got "+cmd.Type().String(), alternatives(want), cmd.Type().String())
		return m.resync(path, cmd)
	}
	m.pos++
	m.what = cmd.Type().String()

	if c, ok := cmd.(recording.DrawDrawingCommand); ok {
		// The referenced drawing is compared whole; its content is not
		// matched against further commands.
		m.deep(path, "Drawing", c.Drawing, d)
		return nil
	}

	switch n := d.(type) {
	case *drawing.GeometryDrawing:
		m.geometry(path, n, cmd)
	case *drawing.ImageDrawing:
		if c, ok := cmd.(recording.DrawImageCommand); ok {
			m.deep(path, "ImageSource", c.ImageSource, n.ImageSource)
			m.value(path, "Rect", c.Rect, n.Rect)
			m.deep(path, "RectAnimation", c.RectAnimation, n.RectAnimation)
		}
	case *drawing.GlyphRunDrawing:
		// DrawText is accepted as is: the context derives the glyph run
		// and guideline group itself.
		if c, ok := cmd.(recording.DrawGlyphRunCommand); ok {
			m.deep(path, "ForegroundBrush", c.Brush, n.ForegroundBrush)
			m.deep(path, "GlyphRun", c.GlyphRun, n.GlyphRun)
		}
	case *drawing.VideoDrawing:
		if c, ok := cmd.(recording.DrawVideoCommand); ok {
			m.deep(path, "Player", c.Player, n.Player)
			m.value(path, "Rect", c.Rect, n.Rect)
			m.deep(path, "RectAnimation", c.RectAnimation, n.RectAnimation)
		}
	case *drawing.DrawingGroup:
		return m.group(path, n, cmd)
	}
	return nil
}

// resync moves the cursor past a command of the wrong kind. A Pop stays
// for the enclosing group; a Push is skipped together with its bracket.
func (m *matcher) resync(path string, cmd recording.Command) error {
	switch t := cmd.Type(); {
	case t == recording.CmdPop:
		return nil
	case t.IsPush():
		m.pos++
		return m.skipBracket(path)
	default:
		m.pos++
		return nil
	}
}

// skipBracket consumes commands through the Pop that closes the bracket
// the cursor is in.
func (m *matcher) skipBracket(path string) error {
	depth := 0
	for {
		cmd, ok := m.peek()
		if !ok {
			return m.exhausted(path)
		}
		m.pos++
		switch t := cmd.Type(); {
		case t.IsPush():
			depth++
		case t == recording.CmdPop:
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}

// --------------------------------------------------------------------------
// Leaves
// --------------------------------------------------------------------------

func (m *matcher) geometry(path string, n *drawing.GeometryDrawing, cmd recording.Command) {
	switch c := cmd.(type) {
	case recording.DrawLineCommand:
		m.deep(path, "Brush", nil, n.Brush)
		m.deep(path, "Pen", c.Pen, n.Pen)
		g, ok := n.Geometry.(*drawing.LineGeometry)
		if !m.geometryKind(path, ok, "*drawing.LineGeometry", n.Geometry) {
			return
		}
		m.value(path, "StartPoint", c.Point0, g.StartPoint)
		m.value(path, "EndPoint", c.Point1, g.EndPoint)
		m.deep(path, "StartPointAnimation", c.Point0Animation, g.StartPointAnimation)
		m.deep(path, "EndPointAnimation", c.Point1Animation, g.EndPointAnimation)

	case recording.DrawEllipseCommand:
		m.deep(path, "Brush", c.Brush, n.Brush)
		m.deep(path, "Pen", c.Pen, n.Pen)
		g, ok := n.Geometry.(*drawing.EllipseGeometry)
		if !m.geometryKind(path, ok, "*drawing.EllipseGeometry", n.Geometry) {
			return
		}
		m.value(path, "Center", c.Center, g.Center)
		m.value(path, "RadiusX", c.RadiusX, g.RadiusX)
		m.value(path, "RadiusY", c.RadiusY, g.RadiusY)
		m.deep(path, "CenterAnimation", c.CenterAnimation, g.CenterAnimation)
		m.deep(path, "RadiusXAnimation", c.RadiusXAnimation, g.RadiusXAnimation)
		m.deep(path, "RadiusYAnimation", c.RadiusYAnimation, g.RadiusYAnimation)

	case recording.DrawRectangleCommand:
		m.deep(path, "Brush", c.Brush, n.Brush)
		m.deep(path, "Pen", c.Pen, n.Pen)
		g, ok := n.Geometry.(*drawing.RectangleGeometry)
		if !m.geometryKind(path, ok, "*drawing.RectangleGeometry", n.Geometry) {
			return
		}
		m.value(path, "Rect", c.Rect, g.Rect)
		m.value(path, "RadiusX", 0.0, g.RadiusX)
		m.value(path, "RadiusY", 0.0, g.RadiusY)
		m.deep(path, "RectAnimation", c.RectAnimation, g.RectAnimation)

	case recording.DrawRoundedRectangleCommand:
		m.deep(path, "Brush", c.Brush, n.Brush)
		m.deep(path, "Pen", c.Pen, n.Pen)
		g, ok := n.Geometry.(*drawing.RectangleGeometry)
		if !m.geometryKind(path, ok, "*drawing.RectangleGeometry", n.Geometry) {
			return
		}
		m.value(path, "Rect", c.Rect, g.Rect)
		m.value(path, "RadiusX", c.RadiusX, g.RadiusX)
		m.value(path, "RadiusY", c.RadiusY, g.RadiusY)
		m.deep(path, "RectAnimation", c.RectAnimation, g.RectAnimation)
		m.deep(path, "RadiusXAnimation", c.RadiusXAnimation, g.RadiusXAnimation)
		m.deep(path, "RadiusYAnimation", c.RadiusYAnimation, g.RadiusYAnimation)

	case recording.DrawGeometryCommand:
		m.deep(path, "Brush", c.Brush, n.Brush)
		m.deep(path, "Pen", c.Pen, n.Pen)
		m.deep(path, "Geometry", c.Geometry, n.Geometry)
	}
}

func (m *matcher) geometryKind(path string, ok bool, want string, got drawing.Geometry) bool {
	if !ok {
		m.report(path, m.what+": Geometry has the wrong kind", want, fmt.Sprintf("%T", got))
	}
	return ok
}

// --------------------------------------------------------------------------
// Groups
// --------------------------------------------------------------------------

// groupAttr names the state a Push command sets on a group.
type groupAttr uint8

const (
	attrOpacity groupAttr = iota
	attrTransform
	attrClip
	attrGuidelines
	attrEffect
)

func (m *matcher) group(path string, g *drawing.DrawingGroup, cmd recording.Command) error {
	var set groupAttr
	switch c := cmd.(type) {
	case recording.PushClipCommand:
		set = attrClip
		m.deep(path, "ClipGeometry", c.Clip, g.ClipGeometry)
	case recording.PushOpacityCommand:
		set = attrOpacity
		m.value(path, "Opacity", c.Opacity, g.Opacity)
		m.deep(path, "OpacityAnimation", c.OpacityAnimation, g.OpacityAnimation)
	case recording.PushTransformCommand:
		set = attrTransform
		m.deep(path, "Transform", c.Transform, g.Transform)
	case recording.PushGuidelineSetCommand:
		set = attrGuidelines
		m.deep(path, "GuidelineSet", c.GuidelineSet, g.GuidelineSet)
	case recording.PushEffectCommand:
		set = attrEffect
		m.deep(path, "BitmapEffect", c.Effect, g.BitmapEffect)
		m.deep(path, "BitmapEffectInput", c.EffectInput, g.BitmapEffectInput)
	}
	m.defaults(path, g, set)

	if err := m.children(path, g.Children); err != nil {
		return err
	}
	return m.pop(path)
}

// defaults checks that every attribute except set is at its default.
func (m *matcher) defaults(path string, g *drawing.DrawingGroup, set groupAttr) {
	if set != attrOpacity {
		m.value(path, "Opacity", 1.0, g.Opacity)
		m.deep(path, "OpacityAnimation", nil, g.OpacityAnimation)
	}
	if set != attrTransform {
		m.deep(path, "Transform", nil, g.Transform)
	}
	if set != attrClip {
		m.deep(path, "ClipGeometry", nil, g.ClipGeometry)
	}
	if set != attrGuidelines {
		m.deep(path, "GuidelineSet", nil, g.GuidelineSet)
	}
	if set != attrEffect {
		m.deep(path, "BitmapEffect", nil, g.BitmapEffect)
		m.deep(path, "BitmapEffectInput", nil, g.BitmapEffectInput)
	}
}

// pop consumes the Pop closing a pushed group. Anything else before it is
// reported once and skipped.
func (m *matcher) pop(path string) error {
	cmd, ok := m.peek()
	if !ok {
		return m.exhausted(path)
	}
	if cmd.Type() == recording.CmdPop {
		m.pos++
		return nil
	}
	m.report(path, "expected Pop(), got "+cmd.Type().String(), "Pop", cmd.Type().String())
	return m.skipBracket(path)
}

// --------------------------------------------------------------------------
// Attribute checks
// --------------------------------------------------------------------------

func (m *matcher) value(path, attr string, want, got any) {
	if !m.v.eq.ValueEqual(want, got) {
		m.report(path, m.what+": "+attr+" differs", want, got)
	}
}

func (m *matcher) deep(path, attr string, want, got any) {
	if !m.v.eq.DeepEqual(want, got) {
		m.report(path, m.what+": "+attr+" differs", want, got)
	}
}
