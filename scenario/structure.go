package scenario

import (
	"errors"
	"fmt"

	"github.com/gogpu/drawing"
	"github.com/gogpu/drawing/recording"
)

func init() {
	for i, s := range structure {
		Register(fmt.Sprintf("structure/%02d", i+1), s)
	}
}

var (
	brushes = drawing.Brushes
	pt      = drawing.Pt
)

func rect(x, y, w, h float64) drawing.Rect {
	return drawing.Rect{X: x, Y: y, Width: w, Height: h}
}

func redPen() *drawing.Pen { return drawing.NewPen(brushes.Red, 5) }

func clip() drawing.Geometry { return drawing.NewRectangleGeometry(rect(1.5, -1.5, 1.5, 1.5)) }

// everyDraw issues each draw operation once.
func everyDraw(rec *recording.Recorder) error {
	img, err := wood()
	if err != nil {
		return err
	}
	rec.DrawLine(redPen(), pt(0, 0), pt(100, 100))
	rec.DrawEllipse(brushes.Pink, drawing.NewPen(brushes.Yellow, 4), pt(15, 15), 3, 8)
	rec.DrawDrawing(geometryDrawing1)
	rec.DrawDrawing(imageDrawing1)
	rec.DrawDrawing(glyphRunDrawing1)
	rec.DrawDrawing(videoDrawing1)
	rec.DrawDrawing(drawingGroup1)
	rec.DrawRectangle(brushes.Blue, drawing.NewPen(brushes.Green, 5), rect(0, 0, 10, 10))
	rec.DrawRoundedRectangle(brushes.Black, drawing.NewPen(brushes.White, 2), rect(0, 0, 10, 11), 5, 3)
	rec.DrawGeometry(brushes.Cyan, drawing.NewPen(brushes.Red, 9), drawing.NewRectangleGeometry(rect(10, 10, 50, 50)))
	rec.DrawImage(img, rect(9, 4, 59, 35))
	rec.DrawGlyphRun(brushes.Red, glyphRun1)
	rec.DrawText(formattedText1(), pt(1.5, -1.5))
	rec.DrawVideo(mediaPlayer, rect(1.5, -1.5, 1.5, 1.5))
	return nil
}

// animatedDraws issues each draw operation that takes clocks once.
func animatedDraws(rec *recording.Recorder) error {
	img, err := wood()
	if err != nil {
		return err
	}
	rec.DrawLineAnimated(redPen(), pt(10, 10), pointClock, pt(50, 50), pointClock)
	rec.DrawRectangleAnimated(brushes.Red, redPen(), rect(10, 10, 10, 10), rectClock)
	rec.DrawRoundedRectangleAnimated(brushes.Red, redPen(), rect(10, 10, 10, 10), rectClock, 5, doubleClock, 6, doubleClock)
	rec.DrawEllipseAnimated(brushes.Red, drawing.NewPen(brushes.Blue, 5), pt(10, 10), pointClock, 5, doubleClock, 7, doubleClock)
	rec.DrawImageAnimated(img, rect(9, 4, 59, 35), rectClock)
	rec.DrawVideoAnimated(mediaPlayer, rect(1.5, -1.5, 1.5, 1.5), rectClock)
	return nil
}

var structure = []Scenario{
	{
		Description: "every draw operation",
		Record:      everyDraw,
	},
	{
		Description: "PushTransform followed by every draw operation",
		Record: func(rec *recording.Recorder) error {
			rec.PushTransform(translate10)
			return everyDraw(rec)
		},
	},
	{
		Description: "PushOpacity followed by every draw operation",
		Record: func(rec *recording.Recorder) error {
			rec.PushOpacity(0.5)
			return everyDraw(rec)
		},
	},
	{
		Description: "PushClip followed by every draw operation",
		Record: func(rec *recording.Recorder) error {
			rec.PushClip(clip())
			return everyDraw(rec)
		},
	},
	{
		Description: "nested pushes and pops",
		Record: func(rec *recording.Recorder) error {
			img, err := wood()
			if err != nil {
				return err
			}
			var errs []error
			rec.PushTransform(translate10)
			rec.DrawLine(redPen(), pt(0, 0), pt(100, 100))
			rec.PushOpacity(0.5)
			rec.DrawEllipse(brushes.Pink, drawing.NewPen(brushes.Yellow, 4), pt(15, 15), 3, 8)
			rec.PushClip(clip())
			rec.DrawDrawing(geometryDrawing1)
			rec.PushGuidelineSet(guidelineSet1)
			rec.DrawText(formattedText1(), pt(1.5, -1.5))
			rec.PushTransform(translate10)
			rec.DrawDrawing(imageDrawing1)
			rec.PushOpacity(0.5)
			rec.DrawDrawing(glyphRunDrawing1)
			rec.PushClip(clip())
			rec.DrawDrawing(videoDrawing1)
			rec.PushGuidelineSet(guidelineSet1)
			rec.DrawText(formattedText1(), pt(1.5, -1.5))
			errs = append(errs, rec.Pop())
			rec.DrawDrawing(drawingGroup1)
			errs = append(errs, rec.Pop())
			rec.DrawRectangle(brushes.Blue, drawing.NewPen(brushes.Green, 5), rect(0, 0, 10, 10))
			errs = append(errs, rec.Pop())
			rec.DrawRoundedRectangle(brushes.Black, drawing.NewPen(brushes.White, 2), rect(0, 0, 10, 11), 5, 3)
			errs = append(errs, rec.Pop())
			rec.DrawGeometry(brushes.Cyan, drawing.NewPen(brushes.Red, 9), drawing.NewRectangleGeometry(rect(10, 10, 50, 50)))
			errs = append(errs, rec.Pop())
			rec.DrawImage(img, rect(9, 4, 59, 35))
			errs = append(errs, rec.Pop())
			rec.DrawGlyphRun(brushes.Red, glyphRun1)
			errs = append(errs, rec.Pop())
			rec.DrawText(formattedText1(), pt(1.5, -1.5))
			errs = append(errs, rec.Pop())
			rec.DrawVideo(mediaPlayer, rect(1.5, -1.5, 1.5, 1.5))
			return errors.Join(errs...)
		},
	},
	{
		Description: "pushes left open",
		Record: func(rec *recording.Recorder) error {
			img, err := wood()
			if err != nil {
				return err
			}
			rec.PushTransform(translate10)
			rec.DrawLine(redPen(), pt(0, 0), pt(100, 100))
			rec.PushOpacity(0.5)
			rec.DrawEllipse(brushes.Pink, drawing.NewPen(brushes.Yellow, 4), pt(15, 15), 3, 8)
			rec.PushClip(clip())
			rec.DrawDrawing(geometryDrawing1)
			rec.PushTransform(translate10)
			rec.DrawDrawing(imageDrawing1)
			rec.PushOpacity(0.5)
			rec.DrawDrawing(glyphRunDrawing1)
			rec.PushClip(clip())
			rec.DrawDrawing(videoDrawing1)
			rec.PushGuidelineSet(guidelineSet1)
			rec.DrawDrawing(drawingGroup1)
			rec.DrawRectangle(brushes.Blue, drawing.NewPen(brushes.Green, 5), rect(0, 0, 10, 10))
			rec.DrawRoundedRectangle(brushes.Black, drawing.NewPen(brushes.White, 2), rect(0, 0, 10, 11), 5, 3)
			rec.DrawGeometry(brushes.Cyan, drawing.NewPen(brushes.Red, 9), drawing.NewRectangleGeometry(rect(10, 10, 50, 50)))
			rec.DrawImage(img, rect(9, 4, 59, 35))
			rec.DrawGlyphRun(brushes.Red, glyphRun1)
			rec.DrawText(formattedText1(), pt(1.5, -1.5))
			rec.DrawVideo(mediaPlayer, rect(1.5, -1.5, 1.5, 1.5))
			return nil
		},
	},
	{
		Description: "consecutive pushes",
		Record: func(rec *recording.Recorder) error {
			rec.PushTransform(translate10)
			rec.PushTransform(translate10)
			rec.PushOpacity(0.5)
			rec.PushOpacity(0.5)
			rec.PushClip(clip())
			rec.PushClip(clip())
			rec.PushGuidelineSet(guidelineSet1)
			rec.PushGuidelineSet(guidelineSet1)
			return everyDraw(rec)
		},
	},
	{
		Description: "animated draws",
		Record: func(rec *recording.Recorder) error {
			img, err := wood()
			if err != nil {
				return err
			}
			for range 2 {
				rec.DrawLineAnimated(redPen(), pt(10, 10), pointClock, pt(50, 50), pointClock)
			}
			for range 2 {
				rec.DrawRectangleAnimated(brushes.Red, redPen(), rect(10, 10, 10, 10), rectClock)
			}
			for range 2 {
				rec.DrawRoundedRectangleAnimated(brushes.Red, redPen(), rect(10, 10, 10, 10), rectClock, 5, doubleClock, 6, doubleClock)
			}
			for range 2 {
				rec.DrawEllipseAnimated(brushes.Red, drawing.NewPen(brushes.Blue, 5), pt(10, 10), pointClock, 5, doubleClock, 7, doubleClock)
			}
			for range 2 {
				rec.DrawImageAnimated(img, rect(9, 4, 59, 35), rectClock)
			}
			for range 2 {
				rec.DrawVideoAnimated(mediaPlayer, rect(1.5, -1.5, 1.5, 1.5), rectClock)
			}
			return nil
		},
	},
	{
		Description: "animated draws and pushes with pops",
		Record: func(rec *recording.Recorder) error {
			var errs []error
			errs = append(errs, animatedDraws(rec))
			rec.PushOpacityAnimated(0.5, doubleClock)
			rec.PushOpacityAnimated(0.5, doubleClock)
			rec.PushOpacityAnimated(0.5, doubleClock)
			errs = append(errs, rec.Pop())
			errs = append(errs, animatedDraws(rec))
			errs = append(errs, rec.Pop())
			errs = append(errs, animatedDraws(rec))
			errs = append(errs, rec.Pop())
			errs = append(errs, animatedDraws(rec))
			rec.PushOpacityAnimated(0.5, doubleClock)
			errs = append(errs, animatedDraws(rec))
			return errors.Join(errs...)
		},
	},
	{
		Description: "nil pen in DrawLine",
		Record: func(rec *recording.Recorder) error {
			rec.DrawLine(nil, pt(10, 10), pt(50, 50))
			rec.DrawLineAnimated(nil, pt(10, 10), pointClock, pt(50, 50), pointClock)
			return nil
		},
	},
	{
		Description: "nil brush or pen in DrawRectangle",
		Record: func(rec *recording.Recorder) error {
			r := rect(10, 10, 10, 10)
			rec.DrawRectangle(nil, redPen(), r)
			rec.DrawRectangleAnimated(nil, redPen(), r, rectClock)
			rec.DrawRectangle(brushes.Red, nil, r)
			rec.DrawRectangleAnimated(brushes.Red, nil, r, rectClock)
			rec.DrawRectangle(nil, nil, r)
			rec.DrawRectangleAnimated(nil, nil, r, rectClock)
			return nil
		},
	},
	{
		Description: "nil brush or pen in DrawRoundedRectangle",
		Record: func(rec *recording.Recorder) error {
			r := rect(10, 10, 10, 10)
			rec.DrawRoundedRectangle(nil, redPen(), r, 5, 6)
			rec.DrawRoundedRectangleAnimated(nil, redPen(), r, rectClock, 5, doubleClock, 6, doubleClock)
			rec.DrawRoundedRectangle(brushes.Red, nil, r, 5, 6)
			rec.DrawRoundedRectangleAnimated(brushes.Red, nil, r, rectClock, 5, doubleClock, 6, doubleClock)
			rec.DrawRoundedRectangle(nil, nil, r, 5, 6)
			rec.DrawRoundedRectangleAnimated(nil, nil, r, rectClock, 5, doubleClock, 6, doubleClock)
			return nil
		},
	},
	{
		Description: "nil brush or pen in DrawEllipse",
		Record: func(rec *recording.Recorder) error {
			bluePen := func() *drawing.Pen { return drawing.NewPen(brushes.Blue, 5) }
			rec.DrawEllipse(nil, bluePen(), pt(10, 10), 5, 7)
			rec.DrawEllipseAnimated(nil, bluePen(), pt(10, 10), pointClock, 5, doubleClock, 7, doubleClock)
			rec.DrawEllipse(brushes.Red, nil, pt(10, 10), 5, 7)
			rec.DrawEllipseAnimated(brushes.Red, nil, pt(10, 10), pointClock, 5, doubleClock, 7, doubleClock)
			rec.DrawEllipse(nil, nil, pt(10, 10), 5, 7)
			rec.DrawEllipseAnimated(nil, nil, pt(10, 10), pointClock, 5, doubleClock, 7, doubleClock)
			return nil
		},
	},
	{
		Description: "nil brush, pen or geometry in DrawGeometry",
		Record: func(rec *recording.Recorder) error {
			geom := func() drawing.Geometry { return drawing.NewRectangleGeometry(rect(10, 10, 50, 50)) }
			pen := func() *drawing.Pen { return drawing.NewPen(brushes.Red, 9) }
			rec.DrawGeometry(nil, pen(), geom())
			rec.DrawGeometry(brushes.Cyan, nil, geom())
			rec.DrawGeometry(brushes.Cyan, pen(), nil)
			rec.DrawGeometry(nil, nil, geom())
			rec.DrawGeometry(nil, pen(), nil)
			rec.DrawGeometry(brushes.Cyan, nil, nil)
			rec.DrawGeometry(nil, nil, nil)
			return nil
		},
	},
	{
		Description: "nil image or empty rect in DrawImage",
		Record: func(rec *recording.Recorder) error {
			a, err := wood()
			if err != nil {
				return err
			}
			b, err := wood()
			if err != nil {
				return err
			}
			rec.DrawImage(nil, rect(9, 4, 59, 35))
			rec.DrawImageAnimated(nil, rect(9, 4, 59, 35), rectClock)
			rec.DrawImage(a, drawing.EmptyRect())
			rec.DrawImageAnimated(b, drawing.EmptyRect(), rectClock)
			rec.DrawImage(nil, drawing.EmptyRect())
			rec.DrawImageAnimated(nil, drawing.EmptyRect(), rectClock)
			return nil
		},
	},
	{
		Description: "nil brush or run in DrawGlyphRun",
		Record: func(rec *recording.Recorder) error {
			rec.DrawGlyphRun(nil, glyphRun1)
			rec.DrawGlyphRun(brushes.Red, nil)
			rec.DrawGlyphRun(nil, nil)
			return nil
		},
	},
	{
		Description: "nil player or empty rect in DrawVideo",
		Record: func(rec *recording.Recorder) error {
			rec.DrawVideo(nil, rect(1.5, -1.5, 1.5, 1.5))
			rec.DrawVideoAnimated(nil, rect(1.5, -1.5, 1.5, 1.5), rectClock)
			rec.DrawVideo(mediaPlayer, drawing.EmptyRect())
			rec.DrawVideoAnimated(mediaPlayer, drawing.EmptyRect(), rectClock)
			rec.DrawVideo(nil, drawing.EmptyRect())
			rec.DrawVideoAnimated(nil, drawing.EmptyRect(), rectClock)
			return nil
		},
	},
	{
		Description: "nil drawing in DrawDrawing",
		Record: func(rec *recording.Recorder) error {
			rec.DrawDrawing(nil)
			return nil
		},
	},
	{
		Description: "nil and identity transform in PushTransform",
		Record: func(rec *recording.Recorder) error {
			rec.PushTransform(nil)
			rec.PushTransform(drawing.IdentityTransform())
			return nil
		},
	},
	{
		Description: "PushOpacity with 0 and 1, with and without animation",
		Record: func(rec *recording.Recorder) error {
			rec.PushOpacity(0)
			rec.PushOpacityAnimated(0, doubleClock)
			rec.PushOpacity(1)
			rec.PushOpacityAnimated(1, doubleClock)
			return nil
		},
	},
	{
		Description: "nil clip in PushClip",
		Record: func(rec *recording.Recorder) error {
			rec.PushClip(nil)
			return nil
		},
	},
	{
		Description: "nil text in DrawText",
		Record: func(rec *recording.Recorder) error {
			rec.DrawText(nil, pt(1.5, -1.5))
			return nil
		},
	},
	{
		Description: "Open clears the group's previous content",
		Target:      TargetGroup,
		Record: func(rec *recording.Recorder) error {
			rec.DrawLineAnimated(redPen(), pt(10, 10), pointClock, pt(50, 50), pointClock)
			if err := rec.Close(); err != nil {
				return err
			}
			if err := rec.Open(); err != nil {
				return err
			}
			rec.DrawRectangleAnimated(brushes.Red, redPen(), rect(10, 10, 10, 10), rectClock)
			return nil
		},
	},
	{
		Description: "Append keeps the group's previous content",
		Target:      TargetGroup,
		Record: func(rec *recording.Recorder) error {
			rec.DrawLineAnimated(redPen(), pt(10, 10), pointClock, pt(50, 50), pointClock)
			if err := rec.Close(); err != nil {
				return err
			}
			if err := rec.Append(); err != nil {
				return err
			}
			rec.DrawRectangleAnimated(brushes.Red, redPen(), rect(10, 10, 10, 10), rectClock)
			return nil
		},
	},
	{
		Description: "nil guideline set in PushGuidelineSet",
		Record: func(rec *recording.Recorder) error {
			rec.PushGuidelineSet(nil)
			return nil
		},
	},
	{
		Description: "PushEffect with an effect input",
		Record: func(rec *recording.Recorder) error {
			rec.PushEffect(bitmapEffect1, bitmapEffectInput1)
			return nil
		},
	},
}
