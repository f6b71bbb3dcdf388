package scenario

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/bmp"
	"golang.org/x/text/language"

	"github.com/gogpu/drawing"
)

// Shared resources. Scenarios reference them by pointer so commands and
// nodes from different scenarios share identity, the way a test suite
// reuses its constants.
var (
	translate10 = &drawing.TranslateTransform{X: 10, Y: 10}

	guidelineSet1 = drawing.NewGuidelineSet([]float64{0, 10.5}, []float64{5, 20})

	pointClock  = drawing.NewAnimationClock("point", 2*time.Second)
	rectClock   = drawing.NewAnimationClock("rect", 3*time.Second)
	doubleClock = drawing.NewAnimationClock("double", time.Second)

	mediaPlayer = drawing.NewMediaPlayer("movie.wmv")

	glyphRun1 = &drawing.GlyphRun{
		FontFamily:     "Go",
		EmSize:         12,
		BaselineOrigin: drawing.Pt(0, 12),
		GlyphIndices:   []uint16{43, 72, 79, 79, 82},
		AdvanceWidths:  []float64{8.7, 6.7, 2.7, 2.7, 6.7},
		Characters:     "Hello",
	}

	geometryDrawing1 = &drawing.GeometryDrawing{
		Brush:    drawing.Brushes.Orange,
		Pen:      drawing.NewPen(drawing.Brushes.Black, 1),
		Geometry: drawing.NewRectangleGeometry(drawing.Rect{Width: 20, Height: 20}),
	}
	imageDrawing1 = &drawing.ImageDrawing{
		ImageSource: drawing.NewBitmapImage("checker.png", checker(8)),
		Rect:        drawing.Rect{X: 5, Y: 5, Width: 16, Height: 16},
	}
	glyphRunDrawing1 = &drawing.GlyphRunDrawing{
		ForegroundBrush: drawing.Brushes.Green,
		GlyphRun:        glyphRun1,
	}
	videoDrawing1 = &drawing.VideoDrawing{
		Player: mediaPlayer,
		Rect:   drawing.Rect{Width: 32, Height: 24},
	}
	drawingGroup1 = func() *drawing.DrawingGroup {
		g := drawing.NewDrawingGroup(geometryDrawing1, glyphRunDrawing1)
		g.Opacity = 0.8
		return g
	}()

	bitmapEffect1      = &drawing.BlurBitmapEffect{Radius: 5}
	bitmapEffectInput1 = &drawing.BitmapEffectInput{
		AreaToApplyEffect:      drawing.Rect{Width: 0.5, Height: 0.5},
		AreaToApplyEffectUnits: drawing.BrushMappingRelativeToBoundingBox,
	}
)

var formattedText1 = sync.OnceValue(func() *drawing.FormattedText {
	return drawing.NewFormattedText("Hello, World", language.AmericanEnglish, nil, 14, drawing.Brushes.Black)
})

func checker(n int) image.Image {
	img := image.NewGray(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}
	return img
}

// woodBMP holds a small procedurally generated wood texture encoded as BMP.
var woodBMP = sync.OnceValues(func() ([]byte, error) {
	const w, h = 32, 24
	light := colorful.Color{R: 0.80, G: 0.60, B: 0.38}
	dark := colorful.Color{R: 0.45, G: 0.28, B: 0.14}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-w/2, float64(y)*2.5)
			t := 0.5 + 0.5*math.Sin(d*0.9)
			r, g, b := light.BlendLab(dark, t).Clamped().RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
})

// wood decodes a fresh "wood.bmp" image. Each call returns a distinct
// image source with identical content.
func wood() (*drawing.BitmapImage, error) {
	data, err := woodBMP()
	if err != nil {
		return nil, err
	}
	return drawing.LoadBitmap("wood.bmp", bytes.NewReader(data))
}
