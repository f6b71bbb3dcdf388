package drawing

// BitmapEffect is a legacy raster effect applied to a group.
// The set of implementations is closed.
type BitmapEffect interface {
	bitmapEffectMarker()
}

// BlurBitmapEffect blurs content by Radius device-independent pixels.
type BlurBitmapEffect struct {
	Radius float64
}

// DropShadowBitmapEffect draws a shadow behind content.
type DropShadowBitmapEffect struct {
	Color       Color
	ShadowDepth float64
	Direction   float64
	Softness    float64
	Opacity     float64
}

func (*BlurBitmapEffect) bitmapEffectMarker()       {}
func (*DropShadowBitmapEffect) bitmapEffectMarker() {}

// BrushMappingMode selects the coordinate space of an area.
type BrushMappingMode uint8

const (
	BrushMappingAbsolute BrushMappingMode = iota
	BrushMappingRelativeToBoundingBox
)

// BitmapEffectInput restricts where a BitmapEffect applies.
type BitmapEffectInput struct {
	AreaToApplyEffect      Rect
	AreaToApplyEffectUnits BrushMappingMode
}
