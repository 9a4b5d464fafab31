package svgfx

import (
	"math"
	"testing"
)

func TestPorterDuffOperators(t *testing.T) {
	// Half-opaque red source over opaque blue destination, premultiplied.
	const (
		cs, as = 0.5, 0.5
		cd, ad = 0.0, 1.0
	)
	tests := []struct {
		op    CompositeOperator
		wantC float64
		wantA float64
	}{
		{CompositeOver, 0.5, 1.0},
		{CompositeIn, 0.5, 0.5},
		{CompositeOut, 0.0, 0.0},
		{CompositeAtop, 0.5, 1.0},
		{CompositeXor, 0.0, 0.5},
	}
	for _, tc := range tests {
		t.Run(tc.op.String(), func(t *testing.T) {
			if got := porterDuff(tc.op, cs, as, cd, ad); math.Abs(got-tc.wantC) > 1e-12 {
				t.Errorf("color = %v, want %v", got, tc.wantC)
			}
			if got := porterDuff(tc.op, as, as, ad, ad); math.Abs(got-tc.wantA) > 1e-12 {
				t.Errorf("alpha = %v, want %v", got, tc.wantA)
			}
		})
	}
}

func TestCompositePixmapsOver(t *testing.T) {
	src, _ := NewPixmap(2, 2)
	dst, _ := NewPixmap(2, 2)
	src.setPixel(0, 0, pixel{r: 255, a: 255})
	dst.setPixel(0, 0, pixel{b: 255, a: 255})
	dst.setPixel(1, 1, pixel{g: 255, a: 255})

	out, err := compositePixmaps(src, dst, CompositeOver, src.Bounds(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.at(0, 0); got != (pixel{r: 255, a: 255}) {
		t.Errorf("opaque source must win: %+v", got)
	}
	if got := out.at(1, 1); got != (pixel{g: 255, a: 255}) {
		t.Errorf("destination must show where source is clear: %+v", got)
	}
}

func TestCompositePixmapsRegionLimit(t *testing.T) {
	src, _ := NewPixmap(4, 4)
	dst, _ := NewPixmap(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.setPixel(x, y, pixel{r: 255, a: 255})
		}
	}
	out, err := compositePixmaps(src, dst, CompositeOver, NewIntRect(1, 1, 3, 3), nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.at(0, 0) != (pixel{}) {
		t.Error("pixels outside the region must stay transparent")
	}
	if out.at(2, 2) != (pixel{r: 255, a: 255}) {
		t.Error("pixels inside the region must be composed")
	}
}

func TestCompositeArithmetic(t *testing.T) {
	src, _ := NewPixmap(1, 1)
	dst, _ := NewPixmap(1, 1)
	src.setPixel(0, 0, pixel{r: 255, a: 255})
	dst.setPixel(0, 0, pixel{g: 255, a: 255})

	// k2 + k3 sums the inputs.
	out, err := compositeArithmetic(src, dst, 0, 0.5, 0.5, 0, src.Bounds(), nil)
	if err != nil {
		t.Fatal(err)
	}
	got := out.at(0, 0)
	if got.r != 128 || got.g != 128 || got.a != 255 {
		t.Errorf("sum pixel = %+v", got)
	}

	// k4 alone floods the region, clamped to [0, 1].
	out, err = compositeArithmetic(src, dst, 0, 0, 0, 2, src.Bounds(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.at(0, 0); got != (pixel{r: 255, g: 255, b: 255, a: 255}) {
		t.Errorf("k4 flood pixel = %+v", got)
	}
}

func TestCompositeArithmeticClampsColorToAlpha(t *testing.T) {
	src, _ := NewPixmap(1, 1)
	dst, _ := NewPixmap(1, 1)
	src.setPixel(0, 0, pixel{r: 255, a: 255})

	// Color term exceeds the alpha term; the result must stay premultiplied.
	out, err := compositeArithmetic(src, dst, 0, 1, 0, 0, src.Bounds(), nil)
	if err != nil {
		t.Fatal(err)
	}
	got := out.at(0, 0)
	if got.r > got.a {
		t.Errorf("color %d exceeds alpha %d", got.r, got.a)
	}
}

func TestBlendSeparableModes(t *testing.T) {
	tests := []struct {
		mode   BlendMode
		cb, cs float64
		want   float64
	}{
		{BlendNormal, 0.25, 0.75, 0.75},
		{BlendMultiply, 0.5, 0.5, 0.25},
		{BlendScreen, 0.5, 0.5, 0.75},
		{BlendDarken, 0.3, 0.7, 0.3},
		{BlendLighten, 0.3, 0.7, 0.7},
		{BlendDifference, 0.3, 0.7, 0.4},
		{BlendExclusion, 0.5, 0.5, 0.5},
		{BlendColorDodge, 0.0, 0.5, 0.0},
		{BlendColorDodge, 0.5, 1.0, 1.0},
		{BlendColorBurn, 1.0, 0.5, 1.0},
		{BlendColorBurn, 0.5, 0.0, 0.0},
		{BlendHardLight, 0.5, 0.25, 0.25},
		{BlendOverlay, 0.25, 0.5, 0.25},
	}
	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			if got := blendSeparable(tc.mode, tc.cb, tc.cs); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("blend(%v, %v) = %v, want %v", tc.cb, tc.cs, got, tc.want)
			}
		})
	}
}

func TestBlendNonSeparableLuminosity(t *testing.T) {
	cb := blendColor{r: 1, g: 0, b: 0}
	cs := blendColor{r: 1, g: 1, b: 1}
	got := blendNonSeparable(BlendLuminosity, cb, cs)
	if math.Abs(lum(got)-lum(cs)) > 1e-9 {
		t.Errorf("luminosity result lum = %v, want %v", lum(got), lum(cs))
	}
}

func TestBlendPixmapsMultiply(t *testing.T) {
	src, _ := NewPixmap(1, 1)
	dst, _ := NewPixmap(1, 1)
	src.setPixel(0, 0, pixel{r: 128, g: 128, b: 128, a: 255})
	dst.setPixel(0, 0, pixel{r: 128, g: 128, b: 128, a: 255})

	out, err := blendPixmaps(BlendMultiply, src, dst, src.Bounds(), nil)
	if err != nil {
		t.Fatal(err)
	}
	got := out.at(0, 0)
	if got.a != 255 {
		t.Fatalf("alpha = %d", got.a)
	}
	// 0.502 * 0.502 quantized.
	if got.r < 63 || got.r > 65 {
		t.Errorf("multiply channel = %d, want about 64", got.r)
	}
}

func TestBlendPixmapsNormalMatchesOver(t *testing.T) {
	src, _ := NewPixmap(2, 1)
	dst, _ := NewPixmap(2, 1)
	src.setPixel(0, 0, pixel{r: 100, a: 100})
	dst.setPixel(0, 0, pixel{b: 255, a: 255})
	dst.setPixel(1, 0, pixel{g: 200, a: 200})

	blended, err := blendPixmaps(BlendNormal, src, dst, src.Bounds(), nil)
	if err != nil {
		t.Fatal(err)
	}
	composed, err := compositePixmaps(src, dst, CompositeOver, src.Bounds(), nil)
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 2; x++ {
		b, c := blended.at(x, 0), composed.at(x, 0)
		for i, pair := range [][2]uint8{{b.r, c.r}, {b.g, c.g}, {b.b, c.b}, {b.a, c.a}} {
			d := int(pair[0]) - int(pair[1])
			if d < -1 || d > 1 {
				t.Errorf("pixel %d channel %d: normal blend %d vs over %d", x, i, pair[0], pair[1])
			}
		}
	}
}

func TestParseBlendMode(t *testing.T) {
	for mode, name := range blendModeNames {
		got, ok := ParseBlendMode(name)
		if !ok || got != mode {
			t.Errorf("ParseBlendMode(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseBlendMode("plus-lighter"); ok {
		t.Error("unknown keyword must not parse")
	}
}
