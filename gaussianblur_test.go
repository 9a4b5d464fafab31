package svgfx

import "testing"

// impulseSource builds a surface with a single opaque white pixel.
func impulseSource(t *testing.T, w, h, x, y int) *Pixmap {
	t.Helper()
	p, err := NewPixmap(w, h)
	if err != nil {
		t.Fatal(err)
	}
	p.setPixel(x, y, pixel{r: 255, g: 255, b: 255, a: 255})
	return p
}

func TestGaussianBlurNegativeDeviationFails(t *testing.T) {
	src := testSource(t, 16, 16)
	out, _ := renderOne(t, src, UserSpacePrimitive{
		Params: &GaussianBlur{In: SourceGraphic(), StdDeviationX: -1},
	})
	if out.Surface != src {
		t.Error("negative stdDeviation must fail the primitive")
	}
}

func TestGaussianBlurSpreadsImpulse(t *testing.T) {
	src := impulseSource(t, 17, 17, 8, 8)
	out, _ := renderOne(t, src, UserSpacePrimitive{
		Interp: ColorInterpolationSRGB,
		Params: &GaussianBlur{In: SourceGraphic(), StdDeviationX: 1, StdDeviationY: 1},
	})
	s := out.Surface

	center := s.at(8, 8).a
	if center == 0 || center == 255 {
		t.Fatalf("center alpha = %d, want spread but dominant", center)
	}
	for _, p := range [][2]int{{7, 8}, {9, 8}, {8, 7}, {8, 9}} {
		a := s.at(p[0], p[1]).a
		if a == 0 {
			t.Errorf("neighbor (%d, %d) received no energy", p[0], p[1])
		}
		if a >= center {
			t.Errorf("neighbor (%d, %d) alpha %d not below the center %d", p[0], p[1], a, center)
		}
	}
	// The separable kernel is symmetric in both axes.
	if s.at(7, 8).a != s.at(9, 8).a || s.at(8, 7).a != s.at(8, 9).a {
		t.Error("blur is not symmetric around the impulse")
	}
	if s.at(7, 8).a != s.at(8, 7).a {
		t.Error("equal deviations must blur both axes equally")
	}
}

func TestGaussianBlurSingleAxis(t *testing.T) {
	src := impulseSource(t, 17, 17, 8, 8)
	out, _ := renderOne(t, src, UserSpacePrimitive{
		Interp: ColorInterpolationSRGB,
		Params: &GaussianBlur{In: SourceGraphic(), StdDeviationX: 1},
	})
	s := out.Surface
	if s.at(7, 8).a == 0 {
		t.Error("horizontal neighbor should receive energy")
	}
	if s.at(8, 7).a != 0 {
		t.Error("vertical neighbor must stay untouched when stdDeviationY is 0")
	}
}

func TestGaussianBlurBoxPathUniformField(t *testing.T) {
	src, err := NewPixmap(32, 32)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			src.setPixel(x, y, pixel{r: 255, g: 255, b: 255, a: 255})
		}
	}

	// stdDeviation 3 takes the three-pass box approximation.
	out, _ := renderOne(t, src, UserSpacePrimitive{
		Interp: ColorInterpolationSRGB,
		Params: &GaussianBlur{In: SourceGraphic(), StdDeviationX: 3, StdDeviationY: 3},
	})
	s := out.Surface

	// Interior pixels of a uniform field are unchanged by any centered
	// averaging; edge pixels lose the window weight outside the region.
	if got := s.at(16, 16); got.a < 254 {
		t.Errorf("interior pixel = %+v, want near opaque", got)
	}
	if got := s.at(0, 0); got.a >= s.at(16, 16).a {
		t.Errorf("corner pixel %d should fall below the interior", got.a)
	}
}

func TestGaussianBlurScalesDeviationWithTransform(t *testing.T) {
	src := impulseSource(t, 33, 33, 16, 16)
	spec := userSpaceSpec(RectFromSize(33, 33), UserSpacePrimitive{
		Interp: ColorInterpolationSRGB,
		Params: &GaussianBlur{In: SourceGraphic(), StdDeviationX: 1, StdDeviationY: 1},
	})

	// With a 3x draw transform the user-space filter rect maps onto the
	// whole device surface and the deviation scales to 3 device pixels.
	spec.Filter.Rect = RectFromSize(11, 11)
	ctx, err := NewFilterContext(spec, src, RectFromSize(11, 11), Scale(3, 3))
	if err != nil {
		t.Fatalf("NewFilterContext: %v", err)
	}
	out, err := Render(spec, ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	// A 3-pixel deviation spreads energy well past the immediate
	// neighbors; an unscaled 1-pixel deviation would not reach (12, 16).
	if out.Surface.at(12, 16).a == 0 {
		t.Error("deviation was not scaled into device pixels")
	}
}
