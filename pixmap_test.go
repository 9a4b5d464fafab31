package svgfx

import "testing"

func TestPixmapAllocRejectsBadSizes(t *testing.T) {
	for _, tc := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {maxSurfaceDim + 1, 5}} {
		if _, err := NewPixmap(tc[0], tc[1]); !isFatal(err) {
			t.Errorf("NewPixmap(%d, %d) = %v, want AllocError", tc[0], tc[1], err)
		}
	}
}

func TestPixmapExtractAlpha(t *testing.T) {
	p, err := NewPixmap(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	p.setPixel(1, 1, pixel{r: 100, g: 50, b: 25, a: 200})

	alpha, err := p.ExtractAlpha(p.Bounds(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := alpha.at(1, 1); got != (pixel{a: 200}) {
		t.Errorf("alpha pixel = %+v, want color channels zeroed", got)
	}
	if alpha.Kind() != KindAlphaOnly {
		t.Errorf("kind = %v, want alphaOnly", alpha.Kind())
	}
}

func TestPixmapOffset(t *testing.T) {
	p, err := NewPixmap(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	p.setPixel(2, 2, pixel{r: 255, a: 255})

	region := NewIntRect(0, 0, 8, 8)
	out, err := p.Offset(region, 3, 1, region, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.at(5, 3); got != (pixel{r: 255, a: 255}) {
		t.Errorf("shifted pixel = %+v", got)
	}
	if got := out.at(2, 2); got != (pixel{}) {
		t.Errorf("origin should be vacated, got %+v", got)
	}
}

func TestPixmapOffsetClipsToRegion(t *testing.T) {
	p, err := NewPixmap(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	p.setPixel(7, 7, pixel{g: 255, a: 255})

	clip := NewIntRect(0, 0, 6, 6)
	out, err := p.Offset(p.Bounds(), 2, 2, clip, nil)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if !clip.Contains(x, y) && out.at(x, y) != (pixel{}) {
				t.Fatalf("pixel (%d, %d) written outside the clip", x, y)
			}
		}
	}
}

func TestFloodPixmapRespectsRegion(t *testing.T) {
	region := NewIntRect(1, 1, 3, 3)
	p, err := floodPixmap(4, 4, region, RGBA{R: 0, G: 0, B: 1, A: 0.5}, KindSRGB, nil)
	if err != nil {
		t.Fatal(err)
	}
	inside := p.at(1, 1)
	if inside.a != 128 || inside.b != 128 {
		t.Errorf("flooded pixel = %+v, want half-opaque premultiplied blue", inside)
	}
	if p.at(0, 0) != (pixel{}) {
		t.Error("pixels outside the region must stay transparent")
	}
}

func TestPixmapPaintTiled(t *testing.T) {
	tile, err := NewPixmap(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	tile.setPixel(0, 0, pixel{r: 255, a: 255})

	p, err := NewPixmap(6, 6)
	if err != nil {
		t.Fatal(err)
	}
	p.paintTiled(p.Bounds(), tile, 0, 0)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := pixel{}
			if x%2 == 0 && y%2 == 0 {
				want = pixel{r: 255, a: 255}
			}
			if got := p.at(x, y); got != want {
				t.Fatalf("tiled pixel (%d, %d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestPixmapUnpremultiply(t *testing.T) {
	p, err := NewPixmap(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	p.setPixel(0, 0, pixel{r: 128, g: 64, b: 0, a: 128})
	p.Unpremultiply()

	got := p.at(0, 0)
	if got.r != 255 || got.a != 128 {
		t.Errorf("unpremultiplied pixel = %+v", got)
	}
}

func TestConvertKindRoundTripKeepsAlpha(t *testing.T) {
	p, err := NewPixmap(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	p.setPixel(0, 0, pixel{r: 200, g: 100, b: 40, a: 200})

	linear, err := p.convertKind(KindLinearRGB, p.Bounds(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if linear == p {
		t.Fatal("conversion must not mutate the source surface")
	}
	if linear.Kind() != KindLinearRGB {
		t.Errorf("kind = %v", linear.Kind())
	}
	if linear.at(0, 0).a != 200 {
		t.Errorf("alpha changed across conversion: %+v", linear.at(0, 0))
	}

	back, err := linear.convertKind(KindSRGB, p.Bounds(), nil)
	if err != nil {
		t.Fatal(err)
	}
	orig := p.at(0, 0)
	got := back.at(0, 0)
	// 8-bit table round trips are near, not exact.
	for i, pair := range [][2]uint8{{got.r, orig.r}, {got.g, orig.g}, {got.b, orig.b}} {
		d := int(pair[0]) - int(pair[1])
		if d < -2 || d > 2 {
			t.Errorf("channel %d drifted: got %d, want about %d", i, pair[0], pair[1])
		}
	}
}

func TestConvertKindAlphaOnlyPassesThrough(t *testing.T) {
	p, err := newPixmap(2, 2, KindAlphaOnly, nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := p.convertKind(KindLinearRGB, p.Bounds(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != p {
		t.Error("alpha-only surfaces are exempt from conversion")
	}
}
