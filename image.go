package svgfx

import "image"

// Image paints an externally supplied raster into the primitive
// subregion, scaled to fill it. The source may be any standard library
// image; resampling is bilinear.
type Image struct {
	Img image.Image
}

func (im *Image) Kind() string { return "feImage" }

func (im *Image) inputList() []Input { return nil }

func (im *Image) render(prim *UserSpacePrimitive, ctx *FilterContext) (FilterOutput, error) {
	if im.Img == nil {
		return FilterOutput{}, errInvalidInput
	}
	srcBounds := im.Img.Bounds()
	if srcBounds.Dx() <= 0 || srcBounds.Dy() <= 0 {
		return FilterOutput{}, errInvalidInput
	}

	bounds := newBoundsBuilder(ctx).compute(prim)
	if bounds.clipped.IsEmpty() {
		surface, err := ctx.newSurface(KindSRGB)
		if err != nil {
			return FilterOutput{}, err
		}
		return FilterOutput{Surface: surface, Bounds: bounds.clipped}, nil
	}

	// Map the image rectangle onto the unclipped subregion so partial
	// clipping cuts the image instead of squeezing it.
	place := bounds.unclipped
	m := Translate(place.MinX, place.MinY).
		Multiply(Scale(place.Width()/float64(srcBounds.Dx()), place.Height()/float64(srcBounds.Dy()))).
		Multiply(Translate(-float64(srcBounds.Min.X), -float64(srcBounds.Min.Y)))

	scratch, err := ctx.newSurface(KindSRGB)
	if err != nil {
		return FilterOutput{}, err
	}
	scratch.DrawImage(im.Img, m)

	surface, err := scratch.CopyRegion(bounds.clipped, ctx.alloc)
	if err != nil {
		return FilterOutput{}, err
	}
	return FilterOutput{Surface: surface, Bounds: bounds.clipped}, nil
}
