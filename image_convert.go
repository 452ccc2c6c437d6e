package basetypes

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// ToImage converts img to a standard top-down image. One-component images
// become *image.Gray; all others become *image.NRGBA with luminance
// replicated into red, green and blue and missing alpha set opaque.
func (img *Image) ToImage() image.Image {
	rect := image.Rect(0, 0, img.width, img.height)
	if img.comp == 1 {
		out := image.NewGray(rect)
		for y := 0; y < img.height; y++ {
			src := img.data[y*img.width : (y+1)*img.width]
			copy(out.Pix[out.PixOffset(0, img.height-1-y):], src)
		}
		return out
	}

	out := image.NewNRGBA(rect)
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			out.SetNRGBA(x, img.height-1-y, img.nrgbaAt(x, y))
		}
	}
	return out
}

// nrgbaAt widens pixel (x, y) to four channels.
func (img *Image) nrgbaAt(x, y int) color.NRGBA {
	p := img.data[(y*img.width+x)*img.comp:]
	switch img.comp {
	case 1:
		return color.NRGBA{R: p[0], G: p[0], B: p[0], A: 0xff}
	case 2:
		return color.NRGBA{R: p[0], G: p[0], B: p[0], A: p[1]}
	case 3:
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: 0xff}
	default:
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
}

// ImageFromStd converts a standard top-down image into an Image with comp
// components. Color is reduced to luminance for 1 and 2 components.
func ImageFromStd(src image.Image, comp int) (*Image, error) {
	b := src.Bounds()
	img, err := NewImage(b.Dx(), b.Dy(), comp)
	if err != nil {
		return nil, err
	}
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+img.height-1-y)).(color.NRGBA)
			p := img.data[(y*img.width+x)*comp:]
			switch comp {
			case 1, 2:
				opaque := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
				p[0] = color.GrayModel.Convert(opaque).(color.Gray).Y
				if comp == 2 {
					p[1] = c.A
				}
			case 3:
				p[0], p[1], p[2] = c.R, c.G, c.B
			default:
				p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
			}
		}
	}
	return img, nil
}

// Scaled returns a copy of img resampled to width×height with bilinear
// filtering. Unlike Resize, the picture content is preserved.
func (img *Image) Scaled(width, height int) (*Image, error) {
	if img.width == 0 || img.height == 0 || width == 0 || height == 0 {
		return NewImage(width, height, img.comp)
	}
	if _, err := imageSize(width, height, img.comp); err != nil {
		return nil, err
	}
	src := img.ToImage()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return ImageFromStd(dst, img.comp)
}

// ExpandRGBA returns a four-component copy of img suitable for upload as
// an RGBA8 texture.
func (img *Image) ExpandRGBA() (*Image, error) {
	if img.comp == 4 {
		return img.Clone(), nil
	}
	out, err := NewImage(img.width, img.height, 4)
	if err != nil {
		return nil, err
	}
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			c := img.nrgbaAt(x, y)
			copy(out.data[(y*img.width+x)*4:], []byte{c.R, c.G, c.B, c.A})
		}
	}
	return out, nil
}

// TextureFormat returns the GPU texture format whose texel layout matches
// the buffer byte for byte. Two- and three-component images have no such
// format and report TextureFormatUndefined; convert them with ExpandRGBA.
func (img *Image) TextureFormat() gputypes.TextureFormat {
	switch img.comp {
	case 1:
		return gputypes.TextureFormatR8Unorm
	case 4:
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// Extent returns the texture size of the image.
func (img *Image) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              safeIntToUint32(img.width),
		Height:             safeIntToUint32(img.height),
		DepthOrArrayLayers: 1,
	}
}

func safeIntToUint32(v int) uint32 {
	if v < 0 {
		return 0
	}
	if uint64(v) > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}
