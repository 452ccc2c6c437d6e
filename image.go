package basetypes

import (
	"bytes"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/basetypes/internal/textfmt"
)

// MaxImageBytes bounds the size of an image buffer. Requests above it fail
// with ErrAllocation instead of being attempted.
var MaxImageBytes = 1 << 30

// Image is a raster of width×height pixels with 1 to 4 byte components
// per pixel: 1 is luminance, 2 luminance and alpha, 3 RGB and 4 RGBA.
//
// Component c of pixel (x, y) is stored at (y*width + x)*components + c.
// Row 0 is the bottom row of the picture, as in scene files; ToImage and
// ImageFromStd flip rows when converting to and from top-down images.
//
// The zero value is an empty image. Image is not safe for concurrent
// mutation.
type Image struct {
	width  int
	height int
	comp   int
	data   []byte
}

// NewImage allocates a zeroed image.
func NewImage(width, height, comp int) (*Image, error) {
	size, err := imageSize(width, height, comp)
	if err != nil {
		return nil, err
	}
	data, err := allocate(size)
	if err != nil {
		return nil, err
	}
	return &Image{width: width, height: height, comp: comp, data: data}, nil
}

// NewImageFromBytes allocates an image and copies data into the start of
// its buffer. Data longer than width*height*comp is rejected with
// ErrDataTooLarge; shorter data leaves the remaining bytes zero.
func NewImageFromBytes[S ~[]byte](width, height, comp int, data S) (*Image, error) {
	img, err := NewImage(width, height, comp)
	if err != nil {
		return nil, err
	}
	if err := img.SetData(data); err != nil {
		return nil, err
	}
	return img, nil
}

// NewImageFromSeq is NewImageFromBytes over an arbitrary byte sequence.
// The sequence is consumed until it ends or exceeds the image size.
func NewImageFromSeq(width, height, comp int, seq iter.Seq[byte]) (*Image, error) {
	img, err := NewImage(width, height, comp)
	if err != nil {
		return nil, err
	}
	if err := img.SetDataSeq(seq); err != nil {
		return nil, err
	}
	return img, nil
}

// imageSize validates the dimensions and returns the buffer length they need.
func imageSize(width, height, comp int) (int, error) {
	if width < 0 || height < 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	empty := width == 0 || height == 0
	if comp < 1 || comp > 4 {
		if !(empty && comp == 0) {
			return 0, fmt.Errorf("%w: got %d", ErrInvalidComponents, comp)
		}
	}
	if empty {
		return 0, nil
	}
	if width > math.MaxInt/height || width*height > math.MaxInt/comp {
		return 0, fmt.Errorf("%w: %dx%dx%d overflows", ErrAllocation, width, height, comp)
	}
	size := width * height * comp
	if size > MaxImageBytes {
		return 0, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrAllocation, size, MaxImageBytes)
	}
	return size, nil
}

// allocate returns a zeroed buffer, reporting a failed allocation as
// ErrAllocation.
func allocate(size int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("basetypes: image allocation failed", "bytes", size, "panic", r)
			buf, err = nil, fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	return make([]byte, size), nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.height
}

// Components returns the number of bytes per pixel.
func (img *Image) Components() int {
	return img.comp
}

// Data returns the pixel buffer. It aliases the image; writes through it
// modify the image.
func (img *Image) Data() []byte {
	return img.data
}

// SetData copies data into the start of the buffer. It returns
// ErrDataTooLarge, leaving the image unchanged, if data does not fit.
func (img *Image) SetData(data []byte) error {
	if len(data) > len(img.data) {
		return fmt.Errorf("%w: %d bytes for %d", ErrDataTooLarge, len(data), len(img.data))
	}
	copy(img.data, data)
	return nil
}

// SetDataSeq copies a byte sequence into the start of the buffer. It
// returns ErrDataTooLarge, leaving the image unchanged, if the sequence
// yields more bytes than fit.
func (img *Image) SetDataSeq(seq iter.Seq[byte]) error {
	buf := make([]byte, 0, len(img.data))
	for b := range seq {
		if len(buf) == len(img.data) {
			return fmt.Errorf("%w: sequence longer than %d bytes", ErrDataTooLarge, len(img.data))
		}
		buf = append(buf, b)
	}
	copy(img.data, buf)
	return nil
}

// SetWidth changes the width, reallocating the buffer.
func (img *Image) SetWidth(width int) error {
	return img.reshape(width, img.height, img.comp)
}

// SetHeight changes the height, reallocating the buffer.
func (img *Image) SetHeight(height int) error {
	return img.reshape(img.width, height, img.comp)
}

// Resize changes both dimensions, reallocating the buffer.
func (img *Image) Resize(width, height int) error {
	return img.reshape(width, height, img.comp)
}

// SetComponents changes the number of components per pixel, reallocating
// the buffer.
func (img *Image) SetComponents(comp int) error {
	return img.reshape(img.width, img.height, comp)
}

// reshape reallocates the buffer for new dimensions. The overlapping
// prefix of the old bytes is kept; pixel positions are not preserved.
// On error the image is unchanged.
func (img *Image) reshape(width, height, comp int) error {
	size, err := imageSize(width, height, comp)
	if err != nil {
		return err
	}
	data, err := allocate(size)
	if err != nil {
		return err
	}
	copy(data, img.data)
	img.width, img.height, img.comp, img.data = width, height, comp, data
	return nil
}

// Pixel returns pixel (x, y) packed into an integer, channel 0 in the most
// significant used byte: for 4 components bits 31-24 hold channel 0 and
// bits 7-0 channel 3; for 1 component only bits 7-0 are used.
// It panics if (x, y) is outside the image.
func (img *Image) Pixel(x, y int) uint32 {
	img.checkCoord(x, y)
	return img.PixelAt(y*img.width + x)
}

// SetPixel stores a value packed as returned by Pixel. Bits above the
// used bytes are ignored. It panics if (x, y) is outside the image.
func (img *Image) SetPixel(x, y int, value uint32) {
	img.checkCoord(x, y)
	img.SetPixelAt(y*img.width+x, value)
}

// PixelAt returns the packed pixel at linear index i (y*width + x).
// It panics if i is outside [0, width*height).
func (img *Image) PixelAt(i int) uint32 {
	off := img.offset(i)
	var v uint32
	for c := 0; c < img.comp; c++ {
		v = v<<8 | uint32(img.data[off+c])
	}
	return v
}

// SetPixelAt stores a packed pixel at linear index i.
// It panics if i is outside [0, width*height).
func (img *Image) SetPixelAt(i int, value uint32) {
	off := img.offset(i)
	for c := img.comp - 1; c >= 0; c-- {
		img.data[off+c] = byte(value)
		value >>= 8
	}
}

func (img *Image) offset(i int) int {
	if i < 0 || i >= img.width*img.height {
		panic(fmt.Sprintf("basetypes: pixel index %d out of range [0,%d)", i, img.width*img.height))
	}
	return i * img.comp
}

func (img *Image) checkCoord(x, y int) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		panic(fmt.Sprintf("basetypes: pixel (%d,%d) outside %dx%d image", x, y, img.width, img.height))
	}
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	out := *img
	out.data = bytes.Clone(img.data)
	return &out
}

// Equal reports whether two images have the same dimensions, components
// and bytes. A nil image equals only another nil image.
func (img *Image) Equal(other *Image) bool {
	if img == nil || other == nil {
		return img == other
	}
	return img.width == other.width &&
		img.height == other.height &&
		img.comp == other.comp &&
		bytes.Equal(img.data, other.data)
}

// String returns the image in scene-file notation: width, height and
// component count followed by one hexadecimal value per pixel, e.g.
// "2 1 3 0xFF0000 0x00FF00".
func (img *Image) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d %d", img.width, img.height, img.comp)
	for i := 0; i < img.width*img.height; i++ {
		fmt.Fprintf(&b, " 0x%0*X", 2*img.comp, img.PixelAt(i))
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (img *Image) MarshalText() ([]byte, error) {
	return []byte(img.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The image is left
// unchanged on error.
func (img *Image) UnmarshalText(text []byte) error {
	parsed, err := ParseImage(string(text))
	if err != nil {
		return err
	}
	*img = *parsed
	return nil
}

// Scan implements fmt.Scanner, reading the notation produced by String.
func (img *Image) Scan(state fmt.ScanState, _ rune) error {
	parsed, err := decodeImage(func() (string, error) { return textfmt.Token(state) })
	if err != nil {
		return err
	}
	*img = *parsed
	return nil
}

// ParseImage parses the notation produced by String. Pixel values may be
// written in hexadecimal (0x prefix) or decimal.
func ParseImage(s string) (*Image, error) {
	fields := strings.Fields(s)
	next := func() (string, error) {
		if len(fields) == 0 {
			return "", nil
		}
		tok := fields[0]
		fields = fields[1:]
		return tok, nil
	}
	img, err := decodeImage(next)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		return nil, parseError("Image", fmt.Errorf("%d trailing values", len(fields)))
	}
	return img, nil
}

// decodeImage reads an image from a token source; an empty token means
// the input ended.
func decodeImage(next func() (string, error)) (*Image, error) {
	var header [3]int
	for i := range header {
		tok, err := next()
		if err != nil {
			return nil, parseError("Image", err)
		}
		if tok == "" {
			return nil, parseError("Image", fmt.Errorf("missing header value %d", i))
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, parseError("Image", err)
		}
		header[i] = v
	}

	width, height, comp := header[0], header[1], header[2]
	if _, err := imageSize(width, height, comp); err != nil {
		return nil, parseError("Image", err)
	}

	// Pixels are collected before the buffer is allocated so that a
	// header alone cannot force a large allocation.
	n := width * height
	limit := uint64(1) << (8 * uint(comp))
	var pixels []uint32
	for i := 0; i < n; i++ {
		tok, err := next()
		if err != nil {
			return nil, parseError("Image", err)
		}
		if tok == "" {
			return nil, parseError("Image", fmt.Errorf("missing pixel %d of %d", i, n))
		}
		v, err := strconv.ParseUint(tok, 0, 32)
		if err != nil {
			return nil, parseError("Image", err)
		}
		if v >= limit {
			return nil, parseError("Image", fmt.Errorf("pixel %d value %#x exceeds %d components", i, v, comp))
		}
		pixels = append(pixels, uint32(v))
	}

	img, err := NewImage(width, height, comp)
	if err != nil {
		return nil, parseError("Image", err)
	}
	for i, v := range pixels {
		img.SetPixelAt(i, v)
	}
	return img, nil
}
