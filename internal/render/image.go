package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"sync"

	"golang.org/x/image/draw"
)

// ErrFrameSize indicates an RGBA buffer that does not match width*height*4.
var ErrFrameSize = errors.New("render: frame buffer size mismatch")

func checkFrame(width, height int, rgba []byte) error {
	if width <= 0 || height <= 0 || len(rgba) != width*height*4 {
		return fmt.Errorf("%w: %dx%d with %d bytes", ErrFrameSize, width, height, len(rgba))
	}
	return nil
}

func toImage(width, height int, rgba []byte) *image.RGBA {
	return &image.RGBA{
		Pix:    rgba,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// Upscale enlarges src by an integer factor with nearest-neighbour sampling,
// keeping candidate regions sharp. Factors below 2 return src.
func Upscale(src *image.RGBA, factor int) *image.RGBA {
	if factor < 2 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// ImageSink keeps the most recent frame in memory.
type ImageSink struct {
	mu     sync.Mutex
	img    *image.RGBA
	frames int
}

func NewImageSink() *ImageSink {
	return &ImageSink{}
}

func (s *ImageSink) Present(width, height int, rgba []byte) error {
	if err := checkFrame(width, height, rgba); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.img = toImage(width, height, rgba)
	s.frames++
	return nil
}

// Image returns the last frame, or nil before the first Present.
func (s *ImageSink) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img
}

// Frames counts presented frames.
func (s *ImageSink) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// WritePNG encodes the last frame, enlarged by scale.
func (s *ImageSink) WritePNG(w io.Writer, scale int) error {
	img := s.Image()
	if img == nil {
		return errors.New("render: no frame presented")
	}
	return png.Encode(w, Upscale(img, scale))
}

// FileSink writes each frame to Path as PNG.
type FileSink struct {
	Path  string
	Scale int
}

func NewFileSink(path string, scale int) *FileSink {
	return &FileSink{Path: path, Scale: scale}
}

func (s *FileSink) Present(width, height int, rgba []byte) error {
	if err := checkFrame(width, height, rgba); err != nil {
		return err
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, Upscale(toImage(width, height, rgba), s.Scale)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
