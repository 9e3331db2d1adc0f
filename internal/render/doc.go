// Package render turns a winner grid into pixels.
//
// A [Renderer] maps each winner index to a [Palette] colour and hands a
// row-major RGBA buffer (4 bytes per pixel, alpha always 255) to a
// [PixelSink]. Sinks decide where pixels go:
//
//   - [ImageSink]: keeps the last frame as an *image.RGBA, encodes PNG
//   - [FileSink]: writes every frame to a PNG file
//   - [TerminalSink]: draws the frame with half-block characters
package render
