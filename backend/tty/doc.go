// Package tty provides the direct-display renderer backend.
//
// A tty Renderer composites through an embedded gles renderer and presents
// the result on a Display. When the topmost element covers the whole
// output, is fully opaque and exposes its client buffer through
// UnderlyingStorage, the buffer is scanned out directly and nothing is
// composited.
//
// Frames opened by a tty Renderer wrap a gles frame; code that needs gles
// frame operations reaches them through Frame.AsGlesFrame.
package tty
