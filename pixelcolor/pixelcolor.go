// Package pixelcolor provides packed color types for embedded display
// panels and lossless-as-possible conversion between them.
//
// The supported formats are the common panel encodings: 15 and 16 bit RGB
// in both channel orders (RGB555, BGR555, RGB565, BGR565), 24 bit RGB
// (RGB888, BGR888), 8 bit grayscale and 1 bit monochrome. Every type
// implements image/color.Color, so the types plug into the standard image
// packages, and every ordered pair of types has a total conversion with
// round-half-up channel rescaling.
//
// All conversions are pure functions over value types: no allocation, no
// locking, safe to call from interrupt-style code paths.
package pixelcolor

import "image/color"

// Channel maxima for the supported bit depths.
const (
	max5 = 0x1F
	max6 = 0x3F
	max8 = 0xFF
)

// RGBColor exposes the red, green and blue magnitudes of a color together
// with the per-channel maximum values implied by its bit depth. Accessors
// always return red/green/blue regardless of the packed storage order.
//
// All RGB types and Gray8 satisfy it; the conversion functions in this
// package use only this surface, so the rescale logic is channel-order
// agnostic.
type RGBColor interface {
	color.Color
	R() uint8
	G() uint8
	B() uint8
	MaxRGB() (r, g, b uint8)
}

// convertChannel rescales a channel value from one bit depth to another.
// The half-offset implements round half up in pure integer arithmetic;
// uint16 holds the largest 8x8 bit product without overflow. Endpoints map
// to endpoints exactly, so narrow->wide->narrow round trips are lossless.
func convertChannel(v, fromMax, toMax uint8) uint8 {
	return uint8((uint16(v)*uint16(toMax) + uint16(fromMax)/2) / uint16(fromMax))
}

// rgba16 expands a channel to the 16 bit range of color.Color.RGBA.
func rgba16(v, max uint8) uint32 {
	e := uint32(convertChannel(v, max, max8))
	return e<<8 | e
}
