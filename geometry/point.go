// SPDX-License-Identifier: MIT
package geometry

import "math"

// Point is a position in the room plane, in metres.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance |p − q|.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Link is an ordered transmitter/receiver pair of sensor indices.
type Link struct {
	Tx, Rx int
}

// Self reports whether the link pairs a sensor with itself.
func (l Link) Self() bool { return l.Tx == l.Rx }
