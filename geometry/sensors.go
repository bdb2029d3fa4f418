// SPDX-License-Identifier: MIT
package geometry

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mwtomo/config"
)

// SensorPositions places count sensors evenly along the room boundary.
//
// Square rooms are walked counter-clockwise from the (−L/2, −W/2) corner with
// arc spacing 2(L+W)/count, so 40 sensors in a 3 m room sit every 0.3 m.
// Circular rooms place sensor i at angle 2πi/count on a circle of diameter
// room.Length. Corner-origin rooms are shifted by (L/2, W/2).
//
// Errors: ErrBadCount, ErrUnsupportedGeometry, ErrUnsupportedOrigin.
func SensorPositions(room config.Room, count int) ([]Point, error) {
	if count <= 0 {
		return nil, fmt.Errorf("sensors=%d: %w", count, ErrBadCount)
	}
	var dx, dy float64
	switch room.Origin {
	case config.OriginCenter:
	case config.OriginCorner:
		dx, dy = room.Length/2, room.Width/2
	default:
		return nil, fmt.Errorf("room origin %q: %w", room.Origin, ErrUnsupportedOrigin)
	}

	out := make([]Point, count)
	switch room.Geometry {
	case config.GeometrySquare:
		step := 2 * (room.Length + room.Width) / float64(count)
		for i := range out {
			out[i] = perimeterPoint(room.Length, room.Width, float64(i)*step)
		}
	case config.GeometryCircle:
		r := room.Length / 2
		for i := range out {
			theta := 2 * math.Pi * float64(i) / float64(count)
			out[i] = Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
		}
	default:
		return nil, fmt.Errorf("room geometry %q: %w", room.Geometry, ErrUnsupportedGeometry)
	}

	for i := range out {
		out[i].X += dx
		out[i].Y += dy
	}

	return out, nil
}

// perimeterPoint returns the point at arc length t along the boundary of an
// l×w rectangle centred at the origin, starting at the lower-left corner and
// moving counter-clockwise.
func perimeterPoint(l, w, t float64) Point {
	hl, hw := l/2, w/2
	switch {
	case t <= l: // bottom edge, left to right
		return Point{X: -hl + t, Y: -hw}
	case t <= l+w: // right edge, upwards
		return Point{X: hl, Y: -hw + (t - l)}
	case t <= 2*l+w: // top edge, right to left
		return Point{X: hl - (t - l - w), Y: hw}
	default: // left edge, downwards
		return Point{X: -hl, Y: hw - (t - 2*l - w)}
	}
}

// SensorLinks enumerates transmitter/receiver pairs, transmitter in the outer
// loop and receiver in the inner loop. In transceiver mode the self pair is
// skipped, giving count·(count−1) links; otherwise all count² pairs are kept.
func SensorLinks(count int, transceiver bool) []Link {
	if count <= 0 {
		return nil
	}
	size := count * count
	if transceiver {
		size -= count
	}
	links := make([]Link, 0, size)
	var tx, rx int
	for tx = 0; tx < count; tx++ {
		for rx = 0; rx < count; rx++ {
			if transceiver && tx == rx {
				continue
			}
			links = append(links, Link{Tx: tx, Rx: rx})
		}
	}

	return links
}
