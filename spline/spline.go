// seehuhn.de/go/scatter - electron scattering tables for Monte Carlo simulation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package spline fits tabulated samples with continuous curves and
// integrates them.
//
// The fitting and integration work is delegated to gonum's interp and
// integrate packages.  The antiderivative of a piecewise linear curve is
// piecewise quadratic and is evaluated exactly.
package spline

import (
	"errors"
	"slices"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"
)

// Curve is a continuous curve through a set of control points.
// Outside the control points the curve is extended by constants.
type Curve struct {
	x, y []float64
	fit  interp.PiecewiseLinear
}

// Linear returns the piecewise linear curve through the points (x[i], y[i]).
// The values in x must be strictly increasing.
func Linear(x, y []float64) (*Curve, error) {
	switch {
	case len(x) != len(y):
		return nil, ErrLengthMismatch
	case len(x) < 2:
		return nil, ErrTooFewPoints
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, ErrNotIncreasing
		}
	}

	c := &Curve{
		x: slices.Clone(x),
		y: slices.Clone(y),
	}
	err := c.fit.Fit(c.x, c.y)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Domain returns the first and last control point abscissae.
func (c *Curve) Domain() (float64, float64) {
	return c.x[0], c.x[len(c.x)-1]
}

// Eval evaluates the curve at x.
func (c *Curve) Eval(x float64) float64 {
	return c.fit.Predict(x)
}

// Integrate returns the antiderivative of c which vanishes at anchor.
func (c *Curve) Integrate(anchor float64) *Cumulative {
	n := len(c.x)
	knots := make([]float64, n)
	for i := 1; i < n; i++ {
		knots[i] = knots[i-1] + integrate.Trapezoidal(c.x[i-1:i+1], c.y[i-1:i+1])
	}
	res := &Cumulative{
		curve: c,
		knots: knots,
	}
	res.offset = res.fromStart(anchor)
	return res
}

// Cumulative is the antiderivative of a [Curve].
type Cumulative struct {
	curve  *Curve
	knots  []float64
	offset float64
}

// Eval returns the integral of the underlying curve from the anchor to x.
func (cu *Cumulative) Eval(x float64) float64 {
	return cu.fromStart(x) - cu.offset
}

// Knots returns the values of the antiderivative at the control points
// of the underlying curve.
func (cu *Cumulative) Knots() []float64 {
	res := make([]float64, len(cu.knots))
	for i, k := range cu.knots {
		res[i] = k - cu.offset
	}
	return res
}

// fromStart integrates the curve from its first control point to x.
func (cu *Cumulative) fromStart(x float64) float64 {
	xs, ys := cu.curve.x, cu.curve.y
	n := len(xs)
	if x <= xs[0] {
		return (x - xs[0]) * ys[0]
	}
	if x >= xs[n-1] {
		return cu.knots[n-1] + (x-xs[n-1])*ys[n-1]
	}

	i, found := slices.BinarySearch(xs, x)
	if found {
		return cu.knots[i]
	}
	i--
	return cu.knots[i] + 0.5*(x-xs[i])*(ys[i]+cu.curve.Eval(x))
}

var (
	// ErrLengthMismatch indicates that the x and y slices differ in length.
	ErrLengthMismatch = errors.New("spline: slice length mismatch")

	// ErrTooFewPoints indicates that less than two control points were given.
	ErrTooFewPoints = errors.New("spline: need at least two points")

	// ErrNotIncreasing indicates that the abscissae are not strictly increasing.
	ErrNotIncreasing = errors.New("spline: abscissae not strictly increasing")
)
