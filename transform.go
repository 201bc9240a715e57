package touchfield

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// mulAffine multiplies two 2D affine matrices: result = outer * inner.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func mulAffine(o, i [6]float64) [6]float64 {
	return [6]float64{
		o[0]*i[0] + o[2]*i[1],
		o[1]*i[0] + o[3]*i[1],
		o[0]*i[2] + o[2]*i[3],
		o[1]*i[2] + o[3]*i[3],
		o[0]*i[4] + o[2]*i[5] + o[4],
		o[1]*i[4] + o[3]*i[5] + o[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// ok is false for a singular matrix (determinant ≈ 0), in which case
// the identity matrix is returned.
func invertAffine(m [6]float64) (inv [6]float64, ok bool) {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform, false
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

// applyAffine applies an affine matrix to a point.
func applyAffine(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Playfield is the slice of the host scene graph this package
// manipulates: a container with a uniform scale and a content offset.
//
// The offset is expressed in local (pre-scale) units and applied
// inside the scaled space:
//
//	world = parent · Scale(s) · Translate(offset)
//
// With this composition, adding a local-space delta to the offset
// moves content by exactly that delta as seen through the current
// scale, which is what the pinch focal-point compensation relies on.
type Playfield struct {
	scale  float64
	offset Vec2

	// parent is the host transform above this container (camera,
	// letterboxing, rotation). Identity when the playfield fills the
	// screen directly.
	parent [6]float64

	world    [6]float64
	invWorld [6]float64
	invOK    bool
	dirty    bool

	// zoom is the attached recognizer, if any. Guards against
	// duplicate attachment (see TouchControl.Apply).
	zoom *ZoomRecognizer
}

// NewPlayfield creates a playfield with scale 1, zero offset, and an
// identity parent transform.
func NewPlayfield() *Playfield {
	return &Playfield{scale: 1, parent: identityTransform, dirty: true}
}

// SetParentTransform sets the host transform above this container.
func (p *Playfield) SetParentTransform(m [6]float64) {
	p.parent = m
	p.dirty = true
}

// Scale returns the current uniform scale factor.
func (p *Playfield) Scale() float64 { return p.scale }

// SetScale sets the uniform scale factor.
func (p *Playfield) SetScale(s float64) {
	p.scale = s
	p.dirty = true
}

// Offset returns the content offset in local units.
func (p *Playfield) Offset() Vec2 { return p.offset }

// SetOffset sets the content offset in local units.
func (p *Playfield) SetOffset(o Vec2) {
	p.offset = o
	p.dirty = true
}

// computeWorld recomputes the cached world matrix and its inverse if dirty.
func (p *Playfield) computeWorld() {
	if !p.dirty {
		return
	}
	p.dirty = false
	local := [6]float64{
		p.scale, 0, 0, p.scale,
		p.scale * p.offset.X, p.scale * p.offset.Y,
	}
	p.world = mulAffine(p.parent, local)
	p.invWorld, p.invOK = invertAffine(p.world)
}

// ScreenToLocal converts a screen-space point into this container's
// local coordinate space. ok is false when the current transform is
// not invertible (e.g. scale 0).
func (p *Playfield) ScreenToLocal(s Vec2) (Vec2, bool) {
	p.computeWorld()
	if !p.invOK {
		return Vec2{}, false
	}
	x, y := applyAffine(p.invWorld, s.X, s.Y)
	return Vec2{x, y}, true
}

// LocalToScreen converts a local-space point to screen space.
func (p *Playfield) LocalToScreen(l Vec2) Vec2 {
	p.computeWorld()
	x, y := applyAffine(p.world, l.X, l.Y)
	return Vec2{x, y}
}
