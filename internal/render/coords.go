package render

// transform is one consistent world-to-screen mapping: a uniform scale
// (pixels per world unit) and the screen position of the world origin.
type transform struct {
	scale   float64
	originX float64
	originY float64
}

// CoordinateSystem is the invertible affine transform between world units
// and screen pixels. Scale and origin changes are staged and only take
// effect at the start of the next flush, so a single frame never observes a
// torn transform.
type CoordinateSystem struct {
	cur    transform
	staged *transform
}

// NewCoordinateSystem creates a transform with the given scale (pixels per
// world unit) and screen origin of the world's (0,0).
func NewCoordinateSystem(scale, originX, originY float64) *CoordinateSystem {
	return &CoordinateSystem{cur: transform{scale: scale, originX: originX, originY: originY}}
}

// ToScreen maps a world position to screen pixels.
func (c *CoordinateSystem) ToScreen(wx, wy float64) (float64, float64) {
	return wx*c.cur.scale + c.cur.originX, wy*c.cur.scale + c.cur.originY
}

// ToWorld maps a screen position back to world units.
func (c *CoordinateSystem) ToWorld(sx, sy float64) (float64, float64) {
	return (sx - c.cur.originX) / c.cur.scale, (sy - c.cur.originY) / c.cur.scale
}

// Scale returns the current pixels-per-world-unit factor.
func (c *CoordinateSystem) Scale() float64 {
	return c.cur.scale
}

// Origin returns the screen position of the world origin.
func (c *CoordinateSystem) Origin() (float64, float64) {
	return c.cur.originX, c.cur.originY
}

// Rescale stages a new transform. The staged values become visible when the
// renderer commits them at the next flush; until then every read sees the
// previous transform.
func (c *CoordinateSystem) Rescale(scale, originX, originY float64) {
	c.staged = &transform{scale: scale, originX: originX, originY: originY}
}

// commit applies a staged transform, if any. Called by the renderer once per
// flush.
func (c *CoordinateSystem) commit() {
	if c.staged != nil {
		c.cur = *c.staged
		c.staged = nil
	}
}
