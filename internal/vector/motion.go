package vector

// Body is the moving part of an entity: where it is, which way it faces and
// how both change per tick.
type Body struct {
	Transform
	Velocity Vec2    // world units per tick
	Spin     float64 // degrees per tick
}

// Move advances the body by one tick.
func (b *Body) Move() {
	b.Position = Add(b.Position, b.Velocity)
	b.Angle = NormalizeAngle(b.Angle + b.Spin)
}

// Wrap teleports a body that left the w×h play field to the opposite edge.
func (b *Body) Wrap(w, h float64) {
	if b.Position.X < 0 {
		b.Position.X = w
	}
	if b.Position.X > w {
		b.Position.X = 0
	}
	if b.Position.Y < 0 {
		b.Position.Y = h
	}
	if b.Position.Y > h {
		b.Position.Y = 0
	}
}

// Outline places shape at the body's current transform.
func (b *Body) Outline(shape Polygon) Outline {
	return ToWorldOutline(shape, b.Transform)
}
