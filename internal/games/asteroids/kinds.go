package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/config"

// Kind tags what an entity is.
type Kind int

const (
	KindShip Kind = iota + 1
	KindRock
	KindSaucer
	KindShipBullet
	KindSaucerBullet
	KindDebris     // fading point left by a destroyed rock or saucer
	KindShipDebris // line segment left by an exploded ship
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindRock:
		return "rock"
	case KindSaucer:
		return "saucer"
	case KindShipBullet:
		return "ship_bullet"
	case KindSaucerBullet:
		return "saucer_bullet"
	case KindDebris:
		return "debris"
	case KindShipDebris:
		return "ship_debris"
	default:
		return "unknown"
	}
}

// RockSize is a rock's size class. Smaller rocks are faster and worth more.
type RockSize int

const (
	RockLarge RockSize = iota
	RockMedium
	RockSmall
)

// RockSpec carries the per-size rock parameters.
type RockSpec struct {
	Speed float64
	Scale float64
	Score int
}

// Spec returns the parameters of this size from the rock configuration.
func (s RockSize) Spec(cfg config.AsteroidsRocks) RockSpec {
	var c config.RockClass
	switch s {
	case RockMedium:
		c = cfg.Medium
	case RockSmall:
		c = cfg.Small
	default:
		c = cfg.Large
	}
	return RockSpec{Speed: c.Speed, Scale: c.Scale, Score: c.Score}
}

// Smaller returns the size a rock splits into. Small rocks do not split.
func (s RockSize) Smaller() (RockSize, bool) {
	switch s {
	case RockLarge:
		return RockMedium, true
	case RockMedium:
		return RockSmall, true
	default:
		return 0, false
	}
}

// String returns the size name.
func (s RockSize) String() string {
	switch s {
	case RockLarge:
		return "large"
	case RockMedium:
		return "medium"
	case RockSmall:
		return "small"
	default:
		return "unknown"
	}
}

// SaucerSize is the saucer's size class.
type SaucerSize int

const (
	SaucerLarge SaucerSize = iota
	SaucerSmall
)

// SaucerSpec carries the per-size saucer parameters.
type SaucerSpec struct {
	Speed     float64
	Scale     float64
	Score     int
	BulletTTL int
}

// Spec returns the parameters of this size from the saucer configuration.
func (s SaucerSize) Spec(cfg config.AsteroidsSaucer) SaucerSpec {
	c := cfg.Large
	if s == SaucerSmall {
		c = cfg.Small
	}
	return SaucerSpec{Speed: c.Speed, Scale: c.Scale, Score: c.Score, BulletTTL: c.BulletTTL}
}

// String returns the size name.
func (s SaucerSize) String() string {
	if s == SaucerSmall {
		return "small"
	}
	return "large"
}
