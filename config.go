package geoboard

// Config controls an Editor. Zero fields take the values of DefaultConfig.
type Config struct {
	// Width and Height of the drawing surface in pixels.
	Width, Height float64

	// PointHitRadius is the pointer distance (inclusive) at which a point is hit.
	PointHitRadius float64
	// LineHitRadius is the pointer distance (exclusive) at which the Point
	// tool toggles a line's animation.
	LineHitRadius float64

	// HoverScale is the size multiplier of the hovered point, reached over
	// HoverDuration seconds.
	HoverScale    float64
	HoverDuration float32

	// AnimationStep is added to the animation phase every tick; the phase
	// wraps at AnimationPeriod.
	AnimationStep   int
	AnimationPeriod int

	Label LabelConfig
}

// LabelConfig holds the clearances and penalties used to score label
// candidates. All distances are in pixels.
type LabelConfig struct {
	PointClearance        float64 // other points closer than this cost the shortfall
	LineClearance         float64 // lines closer than this cost the shortfall
	AngleLabelClearance   float64 // angle label anchors closer than this cost the shortfall
	CircleCenterClearance float64 // circle centers closer than this cost the shortfall
	CircleEdgeClearance   float64 // circumferences closer than this cost the shortfall
	EdgeMargin            float64 // candidates this close to a canvas edge are penalized
	EdgePenalty           float64 // flat cost per axis inside EdgeMargin
}

// DefaultConfig returns the standard 800x600 board settings.
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          600,
		PointHitRadius:  DefaultPointHitRadius,
		LineHitRadius:   DefaultLineHitRadius,
		HoverScale:      1.2,
		HoverDuration:   0.12,
		AnimationStep:   2,
		AnimationPeriod: 16,
		Label:           DefaultLabelConfig(),
	}
}

// DefaultLabelConfig returns the standard label scoring weights.
func DefaultLabelConfig() LabelConfig {
	return LabelConfig{
		PointClearance:        20,
		LineClearance:         15,
		AngleLabelClearance:   20,
		CircleCenterClearance: 20,
		CircleEdgeClearance:   10,
		EdgeMargin:            15,
		EdgePenalty:           30,
	}
}

func orDefault[T float32 | float64 | int](v, def T) T {
	if v == 0 {
		return def
	}
	return v
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	c.Width = orDefault(c.Width, d.Width)
	c.Height = orDefault(c.Height, d.Height)
	c.PointHitRadius = orDefault(c.PointHitRadius, d.PointHitRadius)
	c.LineHitRadius = orDefault(c.LineHitRadius, d.LineHitRadius)
	c.HoverScale = orDefault(c.HoverScale, d.HoverScale)
	c.HoverDuration = orDefault(c.HoverDuration, d.HoverDuration)
	c.AnimationStep = orDefault(c.AnimationStep, d.AnimationStep)
	c.AnimationPeriod = orDefault(c.AnimationPeriod, d.AnimationPeriod)
	c.Label = c.Label.withDefaults()
	return c
}

func (c LabelConfig) withDefaults() LabelConfig {
	d := DefaultLabelConfig()
	c.PointClearance = orDefault(c.PointClearance, d.PointClearance)
	c.LineClearance = orDefault(c.LineClearance, d.LineClearance)
	c.AngleLabelClearance = orDefault(c.AngleLabelClearance, d.AngleLabelClearance)
	c.CircleCenterClearance = orDefault(c.CircleCenterClearance, d.CircleCenterClearance)
	c.CircleEdgeClearance = orDefault(c.CircleEdgeClearance, d.CircleEdgeClearance)
	c.EdgeMargin = orDefault(c.EdgeMargin, d.EdgeMargin)
	c.EdgePenalty = orDefault(c.EdgePenalty, d.EdgePenalty)
	return c
}

// Bounds returns the drawing surface rectangle.
func (c Config) Bounds() Rect {
	return Rect{Width: c.Width, Height: c.Height}
}
