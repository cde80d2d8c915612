package geoboard

import "math"

// LabelCandidate is one of the fixed label offsets tried around a point.
// Offsets place the text baseline origin relative to the point center.
type LabelCandidate struct {
	Name   string
	Offset Vec2
}

// LabelCandidates lists the offsets in the order they are tried. On equal
// scores the earlier candidate wins.
var LabelCandidates = [8]LabelCandidate{
	{"right-up", Vec2{10, -10}},
	{"right-down", Vec2{10, 18}},
	{"left-up", Vec2{-18, -10}},
	{"left-down", Vec2{-18, 18}},
	{"right", Vec2{12, 4}},
	{"left", Vec2{-20, 4}},
	{"up", Vec2{-4, -14}},
	{"down", Vec2{-4, 20}},
}

// BestLabelPosition returns the label position for p with the lowest
// collision score against the rest of snap. It is a greedy per-point
// choice; labels of other points are not considered.
func BestLabelPosition(p Point, snap *Snapshot, bounds Rect, cfg LabelConfig) Vec2 {
	cfg = cfg.withDefaults()
	origin := p.Pos()
	best := origin.Add(LabelCandidates[0].Offset)
	bestScore := math.Inf(1)
	for _, c := range LabelCandidates {
		pos := origin.Add(c.Offset)
		if score := labelScore(pos, p.ID, snap, bounds, cfg); score < bestScore {
			best, bestScore = pos, score
		}
	}
	return best
}

// labelScore sums the collision penalties of a label at pos. The point
// owning the label (self) is excluded from the point term.
func labelScore(pos Vec2, self int, snap *Snapshot, bounds Rect, cfg LabelConfig) float64 {
	var score float64
	for _, q := range snap.Points {
		if q.ID == self {
			continue
		}
		score += shortfall(cfg.PointClearance, Distance(pos, q.Pos()))
	}
	for _, l := range snap.Lines {
		score += shortfall(cfg.LineClearance, PointToSegmentDistance(pos, l.Start.Pos(), l.End.Pos()))
	}
	for _, a := range snap.Angles {
		score += shortfall(cfg.AngleLabelClearance, Distance(pos, a.LabelAnchor()))
	}
	for _, c := range snap.Circles {
		d := Distance(pos, c.Center.Pos())
		score += shortfall(cfg.CircleCenterClearance, d)
		score += shortfall(cfg.CircleEdgeClearance, math.Abs(d-c.Radius))
	}
	if pos.X < bounds.X+cfg.EdgeMargin || pos.X > bounds.X+bounds.Width-cfg.EdgeMargin {
		score += cfg.EdgePenalty
	}
	if pos.Y < bounds.Y+cfg.EdgeMargin || pos.Y > bounds.Y+bounds.Height-cfg.EdgeMargin {
		score += cfg.EdgePenalty
	}
	return score
}

func shortfall(clearance, d float64) float64 {
	return math.Max(0, clearance-d)
}
