package pipeline

import (
	"go.uber.org/zap"

	"github.com/Faultbox/vecxform/internal/picking"
	"github.com/Faultbox/vecxform/pkg/math"
)

// Result holds a built pipeline and everything it was applied to.
type Result struct {
	Name       string
	Convention string
	Transform  math.Transform // Row-vector form
	Inverse    math.Transform
	Singular   bool // Transform failed the conditioned inverse test
	Points     []PointResult
	Directions []DirectionResult
	Box        *picking.AABB // As declared
	Bounds     *picking.AABB // Box after the transform
	Hits       []Hit
}

// PointResult is a point before and after the transform.
type PointResult struct {
	In, Out math.Position
	InBox   bool // Out lies in the declared box
}

// DirectionResult is a direction before and after the transform.
type DirectionResult struct {
	In, Out math.Direction
}

// Hit is the outcome of casting a transformed ray at the box.
type Hit struct {
	Ray      picking.Ray // After the transform
	Hit      bool
	Distance float64
	Point    math.Position
}

// Run builds p and applies the result to its points, directions and rays.
func Run(p *Pipeline, opts Options, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("pipeline", p.Name))

	t, err := Build(p, opts, log)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Name:       p.Name,
		Convention: p.Convention,
		Transform:  t,
	}
	if res.Convention == "" {
		res.Convention = Row
	}

	inv, err := t.InverseChecked()
	if err != nil {
		res.Singular = true
		inv = t.Inverse()
		log.Debug("transform is singular", zap.Error(err))
	}
	res.Inverse = inv

	if p.Box != nil {
		box := picking.NewAABB(vector3(p.Box.Min).Position(), vector3(p.Box.Max).Position())
		bounds := box.Transform(t)
		res.Box, res.Bounds = &box, &bounds
	}

	// Column form is the transpose; both paths give the same images.
	column := t.Transpose()

	for _, v := range p.Points {
		in := vector3(v).Position()
		out := in.MulTransform(t)
		if res.Convention == Column {
			out = column.MulPosition(in)
		}
		pr := PointResult{In: in, Out: out}
		if res.Box != nil {
			pr.InBox = res.Box.Contains(out)
		}
		res.Points = append(res.Points, pr)
	}
	for _, v := range p.Directions {
		in := vector3(v).Direction()
		out := in.MulTransform(t)
		if res.Convention == Column {
			out = column.MulDirection(in)
		}
		res.Directions = append(res.Directions, DirectionResult{In: in, Out: out})
	}

	if res.Box != nil {
		for i, r := range p.Rays {
			ray := picking.Ray{
				Origin: vector3(r.Origin).Position(),
				Dir:    vector3(r.Direction).Direction(),
			}.Transform(t)

			h := Hit{Ray: ray}
			h.Distance, h.Hit = ray.IntersectAABB(*res.Box)
			if h.Hit {
				h.Point = ray.Point(h.Distance)
			}
			log.Debug("ray cast", zap.Int("ray", i+1), zap.Bool("hit", h.Hit), zap.Float64("distance", h.Distance))
			res.Hits = append(res.Hits, h)
		}
	}

	log.Info("pipeline evaluated",
		zap.Int("steps", len(p.Steps)),
		zap.Int("points", len(res.Points)),
		zap.Int("directions", len(res.Directions)),
		zap.Int("rays", len(res.Hits)),
	)
	return res, nil
}
