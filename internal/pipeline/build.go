package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/vecxform/pkg/math"
)

// Options control how a pipeline is evaluated.
type Options struct {
	// Strict rejects zero axes and singular inverses instead of falling back.
	Strict bool
}

// builder composes steps onto a running transform.
type builder struct {
	p    *Pipeline
	opts Options
	log  *zap.Logger
	cur  math.Transform
}

// Build composes the pipeline's steps, in order, into one Transform under the
// row-vector convention.
func Build(p *Pipeline, opts Options, log *zap.Logger) (math.Transform, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := p.Validate(); err != nil {
		return math.Transform{}, err
	}

	b := &builder{p: p, opts: opts, log: log, cur: math.Identity()}
	for i, s := range p.Steps {
		if err := b.apply(s); err != nil {
			return math.Transform{}, fmt.Errorf("step %d (%s): %w", i+1, s.Op(), err)
		}
		log.Debug("step applied", zap.Int("step", i+1), zap.String("op", s.Op()))
	}
	return b.cur, nil
}

func (b *builder) angle(a float64) float64 {
	if b.p.Angles == Radians {
		return a
	}
	return math.Radians(a)
}

func (b *builder) apply(s Step) error {
	switch {
	case s.Translate != nil:
		b.cur.Translate(vector3(s.Translate))
	case s.RotateX != nil:
		b.cur.RotateX(b.angle(*s.RotateX))
	case s.RotateY != nil:
		b.cur.RotateY(b.angle(*s.RotateY))
	case s.RotateZ != nil:
		b.cur.RotateZ(b.angle(*s.RotateZ))
	case s.Scale != nil:
		b.cur.Scale(vector4(s.Scale, 1))
	case s.Rotate != nil:
		axis, ok, err := b.direction("axis", s.Rotate.Axis)
		if err != nil || !ok {
			return err
		}
		var r math.Transform
		r.SetRotate(axis, b.angle(s.Rotate.Angle))
		b.cur.MulAssign(r)
	case s.Align != nil:
		return b.align(s.Align)
	case s.Frame != nil:
		return b.frame(s.Frame)
	case s.Matrix != nil:
		m := math.NewTransformRows(
			vector4(s.Matrix[0], 0), vector4(s.Matrix[1], 0),
			vector4(s.Matrix[2], 0), vector4(s.Matrix[3], 0),
		)
		if b.p.Convention == Column {
			m = m.Transpose()
		}
		b.cur.MulAssign(m)
	case s.Slerp != nil:
		return b.slerp(s.Slerp)
	case s.Invert:
		return b.invert()
	}
	return nil
}

// direction converts v to a Direction. A zero vector is an error in strict
// mode and otherwise skips the step, reported by ok == false.
func (b *builder) direction(name string, v []float64) (d math.Direction, ok bool, err error) {
	d = vector3(v).Direction()
	if !d.IsNull() {
		return d, true, nil
	}
	if b.opts.Strict {
		return d, false, fmt.Errorf("%s: %w", name, ErrZeroAxis)
	}
	b.log.Warn("zero-length direction, step skipped", zap.String("field", name))
	return d, false, nil
}

func (b *builder) align(a *Align) error {
	from, ok, err := b.direction("from", a.From)
	if err != nil || !ok {
		return err
	}
	to, ok, err := b.direction("to", a.To)
	if err != nil || !ok {
		return err
	}

	var r math.Transform
	if a.Gimbal {
		r.SetRotateGimbal(from, to)
	} else {
		if from.Dot(to) < -1+math.Epsilon {
			b.log.Warn("align of opposite directions reflects instead of rotating; use gimbal")
		}
		r.SetRotateBetween(from, to)
	}
	b.cur.MulAssign(r)
	return nil
}

func (b *builder) frame(f *Frame) error {
	axes := [3]math.Direction{}
	for i, v := range [][]float64{f.X, f.Y, f.Z} {
		d, ok, err := b.direction("frame axis", v)
		if err != nil || !ok {
			return err
		}
		axes[i] = d
	}

	scale := math.Vector4{X: 1, Y: 1, Z: 1, W: 1}
	if f.Scale != nil {
		scale = vector4(f.Scale, 1)
	}
	var origin math.Position
	if f.Origin != nil {
		origin = vector3(f.Origin).Position()
	}

	var m math.Transform
	m.SetFrame(axes[0], axes[1], axes[2], scale, origin)
	b.cur.MulAssign(m)
	return nil
}

func (b *builder) slerp(s *Slerp) error {
	fromAxis, ok, err := b.direction("slerp from axis", s.From.Axis)
	if err != nil || !ok {
		return err
	}
	toAxis, ok, err := b.direction("slerp to axis", s.To.Axis)
	if err != nil || !ok {
		return err
	}
	q1 := math.QuatFromAxisAngle(fromAxis, b.angle(s.From.Angle))
	q2 := math.QuatFromAxisAngle(toAxis, b.angle(s.To.Angle))
	b.cur.MulAssign(q1.Slerp(q2, s.T).Transform())
	return nil
}

func (b *builder) invert() error {
	if _, err := b.cur.InverseChecked(); err != nil {
		if b.opts.Strict {
			return fmt.Errorf("%w: %w", ErrSingularInvert, err)
		}
		b.log.Warn("inverting a singular transform", zap.Error(err))
	}
	b.cur = b.cur.Inverse()
	return nil
}

func vector3(v []float64) math.Vector3 {
	return math.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// vector4 fills a missing W with w.
func vector4(v []float64, w float64) math.Vector4 {
	out := math.Vector4{X: v[0], Y: v[1], Z: v[2], W: w}
	if len(v) > 3 {
		out.W = v[3]
	}
	return out
}
