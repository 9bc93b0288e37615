// Package pipeline reads transform pipelines from YAML, composes their steps
// into a single Transform and applies it to points, directions and rays.
package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyStep      = errors.New("step has no operation")
	ErrAmbiguousStep  = errors.New("step has more than one operation")
	ErrBadVector      = errors.New("wrong number of components")
	ErrBadConvention  = errors.New("unknown convention")
	ErrBadAngles      = errors.New("unknown angle unit")
	ErrZeroAxis       = errors.New("zero-length axis")
	ErrMissingBox     = errors.New("rays given without a box")
	ErrSingularInvert = errors.New("invert of a singular transform")
)

// Angle units and matrix conventions.
const (
	Degrees = "degrees"
	Radians = "radians"

	Row    = "row"
	Column = "column"
)

// Pipeline is a parsed pipeline file.
type Pipeline struct {
	Name       string      `yaml:"name"`
	Angles     string      `yaml:"angles,omitempty"`
	Convention string      `yaml:"convention,omitempty"`
	Steps      []Step      `yaml:"steps"`
	Points     [][]float64 `yaml:"points,omitempty"`
	Directions [][]float64 `yaml:"directions,omitempty"`
	Box        *Box        `yaml:"box,omitempty"`
	Rays       []Ray       `yaml:"rays,omitempty"`
}

// Step is one operation composed onto the running transform. Exactly one
// field must be set.
type Step struct {
	Translate []float64   `yaml:"translate,omitempty"`
	RotateX   *float64    `yaml:"rotate_x,omitempty"`
	RotateY   *float64    `yaml:"rotate_y,omitempty"`
	RotateZ   *float64    `yaml:"rotate_z,omitempty"`
	Scale     []float64   `yaml:"scale,omitempty"`
	Rotate    *AxisAngle  `yaml:"rotate,omitempty"`
	Align     *Align      `yaml:"align,omitempty"`
	Frame     *Frame      `yaml:"frame,omitempty"`
	Matrix    [][]float64 `yaml:"matrix,omitempty"`
	Slerp     *Slerp      `yaml:"slerp,omitempty"`
	Invert    bool        `yaml:"invert,omitempty"`
}

// AxisAngle is a rotation of Angle about Axis.
type AxisAngle struct {
	Axis  []float64 `yaml:"axis"`
	Angle float64   `yaml:"angle"`
}

// Align rotates From onto To, optionally through gimbal-style turns.
type Align struct {
	From   []float64 `yaml:"from"`
	To     []float64 `yaml:"to"`
	Gimbal bool      `yaml:"gimbal,omitempty"`
}

// Frame places a canonical figure: X, Y, Z are the figure's axes, Scale its
// per-axis and global scale and Origin its position.
type Frame struct {
	X      []float64 `yaml:"x"`
	Y      []float64 `yaml:"y"`
	Z      []float64 `yaml:"z"`
	Scale  []float64 `yaml:"scale,omitempty"`
	Origin []float64 `yaml:"origin,omitempty"`
}

// Slerp interpolates between two axis-angle rotations.
type Slerp struct {
	From AxisAngle `yaml:"from"`
	To   AxisAngle `yaml:"to"`
	T    float64   `yaml:"t"`
}

// Box is an axis-aligned box for ray tests.
type Box struct {
	Min []float64 `yaml:"min"`
	Max []float64 `yaml:"max"`
}

// Ray is a ray given by origin and direction.
type Ray struct {
	Origin    []float64 `yaml:"origin"`
	Direction []float64 `yaml:"direction"`
}

// Load reads and validates a pipeline file.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a pipeline. Unknown keys are an error.
func Parse(data []byte) (*Pipeline, error) {
	var p Pipeline
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding pipeline: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks units, conventions, vector sizes and that every step has
// exactly one operation.
func (p *Pipeline) Validate() error {
	switch p.Angles {
	case "", Degrees, Radians:
	default:
		return fmt.Errorf("angles %q: %w", p.Angles, ErrBadAngles)
	}
	switch p.Convention {
	case "", Row, Column:
	default:
		return fmt.Errorf("convention %q: %w", p.Convention, ErrBadConvention)
	}

	for i, s := range p.Steps {
		if err := s.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	for i, v := range p.Points {
		if err := checkLen(v, 3); err != nil {
			return fmt.Errorf("point %d: %w", i+1, err)
		}
	}
	for i, v := range p.Directions {
		if err := checkLen(v, 3); err != nil {
			return fmt.Errorf("direction %d: %w", i+1, err)
		}
	}
	if p.Box != nil {
		if err := checkLen(p.Box.Min, 3); err != nil {
			return fmt.Errorf("box min: %w", err)
		}
		if err := checkLen(p.Box.Max, 3); err != nil {
			return fmt.Errorf("box max: %w", err)
		}
	}
	if len(p.Rays) > 0 && p.Box == nil {
		return ErrMissingBox
	}
	for i, r := range p.Rays {
		if err := checkLen(r.Origin, 3); err != nil {
			return fmt.Errorf("ray %d origin: %w", i+1, err)
		}
		if err := checkLen(r.Direction, 3); err != nil {
			return fmt.Errorf("ray %d direction: %w", i+1, err)
		}
	}
	return nil
}

// Op returns the name of the step's operation, or "" when it has none.
func (s Step) Op() string {
	ops := s.ops()
	if len(ops) != 1 {
		return ""
	}
	return ops[0]
}

func (s Step) ops() []string {
	var ops []string
	if s.Translate != nil {
		ops = append(ops, "translate")
	}
	if s.RotateX != nil {
		ops = append(ops, "rotate_x")
	}
	if s.RotateY != nil {
		ops = append(ops, "rotate_y")
	}
	if s.RotateZ != nil {
		ops = append(ops, "rotate_z")
	}
	if s.Scale != nil {
		ops = append(ops, "scale")
	}
	if s.Rotate != nil {
		ops = append(ops, "rotate")
	}
	if s.Align != nil {
		ops = append(ops, "align")
	}
	if s.Frame != nil {
		ops = append(ops, "frame")
	}
	if s.Matrix != nil {
		ops = append(ops, "matrix")
	}
	if s.Slerp != nil {
		ops = append(ops, "slerp")
	}
	if s.Invert {
		ops = append(ops, "invert")
	}
	return ops
}

func (s Step) validate() error {
	ops := s.ops()
	switch len(ops) {
	case 0:
		return ErrEmptyStep
	case 1:
	default:
		return fmt.Errorf("%w: %s", ErrAmbiguousStep, strings.Join(ops, ", "))
	}

	switch {
	case s.Translate != nil:
		return checkLen(s.Translate, 3)
	case s.Scale != nil:
		if len(s.Scale) != 3 && len(s.Scale) != 4 {
			return fmt.Errorf("scale: %w: got %d, want 3 or 4", ErrBadVector, len(s.Scale))
		}
	case s.Rotate != nil:
		return checkLen(s.Rotate.Axis, 3)
	case s.Align != nil:
		if err := checkLen(s.Align.From, 3); err != nil {
			return fmt.Errorf("from: %w", err)
		}
		return checkLen(s.Align.To, 3)
	case s.Frame != nil:
		for _, v := range [][]float64{s.Frame.X, s.Frame.Y, s.Frame.Z} {
			if err := checkLen(v, 3); err != nil {
				return fmt.Errorf("frame axis: %w", err)
			}
		}
		if s.Frame.Scale != nil {
			if err := checkLen(s.Frame.Scale, 4); err != nil {
				return fmt.Errorf("frame scale: %w", err)
			}
		}
		if s.Frame.Origin != nil {
			if err := checkLen(s.Frame.Origin, 3); err != nil {
				return fmt.Errorf("frame origin: %w", err)
			}
		}
	case s.Matrix != nil:
		if len(s.Matrix) != 4 {
			return fmt.Errorf("matrix: %w: got %d rows, want 4", ErrBadVector, len(s.Matrix))
		}
		for i, row := range s.Matrix {
			if err := checkLen(row, 4); err != nil {
				return fmt.Errorf("matrix row %d: %w", i+1, err)
			}
		}
	case s.Slerp != nil:
		if err := checkLen(s.Slerp.From.Axis, 3); err != nil {
			return fmt.Errorf("slerp from: %w", err)
		}
		return checkLen(s.Slerp.To.Axis, 3)
	}
	return nil
}

func checkLen(v []float64, n int) error {
	if len(v) != n {
		return fmt.Errorf("%w: got %d, want %d", ErrBadVector, len(v), n)
	}
	return nil
}
