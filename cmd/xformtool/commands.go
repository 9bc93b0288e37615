package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/vecxform/internal/camera"
	"github.com/Faultbox/vecxform/internal/config"
	"github.com/Faultbox/vecxform/internal/logger"
	"github.com/Faultbox/vecxform/internal/picking"
	"github.com/Faultbox/vecxform/internal/pipeline"
	"github.com/Faultbox/vecxform/pkg/math"
)

func cmdRun(args []string, cfg *config.Config, w io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: xformtool run <pipeline.yaml>")
	}

	p, err := pipeline.Load(args[0])
	if err != nil {
		return err
	}

	res, err := pipeline.Run(p, pipeline.Options{Strict: cfg.Pipeline.Strict}, logger.Named("pipeline"))
	if err != nil {
		return fmt.Errorf("running %s: %w", args[0], err)
	}

	out := newPrinter(w, cfg)
	if p.Convention != "" {
		out.convention = p.Convention
	}
	out.result(res)
	return nil
}

func cmdRotate(args []string, cfg *config.Config, w io.Writer) error {
	// Directions such as -1,0,0 look like flags, so -gimbal is picked out by hand.
	gimbal := false
	var operands []string
	for _, arg := range args {
		switch arg {
		case "-gimbal", "--gimbal":
			gimbal = true
		default:
			operands = append(operands, arg)
		}
	}
	if len(operands) != 2 {
		return fmt.Errorf("usage: xformtool rotate [-gimbal] <x,y,z> <x,y,z>")
	}

	from, err := parseDirection(operands[0], cfg.Pipeline.Strict)
	if err != nil {
		return fmt.Errorf("from: %w", err)
	}
	to, err := parseDirection(operands[1], cfg.Pipeline.Strict)
	if err != nil {
		return fmt.Errorf("to: %w", err)
	}

	var m math.Transform
	if gimbal {
		m.SetRotateGimbal(from, to)
	} else {
		if from.Dot(to) < -1+math.Epsilon {
			logger.Warn("opposite directions give a reflection; try -gimbal")
		}
		m.SetRotateBetween(from, to)
	}

	out := newPrinter(w, cfg)
	out.transform("rotation", m, nil)
	out.line("angle", out.angle(from.Angle(to)))
	out.line("check", out.direction(from.MulTransform(m)))
	return nil
}

func cmdAngle(args []string, cfg *config.Config, w io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: xformtool angle <x,y,z> <x,y,z>")
	}
	d1, err := parseDirection(args[0], cfg.Pipeline.Strict)
	if err != nil {
		return err
	}
	d2, err := parseDirection(args[1], cfg.Pipeline.Strict)
	if err != nil {
		return err
	}

	out := newPrinter(w, cfg)
	out.line("angle", out.angle(d1.Angle(d2)))
	out.line("cross", out.vector(d1.Cross(d2)))
	out.line("dot", out.number(d1.Dot(d2)))
	return nil
}

func cmdInvert(args []string, cfg *config.Config, w io.Writer) error {
	values, err := parseNumbers(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if len(values) != 16 {
		return fmt.Errorf("invert needs 16 numbers, got %d", len(values))
	}

	var m math.Transform
	for i := 0; i < 4; i++ {
		m.SetRow(i, math.Vector4{X: values[i*4], Y: values[i*4+1], Z: values[i*4+2], W: values[i*4+3]})
	}
	if cfg.Output.Convention == config.ConventionColumn {
		m = m.Transpose()
	}

	inv, err := m.InverseChecked()
	if err != nil {
		if cfg.Pipeline.Strict {
			return err
		}
		logger.Warn("matrix is singular, inverse is not meaningful", zap.Error(err))
		inv = m.Inverse()
	}

	out := newPrinter(w, cfg)
	out.transform("inverse", inv, &m)
	out.line("check", fmt.Sprintf("M * inverse = identity: %v", m.Mul(inv).ApproxEqual(math.Identity(), 1e-9)))
	return nil
}

func cmdView(args []string, cfg *config.Config, w io.Writer) error {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	center := fs.String("center", "0,0,0", "Point to orbit around")
	distance := fs.Float64("distance", 10, "Distance from the center")
	pitch := fs.Float64("pitch", 30, "Elevation above the xz plane in degrees")
	yaw := fs.Float64("yaw", 0, "Heading about +y in degrees")
	fit := fs.String("fit", "", "Frame the box minx,miny,minz,maxx,maxy,maxz instead of -center/-distance/-pitch/-yaw")
	drag := fs.String("drag", "", "Apply a mouse drag of dx,dy pixels")
	zoom := fs.Float64("zoom", 0, "Apply scroll wheel steps, positive zooms in")
	pan := fs.String("pan", "", "Move the center by forward,right,up steps")
	pick := fs.String("pick", "", "Cast a ray through pixel x,y")
	viewport := fs.String("viewport", "800,600", "Viewport width,height in pixels, for -pick")
	fov := fs.Float64("fov", 60, "Vertical field of view in degrees, for -pick")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("usage: xformtool view [-center x,y,z] [-distance d] [-pitch deg] [-yaw deg] [-fit box] [-drag dx,dy] [-zoom n] [-pan f,r,u] [-pick x,y]")
	}

	c, err := parseVector3(*center)
	if err != nil {
		return fmt.Errorf("center: %w", err)
	}

	cam := camera.NewOrbitCamera()
	cam.Center = c.Position()
	cam.Distance = *distance
	cam.Pitch = math.Radians(*pitch)
	cam.Yaw = math.Radians(*yaw)
	cam.FovY = math.Radians(*fov)
	if cam.Distance <= 0 {
		return fmt.Errorf("distance must be positive, got %v", cam.Distance)
	}

	if *fit != "" {
		v, err := parseCount(*fit, 6)
		if err != nil {
			return fmt.Errorf("fit: %w", err)
		}
		cam.FitToBox(picking.NewAABB(
			math.Position{X: v[0], Y: v[1], Z: v[2]},
			math.Position{X: v[3], Y: v[4], Z: v[5]},
		))
	}
	if *drag != "" {
		v, err := parseCount(*drag, 2)
		if err != nil {
			return fmt.Errorf("drag: %w", err)
		}
		cam.HandleDrag(v[0], v[1])
	}
	if *zoom != 0 {
		cam.HandleZoom(*zoom)
	}
	if *pan != "" {
		v, err := parseVector3(*pan)
		if err != nil {
			return fmt.Errorf("pan: %w", err)
		}
		cam.HandleMovement(v.X, v.Y, v.Z)
	}

	out := newPrinter(w, cfg)
	out.line("center", out.position(cam.Center))
	out.line("eye", out.position(cam.Eye()))
	out.line("forward", out.direction(cam.Forward()))
	toWorld := cam.CameraToWorld()
	out.transform("view", cam.View(), &toWorld)

	if *pick == "" {
		return nil
	}
	px, err := parseCount(*pick, 2)
	if err != nil {
		return fmt.Errorf("pick: %w", err)
	}
	vp, err := parseCount(*viewport, 2)
	if err != nil {
		return fmt.Errorf("viewport: %w", err)
	}
	if vp[0] <= 0 || vp[1] <= 0 {
		return fmt.Errorf("viewport must be positive, got %vx%v", vp[0], vp[1])
	}

	screen := math.Vector2{X: px[0], Y: px[1]}
	size := math.Vector2{X: vp[0], Y: vp[1]}
	ray := cam.PickRay(screen, size)
	out.line("ray from", out.position(ray.Origin))
	out.line("ray dir", out.direction(ray.Dir))
	if p, ok := cam.GroundPoint(screen, size); ok {
		out.line("ground", out.position(p))
	} else {
		out.line("ground", "miss")
	}
	return nil
}

func cmdConfig(args []string, cfg *config.Config, w io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: xformtool config show | save [path]")
	}

	switch args[0] {
	case "show":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "save":
		path := filepath.Join(config.ConfigDir(), config.FileName)
		var err error
		if len(args) > 1 {
			path = args[1]
			err = cfg.SaveTo(path)
		} else {
			err = cfg.Save()
		}
		if err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		logger.Info("config saved", zap.String("path", path))
		fmt.Fprintf(w, "saved %s\n", path)
		return nil
	default:
		return fmt.Errorf("unknown config command %q", args[0])
	}
}

// parseDirection reads "x,y,z". A zero vector is an error in strict mode.
func parseDirection(s string, strict bool) (math.Direction, error) {
	v, err := parseVector3(s)
	if err != nil {
		return math.Direction{}, err
	}
	d := v.Direction()
	if d.IsNull() {
		if strict {
			return d, fmt.Errorf("%q: %w", s, pipeline.ErrZeroAxis)
		}
		logger.Warn("zero-length direction", zap.String("input", s))
	}
	return d, nil
}

func parseVector3(s string) (math.Vector3, error) {
	values, err := parseNumbers(s)
	if err != nil {
		return math.Vector3{}, err
	}
	if len(values) != 3 {
		return math.Vector3{}, fmt.Errorf("%q: %w: got %d, want 3", s, pipeline.ErrBadVector, len(values))
	}
	return math.Vector3{X: values[0], Y: values[1], Z: values[2]}, nil
}

// parseCount reads exactly n numbers.
func parseCount(s string, n int) ([]float64, error) {
	values, err := parseNumbers(s)
	if err != nil {
		return nil, err
	}
	if len(values) != n {
		return nil, fmt.Errorf("%q: %w: got %d, want %d", s, pipeline.ErrBadVector, len(values), n)
	}
	return values, nil
}

// parseNumbers splits on commas and whitespace.
func parseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		values = append(values, v)
	}
	return values, nil
}
