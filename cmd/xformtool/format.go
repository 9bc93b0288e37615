package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Faultbox/vecxform/internal/config"
	"github.com/Faultbox/vecxform/internal/picking"
	"github.com/Faultbox/vecxform/internal/pipeline"
	"github.com/Faultbox/vecxform/pkg/math"
	"github.com/Faultbox/vecxform/pkg/mglconv"
)

// printer writes results in the configured precision and convention.
type printer struct {
	w           io.Writer
	precision   int
	convention  string
	showInverse bool
	gl          bool
}

func newPrinter(w io.Writer, cfg *config.Config) *printer {
	return &printer{
		w:           w,
		precision:   cfg.Output.Precision,
		convention:  cfg.Output.Convention,
		showInverse: cfg.Output.ShowInverse,
		gl:          cfg.Output.GLLayout,
	}
}

func (p *printer) number(v float64) string {
	s := fmt.Sprintf("%.*f", p.precision, v)
	if strings.Trim(s, "-0.") == "" {
		s = strings.TrimPrefix(s, "-") // No "-0.000"
	}
	return s
}

func (p *printer) vector(v math.Vector3) string {
	return fmt.Sprintf("(%s, %s, %s)", p.number(v.X), p.number(v.Y), p.number(v.Z))
}

func (p *printer) position(v math.Position) string {
	return p.vector(v.Vector())
}

func (p *printer) direction(d math.Direction) string {
	if d.IsNull() {
		return "(null)"
	}
	return p.vector(d.Vector())
}

func (p *printer) box(b picking.AABB) string {
	return fmt.Sprintf("%s .. %s", p.position(b.Min), p.position(b.Max))
}

func (p *printer) angle(rad float64) string {
	return fmt.Sprintf("%s rad (%s deg)", p.number(rad), p.number(math.Degrees(rad)))
}

func (p *printer) line(label, value string) {
	fmt.Fprintf(p.w, "%-10s %s\n", label+":", value)
}

// transform prints t in the printer's convention, followed by the inverse
// and the GL layout when enabled. A nil inv is computed from t.
func (p *printer) transform(title string, t math.Transform, inv *math.Transform) {
	p.matrix(fmt.Sprintf("%s (%s)", title, p.conventionName()), t)
	if p.showInverse {
		if inv == nil {
			computed := t.Inverse()
			inv = &computed
		}
		p.matrix("inverse", *inv)
	}
	if p.gl {
		p.glLayout(t)
	}
}

func (p *printer) conventionName() string {
	if p.convention == config.ConventionColumn {
		return "M * v"
	}
	return "v * M"
}

func (p *printer) matrix(title string, t math.Transform) {
	if p.convention == config.ConventionColumn {
		t = t.Transpose()
	}

	cells := make([][4]string, 4)
	width := 0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			cells[i][j] = p.number(t[i][j])
			width = max(width, len(cells[i][j]))
		}
	}

	fmt.Fprintf(p.w, "%s:\n", title)
	for _, row := range cells {
		fmt.Fprintf(p.w, "  [ %*s %*s %*s %*s ]\n", width, row[0], width, row[1], width, row[2], width, row[3])
	}
}

// glLayout prints the 16 floats to upload with transpose == false.
func (p *printer) glLayout(t math.Transform) {
	m := mglconv.Mat4f(t)
	values := make([]string, len(m))
	for i, v := range m {
		values[i] = p.number(float64(v))
	}
	fmt.Fprintf(p.w, "gl (column-major float32):\n  %s\n", strings.Join(values, ", "))
}

func (p *printer) result(res *pipeline.Result) {
	name := res.Name
	if name == "" {
		name = "pipeline"
	}
	p.transform(name, res.Transform, &res.Inverse)
	if res.Singular {
		fmt.Fprintln(p.w, "warning: transform is singular")
	}

	if len(res.Points) > 0 {
		fmt.Fprintln(p.w, "points:")
		for _, pt := range res.Points {
			mark := ""
			if pt.InBox {
				mark = " (in box)"
			}
			fmt.Fprintf(p.w, "  %s -> %s%s\n", p.position(pt.In), p.position(pt.Out), mark)
		}
	}
	if len(res.Directions) > 0 {
		fmt.Fprintln(p.w, "directions:")
		for _, d := range res.Directions {
			fmt.Fprintf(p.w, "  %s -> %s\n", p.direction(d.In), p.direction(d.Out))
		}
	}
	if res.Box != nil {
		p.line("box", p.box(*res.Box))
		p.line("bounds", p.box(*res.Bounds))
	}
	if len(res.Hits) > 0 {
		fmt.Fprintln(p.w, "rays:")
		for _, h := range res.Hits {
			if !h.Hit {
				fmt.Fprintf(p.w, "  %s along %s: miss\n", p.position(h.Ray.Origin), p.direction(h.Ray.Dir))
				continue
			}
			fmt.Fprintf(p.w, "  %s along %s: hit at %s, distance %s\n",
				p.position(h.Ray.Origin), p.direction(h.Ray.Dir), p.position(h.Point), p.number(h.Distance))
		}
	}
}
