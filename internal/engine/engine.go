package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/ankh"
	"github.com/jsvensson/ankh/internal/color"
)

// Engine loads and executes Go templates against a resolved Palette.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Apps         []string // if non-empty, only render these template basenames
}

// Run loads all .tmpl files from the templates directory, executes them
// with the given palette, and writes output files.
func (e *Engine) Run(p *ankh.Palette) error {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data := buildTemplateData(p)

	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")

		if !e.shouldRender(baseName) {
			continue
		}

		if err := e.renderTemplate(tmplPath, baseName, data); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) shouldRender(name string) bool {
	if len(e.Apps) == 0 {
		return true
	}
	return slices.Contains(e.Apps, name)
}

func (e *Engine) renderTemplate(tmplPath, outputName string, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(data.FuncMap).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(e.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	return nil
}

// templateData is the data passed to templates.
type templateData struct {
	Meta    ankh.Meta
	Palette *color.Node
	Colors  []color.Entry
	Tone    color.Tone
	FuncMap template.FuncMap
}

// resolveColor accepts a palette path ("palette.moss.light" or "moss.light")
// or a color.Value and returns the color.
func resolveColor(arg any, root *color.Node) (color.Value, error) {
	switch v := arg.(type) {
	case color.Value:
		return v, nil
	case *color.Value:
		if v == nil {
			return color.Value{}, fmt.Errorf("nil color")
		}
		return *v, nil
	case string:
		return resolveColorPath(v, root)
	default:
		return color.Value{}, fmt.Errorf("expected color or palette path, got %T", arg)
	}
}

// resolveColorPath resolves a dot-notation palette path. The "palette."
// prefix is optional.
func resolveColorPath(path string, root *color.Node) (color.Value, error) {
	rest := strings.TrimPrefix(path, "palette.")
	if rest == "" || rest == "palette" {
		return color.Value{}, fmt.Errorf("invalid path %q: must name a palette color", path)
	}
	v, err := root.LookupPath(rest)
	if err != nil {
		return color.Value{}, fmt.Errorf("palette path %s: %w", path, err)
	}
	return v, nil
}

// unitFunc returns a template function that formats its argument in unit.
func unitFunc(unit color.Unit, root *color.Node) func(any) (string, error) {
	return func(arg any) (string, error) {
		v, err := resolveColor(arg, root)
		if err != nil {
			return "", err
		}
		return v.Convert(unit).String(), nil
	}
}

func buildTemplateData(p *ankh.Palette) templateData {
	root := p.Colors
	return templateData{
		Meta:    p.Meta,
		Palette: root,
		Colors:  root.Entries(),
		Tone:    p.Tone(),
		FuncMap: template.FuncMap{
			"hex":  unitFunc(color.Hex, root),
			"rgb":  unitFunc(color.RGB, root),
			"rgba": unitFunc(color.RGBA, root),
			"hsl":  unitFunc(color.HSL, root),
			"lab":  unitFunc(color.Lab, root),
			"lch":  unitFunc(color.LCh, root),
			"xyz":  unitFunc(color.XYZ, root),
			"bhex": func(arg any) (string, error) {
				s, err := unitFunc(color.Hex, root)(arg)
				return strings.TrimPrefix(s, "#"), err
			},
			"palette": func(path string) (color.Value, error) {
				return resolveColorPath(path, root)
			},
			"tone": func(args ...any) (string, error) {
				if len(args) == 0 {
					return p.Tone().String(), nil
				}
				values := make([]color.Value, len(args))
				for i, arg := range args {
					v, err := resolveColor(arg, root)
					if err != nil {
						return "", err
					}
					values[i] = v
				}
				return color.ClassifyValues(values).String(), nil
			},
		},
	}
}
