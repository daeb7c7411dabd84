package sysreg

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/tools/imports"
)

// Output files, relative to the output directory.
const (
	RegistersFile = "registers_gen.go"
	DeclsFile     = "sysreg_arm64.go"
	AsmFile       = "sysreg_arm64.s"
	StubsFile     = "sysreg_other.go"
)

// DefaultImport is the import path of the bitfield package generated code
// is written against.
const DefaultImport = "cortexa/src/lib/bitfield"

// UserOptions are the generator's knobs. Zero values take the package and
// source name from the table.
type UserOptions struct {
	Pkg    string
	Import string
	Source string
}

type templateGroup struct {
	registers *template.Template
	decls     *template.Template
	stubs     *template.Template
	asm       *template.Template
}

var funcs = template.FuncMap{
	"comment": comment,
	"hex32":   func(w uint32) string { return fmt.Sprintf("0x%08x", w) },
}

func createOutputTemplates() *templateGroup {
	parse := func(name, text string) *template.Template {
		t := template.New(name).Funcs(funcs)
		t = template.Must(t.New("header").Parse(headerTemplateText))
		t = template.Must(t.New("defs").Parse(registerTemplateText))
		return template.Must(t.New(name).Parse(text))
	}
	return &templateGroup{
		registers: parse("registers", registersTemplateText),
		decls:     parse("decls", declsTemplateText),
		stubs:     parse("stubs", stubsTemplateText),
		asm:       parse("asm", asmTemplateText),
	}
}

type deviceView struct {
	Package   string
	Import    string
	Source    string
	Registers []registerView
}

type registerView struct {
	Name        string
	Description string
	Encoding    string
	Access      string
	Type        string
	Size        int
	Bytes       int
	CanRead     bool
	CanWrite    bool
	MRS, MSR    uint32
	Fields      []fieldView
}

type fieldView struct {
	Ident       string
	Name        string
	Description string
	Range       string
	Lsb, Width  int
	Values      []valueView
}

type valueView struct {
	Ident string
	Name  string
	Hex   string
}

func newDeviceView(dev *DeviceDef, opts UserOptions) deviceView {
	v := deviceView{
		Package: dev.Package,
		Import:  opts.Import,
		Source:  opts.Source,
	}
	if opts.Pkg != "" {
		v.Package = opts.Pkg
	}
	if v.Import == "" {
		v.Import = DefaultImport
	}
	if v.Source == "" {
		v.Source = filepath.Base(dev.Source)
	}
	for _, r := range dev.Register {
		rv := registerView{
			Name:        r.Name,
			Description: r.Description,
			Encoding:    r.Encoding.String(),
			Access:      r.Access.String(),
			Type:        fmt.Sprintf("uint%d", r.Size),
			Size:        r.Size,
			Bytes:       r.Size / 8,
			CanRead:     r.Access.CanRead(),
			CanWrite:    r.Access.CanWrite(),
			MRS:         MRS(r.Encoding, 0),
			MSR:         MSR(r.Encoding, 0),
		}
		// Tables list fields in manual order, usually high bits first;
		// layouts go from bit 0 up.
		fields := append([]*FieldDef(nil), r.Field...)
		sort.SliceStable(fields, func(i, j int) bool {
			return fields[i].BitRange.Lsb < fields[j].BitRange.Lsb
		})
		for _, f := range fields {
			fv := fieldView{
				Ident:       r.Name + "_" + f.Name,
				Name:        f.Name,
				Description: f.Description,
				Range:       f.BitRange.String(),
				Lsb:         f.BitRange.Lsb,
				Width:       f.BitRange.Width(),
			}
			for _, e := range f.EnumeratedValue {
				fv.Values = append(fv.Values, valueView{
					Ident: fv.Ident + "_" + e.Name,
					Name:  e.Name,
					Hex:   fmt.Sprintf("%#x", uint64(e.Value)),
				})
			}
			rv.Fields = append(rv.Fields, fv)
		}
		v.Registers = append(v.Registers, rv)
	}
	return v
}

// Generate validates dev and renders the four output files. Go sources
// are returned unformatted; WriteFiles formats them.
func Generate(dev *DeviceDef, opts UserOptions) (map[string][]byte, error) {
	if err := Validate(dev); err != nil {
		return nil, err
	}
	group := createOutputTemplates()
	view := newDeviceView(dev, opts)
	files := map[string][]byte{}
	for name, t := range map[string]*template.Template{
		RegistersFile: group.registers,
		DeclsFile:     group.decls,
		StubsFile:     group.stubs,
		AsmFile:       group.asm,
	} {
		var out bytes.Buffer
		if err := t.Execute(&out, view); err != nil {
			return nil, errors.Wrapf(err, "executing template for %s", name)
		}
		files[name] = out.Bytes()
	}
	return files, nil
}

// WriteFiles writes generated files into dir. Go files go through
// goimports first; one that fails to format is left next to its target
// with a .broken suffix for inspection.
func WriteFiles(dir string, files map[string][]byte) error {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(dir, name)
		src := files[name]
		if strings.HasSuffix(name, ".go") {
			formatted, err := imports.Process(path, src, nil)
			if err != nil {
				_ = os.WriteFile(path+".broken", src, 0o644)
				return errors.Wrapf(err, "goimports %s", name)
			}
			src = formatted
		}
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}
		logrus.WithFields(logrus.Fields{"file": path, "bytes": len(src)}).Debug("wrote generated file")
	}
	return nil
}

// comment renders a doc comment starting with prefix, wrapped to fit
// within 77 columns.
func comment(prefix, text string) string {
	words := strings.Fields(prefix)
	if rest := strings.Fields(text); len(rest) > 0 {
		if len(words) > 0 {
			words[len(words)-1] += ":"
		}
		words = append(words, rest...)
	}
	var b strings.Builder
	line := "//"
	for _, w := range words {
		if len(line)+1+len(w) > 77 && line != "//" {
			b.WriteString(line)
			b.WriteByte('\n')
			line = "//"
		}
		line += " " + w
	}
	b.WriteString(line)
	return b.String()
}
