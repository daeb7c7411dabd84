package sysreg

const headerTemplateText = `// Code generated by sysreg from {{.Source}}. DO NOT EDIT.
`

const registersTemplateText = `{{template "header" .}}
package {{.Package}}

import "{{.Import}}"
{{range .Registers}}{{template "register" .}}{{end}}`

const registerTemplateText = `{{define "register"}}
// {{.Name}}_Register is the type of the {{.Name}} handle and the layout
// parameter of its values. The register is {{.Access}}, encoded {{.Encoding}}.
type {{.Name}}_Register struct{}

{{comment .Name .Description}}
var {{.Name}} {{.Name}}_Register

var {{.Name}}_Layout = bitfield.NewLayout[{{.Type}}, {{.Name}}_Register]("{{.Name}}")
{{range $f := .Fields}}
{{comment (printf "%s %s" $f.Ident $f.Range) $f.Description}}
var {{$f.Ident}} = {{$.Name}}_Layout.Field("{{$f.Name}}", {{$f.Lsb}}, {{$f.Width}}{{if $f.Values}},
{{range $f.Values}}	bitfield.Variant[{{$.Type}}]{Name: "{{.Name}}", Value: {{.Hex}}},
{{end}}{{end}})
{{range $f.Values}}
var {{.Ident}} = {{$f.Ident}}.MustVal({{.Hex}})
{{end}}{{end}}{{if .CanRead}}
// Get reads {{.Name}}.
func ({{.Name}}_Register) Get() bitfield.Value[{{.Type}}, {{.Name}}_Register] {
	return bitfield.ValueOf[{{.Type}}, {{.Name}}_Register](read{{.Name}}())
}

func ({{.Name}}_Register) GetRaw() {{.Type}} { return read{{.Name}}() }
{{if .Fields}}
func (r {{.Name}}_Register) Read(f bitfield.Field[{{.Type}}, {{.Name}}_Register]) {{.Type}} {
	return r.Get().Read(f)
}

func (r {{.Name}}_Register) IsSet(f bitfield.Field[{{.Type}}, {{.Name}}_Register]) bool {
	return r.Get().IsSet(f)
}

func (r {{.Name}}_Register) MatchesAll(fvs ...bitfield.FieldValue[{{.Type}}, {{.Name}}_Register]) bool {
	return r.Get().MatchesAll(fvs...)
}
{{end}}{{end}}{{if .CanWrite}}
// Set writes {{.Name}}.
func ({{.Name}}_Register) Set(v bitfield.Value[{{.Type}}, {{.Name}}_Register]) {
	write{{.Name}}(v.Bits())
}

func ({{.Name}}_Register) SetRaw(v {{.Type}}) { write{{.Name}}(v) }
{{if .Fields}}
// Write sets the given fields and clears every other bit.
func (r {{.Name}}_Register) Write(fvs ...bitfield.FieldValue[{{.Type}}, {{.Name}}_Register]) {
	bitfield.Write[{{.Type}}, {{.Name}}_Register](r, fvs...)
}
{{end}}{{end}}{{if and .CanRead .CanWrite}}
// Modify writes fn applied to the current value. It is not atomic.
func (r {{.Name}}_Register) Modify(fn func(bitfield.Value[{{.Type}}, {{.Name}}_Register]) bitfield.Value[{{.Type}}, {{.Name}}_Register]) {
	bitfield.Modify[{{.Type}}, {{.Name}}_Register](r, fn)
}
{{if .Fields}}
// ModifyFields rewrites the given fields and preserves the rest. It is not
// atomic.
func (r {{.Name}}_Register) ModifyFields(fvs ...bitfield.FieldValue[{{.Type}}, {{.Name}}_Register]) {
	bitfield.ModifyFields[{{.Type}}, {{.Name}}_Register](r, fvs...)
}
{{end}}{{end}}{{end}}`

const declsTemplateText = `{{template "header" .}}
package {{.Package}}
{{range .Registers}}{{if .CanRead}}
func read{{.Name}}() {{.Type}}
{{end}}{{if .CanWrite}}
func write{{.Name}}(v {{.Type}})
{{end}}{{end}}`

const stubsTemplateText = `{{template "header" .}}
//go:build !arm64

package {{.Package}}

import "{{.Import}}"
{{range .Registers}}{{if .CanRead}}
func read{{.Name}}() {{.Type}} { panic(bitfield.Unsupported("MRS {{.Name}}")) }
{{end}}{{if .CanWrite}}
func write{{.Name}}({{.Type}}) { panic(bitfield.Unsupported("MSR {{.Name}}")) }
{{end}}{{end}}`

const asmTemplateText = `{{template "header" .}}
#include "textflag.h"
{{range .Registers}}{{if .CanRead}}
// MRS X0, {{.Name}}
TEXT ·read{{.Name}}(SB), NOSPLIT, $0-{{.Bytes}}
	WORD ${{hex32 .MRS}}
	{{if eq .Size 32}}MOVW R0, ret+0(FP){{else}}MOVD R0, ret+0(FP){{end}}
	RET
{{end}}{{if .CanWrite}}
// MSR {{.Name}}, X0
TEXT ·write{{.Name}}(SB), NOSPLIT, $0-{{.Bytes}}
	{{if eq .Size 32}}MOVWU v+0(FP), R0{{else}}MOVD v+0(FP), R0{{end}}
	WORD ${{hex32 .MSR}}
	RET
{{end}}{{end}}`
