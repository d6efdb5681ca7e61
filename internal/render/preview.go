package render

import (
	"bytes"
	"html/template"
	"io"
	"strconv"

	"github.com/Annany2002/schema-builder/internal/domain"
)

const previewTemplate = `
{{- define "attrs"}}{{with .HTMLID}} id="{{.}}"{{end}}{{with .Name}} name="{{.}}"{{end}}{{with .Class}} class="{{.}}"{{end}}
{{- if or .Padding .Margin}} style="{{with .Padding}}padding: {{.}};{{end}}{{with .Margin}} margin: {{.}};{{end}}"{{end}}{{end}}

{{- define "heading"}}
{{- if eq .Tag "h1"}}<h1{{template "attrs" .}}>{{.Text}}</h1>
{{- else if eq .Tag "h2"}}<h2{{template "attrs" .}}>{{.Text}}</h2>
{{- else if eq .Tag "h3"}}<h3{{template "attrs" .}}>{{.Text}}</h3>
{{- else if eq .Tag "h4"}}<h4{{template "attrs" .}}>{{.Text}}</h4>
{{- else if eq .Tag "h5"}}<h5{{template "attrs" .}}>{{.Text}}</h5>
{{- else}}<h6{{template "attrs" .}}>{{.Text}}</h6>{{end}}
{{- end}}

{{- define "element"}}
{{- if eq .Variant "input" "checkbox" "radio" -}}
<input{{template "attrs" .}} type="{{.Type}}" value="{{.Value}}" placeholder="{{.Value}}" readonly
{{- with .MaxLength}} maxlength="{{.}}"{{end}}{{with .Size}} size="{{.}}"{{end}}{{with .Pattern}} pattern="{{.}}"{{end}}>
{{- else if eq .Variant "button" -}}
<button{{template "attrs" .}} type="{{.Type}}">{{.Text}}</button>
{{- else if eq .Variant "select" -}}
<select{{template "attrs" .}}><option>{{.Text}}</option><option>Option 1</option><option>Option 2</option></select>
{{- else if eq .Variant "textarea" -}}
<textarea{{template "attrs" .}} placeholder="{{.Value}}" rows="5">{{.Value}}</textarea>
{{- else if eq .Variant "label" -}}
<label{{template "attrs" .}}>{{.Text}}</label>
{{- else if eq .Variant "heading" -}}
{{template "heading" .}}
{{- else if eq .Variant "paragraph" -}}
<p{{template "attrs" .}}>{{.Text}}</p>
{{- else -}}
<div{{template "attrs" .}}>{{.Text}}</div>
{{- end}}
{{- end -}}

<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Preview: {{.Name}}</title>
</head>
<body>
<section class="schema-preview" data-schema-id="{{.ID}}">
<header>
<h2>Preview: {{.Name}}</h2>
<p>This is how your schema would look when implemented</p>
</header>
{{- range .Elements}}
<div class="preview-row" data-element-id="{{.ElementID}}">
{{template "element" .}}
{{- if .Label}} <span class="element-badge"{{with .LabelColor}} style="background-color: {{.}}"{{end}}>{{.Label}}</span>{{end}}
</div>
{{- end}}
</section>
</body>
</html>
`

var preview = template.Must(template.New("preview").Parse(previewTemplate))

// elementView is the flattened, render-ready form of an Element.
type elementView struct {
	ElementID  string
	Variant    Variant
	Tag        string
	Type       string
	HTMLID     string
	Name       string
	Class      string
	Value      string
	Text       string
	Padding    string
	Margin     string
	MaxLength  string
	Size       string
	Pattern    string
	Label      string
	LabelColor string
}

type pageView struct {
	ID       string
	Name     string
	Elements []elementView
}

func project(e domain.Element) elementView {
	v := elementView{
		ElementID:  e.ID,
		Variant:    VariantOf(e),
		Tag:        e.HTMLTag,
		Type:       e.Type,
		HTMLID:     e.HTMLID,
		Name:       e.HTMLName,
		Class:      e.Class,
		Value:      e.Value,
		Padding:    SpacingStyle(e.Padding),
		Margin:     SpacingStyle(e.Margin),
		Pattern:    e.Pattern,
		Label:      e.Label,
		LabelColor: e.LabelColor,
	}
	if e.MaxLength != nil {
		v.MaxLength = strconv.Itoa(*e.MaxLength)
	}
	if e.Size != nil {
		v.Size = strconv.Itoa(*e.Size)
	}

	switch v.Variant {
	case VariantTextInput, VariantCheckbox, VariantRadio:
		if v.Type == "" {
			v.Type = "text"
		}
	case VariantButton:
		if v.Type == "" {
			v.Type = "button"
		}
		v.Text = valueOr(e.Value, "Button")
	case VariantSelect:
		v.Text = valueOr(e.Value, "Select an option")
	case VariantLabel:
		v.Text = valueOr(e.Value, "Label")
	case VariantHeading:
		v.Text = valueOr(e.Value, "Heading")
	case VariantParagraph:
		v.Text = e.Value
	default:
		v.Text = valueOr(e.Value, "Element "+e.ElementNr)
	}
	return v
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Preview writes a standalone HTML page rendering every element of schema in order.
func Preview(w io.Writer, schema domain.Schema) error {
	page := pageView{ID: schema.ID, Name: schema.Name, Elements: make([]elementView, 0, len(schema.Elements))}
	for _, e := range schema.Elements {
		page.Elements = append(page.Elements, project(e))
	}
	return preview.Execute(w, page)
}

// PreviewHTML is Preview into a byte slice.
func PreviewHTML(schema domain.Schema) ([]byte, error) {
	var buf bytes.Buffer
	if err := Preview(&buf, schema); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
