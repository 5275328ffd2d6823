/*
Package styledbg implements helpers to debug the styling of a scene tree.

Dump prints a tree of nodes with the value, origin and override state of
every styleable property. ToGraphViz writes the same information as a
GraphViz (DOT) diagram.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package styledbg

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/scenecss/style"
	"github.com/npillmayer/scenecss/style/css"
	"github.com/npillmayer/tyse/core/dimen"
	tp "github.com/xlab/treeprint"
)

// Dump returns a printable tree of the styles of root and its descendants.
// If names is non-empty, only the named properties are listed.
func Dump(root style.Styleable, names ...string) string {
	if root == nil {
		return "<nil>\n"
	}
	p := tp.New()
	p.SetValue(style.Describe(root))
	dumpSlots(p, root, names)
	dumpChildren(p, root, names)
	return p.String()
}

func dumpChildren(p tp.Tree, n style.Styleable, names []string) {
	for _, ch := range n.StyleableChildren() {
		branch := p.AddBranch(style.Describe(ch))
		dumpSlots(branch, ch, names)
		dumpChildren(branch, ch, names)
	}
}

func dumpSlots(p tp.Tree, n style.Styleable, names []string) {
	for _, sl := range selected(n, names) {
		p.AddMetaNode(origin(sl), fmt.Sprintf("%s = %s", sl.Name(), FormatValue(sl.Value())))
	}
}

func selected(n style.Styleable, names []string) []*style.Slot {
	slots := n.StyleState().Slots()
	if len(names) == 0 {
		return slots
	}
	var sel []*style.Slot
	for _, sl := range slots {
		for _, name := range names {
			if sl.Name() == name {
				sel = append(sel, sl)
			}
		}
	}
	return sel
}

func origin(sl *style.Slot) string {
	s := sl.Origin().String() + "," + sl.State().String()
	if sl.Inherited() {
		s += ",inherited"
	}
	return s
}

// FormatValue formats a property value for diagnostics. Lengths are printed
// in points, colors in hex notation.
func FormatValue(v any) string {
	switch x := v.(type) {
	case dimen.DU:
		return fmt.Sprintf("%gpt", css.Points(x))
	case color.RGBA:
		return css.ColorString(x)
	case nil:
		return "null"
	}
	return fmt.Sprintf("%v", v)
}

// --- GraphViz --------------------------------------------------------------

type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

type gnode struct {
	Name  string
	Label string
	Slots []*style.Slot
}

type edge struct {
	N1, N2 string
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format.
func ToGraphViz(root style.Styleable, w io.Writer) error {
	funcs := template.FuncMap{
		"value":  FormatValue,
		"origin": origin,
		"html":   template.HTMLEscapeString,
	}
	head, err := template.New("graph").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Funcs(funcs).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = head.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[style.Styleable]string)
	if err = nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodes(n style.Styleable, w io.Writer, dict map[style.Styleable]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[n] = name
	label := strings.ReplaceAll(style.Describe(n), `"`, `'`)
	if err := gparams.NodeTmpl.Execute(w, gnode{name, label, n.StyleState().Slots()}); err != nil {
		return err
	}
	for _, ch := range n.StyleableChildren() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{name, dict[ch]}); err != nil {
			return err
		}
	}
	return nil
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "TB"];
  node [fontname = "{{ .Fontname }}" fontsize=12] ;
  edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const nodeTmpl = `{{ .Name }} [ shape=plaintext
    label=<<table border="0" cellborder="1" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" colspan="3"><font color="white">{{ html .Label }}</font></td></tr>
      {{ range .Slots }}
      <tr><td align="right">{{ .Name }}</td><td>{{ value .Value | html }}</td><td>{{ origin . }}</td></tr>
      {{ else }}
      <tr><td colspan="3">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
