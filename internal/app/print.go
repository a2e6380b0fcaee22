package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/reifylab/reify/node"
)

// printer renders a configuration tree for the terminal. Keys are cyan,
// type references yellow, scalars plain; disabling color falls back to
// unstyled output.
type printer struct {
	w       io.Writer
	colored bool
}

func newPrinter(w io.Writer, colored bool) *printer {
	return &printer{w: w, colored: colored}
}

func (p *printer) key(s string) string {
	if p.colored {
		return color.CyanString(s)
	}
	return s
}

func (p *printer) typeRef(s string) string {
	if p.colored {
		return color.YellowString(s)
	}
	return s
}

func (p *printer) header(path string) {
	if p.colored {
		fmt.Fprintf(p.w, "%s\n", color.New(color.Bold).Sprint(path))
	} else {
		fmt.Fprintf(p.w, "%s\n", path)
	}
}

func (p *printer) summary(typedCount int) {
	fmt.Fprintf(p.w, "%d typed node(s)\n\n", typedCount)
}

func (p *printer) printNode(n node.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Kind() {
	case node.Sequence:
		for i := 0; i < n.Len(); i++ {
			elem := n.Index(i)
			if elem.Kind().IsScalar() {
				fmt.Fprintf(p.w, "%s- %s\n", indent, elem)
			} else {
				fmt.Fprintf(p.w, "%s-\n", indent)
				p.printNode(elem, depth+1)
			}
		}
	case node.Mapping:
		for _, k := range n.Keys() {
			child, _ := n.Get(k)
			label := p.key(k)
			if k == node.KeyType || k == node.KeyPackage {
				fmt.Fprintf(p.w, "%s%s: %s\n", indent, label, p.typeRef(child.String()))
				continue
			}
			if child.Kind().IsScalar() {
				fmt.Fprintf(p.w, "%s%s: %s\n", indent, label, child)
			} else {
				fmt.Fprintf(p.w, "%s%s:\n", indent, label)
				p.printNode(child, depth+1)
			}
		}
	default:
		fmt.Fprintf(p.w, "%s%s\n", indent, n)
	}
}
