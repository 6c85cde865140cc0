// Package view builds the site's HTML with gomponents and hands it to templ for serving.
package view

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a gomponents node to templ so handlers can use templ.Handler.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return n.Render(w)
	})
}

// Prerender renders n once and returns it as a raw node that can be embedded
// in later pages without rebuilding the tree.
func Prerender(n g.Node) (g.Node, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return nil, err
	}
	return g.Raw(b.String()), nil
}
