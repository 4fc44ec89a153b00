// Package dom is the DOM-like host the apphost renders into: an HTML
// document held in memory whose elements, addressed by id, serve as mount
// points.
package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/joeydtaylor/steeze-apphost/pkg/render"
)

var (
	ErrMountPointNotFound = errors.New("dom: mount point not found")
	ErrForeignMountPoint  = errors.New("dom: mount point does not belong to a dom document")
)

// Document is safe for concurrent use.
type Document struct {
	mu  sync.Mutex
	doc *goquery.Document
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	d, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	return &Document{doc: d}, nil
}

func ParseString(s string) (*Document, error) { return Parse(strings.NewReader(s)) }

// Blank returns an empty page whose body holds one <div> per root id.
func Blank(rootIDs ...string) *Document {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"></head><body>")
	for _, id := range rootIDs {
		b.WriteString(`<div id="`)
		b.WriteString(escapeAttr(id))
		b.WriteString(`"></div>`)
	}
	b.WriteString("</body></html>")
	d, err := ParseString(b.String())
	if err != nil {
		// the html5 parser does not fail on in-memory input
		panic(err)
	}
	return d
}

// Root returns the mount point for the element with the given id. The
// element is resolved when something is rendered into it.
func (d *Document) Root(id string) *Root { return &Root{doc: d, id: id} }

// HTML serializes the whole document.
func (d *Document) HTML() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.Html()
}

// Inner returns the markup currently inside the element with the given id.
func (d *Document) Inner(id string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	sel := d.byID(id)
	if sel.Length() == 0 {
		return "", fmt.Errorf("%w: %q", ErrMountPointNotFound, id)
	}
	return sel.Html()
}

func (d *Document) mount(id, markup, css string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	sel := d.byID(id)
	if sel.Length() == 0 {
		return fmt.Errorf("%w: %q", ErrMountPointNotFound, id)
	}
	sel.SetHtml(markup)
	if css != "" {
		d.injectStyle(css)
	}
	return nil
}

func (d *Document) unmount(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	sel := d.byID(id)
	if sel.Length() == 0 {
		return fmt.Errorf("%w: %q", ErrMountPointNotFound, id)
	}
	sel.Empty()
	return nil
}

// injectStyle adds css to <head> unless an identical stylesheet is there.
func (d *Document) injectStyle(css string) {
	el := render.StyleElement(css)
	dup := false
	d.doc.Find("style[data-apphost]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if h, err := goquery.OuterHtml(s); err == nil && h == el {
			dup = true
			return false
		}
		return true
	})
	if dup {
		return
	}
	d.doc.Find("head").First().AppendHtml(el)
}

// byID matches on the attribute value so ids need not be valid CSS.
func (d *Document) byID(id string) *goquery.Selection {
	return d.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	}).First()
}

func escapeAttr(s string) string {
	return strings.NewReplacer(`&`, "&amp;", `"`, "&quot;", `<`, "&lt;").Replace(s)
}

// Root is a mount point inside a Document.
type Root struct {
	doc *Document
	id  string
}

func (r *Root) ID() string {
	if r == nil {
		return ""
	}
	return r.id
}

// Document returns the document the root belongs to.
func (r *Root) Document() *Document { return r.doc }
