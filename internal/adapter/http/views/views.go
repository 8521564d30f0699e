// Package views renders the storefront's HTML pages from embedded templates
// and serves its static assets.
package views

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"ignite_shop/internal/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

const layoutTemplate = "templates/layout.html"

// IRenderer produces complete HTML documents.

type IRenderer interface {
	Catalog(items []entities.CatalogItem) ([]byte, error)
	Product(product entities.ProductDetail) ([]byte, error)
	Success(summary entities.CheckoutSummary) ([]byte, error)
	Pending(summary entities.CheckoutSummary) ([]byte, error)
	Error(title, message string) ([]byte, error)
}

type Renderer struct {
	pages map[string]*template.Template
}

var _ IRenderer = (*Renderer)(nil)

// NewRenderer parses every page together with the shared layout. A parse
// error here is a programming error and fails startup.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{"catalog", "product", "success", "pending", "error"} {
		t, err := template.ParseFS(templateFS, layoutTemplate, "templates/"+name+".html")
		if err != nil {
			return nil, err
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) Catalog(items []entities.CatalogItem) ([]byte, error) {
	return r.render("catalog", struct{ Items []entities.CatalogItem }{items})
}

func (r *Renderer) Product(product entities.ProductDetail) ([]byte, error) {
	return r.render("product", struct{ Product entities.ProductDetail }{product})
}

func (r *Renderer) Success(summary entities.CheckoutSummary) ([]byte, error) {
	return r.render("success", struct{ Summary entities.CheckoutSummary }{summary})
}

// Pending is shown instead of Success while the provider has not confirmed
// the payment.
func (r *Renderer) Pending(summary entities.CheckoutSummary) ([]byte, error) {
	return r.render("pending", struct{ Summary entities.CheckoutSummary }{summary})
}

func (r *Renderer) Error(title, message string) ([]byte, error) {
	return r.render("error", struct{ Title, Message string }{title, message})
}

func (r *Renderer) render(page string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Assets exposes the embedded stylesheet and images for gin's StaticFS.
func Assets() http.FileSystem {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
