package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"ignite_shop/internal/adapter/http/views"
	"ignite_shop/internal/adapter/pagecache"
	"ignite_shop/internal/usecase"
	"ignite_shop/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const catalogPageKey = "/"

// PageWindows is how long a rendered page is served before it is regenerated.
type PageWindows struct {
	Catalog time.Duration
	Product time.Duration
}

// CatalogHandler serves the catalog and product pages from the page cache.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
	views   views.IRenderer
	pages   *pagecache.Cache
	windows PageWindows
}

func NewCatalogHandler(uc usecase.ICatalogUseCase, v views.IRenderer, pages *pagecache.Cache, windows PageWindows) *CatalogHandler {
	return &CatalogHandler{usecase: uc, views: v, pages: pages, windows: windows}
}

// Home godoc
// @Summary      Catalog page
// @Description  Server-rendered list of products, each linking to its product page.
// @Tags         pages
// @Produce      html
// @Success      200 {string} string "HTML page"
// @Failure      502 {string} string "HTML error page"
// @Router       / [get]
func (h *CatalogHandler) Home(c *gin.Context) {
	body, err := h.pages.Get(c.Request.Context(), catalogPageKey, h.windows.Catalog, h.renderCatalog)
	if err != nil {
		log.Printf("[catalog][handler] home failed err=%v", err)
		renderErrorPage(c, h.views, mapCatalogError(err))
		return
	}
	c.Data(http.StatusOK, htmlContentType, body)
}

// Product godoc
// @Summary      Product page
// @Description  Server-rendered product detail with the "Comprar" button.
// @Tags         pages
// @Produce      html
// @Param        id path string true "Product ID"
// @Success      200 {string} string "HTML page"
// @Failure      404 {string} string "HTML error page"
// @Failure      502 {string} string "HTML error page"
// @Router       /product/{id} [get]
func (h *CatalogHandler) Product(c *gin.Context) {
	productID := strings.TrimSpace(c.Param("id"))
	if productID == "" {
		renderErrorPage(c, h.views, mapCatalogError(usecase.ErrInvalidProductID))
		return
	}

	body, err := h.pages.Get(c.Request.Context(), productPageKey(productID), h.windows.Product, h.productPage(productID))
	if err != nil {
		log.Printf("[catalog][handler] product failed product_id=%s err=%v", productID, err)
		renderErrorPage(c, h.views, mapCatalogError(err))
		return
	}
	c.Data(http.StatusOK, htmlContentType, body)
}

// Prerender builds the catalog page and the given product pages
// concurrently. Any failure fails the whole run.
func (h *CatalogHandler) Prerender(ctx context.Context, productIDs []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return h.pages.Prerender(ctx, catalogPageKey, h.renderCatalog)
	})
	for _, id := range productIDs {
		g.Go(func() error {
			return h.pages.Prerender(ctx, productPageKey(id), h.productPage(id))
		})
	}
	return g.Wait()
}

func (h *CatalogHandler) renderCatalog(ctx context.Context) ([]byte, error) {
	items, err := h.usecase.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return h.views.Catalog(items)
}

func (h *CatalogHandler) productPage(productID string) pagecache.Generator {
	return func(ctx context.Context) ([]byte, error) {
		detail, err := h.usecase.GetProductDetail(ctx, productID)
		if err != nil {
			return nil, err
		}
		return h.views.Product(detail)
	}
}

func productPageKey(productID string) string {
	return "/product/" + productID
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound), errors.Is(err, usecase.ErrProductUnavailable), errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Produto não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("CATALOG_PROVIDER_ERROR", "Não foi possível carregar os produtos", err, http.StatusBadGateway)
	}
}
