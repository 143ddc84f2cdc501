package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/port"
)

// GET /v1/categories                       (200 OK)
// GET /v1/products?category=categorySlug   (200 OK)
// GET /v1/products/{slug}                  (200 OK, 404 Not found)

type CatalogHandler struct {
	catalog port.CatalogBrowser
}

func RegisterCatalog(mux *http.ServeMux, catalog port.CatalogBrowser) {
	h := CatalogHandler{catalog}
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{slug}", h.GetProduct)
}

func (h CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCategories"
	log := slog.With("op", op)

	cs, err := h.catalog.Categories(r.Context())
	if err != nil {
		respondErr(w, log, err)
		return
	}

	resp := make([]Category, 0, len(cs))
	for _, c := range cs {
		resp = append(resp, Category(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	ps, err := h.catalog.Products(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondErr(w, log, err)
		return
	}

	resp := make([]Product, 0, len(ps))
	for _, p := range ps {
		resp = append(resp, toProduct(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	p, err := h.catalog.ProductBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondErr(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProduct(p))
}
