package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/port"
)

// GET    /v1/cart                      (200 OK)
// DELETE /v1/cart                      (200 OK)
// POST   /v1/cart/items                JSON {product_id, quantity}
// PUT    /v1/cart/items/{productID}    JSON {quantity}
// DELETE /v1/cart/items/{productID}

type CartHandler struct {
	reader port.CartReader
	editor port.CartEditor
}

func RegisterCart(
	mux *http.ServeMux, reader port.CartReader, editor port.CartEditor,
) {
	h := CartHandler{reader, editor}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("DELETE /v1/cart", h.ClearCart)
	mux.HandleFunc("POST /v1/cart/items", h.AddItem)
	mux.HandleFunc("PUT /v1/cart/items/{productID}", h.UpdateQuantity)
	mux.HandleFunc("DELETE /v1/cart/items/{productID}", h.RemoveItem)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	o, ok := owner(w, r)
	if !ok {
		return
	}

	s, err := h.reader.Cart(r.Context(), o)
	if err != nil {
		respondErr(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartState(s))
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	o, ok := owner(w, r)
	if !ok {
		return
	}

	var req AddItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	s, err := h.editor.AddCartItem(r.Context(), o, req.ProductID, req.Quantity)
	if err != nil {
		respondErr(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCartState(s))
	log.Info("item added", "productID", req.ProductID, "quantity", req.Quantity)
}

func (h CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.UpdateQuantity"
	log := slog.With("op", op)

	o, ok := owner(w, r)
	if !ok {
		return
	}

	productID, ok := productIDPath(w, r)
	if !ok {
		return
	}

	var req UpdateQuantityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	s, err := h.editor.UpdateCartQuantity(r.Context(), o, productID, req.Quantity)
	if err != nil {
		respondErr(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartState(s))
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.RemoveItem"
	log := slog.With("op", op)

	o, ok := owner(w, r)
	if !ok {
		return
	}

	productID, ok := productIDPath(w, r)
	if !ok {
		return
	}

	s, err := h.editor.RemoveCartItem(r.Context(), o, productID)
	if err != nil {
		respondErr(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartState(s))
}

func (h CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.ClearCart"
	log := slog.With("op", op)

	o, ok := owner(w, r)
	if !ok {
		return
	}

	s, err := h.editor.ClearCart(r.Context(), o)
	if err != nil {
		respondErr(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartState(s))
}

func productIDPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("productID"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
