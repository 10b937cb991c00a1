package v1

import (
	"context"
	"net/http"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/filter"
	"storefront-backend/internal/usecase"
	"storefront-backend/pkg/apperror"
	"storefront-backend/pkg/utils"
)

type CatalogService interface {
	ListProducts(ctx context.Context, req usecase.ProductListRequest) (*usecase.ProductPage, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetCategories(ctx context.Context) ([]string, error)
	FilterOptions(ctx context.Context, state filter.State) (filter.View, error)
	InvalidateCatalog()
}

type CatalogHandler struct {
	catalogUC CatalogService
}

func NewCatalogHandler(uc CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

type FiltersResponse struct {
	filter.View
	State filter.State `json:"state"`
}

// ListProducts handles GET /api/v1/products.
// Filters use the sidebar query encoding: category, price=min-max, mukhi, consecrated.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	state, err := filter.ParseQuery(query)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	page, err := h.catalogUC.ListProducts(r.Context(), usecase.ProductListRequest{
		Filters: state,
		Query:   query.Get("q"),
		Sort:    query.Get("sort"),
		Page:    utils.ParseInt(query.Get("page"), 1),
		Limit:   utils.ParseInt(query.Get("limit"), 20),
	})
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, page)
}

func (h *CatalogHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteAppError(w, r, apperror.NewInvalidInput("Invalid input: product id is required"))
		return
	}

	product, err := h.catalogUC.GetProduct(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalogUC.GetCategories(r.Context())
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string][]string{"data": cats})
}

// GetFilters renders the filter sidebar for the filters in the query string.
func (h *CatalogHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	state, err := filter.ParseQuery(r.URL.Query())
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	view, err := h.catalogUC.FilterOptions(r.Context(), state)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, FiltersResponse{View: view, State: state})
}

func (h *CatalogHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	h.catalogUC.InvalidateCatalog()
	w.WriteHeader(http.StatusNoContent)
}
