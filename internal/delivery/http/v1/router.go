package v1

import (
	"context"
	"net/http"
	"time"

	"storefront-backend/internal/delivery/http/middleware"
	"storefront-backend/pkg/utils"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Wishlist *WishlistHandler
	Catalog  *CatalogHandler
	Content  *ContentHandler
	Sitemap  *SitemapHandler
	Upload   *UploadHandler // nil when media storage is not configured
	DB       Pinger
}

// NewRouter registers every public and admin route on a new mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()
	admin := func(fn http.HandlerFunc) http.Handler {
		return middleware.AdminMiddleware(fn)
	}

	health := healthHandler(h.DB)
	mux.HandleFunc("GET /health", health)
	mux.HandleFunc("GET /api/v1/health", health)

	// Wishlist
	mux.HandleFunc("POST /api/v1/wishlist", h.Wishlist.AddToWishlist)
	mux.HandleFunc("POST /api/wishlist/add", h.Wishlist.AddToWishlist)
	mux.HandleFunc("GET /api/v1/wishlist", h.Wishlist.GetMyWishlist)
	mux.HandleFunc("DELETE /api/v1/wishlist/{productId}", h.Wishlist.RemoveFromWishlist)

	// Catalog
	mux.HandleFunc("GET /api/v1/products", h.Catalog.ListProducts)
	mux.HandleFunc("GET /api/v1/products/{id}", h.Catalog.GetProductByID)
	mux.HandleFunc("GET /api/v1/categories", h.Catalog.GetCategories)
	mux.HandleFunc("GET /api/v1/filters", h.Catalog.GetFilters)
	mux.Handle("POST /api/v1/admin/catalog/refresh", admin(h.Catalog.RefreshCatalog))

	// Content
	mux.HandleFunc("GET /api/v1/content/{key}", h.Content.GetContent)
	mux.Handle("GET /api/v1/admin/content", admin(h.Content.ListSections))
	mux.Handle("PUT /api/v1/admin/content/{key}", admin(h.Content.UpsertContent))

	if h.Upload != nil {
		mux.Handle("POST /api/v1/admin/upload", admin(h.Upload.UploadFile))
		mux.Handle("DELETE /api/v1/admin/upload", admin(h.Upload.DeleteFile))
	}

	mux.Handle("GET /sitemap.xml", h.Sitemap)

	return mux
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				utils.WriteError(w, http.StatusServiceUnavailable, "Database unavailable")
				return
			}
		}
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
