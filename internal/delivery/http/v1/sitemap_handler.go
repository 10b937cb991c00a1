package v1

import (
	"context"
	"encoding/xml"
	"net/http"

	"storefront-backend/internal/usecase"
	"storefront-backend/pkg/apperror"
	"storefront-backend/pkg/utils"
)

type SitemapService interface {
	GenerateSitemap(ctx context.Context) ([]usecase.SitemapItem, error)
}

type SitemapHandler struct {
	usecase SitemapService
}

func NewSitemapHandler(uc SitemapService) *SitemapHandler {
	return &SitemapHandler{usecase: uc}
}

type URLSet struct {
	XMLName xml.Name  `xml:"urlset"`
	Xmlns   string    `xml:"xmlns,attr"`
	URLs    []URLItem `xml:"url"`
}

type URLItem struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

func (h *SitemapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.usecase.GenerateSitemap(r.Context())
	if err != nil {
		utils.WriteAppError(w, r, apperror.NewInternal(err))
		return
	}

	urlSet := URLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]URLItem, len(items)),
	}
	for i, item := range items {
		urlSet.URLs[i] = URLItem(item)
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(urlSet); err != nil {
		utils.WriteAppError(w, r, apperror.NewInternal(err))
	}
}
