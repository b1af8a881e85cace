package server

import (
	"sort"

	"github.com/gofiber/fiber/v2"
)

// SitemapEntry lists the methods registered for one path.
type SitemapEntry struct {
	Path    string   `json:"path"`
	Methods []string `json:"methods"`
}

// buildSitemap groups the app's routes by path. HEAD routes that fiber
// registers alongside GET are left out.
func buildSitemap(app *fiber.App) []SitemapEntry {
	byPath := map[string][]string{}
	seen := map[string]bool{}
	for _, r := range app.GetRoutes(true) {
		if r.Method == fiber.MethodHead {
			continue
		}
		key := r.Method + " " + r.Path
		if seen[key] {
			continue
		}
		seen[key] = true
		byPath[r.Path] = append(byPath[r.Path], r.Method)
	}

	entries := make([]SitemapEntry, 0, len(byPath))
	for path, methods := range byPath {
		sort.Strings(methods)
		entries = append(entries, SitemapEntry{Path: path, Methods: methods})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}

// Sitemap handles GET /
// @Summary List every registered route
// @Tags meta
// @Produce json
// @Success 200 {array} SitemapEntry
// @Router / [get]
func (s *Server) Sitemap(c *fiber.Ctx) error {
	return c.JSON(buildSitemap(c.App()))
}
