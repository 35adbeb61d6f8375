// Package http provides the HTTP adapters for the portfolio service.
//
// Public routes mount under /api:
//   - Content: /content (localized document, honours ?lang= and the preview overlay)
//   - Records: /articles, /projects (published entries for one language)
//   - Media: /media (optionally filtered by ?category= or ?type=)
//   - Contact: /contact (message submission)
//
// Admin routes mount under /admin/api behind a bearer token:
//   - Editor: /editor/session, /editor/values, /editor/rows, /editor/save, /editor/preview
//   - Content: /content/{lang} direct language save
//   - Records: /articles, /projects with full CRUD
//   - Media: /media upload and removal
//   - Messages: /messages inbox listing
//
// Host applications can register the handlers on their own mux as needed.
package http
