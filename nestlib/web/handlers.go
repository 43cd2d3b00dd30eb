// Package web exposes the catalog view and user preferences over a
// JSON API for the library frontend.
package web

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/daiphu1801/NestGameLibrary/nestlib/catalog"
	"github.com/daiphu1801/NestGameLibrary/nestlib/logger"
	"github.com/daiphu1801/NestGameLibrary/nestlib/prefs"
)

const (
	defaultUserID   = "local"
	suggestionLimit = 5
)

// WebApp bundles everything handlers need.
type WebApp struct {
	Store   *catalog.Store
	Prefs   *prefs.Service
	Version string
	Commit  string
}

// userID identifies the client session. Single-user deployments (the
// common case for a self-hosted library) just get the default.
func userID(c *fiber.Ctx) string {
	if id := c.Get("X-User-ID"); id != "" {
		return id
	}
	return defaultUserID
}

// HealthCheck reports service liveness.
func HealthCheck(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return SendSuccess(c, fiber.Map{
			"status":  "healthy",
			"version": app.Version,
			"commit":  app.Commit,
			"games":   app.Store.Len(),
		})
	}
}

// gamesPayload builds the redraw payload the frontend consumes after
// any view change.
func gamesPayload(store *catalog.Store) fiber.Map {
	slice := store.CurrentPageSlice()
	view := store.View()

	start, end := 0, 0
	if len(slice) > 0 {
		start = (store.CurrentPage()-1)*view.PageSize + 1
		end = start + len(slice) - 1
	}

	return fiber.Map{
		"games":      slice,
		"page":       store.CurrentPage(),
		"totalPages": store.TotalPages(),
		"pageSize":   view.PageSize,
		"visible":    store.VisibleCount(),
		"total":      store.Len(),
		"showing":    fiber.Map{"start": start, "end": end},
		"view": fiber.Map{
			"category": view.Category,
			"query":    view.Query,
			"sort":     view.Sort,
		},
	}
}

// ListGames applies any view parameters present on the request and
// returns the current page slice. Filter parameters jump back to page
// 1; an out-of-range page request is silently ignored, matching the
// store's clamp semantics.
func ListGames(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := app.Store
		view := store.View()

		if raw := c.Query("category"); raw != "" {
			cat := catalog.Category(raw)
			if raw != string(catalog.CategoryAll) {
				cat = catalog.ParseCategory(raw)
			}
			if cat != view.Category {
				store.SetCategory(cat)
			}
		}
		if c.Request().URI().QueryArgs().Has("q") {
			store.SetQuery(c.Query("q"))
		}
		if raw := c.Query("sort"); raw != "" {
			if key := catalog.ParseSortKey(raw); key != view.Sort {
				store.SetSort(key)
			}
		}
		if n := c.QueryInt("page_size"); n > 0 && n != view.PageSize {
			store.SetPageSize(n)
		}
		if n := c.QueryInt("page"); n > 0 {
			store.SetPage(n)
		}

		logger.LogCatalog("list",
			slog.Int("visible", store.VisibleCount()),
			slog.Int("page", store.CurrentPage()))
		return SendSuccess(c, gamesPayload(store))
	}
}

// ResetView restores all filters, sort and pagination to defaults.
func ResetView(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		app.Store.ResetView()
		logger.LogCatalog("reset")
		return SendSuccess(c, gamesPayload(app.Store))
	}
}

// SuggestGames returns fuzzy name suggestions for empty-result hints.
func SuggestGames(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return SendBadRequest(c, "query parameter q is required")
		}
		return SendSuccess(c, fiber.Map{
			"suggestions": app.Store.Suggest(query, suggestionLimit),
		})
	}
}

// ListCategories returns the category enum with display icons.
func ListCategories(_ *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type categoryInfo struct {
			Name catalog.Category `json:"name"`
			Icon string           `json:"icon"`
		}

		categories := []categoryInfo{{Name: catalog.CategoryAll, Icon: catalog.CategoryIcons[catalog.CategoryAll]}}
		for _, cat := range catalog.Categories {
			categories = append(categories, categoryInfo{Name: cat, Icon: catalog.CategoryIcons[cat]})
		}
		return SendSuccess(c, fiber.Map{"categories": categories})
	}
}

// GetPreferences returns the stored language and theme.
func GetPreferences(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := app.Prefs.Preferences(c.UserContext(), userID(c))
		if err != nil {
			logger.LogError("Failed to load preferences", err)
			return SendInternalServerError(c, "failed to load preferences")
		}
		return SendSuccess(c, p)
	}
}

type updatePrefsRequest struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// UpdatePreferences changes language and/or theme.
func UpdatePreferences(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updatePrefsRequest
		if err := c.BodyParser(&req); err != nil {
			return SendBadRequest(c, "invalid request body")
		}
		if req.Language == "" && req.Theme == "" {
			return SendBadRequest(c, "nothing to update")
		}

		uid := userID(c)
		var p *prefs.Preferences
		var err error

		if req.Language != "" {
			if p, err = app.Prefs.SetLanguage(c.UserContext(), uid, req.Language); err != nil {
				return SendBadRequest(c, err.Error())
			}
		}
		if req.Theme != "" {
			if p, err = app.Prefs.SetTheme(c.UserContext(), uid, req.Theme); err != nil {
				return SendBadRequest(c, err.Error())
			}
		}

		return SendSuccess(c, p)
	}
}

// GetRecent returns the recently-played list, most recent first.
func GetRecent(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := app.Prefs.Recent(c.UserContext(), userID(c))
		if err != nil {
			logger.LogError("Failed to load recent games", err)
			return SendInternalServerError(c, "failed to load recent games")
		}
		return SendSuccess(c, fiber.Map{"recent": list})
	}
}

type recordPlayRequest struct {
	ID int64 `json:"id"`
}

// RecordPlay marks a game as just played.
func RecordPlay(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req recordPlayRequest
		if err := c.BodyParser(&req); err != nil {
			return SendBadRequest(c, "invalid request body")
		}

		var game *catalog.GameRecord
		for _, g := range app.Store.All() {
			if g.ID == req.ID {
				game = &g
				break
			}
		}
		if game == nil {
			return SendNotFound(c, "game not found")
		}

		list, err := app.Prefs.RecordPlay(c.UserContext(), userID(c), *game)
		if err != nil {
			logger.LogError("Failed to record play", err)
			return SendInternalServerError(c, "failed to record play")
		}
		return SendSuccess(c, fiber.Map{"recent": list})
	}
}
