package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"canned_responder/responder"
)

// Handlers serves the responder over HTTP.
type Handlers struct {
	cache *ResponderCache
}

func (h *Handlers) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now(),
		"loaded_at": h.cache.LoadedAt(),
	})
}

func (h *Handlers) handleRespond(c echo.Context) error {
	var req RespondRequest

	// Bind request (works for both POST JSON and GET query params)
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	var words responder.WordSet
	if len(req.Words) > 0 {
		words = responder.NewWordSet(req.Words...)
	} else {
		words = tokenize(req.Text)
	}
	if len(words) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "text or words is required",
		})
	}

	resp := h.cache.Generator().Respond(words)
	recordResponse(resp.Fallback)

	return c.JSON(http.StatusOK, RespondResponse{
		Response: resp.Text,
		Keyword:  resp.Keyword,
		Fallback: resp.Fallback,
	})
}

func (h *Handlers) handleReload(c echo.Context) error {
	g, reloadedAt := h.cache.Reload()

	return c.JSON(http.StatusOK, ReloadResponse{
		Message:    fmt.Sprintf("Reloaded %s and %s", h.cache.keywordFile, h.cache.defaultFile),
		Keywords:   len(g.Keywords()),
		Defaults:   len(g.Defaults()),
		ReloadedAt: reloadedAt,
	})
}

func (h *Handlers) handleInfo(c echo.Context) error {
	g := h.cache.Generator()

	info := InfoResponse{
		KeywordFile: h.cache.keywordFile,
		DefaultFile: h.cache.defaultFile,
		BlockMode:   h.cache.mode.String(),
		Keywords:    g.Keywords(),
		Defaults:    len(g.Defaults()),
		LoadedAt:    h.cache.LoadedAt(),
	}
	for _, err := range g.LoadErrors() {
		info.LoadErrors = append(info.LoadErrors, err.Error())
	}

	return c.JSON(http.StatusOK, info)
}
