package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	"popexplorer/internal/engine"
	"popexplorer/internal/models"
)

type Handler struct {
	svc  atomic.Pointer[engine.Service]
	topN int
}

// NewHandler returns a handler over svc. A nil svc makes every route answer
// 503 until SetService is called.
func NewHandler(svc *engine.Service, defaultTopN int) *Handler {
	h := &Handler{topN: defaultTopN}
	if svc != nil {
		h.svc.Store(svc)
	}
	return h
}

// SetService swaps in a loaded dataset.
func (h *Handler) SetService(svc *engine.Service) {
	h.svc.Store(svc)
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api", h.requireData)
	api.GET("/count", h.GetCount)
	api.GET("/countries", h.GetCountries)
	api.GET("/countries/top", h.GetTopCountries)
	api.GET("/countries/:name", h.GetCountry)
	api.GET("/continents", h.GetContinents)
	api.GET("/continents/populations", h.GetContinentPopulations)
	api.GET("/summary", h.GetSummary)
	api.GET("/export", h.GetExport)
}

// requireData rejects requests while the dataset is still loading.
func (h *Handler) requireData(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.svc.Load() == nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "dataset is loading")
		}
		return next(c)
	}
}

// --- HANDLERS ---
func getPaginationParams(c echo.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (h *Handler) GetCount(c echo.Context) error {
	return c.JSON(http.StatusOK, models.CountResponse{Count: h.svc.Load().Count()})
}

func (h *Handler) GetCountries(c echo.Context) error {
	store := h.svc.Load().Store()
	total := store.Len()
	limit, offset := getPaginationParams(c, total)

	page := models.Page{Data: []models.Record{}, Total: total, Limit: limit, Offset: offset}
	if offset >= total {
		return c.JSON(http.StatusOK, page)
	}

	end := offset + limit
	if end > total {
		end = total
	}
	for i := offset; i < end; i++ {
		page.Data = append(page.Data, store.Row(i))
	}
	return c.JSON(http.StatusOK, page)
}

// top n countries by population, n defaults to the configured value
func (h *Handler) GetTopCountries(c echo.Context) error {
	n := h.topN
	if q := c.QueryParam("n"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "n must be an integer")
		}
		n = v
	}

	names, err := h.svc.Load().TopN(n)
	if errors.Is(err, engine.ErrInsufficientRecords) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.TopResponse{Countries: names})
}

func (h *Handler) GetCountry(c echo.Context) error {
	// echo hands out the escaped segment only when the request has a RawPath
	name := c.Param("name")
	if c.Request().URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}
	r, ok := h.svc.Load().Lookup(name)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown country: "+name)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) GetContinents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Load().Continents())
}

func (h *Handler) GetContinentPopulations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Load().ContinentPopulations())
}

func (h *Handler) GetSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Load().Summary(h.topN))
}

// dataset as an arrow ipc stream
func (h *Handler) GetExport(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.svc.Load().Store().WriteArrow(&buf); err != nil {
		return fmt.Errorf("arrow export: %w", err)
	}
	return c.Blob(http.StatusOK, engine.ArrowContentType, buf.Bytes())
}
