// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"ozicme/internal/delivery/http/response"
	"ozicme/internal/domain/entity"
	domainerrors "ozicme/internal/domain/errors"
	"ozicme/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for store-related handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

type searchStoresRequest struct {
	Query  string `query:"query"`
	Cursor int    `query:"cursor"`
	Limit  int    `query:"limit"`
}

// storesPayload is the wire shape consumed by the infinite-scroll client.
type storesPayload struct {
	Items      []entity.Restaurant `json:"items"`
	NextCursor *int                `json:"nextCursor"`
	HasMore    bool                `json:"hasMore"`
	TotalCount int                 `json:"totalCount"`
	DataReady  bool                `json:"dataReady"`
}

// SearchStores handles paginated store listing and search.
func (h *StoreHandler) SearchStores(c echo.Context) error {
	var req searchStoresRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}

	page, err := h.uc.SearchStores(c.Request().Context(), usecase.SearchStoresInput{
		Query:  req.Query,
		Cursor: req.Cursor,
		Limit:  req.Limit,
	})
	if err != nil {
		if datasetUnavailable(err) {
			return c.JSON(http.StatusOK, storesPayload{
				Items:     []entity.Restaurant{},
				DataReady: false,
			})
		}

		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, storesPayload{
		Items:      page.Items,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
		TotalCount: page.TotalCount,
		DataReady:  true,
	})
}

// datasetUnavailable reports whether the error means the dataset cannot
// serve results right now. Clients receive dataReady=false instead of an
// error payload so they can fall back to their bundled dataset.
func datasetUnavailable(err error) bool {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}

	code := appErr.ErrorCode()

	return code == domainerrors.ErrDatasetNotReady.ErrorCode() ||
		code == domainerrors.ErrDatasetLoadFailed.ErrorCode()
}

// GetStore handles the store detail request.
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID := c.Param("id")
	if storeID == "" {
		return response.BindingError(c, "INVALID_INPUT", "Missing store id")
	}

	store, err := h.uc.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
