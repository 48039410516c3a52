package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"courier/internal/delivery/http/middleware"
	"courier/internal/delivery/http/response"
	"courier/internal/usecase"
)

// ShipmentHandler holds dependencies for shipment-related handlers.
type ShipmentHandler struct {
	uc     usecase.ShipmentUsecase
	logger *slog.Logger
}

// NewShipmentHandler is the constructor for ShipmentHandler, injected by Fx.
func NewShipmentHandler(uc usecase.ShipmentUsecase, logger *slog.Logger) *ShipmentHandler {
	return &ShipmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the shipment creation request.
func (h *ShipmentHandler) Create(c echo.Context) error {
	claims := middleware.CallerClaims(c)
	if claims == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *usecase.CreateShipmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	shipment, err := h.uc.Create(c.Request().Context(), claims, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, shipment, "Shipment created successfully")
}

// ListByUser returns a user's shipments, newest first.
func (h *ShipmentHandler) ListByUser(c echo.Context) error {
	claims := middleware.CallerClaims(c)
	if claims == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	shipments, err := h.uc.ListForUser(c.Request().Context(), claims, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shipments, "Shipments retrieved successfully")
}

// Quote estimates shipping cost and delivery date without creating anything.
func (h *ShipmentHandler) Quote(c echo.Context) error {
	weight, err := strconv.ParseFloat(c.QueryParam("weight"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid weight")
	}

	quote, err := h.uc.Quote(&usecase.QuoteInput{
		Weight:         weight,
		ShippingMethod: c.QueryParam("shipping_method"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "Quote calculated successfully")
}

// Track looks up a shipment by tracking number. Public; no authentication.
func (h *ShipmentHandler) Track(c echo.Context) error {
	shipment, err := h.uc.Track(c.Request().Context(), c.Param("trackingNumber"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shipment, "Shipment retrieved successfully")
}

// TrackQR renders a PNG QR code encoding the shipment's tracking number.
func (h *ShipmentHandler) TrackQR(c echo.Context) error {
	png, err := h.uc.TrackingQR(c.Request().Context(), c.Param("trackingNumber"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// AdminListAll returns every shipment with owner display fields.
func (h *ShipmentHandler) AdminListAll(c echo.Context) error {
	shipments, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shipments, "Shipments retrieved successfully")
}

// AdminUpdateStatus overwrites a shipment's status.
func (h *ShipmentHandler) AdminUpdateStatus(c echo.Context) error {
	shipmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shipment ID")
	}

	var input *usecase.UpdateStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	shipment, err := h.uc.UpdateStatus(c.Request().Context(), shipmentID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shipment, "Shipment status updated successfully")
}
