package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/usecase"
)

// defaultShippingMethod is applied when a caller omits the method.
const defaultShippingMethod = "standard"

// shipmentService implements the ShipmentUsecase interface.
type shipmentService struct {
	shipmentRepo repository.ShipmentRepository
	userRepo     repository.UserRepository
	trackingGen  service.TrackingNumberGenerator
	qrService    service.QRCodeService
	logger       *slog.Logger
	now          func() time.Time
}

// NewShipmentService is the constructor for shipmentService.
func NewShipmentService(
	shipmentRepo repository.ShipmentRepository,
	userRepo repository.UserRepository,
	trackingGen service.TrackingNumberGenerator,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.ShipmentUsecase {
	return &shipmentService{
		shipmentRepo: shipmentRepo,
		userRepo:     userRepo,
		trackingGen:  trackingGen,
		qrService:    qrService,
		logger:       logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *shipmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the input, snapshots the caller's profile as the sender
// block, assigns a tracking number, and persists the shipment.
func (srv *shipmentService) Create(ctx context.Context, caller *service.Claims, input *usecase.CreateShipmentInput) (*entity.Shipment, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("shipment creation requires authentication")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	// The sender identity always comes from the stored profile, never from
	// the request body. Only the location fields the profile does not carry
	// are taken from the input.
	sender, err := srv.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("sender profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load sender profile")
	}

	method := input.ShippingMethod
	if method == "" {
		method = defaultShippingMethod
	}

	// A caller may pre-compute cost and delivery date from a quote; anything
	// it leaves out is priced server-side with the same formula.
	cost := input.ShippingCost
	deliveryDate := input.EstimatedDeliveryDate
	if cost == 0 || deliveryDate.IsZero() {
		quotedCost, quotedDate := quoteShipping(input.Weight, method, srv.now())
		if cost == 0 {
			cost = quotedCost
		}
		if deliveryDate.IsZero() {
			deliveryDate = quotedDate
		}
	}

	shipment := &entity.Shipment{
		TrackingNumber: srv.trackingGen.Generate(),
		UserID:         caller.UserID,
		Sender: entity.Party{
			Name:    sender.Name,
			Email:   sender.Email,
			Phone:   sender.Phone,
			Address: sender.Address,
			City:    input.SenderCity,
			State:   input.SenderState,
			Zip:     input.SenderZip,
			Country: input.SenderCountry,
		},
		Recipient: entity.Party{
			Name:    input.RecipientName,
			Email:   input.RecipientEmail,
			Phone:   input.RecipientPhone,
			Address: input.RecipientAddress,
			City:    input.RecipientCity,
			State:   input.RecipientState,
			Zip:     input.RecipientZip,
			Country: input.RecipientCountry,
		},
		PackageType:           input.PackageType,
		Weight:                input.Weight,
		Length:                input.Length,
		Width:                 input.Width,
		Height:                input.Height,
		Description:           input.Description,
		DeclaredValue:         input.DeclaredValue,
		SpecialInstructions:   input.SpecialInstructions,
		DeliveryNotes:         input.DeliveryNotes,
		ShippingMethod:        method,
		Insurance:             input.Insurance,
		SignatureRequired:     input.SignatureRequired,
		ShippingCost:          cost,
		EstimatedDeliveryDate: deliveryDate,
		Status:                entity.StatusPending,
	}

	if err := srv.shipmentRepo.Create(ctx, shipment); err != nil {
		srv.log(ctx).Error("Failed to create shipment", "error", err, "userID", caller.UserID)

		return nil, errors.WithStack(err)
	}
	srv.log(ctx).Info("Shipment created", "trackingNumber", shipment.TrackingNumber, "userID", caller.UserID)

	return shipment, nil
}

// ListForUser returns the given user's shipments, newest-created first.
func (srv *shipmentService) ListForUser(ctx context.Context, caller *service.Claims, userID int64) ([]*entity.Shipment, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("shipment listing requires authentication")
	}
	// Clients may only read their own shipments; admins may read anyone's.
	if caller.Role != entity.RoleAdmin && caller.UserID != userID {
		srv.log(ctx).Warn("Cross-user shipment listing denied", "callerID", caller.UserID, "targetID", userID)

		return nil, domainerrors.ErrForbidden.WrapMessage("cannot list another user's shipments")
	}

	shipments, err := srv.shipmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipments by user")
	}

	return shipments, nil
}

// Track looks up a shipment by its exact tracking number.
func (srv *shipmentService) Track(ctx context.Context, trackingNumber string) (*entity.Shipment, error) {
	shipment, err := srv.shipmentRepo.FindByTracking(ctx, trackingNumber)
	if err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return nil, domainerrors.ErrShipmentNotFound.WrapMessage("tracking lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find shipment by tracking number")
	}

	return shipment, nil
}

// TrackingQR renders a PNG QR code for an existing shipment's tracking number.
func (srv *shipmentService) TrackingQR(ctx context.Context, trackingNumber string) ([]byte, error) {
	// The shipment must exist; unknown tracking numbers are not encoded.
	shipment, err := srv.Track(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateTrackingQR(shipment.TrackingNumber)
	if err != nil {
		srv.log(ctx).Error("Failed to render tracking QR code", "error", err, "trackingNumber", trackingNumber)

		return nil, errors.Wrap(err, "failed to render tracking QR code")
	}

	return png, nil
}

// Quote estimates shipping cost and delivery date without creating anything.
func (srv *shipmentService) Quote(input *usecase.QuoteInput) (*usecase.QuoteOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	method := input.ShippingMethod
	if method == "" {
		method = defaultShippingMethod
	}
	cost, deliveryDate := quoteShipping(input.Weight, method, srv.now())

	return &usecase.QuoteOutput{
		ShippingCost:          cost,
		EstimatedDeliveryDate: deliveryDate,
	}, nil
}

// ListAll returns every shipment with owner display fields.
func (srv *shipmentService) ListAll(ctx context.Context) ([]*entity.Shipment, error) {
	shipments, err := srv.shipmentRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all shipments")
	}

	return shipments, nil
}

// UpdateStatus overwrites a shipment's status with a recognized value.
func (srv *shipmentService) UpdateStatus(ctx context.Context, shipmentID int64, input *usecase.UpdateStatusInput) (*entity.Shipment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	status := entity.ShipmentStatus(input.Status)
	if !status.IsValid() {
		return nil, domainerrors.NewValidationError("status")
	}

	shipment, err := srv.shipmentRepo.UpdateStatus(ctx, shipmentID, status)
	if err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return nil, domainerrors.ErrShipmentNotFound.WrapMessage("status update failed")
		}
		srv.log(ctx).Error("Failed to update shipment status", "error", err, "shipmentID", shipmentID)

		return nil, errors.Wrap(err, "failed to update shipment status")
	}
	srv.log(ctx).Info("Shipment status updated", "shipmentID", shipmentID, "status", status.String())

	return shipment, nil
}
