package postgres

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/infra/persistence/model"
)

// shipmentRepository implements the domain.ShipmentRepository interface using GORM.
type shipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository is the constructor for shipmentRepository.
func NewShipmentRepository(db *gorm.DB) repository.ShipmentRepository {
	return &shipmentRepository{db: db}
}

// Create persists a new shipment to the database. The caller must have
// already assigned the tracking number; this layer never generates one.
func (repo *shipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	shipmentM := fromShipmentDomain(shipment)

	if err := repo.db.WithContext(ctx).Create(shipmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShipmentCreationFailed.WrapMessage("owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrShipmentCreationFailed.WrapMessage("missing required shipment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shipment")
	}

	shipment.ID = shipmentM.ID
	shipment.CreatedAt = shipmentM.CreatedAt
	shipment.UpdatedAt = shipmentM.UpdatedAt

	return nil
}

// FindByTracking retrieves a shipment by its exact tracking number.
func (repo *shipmentRepository) FindByTracking(ctx context.Context, trackingNumber string) (*entity.Shipment, error) {
	var shipmentM model.ShipmentModel
	err := repo.db.WithContext(ctx).
		Where("tracking_number = ?", trackingNumber).
		Limit(1).
		First(&shipmentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipment by tracking number")
	}

	return toShipmentDomain(&shipmentM), nil
}

// ListByUser returns all shipments owned by the given user, newest-created first.
func (repo *shipmentRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Shipment, error) {
	var shipmentMs []model.ShipmentModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&shipmentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipments by user")
	}

	shipments := make([]*entity.Shipment, 0, len(shipmentMs))
	for i := range shipmentMs {
		shipments = append(shipments, toShipmentDomain(&shipmentMs[i]))
	}

	return shipments, nil
}

// shipmentWithOwner augments a shipment row with the owner's display fields
// from the joined users table.
type shipmentWithOwner struct {
	model.ShipmentModel
	OwnerName  string
	OwnerEmail string
}

// ListAll returns every shipment, newest-created first, each joined with the
// owner's name and email for the admin dashboard.
func (repo *shipmentRepository) ListAll(ctx context.Context) ([]*entity.Shipment, error) {
	var rows []shipmentWithOwner
	err := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Select("shipments.*, users.name AS owner_name, users.email AS owner_email").
		Joins("LEFT JOIN users ON users.id = shipments.user_id").
		Order("shipments.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all shipments")
	}

	shipments := make([]*entity.Shipment, 0, len(rows))
	for i := range rows {
		shipment := toShipmentDomain(&rows[i].ShipmentModel)
		shipment.OwnerName = rows[i].OwnerName
		shipment.OwnerEmail = rows[i].OwnerEmail
		shipments = append(shipments, shipment)
	}

	return shipments, nil
}

// UpdateStatus overwrites the status of a shipment and refreshes updated_at.
// No transition table is enforced; any recognized status may replace any other.
func (repo *shipmentRepository) UpdateStatus(ctx context.Context, shipmentID int64, status entity.ShipmentStatus) (*entity.Shipment, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Where("id = ?", shipmentID).
		Updates(map[string]any{
			"status":     status.String(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shipment status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrShipmentNotFound
	}

	var shipmentM model.ShipmentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", shipmentID).First(&shipmentM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload shipment after status update")
	}

	return toShipmentDomain(&shipmentM), nil
}

// --- Mapper Functions ---

// toShipmentDomain converts a GORM ShipmentModel to a domain Shipment entity.
func toShipmentDomain(data *model.ShipmentModel) *entity.Shipment {
	if data == nil {
		return nil
	}

	return &entity.Shipment{
		ID:             data.ID,
		TrackingNumber: data.TrackingNumber,
		UserID:         data.UserID,
		Sender: entity.Party{
			Name:    data.SenderName,
			Email:   data.SenderEmail,
			Phone:   data.SenderPhone,
			Address: data.SenderAddress,
			City:    data.SenderCity,
			State:   data.SenderState,
			Zip:     data.SenderZip,
			Country: data.SenderCountry,
		},
		Recipient: entity.Party{
			Name:    data.RecipientName,
			Email:   data.RecipientEmail,
			Phone:   data.RecipientPhone,
			Address: data.RecipientAddress,
			City:    data.RecipientCity,
			State:   data.RecipientState,
			Zip:     data.RecipientZip,
			Country: data.RecipientCountry,
		},
		PackageType:           data.PackageType,
		Weight:                data.Weight,
		Length:                data.Length,
		Width:                 data.Width,
		Height:                data.Height,
		Description:           data.Description,
		DeclaredValue:         data.DeclaredValue,
		SpecialInstructions:   data.SpecialInstructions,
		DeliveryNotes:         data.DeliveryNotes,
		ShippingMethod:        data.ShippingMethod,
		Insurance:             data.Insurance,
		SignatureRequired:     data.SignatureRequired,
		ShippingCost:          data.ShippingCost,
		EstimatedDeliveryDate: data.EstimatedDeliveryDate,
		Status:                entity.ShipmentStatus(data.Status),
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromShipmentDomain converts a domain Shipment entity to a GORM ShipmentModel.
func fromShipmentDomain(data *entity.Shipment) *model.ShipmentModel {
	if data == nil {
		return nil
	}

	return &model.ShipmentModel{
		ID:                    data.ID,
		TrackingNumber:        data.TrackingNumber,
		UserID:                data.UserID,
		SenderName:            data.Sender.Name,
		SenderEmail:           data.Sender.Email,
		SenderPhone:           data.Sender.Phone,
		SenderAddress:         data.Sender.Address,
		SenderCity:            data.Sender.City,
		SenderState:           data.Sender.State,
		SenderZip:             data.Sender.Zip,
		SenderCountry:         data.Sender.Country,
		RecipientName:         data.Recipient.Name,
		RecipientEmail:        data.Recipient.Email,
		RecipientPhone:        data.Recipient.Phone,
		RecipientAddress:      data.Recipient.Address,
		RecipientCity:         data.Recipient.City,
		RecipientState:        data.Recipient.State,
		RecipientZip:          data.Recipient.Zip,
		RecipientCountry:      data.Recipient.Country,
		PackageType:           data.PackageType,
		Weight:                data.Weight,
		Length:                data.Length,
		Width:                 data.Width,
		Height:                data.Height,
		Description:           data.Description,
		DeclaredValue:         data.DeclaredValue,
		SpecialInstructions:   data.SpecialInstructions,
		DeliveryNotes:         data.DeliveryNotes,
		ShippingMethod:        data.ShippingMethod,
		Insurance:             data.Insurance,
		SignatureRequired:     data.SignatureRequired,
		ShippingCost:          data.ShippingCost,
		EstimatedDeliveryDate: data.EstimatedDeliveryDate,
		Status:                data.Status.String(),
	}
}
