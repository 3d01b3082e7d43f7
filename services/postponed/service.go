package postponed

import (
	"errors"
	"fmt"

	"joyful-cargo/errs"
	"joyful-cargo/logger"
	parcelModel "joyful-cargo/models/parcel"
	postponedModel "joyful-cargo/models/postponed"
	postponedTypes "joyful-cargo/types/postponed"
	"joyful-cargo/utils"

	"gorm.io/gorm"
)

// Service manages postponed orders and their coupling back to parcel status.
type Service struct {
	DB *gorm.DB
}

// NewService creates a new postponement resolver service
func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// ListActive returns all unresolved postponed orders with parcel details.
func (s *Service) ListActive() ([]postponedModel.PostponedOrder, error) {
	var orders []postponedModel.PostponedOrder
	err := s.DB.
		Preload("Parcel").
		Where("is_resolved = ?", false).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// Get loads a single postponed order with its parcel.
func (s *Service) Get(id uint) (*postponedModel.PostponedOrder, error) {
	var order postponedModel.PostponedOrder
	if err := s.DB.Preload("Parcel").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("postponed order", id)
		}
		return nil, err
	}
	return &order, nil
}

// Update applies a partial update. An unparsable delivery date fails the
// whole call before anything is written.
func (s *Service) Update(id uint, req postponedTypes.UpdateRequest, actorID uint) (*postponedModel.PostponedOrder, error) {
	var order postponedModel.PostponedOrder
	if err := s.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("postponed order", id)
		}
		return nil, err
	}

	if req.NewDeliveryDate != nil {
		parsed, err := utils.ParseTimestamp(*req.NewDeliveryDate)
		if err != nil {
			return nil, errs.NewValidationErrorWithCause("new_delivery_date", err)
		}
		order.NewDeliveryDate = &parsed
	}
	if req.Notes != nil {
		order.Notes = req.Notes
	}

	if err := s.DB.Save(&order).Error; err != nil {
		return nil, err
	}

	logger.Info(fmt.Sprintf("Postponed order %d updated by user %d", order.ID, actorID))
	return &order, nil
}

// Resolve closes a postponed order and returns its parcel to the pending
// status. Resolving an already-resolved order is a no-op.
func (s *Service) Resolve(id uint, actorID uint) (*postponedModel.PostponedOrder, error) {
	var order postponedModel.PostponedOrder

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFoundError("postponed order", id)
			}
			return err
		}

		if order.IsResolved {
			return nil
		}

		order.IsResolved = true
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		// The parcel goes back to pending regardless of where it moved in
		// the meantime.
		return tx.Model(&parcelModel.Parcel{}).
			Where("id = ?", order.ParcelID).
			Update("status", parcelModel.StatusPending).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Success(fmt.Sprintf("Postponed order %d resolved by user %d", order.ID, actorID))
	return &order, nil
}

// CountActive counts unresolved postponed orders.
func (s *Service) CountActive() (int64, error) {
	var count int64
	err := s.DB.Model(&postponedModel.PostponedOrder{}).
		Where("is_resolved = ?", false).
		Count(&count).Error
	return count, err
}
