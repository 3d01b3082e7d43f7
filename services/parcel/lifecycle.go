package parcel

import (
	"errors"
	"fmt"

	"joyful-cargo/errs"
	"joyful-cargo/logger"
	parcelModel "joyful-cargo/models/parcel"
	postponedModel "joyful-cargo/models/postponed"
	parcelTypes "joyful-cargo/types/parcel"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	// Notes recorded when a postponement is opened implicitly through a
	// general field update rather than the status endpoint.
	autoCreatedNotes = "Auto-created from status change"
	// Default notes for the transition-only endpoint when the caller
	// supplies none.
	manualNotes = "Postponed manually"
)

// Service owns the parcel status state machine and the pairing between a
// parcel and its postponed order.
type Service struct {
	DB *gorm.DB
}

// NewService creates a new parcel lifecycle service
func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Create registers a new parcel owned by the acting user. A caller-supplied
// status is stored as-is, but creation never opens a postponed order; only
// a transition into the postponed status does that.
func (s *Service) Create(req parcelTypes.CreateRequest, actorID uint) (*parcelModel.Parcel, error) {
	if req.CustomerName == "" {
		return nil, errs.NewValidationError("customer_name")
	}
	if req.Phone == "" {
		return nil, errs.NewValidationError("phone")
	}
	if req.Product == "" {
		return nil, errs.NewValidationError("product")
	}
	if req.Destination == "" {
		return nil, errs.NewValidationError("destination")
	}

	status := req.Status
	if status == "" {
		status = parcelModel.StatusPending
	}
	if !status.IsValid() {
		return nil, errs.NewValidationError("status")
	}

	var expectedAmount float64
	if req.ExpectedAmount != nil {
		if *req.ExpectedAmount < 0 {
			return nil, errs.NewValidationError("expected_amount")
		}
		expectedAmount = *req.ExpectedAmount
	}

	p := parcelModel.Parcel{
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		AltPhone:       req.AltPhone,
		Product:        req.Product,
		Destination:    req.Destination,
		ExpectedAmount: expectedAmount,
		Courier:        req.Courier,
		Status:         status,
		UserID:         actorID,
	}

	if err := s.DB.Create(&p).Error; err != nil {
		return nil, err
	}

	logger.Success(fmt.Sprintf("Parcel created with ID: %d by user %d", p.ID, actorID))
	return &p, nil
}

// Get loads a single parcel by id.
func (s *Service) Get(id uint) (*parcelModel.Parcel, error) {
	var p parcelModel.Parcel
	if err := s.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("parcel", id)
		}
		return nil, err
	}
	return &p, nil
}

// List returns parcels newest first, optionally filtered by status and a
// customer name / phone search term.
func (s *Service) List(status parcelModel.Status, search string, page, limit int) ([]parcelModel.Parcel, int64, error) {
	query := s.DB.Model(&parcelModel.Parcel{})

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("customer_name ILIKE ? OR phone ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var parcels []parcelModel.Parcel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&parcels).Error
	if err != nil {
		return nil, 0, err
	}
	return parcels, total, nil
}

// Update merges the supplied fields over the existing parcel. A status
// change is routed through the shared transition function, so entering the
// postponed status opens a postponed order atomically with the update.
func (s *Service) Update(id uint, req parcelTypes.UpdateRequest, actorID uint) (*parcelModel.Parcel, error) {
	var p parcelModel.Parcel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFoundError("parcel", id)
			}
			return err
		}

		if req.CustomerName != nil {
			p.CustomerName = *req.CustomerName
		}
		if req.Phone != nil {
			p.Phone = *req.Phone
		}
		if req.AltPhone != nil {
			p.AltPhone = req.AltPhone
		}
		if req.Product != nil {
			p.Product = *req.Product
		}
		if req.Destination != nil {
			p.Destination = *req.Destination
		}
		if req.ExpectedAmount != nil {
			if *req.ExpectedAmount < 0 {
				return errs.NewValidationError("expected_amount")
			}
			p.ExpectedAmount = *req.ExpectedAmount
		}
		if req.Courier != nil {
			p.Courier = req.Courier
		}

		if req.Status != nil && *req.Status != p.Status {
			if err := s.applyTransition(tx, &p, *req.Status, autoCreatedNotes); err != nil {
				return err
			}
		}

		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info(fmt.Sprintf("Parcel %d updated by user %d", p.ID, actorID))
	return &p, nil
}

// ChangeStatus applies a status transition only. Caller-supplied notes are
// recorded on a newly opened postponed order; absent notes fall back to a
// default annotation.
func (s *Service) ChangeStatus(id uint, status parcelModel.Status, notes *string, actorID uint) (*parcelModel.Parcel, error) {
	if status == "" {
		return nil, errs.NewValidationError("status")
	}

	noteText := manualNotes
	if notes != nil {
		noteText = *notes
	}

	var p parcelModel.Parcel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFoundError("parcel", id)
			}
			return err
		}

		if err := s.applyTransition(tx, &p, status, noteText); err != nil {
			return err
		}
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info(fmt.Sprintf("Parcel %d status set to %s by user %d", p.ID, status, actorID))
	return &p, nil
}

// applyTransition is the single place status mutation happens. The only
// transition carrying a side effect is entering postponed, which must
// leave exactly one open postponed order behind. Leaving postponed through
// any path other than resolution deliberately leaves the open order in
// place; only the resolver closes it.
func (s *Service) applyTransition(tx *gorm.DB, p *parcelModel.Parcel, to parcelModel.Status, notes string) error {
	if !to.IsValid() {
		return errs.NewValidationError("status")
	}

	p.Status = to
	if to != parcelModel.StatusPostponed {
		return nil
	}

	var existing postponedModel.PostponedOrder
	err := tx.Where("parcel_id = ?", p.ID).First(&existing).Error
	switch {
	case err == nil:
		if existing.IsResolved {
			// The unique parcel_id constraint means the earlier, resolved
			// order is reopened rather than duplicated.
			existing.IsResolved = false
			existing.Notes = &notes
			existing.NewDeliveryDate = nil
			return tx.Save(&existing).Error
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		po := postponedModel.PostponedOrder{
			ParcelID: p.ID,
			Notes:    &notes,
		}
		if err := tx.Create(&po).Error; err != nil {
			if isUniqueViolation(err) {
				return errs.NewConflictErrorWithCause("postponed order", err)
			}
			return err
		}
		return nil
	default:
		return err
	}
}

// Delete removes the parcel together with any attached postponed order.
func (s *Service) Delete(id uint, actorID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var p parcelModel.Parcel
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFoundError("parcel", id)
			}
			return err
		}

		if err := tx.Where("parcel_id = ?", p.ID).Delete(&postponedModel.PostponedOrder{}).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	if err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("Parcel %d deleted by user %d", id, actorID))
	return nil
}

// ListOverdue returns all overdue parcels, newest first.
func (s *Service) ListOverdue() ([]parcelModel.Parcel, error) {
	var parcels []parcelModel.Parcel
	err := s.DB.
		Where("status = ?", parcelModel.StatusOverdue).
		Order("created_at DESC").
		Find(&parcels).Error
	return parcels, err
}

// Stats returns simple per-status parcel counts.
func (s *Service) Stats() (map[string]int64, error) {
	stats := make(map[string]int64)
	for _, status := range []parcelModel.Status{
		parcelModel.StatusPending,
		parcelModel.StatusPaid,
		parcelModel.StatusCancelled,
	} {
		var count int64
		if err := s.DB.Model(&parcelModel.Parcel{}).Where("status = ?", status).Count(&count).Error; err != nil {
			return nil, err
		}
		stats[status.String()] = count
	}
	return stats, nil
}

// isUniqueViolation reports whether err came from a unique constraint,
// either via GORM's translated error or the raw Postgres SQLSTATE.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
