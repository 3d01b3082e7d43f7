package analytics

import (
	"time"

	expenseModel "joyful-cargo/models/expense"
	parcelModel "joyful-cargo/models/parcel"
	"joyful-cargo/utils"

	"gorm.io/gorm"
)

// trendWindow is how far back the revenue trend looks.
const trendWindow = 180 * 24 * time.Hour

// Overview holds the headline dashboard figures.
type Overview struct {
	TotalRevenue   float64 `json:"total_revenue"`
	MonthRevenue   float64 `json:"month_revenue"`
	ActiveParcels  int64   `json:"active_parcels"`
	OverdueParcels int64   `json:"overdue_parcels"`
}

// TrendPoint is one month of paid-parcel revenue.
type TrendPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// DashboardStats is the coarser per-status count view.
type DashboardStats struct {
	TotalParcels   int64   `json:"total_parcels"`
	PendingParcels int64   `json:"pending_parcels"`
	PaidParcels    int64   `json:"paid_parcels"`
	OverdueParcels int64   `json:"overdue_parcels"`
	TotalExpenses  float64 `json:"total_expenses"`
}

// Service computes read-only reporting views. It never writes.
type Service struct {
	DB *gorm.DB
}

// NewService creates a new analytics service
func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Overview computes revenue totals and active/overdue counts. Sums over an
// empty set come back as 0.
func (s *Service) Overview() (*Overview, error) {
	startOfMonth := utils.BeginningOfMonth(time.Now().UTC())

	var out Overview

	err := s.DB.Model(&parcelModel.Parcel{}).
		Where("status = ?", parcelModel.StatusPaid).
		Select("COALESCE(SUM(expected_amount), 0)").
		Scan(&out.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Model(&parcelModel.Parcel{}).
		Where("status = ? AND updated_at >= ?", parcelModel.StatusPaid, startOfMonth).
		Select("COALESCE(SUM(expected_amount), 0)").
		Scan(&out.MonthRevenue).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Model(&parcelModel.Parcel{}).
		Where("status IN ?", []parcelModel.Status{parcelModel.StatusPending, parcelModel.StatusPostponed}).
		Count(&out.ActiveParcels).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Model(&parcelModel.Parcel{}).
		Where("status = ?", parcelModel.StatusOverdue).
		Count(&out.OverdueParcels).Error
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// RevenueTrend groups paid-parcel revenue of the trailing 180 days by
// calendar month, ascending. Months without paid parcels are absent.
func (s *Service) RevenueTrend() ([]TrendPoint, error) {
	since := time.Now().UTC().Add(-trendWindow)

	var points []TrendPoint
	err := s.DB.Model(&parcelModel.Parcel{}).
		Select("to_char(updated_at, 'YYYY-MM') AS month, SUM(expected_amount) AS revenue").
		Where("status = ? AND updated_at >= ?", parcelModel.StatusPaid, since).
		Group("month").
		Order("month").
		Scan(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

// DashboardStats computes parcel counts plus the all-time expense total.
func (s *Service) DashboardStats() (*DashboardStats, error) {
	var out DashboardStats

	if err := s.DB.Model(&parcelModel.Parcel{}).Count(&out.TotalParcels).Error; err != nil {
		return nil, err
	}

	counts := []struct {
		status parcelModel.Status
		dest   *int64
	}{
		{parcelModel.StatusPending, &out.PendingParcels},
		{parcelModel.StatusPaid, &out.PaidParcels},
		{parcelModel.StatusOverdue, &out.OverdueParcels},
	}
	for _, c := range counts {
		err := s.DB.Model(&parcelModel.Parcel{}).
			Where("status = ?", c.status).
			Count(c.dest).Error
		if err != nil {
			return nil, err
		}
	}

	err := s.DB.Model(&expenseModel.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&out.TotalExpenses).Error
	if err != nil {
		return nil, err
	}

	return &out, nil
}
