package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Reservation (write)
// --------------------------------------------------

func (r *ReservationGormRepository) Create(
	ctx context.Context,
	res *models.Reservation,
) error {
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

func (r *ReservationGormRepository) Update(
	ctx context.Context,
	id string,
	patch domain.Patch,
) (*models.Reservation, error) {

	var res models.Reservation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&res, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&res).Updates(patch.Columns()).Error; err != nil {
			return err
		}
		return tx.First(&res, "id = ?", id).Error
	})
	if err != nil {
		return nil, translate("update reservation", err)
	}

	return &res, nil
}

func (r *ReservationGormRepository) Delete(
	ctx context.Context,
	id string,
) (*models.Reservation, error) {

	var res models.Reservation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&res, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Reservation{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, translate("delete reservation", err)
	}

	return &res, nil
}

// --------------------------------------------------
// Reservation (read)
// --------------------------------------------------

func (r *ReservationGormRepository) FindAll(
	ctx context.Context,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("fetch reservations: %w", err)
	}
	return out, nil
}

func (r *ReservationGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		return nil, translate("fetch reservation", err)
	}
	return &res, nil
}

func (r *ReservationGormRepository) FindByDate(
	ctx context.Context,
	day time.Time,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1)).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("fetch reservations by date: %w", err)
	}
	return out, nil
}

func (r *ReservationGormRepository) FindByDateAndTime(
	ctx context.Context,
	day time.Time,
	clock string,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where(
			"date >= ? AND date < ? AND time = ?",
			day, day.AddDate(0, 0, 1), clock,
		).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("fetch reservations by date and time: %w", err)
	}
	return out, nil
}

func (r *ReservationGormRepository) FindByStatus(
	ctx context.Context,
	status domain.Status,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("fetch reservations by status: %w", err)
	}
	return out, nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *ReservationGormRepository) CreateAuditLog(
	ctx context.Context,
	entry *models.AuditLog,
) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ReservationGormRepository) ListAuditLogs(
	ctx context.Context,
	filter audit.Filter,
) ([]models.AuditLog, error) {

	q := r.db.WithContext(ctx).Model(&models.AuditLog{})
	if filter.EntityID != "" {
		q = q.Where("entity_id = ?", filter.EntityID)
	}

	var out []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(filter.LimitOrDefault()).
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("fetch audit logs: %w", err)
	}
	return out, nil
}

func translate(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Compile-time checks
var (
	_ domain.Repository = (*ReservationGormRepository)(nil)
	_ audit.Store       = (*ReservationGormRepository)(nil)
)
