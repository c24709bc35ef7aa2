package repositories

import (
	"context"
	"errors"
	"time"

	"estatedesk-backend/internal/models"
	"estatedesk-backend/pkg/metrics"

	"gorm.io/gorm"
)

type inquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) FindByID(ctx context.Context, id uint) (*models.Inquiry, error) {
	start := time.Now()
	var inquiry models.Inquiry
	err := r.db.WithContext(ctx).First(&inquiry, id).Error
	metrics.DBOperationDuration.WithLabelValues("find_one", "inquiries").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found
		}
		metrics.DBErrorsTotal.WithLabelValues("find_one", "inquiries").Inc()
		return nil, err
	}
	return &inquiry, nil
}

func (r *inquiryRepository) FindAll(ctx context.Context) ([]models.Inquiry, error) {
	start := time.Now()
	items := []models.Inquiry{}
	err := r.db.WithContext(ctx).Order("created_at DESC, id ASC").Find(&items).Error
	metrics.DBOperationDuration.WithLabelValues("find", "inquiries").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("find", "inquiries").Inc()
		return nil, err
	}
	return items, nil
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(inquiry).Error
	metrics.DBOperationDuration.WithLabelValues("insert", "inquiries").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("insert", "inquiries").Inc()
		return err
	}
	return nil
}

func (r *inquiryRepository) UpdateStatus(ctx context.Context, id uint, status models.InquiryStatus) (bool, error) {
	start := time.Now()
	result := r.db.WithContext(ctx).Model(&models.Inquiry{}).
		Where("id = ?", id).
		Update("status", status)
	metrics.DBOperationDuration.WithLabelValues("update", "inquiries").Observe(time.Since(start).Seconds())
	if result.Error != nil {
		metrics.DBErrorsTotal.WithLabelValues("update", "inquiries").Inc()
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *inquiryRepository) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Inquiry{}).Count(&total).Error
	metrics.DBOperationDuration.WithLabelValues("count", "inquiries").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("count", "inquiries").Inc()
		return 0, err
	}
	return total, nil
}

func (r *inquiryRepository) CountByStatus(ctx context.Context, status models.InquiryStatus) (int64, error) {
	start := time.Now()
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Inquiry{}).Where("status = ?", status).Count(&total).Error
	metrics.DBOperationDuration.WithLabelValues("count", "inquiries").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("count", "inquiries").Inc()
		return 0, err
	}
	return total, nil
}
