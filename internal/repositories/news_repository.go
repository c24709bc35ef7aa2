package repositories

import (
	"context"
	"errors"
	"time"

	"estatedesk-backend/internal/models"
	"estatedesk-backend/pkg/metrics"

	"gorm.io/gorm"
)

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) FindByID(ctx context.Context, id uint) (*models.News, error) {
	start := time.Now()
	var news models.News
	err := r.db.WithContext(ctx).First(&news, id).Error
	metrics.DBOperationDuration.WithLabelValues("find_one", "news").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found
		}
		metrics.DBErrorsTotal.WithLabelValues("find_one", "news").Inc()
		return nil, err
	}
	return &news, nil
}

func (r *newsRepository) FindPublished(ctx context.Context) ([]models.News, error) {
	start := time.Now()
	items := []models.News{}
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC, id ASC").
		Find(&items).Error
	metrics.DBOperationDuration.WithLabelValues("find", "news").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("find", "news").Inc()
		return nil, err
	}
	return items, nil
}

func (r *newsRepository) FindAll(ctx context.Context) ([]models.News, error) {
	start := time.Now()
	items := []models.News{}
	err := r.db.WithContext(ctx).Order("created_at DESC, id ASC").Find(&items).Error
	metrics.DBOperationDuration.WithLabelValues("find", "news").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("find", "news").Inc()
		return nil, err
	}
	return items, nil
}

func (r *newsRepository) Create(ctx context.Context, news *models.News) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(news).Error
	metrics.DBOperationDuration.WithLabelValues("insert", "news").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("insert", "news").Inc()
		return err
	}
	return nil
}

func (r *newsRepository) Update(ctx context.Context, news *models.News) error {
	start := time.Now()
	result := r.db.WithContext(ctx).Model(&models.News{}).
		Where("id = ?", news.ID).
		Select("Title", "Body", "Category", "EventDate", "Published").
		Updates(news)
	metrics.DBOperationDuration.WithLabelValues("update", "news").Observe(time.Since(start).Seconds())
	if result.Error != nil {
		metrics.DBErrorsTotal.WithLabelValues("update", "news").Inc()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *newsRepository) Delete(ctx context.Context, id uint) error {
	start := time.Now()
	result := r.db.WithContext(ctx).Delete(&models.News{}, id)
	metrics.DBOperationDuration.WithLabelValues("delete", "news").Observe(time.Since(start).Seconds())
	if result.Error != nil {
		metrics.DBErrorsTotal.WithLabelValues("delete", "news").Inc()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *newsRepository) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	var total int64
	err := r.db.WithContext(ctx).Model(&models.News{}).Count(&total).Error
	metrics.DBOperationDuration.WithLabelValues("count", "news").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("count", "news").Inc()
		return 0, err
	}
	return total, nil
}
