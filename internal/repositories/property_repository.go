package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"estatedesk-backend/internal/models"
	"estatedesk-backend/pkg/metrics"

	"gorm.io/gorm"
)

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// ownerProjection limits the preloaded owner to the reduced summary columns;
// the password hash is never selected.
func ownerProjection(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "phone")
}

func imageOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, id ASC")
}

// applyFilter builds the conjunction of all supplied constraints. An absent
// field contributes no constraint. The search term is one AND-term that is
// itself an OR of three substring matches.
func (r *propertyRepository) applyFilter(q *gorm.DB, f models.PropertyFilter) *gorm.DB {
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}
	if f.Type != nil {
		q = q.Where("LOWER(type) = ?", strings.ToLower(*f.Type))
	}
	if f.Status != nil {
		q = q.Where("LOWER(status) = ?", strings.ToLower(*f.Status))
	}
	if f.MinBedrooms != nil {
		q = q.Where("bedrooms >= ?", *f.MinBedrooms)
	}
	if f.Location != nil {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(*f.Location)+"%")
	}
	if f.PriceMin != nil {
		q = q.Where("price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("price <= ?", *f.PriceMax)
	}
	if f.Search != nil {
		term := "%" + strings.ToLower(*f.Search) + "%"
		q = q.Where(
			r.db.Where("LOWER(title) LIKE ?", term).
				Or("LOWER(description) LIKE ?", term).
				Or("LOWER(location) LIKE ?", term),
		)
	}
	return q
}

// orderClause maps the sort key to SQL. Every ordering carries id ASC as a
// deterministic tie-break.
func orderClause(sort models.SortOrder) string {
	switch sort {
	case models.SortPriceLow:
		return "price ASC, id ASC"
	case models.SortPriceHigh:
		return "price DESC, id ASC"
	case models.SortArea:
		return "area DESC, id ASC"
	default:
		return "created_at DESC, id ASC"
	}
}

// Search runs the filtered, sorted, windowed data query plus an independent
// count of all rows matching the same conjunction. Read-only.
func (r *propertyRepository) Search(ctx context.Context, f models.PropertyFilter) ([]models.Property, int64, error) {
	start := time.Now()
	var total int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.Property{}), f).Count(&total).Error
	metrics.DBOperationDuration.WithLabelValues("count", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("count", "properties").Inc()
		return nil, 0, err
	}

	properties := []models.Property{}
	start = time.Now()
	err = r.applyFilter(r.db.WithContext(ctx).Model(&models.Property{}), f).
		Preload("Images", imageOrder).
		Preload("Owner", ownerProjection).
		Order(orderClause(f.Sort)).
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&properties).Error
	metrics.DBOperationDuration.WithLabelValues("search", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("search", "properties").Inc()
		return nil, 0, err
	}
	return properties, total, nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id uint) (*models.Property, error) {
	start := time.Now()
	var property models.Property
	err := r.db.WithContext(ctx).
		Preload("Images", imageOrder).
		Preload("Owner", ownerProjection).
		First(&property, id).Error
	metrics.DBOperationDuration.WithLabelValues("find_one", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found
		}
		metrics.DBErrorsTotal.WithLabelValues("find_one", "properties").Inc()
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(property).Error
	metrics.DBOperationDuration.WithLabelValues("insert", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("insert", "properties").Inc()
		return err
	}
	return nil
}

func (r *propertyRepository) Update(ctx context.Context, property *models.Property) error {
	start := time.Now()
	result := r.db.WithContext(ctx).Model(&models.Property{}).
		Where("id = ?", property.ID).
		Select("Title", "Description", "Price", "PriceType", "Type", "Status",
			"Location", "Latitude", "Longitude", "Bedrooms", "Bathrooms",
			"Area", "Amenities", "Featured").
		Updates(property)
	metrics.DBOperationDuration.WithLabelValues("update", "properties").Observe(time.Since(start).Seconds())
	if result.Error != nil {
		metrics.DBErrorsTotal.WithLabelValues("update", "properties").Inc()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the dependent image rows first, then the property row. The
// two statements are independent; a failure between them leaves the property
// without images rather than a dangling image set.
func (r *propertyRepository) Delete(ctx context.Context, id uint) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error
	metrics.DBOperationDuration.WithLabelValues("delete", "property_images").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("delete", "property_images").Inc()
		return err
	}

	start = time.Now()
	result := r.db.WithContext(ctx).Delete(&models.Property{}, id)
	metrics.DBOperationDuration.WithLabelValues("delete", "properties").Observe(time.Since(start).Seconds())
	if result.Error != nil {
		metrics.DBErrorsTotal.WithLabelValues("delete", "properties").Inc()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *propertyRepository) AddImages(ctx context.Context, propertyID uint, images []models.PropertyImage) error {
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		images[i].PropertyID = propertyID
	}
	start := time.Now()
	err := r.db.WithContext(ctx).Create(&images).Error
	metrics.DBOperationDuration.WithLabelValues("insert", "property_images").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("insert", "property_images").Inc()
		return err
	}
	return nil
}

func (r *propertyRepository) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Property{}).Count(&total).Error
	metrics.DBOperationDuration.WithLabelValues("count", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("count", "properties").Inc()
		return 0, err
	}
	return total, nil
}
