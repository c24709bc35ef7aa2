package repositories

import (
	"context"
	"errors"
	"time"

	"estatedesk-backend/internal/models"
	"estatedesk-backend/pkg/metrics"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	start := time.Now()
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	metrics.DBOperationDuration.WithLabelValues("find_one", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found
		}
		metrics.DBErrorsTotal.WithLabelValues("find_one", "users").Inc()
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	start := time.Now()
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	metrics.DBOperationDuration.WithLabelValues("find_one", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found
		}
		metrics.DBErrorsTotal.WithLabelValues("find_one", "users").Inc()
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	start := time.Now()
	users := []models.User{}
	err := r.db.WithContext(ctx).Order("created_at DESC, id ASC").Find(&users).Error
	metrics.DBOperationDuration.WithLabelValues("find", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("find", "users").Inc()
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(user).Error
	metrics.DBOperationDuration.WithLabelValues("insert", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("insert", "users").Inc()
		return err
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Save(user).Error
	metrics.DBOperationDuration.WithLabelValues("update", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("update", "users").Inc()
		return err
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	start := time.Now()
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	metrics.DBOperationDuration.WithLabelValues("delete", "users").Observe(time.Since(start).Seconds())
	if result.Error != nil {
		metrics.DBErrorsTotal.WithLabelValues("delete", "users").Inc()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	start := time.Now()
	var total int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&total).Error
	metrics.DBOperationDuration.WithLabelValues("count", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("count", "users").Inc()
		return 0, err
	}
	return total, nil
}
