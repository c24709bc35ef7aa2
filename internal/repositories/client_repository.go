package repositories

import (
	"context"
	"errors"
	"time"

	"estatedesk-backend/internal/models"
	"estatedesk-backend/pkg/metrics"

	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

// FindByIDForAgent loads a client only when it belongs to the given agent.
// A row owned by another agent is indistinguishable from a missing row, so
// existence never leaks across agents.
func (r *clientRepository) FindByIDForAgent(ctx context.Context, id, agentID uint) (*models.Client, error) {
	start := time.Now()
	var client models.Client
	err := r.db.WithContext(ctx).Where("id = ? AND agent_id = ?", id, agentID).First(&client).Error
	metrics.DBOperationDuration.WithLabelValues("find_one", "clients").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found
		}
		metrics.DBErrorsTotal.WithLabelValues("find_one", "clients").Inc()
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindAllByAgent(ctx context.Context, agentID uint) ([]models.Client, error) {
	start := time.Now()
	clients := []models.Client{}
	err := r.db.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("created_at DESC, id ASC").
		Find(&clients).Error
	metrics.DBOperationDuration.WithLabelValues("find", "clients").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("find", "clients").Inc()
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(client).Error
	metrics.DBOperationDuration.WithLabelValues("insert", "clients").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("insert", "clients").Inc()
		return err
	}
	return nil
}

func (r *clientRepository) Update(ctx context.Context, client *models.Client) error {
	start := time.Now()
	result := r.db.WithContext(ctx).Model(&models.Client{}).
		Where("id = ? AND agent_id = ?", client.ID, client.AgentID).
		Select("Name", "Email", "Phone", "Notes", "Status").
		Updates(client)
	metrics.DBOperationDuration.WithLabelValues("update", "clients").Observe(time.Since(start).Seconds())
	if result.Error != nil {
		metrics.DBErrorsTotal.WithLabelValues("update", "clients").Inc()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id, agentID uint) (bool, error) {
	start := time.Now()
	result := r.db.WithContext(ctx).Where("id = ? AND agent_id = ?", id, agentID).Delete(&models.Client{})
	metrics.DBOperationDuration.WithLabelValues("delete", "clients").Observe(time.Since(start).Seconds())
	if result.Error != nil {
		metrics.DBErrorsTotal.WithLabelValues("delete", "clients").Inc()
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Client{}).Count(&total).Error
	metrics.DBOperationDuration.WithLabelValues("count", "clients").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("count", "clients").Inc()
		return 0, err
	}
	return total, nil
}
