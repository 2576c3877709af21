package repository

import (
	"errors"
	"time"

	"github.com/nyayaai/backend/internal/model"
	"gorm.io/gorm"
)

type consultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) ConsultationRepository {
	return &consultationRepository{db: db}
}

func (r *consultationRepository) Create(req *model.ConsultationRequest) error {
	return r.db.Create(req).Error
}

func (r *consultationRepository) ListByOwner(ownerID string) ([]model.ConsultationRequest, error) {
	var reqs []model.ConsultationRequest
	result := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&reqs)
	return reqs, result.Error
}

func (r *consultationRepository) GetByOwner(id uint, ownerID string) (*model.ConsultationRequest, error) {
	var req model.ConsultationRequest
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&req)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &req, nil
}

func (r *consultationRepository) UpdateStatus(id uint, ownerID, status string) error {
	result := r.db.Model(&model.ConsultationRequest{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
