package usecase

import (
	"encoding/json"
	"time"

	"github.com/sairajmatkardevX/stockpilot-api/internal/application/dto"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/entity"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/repository"
)

// PreferenceUseCase blob de preferencias de UI por usuario (tema, sidebar, etc.).
// Es estado de presentación serializado, separado del cache de datos del servidor.
type PreferenceUseCase struct {
	repo repository.PreferenceRepository
}

// NewPreferenceUseCase construye el caso de uso.
func NewPreferenceUseCase(repo repository.PreferenceRepository) *PreferenceUseCase {
	return &PreferenceUseCase{repo: repo}
}

// Get devuelve las preferencias del usuario; objeto vacío si nunca guardó.
func (uc *PreferenceUseCase) Get(userID int64) (*dto.UserPreferenceResponse, error) {
	pref, err := uc.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if pref == nil {
		return &dto.UserPreferenceResponse{Preferences: json.RawMessage("{}")}, nil
	}
	return &dto.UserPreferenceResponse{
		Preferences: json.RawMessage(pref.Data),
		UpdatedAt:   &pref.UpdatedAt,
	}, nil
}

// Update reemplaza el blob completo. El cuerpo debe ser un objeto JSON válido.
func (uc *PreferenceUseCase) Update(userID int64, data json.RawMessage) (*dto.UserPreferenceResponse, error) {
	if !json.Valid(data) {
		return nil, domain.ErrInvalidInput
	}
	pref := &entity.UserPreference{
		UserID:    userID,
		Data:      data,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Upsert(pref); err != nil {
		return nil, err
	}
	return &dto.UserPreferenceResponse{
		Preferences: data,
		UpdatedAt:   &pref.UpdatedAt,
	}, nil
}
