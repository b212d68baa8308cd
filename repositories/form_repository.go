package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/M-Sanjay12o52o/formulate/configs/configsdatabase"
	"github.com/M-Sanjay12o52o/formulate/configs/configslog"
	"github.com/M-Sanjay12o52o/formulate/models"
)

// IFormRepository is the storage contract for form configurations.
type IFormRepository interface {
	Create(ctx context.Context, form *models.FormConfig) error
	FindByID(ctx context.Context, id uint) (*models.FormConfig, error)
	FindByPublicID(ctx context.Context, publicID string) (*models.FormConfig, error)
	CountAll(ctx context.Context) (int64, error)
}

// FormRepository implements IFormRepository over GORM.
type FormRepository struct {
	db *gorm.DB
}

// NewFormRepository creates a FormRepository on the shared connection.
func NewFormRepository() IFormRepository {
	return &FormRepository{db: configsdatabase.GetDB()}
}

// NewFormRepositoryTx creates a FormRepository bound to a transaction.
func NewFormRepositoryTx(tx *gorm.DB) IFormRepository {
	return &FormRepository{db: tx}
}

func (r *FormRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create persists the form and its fields as one aggregate. GORM writes
// the association inside a single transaction, so either the form and
// every field land, or nothing does.
func (r *FormRepository) Create(ctx context.Context, form *models.FormConfig) error {
	if form == nil {
		return errors.New("cannot create a nil form")
	}
	return r.getDB(ctx).Create(form).Error // BeforeCreate hooks run
}

// FindByID loads a form with its fields in authored order.
func (r *FormRepository) FindByID(ctx context.Context, id uint) (*models.FormConfig, error) {
	if id == 0 {
		return nil, errors.New("invalid form ID")
	}
	var form models.FormConfig
	err := r.getDB(ctx).Preload("Fields", orderedFields).First(&form, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FormRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &form, nil
}

// FindByPublicID loads a form by its API-facing identifier.
func (r *FormRepository) FindByPublicID(ctx context.Context, publicID string) (*models.FormConfig, error) {
	if publicID == "" {
		return nil, errors.New("invalid form public ID")
	}
	var form models.FormConfig
	err := r.getDB(ctx).Preload("Fields", orderedFields).Where("public_id = ?", publicID).First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FormRepository.FindByPublicID: DB error", zap.String("public_id", publicID), zap.Error(err))
		return nil, err
	}
	return &form, nil
}

// CountAll returns the number of stored forms.
func (r *FormRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.FormConfig{}).Count(&count).Error
	return count, err
}

func orderedFields(db *gorm.DB) *gorm.DB {
	return db.Order("form_fields.position ASC")
}

var _ IFormRepository = (*FormRepository)(nil)
