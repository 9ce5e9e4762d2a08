package irrigation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/forest"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
)

func encodeModel(m *TrainedModel) (*models.TrainedModel, error) {
	if m == nil || m.Forest == nil {
		return nil, errors.New("model has no forest")
	}
	data, err := m.Forest.Marshal()
	if err != nil {
		return nil, fmt.Errorf("encode model: %w", err)
	}
	return &models.TrainedModel{
		HubID:       m.HubID,
		ModelData:   datatypes.JSON(data),
		SampleCount: m.SampleCount,
		TrainedAt:   m.TrainedAt.UTC(),
	}, nil
}

func decodeModel(rec *models.TrainedModel) (*TrainedModel, error) {
	f, err := forest.Unmarshal(rec.ModelData)
	if err != nil {
		return nil, &HubError{HubID: rec.HubID, Err: fmt.Errorf("decode model: %w", err)}
	}
	return &TrainedModel{
		HubID:       rec.HubID,
		Forest:      f,
		SampleCount: rec.SampleCount,
		TrainedAt:   rec.TrainedAt.UTC(),
	}, nil
}

func (c *Core) saveModel(ctx context.Context, m *TrainedModel) error {
	logger := common.GetLoggerWith(
		common.LoggerNameIrrigationCore,
		zap.String(common.LoggerFieldIrrigationCategory, common.LoggerCategoryModelStore),
	)

	rec, err := encodeModel(m)
	if err != nil {
		return err
	}

	err = c.Db.Conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hub_id"}},
		UpdateAll: true,
	}).Create(rec).Error

	if err == nil {
		logger.Info("Model saved for hub",
			zap.String("hub_id", rec.HubID),
			zap.Int("sample_count", rec.SampleCount),
			zap.Time("trained_at", rec.TrainedAt))
	}

	return err
}

func (c *Core) loadModel(ctx context.Context, hubID string) (*TrainedModel, bool, error) {
	var rec models.TrainedModel
	err := c.Db.Conn.WithContext(ctx).First(&rec, "hub_id = ?", hubID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	m, err := decodeModel(&rec)
	if err != nil {
		return nil, false, err
	}
	return m, true, nil
}

type IModelStoreImpl struct {
	core *Core
}

func (im *IModelStoreImpl) Save(ctx context.Context, model *TrainedModel) error {
	return im.core.saveModel(ctx, model)
}

func (im *IModelStoreImpl) Load(ctx context.Context, hubID string) (*TrainedModel, bool, error) {
	return im.core.loadModel(ctx, hubID)
}

func (c *Core) GetIModelStore() IModelStore {
	return &IModelStoreImpl{core: c}
}

// MemoryModelStore keeps serialized models in memory, so loads still go through the
// same decode path as the database store.
type MemoryModelStore struct {
	mu      sync.RWMutex
	records map[string]models.TrainedModel
}

func NewMemoryModelStore() *MemoryModelStore {
	return &MemoryModelStore{records: make(map[string]models.TrainedModel)}
}

func (s *MemoryModelStore) Save(_ context.Context, m *TrainedModel) error {
	rec, err := encodeModel(m)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.HubID] = *rec
	return nil
}

func (s *MemoryModelStore) Load(_ context.Context, hubID string) (*TrainedModel, bool, error) {
	s.mu.RLock()
	rec, ok := s.records[hubID]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	m, err := decodeModel(&rec)
	if err != nil {
		return nil, false, err
	}
	return m, true, nil
}
