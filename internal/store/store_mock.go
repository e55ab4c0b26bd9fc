package store

import (
	"time"

	"github.com/IlyaRucavitcyn/ai-indicator/internal/contract"
	"github.com/IlyaRucavitcyn/ai-indicator/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetRunStore implements the StoreManager interface.
func (m *MockStoreManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	rs, _ := ret.Get(0).(contract.RunStore)
	return rs
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// BeginRun implements the RunStore interface.
func (m *MockRunStore) BeginRun(startTime time.Time, repoPath string, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, repoPath, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// FinishRun implements the RunStore interface.
func (m *MockRunStore) FinishRun(runID int64, endTime time.Time, filesRead int) error {
	args := m.Called(runID, endTime, filesRead)
	return args.Error(0)
}

// RecordIndicator implements the RunStore interface.
func (m *MockRunStore) RecordIndicator(runID int64, name string, value float64, description string) error {
	args := m.Called(runID, name, value, description)
	return args.Error(0)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// GetAllRuns implements the RunStore interface.
func (m *MockRunStore) GetAllRuns() ([]schema.RunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.RunRecord)
	return runs, args.Error(1)
}

// GetAllIndicators implements the RunStore interface.
func (m *MockRunStore) GetAllIndicators() ([]schema.IndicatorRecord, error) {
	args := m.Called()
	recs, _ := args.Get(0).([]schema.IndicatorRecord)
	return recs, args.Error(1)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
