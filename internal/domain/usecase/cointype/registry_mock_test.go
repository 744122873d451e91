package cointype

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/coin-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/coin-ledger/mocks/port/persistence"
)

type registryMocks struct {
	uow       *mockpersistence.MockUnitOfWork
	coinTypes *mockpersistence.MockCoinTypeRepository
	history   *mockpersistence.MockValueHistoryRepository
	time      *mockcore.MockTimeProvider
	logger    *mockcore.MockLogger
}

var registryNow = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

func newMockedRegistry(t *testing.T) (*Registry, *registryMocks) {
	m := &registryMocks{
		uow:       mockpersistence.NewMockUnitOfWork(t),
		coinTypes: mockpersistence.NewMockCoinTypeRepository(t),
		history:   mockpersistence.NewMockValueHistoryRepository(t),
		time:      mockcore.NewMockTimeProvider(t),
		logger:    mockcore.NewMockLogger(t),
	}
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	m.time.EXPECT().Now().Return(registryNow).Maybe()
	m.uow.EXPECT().GetCoinTypeRepository(mock.Anything).Return(m.coinTypes).Maybe()
	m.uow.EXPECT().GetValueHistoryRepository(mock.Anything).Return(m.history).Maybe()

	return NewRegistry(m.uow, m.time, m.logger), m
}

func bhc() *entity.CoinType {
	return &entity.CoinType{
		ID:           1,
		Symbol:       "BHC",
		Kind:         entity.KindPlatform,
		InitialValue: decimal.NewFromInt(1),
		CurrentValue: decimal.NewFromInt(1),
		IsActive:     true,
	}
}

func TestRegistry_SetCurrentValue_RollsBackWhenHistoryFails(t *testing.T) {
	// Arrange
	registry, m := newMockedRegistry(t)
	txCtx := context.WithValue(context.Background(), struct{ name string }{"tx"}, true)
	value := decimal.RequireFromString("1.75")

	m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
	m.coinTypes.EXPECT().GetByID(txCtx, uint64(1)).Return(bhc(), nil)
	m.coinTypes.EXPECT().UpdateValue(txCtx, uint64(1), mock.MatchedBy(value.Equal), registryNow).Return(nil)
	m.history.EXPECT().Record(txCtx, mock.AnythingOfType("*entity.ValueSample")).Return(errs.ErrDatabaseConnection)
	m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

	// Act
	coinType, err := registry.SetCurrentValue(context.Background(), 1, value)

	// Assert
	assert.Nil(t, coinType)
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRegistry_RecordSample(t *testing.T) {
	t.Run("zero timestamp records now", func(t *testing.T) {
		// Arrange
		registry, m := newMockedRegistry(t)
		m.coinTypes.EXPECT().GetByID(mock.Anything, uint64(1)).Return(bhc(), nil)
		m.history.EXPECT().Record(mock.Anything, mock.MatchedBy(func(s *entity.ValueSample) bool {
			return s.CoinTypeID == 1 && s.RecordedAt.Equal(registryNow) && s.Value.Equal(decimal.RequireFromString("1.20"))
		})).Return(nil).Once()

		// Act
		err := registry.RecordSample(context.Background(), 1, decimal.RequireFromString("1.20"), time.Time{})

		// Assert
		require.NoError(t, err)
	})

	t.Run("unknown coin type writes nothing", func(t *testing.T) {
		registry, m := newMockedRegistry(t)
		m.coinTypes.EXPECT().GetByID(mock.Anything, uint64(9)).Return(nil, errs.ErrCoinTypeNotFound)

		err := registry.RecordSample(context.Background(), 9, decimal.NewFromInt(1), registryNow)

		assert.ErrorIs(t, err, errs.ErrCoinTypeNotFound)
		m.history.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})

	t.Run("non-positive value", func(t *testing.T) {
		registry, _ := newMockedRegistry(t)

		err := registry.RecordSample(context.Background(), 1, decimal.Zero, registryNow)

		assert.ErrorIs(t, err, errs.ErrInvalidCoinType)
	})
}

func TestRegistry_QueryRange_PassesThrough(t *testing.T) {
	// Arrange
	registry, m := newMockedRegistry(t)
	from, to := registryNow.Add(-time.Hour), registryNow
	samples := []*entity.ValueSample{{CoinTypeID: 1, Value: decimal.NewFromInt(1), RecordedAt: from}}
	m.coinTypes.EXPECT().GetByID(mock.Anything, uint64(1)).Return(bhc(), nil)
	m.history.EXPECT().Range(mock.Anything, uint64(1), from, to).Return(samples, nil)

	// Act
	got, err := registry.QueryRange(context.Background(), 1, from, to)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, samples, got)

	_, err = registry.QueryRange(context.Background(), 1, to, from)
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}
