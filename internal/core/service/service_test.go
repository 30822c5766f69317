package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/storefront-go/fourthwall/internal/core/domain"
	"github.com/storefront-go/fourthwall/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogSource struct {
	mock.Mock
}

func (m *MockCatalogSource) Catalog(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

type MockCartSource struct {
	mock.Mock
}

func (m *MockCartSource) Cart(ctx context.Context) (domain.Cart, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(domain.Cart)
	return c, args.Error(1)
}

type MockCatalogSink struct {
	mock.Mock
}

func (m *MockCatalogSink) WriteCatalog(ctx context.Context, ps []domain.Product) error {
	args := m.Called(ctx, ps)
	return args.Error(0)
}

type MockCartSink struct {
	mock.Mock
}

func (m *MockCartSink) WriteCart(ctx context.Context, c domain.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func TestExportCatalog(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		ps := []domain.Product{{ID: "prod-1", Title: "Shirt"}}

		source := new(MockCatalogSource)
		source.On("Catalog", context.Background()).Return(ps, nil)

		sink := new(MockCatalogSink)
		sink.On("WriteCatalog", context.Background(), ps).Return(nil)

		s := service.New(source, nil, sink, nil)
		err := s.ExportCatalog(context.Background())
		require.NoError(t, err)

		sink.AssertExpectations(t)
	})

	t.Run("SourceError", func(t *testing.T) {
		wantErr := errors.New("payload is malformed")

		source := new(MockCatalogSource)
		source.On("Catalog", context.Background()).Return(nil, wantErr)

		sink := new(MockCatalogSink)

		s := service.New(source, nil, sink, nil)
		err := s.ExportCatalog(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, wantErr)

		sink.AssertNotCalled(t, "WriteCatalog", mock.Anything, mock.Anything)
	})

	t.Run("SinkError", func(t *testing.T) {
		wantErr := errors.New("out dir is not writable")

		source := new(MockCatalogSource)
		source.On("Catalog", context.Background()).Return([]domain.Product{}, nil)

		sink := new(MockCatalogSink)
		sink.On("WriteCatalog", context.Background(), mock.Anything).Return(wantErr)

		s := service.New(source, nil, sink, nil)
		err := s.ExportCatalog(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("ContextCanceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s := service.New(new(MockCatalogSource), nil, new(MockCatalogSink), nil)
		err := s.ExportCatalog(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestExportCart(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		c := domain.Cart{ID: "cart-1", TotalQuantity: 3}

		source := new(MockCartSource)
		source.On("Cart", context.Background()).Return(c, nil)

		sink := new(MockCartSink)
		sink.On("WriteCart", context.Background(), c).Return(nil)

		s := service.New(nil, source, nil, sink)
		err := s.ExportCart(context.Background())
		require.NoError(t, err)

		sink.AssertExpectations(t)
	})

	t.Run("SourceError", func(t *testing.T) {
		wantErr := errors.New("payload is malformed")

		source := new(MockCartSource)
		source.On("Cart", context.Background()).Return(domain.Cart{}, wantErr)

		s := service.New(nil, source, nil, new(MockCartSink))
		err := s.ExportCart(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, wantErr)
	})
}
