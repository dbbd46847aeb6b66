package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) ResolveFacets(ctx context.Context, filters domain.VenueFilters) (domain.FacetResolution, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).(domain.FacetResolution), args.Error(1)
}

func (m *MockVenueRepository) FindVenues(ctx context.Context, filters domain.VenueFilters, res domain.FacetResolution, query string, limit, offset int) (*domain.PaginatedResult, error) {
	args := m.Called(ctx, filters, res, query, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaginatedResult), args.Error(1)
}

func (m *MockVenueRepository) CountVenues(ctx context.Context, filters domain.VenueFilters, res domain.FacetResolution, query string) (int, error) {
	args := m.Called(ctx, filters, res, query)
	return args.Int(0), args.Error(1)
}

func (m *MockVenueRepository) GetVenueBySlug(ctx context.Context, slug string) (*domain.VenueDetail, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VenueDetail), args.Error(1)
}

type MockVenueStorage struct {
	mock.Mock
}

func (m *MockVenueStorage) BatchSave(ctx context.Context, records []domain.VenueRecord) (*domain.BatchSaveStats, error) {
	args := m.Called(ctx, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchSaveStats), args.Error(1)
}

type MockIngestReporter struct {
	mock.Mock
}

func (m *MockIngestReporter) ReportResults(ctx context.Context, batchID uuid.UUID, stats *domain.BatchSaveStats) error {
	args := m.Called(ctx, batchID, stats)
	return args.Error(0)
}

func TestListVenues_InvalidPagination(t *testing.T) {
	mockRepo := new(MockVenueRepository)
	uc := NewListVenuesUseCase(mockRepo)

	for _, tc := range []struct{ limit, offset int }{
		{0, 0},
		{-5, 0},
		{20, -1},
	} {
		result, err := uc.Execute(context.Background(), domain.VenueFilters{}, tc.limit, tc.offset)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrInvalidPagination)
	}

	mockRepo.AssertNotCalled(t, "ResolveFacets", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "FindVenues", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListVenues_EmptyFacetIntersectionShortCircuits(t *testing.T) {
	mockRepo := new(MockVenueRepository)
	uc := NewListVenuesUseCase(mockRepo)

	filters := domain.VenueFilters{CategoryIDs: []int64{1}, RegionIDs: []int64{99}}
	mockRepo.On("ResolveFacets", mock.Anything, filters).Return(domain.ConstrainedTo(nil), nil)

	result, err := uc.Execute(context.Background(), filters, 20, 40)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result.Venues)
	assert.Equal(t, 0, result.TotalCount)
	assert.Equal(t, 3, result.CurrentPage)
	assert.Equal(t, 20, result.ItemsPerPage)
	mockRepo.AssertNotCalled(t, "FindVenues", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestListVenues_Success(t *testing.T) {
	mockRepo := new(MockVenueRepository)
	uc := NewListVenuesUseCase(mockRepo)

	filters := domain.VenueFilters{City: "austin"}
	expected := &domain.PaginatedResult{
		Venues:       []domain.Venue{{ID: 1, Name: "Neon Arcade"}},
		TotalCount:   1,
		CurrentPage:  1,
		ItemsPerPage: 20,
	}

	mockRepo.On("ResolveFacets", mock.Anything, filters).Return(domain.Unconstrained(), nil)
	mockRepo.On("FindVenues", mock.Anything, filters, domain.Unconstrained(), "", 20, 0).Return(expected, nil)

	result, err := uc.Execute(context.Background(), filters, 20, 0)

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	mockRepo.AssertExpectations(t)
}

func TestListVenues_ResolverError(t *testing.T) {
	mockRepo := new(MockVenueRepository)
	uc := NewListVenuesUseCase(mockRepo)

	expectedErr := errors.New("connection lost")
	mockRepo.On("ResolveFacets", mock.Anything, mock.Anything).Return(domain.FacetResolution{}, expectedErr)

	result, err := uc.Execute(context.Background(), domain.VenueFilters{CategoryIDs: []int64{1}}, 20, 0)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, expectedErr)
	mockRepo.AssertNotCalled(t, "FindVenues", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchVenues_TrimsQuery(t *testing.T) {
	mockRepo := new(MockVenueRepository)
	uc := NewSearchVenuesUseCase(mockRepo)

	expected := &domain.PaginatedResult{Venues: []domain.Venue{}, CurrentPage: 1, ItemsPerPage: 10}
	mockRepo.On("ResolveFacets", mock.Anything, mock.Anything).Return(domain.Unconstrained(), nil)
	mockRepo.On("FindVenues", mock.Anything, mock.Anything, mock.Anything, "arcade", 10, 0).Return(expected, nil)

	result, err := uc.Execute(context.Background(), "  arcade  ", domain.VenueFilters{}, 10, 0)

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	mockRepo.AssertExpectations(t)
}

func TestSearchVenues_EmptyIntersection(t *testing.T) {
	mockRepo := new(MockVenueRepository)
	uc := NewSearchVenuesUseCase(mockRepo)

	filters := domain.VenueFilters{AmenityIDs: []int64{5}}
	mockRepo.On("ResolveFacets", mock.Anything, filters).Return(domain.ConstrainedTo([]int64{}), nil)

	result, err := uc.Execute(context.Background(), "vr", filters, 10, 0)

	assert.NoError(t, err)
	assert.Empty(t, result.Venues)
	assert.Equal(t, 0, result.TotalCount)
	mockRepo.AssertNotCalled(t, "FindVenues", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCountVenues_EmptyIntersectionReturnsZero(t *testing.T) {
	mockRepo := new(MockVenueRepository)
	uc := NewCountVenuesUseCase(mockRepo)

	filters := domain.VenueFilters{CategoryIDs: []int64{1}, AmenityIDs: []int64{2}}
	mockRepo.On("ResolveFacets", mock.Anything, filters).Return(domain.ConstrainedTo(nil), nil)

	count, err := uc.Execute(context.Background(), "", filters)

	assert.NoError(t, err)
	assert.Equal(t, 0, count)
	mockRepo.AssertNotCalled(t, "CountVenues", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCountVenues_Success(t *testing.T) {
	mockRepo := new(MockVenueRepository)
	uc := NewCountVenuesUseCase(mockRepo)

	mockRepo.On("ResolveFacets", mock.Anything, mock.Anything).Return(domain.Unconstrained(), nil)
	mockRepo.On("CountVenues", mock.Anything, mock.Anything, domain.Unconstrained(), "bar").Return(17, nil)

	count, err := uc.Execute(context.Background(), " bar ", domain.VenueFilters{})

	assert.NoError(t, err)
	assert.Equal(t, 17, count)
	mockRepo.AssertExpectations(t)
}

func TestGetVenueBySlug_Success(t *testing.T) {
	mockRepo := new(MockVenueRepository)
	uc := NewGetVenueBySlugUseCase(mockRepo)

	expected := &domain.VenueDetail{Venue: domain.Venue{ID: 7, Slug: "neon-arcade-austin"}}
	mockRepo.On("GetVenueBySlug", mock.Anything, "neon-arcade-austin").Return(expected, nil)

	detail, err := uc.Execute(context.Background(), "neon-arcade-austin")

	assert.NoError(t, err)
	assert.Equal(t, expected, detail)
	mockRepo.AssertExpectations(t)
}

func TestGetVenueBySlug_NotFound(t *testing.T) {
	mockRepo := new(MockVenueRepository)
	uc := NewGetVenueBySlugUseCase(mockRepo)

	mockRepo.On("GetVenueBySlug", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	detail, err := uc.Execute(context.Background(), "ghost")

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaveVenues_Success(t *testing.T) {
	mockStorage := new(MockVenueStorage)
	mockReporter := new(MockIngestReporter)
	uc := NewSaveVenuesUseCase(mockStorage, mockReporter)

	batchID := uuid.New()
	records := []domain.VenueRecord{{Source: "crawler", SourceVenueID: "v-1", Name: "Neon Arcade"}}
	stats := &domain.BatchSaveStats{Created: 1}

	mockStorage.On("BatchSave", mock.Anything, records).Return(stats, nil)
	mockReporter.On("ReportResults", mock.Anything, batchID, stats).Return(nil)

	result, err := uc.Execute(context.Background(), batchID, records)

	assert.NoError(t, err)
	assert.Equal(t, stats, result)
	mockStorage.AssertExpectations(t)
	mockReporter.AssertExpectations(t)
}

func TestSaveVenues_ReporterFailureIsNotFatal(t *testing.T) {
	mockStorage := new(MockVenueStorage)
	mockReporter := new(MockIngestReporter)
	uc := NewSaveVenuesUseCase(mockStorage, mockReporter)

	stats := &domain.BatchSaveStats{Updated: 2}
	mockStorage.On("BatchSave", mock.Anything, mock.Anything).Return(stats, nil)
	mockReporter.On("ReportResults", mock.Anything, mock.Anything, stats).Return(errors.New("broker is down"))

	result, err := uc.Execute(context.Background(), uuid.New(), []domain.VenueRecord{{Source: "s", SourceVenueID: "1", Name: "n"}})

	// Пачка сохранена, ошибка отчета не откатывает запись
	assert.NoError(t, err)
	assert.Equal(t, stats, result)
}

func TestSaveVenues_StorageError(t *testing.T) {
	mockStorage := new(MockVenueStorage)
	mockReporter := new(MockIngestReporter)
	uc := NewSaveVenuesUseCase(mockStorage, mockReporter)

	expectedErr := errors.New("tx aborted")
	mockStorage.On("BatchSave", mock.Anything, mock.Anything).Return(nil, expectedErr)

	result, err := uc.Execute(context.Background(), uuid.New(), []domain.VenueRecord{{Source: "s", SourceVenueID: "1", Name: "n"}})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, expectedErr)
	mockReporter.AssertNotCalled(t, "ReportResults", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveVenues_NilReporter(t *testing.T) {
	mockStorage := new(MockVenueStorage)
	uc := NewSaveVenuesUseCase(mockStorage, nil)

	stats := &domain.BatchSaveStats{Skipped: 1}
	mockStorage.On("BatchSave", mock.Anything, mock.Anything).Return(stats, nil)

	result, err := uc.Execute(context.Background(), uuid.New(), []domain.VenueRecord{{Source: "s", SourceVenueID: "1", Name: "n"}})

	assert.NoError(t, err)
	assert.Equal(t, stats, result)
}
