package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

type MockFacetCatalog struct {
	mock.Mock
}

func (m *MockFacetCatalog) ListCategories(ctx context.Context, withCounts bool) ([]domain.Category, error) {
	args := m.Called(ctx, withCounts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockFacetCatalog) ListAmenities(ctx context.Context, withCounts bool) ([]domain.Amenity, error) {
	args := m.Called(ctx, withCounts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Amenity), args.Error(1)
}

func (m *MockFacetCatalog) ListRegions(ctx context.Context, withCounts bool) ([]domain.Region, error) {
	args := m.Called(ctx, withCounts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Region), args.Error(1)
}

func (m *MockFacetCatalog) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockFacetCatalog) GetAmenityBySlug(ctx context.Context, slug string) (*domain.Amenity, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Amenity), args.Error(1)
}

func (m *MockFacetCatalog) GetRegionBySlug(ctx context.Context, slug string) (*domain.Region, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Region), args.Error(1)
}

func (m *MockFacetCatalog) GetVenueStateCounts(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockFacetCatalog) GetRegionStateCounts(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockFacetCatalog) GetRegionsByState(ctx context.Context, state string) ([]domain.Region, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Region), args.Error(1)
}

func TestListFacets_EmptyNamesReturnsAll(t *testing.T) {
	mockCatalog := new(MockFacetCatalog)
	uc := NewListFacetsUseCase(mockCatalog)

	mockCatalog.On("ListCategories", mock.Anything, false).Return([]domain.Category{{ID: 1, Name: "Arcade"}}, nil)
	mockCatalog.On("ListAmenities", mock.Anything, false).Return([]domain.Amenity{{ID: 2, Name: "VR"}}, nil)
	mockCatalog.On("ListRegions", mock.Anything, false).Return([]domain.Region{{ID: 3, Name: "Downtown"}}, nil)

	result, err := uc.Execute(context.Background(), nil, false)

	assert.NoError(t, err)
	assert.Len(t, result.Categories, 1)
	assert.Len(t, result.Amenities, 1)
	assert.Len(t, result.Regions, 1)
	mockCatalog.AssertExpectations(t)
}

func TestListFacets_SelectsRequestedOnly(t *testing.T) {
	mockCatalog := new(MockFacetCatalog)
	uc := NewListFacetsUseCase(mockCatalog)

	mockCatalog.On("ListCategories", mock.Anything, true).Return([]domain.Category{{ID: 1, VenueCount: 4}}, nil)

	result, err := uc.Execute(context.Background(), []string{"categories"}, true)

	assert.NoError(t, err)
	assert.Len(t, result.Categories, 1)
	assert.Nil(t, result.Amenities)
	assert.Nil(t, result.Regions)
	mockCatalog.AssertNotCalled(t, "ListAmenities", mock.Anything, mock.Anything)
	mockCatalog.AssertNotCalled(t, "ListRegions", mock.Anything, mock.Anything)
}

func TestListFacets_StorageError(t *testing.T) {
	mockCatalog := new(MockFacetCatalog)
	uc := NewListFacetsUseCase(mockCatalog)

	expectedErr := errors.New("connection lost")
	mockCatalog.On("ListCategories", mock.Anything, false).Return(nil, expectedErr)

	result, err := uc.Execute(context.Background(), []string{"categories"}, false)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, expectedErr)
}

func TestGetFacetBySlug_Category(t *testing.T) {
	mockCatalog := new(MockFacetCatalog)
	uc := NewGetFacetBySlugUseCase(mockCatalog)

	expected := &domain.Category{ID: 1, Slug: "arcade", VenueCount: 12}
	mockCatalog.On("GetCategoryBySlug", mock.Anything, "arcade").Return(expected, nil)

	entity, err := uc.Execute(context.Background(), domain.FacetCategory, "arcade")

	assert.NoError(t, err)
	assert.Equal(t, expected, entity)
	mockCatalog.AssertExpectations(t)
}

func TestGetFacetBySlug_UnknownKind(t *testing.T) {
	mockCatalog := new(MockFacetCatalog)
	uc := NewGetFacetBySlugUseCase(mockCatalog)

	entity, err := uc.Execute(context.Background(), domain.FacetKind("tag"), "arcade")

	assert.Nil(t, entity)
	assert.ErrorIs(t, err, domain.ErrUnknownFacetKind)
	mockCatalog.AssertNotCalled(t, "GetCategoryBySlug", mock.Anything, mock.Anything)
}

func TestGetFacetBySlug_NotFound(t *testing.T) {
	mockCatalog := new(MockFacetCatalog)
	uc := NewGetFacetBySlugUseCase(mockCatalog)

	mockCatalog.On("GetRegionBySlug", mock.Anything, "nowhere").Return(nil, domain.ErrNotFound)

	entity, err := uc.Execute(context.Background(), domain.FacetRegion, "nowhere")

	assert.Nil(t, entity)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMergeStateCounts(t *testing.T) {
	venueCounts := map[string]int{
		"texas":    12,
		" NEVADA ": 3,
	}
	regionCounts := map[string]int{
		"Texas":      4,
		"california": 7,
		"":           9,
	}

	result := MergeStateCounts(venueCounts, regionCounts)

	// Отсортировано по имени штата, пустой ключ отброшен
	assert.Equal(t, []domain.StateCount{
		{State: "California", VenueCount: 0, RegionCount: 7},
		{State: "Nevada", VenueCount: 3, RegionCount: 0},
		{State: "Texas", VenueCount: 12, RegionCount: 4},
	}, result)
}

func TestMergeStateCounts_Empty(t *testing.T) {
	assert.Empty(t, MergeStateCounts(nil, nil))
}

func TestGetStatesWithCounts_Success(t *testing.T) {
	mockCatalog := new(MockFacetCatalog)
	uc := NewGetStatesWithCountsUseCase(mockCatalog)

	mockCatalog.On("GetVenueStateCounts", mock.Anything).Return(map[string]int{"texas": 5}, nil)
	mockCatalog.On("GetRegionStateCounts", mock.Anything).Return(map[string]int{"texas": 2}, nil)

	result, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []domain.StateCount{{State: "Texas", VenueCount: 5, RegionCount: 2}}, result)
	mockCatalog.AssertExpectations(t)
}

func TestGetStatesWithCounts_VenueProjectionError(t *testing.T) {
	mockCatalog := new(MockFacetCatalog)
	uc := NewGetStatesWithCountsUseCase(mockCatalog)

	expectedErr := errors.New("connection lost")
	mockCatalog.On("GetVenueStateCounts", mock.Anything).Return(nil, expectedErr)

	result, err := uc.Execute(context.Background())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, expectedErr)
	mockCatalog.AssertNotCalled(t, "GetRegionStateCounts", mock.Anything)
}

func TestGetRegionsByState_BlankStateReturnsEmpty(t *testing.T) {
	mockCatalog := new(MockFacetCatalog)
	uc := NewGetRegionsByStateUseCase(mockCatalog)

	for _, state := range []string{"", "   "} {
		regions, err := uc.Execute(context.Background(), state)

		assert.NoError(t, err)
		assert.Empty(t, regions)
	}

	mockCatalog.AssertNotCalled(t, "GetRegionsByState", mock.Anything, mock.Anything)
}

func TestGetRegionsByState_TrimsState(t *testing.T) {
	mockCatalog := new(MockFacetCatalog)
	uc := NewGetRegionsByStateUseCase(mockCatalog)

	expected := []domain.Region{{ID: 1, Name: "Downtown", State: "Texas"}}
	mockCatalog.On("GetRegionsByState", mock.Anything, "Texas").Return(expected, nil)

	regions, err := uc.Execute(context.Background(), "  Texas  ")

	assert.NoError(t, err)
	assert.Equal(t, expected, regions)
	mockCatalog.AssertExpectations(t)
}
