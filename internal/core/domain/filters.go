package domain

// VenueFilters - структура для передачи всех возможных фильтров.
// Все поля необязательные: нулевое значение означает "без ограничения".
// Пустой (но переданный) список фасетов равнозначен отсутствию фильтра -
// это осознанное решение, оно применяется одинаково во всех слоях.
type VenueFilters struct {
	CategoryIDs []int64
	AmenityIDs  []int64
	RegionIDs   []int64

	City  string // подстрока, без учета регистра
	State string // подстрока, без учета регистра

	RatingMin *float64 // включительно

	FeaturedOnly bool
	VerifiedOnly bool
}

// HasFacets сообщает, задан ли хотя бы один многозначный фасет.
func (f VenueFilters) HasFacets() bool {
	return len(f.CategoryIDs) > 0 || len(f.AmenityIDs) > 0 || len(f.RegionIDs) > 0
}

// FacetResolution - результат резолвера фасетов.
// Важно различать два состояния:
//   - Constrained=false: фасеты не заданы, ограничения по id нет;
//   - Constrained=true и пустой IDs: фасеты заданы, но пересечение пусто,
//     итоговый результат гарантированно нулевой.
// Склеивать эти состояния нельзя.
type FacetResolution struct {
	Constrained bool
	IDs         []int64
}

// Unconstrained - фасетных ограничений нет.
func Unconstrained() FacetResolution {
	return FacetResolution{}
}

// ConstrainedTo - результат ограничен перечисленными id.
func ConstrainedTo(ids []int64) FacetResolution {
	if ids == nil {
		ids = []int64{}
	}
	return FacetResolution{Constrained: true, IDs: ids}
}

// Empty - заданные фасеты пересеклись в пустое множество.
func (r FacetResolution) Empty() bool {
	return r.Constrained && len(r.IDs) == 0
}
