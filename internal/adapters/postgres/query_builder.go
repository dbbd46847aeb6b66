package postgres

import (
	"fmt"
	"strings"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

// queryBuilder собирает плоский список предикатов с позиционными
// аргументами. Никакого мутабельного чейнинга: условия только
// добавляются, итоговый WHERE строится один раз в build().
type queryBuilder struct {
	conditions []string
	args       []interface{}
	argID      int
}

func newVenueQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argID: 1,
		// Универсальный предикат: неактивные площадки не видны нигде
		conditions: []string{"v.is_active = true"},
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argID))
	qb.args = append(qb.args, arg)
	qb.argID++
}

// addStaticCondition - предикат без аргументов (флаги featured/verified)
func (qb *queryBuilder) addStaticCondition(condition string) {
	qb.conditions = append(qb.conditions, condition)
}

// addSearchCondition добавляет OR-группу текстового поиска.
// Один аргумент переиспользуется во всех ветках группы.
func (qb *queryBuilder) addSearchCondition(query string) {
	if query == "" {
		// Пустой запрос - режим списка, ограничения нет
		return
	}
	n := qb.argID
	condition := fmt.Sprintf(
		"(v.name ILIKE $%d OR v.description ILIKE $%d OR v.address ILIKE $%d OR v.city ILIKE $%d OR v.venue_type ILIKE $%d)",
		n, n, n, n, n,
	)
	qb.conditions = append(qb.conditions, condition)
	qb.args = append(qb.args, "%"+query+"%")
	qb.argID++
}

// addIDSetCondition ограничивает выборку множеством id от резолвера фасетов.
func (qb *queryBuilder) addIDSetCondition(ids []int64) {
	qb.addCondition("%s = ANY($%d)", "v.id", ids)
}

// build создает финальную WHERE-часть запроса
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyVenueFilters - главный метод, который разбирает фильтры и строит запрос.
// Список и счетчик используют его одинаково, поэтому их предикаты
// не могут разойтись.
func applyVenueFilters(filters domain.VenueFilters, res domain.FacetResolution, query string) (string, []interface{}) {
	qb := newVenueQueryBuilder()

	qb.addSearchCondition(query)

	// Город/штат - поиск подстроки без учета регистра
	if filters.City != "" {
		qb.addCondition("%s ILIKE $%d", "v.city", "%"+filters.City+"%")
	}
	if filters.State != "" {
		qb.addCondition("%s ILIKE $%d", "v.state", "%"+filters.State+"%")
	}

	// Нижняя граница рейтинга, включительно
	if filters.RatingMin != nil {
		qb.addCondition("%s >= $%d", "v.rating", *filters.RatingMin)
	}

	if filters.FeaturedOnly {
		qb.addStaticCondition("v.featured = true")
	}
	if filters.VerifiedOnly {
		qb.addStaticCondition("v.verified = true")
	}

	// Результат резолвера фасетов. Пустое пересечение сюда дойти
	// не должно (use case замыкается раньше), но и оно корректно:
	// ANY от пустого массива не совпадет ни с чем.
	if res.Constrained {
		qb.addIDSetCondition(res.IDs)
	}

	return qb.build()
}
