package postgres

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mmcloughlin/geohash"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// slugify нормализует имя в url-безопасный slug
func slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// locationFingerprint - короткий геохэш координат (точность ~1.2км),
// достаточная, чтобы различить две одноименные площадки в разных
// концах города.
func locationFingerprint(lat, lng float64) string {
	return geohash.EncodeWithPrecision(lat, lng, 6)
}

// venueSlug строит slug площадки. Имя и город обычно уникальны,
// геохэш добавляется как суффикс-страховка от коллизий одноименных
// площадок в одном городе.
func venueSlug(name, city string, lat, lng float64) string {
	base := slugify(name)
	if city != "" {
		base = fmt.Sprintf("%s-%s", base, slugify(city))
	}
	if lat != 0 || lng != 0 {
		base = fmt.Sprintf("%s-%s", base, locationFingerprint(lat, lng))
	}
	return base
}
