package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEvent_ValidMinimalEvent(t *testing.T) {
	body := []byte(`{"source": "crawler", "source_venue_id": "v-1", "name": "Neon Arcade"}`)

	err := ValidateEvent("VenueBatchEvent", "1.0.0", body)

	assert.NoError(t, err)
}

func TestValidateEvent_FullEvent(t *testing.T) {
	body := []byte(`{
		"source": "crawler",
		"source_venue_id": "v-1",
		"name": "Neon Arcade",
		"city": "Austin",
		"state": "TX",
		"latitude": 30.2672,
		"longitude": -97.7431,
		"rating": 4.5,
		"reviews_count": 12,
		"is_active": true,
		"category_slugs": ["arcade"],
		"amenity_slugs": ["vr"],
		"region_slugs": ["downtown"]
	}`)

	err := ValidateEvent("VenueBatchEvent", "1.0.0", body)

	assert.NoError(t, err)
}

func TestValidateEvent_MissingRequiredField(t *testing.T) {
	body := []byte(`{"source": "crawler", "source_venue_id": "v-1"}`)

	err := ValidateEvent("VenueBatchEvent", "1.0.0", body)

	assert.Error(t, err)
}

func TestValidateEvent_RatingOutOfRange(t *testing.T) {
	body := []byte(`{"source": "crawler", "source_venue_id": "v-1", "name": "N", "rating": 7}`)

	err := ValidateEvent("VenueBatchEvent", "1.0.0", body)

	assert.Error(t, err)
}

func TestValidateEvent_UnknownProperty(t *testing.T) {
	body := []byte(`{"source": "crawler", "source_venue_id": "v-1", "name": "N", "bogus": true}`)

	err := ValidateEvent("VenueBatchEvent", "1.0.0", body)

	assert.Error(t, err)
}

func TestValidateEvent_UnknownEventOrVersion(t *testing.T) {
	body := []byte(`{"source": "crawler", "source_venue_id": "v-1", "name": "N"}`)

	assert.Error(t, ValidateEvent("SomeOtherEvent", "1.0.0", body))
	assert.Error(t, ValidateEvent("VenueBatchEvent", "2.0.0", body))
}

func TestValidateEvent_MalformedJSON(t *testing.T) {
	err := ValidateEvent("VenueBatchEvent", "1.0.0", []byte(`{not json`))

	assert.Error(t, err)
}
