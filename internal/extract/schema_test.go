package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemsSchemaAcceptsValidPayload(t *testing.T) {
	payload := []byte(`[{"id":"abc","label":"Meter Number","value":"B83","confidence":92}]`)
	assert.NoError(t, ValidateJSONAgainstSchema(BuildItemsJSONSchema(), payload))
}

func TestItemsSchemaAcceptsEmptyArray(t *testing.T) {
	assert.NoError(t, ValidateJSONAgainstSchema(BuildItemsJSONSchema(), []byte(`[]`)))
}

func TestItemsSchemaRejectsConfidenceOutOfRange(t *testing.T) {
	payload := []byte(`[{"id":"abc","label":"Model","value":"MULTICAL 21","confidence":150}]`)
	assert.Error(t, ValidateJSONAgainstSchema(BuildItemsJSONSchema(), payload))
}

func TestItemsSchemaRejectsMissingFields(t *testing.T) {
	payload := []byte(`[{"label":"Model","value":"MULTICAL 21"}]`)
	assert.Error(t, ValidateJSONAgainstSchema(BuildItemsJSONSchema(), payload))
}

func TestItemsSchemaRejectsUnknownFields(t *testing.T) {
	payload := []byte(`[{"id":"abc","label":"Model","value":"x","confidence":98,"extra":true}]`)
	assert.Error(t, ValidateJSONAgainstSchema(BuildItemsJSONSchema(), payload))
}

func TestItemsSchemaRejectsNonArray(t *testing.T) {
	assert.Error(t, ValidateJSONAgainstSchema(BuildItemsJSONSchema(), []byte(`{"id":"x"}`)))
}
