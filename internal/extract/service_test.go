package extract

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecognizer struct {
	text string
	err  error
}

func (s stubRecognizer) Recognize(context.Context, []byte, string) (RecognizedText, error) {
	return RecognizedText{Text: s.text, Language: "eng"}, s.err
}

func TestExtractSuccess(t *testing.T) {
	svc := NewService(stubRecognizer{text: "MULTICAL 21\n00735\nSerial: A0K8660"}, nil)

	res := svc.Extract(context.Background(), []byte("img"), "label.png")
	require.True(t, res.Success)
	assert.Empty(t, res.Error)
	assert.Equal(t, "MULTICAL 21\n00735\nSerial: A0K8660", res.Text)

	require.Len(t, res.Items, 3)
	assert.Equal(t, "Model", res.Items[0].Label)
	assert.Equal(t, "Current Reading", res.Items[1].Label)
	assert.Equal(t, "00735", res.Items[1].Value)
	assert.Equal(t, "Serial", res.Items[2].Label)
	assert.Equal(t, "A0K8660", res.Items[2].Value)
}

func TestExtractNormalizesBeforeParsing(t *testing.T) {
	svc := NewService(stubRecognizer{text: "  meterReading\t00735  \n\n"}, nil)

	res := svc.Extract(context.Background(), nil, "label.jpg")
	require.True(t, res.Success)
	assert.Equal(t, "meter Reading 00735", res.Text)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Current Reading", res.Items[0].Label)
}

func TestExtractRecognitionFailure(t *testing.T) {
	svc := NewService(stubRecognizer{err: errors.New("engine crashed")}, nil)

	res := svc.Extract(context.Background(), nil, "label.png")
	assert.False(t, res.Success)
	assert.Equal(t, "engine crashed", res.Error)
	assert.Empty(t, res.Items)
	assert.Empty(t, res.Text)
}

func TestExtractEmptyTextIsNotAnError(t *testing.T) {
	for _, text := range []string{"", "   \n\t \n"} {
		svc := NewService(stubRecognizer{text: text}, nil)
		res := svc.Extract(context.Background(), nil, "label.png")
		assert.True(t, res.Success)
		assert.Empty(t, res.Text)
		assert.Empty(t, res.Items)
	}
}

func TestExtractResultValidatesAgainstItemsSchema(t *testing.T) {
	svc := NewService(stubRecognizer{text: "Serial: A123\nB83\nnoise line"}, nil)
	res := svc.Extract(context.Background(), nil, "label.png")
	require.True(t, res.Success)

	payload, err := json.Marshal(res.Items)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(BuildItemsJSONSchema(), payload))
}
