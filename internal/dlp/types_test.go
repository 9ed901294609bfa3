package dlp

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLikelihood(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Likelihood
		ok    bool
	}{
		{"unspecified", "LIKELIHOOD_UNSPECIFIED", LikelihoodUnspecified, true},
		{"very unlikely", "VERY_UNLIKELY", LikelihoodVeryUnlikely, true},
		{"unlikely", "UNLIKELY", LikelihoodUnlikely, true},
		{"possible", "POSSIBLE", LikelihoodPossible, true},
		{"likely", "LIKELY", LikelihoodLikely, true},
		{"very likely", "VERY_LIKELY", LikelihoodVeryLikely, true},
		{"unknown name", "DEFINITELY", "", false},
		{"lowercase rejected", "possible", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLikelihood(tt.input)
			if !tt.ok {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "VERY_LIKELY", "error should list valid values")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLikelihoodRank_Ascending(t *testing.T) {
	ordered := []Likelihood{
		LikelihoodUnspecified,
		LikelihoodVeryUnlikely,
		LikelihoodUnlikely,
		LikelihoodPossible,
		LikelihoodLikely,
		LikelihoodVeryLikely,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Rank(), ordered[i-1].Rank(),
			"%s should rank above %s", ordered[i], ordered[i-1])
	}
	assert.Equal(t, -1, Likelihood("BOGUS").Rank())
}

func TestLikelihoodNames(t *testing.T) {
	names := LikelihoodNames()
	assert.Len(t, names, 6)
	assert.Equal(t, "LIKELIHOOD_UNSPECIFIED", names[0])
	assert.Equal(t, "VERY_LIKELY", names[5])
}

// The service speaks proto-JSON: bytes fields are base64 strings, unset
// optional messages are omitted entirely.
func TestRequestWireShape_Text(t *testing.T) {
	req := BuildTextRequest("hi there", Options{ReplaceWith: "[x]"})

	data, err := json.Marshal(req)
	assert.NoError(t, err)

	var wire map[string]any
	assert.NoError(t, json.Unmarshal(data, &wire))

	items, ok := wire["items"].([]any)
	assert.True(t, ok)
	item := items[0].(map[string]any)
	assert.Equal(t, "text/plain", item["type"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("hi there")), item["data"])

	// Catch-all rule carries no infoType key at all.
	rcs := wire["replaceConfigs"].([]any)
	rc := rcs[0].(map[string]any)
	_, hasInfoType := rc["infoType"]
	assert.False(t, hasInfoType)
	assert.Equal(t, "[x]", rc["replaceWith"])

	// Image configs absent from a text request.
	_, hasImage := wire["imageRedactionConfigs"]
	assert.False(t, hasImage)

	inspect := wire["inspectConfig"].(map[string]any)
	assert.Equal(t, "LIKELIHOOD_UNSPECIFIED", inspect["minLikelihood"])
}

func TestRequestWireShape_Image(t *testing.T) {
	req := BuildImageRequest("image/png", []byte{0x89, 0x50}, Options{InfoTypes: []string{"FACE"}})

	data, err := json.Marshal(req)
	assert.NoError(t, err)

	var wire map[string]any
	assert.NoError(t, json.Unmarshal(data, &wire))

	ircs := wire["imageRedactionConfigs"].([]any)
	assert.Len(t, ircs, 1)
	irc := ircs[0].(map[string]any)
	assert.Equal(t, map[string]any{"name": "FACE"}, irc["infoType"])

	// Nil color means "clear the region": the key must be omitted, not null.
	_, hasColor := irc["redactionColor"]
	assert.False(t, hasColor)

	_, hasReplace := wire["replaceConfigs"]
	assert.False(t, hasReplace)
}

func TestColorMarshalsWhenSet(t *testing.T) {
	irc := ImageRedactionConfig{
		InfoType:       InfoType{Name: "FACE"},
		RedactionColor: &Color{Red: 1, Green: 0.5, Blue: 0},
	}

	data, err := json.Marshal(irc)
	assert.NoError(t, err)

	var wire map[string]any
	assert.NoError(t, json.Unmarshal(data, &wire))
	color := wire["redactionColor"].(map[string]any)
	assert.Equal(t, float64(1), color["red"])
	assert.Equal(t, 0.5, color["green"])
}

func TestResponseUnmarshal(t *testing.T) {
	payload := `{"items":[{"type":"text/plain","data":"` +
		base64.StdEncoding.EncodeToString([]byte("call me at [hidden]")) + `"}]}`

	var resp RedactContentResponse
	assert.NoError(t, json.Unmarshal([]byte(payload), &resp))
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, "call me at [hidden]", string(resp.Items[0].Data))
}
