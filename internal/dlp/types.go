package dlp

import (
	"fmt"
	"strings"
)

// Likelihood is the minimum confidence the remote service must assign to a
// detected span before it is treated as a match.
type Likelihood string

const (
	LikelihoodUnspecified  Likelihood = "LIKELIHOOD_UNSPECIFIED"
	LikelihoodVeryUnlikely Likelihood = "VERY_UNLIKELY"
	LikelihoodUnlikely     Likelihood = "UNLIKELY"
	LikelihoodPossible     Likelihood = "POSSIBLE"
	LikelihoodLikely       Likelihood = "LIKELY"
	LikelihoodVeryLikely   Likelihood = "VERY_LIKELY"
)

// likelihoods lists all valid values in ascending order of confidence.
var likelihoods = []Likelihood{
	LikelihoodUnspecified,
	LikelihoodVeryUnlikely,
	LikelihoodUnlikely,
	LikelihoodPossible,
	LikelihoodLikely,
	LikelihoodVeryLikely,
}

// Rank returns a numeric rank for ordering likelihoods (higher = more
// confident). Unknown values rank below LIKELIHOOD_UNSPECIFIED.
func (l Likelihood) Rank() int {
	for i, v := range likelihoods {
		if v == l {
			return i
		}
	}
	return -1
}

// ParseLikelihood validates name against the service's likelihood enum.
func ParseLikelihood(name string) (Likelihood, error) {
	l := Likelihood(name)
	if l.Rank() < 0 {
		return "", fmt.Errorf("unknown likelihood %q (valid values: %s)", name, strings.Join(LikelihoodNames(), ", "))
	}
	return l, nil
}

// LikelihoodNames returns the valid enum names in ascending order.
func LikelihoodNames() []string {
	names := make([]string, len(likelihoods))
	for i, l := range likelihoods {
		names[i] = string(l)
	}
	return names
}

// InfoType names a category of sensitive data, e.g. "EMAIL_ADDRESS" or
// "PHONE_NUMBER". The set of recognized names is owned by the remote service.
type InfoType struct {
	Name string `json:"name"`
}

// InspectConfig controls what the remote service looks for and how confident
// it must be before flagging a match. An empty InfoTypes list asks the
// service to apply its default detectors.
type InspectConfig struct {
	InfoTypes     []InfoType `json:"infoTypes,omitempty"`
	MinLikelihood Likelihood `json:"minLikelihood"`
}

// ContentItem is a typed payload submitted for, or returned from, redaction.
// Data round-trips as base64 in JSON.
type ContentItem struct {
	Type string `json:"type,omitempty"`
	Data []byte `json:"data,omitempty"`
}

// ReplaceConfig substitutes ReplaceWith for detected spans of one info type.
// A nil InfoType makes the rule a catch-all covering every detected span.
type ReplaceConfig struct {
	InfoType    *InfoType `json:"infoType,omitempty"`
	ReplaceWith string    `json:"replaceWith"`
}

// Color is an RGB fill, each channel in [0,1].
type Color struct {
	Red   float32 `json:"red"`
	Green float32 `json:"green"`
	Blue  float32 `json:"blue"`
}

// ImageRedactionConfig masks regions of an image where one info type was
// detected. A nil RedactionColor clears the matched region; setting a color
// fills it instead. The builders in this package always clear.
type ImageRedactionConfig struct {
	InfoType       InfoType `json:"infoType"`
	RedactionColor *Color   `json:"redactionColor,omitempty"`
}

// RedactContentRequest is the full outbound payload for one redaction call.
type RedactContentRequest struct {
	InspectConfig         InspectConfig          `json:"inspectConfig"`
	Items                 []ContentItem          `json:"items"`
	ReplaceConfigs        []ReplaceConfig        `json:"replaceConfigs,omitempty"`
	ImageRedactionConfigs []ImageRedactionConfig `json:"imageRedactionConfigs,omitempty"`
}

// RedactContentResponse carries one redacted item per submitted item.
type RedactContentResponse struct {
	Items []ContentItem `json:"items"`
}
