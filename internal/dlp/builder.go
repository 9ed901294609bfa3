package dlp

// DefaultReplacement is substituted for detected spans when the caller does
// not supply a replacement string.
const DefaultReplacement = "_REDACTED_"

// textContentType tags literal string payloads.
const textContentType = "text/plain"

// Options carries the caller's redaction preferences. Zero values fall back
// to defaults: an unset MinLikelihood becomes LIKELIHOOD_UNSPECIFIED, an
// empty ReplaceWith becomes DefaultReplacement, and an empty InfoTypes list
// leaves detection to the service's default set.
type Options struct {
	InfoTypes     []string
	MinLikelihood Likelihood
	ReplaceWith   string
}

// BuildTextRequest assembles the redaction request for a literal text
// payload. With no info types the request carries exactly one catch-all
// replacement rule; otherwise one rule per info type, all sharing the same
// replacement string.
func BuildTextRequest(text string, opts Options) *RedactContentRequest {
	req := &RedactContentRequest{
		InspectConfig: inspectConfig(opts),
		Items: []ContentItem{
			{Type: textContentType, Data: []byte(text)},
		},
	}

	replaceWith := opts.ReplaceWith
	if replaceWith == "" {
		replaceWith = DefaultReplacement
	}

	if len(opts.InfoTypes) == 0 {
		req.ReplaceConfigs = []ReplaceConfig{{ReplaceWith: replaceWith}}
		return req
	}

	req.ReplaceConfigs = make([]ReplaceConfig, 0, len(opts.InfoTypes))
	for _, name := range opts.InfoTypes {
		it := InfoType{Name: name}
		req.ReplaceConfigs = append(req.ReplaceConfigs, ReplaceConfig{
			InfoType:    &it,
			ReplaceWith: replaceWith,
		})
	}
	return req
}

// BuildImageRequest assembles the redaction request for an image payload:
// exactly one redaction rule per requested info type, each clearing the
// matched region rather than coloring it.
func BuildImageRequest(mimeType string, data []byte, opts Options) *RedactContentRequest {
	req := &RedactContentRequest{
		InspectConfig: inspectConfig(opts),
		Items: []ContentItem{
			{Type: mimeType, Data: data},
		},
	}

	for _, name := range opts.InfoTypes {
		req.ImageRedactionConfigs = append(req.ImageRedactionConfigs, ImageRedactionConfig{
			InfoType: InfoType{Name: name},
		})
	}
	return req
}

func inspectConfig(opts Options) InspectConfig {
	cfg := InspectConfig{MinLikelihood: opts.MinLikelihood}
	if cfg.MinLikelihood == "" {
		cfg.MinLikelihood = LikelihoodUnspecified
	}
	for _, name := range opts.InfoTypes {
		cfg.InfoTypes = append(cfg.InfoTypes, InfoType{Name: name})
	}
	return cfg
}
