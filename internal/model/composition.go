package model

import "encoding/json"

// CompositionEnvelope is the minimal slice of a COMPOSITION content blob the
// engine needs: canvas dimensions for matrix cropping and the effect name
// for overlay selection. The scene payload itself stays opaque.
type CompositionEnvelope struct {
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Meta    CompositionMeta `json:"meta"`
	Payload json.RawMessage `json:"payload"`
}

type CompositionMeta struct {
	Effect string `json:"effect"`
}

// DecodeComposition parses a persisted composition blob. Callers must treat
// a decode failure as "render nothing for this entry", never as fatal.
func DecodeComposition(data string) (CompositionEnvelope, error) {
	var env CompositionEnvelope
	if err := json.Unmarshal([]byte(data), &env); err != nil {
		return CompositionEnvelope{}, err
	}
	return env, nil
}
