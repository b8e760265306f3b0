package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. Events published on the MemoryBus
// carry the struct itself; anything else (a map from a replayed log, say) is
// converted through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("encode %T payload: %w", input, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("decode payload as %T: %w", result, err)
	}
	return result, nil
}
