package store

import (
	"encoding/json"
	"fmt"
)

// Image URL lists are stored in a single JSONB column; the helpers below
// convert between the Go slice and its stored representation.

func encodeImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}

	data, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("error encoding image list: %w", err)
	}

	return data, nil
}

func decodeImages(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}

	var images []string
	if err := json.Unmarshal(data, &images); err != nil {
		return nil, fmt.Errorf("error decoding image list: %w", err)
	}

	return images, nil
}
