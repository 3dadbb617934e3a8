// AngelaMos | 2026
// payload.go

package core

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20

// DecodeAllowed reads a JSON request body, rejects any key outside the
// operation's allow-list, then unmarshals the body into dst. Only key
// membership is checked here; value constraints belong to the DTO's
// validator tags.
func DecodeAllowed(r *http.Request, allowed []string, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", ErrInvalidInput)
	}

	if err := CheckAllowedFields(body, allowed); err != nil {
		return err
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode body: %w", ErrInvalidInput)
	}

	return nil
}

// CheckAllowedFields fails when the JSON object contains a key that is not
// in the allow-list. An empty body is treated as an empty object.
func CheckAllowedFields(body []byte, allowed []string) error {
	if len(body) == 0 {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return fmt.Errorf("decode body: %w", ErrInvalidInput)
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, key := range allowed {
		allowedSet[key] = struct{}{}
	}

	for key := range fields {
		if _, ok := allowedSet[key]; !ok {
			return fmt.Errorf("field %q is not allowed: %w", key, ErrInvalidInput)
		}
	}

	return nil
}

// PayloadKeys reports which allow-listed keys are actually present in the
// body. Partial updates use it to touch only the supplied fields.
func PayloadKeys(body []byte) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	if len(body) == 0 {
		return keys, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("decode body: %w", ErrInvalidInput)
	}

	for key := range fields {
		keys[key] = struct{}{}
	}

	return keys, nil
}
