package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"interior_estimator/internal/domain/wizard"
)

var ErrSessionAlreadyExists = errors.New("wizard session already exists")

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func encodeSession(s wizard.Session) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode session %s: %w", s.ID, err)
	}
	return b, nil
}

func decodeSession(b []byte) (wizard.Session, error) {
	var s wizard.Session
	if err := json.Unmarshal(b, &s); err != nil {
		return wizard.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
