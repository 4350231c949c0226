package mobile

import (
	"encoding/json"
	"fmt"

	"passwordStrengthChecker/internal/core/domain"
)

// envelope is the JSON wrapper around every binding result. Success is a
// pointer on decode so a bare report can be told apart from a wrapped one.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// respond encodes data, or err when it is non-nil. Data that cannot be
// marshalled turns into a failed envelope carrying the marshal error.
func respond(data any, err error) string {
	ok := err == nil
	env := envelope{Success: &ok}
	if ok {
		raw, mErr := json.Marshal(data)
		if mErr != nil {
			return respond(nil, mErr)
		}
		env.Data = raw
	} else {
		env.Error = err.Error()
	}
	out, _ := json.Marshal(env)
	return string(out)
}

// decodeReport accepts a report either bare or still wrapped by respond.
func decodeReport(raw string) (domain.Report, error) {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return domain.Report{}, fmt.Errorf("invalid report json: %w", err)
	}
	body := []byte(raw)
	if env.Success != nil {
		if !*env.Success {
			return domain.Report{}, fmt.Errorf("invalid report json: failed response: %s", env.Error)
		}
		body = env.Data
	}

	var report domain.Report
	if err := json.Unmarshal(body, &report); err != nil {
		return domain.Report{}, fmt.Errorf("invalid report json: %w", err)
	}
	return report, nil
}
