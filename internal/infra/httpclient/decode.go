package httpclient

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"courtbook/internal/pkg/errs"
)

// readErrorMessage probes the error shapes the backend services produce:
// {"message": "..."}, {"error": "..."} and {"error": {"message": "..."}}.
// It returns "" when the body carries no readable reason.
func readErrorMessage(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	return strings.TrimSpace(messageFromBody(data))
}

func messageFromBody(data []byte) string {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if raw, ok := body["message"]; ok {
		var s string
		if json.Unmarshal(raw, &s) == nil && s != "" {
			return s
		}
	}
	raw, ok := body["error"]
	if !ok {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var nested struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &nested) == nil {
		return nested.Message
	}
	return ""
}

func decodeBody(resp *http.Response, out any) error {
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Transport("connection lost while reading response", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errs.Server(resp.StatusCode, "unexpected response from server", err)
	}
	return nil
}
