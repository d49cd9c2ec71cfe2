package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSetup_JSONIncludesServiceAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("threads", "1.2.3", "json", &buf)

	logger.Info("hello", "key", "value")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["service"] != "threads" {
		t.Errorf("service = %v, want threads", record["service"])
	}
	if record["version"] != "1.2.3" {
		t.Errorf("version = %v, want 1.2.3", record["version"])
	}
	if record["key"] != "value" {
		t.Errorf("key = %v, want value", record["key"])
	}
}

func TestSetup_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("threads", "dev", "text", &buf)

	logger.Info("hello")

	out := buf.String()
	if !strings.Contains(out, "msg=hello") {
		t.Errorf("text output missing message: %q", out)
	}
	if !strings.Contains(out, "service=threads") {
		t.Errorf("text output missing service attr: %q", out)
	}
}

func TestSetup_WithAttrsKeepsServiceIdentity(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("threads", "dev", "json", &buf).With("request_id", "abc")

	logger.Info("hello")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["service"] != "threads" {
		t.Errorf("service attr lost after With(): %v", record["service"])
	}
	if record["request_id"] != "abc" {
		t.Errorf("request_id = %v, want abc", record["request_id"])
	}
}
