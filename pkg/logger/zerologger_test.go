package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestZeroLogger_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Info("score computed", Field{Key: "grade", Value: "A+"}, Field{Key: "overall", Value: 92})

	output := buf.String()
	if !strings.Contains(output, "score computed") {
		t.Errorf("expected message in log, got: %s", output)
	}
	if !strings.Contains(output, `"grade":"A+"`) || !strings.Contains(output, `"overall":92`) {
		t.Errorf("expected typed fields, got: %s", output)
	}
	if !strings.Contains(output, `"level":"info"`) {
		t.Errorf("expected level=info, got: %s", output)
	}
}

func TestZeroLogger_DebugShownInDev(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Debug("suggestions re-evaluated")

	if !strings.Contains(buf.String(), "suggestions re-evaluated") {
		t.Errorf("expected debug log in development, got: %s", buf.String())
	}
}

func TestZeroLogger_DebugHiddenInProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("production", buf)

	log.Debug("debug-hidden")

	if buf.String() != "" {
		t.Errorf("expected NO debug log output in production, got: %s", buf.String())
	}
}

func TestZeroLogger_ProductionLevelDoesNotLeak(t *testing.T) {
	prod := &bytes.Buffer{}
	dev := &bytes.Buffer{}
	_ = NewWithWriter("production", prod)
	devLog := NewWithWriter("development", dev)

	devLog.Debug("still visible")

	if !strings.Contains(dev.String(), "still visible") {
		t.Errorf("production logger must not change the level of other loggers, got: %s", dev.String())
	}
}

func TestZeroLogger_ErrorAndDurationFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Error("cache write failed", Err(errors.New("redis down")), Field{Key: "ttl", Value: 2 * time.Second})

	output := buf.String()
	if !strings.Contains(output, `"level":"error"`) {
		t.Errorf("expected error level, got: %s", output)
	}
	if !strings.Contains(output, `"err":"redis down"`) {
		t.Errorf("expected err field, got: %s", output)
	}
	if !strings.Contains(output, `"ttl":2000`) {
		t.Errorf("expected duration in ms, got: %s", output)
	}
}

func TestZeroLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf).With(Field{Key: "workspace_id", Value: "42"})

	log.Warn("suggestion snoozed", Field{Key: "suggestion_id", Value: "missing_hotel"})

	output := buf.String()
	if !strings.Contains(output, `"workspace_id":"42"`) {
		t.Errorf("expected inherited field, got: %s", output)
	}
	if !strings.Contains(output, `"level":"warn"`) {
		t.Errorf("expected warn level, got: %s", output)
	}
}
