package workflows

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ghuser/fridgepal/pkg/logger"
)

func TestTemporalLogger_ForwardsLevelsAndKeyvals(t *testing.T) {
	var buf bytes.Buffer
	tl := newTemporalLogger(logger.NewWithWriter(&buf, "debug"))

	tl.Debug("polling", "task_queue", "fridge-expiry")
	tl.Info("started", "workflow_id", "fridge-expiry-sweep")
	tl.Warn("retrying", "attempt", 2)
	tl.Error("failed", "error", "boom")

	want := []struct{ level, msg, key string }{
		{"DEBUG", "polling", "task_queue"},
		{"INFO", "started", "workflow_id"},
		{"WARN", "retrying", "attempt"},
		{"ERROR", "failed", "error"},
	}

	sc := bufio.NewScanner(&buf)
	i := 0
	for sc.Scan() {
		if i >= len(want) {
			t.Fatalf("unexpected extra line: %s", sc.Text())
		}
		var line map[string]any
		if err := json.Unmarshal(sc.Bytes(), &line); err != nil {
			t.Fatalf("line %d is not JSON: %v", i, err)
		}
		if line["level"] != want[i].level || line["msg"] != want[i].msg {
			t.Errorf("line %d: got level=%v msg=%v, want %s %s", i, line["level"], line["msg"], want[i].level, want[i].msg)
		}
		if _, ok := line[want[i].key]; !ok {
			t.Errorf("line %d: missing %q attribute", i, want[i].key)
		}
		i++
	}
	if i != len(want) {
		t.Fatalf("got %d lines, want %d", i, len(want))
	}
}
