package logs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestLevel(t *testing.T) {
	defer level.Set(Level())

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		if err := SetLevel("info"); err != nil {
			t.Fatal(err)
		}
		logger.Debug("hidden")
		logger.Info("shown", "rule", "ENUM")

		if err := SetLevel("DEBUG"); err != nil {
			t.Fatal(err)
		}
		if Level() != slog.LevelDebug {
			t.Fatalf("got %v", Level())
		}
		logger.Debug("trace")
	})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(out, "msg=shown rule=ENUM") {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(out, "msg=trace") {
		t.Fatalf("got %q", out)
	}

	if err := SetLevel("verbose"); err == nil {
		t.Fatal("should error")
	}
}

func TestJournalKey(t *testing.T) {
	for key, expected := range map[string]string{
		"rule":       "RULE",
		"logs.span":  "LOGS_SPAN",
		"max-tokens": "MAX_TOKENS",
		"line2":      "LINE2",
	} {
		if got := toJournalKey(key); got != expected {
			t.Fatalf("%s: got %s", key, got)
		}
	}
}
