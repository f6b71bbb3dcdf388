package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunList(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--list"}, &out, &errOut); code != 0 {
		t.Fatalf("run(--list) = %d, stderr: %s", code, errOut.String())
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 26 {
		t.Fatalf("--list printed %d lines, want 26", len(lines))
	}
	if !strings.HasPrefix(lines[22], "structure/23") || !strings.Contains(lines[22], "group") {
		t.Errorf("line 23 = %q", lines[22])
	}
}

func TestRunAll(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--replay"}, &out, &errOut); code != 0 {
		t.Fatalf("run(--replay) = %d\n%s", code, out.String())
	}
	if n := strings.Count(out.String(), "ok   "); n != 26 {
		t.Errorf("%d scenarios passed, want 26", n)
	}
}

func TestRunTrace(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--run", "structure/21", "--trace"}, &out, &errOut); code != 0 {
		t.Fatalf("run = %d\n%s", code, out.String())
	}
	want := "PushClip nil nil\nPop\nok   structure/21 (2 commands)\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunUnknown(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--run", "nope"}, &out, &errOut); code != 1 {
		t.Fatalf("run = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "FAIL nope") || !strings.Contains(out.String(), "1 of 1 scenarios failed") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunBadFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--bogus"}, &out, &errOut); code != 2 {
		t.Fatalf("run = %d, want 2", code)
	}
}

func TestRunVerbose(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-v", "--run", "structure/26"}, &out, &errOut); code != 0 {
		t.Fatalf("run = %d", code)
	}
	if !strings.Contains(errOut.String(), "verify: node") {
		t.Errorf("stderr lacks debug traversal: %q", errOut.String())
	}
}
