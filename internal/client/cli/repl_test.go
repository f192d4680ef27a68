package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records dispatched commands.
type stubExec struct {
	calls       []string
	uploadPaths []string
}

func (s *stubExec) List(context.Context) error    { s.calls = append(s.calls, "list"); return nil }
func (s *stubExec) More(context.Context) error    { s.calls = append(s.calls, "more"); return nil }
func (s *stubExec) Refresh(context.Context) error { s.calls = append(s.calls, "refresh"); return nil }
func (s *stubExec) Upload(_ context.Context, paths []string) error {
	s.calls = append(s.calls, "upload")
	s.uploadPaths = paths
	return nil
}
func (s *stubExec) Delete(context.Context) error     { s.calls = append(s.calls, "delete"); return nil }
func (s *stubExec) Describe(context.Context) error   { s.calls = append(s.calls, "describe"); return nil }
func (s *stubExec) Visibility(context.Context) error { s.calls = append(s.calls, "visibility"); return nil }
func (s *stubExec) Link(context.Context) error       { s.calls = append(s.calls, "link"); return nil }
func (s *stubExec) URL(context.Context) error { s.calls = append(s.calls, "url"); return nil }
func (s *stubExec) Gallery(_ context.Context, _ []string) error {
	s.calls = append(s.calls, "gallery")
	return nil
}

func runScript(t *testing.T, script string) (*stubExec, []string) {
	t.Helper()

	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = strings.TrimSpace(toString(v))
		}
		out = append(out, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	stub := &stubExec{}
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), stub, func() string { return "(0 files)" }, scanner)
	return stub, out
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func TestREPLDispatch(t *testing.T) {
	stub, _ := runScript(t, "list\nmore\nrefresh\ngallery\nexit\n")
	assert.Equal(t, []string{"list", "more", "refresh", "gallery"}, stub.calls)
}

func TestREPLShortListAlias(t *testing.T) {
	stub, _ := runScript(t, "l\nquit\n")
	assert.Equal(t, []string{"list"}, stub.calls)
}

func TestREPLUploadArgs(t *testing.T) {
	stub, _ := runScript(t, "upload a.jpg b.png\nexit\n")
	assert.Equal(t, []string{"upload"}, stub.calls)
	assert.Equal(t, []string{"a.jpg", "b.png"}, stub.uploadPaths)
}

func TestREPLUnknownCommand(t *testing.T) {
	stub, out := runScript(t, "frobnicate\nexit\n")
	assert.Empty(t, stub.calls)

	found := false
	for _, line := range out {
		if strings.Contains(line, "Unknown command") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestREPLEmptyLinesAndEOF(t *testing.T) {
	stub, _ := runScript(t, "\n\nlist\n")
	assert.Equal(t, []string{"list"}, stub.calls)
}
