package shell

import (
	"testing"

	"github.com/geekfactory/microshell/transport"
)

// feed queues input and polls until the shell has consumed all of it.
func feed(t *testing.T, sh *Shell, pipe *transport.Pipe, data string) {
	t.Helper()
	pipe.Feed(data)
	for pipe.Pending() > 0 {
		if !sh.Poll() {
			t.Fatal("Poll returned false with input pending")
		}
	}
}

func TestPollNoInput(t *testing.T) {
	sh, pipe := newTestShell(t, Config{})
	if sh.Poll() {
		t.Error("Poll with no input should report no byte consumed")
	}
	if out := pipe.TakeOutput(); out != "" {
		t.Errorf("Poll with no input wrote %q", out)
	}
}

func TestBannerAndPrompt(t *testing.T) {
	pipe := transport.NewPipe()
	_, err := New(pipe, Config{Prompt: "sh>", MOTD: "hello"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := pipe.TakeOutput(), "hello\r\nsh>"; got != want {
		t.Errorf("startup wrote %q, want %q", got, want)
	}
}

func TestEchoAndSubmit(t *testing.T) {
	var got [][]byte
	calls := 0
	sh, pipe := newTestShell(t, Config{Prompt: ">"})
	sh.Register("echo", func(argv [][]byte) int {
		calls++
		got = make([][]byte, len(argv))
		for i := range argv {
			got[i] = append([]byte(nil), argv[i]...)
		}
		return 7
	})

	feed(t, sh, pipe, "echo 1 2\r")

	if calls != 1 {
		t.Fatalf("handler invoked %d times, want 1", calls)
	}
	if len(got) != 3 {
		t.Fatalf("handler got %d args, want 3", len(got))
	}
	for i, want := range []string{"echo", "1", "2"} {
		if string(got[i]) != want {
			t.Errorf("arg %d: got %q, want %q", i, got[i], want)
		}
	}
	if sh.LastStatus() != 7 {
		t.Errorf("LastStatus = %d, want 7", sh.LastStatus())
	}
	if got, want := pipe.TakeOutput(), "echo 1 2\r\n\r\n>"; got != want {
		t.Errorf("output %q, want %q", got, want)
	}
}

func TestCommandNotFound(t *testing.T) {
	calls := 0
	sh, pipe := newTestShell(t, Config{Prompt: ">"})
	sh.Register("echo", func(argv [][]byte) int { calls++; return 0 })

	feed(t, sh, pipe, "nope\r")

	if calls != 0 {
		t.Errorf("handler invoked %d times for unmatched name", calls)
	}
	want := "nope\r\nCommand NOT found.\r\n\r\n>"
	if got := pipe.TakeOutput(); got != want {
		t.Errorf("output %q, want %q", got, want)
	}
}

func TestEmptyLineNoDispatchNoReport(t *testing.T) {
	sh, pipe := newTestShell(t, Config{Prompt: ">"})
	feed(t, sh, pipe, "\r")
	if got, want := pipe.TakeOutput(), "\r\n\r\n>"; got != want {
		t.Errorf("output %q, want %q", got, want)
	}
}

func TestBackspaceEditsLine(t *testing.T) {
	var got string
	sh, pipe := newTestShell(t, Config{Prompt: ">"})
	sh.Register("a", func(argv [][]byte) int {
		got = string(argv[0])
		return 0
	})

	feed(t, sh, pipe, "ab\x08\r")

	if got != "a" {
		t.Errorf("submitted line %q, want %q", got, "a")
	}
	want := "ab\x08 \x08\r\n\r\n>"
	if out := pipe.TakeOutput(); out != want {
		t.Errorf("output %q, want %q", out, want)
	}
}

func TestBackspaceOnEmptyLineAlerts(t *testing.T) {
	sh, pipe := newTestShell(t, Config{})
	feed(t, sh, pipe, "\x08")
	if got := pipe.TakeOutput(); got != "\x07" {
		t.Errorf("output %q, want lone BEL", got)
	}
}

func TestTabAndDeleteAlert(t *testing.T) {
	sh, pipe := newTestShell(t, Config{})
	feed(t, sh, pipe, "\x09\x7f")
	if got := pipe.TakeOutput(); got != "\x07\x07" {
		t.Errorf("output %q, want two BELs", got)
	}
}

func TestLineCapacityDropsInput(t *testing.T) {
	var got string
	sh, pipe := newTestShell(t, Config{LineLen: 5, Prompt: ">"})
	sh.Register("abcd", func(argv [][]byte) int {
		got = string(argv[0])
		return 0
	})

	// Capacity is LineLen-1; everything past "abcd" is dropped silently.
	feed(t, sh, pipe, "abcdefgh\r")

	if got != "abcd" {
		t.Errorf("submitted line %q, want %q", got, "abcd")
	}
	if out, want := pipe.TakeOutput(), "abcd\r\n\r\n>"; out != want {
		t.Errorf("output %q, want %q", out, want)
	}
}

func TestArgumentLimitTruncates(t *testing.T) {
	var argc int
	sh, pipe := newTestShell(t, Config{MaxArgs: 3})
	sh.Register("a", func(argv [][]byte) int {
		argc = len(argv)
		return 0
	})

	feed(t, sh, pipe, "a b c d e\r")
	pipe.TakeOutput()

	if argc != 3 {
		t.Errorf("handler got %d args, want 3", argc)
	}
}

func TestUnrecognizedEscapeAborts(t *testing.T) {
	sh, pipe := newTestShell(t, Config{Prompt: ">"})

	// ESC followed by a non-introducer is dropped; typing resumes normally
	feed(t, sh, pipe, "\x1bZab")
	if got := pipe.TakeOutput(); got != "ab" {
		t.Errorf("output %q, want %q", got, "ab")
	}
}

func TestUnknownCSIFinalIgnored(t *testing.T) {
	sh, pipe := newTestShell(t, Config{})
	feed(t, sh, pipe, "\x1b[C")
	if got := pipe.TakeOutput(); got != "" {
		t.Errorf("unknown CSI final wrote %q", got)
	}
}

const eraseOne = "\x08 \x08"

func TestHistoryRecall(t *testing.T) {
	sh, pipe := newTestShell(t, Config{Prompt: ">"})
	sh.Register("one", func(argv [][]byte) int { return 0 })
	sh.Register("two", func(argv [][]byte) int { return 0 })

	feed(t, sh, pipe, "one\rtwo\r")
	pipe.TakeOutput()

	// Arrow-up recalls "two"
	feed(t, sh, pipe, "\x1b[A")
	if got := pipe.TakeOutput(); got != "two" {
		t.Errorf("first arrow-up wrote %q, want %q", got, "two")
	}

	// Again recalls "one", erasing the three visible characters first
	feed(t, sh, pipe, "\x1b[A")
	want := eraseOne + eraseOne + eraseOne + "one"
	if got := pipe.TakeOutput(); got != want {
		t.Errorf("second arrow-up wrote %q, want %q", got, want)
	}

	// At the oldest entry: alert only
	feed(t, sh, pipe, "\x1b[A")
	if got := pipe.TakeOutput(); got != "\x07" {
		t.Errorf("arrow-up past oldest wrote %q, want BEL", got)
	}

	// CR resubmits the recalled line
	feed(t, sh, pipe, "\r")
	if got, want := pipe.TakeOutput(), "\r\n\r\n>"; got != want {
		t.Errorf("resubmit wrote %q, want %q", got, want)
	}
}

func TestHistoryPreservesInProgressEdit(t *testing.T) {
	sh, pipe := newTestShell(t, Config{Prompt: ">"})
	sh.Register("cmd", func(argv [][]byte) int { return 0 })

	feed(t, sh, pipe, "cmd\r")
	pipe.TakeOutput()

	// Partially typed line, then up, then down: the edit comes back
	feed(t, sh, pipe, "par")
	pipe.TakeOutput()

	feed(t, sh, pipe, "\x1b[A")
	want := eraseOne + eraseOne + eraseOne + "cmd"
	if got := pipe.TakeOutput(); got != want {
		t.Errorf("arrow-up wrote %q, want %q", got, want)
	}

	feed(t, sh, pipe, "\x1b[B")
	want = eraseOne + eraseOne + eraseOne + "par"
	if got := pipe.TakeOutput(); got != want {
		t.Errorf("arrow-down wrote %q, want %q", got, want)
	}

	// Past the newest position: alert only
	feed(t, sh, pipe, "\x1b[B")
	if got := pipe.TakeOutput(); got != "\x07" {
		t.Errorf("arrow-down past newest wrote %q, want BEL", got)
	}
}

func TestHistoryNavigationWithParameterBytes(t *testing.T) {
	sh, pipe := newTestShell(t, Config{})
	sh.Register("x", func(argv [][]byte) int { return 0 })

	feed(t, sh, pipe, "x\r")
	pipe.TakeOutput()

	// CSI parameter bytes before the final are consumed and ignored
	feed(t, sh, pipe, "\x1b[1A")
	if got := pipe.TakeOutput(); got != "x" {
		t.Errorf("arrow-up with parameter wrote %q, want %q", got, "x")
	}
}

func TestHistoryEmptyAlerts(t *testing.T) {
	sh, pipe := newTestShell(t, Config{})
	feed(t, sh, pipe, "\x1b[A")
	if got := pipe.TakeOutput(); got != "\x07" {
		t.Errorf("arrow-up with empty history wrote %q, want BEL", got)
	}
	feed(t, sh, pipe, "\x1b[B")
	if got := pipe.TakeOutput(); got != "\x07" {
		t.Errorf("arrow-down with empty history wrote %q, want BEL", got)
	}
}

func TestHistorySkipsDuplicateSubmissions(t *testing.T) {
	sh, pipe := newTestShell(t, Config{})
	sh.Register("same", func(argv [][]byte) int { return 0 })

	feed(t, sh, pipe, "same\rsame\r")
	pipe.TakeOutput()

	// One stored entry: a single arrow-up hits the oldest bound
	feed(t, sh, pipe, "\x1b[A")
	if got := pipe.TakeOutput(); got != "same" {
		t.Errorf("arrow-up wrote %q, want %q", got, "same")
	}
	feed(t, sh, pipe, "\x1b[A")
	if got := pipe.TakeOutput(); got != "\x07" {
		t.Errorf("second arrow-up wrote %q, want BEL", got)
	}
}
