package browser

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// mockCommander records command executions for testing
type mockCommander struct {
	lastCommand string
	lastArgs    []string
	calls       int
	startError  error
}

func (m *mockCommander) Start(name string, args ...string) error {
	m.calls++
	m.lastCommand = name
	m.lastArgs = args
	return m.startError
}

const formURL = "http://192.168.1.20:8080/"

func TestOpenWithCommander_Platforms(t *testing.T) {
	tests := []struct {
		goos     string
		command  string
		expected []string
	}{
		{"linux", "xdg-open", []string{formURL}},
		{"freebsd", "xdg-open", []string{formURL}},
		{"darwin", "open", []string{formURL}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", formURL}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			mock := &mockCommander{}

			if err := OpenWithCommander(formURL, mock, tt.goos); err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if mock.lastCommand != tt.command {
				t.Errorf("expected command %q, got %q", tt.command, mock.lastCommand)
			}
			if !reflect.DeepEqual(mock.lastArgs, tt.expected) {
				t.Errorf("expected args %v, got %v", tt.expected, mock.lastArgs)
			}
		})
	}
}

func TestOpenWithCommander_UnsupportedPlatform(t *testing.T) {
	mock := &mockCommander{}

	err := OpenWithCommander(formURL, mock, "plan9")

	if err == nil {
		t.Fatal("expected error for unsupported platform, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported platform") || !strings.Contains(err.Error(), "plan9") {
		t.Errorf("unexpected error: %v", err)
	}
	if mock.calls != 0 {
		t.Error("expected no command to be started")
	}
}

func TestOpenWithCommander_RejectsNonHTTP(t *testing.T) {
	for _, u := range []string{"file:///etc/passwd", "javascript:alert(1)", "localhost:8080", "://bad"} {
		t.Run(u, func(t *testing.T) {
			mock := &mockCommander{}

			if err := OpenWithCommander(u, mock, "linux"); err == nil {
				t.Errorf("expected error for %q", u)
			}
			if mock.calls != 0 {
				t.Error("expected no command to be started")
			}
		})
	}
}

func TestOpenWithCommander_CommandError(t *testing.T) {
	mock := &mockCommander{startError: fmt.Errorf("command execution failed")}

	err := OpenWithCommander(formURL, mock, "linux")

	if err == nil || err.Error() != "command execution failed" {
		t.Errorf("expected 'command execution failed', got: %v", err)
	}
}

func TestOpen_UsesDefaultCommander(t *testing.T) {
	originalCommander := defaultCommander
	defer func() { defaultCommander = originalCommander }()
	mock := &mockCommander{}
	defaultCommander = mock

	err := Open("https://localhost:8080/?qr=1")

	if _, _, cmdErr := Command("this-os-does-not-exist", ""); cmdErr == nil {
		t.Fatal("expected Command to reject unknown platforms")
	}
	if err != nil {
		t.Skipf("current platform unsupported: %v", err)
	}
	if mock.calls != 1 {
		t.Fatalf("expected one command, got %d", mock.calls)
	}
	if last := mock.lastArgs[len(mock.lastArgs)-1]; last != "https://localhost:8080/?qr=1" {
		t.Errorf("expected URL passed through, got %q", last)
	}
}

func TestRealCommander_Start(t *testing.T) {
	err := RealCommander{}.Start("nonexistent-command-xyz-123")

	if err == nil {
		t.Error("expected error for nonexistent command")
	}
}
