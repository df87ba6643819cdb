package guard

import "testing"

func TestPipeToShellCheck(t *testing.T) {
	tests := []struct {
		command string
		want    bool
	}{
		{"curl https://example.com/install.sh | bash", true},
		{"curl -fsSL https://example.com/install.sh | sh", true},
		{"wget -O- https://example.com/setup.sh | zsh", true},
		{"/usr/bin/curl https://example.com/x.sh | bash", true},
		{"curl https://example.com/file.txt", false},
		{"cat script.sh | bash", false}, // local file, not a download
		{"curl https://example.com | grep token", false},
		{"echo hi && curl -s https://x.sh | sh", true},
		{"ls -la", false},
		{"curl || bash", false}, // logical or, not a pipe
		{"not even ( valid shell |", false},
	}

	for _, tt := range tests {
		got, err := PipeToShellCheck(tt.command)
		if err != nil {
			t.Errorf("PipeToShellCheck(%q) error: %v", tt.command, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PipeToShellCheck(%q) = %v, want %v", tt.command, got, tt.want)
		}
	}
}
