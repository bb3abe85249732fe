package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/footprint/internal/cli"
)

func TestConfirmOverwrite(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		terminal bool
		want     bool
	}{
		{name: "yes", input: "y\n", terminal: true, want: true},
		{name: "YES", input: "YES\n", terminal: true, want: true},
		{name: "empty defaults to no", input: "\n", terminal: true, want: false},
		{name: "other answer", input: "maybe\n", terminal: true, want: false},
		{name: "eof", input: "", terminal: true, want: false},
		{name: "no terminal", input: "y\n", terminal: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := cli.ConfirmOverwrite(&out, strings.NewReader(tt.input), "/tmp/config.yaml", tt.terminal)
			assert.Equal(t, tt.want, got.Accepted)
			assert.False(t, got.Cancelled)
			if tt.terminal {
				assert.Contains(t, out.String(), "/tmp/config.yaml already exists")
			} else {
				assert.Empty(t, out.String())
			}
		})
	}
}
