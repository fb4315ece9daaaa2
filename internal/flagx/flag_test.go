package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-f", "jrn.json", "-x", "1"},
			allowedFlags: []string{"-f"},
			want:         []string{"-f", "jrn.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-x", "1"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "several allowed flags kept in order",
			args:         []string{"-f", "jrn.json", "-P", "pass.txt", "--other", "x"},
			allowedFlags: []string{"-f", "-P"},
			want:         []string{"-f", "jrn.json", "-P", "pass.txt"},
		},
		{
			name:         "unknown flags and positionals dropped",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-f"},
			want:         []string{},
		},
		{
			name:         "trailing flag without value kept as-is",
			args:         []string{"-f"},
			allowedFlags: []string{"-f"},
			want:         []string{"-f"},
		},
		{
			name:         "dash-starting token is not consumed as a value",
			args:         []string{"-D", "-f", "jrn.json"},
			allowedFlags: []string{"-D", "-f"},
			want:         []string{"-D", "-f", "jrn.json"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-f", "one.json", "-f", "two.json"},
			allowedFlags: []string{"-f"},
			want:         []string{"-f", "one.json", "-f", "two.json"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-f"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func Test_JsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/short.json"}
		assert.Equal(t, "/path/short.json", JsonConfigFlags())
	})

	t.Run("long -config with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "/path/long.json"}
		assert.Equal(t, "/path/long.json", JsonConfigFlags())
	})

	t.Run("unrelated flags ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-f", "jrn.json"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.json"}
		assert.Equal(t, "/path/2.json", JsonConfigFlags())
	})
}
