package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineArgs(t *testing.T) {
	defaultVoice := Voice{Rate: 0.8, Pitch: 1.0, Volume: 1.0}

	tests := []struct {
		engine string
		voice  Voice
		want   []string
	}{
		{"espeak-ng", defaultVoice, []string{"-s", "140", "-p", "50", "-a", "100", "abate"}},
		{"espeak", Voice{Rate: 1, Pitch: 3, Volume: 0.5, Name: "en-us"}, []string{"-s", "175", "-p", "99", "-a", "50", "-v", "en-us", "abate"}},
		{"spd-say", defaultVoice, []string{"-w", "-r", "-20", "-p", "0", "-i", "0", "abate"}},
		{"say", Voice{Rate: 0.8, Name: "Samantha"}, []string{"-r", "140", "-v", "Samantha", "abate"}},
	}

	for _, tt := range tests {
		t.Run(tt.engine, func(t *testing.T) {
			got := engines[tt.engine].args("abate", tt.voice)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPowershellArgsReadsStdin(t *testing.T) {
	e := engines["powershell"]
	require.True(t, e.stdin)

	args := e.args("abate", Voice{Rate: 0.8, Volume: 1, Name: "Zira's"})
	script := args[len(args)-1]
	assert.Contains(t, script, "$s.Rate = -2;")
	assert.Contains(t, script, "$s.Volume = 100;")
	assert.Contains(t, script, "SelectVoice('Zira''s')")
	assert.NotContains(t, script, "abate")
}

func fakeLookPath(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestNewSystemSpeaker_Resolution(t *testing.T) {
	tests := []struct {
		name      string
		command   string
		goos      string
		available []string
		want      string
		wantErr   bool
	}{
		{name: "linux prefers espeak-ng", goos: "linux", available: []string{"spd-say", "espeak-ng"}, want: "espeak-ng"},
		{name: "linux falls back", goos: "linux", available: []string{"spd-say"}, want: "spd-say"},
		{name: "darwin say", goos: "darwin", available: []string{"say", "espeak-ng"}, want: "say"},
		{name: "unknown os uses linux list", goos: "plan9", available: []string{"espeak"}, want: "espeak"},
		{name: "nothing installed", goos: "linux", wantErr: true},
		{name: "configured command", command: "/opt/bin/espeak", goos: "linux", available: []string{"/opt/bin/espeak"}, want: "espeak"},
		{name: "configured unsupported", command: "festival", goos: "linux", available: []string{"festival"}, wantErr: true},
		{name: "configured missing", command: "say", goos: "darwin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSystemSpeaker(tt.command, Voice{Rate: 1}, tt.goos, fakeLookPath(tt.available...), NullLogger())
			if tt.wantErr {
				assert.Error(t, s.IsAvailable())
				assert.Error(t, s.Speak(context.Background(), "abate"))
				return
			}
			require.NoError(t, s.IsAvailable())
			assert.Equal(t, tt.want, s.Name())
		})
	}
}
