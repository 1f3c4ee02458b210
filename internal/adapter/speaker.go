package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Voice holds engine-neutral voice parameters.
// Rate, Pitch and Volume are multipliers where 1.0 is the engine default.
type Voice struct {
	Name   string
	Rate   float64
	Pitch  float64
	Volume float64
}

// speechEngine defines how one command-line synthesizer is invoked
type speechEngine struct {
	args  func(text string, v Voice) []string
	stdin bool // text is written to stdin instead of passed as an argument
}

// engines registry - single source of truth for all synthesizer invocations
var engines = map[string]speechEngine{
	"espeak-ng": {args: espeakArgs},
	"espeak":    {args: espeakArgs},
	"spd-say":   {args: spdSayArgs},
	"say":       {args: sayArgs},
	"powershell": {
		args:  powershellArgs,
		stdin: true,
	},
}

// candidateEngines defines the preferred synthesizer order for each platform
var candidateEngines = map[string][]string{
	"darwin":  {"say", "espeak-ng"},
	"linux":   {"espeak-ng", "espeak", "spd-say"},
	"windows": {"powershell"},
}

// espeak's default speed in words per minute
const espeakBaseWPM = 175

// scale rounds f*base and clamps it to [lo, hi]
func scale(f, base float64, lo, hi int) int {
	return clamp(int(math.Round(f*base)), lo, hi)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func espeakArgs(text string, v Voice) []string {
	args := []string{
		"-s", strconv.Itoa(scale(v.Rate, espeakBaseWPM, 80, 500)),
		"-p", strconv.Itoa(scale(v.Pitch, 50, 0, 99)),
		"-a", strconv.Itoa(scale(v.Volume, 100, 0, 200)),
	}
	if v.Name != "" {
		args = append(args, "-v", v.Name)
	}
	return append(args, text)
}

// spd-say takes -100..100 offsets from the default
func spdSayArgs(text string, v Voice) []string {
	offset := func(f float64) string {
		return strconv.Itoa(scale(f-1, 100, -100, 100))
	}
	args := []string{"-w", "-r", offset(v.Rate), "-p", offset(v.Pitch), "-i", offset(v.Volume)}
	if v.Name != "" {
		args = append(args, "-y", v.Name)
	}
	return append(args, text)
}

func sayArgs(text string, v Voice) []string {
	args := []string{"-r", strconv.Itoa(scale(v.Rate, espeakBaseWPM, 50, 500))}
	if v.Name != "" {
		args = append(args, "-v", v.Name)
	}
	return append(args, text)
}

// System.Speech rate is -10..10 and volume 0..100; pitch is not exposed
func powershellArgs(_ string, v Voice) []string {
	var script strings.Builder
	script.WriteString("Add-Type -AssemblyName System.Speech; ")
	script.WriteString("$s = New-Object System.Speech.Synthesis.SpeechSynthesizer; ")
	fmt.Fprintf(&script, "$s.Rate = %d; ", scale(v.Rate-1, 10, -10, 10))
	fmt.Fprintf(&script, "$s.Volume = %d; ", scale(v.Volume, 100, 0, 100))
	if v.Name != "" {
		fmt.Fprintf(&script, "$s.SelectVoice('%s'); ", strings.ReplaceAll(v.Name, "'", "''"))
	}
	script.WriteString("$s.Speak([Console]::In.ReadToEnd())")
	return []string{"-NoProfile", "-NonInteractive", "-Command", script.String()}
}

// SystemSpeaker speaks through a local synthesizer command
type SystemSpeaker struct {
	name   string // registry name of the resolved engine
	path   string // resolved executable
	engine speechEngine
	voice  Voice
	err    error
	logger *slog.Logger
}

// NewSystemSpeaker resolves the synthesizer to use. With an empty command the
// platform candidates are tried in order. Resolution failures are reported by
// IsAvailable, not here.
func NewSystemSpeaker(command string, voice Voice, logger *slog.Logger) *SystemSpeaker {
	return newSystemSpeaker(command, voice, runtime.GOOS, exec.LookPath, logger)
}

func newSystemSpeaker(command string, voice Voice, goos string, lookPath func(string) (string, error), logger *slog.Logger) *SystemSpeaker {
	if logger == nil {
		logger = slog.Default()
	}
	s := &SystemSpeaker{voice: voice, logger: logger}

	if command != "" {
		base := strings.ToLower(filepath.Base(command))
		base = strings.TrimSuffix(base, filepath.Ext(base))
		if base == "pwsh" {
			base = "powershell"
		}
		engine, ok := engines[base]
		if !ok {
			s.err = fmt.Errorf("unsupported speech command %q", command)
			return s
		}
		path, err := lookPath(command)
		if err != nil {
			s.err = fmt.Errorf("speech command %q not found: %w", command, err)
			return s
		}
		s.name, s.path, s.engine = base, path, engine
		logger.Debug("using configured speech command", "engine", base, "path", path)
		return s
	}

	candidates, ok := candidateEngines[goos]
	if !ok {
		candidates = candidateEngines["linux"]
	}
	for _, name := range candidates {
		path, err := lookPath(name)
		if err != nil {
			logger.Debug("speech engine not available", "engine", name, "error", err)
			continue
		}
		s.name, s.path, s.engine = name, path, engines[name]
		logger.Debug("detected speech engine", "engine", name, "path", path)
		return s
	}

	s.err = fmt.Errorf("no speech engine found (tried %s)", strings.Join(candidates, ", "))
	return s
}

// Name returns the resolved engine name
func (s *SystemSpeaker) Name() string {
	if s.name == "" {
		return "system"
	}
	return s.name
}

// IsAvailable reports why no engine can be used, if so
func (s *SystemSpeaker) IsAvailable() error {
	return s.err
}

// Speak runs the synthesizer and waits for it. Canceling ctx kills the process.
func (s *SystemSpeaker) Speak(ctx context.Context, text string) error {
	if s.err != nil {
		return s.err
	}

	cmd := exec.CommandContext(ctx, s.path, s.engine.args(text, s.voice)...)
	if s.engine.stdin {
		cmd.Stdin = strings.NewReader(text)
	}

	s.logger.Debug("speaking", "engine", s.name, "text", text)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with status %d", s.name, exitErr.ExitCode())
		}
		return fmt.Errorf("%s failed: %w", s.name, err)
	}
	return nil
}
