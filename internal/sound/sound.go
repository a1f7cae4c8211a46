//go:build !ci

// Package sound plays short effects for countdown ticks and turn results.
package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// Effect names looked up by the UI. Files are matched by base name, so
// assets/sounds/buzzer.wav backs Buzzer.
const (
	Tick    = "tick"    // critical countdown seconds
	Buzzer  = "buzzer"  // time ran out
	Success = "success" // card guessed
)

type Manager struct {
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewManager() *Manager {
	return &Manager{buffers: make(map[string]*beep.Buffer)}
}

// Init opens the speaker and loads every effect found under
// assets/sounds. A missing directory just means a silent game.
func (m *Manager) Init() error {
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	m.enabled = true

	return m.loadEffects(sampleRate)
}

func (m *Manager) loadEffects(sampleRate beep.SampleRate) error {
	soundDir := "assets/sounds"
	files, err := os.ReadDir(soundDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}

		// Skip unreadable files, keep loading the rest
		_ = m.loadEffect(soundDir, name, ext, sampleRate)
	}

	return nil
}

func (m *Manager) loadEffect(soundDir, name, ext string, sampleRate beep.SampleRate) error {
	f, err := os.Open(filepath.Clean(filepath.Join(soundDir, name)))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   4,
	})
	buffer.Append(resampled)

	m.buffers[strings.TrimSuffix(name, filepath.Ext(name))] = buffer
	return nil
}

// Play starts an effect by name. Unknown names are silently ignored.
func (m *Manager) Play(name string) {
	if !m.enabled {
		return
	}
	buffer, ok := m.buffers[name]
	if !ok {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (m *Manager) Close() {
	m.enabled = false
}
