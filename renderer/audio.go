package renderer

import (
	"log/slog"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Audio plays the game's cues through the raylib audio device.
// Cues without a loaded sound are dropped.
type Audio struct {
	sounds map[string]rl.Sound
}

// NewAudio opens the audio device and loads one sound per cue name.
// files maps cue names to paths relative to dir.
func NewAudio(dir string, files map[string]string) *Audio {
	rl.InitAudioDevice()
	a := &Audio{sounds: make(map[string]rl.Sound, len(files))}
	if !rl.IsAudioDeviceReady() {
		slog.Warn("audio_unavailable")
		return a
	}

	for cue, file := range files {
		path := filepath.Join(dir, file)
		s := rl.LoadSound(path)
		if s.FrameCount == 0 {
			slog.Warn("sound_missing", "cue", cue, "path", path)
			continue
		}
		a.sounds[cue] = s
	}
	return a
}

// Play starts the sound for cue, if one is loaded.
func (a *Audio) Play(cue string) {
	if s, ok := a.sounds[cue]; ok {
		rl.PlaySound(s)
	}
}

// Close unloads every sound and shuts the device down.
func (a *Audio) Close() {
	for cue, s := range a.sounds {
		rl.UnloadSound(s)
		delete(a.sounds, cue)
	}
	rl.CloseAudioDevice()
}
