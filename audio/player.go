// Package audio plays the game's sound effects and music through beep.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/plus3/woodland/sim"
)

const (
	sampleRate      = beep.SampleRate(48000)
	resampleQuality = 4
)

// Song is a music track.
type Song int

const (
	SongTitle Song = iota
	SongPlaying

	SongCount
)

var songStems = [SongCount]string{
	SongTitle:   "title",
	SongPlaying: "playing",
}

// Stem returns the track's asset file name without extension.
func (s Song) Stem() string {
	if s < 0 || s >= SongCount {
		return ""
	}
	return songStems[s]
}

func (s Song) String() string {
	return s.Stem()
}

// Config locates the audio assets and sets the mix.
// Volumes are linear gains; 0 mutes.
type Config struct {
	SoundDir     string
	MusicDir     string
	EffectVolume float64
	MusicVolume  float64
}

// SoundPath returns the file an effect is decoded from.
func SoundPath(dir string, effect sim.SoundEffect) string {
	return filepath.Join(dir, effect.Stem()+".ogg")
}

// SongPath returns the file a song is streamed from.
func SongPath(dir string, song Song) string {
	return filepath.Join(dir, song.Stem()+".ogg")
}

// Player mixes one-shot effects over an optional music track.
// It satisfies sim.SoundSink. Until Initialize succeeds every call is a no-op,
// so a game without an audio device keeps running silently.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	effects     [sim.SoundEffectCount]*beep.Buffer
	music       *beep.Ctrl
	musicFile   beep.StreamSeekCloser
	initialized bool
}

// NewPlayer creates a player that has not loaded anything yet.
func NewPlayer(cfg Config) *Player {
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Load decodes every sound effect into memory. All effects are attempted;
// the returned error joins every failure.
func (p *Player) Load() error {
	var errs []error
	for effect := range sim.SoundEffectCount {
		buf, err := decodeBuffer(SoundPath(p.cfg.SoundDir, effect))
		if err != nil {
			errs = append(errs, fmt.Errorf("sound %s: %w", effect, err))
			continue
		}
		p.mu.Lock()
		p.effects[effect] = buf
		p.mu.Unlock()
	}
	return errors.Join(errs...)
}

// Initialize opens the audio device and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio device: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts a one-shot effect. Effects that failed to load are skipped.
func (p *Player) Play(effect sim.SoundEffect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || effect < 0 || effect >= sim.SoundEffectCount {
		return
	}
	buf := p.effects[effect]
	if buf == nil {
		return
	}

	streamer := newVolume(buf.Streamer(0, buf.Len()), p.cfg.EffectVolume)
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// PlaySong replaces the current music track. A looping song restarts from the
// beginning when it ends.
func (p *Player) PlaySong(song Song, loop bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}

	path := SongPath(p.cfg.MusicDir, song)
	stream, format, err := openVorbis(path)
	if err != nil {
		return fmt.Errorf("song %s: %w", song, err)
	}

	var source beep.Streamer = stream
	if loop {
		source = beep.Loop(-1, stream)
	}
	source = beep.Resample(resampleQuality, format.SampleRate, sampleRate, source)

	p.stopSongLocked()
	p.musicFile = stream
	p.music = &beep.Ctrl{Streamer: newVolume(source, p.cfg.MusicVolume)}

	speaker.Lock()
	p.mixer.Add(p.music)
	speaker.Unlock()
	return nil
}

// StopSong silences the music.
func (p *Player) StopSong() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopSongLocked()
}

func (p *Player) stopSongLocked() {
	if p.music != nil {
		speaker.Lock()
		p.music.Paused = true
		p.music.Streamer = nil
		speaker.Unlock()
		p.music = nil
	}
	if p.musicFile != nil {
		p.musicFile.Close()
		p.musicFile = nil
	}
}

// Close stops everything and releases the music file.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.stopSongLocked()
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Loaded reports which effects decoded successfully.
func (p *Player) Loaded() []sim.SoundEffect {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []sim.SoundEffect
	for effect, buf := range p.effects {
		if buf != nil {
			out = append(out, sim.SoundEffect(effect))
		}
	}
	return out
}

func openVorbis(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	stream, format, err := vorbis.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return stream, format, nil
}

// decodeBuffer reads a whole file into memory at the mixer's sample rate.
func decodeBuffer(path string) (*beep.Buffer, error) {
	stream, format, err := openVorbis(path)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	buf.Append(beep.Resample(resampleQuality, format.SampleRate, sampleRate, stream))
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}

// newVolume scales a stream by a linear gain. math.Log2(0) is -Inf, so a zero
// gain is expressed as silence.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
