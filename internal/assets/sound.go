package assets

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Sound is a WAV file decoded into memory so it can be replayed at will.
type Sound struct {
	name   string
	buffer *beep.Buffer
}

// DecodeSound reads a whole WAV stream into memory.
func DecodeSound(name string, r io.Reader) (*Sound, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", name, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("assets: cannot read %s: %w", name, err)
	}

	return &Sound{name: name, buffer: buffer}, nil
}

// LoadSound reads a WAV file from path.
func LoadSound(path string) (*Sound, error) {
	f, err := openAsset(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeSound(filepath.Base(path), f)
}

// Name returns the file name the sound was loaded from.
func (s *Sound) Name() string {
	return s.name
}

// Format returns the sample format of the decoded data.
func (s *Sound) Format() beep.Format {
	return s.buffer.Format()
}

// Duration returns the playback length.
func (s *Sound) Duration() time.Duration {
	return s.buffer.Format().SampleRate.D(s.buffer.Len())
}

// Streamer returns a fresh streamer over the whole sound.
func (s *Sound) Streamer() beep.StreamSeeker {
	return s.buffer.Streamer(0, s.buffer.Len())
}
