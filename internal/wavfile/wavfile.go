// Package wavfile writes rendered sounds as mono 16-bit PCM WAV files.
package wavfile

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// BitDepth is the sample size of every file written by this package.
	BitDepth = 16
	// Channels is the channel count of every file written by this package.
	Channels = 1
	// formatPCM is the WAVE_FORMAT_PCM tag.
	formatPCM = 1

	// Software is recorded in the LIST/INFO chunk.
	Software = "chime"
)

// ErrNotWAV is returned by Read for files without a RIFF/WAVE header.
var ErrNotWAV = errors.New("not a WAV file")

// Metadata is the descriptive text stored alongside the samples.
type Metadata struct {
	Title    string
	Comments string
}

// Encode writes a complete WAV stream for pcm to w.
func Encode(w io.WriteSeeker, rate int, pcm []int16, meta Metadata) error {
	enc := wav.NewEncoder(w, rate, BitDepth, Channels, formatPCM)
	enc.Metadata = &wav.Metadata{
		Title:    meta.Title,
		Comments: meta.Comments,
		Software: Software,
	}

	data := make([]int, len(pcm))
	for i, v := range pcm {
		data[i] = int(v)
	}
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: Channels,
			SampleRate:  rate,
		},
		Data:           data,
		SourceBitDepth: BitDepth,
	}

	// Write is called even for an empty buffer so the header is emitted.
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV header: %w", err)
	}
	return nil
}

// Write encodes pcm into the file at path. The data goes to a temporary file
// next to path which is renamed into place once complete, so an existing
// file is either fully replaced or left as it was.
func Write(path string, rate int, pcm []int16, meta Metadata) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".chime-*.wav")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Printf("Warning: failed to remove temporary file %s: %v", tmpPath, rmErr)
		}
	}()

	if err = Encode(tmp, rate, pcm, meta); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

// Info describes a decoded WAV file.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Format     int
	PCM        []int16
}

// Read decodes the WAV file at path.
func Read(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrNotWAV, path)
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}

	pcm := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		pcm[i] = int16(v)
	}
	return &Info{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
		Format:     int(d.WavAudioFormat),
		PCM:        pcm,
	}, nil
}
