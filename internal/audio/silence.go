package audio

import (
	"math"
	"os"

	"github.com/go-audio/wav"
)

// RMS returns the root mean square amplitude of a WAV file's samples.
func RMS(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	buf, err := wav.NewDecoder(f).FullPCMBuffer()
	if err != nil {
		return 0, err
	}
	if buf == nil || len(buf.Data) == 0 {
		return 0, nil
	}

	var sum float64
	for _, s := range buf.Data {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(buf.Data))), nil
}

// Silent reports whether the recording carries no usable speech energy.
// RMS below ~200 for 16-bit audio is effectively silence. An unreadable
// file does not gate; the transcription engine reports its own failure.
func Silent(path string, threshold float64) bool {
	if threshold <= 0 {
		return false
	}
	rms, err := RMS(path)
	if err != nil {
		return false
	}
	return rms < threshold
}
