package signal

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/sarchlab/firgold/fault"
	"github.com/sarchlab/firgold/source"
)

// LoadWAV reads integer PCM samples of one channel from a RIFF/WAVE
// capture, such as a stimulus recorded from a bench setup.
func LoadWAV(src source.Source, channel int) ([]*big.Int, error) {
	if err := source.CheckAll(src); err != nil {
		return nil, err
	}

	data, err := source.ReadAll(src)
	if err != nil {
		return nil, err
	}

	decoder := wav.NewDecoder(bytes.NewReader(data))
	if !decoder.IsValidFile() {
		return nil, &fault.Error{
			Kind:   fault.MalformedLiteral,
			Source: src.Name(),
			Msg:    "not a valid WAV file",
		}
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, &fault.Error{
			Kind:   fault.MalformedLiteral,
			Source: src.Name(),
			Msg:    "cannot decode PCM data",
			Err:    err,
		}
	}

	slog.Debug("wav capture decoded",
		"source", src.Name(),
		"bitDepth", decoder.BitDepth,
		"sampleRate", decoder.SampleRate,
		"channels", decoder.NumChans,
	)

	samples, err := channelSamples(buf, channel)
	if err != nil {
		return nil, &fault.Error{Kind: fault.MalformedLiteral, Source: src.Name(), Err: err}
	}

	if len(samples) == 0 {
		return samples, fault.Empty(src.Name(), "capture has no frames")
	}

	return samples, nil
}

func channelSamples(buf *audio.IntBuffer, channel int) ([]*big.Int, error) {
	chans := 1
	if buf.Format != nil && buf.Format.NumChannels > 0 {
		chans = buf.Format.NumChannels
	}

	if channel < 0 || channel >= chans {
		return nil, fmt.Errorf("channel %d out of range, capture has %d", channel, chans)
	}

	samples := make([]*big.Int, 0, len(buf.Data)/chans)
	for i := channel; i < len(buf.Data); i += chans {
		samples = append(samples, big.NewInt(int64(buf.Data[i])))
	}

	return samples, nil
}
