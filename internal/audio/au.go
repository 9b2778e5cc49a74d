// Package audio 解码 ebiten 自带解码器不支持的音频格式
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	auMagic         = 0x2e736e64 // ".snd"
	auHeaderSize    = 24
	auEncodingULaw  = 1 // 8-bit G.711 μ-law
	auEncodingPCM16 = 3 // 16-bit big-endian linear PCM

	// bytesPerFrame 输出格式：16-bit 小端立体声
	bytesPerFrame = 4
)

type auHeader struct {
	Magic      uint32
	DataOffset uint32
	DataSize   uint32 // 0xFFFFFFFF 表示未知
	Encoding   uint32
	SampleRate uint32
	Channels   uint32
}

// AUStream 解码后的 Sun/NeXT (.au) 音频
//
// 输出为 ebiten 要求的 16-bit 小端立体声 PCM，采样率为解码时指定的目标采样率。
// 实现 io.ReadSeeker，可直接交给 audio.Context.NewPlayer 或 audio.NewInfiniteLoop。
type AUStream struct {
	*bytes.Reader
	sampleRate int
}

// DecodeAU 解码 .au 音频并重采样到 sampleRate
//
// 支持 μ-law 和 16-bit PCM 编码，单声道或立体声。
func DecodeAU(r io.Reader, sampleRate int) (*AUStream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read AU data: %w", err)
	}
	if len(data) < auHeaderSize {
		return nil, fmt.Errorf("AU data too short: %d bytes", len(data))
	}

	var h auHeader
	if err := binary.Read(bytes.NewReader(data), binary.BigEndian, &h); err != nil {
		return nil, fmt.Errorf("failed to read AU header: %w", err)
	}
	if h.Magic != auMagic {
		return nil, fmt.Errorf("invalid AU magic 0x%08x", h.Magic)
	}
	if h.Channels < 1 || h.Channels > 2 {
		return nil, fmt.Errorf("unsupported AU channel count %d", h.Channels)
	}
	if h.SampleRate == 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d -> %d", h.SampleRate, sampleRate)
	}
	if h.DataOffset < auHeaderSize || int(h.DataOffset) > len(data) {
		return nil, fmt.Errorf("invalid AU data offset %d (size %d)", h.DataOffset, len(data))
	}

	body := data[h.DataOffset:]
	if h.DataSize != 0xFFFFFFFF && int(h.DataSize) < len(body) {
		body = body[:h.DataSize]
	}

	samples, err := decodeSamples(body, h.Encoding)
	if err != nil {
		return nil, err
	}

	pcm := toStereo(samples, int(h.Channels), int(h.SampleRate), sampleRate)
	return &AUStream{Reader: bytes.NewReader(pcm), sampleRate: sampleRate}, nil
}

// Length 返回解码后的字节数
func (s *AUStream) Length() int64 {
	return s.Size()
}

// SampleRate 返回输出采样率
func (s *AUStream) SampleRate() int {
	return s.sampleRate
}

func decodeSamples(body []byte, encoding uint32) ([]int16, error) {
	switch encoding {
	case auEncodingULaw:
		samples := make([]int16, len(body))
		for i, b := range body {
			samples[i] = ulawToLinear(b)
		}
		return samples, nil
	case auEncodingPCM16:
		samples := make([]int16, len(body)/2)
		for i := range samples {
			samples[i] = int16(binary.BigEndian.Uint16(body[i*2:]))
		}
		return samples, nil
	default:
		return nil, fmt.Errorf("unsupported AU encoding %d (supported: 1 μ-law, 3 PCM16)", encoding)
	}
}

// ulawToLinear G.711 μ-law 解码
func ulawToLinear(u byte) int16 {
	u = ^u
	exponent := (u >> 4) & 0x07
	mantissa := int32(u & 0x0F)
	sample := ((mantissa << 3) + 0x84) << exponent
	sample -= 0x84
	if u&0x80 != 0 {
		return int16(-sample)
	}
	return int16(sample)
}

// toStereo 按最近邻重采样并输出 16-bit 小端立体声
func toStereo(samples []int16, channels, from, to int) []byte {
	inFrames := len(samples) / channels
	outFrames := int(int64(inFrames) * int64(to) / int64(from))
	out := make([]byte, outFrames*bytesPerFrame)

	for i := 0; i < outFrames; i++ {
		src := int(int64(i) * int64(from) / int64(to))
		left := samples[src*channels]
		right := left
		if channels == 2 {
			right = samples[src*channels+1]
		}
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], uint16(left))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], uint16(right))
	}
	return out
}
