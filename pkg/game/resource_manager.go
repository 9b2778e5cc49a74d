package game

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	audiodec "github.com/decker502/lessons/internal/audio"
	"github.com/decker502/lessons/internal/logging"
	"github.com/decker502/lessons/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp" // Register BMP decoder
	"golang.org/x/image/font/basicfont"
	"golang.org/x/sync/errgroup"
)

// maxParallelDecodes limits concurrent image decodes during Preload.
const maxParallelDecodes = 4

// ResourceManager is responsible for centralized management of lesson resources.
// It provides loading and caching mechanisms for images, audio and fonts,
// ensuring that resources are loaded only once and reused across lessons.
//
// Thread Safety Note:
// The caches are only touched from the game loop goroutine. Preload decodes
// files concurrently but converts and caches the results on the calling goroutine.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	img, err := rm.LoadImage("assets/textures/dot.bmp")
//	if err != nil {
//	    log.Warnf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	decodedCache  map[string]image.Image      // Decoded source images: path -> image, shared by keyed variants
	imageCache    map[string]*ebiten.Image    // Cache for loaded images: path(+colorkey) -> Image
	musicCache    map[string]*audio.Player    // Cache for looping music players: path -> Player
	soundCache    map[string][]byte           // Cache for decoded sound effects: path -> 16-bit stereo PCM
	audioContext  *audio.Context              // Global audio context for audio decoding
	fontFaceCache map[string]*text.GoTextFace // Cache for text faces: path:size -> face

	fallbackFace text.Face
	log          *zap.SugaredLogger
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter is required for audio decoding and playback and
// may be nil when the caller never loads audio (e.g. in tests).
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		decodedCache:  make(map[string]image.Image),
		imageCache:    make(map[string]*ebiten.Image),
		musicCache:    make(map[string]*audio.Player),
		soundCache:    make(map[string][]byte),
		audioContext:  audioContext,
		fontFaceCache: make(map[string]*text.GoTextFace),
		fallbackFace:  text.NewGoXFace(basicfont.Face7x13),
		log:           logging.Named("ResourceManager"),
	}
}

// decodeImageFile opens and decodes an image file.
// Supported formats: PNG, JPEG and BMP.
func decodeImageFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// decode returns the decoded source image, reading the file only once.
func (rm *ResourceManager) decode(path string) (image.Image, error) {
	if img, exists := rm.decodedCache[path]; exists {
		return img, nil
	}
	img, err := decodeImageFile(path)
	if err != nil {
		return nil, err
	}
	rm.decodedCache[path] = img
	return img, nil
}

func colorKeyCacheKey(path string, key color.RGBA) string {
	return fmt.Sprintf("%s#%02x%02x%02x", path, key.R, key.G, key.B)
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Returns an error if the file does not exist or cannot be decoded.
// Does not panic - all errors are returned to the caller for handling.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	img, err := rm.decode(path)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// LoadImageWithColorKey loads an image and makes every pixel matching key fully transparent.
// The keyed image is cached separately from the plain image at the same path; both are
// built from the same decoded source, so a preloaded file is not read again.
func (rm *ResourceManager) LoadImageWithColorKey(path string, key color.RGBA) (*ebiten.Image, error) {
	cacheKey := colorKeyCacheKey(path, key)
	if cachedImage, exists := rm.imageCache[cacheKey]; exists {
		return cachedImage, nil
	}

	img, err := rm.decode(path)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(components.ApplyColorKey(img, key))
	rm.imageCache[cacheKey] = ebitenImg
	return ebitenImg, nil
}

// Preload decodes the given image files concurrently and caches them, both as
// plain images and as decoded sources for later color-keyed variants.
// Files that fail to load are reported in the returned error; the others are still cached.
func (rm *ResourceManager) Preload(ctx context.Context, paths []string) error {
	var (
		mu      sync.Mutex
		decoded = make(map[string]image.Image, len(paths))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelDecodes)

	var errs []error
	for _, path := range paths {
		if _, exists := rm.decodedCache[path]; exists || path == "" {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := decodeImageFile(path)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			decoded[path] = img
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("preload interrupted: %w", err)
	}

	// ebiten images are created on the calling goroutine
	for path, img := range decoded {
		rm.decodedCache[path] = img
		if _, exists := rm.imageCache[path]; !exists {
			rm.imageCache[path] = ebiten.NewImageFromImage(img)
		}
	}
	rm.log.Debugf("Preloaded %d/%d images", len(decoded), len(paths))

	if len(errs) > 0 {
		return fmt.Errorf("failed to preload %d images: %w", len(errs), errs[0])
	}
	return nil
}

// ImageOrPlaceholder loads an image and falls back to a solid placeholder of the
// given size when the file is missing or broken. The failure is logged.
func (rm *ResourceManager) ImageOrPlaceholder(path string, w, h int, fill color.Color) *ebiten.Image {
	if path != "" {
		img, err := rm.LoadImage(path)
		if err == nil {
			return img
		}
		rm.log.Warnf("Failed to load image, using placeholder: %v", err)
	}
	return Placeholder(w, h, fill)
}

// Placeholder creates a solid image used when an asset could not be loaded.
func Placeholder(w, h int, fill color.Color) *ebiten.Image {
	img := ebiten.NewImage(max(1, w), max(1, h))
	img.Fill(fill)
	return img
}

// readAudioFile reads an audio file fully into memory so the stream can seek
// without keeping the file open.
func readAudioFile(path string) (*bytes.Reader, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open audio file %s: %w", path, err)
	}
	defer file.Close()

	audioData, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	return bytes.NewReader(audioData), strings.ToLower(filepath.Ext(path)), nil
}

type lengthStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio decodes WAV, MP3, OGG Vorbis or Sun AU by file extension,
// resampled to the audio context's sample rate.
func decodeAudio(reader io.ReadSeeker, ext, path string, sampleRate int) (lengthStream, error) {
	var (
		stream lengthStream
		err    error
	)
	switch ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, reader)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, reader)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, reader)
	case ".au":
		stream, err = audiodec.DecodeAU(reader, sampleRate)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg, .au)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s audio %s: %w", strings.TrimPrefix(ext, "."), path, err)
	}
	return stream, nil
}

// LoadMusic loads an audio file wrapped in an infinite loop, suitable for background music.
// Supported formats: WAV, MP3, OGG Vorbis and AU.
func (rm *ResourceManager) LoadMusic(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.musicCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.openAudio(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.musicCache[path] = player
	return player, nil
}

// LoadSoundEffect decodes a sound effect into 16-bit stereo PCM and caches it.
// Supported formats: WAV, MP3, OGG Vorbis and AU.
func (rm *ResourceManager) LoadSoundEffect(path string) ([]byte, error) {
	if cachedData, exists := rm.soundCache[path]; exists {
		return cachedData, nil
	}

	stream, err := rm.openAudio(path)
	if err != nil {
		return nil, err
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio %s: %w", path, err)
	}

	rm.soundCache[path] = pcm
	return pcm, nil
}

// NewSoundPlayer creates a one-shot player for a sound effect.
// Every call returns a new player, so the same sound can overlap itself.
func (rm *ResourceManager) NewSoundPlayer(path string) (*audio.Player, error) {
	pcm, err := rm.LoadSoundEffect(path)
	if err != nil {
		return nil, err
	}
	return rm.audioContext.NewPlayerFromBytes(pcm), nil
}

func (rm *ResourceManager) openAudio(path string) (lengthStream, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", path)
	}

	reader, ext, err := readAudioFile(path)
	if err != nil {
		return nil, err
	}
	return decodeAudio(reader, ext, path, rm.audioContext.SampleRate())
}

// LoadFont loads a TrueType/OpenType font and creates a text face with the given size.
// The face is cached by path and size.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace
	return goTextFace, nil
}

// FontOrFallback loads a font face, falling back to the built-in bitmap face when
// the font file is unavailable.
func (rm *ResourceManager) FontOrFallback(path string, size float64) text.Face {
	if path != "" {
		face, err := rm.LoadFont(path, size)
		if err == nil {
			return face
		}
		rm.log.Warnf("Failed to load font, using bitmap fallback: %v", err)
	}
	return rm.fallbackFace
}
