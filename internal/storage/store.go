package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/san-kum/circlesim/internal/sim"
	"github.com/san-kum/circlesim/internal/vector"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrRunNotFound      = errors.New("storage: run not found")
	ErrChecksumMismatch = errors.New("storage: frames checksum mismatch")
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

var frameHeader = []string{"time", "x", "y", "vx", "vy", "colliding", "bounced"}

type Store struct {
	baseDir string
	log     *zap.Logger
}

func New(baseDir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{baseDir: baseDir, log: log}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunInfo describes how a run was configured.
type RunInfo struct {
	Demo       string  `json:"demo"`
	Preset     string  `json:"preset,omitempty"`
	Controller string  `json:"controller"`
	Seed       int64   `json:"seed"`
	Dt         float64 `json:"dt"`
	Duration   float64 `json:"duration"`
	Elasticity float64 `json:"elasticity"`
}

type RunMetadata struct {
	RunInfo
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`

	// FramesChecksum is the xxhash64 of frames.csv in hex.
	FramesChecksum string `json:"frames_checksum,omitempty"`
}

func newRunID(demo string, now time.Time) string {
	return fmt.Sprintf("%s_%d_%s", demo, now.Unix(), uuid.NewString()[:8])
}

// Save writes metadata.json and frames.csv into a fresh run directory and
// returns the run id.
func (s *Store) Save(info RunInfo, result *sim.Result) (string, error) {
	now := time.Now()
	runID := newRunID(info.Demo, now)
	runDir := filepath.Join(s.baseDir, runID)

	meta := RunMetadata{
		RunInfo:   info,
		ID:        runID,
		Timestamp: now,
		Steps:     result.StepsTaken,
		Metrics:   result.Metrics,
	}
	if err := writeRun(runDir, meta, result.Frames); err != nil {
		return "", err
	}

	s.log.Debug("run saved", zap.String("run_id", runID), zap.Int("frames", len(result.Frames)))
	return runID, nil
}

// writeRun fills runDir with frames and metadata. On failure runDir is
// removed so no half-written run is left behind.
func writeRun(runDir string, meta RunMetadata, frames []sim.Frame) (err error) {
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	sum, err := writeFrames(filepath.Join(runDir, framesFile), frames)
	if err != nil {
		return err
	}
	meta.FramesChecksum = checksumString(sum)
	return writeMetadata(filepath.Join(runDir, metadataFile), meta)
}

func writeMetadata(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// writeFrames writes frames as CSV and returns the xxhash64 of the bytes
// written.
func writeFrames(path string, frames []sim.Frame) (uint64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	digest := xxhash.New()
	w := csv.NewWriter(io.MultiWriter(f, digest))
	if err := w.Write(frameHeader); err != nil {
		return 0, err
	}
	for _, fr := range frames {
		row := []string{
			formatFloat(fr.Time),
			formatFloat(fr.Player.X),
			formatFloat(fr.Player.Y),
			formatFloat(fr.Velocity.X),
			formatFloat(fr.Velocity.Y),
			strconv.FormatBool(fr.Colliding),
			strconv.FormatBool(fr.Bounced),
		}
		if err := w.Write(row); err != nil {
			return 0, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, err
	}
	return digest.Sum64(), nil
}

func checksumString(sum uint64) string {
	return strconv.FormatUint(sum, 16)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// List returns every readable run, oldest first. Directories without valid
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			s.log.Warn("skipping run directory", zap.String("dir", entry.Name()), zap.Error(err))
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: decode %s metadata: %w", runID, err)
	}
	return &meta, nil
}

// LoadFrames reads back the recorded trajectory. Only the columns written by
// Save are restored; radii, obstacle and clamp flags are not persisted. When
// the metadata carries a checksum the file must match it.
func (s *Store) LoadFrames(runID string) ([]sim.Frame, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	if meta.FramesChecksum != "" && checksumString(xxhash.Sum64(data)) != meta.FramesChecksum {
		return nil, fmt.Errorf("%w: %s", ErrChecksumMismatch, runID)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(frameHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("storage: read %s frames: %w", runID, err)
	}
	if len(records) < 2 {
		return []sim.Frame{}, nil
	}

	frames := make([]sim.Frame, 0, len(records)-1)
	for i, rec := range records[1:] {
		f, err := parseFrame(rec)
		if err != nil {
			return nil, fmt.Errorf("storage: %s frame %d: %w", runID, i, err)
		}
		f.Step = i
		frames = append(frames, f)
	}
	return frames, nil
}

func parseFrame(rec []string) (sim.Frame, error) {
	var nums [5]float64
	for i := range nums {
		v, err := strconv.ParseFloat(rec[i], 64)
		if err != nil {
			return sim.Frame{}, err
		}
		nums[i] = v
	}
	colliding, err := strconv.ParseBool(rec[5])
	if err != nil {
		return sim.Frame{}, err
	}
	bounced, err := strconv.ParseBool(rec[6])
	if err != nil {
		return sim.Frame{}, err
	}
	return sim.Frame{
		Time:      nums[0],
		Player:    vector.New(nums[1], nums[2]),
		Velocity:  vector.New(nums[3], nums[4]),
		Colliding: colliding,
		Bounced:   bounced,
	}, nil
}
