package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/circlesim/internal/sim"
	"github.com/san-kum/circlesim/internal/vector"
)

func testResult() *sim.Result {
	return &sim.Result{
		World: "gravity",
		Frames: []sim.Frame{
			{Time: 0, Player: vector.New(100, 100)},
			{Time: 0.5, Player: vector.New(100, 110.5), Velocity: vector.New(0, -3.5), Colliding: true, Bounced: true},
		},
		StepsTaken: 1,
		Metrics: map[string]float64{
			"bounces": 1,
		},
	}
}

func testInfo() RunInfo {
	return RunInfo{Demo: "gravity", Controller: "none", Seed: 42, Dt: 0.5, Duration: 0.5, Elasticity: 0.7}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir(), nil)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testInfo(), testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "gravity_") {
		t.Errorf("unexpected run id %q", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.ID != runID {
		t.Errorf("expected id %s, got %s", runID, meta.ID)
	}
	if meta.Demo != "gravity" || meta.Seed != 42 || meta.Elasticity != 0.7 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Steps != 1 {
		t.Errorf("expected 1 step, got %d", meta.Steps)
	}
	if meta.Metrics["bounces"] != 1 {
		t.Errorf("expected bounces 1, got %f", meta.Metrics["bounces"])
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatalf("load frames failed: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	last := frames[1]
	if last.Step != 1 || last.Time != 0.5 {
		t.Errorf("unexpected step/time: %d %f", last.Step, last.Time)
	}
	if !last.Player.Equal(vector.New(100, 110.5)) || !last.Velocity.Equal(vector.New(0, -3.5)) {
		t.Errorf("unexpected kinematics: %v %v", last.Player, last.Velocity)
	}
	if !last.Colliding || !last.Bounced {
		t.Error("collision flags not restored")
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(filepath.Join(tmpDir, "runs"), nil)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := st.Save(testInfo(), testResult()); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "runs", "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID == runs[1].ID {
		t.Error("run ids collided")
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir, nil)

	runID, err := st.Save(testInfo(), testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "frames.csv"} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestStoreNotFound(t *testing.T) {
	st := New(t.TempDir(), nil)

	if _, err := st.Load("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
	if _, err := st.LoadFrames("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestStoreChecksum(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir, nil)

	runID, err := st.Save(testInfo(), testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.FramesChecksum == "" {
		t.Fatal("expected a frames checksum")
	}

	edited := "time,x,y,vx,vy,colliding,bounced\n0.000000,1.000000,2.000000,0.000000,0.000000,false,false\n"
	if err := os.WriteFile(filepath.Join(tmpDir, runID, "frames.csv"), []byte(edited), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := st.LoadFrames(runID); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestWriteRunCleansUpOnFailure(t *testing.T) {
	runDir := filepath.Join(t.TempDir(), "classic_1_deadbeef")
	// a directory in place of metadata.json makes the metadata write fail
	if err := os.MkdirAll(filepath.Join(runDir, "metadata.json"), 0755); err != nil {
		t.Fatal(err)
	}

	err := writeRun(runDir, RunMetadata{RunInfo: testInfo(), ID: "classic_1_deadbeef"}, testResult().Frames)
	if err == nil {
		t.Fatal("expected write to fail")
	}
	if _, statErr := os.Stat(runDir); !os.IsNotExist(statErr) {
		t.Errorf("expected %s to be removed, stat err: %v", runDir, statErr)
	}
}

func TestStoreCorruptFrames(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir, nil)

	runID, err := st.Save(testInfo(), testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	bad := "time,x,y,vx,vy,colliding,bounced\n0,1,2,3,4,maybe,false\n"
	if err := os.WriteFile(filepath.Join(tmpDir, runID, "frames.csv"), []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}
	// without a recorded checksum the parser sees the bad value
	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	meta.FramesChecksum = ""
	if err := writeMetadata(filepath.Join(tmpDir, runID, "metadata.json"), *meta); err != nil {
		t.Fatal(err)
	}

	if _, err := st.LoadFrames(runID); err == nil {
		t.Error("expected parse error")
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir(), nil)

	runID, err := st.Save(testInfo(), testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, runID); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var out ExportData
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if out.ID != runID || out.Demo != "gravity" {
		t.Errorf("unexpected export header: %+v", out.RunMetadata)
	}
	if len(out.Frames) != 2 {
		t.Errorf("expected 2 frames, got %d", len(out.Frames))
	}
}
