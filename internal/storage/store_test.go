package storage

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/san-kum/strange/internal/dynamo"
)

func testTrajectory() *dynamo.Trajectory {
	return dynamo.NewTrajectory([]dynamo.Sample{
		{X: 0.1, Y: 0.1, Z: 0.1, T: 0},
		{X: 0.105, Y: 0.126, Z: 0.097, T: 0.01},
		{X: 0.112, Y: 0.152, Z: 0.095, T: 0.02},
	})
}

func testMeta() RunMetadata {
	return RunMetadata{
		Attractor: "lorenz",
		Output:    "image",
		Dt:        0.01,
		Time:      0.02,
		Steps:     2,
		Stepper:   "rk4",
		Params:    map[string]float64{"sigma": 10, "rho": 28, "beta": 8.0 / 3.0},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testMeta(), testTrajectory())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Attractor != "lorenz" {
		t.Errorf("expected attractor lorenz, got %s", meta.Attractor)
	}
	if meta.Stepper != "rk4" {
		t.Errorf("expected stepper rk4, got %s", meta.Stepper)
	}
	if meta.Params["rho"] != 28 {
		t.Errorf("expected rho 28, got %g", meta.Params["rho"])
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}

	if len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}
	if samples[1].Y != 0.126 || samples[1].T != 0.01 {
		t.Errorf("sample roundtrip mismatch: %+v", samples[1])
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runsMeta, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runsMeta) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runsMeta))
	}

	if _, err := st.Save(testMeta(), testTrajectory()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runsMeta, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runsMeta) != 1 {
		t.Errorf("expected 1 run, got %d", len(runsMeta))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(t.TempDir() + "/nonexistent")

	runsMeta, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runsMeta) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runsMeta))
	}
}

func TestExportJSON(t *testing.T) {
	meta := testMeta()
	meta.ID = "lorenz_123"
	tr := testTrajectory()

	samples := make([]dynamo.Sample, tr.Len())
	for i := range samples {
		samples[i] = tr.At(i)
	}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, &meta, samples); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if data.Attractor != "lorenz" {
		t.Errorf("expected attractor lorenz, got %s", data.Attractor)
	}
	if len(data.Samples) != 3 {
		t.Errorf("expected 3 samples, got %d", len(data.Samples))
	}
	if data.Samples[2].Z != 0.095 {
		t.Errorf("sample mismatch: %+v", data.Samples[2])
	}
}
