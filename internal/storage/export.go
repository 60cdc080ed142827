package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/strange/internal/dynamo"
)

type ExportData struct {
	Attractor string             `json:"attractor"`
	Output    string             `json:"output"`
	Stepper   string             `json:"stepper"`
	Dt        float64            `json:"dt"`
	Time      float64            `json:"time"`
	Steps     int                `json:"steps"`
	Params    map[string]float64 `json:"params"`
	Samples   []dynamo.Sample    `json:"samples"`
}

// ExportJSON writes a full run, metadata plus samples, as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, samples []dynamo.Sample) error {
	data := ExportData{
		Attractor: meta.Attractor,
		Output:    meta.Output,
		Stepper:   meta.Stepper,
		Dt:        meta.Dt,
		Time:      meta.Time,
		Steps:     meta.Steps,
		Params:    meta.Params,
		Samples:   samples,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
