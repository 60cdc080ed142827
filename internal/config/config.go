package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MinTime is the shortest simulation allowed in either output mode.
const MinTime = 1.0

// Mode is the output format a run is destined for. Each mode carries a fixed
// step-size and time-bound policy; the simulator itself only sees the step
// count derived here.
type Mode string

const (
	ModeImage     Mode = "image"
	ModeAnimation Mode = "animation"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeImage:
		return ModeImage, nil
	case ModeAnimation:
		return ModeAnimation, nil
	}
	return "", fmt.Errorf("unknown output mode: %q", s)
}

func (m Mode) Dt() float64 {
	if m == ModeAnimation {
		return 0.02
	}
	return 0.01
}

func (m Mode) MaxTime() float64 {
	if m == ModeAnimation {
		return 60
	}
	return 600
}

// Steps converts a total time to a step count under the mode's step policy.
func (m Mode) Steps(totalTime float64) int {
	return int(totalTime / m.Dt())
}

func (m Mode) ValidateTime(totalTime float64) error {
	if totalTime < MinTime {
		return fmt.Errorf("simulation time must be at least %.0fs, got %g", MinTime, totalTime)
	}
	if totalTime > m.MaxTime() {
		return fmt.Errorf("simulation time too long for %s output: max %.0fs, got %g", m, m.MaxTime(), totalTime)
	}
	return nil
}

type Config struct {
	Attractor string             `yaml:"attractor"`
	Output    string             `yaml:"output"`
	Time      float64            `yaml:"time"`
	Params    map[string]float64 `yaml:"params,omitempty"`
	InitState *InitStateConfig   `yaml:"init_state,omitempty"`
}

type InitStateConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func DefaultConfig() *Config {
	return &Config{
		Attractor: "lorenz",
		Output:    string(ModeImage),
		Time:      10.0,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
