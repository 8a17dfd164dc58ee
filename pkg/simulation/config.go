package simulation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lao-tseu-is-alive/go-boid-steering/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boid-steering/pkg/geometry"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var defaultSchema string

type Config struct {
	// World Dimensions (the world box goes from 0 to these values)
	WorldWidth  float32 `json:"worldWidth" yaml:"worldWidth"`
	WorldHeight float32 `json:"worldHeight" yaml:"worldHeight"`
	WorldDepth  float32 `json:"worldDepth" yaml:"worldDepth"`

	// Population and pacing
	NumBoids       int    `json:"numBoids" yaml:"numBoids"`
	Seed           uint64 `json:"seed" yaml:"seed"`
	TicksPerSecond int    `json:"ticksPerSecond" yaml:"ticksPerSecond"`
	SnapshotBuffer int    `json:"snapshotBuffer" yaml:"snapshotBuffer"`

	// Boid limits
	MaxSpeed float32 `json:"maxSpeed" yaml:"maxSpeed"`
	MaxForce float32 `json:"maxForce" yaml:"maxForce"`
	Radius   float32 `json:"radius" yaml:"radius"`

	// Wander parameters
	WanderRadius            float32 `json:"wanderRadius" yaml:"wanderRadius"`
	WanderLookAheadDistance float32 `json:"wanderLookAheadDistance" yaml:"wanderLookAheadDistance"`
	WanderMaxTurningSpeed   float32 `json:"wanderMaxTurningSpeed" yaml:"wanderMaxTurningSpeed"`
	WanderOffset            string  `json:"wanderOffset" yaml:"wanderOffset"` // "tangent" or "sine"

	// Behavior weights. A zero weight switches the behavior off.
	WanderWeight       float32 `json:"wanderWeight" yaml:"wanderWeight"`
	SeekWeight         float32 `json:"seekWeight" yaml:"seekWeight"`
	SeekMinRange       float32 `json:"seekMinRange" yaml:"seekMinRange"`
	ArriveWeight       float32 `json:"arriveWeight" yaml:"arriveWeight"`
	ArriveEaseDistance float32 `json:"arriveEaseDistance" yaml:"arriveEaseDistance"`
	FleeWeight         float32 `json:"fleeWeight" yaml:"fleeWeight"`
	FleeRadius         float32 `json:"fleeRadius" yaml:"fleeRadius"`
	BrakeFactor        float32 `json:"brakeFactor" yaml:"brakeFactor"`
	ContainWeight      float32 `json:"containWeight" yaml:"containWeight"`

	// Target and threat both orbit the world centre
	TargetOrbitRadius float32 `json:"targetOrbitRadius" yaml:"targetOrbitRadius"`
	TargetOrbitSpeed  float32 `json:"targetOrbitSpeed" yaml:"targetOrbitSpeed"` // radians per tick
	ThreatOrbitRadius float32 `json:"threatOrbitRadius" yaml:"threatOrbitRadius"`
	ThreatOrbitSpeed  float32 `json:"threatOrbitSpeed" yaml:"threatOrbitSpeed"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:              1000,
		WorldHeight:             800,
		WorldDepth:              400,
		NumBoids:                50,
		Seed:                    42,
		TicksPerSecond:          60,
		SnapshotBuffer:          10,
		MaxSpeed:                4,
		MaxForce:                0.15,
		Radius:                  5,
		WanderRadius:            16,
		WanderLookAheadDistance: 60,
		WanderMaxTurningSpeed:   0.3,
		WanderOffset:            "tangent",
		WanderWeight:            1,
		SeekWeight:              0,
		SeekMinRange:            30,
		ArriveWeight:            0.5,
		ArriveEaseDistance:      120,
		FleeWeight:              2,
		FleeRadius:              90,
		BrakeFactor:             0,
		ContainWeight:           1.5,
		TargetOrbitRadius:       250,
		TargetOrbitSpeed:        0.01,
		ThreatOrbitRadius:       150,
		ThreatOrbitSpeed:        -0.02,
	}
}

// Center returns the middle of the world box.
func (c *Config) Center() geometry.Vector3 {
	return geometry.Vector3{X: c.WorldWidth / 2, Y: c.WorldHeight / 2, Z: c.WorldDepth / 2}
}

// Bounds returns the far corner of the world box, the near one being the origin.
func (c *Config) Bounds() geometry.Vector3 {
	return geometry.Vector3{X: c.WorldWidth, Y: c.WorldHeight, Z: c.WorldDepth}
}

// WanderSettings converts the wander part of the config for behavior.Boid.
func (c *Config) WanderSettings() (behavior.WanderSettings, error) {
	offset, err := behavior.ParseWanderOffset(c.WanderOffset)
	if err != nil {
		return behavior.WanderSettings{}, err
	}
	return behavior.WanderSettings{
		Radius:            c.WanderRadius,
		LookAheadDistance: c.WanderLookAheadDistance,
		MaxTurningSpeed:   c.WanderMaxTurningSpeed,
		Offset:            offset,
	}, nil
}

// LoadConfig loads configuration from a JSON or YAML file and validates it against the schema.
// An empty schemaFile uses the schema embedded in the binary.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := compileSchema(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	// 3. Validate
	unmarshal := json.Unmarshal
	if isYAML(configFile) {
		unmarshal = yaml.Unmarshal
	}
	var v interface{}
	if err := unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct
	cfg := DefaultConfig()
	if err := unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if _, err := cfg.WanderSettings(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func compileSchema(schemaFile string) (*jsonschema.Schema, error) {
	if schemaFile == "" {
		return jsonschema.CompileString("config.schema.json", defaultSchema)
	}
	return jsonschema.Compile(schemaFile)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
