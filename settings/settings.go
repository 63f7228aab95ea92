package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oomph-ac/waddle/input"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Settings contains every tunable of the simulator and the headless runner.
type Settings struct {
	Body struct {
		Weight      float32
		WaddleSpeed float32
		// WalkCarryOver is the share of the previous velocity kept while walking.
		WalkCarryOver float32
		// SlideTurnRate is in degrees per second.
		SlideTurnRate  float32
		PushForce      float32
		FlapSlowEffect float32
		Gravity        float32
		JumpHeight     float32
		MaxSpeed       float32
	}
	Ground struct {
		ProbeCount     int
		ProbeRadius    float32
		ProbeLength    float32
		VerticalOffset float32
		// FootOffset is the distance from the reference point down to the foot.
		FootOffset      float32
		DebounceWindow  int
		AirtimeDelay    float32
		JumpGraceTicks  int
		SpawnGraceTicks int
	}
	Slide struct {
		// SnowFriction scales the downhill pull. Lower values mean more friction.
		SnowFriction float32
	}
	Flight struct {
		LiftFactor               float32
		AirResistance            float32
		AirRotationSpeed         float32
		FlightRotationSlowFactor float32
		FlapHeldThreshold        float32
		GlideThreshold           float32
	}
	Smoothing struct {
		TurnSmoothTime    float32
		AngleSmoothTime   float32
		SlideTiltMinSpeed float32
	}
	Timing struct {
		TickRate         int
		FlagHoldSeconds  float32
		DiveDelaySeconds float32
	}
	Trail struct {
		Length     int
		SkipFrames int
		LeftTip    []float32
		RightTip   []float32
	}
	Landing struct {
		// NiceAngle is the largest angle between belly and ground that still counts as a clean landing.
		NiceAngle float32
	}
	Runner struct {
		LogLevel      string
		SentryDSN     string
		StatsviewAddr string
		Characters    int
		Parallel      bool
		Ticks         int
		RecordPath    string
		// ScriptPath names a TOML or YAML input script. Empty runs the built-in course script.
		ScriptPath string
		// Debug is a comma separated list of debug modes enabled on the first character.
		Debug string
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Body.Weight = 1
	s.Body.WaddleSpeed = 2
	s.Body.WalkCarryOver = 0.5
	s.Body.SlideTurnRate = 90
	s.Body.PushForce = 2
	s.Body.FlapSlowEffect = 0.05
	s.Body.Gravity = 5
	s.Body.JumpHeight = 0.7
	s.Body.MaxSpeed = 30

	s.Ground.ProbeCount = 10
	s.Ground.ProbeRadius = 0.4
	s.Ground.ProbeLength = 0.1
	s.Ground.VerticalOffset = 0.4
	s.Ground.FootOffset = 0.45
	s.Ground.DebounceWindow = 5
	s.Ground.AirtimeDelay = 0.01
	s.Ground.JumpGraceTicks = 7
	s.Ground.SpawnGraceTicks = 5

	s.Slide.SnowFriction = 0.5

	s.Flight.LiftFactor = 0.05
	s.Flight.AirResistance = 0.2
	s.Flight.AirRotationSpeed = 180
	s.Flight.FlightRotationSlowFactor = 0.2
	s.Flight.FlapHeldThreshold = 0.05
	s.Flight.GlideThreshold = 0.5

	s.Smoothing.TurnSmoothTime = 0.1
	s.Smoothing.AngleSmoothTime = 0.1
	s.Smoothing.SlideTiltMinSpeed = 2

	s.Timing.TickRate = 60
	s.Timing.FlagHoldSeconds = 0.6
	s.Timing.DiveDelaySeconds = 0.05

	s.Trail.Length = 20
	s.Trail.SkipFrames = 2
	s.Trail.LeftTip = []float32{-0.45, 0, 0}
	s.Trail.RightTip = []float32{0.45, 0, 0}

	s.Landing.NiceAngle = 30

	s.Runner.LogLevel = "info"
	s.Runner.Characters = 8
	s.Runner.Parallel = true
	s.Runner.Ticks = 1200
	return s
}

// DebugModes returns the debug modes named in Runner.Debug.
func (s Settings) DebugModes() []string {
	var modes []string
	for _, m := range strings.Split(s.Runner.Debug, ",") {
		if m = strings.TrimSpace(m); m != "" {
			modes = append(modes, m)
		}
	}
	return modes
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := encode(path, DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// The format follows the file extension: .toml, .yaml or .yml.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	s := DefaultSettings()
	switch format(path) {
	case "toml":
		err = toml.Unmarshal(data, &s)
	case "yaml":
		err = yaml.Unmarshal(data, &s)
	default:
		return Settings{}, fmt.Errorf("unsupported settings format %q", filepath.Ext(path))
	}
	if err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	return s, nil
}

// LoadScript reads an input script from a TOML or YAML file.
func LoadScript(path string) (*input.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}

	sc := &input.Script{}
	switch format(path) {
	case "toml":
		err = toml.Unmarshal(data, sc)
	case "yaml":
		err = yaml.Unmarshal(data, sc)
	default:
		return nil, fmt.Errorf("unsupported script format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding script: %w", err)
	}
	for i, st := range sc.Steps {
		if st.Ticks < 0 || (len(st.Move) != 0 && len(st.Move) != 2) {
			return nil, fmt.Errorf("invalid script step %d", i)
		}
	}
	return sc, nil
}

func encode(path string, s Settings) ([]byte, error) {
	switch format(path) {
	case "toml":
		return toml.Marshal(s)
	case "yaml":
		return yaml.Marshal(s)
	default:
		return nil, fmt.Errorf("unsupported settings format %q", filepath.Ext(path))
	}
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}
