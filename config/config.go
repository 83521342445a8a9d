// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Units   UnitsConfig   `yaml:"units"`
	Course  CourseConfig  `yaml:"course"`
	Green   GreenConfig   `yaml:"green"`
	Hazards HazardsConfig `yaml:"hazards"`
	Ball    BallConfig    `yaml:"ball"`
	Slopes  SlopesConfig  `yaml:"slopes"`
	Clubs   []ClubConfig  `yaml:"clubs"`
	Wind    WindConfig    `yaml:"wind"`
	Round   RoundConfig   `yaml:"round"`
	Swing   SwingConfig   `yaml:"swing"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// UnitsConfig holds world-unit conversion ratios.
type UnitsConfig struct {
	PerYard float64 `yaml:"per_yard"` // world units per yard
}

// CourseConfig holds terrain generation parameters.
// The world uses screen-style coordinates: y grows downward, so a larger
// sample y means lower ground.
type CourseConfig struct {
	Width           float64 `yaml:"width"`            // hole length in world units
	SegmentWidth    float64 `yaml:"segment_width"`    // horizontal sample spacing
	BaseHeight      float64 `yaml:"base_height"`      // nominal ground y
	HeightFloor     float64 `yaml:"height_floor"`     // terrain never rises above this y
	HillAmplitude   float64 `yaml:"hill_amplitude"`   // primary sine amplitude
	HillFrequency   float64 `yaml:"hill_frequency"`   // primary sine spatial frequency
	DetailAmplitude float64 `yaml:"detail_amplitude"` // secondary sine amplitude
	DetailFrequency float64 `yaml:"detail_frequency"` // secondary sine spatial frequency
	NoiseAmplitude  float64 `yaml:"noise_amplitude"`  // simplex octave amplitude
	NoiseScale      float64 `yaml:"noise_scale"`      // simplex octave frequency
	SmoothPasses    int     `yaml:"smooth_passes"`    // widening-kernel passes (3/5/7 point)
	TeeX            float64 `yaml:"tee_x"`            // tee position along the course
}

// GreenConfig holds green-complex shaping parameters.
type GreenConfig struct {
	Width        float64 `yaml:"width"`         // flat putting surface width
	SlopeWidth   float64 `yaml:"slope_width"`   // transition zone on each side
	MinElevation float64 `yaml:"min_elevation"` // elevation above base (positive = raised green)
	MaxElevation float64 `yaml:"max_elevation"`
	TargetRadius float64 `yaml:"target_radius"` // hole-out capture radius around the pin
}

// HazardsConfig holds water/bunker parameters shared by all instances.
type HazardsConfig struct {
	SurfaceTolerance float64 `yaml:"surface_tolerance"` // vertical band above level that still counts
	DropOffset       float64 `yaml:"drop_offset"`       // drop distance beside a hazard (half club length)
	DropMinX         float64 `yaml:"drop_min_x"`        // drop never behind this x
	BunkerDepth      float64 `yaml:"bunker_depth"`      // sand depression depth below local terrain
}

// BallConfig holds ball integration parameters.
type BallConfig struct {
	Radius            float64 `yaml:"radius"`
	Gravity           float64 `yaml:"gravity"`            // down-positive, units/s^2
	StableDelay       float64 `yaml:"stable_delay"`       // seconds below stop speed before stabilizing
	GroundTolerance   float64 `yaml:"ground_tolerance"`   // allowed penetration on mild slopes
	SteepTolerance    float64 `yaml:"steep_tolerance"`    // allowed penetration on steep slopes
	AirborneClearance float64 `yaml:"airborne_clearance"` // min gap under the ball to count as in flight
	BackspinReversal  float64 `yaml:"backspin_reversal"`  // horizontal velocity factor on first contact
	BackspinBounce    float64 `yaml:"backspin_bounce"`    // bounce retention when backspin was requested
	GreenFriction     float64 `yaml:"green_friction"`     // extra per-second velocity loss on the green
	WindSpeedScale    float64 `yaml:"wind_speed_scale"`   // wind force scaling with ball speed
	MinBounceSpeed    float64 `yaml:"min_bounce_speed"`   // vertical speed under this does not rebound
}

// SlopesConfig holds the slope-band collision response table.
// Band thresholds are rise/run magnitudes.
type SlopesConfig struct {
	Steep            float64 `yaml:"steep"`             // |slope| above this is a steep lie
	VerySteep        float64 `yaml:"very_steep"`        // |slope| above this bounces back hard
	RestAngle        float64 `yaml:"rest_angle"`        // |slope| above this never stabilizes
	SteepBounce      float64 `yaml:"steep_bounce"`      // rebound factor on very steep impact
	SteepRepel       float64 `yaml:"steep_repel"`       // anti-uphill horizontal force, units/s^2
	ModerateRedirect float64 `yaml:"moderate_redirect"` // along-slope redirect factor on steep lies
	FlatDamping      float64 `yaml:"flat_damping"`      // vertical damping factor on flat impact
	DownslopePush    float64 `yaml:"downslope_push"`    // nudge applied instead of stabilizing, units/s
}

// ClubConfig defines one club's launch and roll behavior.
type ClubConfig struct {
	Name            string  `yaml:"name"`
	Power           float64 `yaml:"power"`            // charge multiplier scale
	LaunchAngle     float64 `yaml:"launch_angle"`     // vertical fraction of launch speed
	HorizontalPower float64 `yaml:"horizontal_power"` // base launch speed, units/s
	CanFly          bool    `yaml:"can_fly"`
	Variance        float64 `yaml:"variance"`         // shot dispersion, fraction of launch speed
	Friction        float64 `yaml:"friction"`         // rolling velocity loss per second
	StopSpeed       float64 `yaml:"stop_speed"`       // horizontal speed considered stopped
	BunkerFactor    float64 `yaml:"bunker_factor"`    // velocity retained entering sand
	BounceRetain    float64 `yaml:"bounce_retain"`    // vertical rebound factor off the ground
}

// WindConfig holds the wind random-walk parameters.
type WindConfig struct {
	MaxSpeed        float64 `yaml:"max_speed"`        // wind speed ceiling
	UpdateInterval  float64 `yaml:"update_interval"`  // seconds between perturbations
	SpeedJitter     float64 `yaml:"speed_jitter"`     // max speed delta per perturbation
	DirectionJitter float64 `yaml:"direction_jitter"` // max direction delta, degrees
	ForceMultiplier float64 `yaml:"force_multiplier"` // speed -> force scaling
}

// RoundConfig holds round/hole progression parameters.
type RoundConfig struct {
	Holes          int     `yaml:"holes"`
	DefaultPar     int     `yaml:"default_par"`
	NextHoleDelay  float64 `yaml:"next_hole_delay"` // seconds after holing out
	PenaltyResume  float64 `yaml:"penalty_resume"`  // seconds before control returns after a drop
	WaterChance    float64 `yaml:"water_chance"`    // per-hole water hazard probability
	BunkerChance   float64 `yaml:"bunker_chance"`   // per-hole bunker probability
	HazardMinX     float64 `yaml:"hazard_min_x"`    // hazards never spawn before this x
	HazardGreenGap float64 `yaml:"hazard_green_gap"` // clearance kept before the green complex
	WaterWidthMin  float64 `yaml:"water_width_min"`
	WaterWidthMax  float64 `yaml:"water_width_max"`
	BunkerWidthMin float64 `yaml:"bunker_width_min"`
	BunkerWidthMax float64 `yaml:"bunker_width_max"`
}

// SwingConfig holds the charge meter parameters.
type SwingConfig struct {
	ChargeRate float64 `yaml:"charge_rate"` // meter sweep speed, fraction/s
	MinCharge  float64 `yaml:"min_charge"`  // floor so a mis-timed tap still moves the ball
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	SegmentCount int            // course samples = Width/SegmentWidth + 1
	ScreenW32    float32        // Screen.Width as float32
	ScreenH32    float32        // Screen.Height as float32
	ClubIndex    map[string]int // club name -> index
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Course.SegmentWidth <= 0 {
		c.Course.SegmentWidth = 10
	}
	c.Derived.SegmentCount = int(c.Course.Width/c.Course.SegmentWidth) + 1
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// Synthesize a default bag if none specified.
	// Orderings matter more than magnitudes: the putter keeps the most roll,
	// the wedge loses the least speed in sand, the driver the most.
	if len(c.Clubs) == 0 {
		c.Clubs = []ClubConfig{
			{Name: "driver", Power: 1.0, LaunchAngle: 0.75, HorizontalPower: 900, CanFly: true,
				Variance: 0.04, Friction: 0.9, StopSpeed: 14, BunkerFactor: 0.25, BounceRetain: 0.45},
			{Name: "iron", Power: 0.8, LaunchAngle: 1.0, HorizontalPower: 700, CanFly: true,
				Variance: 0.06, Friction: 1.4, StopSpeed: 12, BunkerFactor: 0.45, BounceRetain: 0.35},
			{Name: "wedge", Power: 0.6, LaunchAngle: 1.5, HorizontalPower: 450, CanFly: true,
				Variance: 0.08, Friction: 2.2, StopSpeed: 10, BunkerFactor: 0.80, BounceRetain: 0.25},
			{Name: "putter", Power: 0.5, LaunchAngle: 0, HorizontalPower: 550, CanFly: false,
				Variance: 0.04, Friction: 0.45, StopSpeed: 6, BunkerFactor: 0.35, BounceRetain: 0},
		}
	}

	// Build club index for fast lookup
	c.Derived.ClubIndex = make(map[string]int, len(c.Clubs))
	for i, club := range c.Clubs {
		c.Derived.ClubIndex[club.Name] = i
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
