// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all configurable game parameters.
type Config struct {
	// Playfield
	CanvasWidth  float64 `json:"canvasWidth" toml:"canvas_width"`   // Playfield width in world units
	CanvasHeight float64 `json:"canvasHeight" toml:"canvas_height"` // Playfield height in world units
	TileSize     float64 `json:"tileSize" toml:"tile_size"`         // Base unit for ball, paddle and power-up sizes

	// Bricks
	BrickWidth   float64 `json:"brickWidth" toml:"brick_width"`
	BrickHeight  float64 `json:"brickHeight" toml:"brick_height"`
	MaxBrickTier int     `json:"maxBrickTier" toml:"max_brick_tier"` // Highest tier the level maker may emit
	LockedChance float64 `json:"lockedChance" toml:"locked_chance"`  // Chance (0.0 to 1.0) a generated brick is locked

	// Score & Player
	BaseScore      int `json:"baseScore" toml:"base_score"`           // Points per hit, multiplied by tier+1
	StartingHealth int `json:"startingHealth" toml:"starting_health"` // Hearts at the start of a session
	StartingLevel  int `json:"startingLevel" toml:"starting_level"`

	// Paddle
	PaddleSpeed      float64 `json:"paddleSpeed" toml:"paddle_speed"`           // Units per second
	PaddleStartSize  int     `json:"paddleStartSize" toml:"paddle_start_size"`  // Size tier, 0..3
	PaddleSkin       int     `json:"paddleSkin" toml:"paddle_skin"`             // Colour variant, 0..3
	PaddleDeflection float64 `json:"paddleDeflection" toml:"paddle_deflection"` // Horizontal speed per unit of hit offset
	GrowthThresholds [3]int  `json:"growthThresholds" toml:"growth_thresholds"` // Extra points needed for 0->1, 1->2, 2->3

	// Ball
	BallServeSpeedX  float64    `json:"ballServeSpeedX" toml:"ball_serve_speed_x"`    // Serve dx drawn from [-v, v)
	BallServeSpeedY  [2]float64 `json:"ballServeSpeedY" toml:"ball_serve_speed_y"`    // Serve dy magnitude drawn from [min, max)
	BallMaxSpeedUpDY float64    `json:"ballMaxSpeedUpDY" toml:"ball_max_speed_up_dy"` // Brick rebounds speed the ball up below this |dy|
	BallSpeedUp      float64    `json:"ballSpeedUp" toml:"ball_speed_up"`

	// Power-ups
	PowerUpGravity    float64    `json:"powerUpGravity" toml:"power_up_gravity"`
	PowerUpDriftX     float64    `json:"powerUpDriftX" toml:"power_up_drift_x"`         // Launch dx drawn from [-v, v)
	PowerUpLaunchY    [2]float64 `json:"powerUpLaunchY" toml:"power_up_launch_y"`       // Upward launch magnitude drawn from [min, max)
	SpawnRollRange    float64    `json:"spawnRollRange" toml:"spawn_roll_range"`        // Rolls are drawn from [0, range)
	PowerUpSpawnAbove float64    `json:"powerUpSpawnAbove" toml:"power_up_spawn_above"` // Roll must be strictly greater
	KeyUpSpawnAbove   float64    `json:"keyUpSpawnAbove" toml:"key_up_spawn_above"`     // Roll must be strictly greater

	// Timing
	FramePeriod   time.Duration `json:"framePeriod" toml:"frame_period"`      // Time between simulation ticks
	MaxFrameDelta time.Duration `json:"maxFrameDelta" toml:"max_frame_delta"` // dt clamp against tunnelling
	KeyHoldWindow time.Duration `json:"keyHoldWindow" toml:"key_hold_window"` // A key counts as held this long after its last event

	// Runtime
	Seed       uint64 `json:"seed" toml:"seed"` // 0 picks a seed from the clock
	Muted      bool   `json:"muted" toml:"muted"`
	SampleRate int    `json:"sampleRate" toml:"sample_rate"`
	LogFile    string `json:"logFile" toml:"log_file"` // Empty discards logs
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	tileSize := 8.0

	return Config{
		CanvasWidth:  432,
		CanvasHeight: 243,
		TileSize:     tileSize,

		BrickWidth:   32,
		BrickHeight:  16,
		MaxBrickTier: 3,
		LockedChance: 0.1,

		BaseScore:      10,
		StartingHealth: 3,
		StartingLevel:  1,

		PaddleSpeed:      500,
		PaddleStartSize:  1, // The smallest paddle is too tough to start with
		PaddleSkin:       0,
		PaddleDeflection: 8,
		GrowthThresholds: [3]int{50, 100, 200},

		BallServeSpeedX:  200,
		BallServeSpeedY:  [2]float64{50, 60},
		BallMaxSpeedUpDY: 150,
		BallSpeedUp:      1.02,

		PowerUpGravity:    100,
		PowerUpDriftX:     20,
		PowerUpLaunchY:    [2]float64{10, 20},
		SpawnRollRange:    10,
		PowerUpSpawnAbove: 9, // 1 in 10
		KeyUpSpawnAbove:   8, // 2 in 10

		FramePeriod:   16 * time.Millisecond,
		MaxFrameDelta: 50 * time.Millisecond,
		KeyHoldWindow: 150 * time.Millisecond,

		SampleRate: 44100,
	}
}

// PaddleBaseWidth is the width of a size 0 paddle.
func (c Config) PaddleBaseWidth() float64 { return c.TileSize * 2 }

// PaddleSizeUnit is the width added per paddle size tier.
func (c Config) PaddleSizeUnit() float64 { return c.TileSize * 2 }

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		errs = append(errs, fmt.Errorf("canvas must be positive, got %vx%v", c.CanvasWidth, c.CanvasHeight))
	}
	if c.TileSize <= 0 || c.BrickWidth <= 0 || c.BrickHeight <= 0 {
		errs = append(errs, errors.New("tile and brick sizes must be positive"))
	}
	if c.PaddleBaseWidth()+3*c.PaddleSizeUnit() > c.CanvasWidth {
		errs = append(errs, errors.New("largest paddle does not fit the canvas"))
	}
	if c.StartingHealth < 1 {
		errs = append(errs, fmt.Errorf("starting health must be at least 1, got %d", c.StartingHealth))
	}
	if c.StartingLevel < 1 {
		errs = append(errs, fmt.Errorf("starting level must be at least 1, got %d", c.StartingLevel))
	}
	if c.PaddleSkin < 0 || c.PaddleSkin > 3 {
		errs = append(errs, fmt.Errorf("paddle skin must be in [0,3], got %d", c.PaddleSkin))
	}
	if c.LockedChance < 0 || c.LockedChance > 1 {
		errs = append(errs, fmt.Errorf("locked chance must be in [0,1], got %v", c.LockedChance))
	}
	if c.SpawnRollRange <= 0 {
		errs = append(errs, errors.New("spawn roll range must be positive"))
	}
	if c.FramePeriod <= 0 || c.MaxFrameDelta <= 0 {
		errs = append(errs, errors.New("frame period and max frame delta must be positive"))
	}
	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample rate must be positive, got %d", c.SampleRate))
	}
	return errors.Join(errs...)
}

// LoadConfig layers DefaultConfig, the TOML file at path (skipped when path is
// empty or missing) and BRICKBREAKER_* environment variables, optionally read
// from a .env file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, fmt.Errorf("decode config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	// A missing .env is the common case.
	_ = godotenv.Load()

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	var err error
	if cfg.PaddleSkin, err = getEnvInt("BRICKBREAKER_SKIN", cfg.PaddleSkin); err != nil {
		return err
	}
	if cfg.StartingHealth, err = getEnvInt("BRICKBREAKER_HEALTH", cfg.StartingHealth); err != nil {
		return err
	}
	if cfg.StartingLevel, err = getEnvInt("BRICKBREAKER_LEVEL", cfg.StartingLevel); err != nil {
		return err
	}
	if v := os.Getenv("BRICKBREAKER_SEED"); v != "" {
		seed, perr := strconv.ParseUint(v, 10, 64)
		if perr != nil {
			return fmt.Errorf("BRICKBREAKER_SEED: %w", perr)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("BRICKBREAKER_MUTE"); v != "" {
		muted, perr := strconv.ParseBool(v)
		if perr != nil {
			return fmt.Errorf("BRICKBREAKER_MUTE: %w", perr)
		}
		cfg.Muted = muted
	}
	if v := os.Getenv("BRICKBREAKER_FRAME_PERIOD"); v != "" {
		d, perr := time.ParseDuration(v)
		if perr != nil {
			return fmt.Errorf("BRICKBREAKER_FRAME_PERIOD: %w", perr)
		}
		cfg.FramePeriod = d
	}
	cfg.LogFile = getEnv("BRICKBREAKER_LOG_FILE", cfg.LogFile)
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
