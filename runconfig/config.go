package runconfig

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/evrptw/alns"
	"github.com/katalvlaran/evrptw/construct"
)

// ErrConfigurationInvalid wraps every config-loading and config-validation
// failure below, realizing the ConfigurationInvalid error kind at the
// collaborator boundary (alns.ErrConfigurationInvalid covers the same kind
// once a Config has been adapted into alns.Config).
var ErrConfigurationInvalid = errors.New("runconfig: invalid configuration")

// SAConfig mirrors the simulated_annealing.* keys.
type SAConfig struct {
	StartTemperature float64 `json:"start_temperature"`
	EndTemperature   float64 `json:"end_temperature"`
	Step             float64 `json:"step"`
	Method           string  `json:"method"`
}

// SelectorConfig mirrors the selector.* keys.
type SelectorConfig struct {
	Scores     [4]float64 `json:"scores"`
	Decay      float64    `json:"decay"`
	SegLength  int        `json:"seg_length"`
	NumDestroy int        `json:"num_destroy"`
	NumRepair  int        `json:"num_repair"`
}

// Config mirrors every key in the external-interfaces config table.
type Config struct {
	Seed             int64          `json:"seed"`
	NumIterations    int            `json:"num_iterations"`
	Xi               float64        `json:"xi"`
	P                float64        `json:"p"`
	SimulatedAnneal  SAConfig       `json:"simulated_annealing"`
	Selector         SelectorConfig `json:"selector"`
	WaitTimeWeight   float64        `json:"wait_time_weight"`
}

// defaults applies the documented defaults to any key the JSON document
// left at its zero value, mirroring the "Default" column of the config
// table (the seed has no documented default: it stays whatever Go's zero
// value is, i.e. 0, if absent).
func defaults() Config {
	return Config{
		NumIterations: 1000,
		Xi:            0.2,
		P:             10,
		SimulatedAnneal: SAConfig{
			StartTemperature: 1000,
			EndTemperature:   1,
			Step:             1e-3,
		},
		WaitTimeWeight: 0.5,
	}
}

// Load decodes path as JSON into a Config seeded with documented defaults,
// returning ErrConfigurationInvalid if the file is missing, malformed, or
// fails Validate.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(ErrConfigurationInvalid, "opening %s: %v", path, err)
	}
	defer f.Close()
	return decode(f)
}

func decode(r io.Reader) (Config, error) {
	cfg := defaults()
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(ErrConfigurationInvalid, err.Error())
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the decoded document for an unsupported
// simulated_annealing.method, an out-of-range xi, a negative
// num_iterations, and a negative wait_time_weight, so Load fails on those
// before any solver package is touched. An absent method passes here. The
// remaining range checks (temperatures, step, p, selector) are made only by
// alns.Validate once the adapted config reaches alns.Run.
func Validate(cfg Config) error {
	if cfg.SimulatedAnneal.Method != "" && cfg.SimulatedAnneal.Method != "exponential" {
		return errors.Wrap(ErrConfigurationInvalid, "simulated_annealing.method: only \"exponential\" is supported")
	}
	if cfg.Xi <= 0 || cfg.Xi > 1 {
		return errors.Wrap(ErrConfigurationInvalid, "xi must be in (0,1]")
	}
	if cfg.NumIterations < 0 {
		return errors.Wrap(ErrConfigurationInvalid, "num_iterations must be non-negative")
	}
	if cfg.WaitTimeWeight < 0 {
		return errors.Wrap(ErrConfigurationInvalid, "wait_time_weight must be non-negative")
	}
	return nil
}

// ToALNSConfig adapts the flat JSON document into alns.Config, falling back
// to alns.DefaultConfig for the selector block when it was left unset
// (num_destroy/num_repair have no documented default, since they mirror
// whatever operator set the solver ships).
func (c Config) ToALNSConfig() alns.Config {
	def := alns.DefaultConfig()
	sel := def.Selector
	if c.Selector.NumDestroy > 0 {
		sel = alns.SelectorConfig{
			Scores:     c.Selector.Scores,
			Decay:      c.Selector.Decay,
			SegLength:  c.Selector.SegLength,
			NumDestroy: c.Selector.NumDestroy,
			NumRepair:  c.Selector.NumRepair,
		}
	}

	pStation := def.PStation
	return alns.Config{
		Seed:          c.Seed,
		NumIterations: c.NumIterations,
		Xi:            c.Xi,
		P:             c.P,
		PStation:      pStation,
		SA: alns.SAConfig{
			StartTemperature: c.SimulatedAnneal.StartTemperature,
			EndTemperature:   c.SimulatedAnneal.EndTemperature,
			Step:             c.SimulatedAnneal.Step,
			Method:           c.SimulatedAnneal.Method,
		},
		Selector: sel,
	}
}

// ToConstructConfig adapts wait_time_weight into construct.Config.
func (c Config) ToConstructConfig() construct.Config {
	return construct.Config{WaitTimeWeight: c.WaitTimeWeight}
}
