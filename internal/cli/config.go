package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tourbound/scenario"
	"github.com/katalvlaran/tourbound/tsp"
)

// defaultBenchCities is the benchmark sweep used when no city counts are
// given: 10 to 50 in steps of 5.
var defaultBenchCities = []int{10, 15, 20, 25, 30, 35, 40, 45, 50}

// SolveConfig configures the solve command.
type SolveConfig struct {
	Cities           int           `mapstructure:"cities"            validate:"min=0,max=500"`
	Difficulty       string        `mapstructure:"difficulty"        validate:"difficulty"`
	Seed             int64         `mapstructure:"seed"`
	Algo             string        `mapstructure:"algo"              validate:"algo"`
	Start            int           `mapstructure:"start"             validate:"min=0"`
	TimeLimit        time.Duration `mapstructure:"time_limit"        validate:"min=0s"`
	TabuTenure       int           `mapstructure:"tabu_tenure"       validate:"min=0"`
	TabuNeighborhood int           `mapstructure:"tabu_neighborhood" validate:"min=2"`
	Format           string        `mapstructure:"format"            validate:"oneof=text json"`
	MetricsAddr      string        `mapstructure:"metrics_addr"`
	Scenario         string        `mapstructure:"scenario"`
	Save             string        `mapstructure:"save"`
}

// BenchConfig configures the bench command.
type BenchConfig struct {
	Rounds     int           `mapstructure:"rounds"      validate:"min=1"`
	Cities     []int         `mapstructure:"cities"      validate:"dive,min=0,max=500"`
	Algos      []string      `mapstructure:"algos"       validate:"min=1,dive,algo"`
	Difficulty string        `mapstructure:"difficulty"  validate:"difficulty"`
	Seed       int64         `mapstructure:"seed"`
	TimeLimit  time.Duration `mapstructure:"time_limit"  validate:"min=0s"`
	Workers    int           `mapstructure:"workers"     validate:"min=1,max=256"`
	Report     string        `mapstructure:"report"`
	MetricsOut string        `mapstructure:"metrics_out"`
	Format     string        `mapstructure:"format"      validate:"oneof=text json"`
}

// fileConfig is the shape of the TOML file: one table per command.
type fileConfig struct {
	Solve SolveConfig `mapstructure:"solve"`
	Bench BenchConfig `mapstructure:"bench"`
}

// options converts the solve settings into engine options.
func (s SolveConfig) options() (tsp.Options, error) {
	algo, err := tsp.ParseAlgorithm(s.Algo)
	if err != nil {
		return tsp.Options{}, err
	}
	o := tsp.DefaultOptions()
	o.Algo = algo
	o.StartVertex = s.Start
	o.TimeLimit = s.TimeLimit
	o.Seed = s.Seed
	o.TabuTenure = s.TabuTenure
	o.TabuNeighborhood = s.TabuNeighborhood

	return o, nil
}

// cityCounts returns the configured sweep or the default one.
func (b BenchConfig) cityCounts() []int {
	if len(b.Cities) == 0 {
		return defaultBenchCities
	}

	return b.Cities
}

// newValidator registers the domain tags used by the config structs.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("algo", func(fl validator.FieldLevel) bool {
		_, err := tsp.ParseAlgorithm(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		_, err := scenario.ParseDifficulty(fl.Field().String())
		return err == nil
	})

	return v
}

// loadConfig merges, lowest to highest precedence: flag defaults, the
// --config file, TOURBOUND_<SECTION>_<KEY> environment variables and
// explicitly set flags. The flags of cmd are bound under section.
func (c *CLI) loadConfig(cmd *cobra.Command, section string) (*fileConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "help" {
			return
		}
		key := section + "." + strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			bindErr = errors.Join(bindErr, err)
		}
	})
	if bindErr != nil {
		return nil, fmt.Errorf("bind flags: %w", bindErr)
	}

	if c.configPath != "" {
		v.SetConfigFile(c.configPath)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	var target any = fc.Solve
	if section == "bench" {
		target = fc.Bench
	}
	if err := newValidator().Struct(target); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", section, err)
	}

	return &fc, nil
}
