// Package paletteconfig layers CLI flags, a config file, and defaults for
// the pipeline's tunable parameters, generalizing the teacher's
// viper/fsnotify wiring from CLI-only flags to also cover extraction
// tunables (epsilon, min_points, tau_merge, k, compactness, seed).
package paletteconfig

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/autopalette-go/autopalette/pkg/palette"
)

// Tunables mirrors the defaults in SPEC_FULL.md §13.6, overridable via
// config file or flags.
type Tunables struct {
	Epsilon        float64
	MinPoints      int
	Rho            float64
	K              int
	MaxIterations  int
	Compactness    float64
	MergeThreshold float64
	Seed           int64
}

// Defaults returns the pipeline's tuned defaults, matching
// palette.DefaultOptions().
func Defaults() Tunables {
	return Tunables{
		Epsilon:        18.0,
		MinPoints:      4,
		Rho:            0.1,
		K:              24,
		MaxIterations:  10,
		Compactness:    10,
		MergeThreshold: palette.DefaultMergeThreshold,
		Seed:           1,
	}
}

// Load layers viper defaults < config file < flags (flags are bound by the
// caller via viper.BindPFlag before calling Load) and returns the resolved
// Tunables. The TOML config file is looked up by configPath's base name in
// configPath's directory (viper expands $HOME there); a bare name is looked
// up in the working directory.
func Load(configPath string) (Tunables, error) {
	d := Defaults()

	viper.SetDefault("epsilon", d.Epsilon)
	viper.SetDefault("min-points", d.MinPoints)
	viper.SetDefault("rho", d.Rho)
	viper.SetDefault("k", d.K)
	viper.SetDefault("max-iterations", d.MaxIterations)
	viper.SetDefault("compactness", d.Compactness)
	viper.SetDefault("merge-threshold", d.MergeThreshold)
	viper.SetDefault("seed", d.Seed)

	if configPath != "" {
		viper.SetConfigName(filepath.Base(configPath))
		viper.SetConfigType("toml")
		viper.AddConfigPath(filepath.Dir(configPath))

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Tunables{}, err
			}
		} else {
			viper.OnConfigChange(onConfigChange)
			viper.WatchConfig()
		}
	}

	return Tunables{
		Epsilon:        viper.GetFloat64("epsilon"),
		MinPoints:      viper.GetInt("min-points"),
		Rho:            viper.GetFloat64("rho"),
		K:              viper.GetInt("k"),
		MaxIterations:  viper.GetInt("max-iterations"),
		Compactness:    viper.GetFloat64("compactness"),
		MergeThreshold: viper.GetFloat64("merge-threshold"),
		Seed:           viper.GetInt64("seed"),
	}, nil
}

// onConfigChange re-parses only the log level on a hot-reload, matching the
// teacher's cmd/root.go OnConfigChange behavior; pipeline tunables are read
// once by Load and are not re-read on a reload.
func onConfigChange(e fsnotify.Event) {
	confLogLevel := viper.GetString("log-level")
	if confLogLevel == "" {
		return
	}
	level, err := zerolog.ParseLevel(confLogLevel)
	if err != nil {
		log.Err(err).Str("level", confLogLevel).Msg("unable to parse new log level")
		return
	}
	zerolog.SetGlobalLevel(level)
}

// Apply overlays the tunables onto a base Options, overriding every
// algorithm's parameters the config layer controls.
func (t Tunables) Apply(opts *palette.Options) {
	opts.Seed = t.Seed
	opts.MergeThreshold = t.MergeThreshold
	opts.DBSCAN.Epsilon = t.Epsilon
	opts.DBSCAN.MinPoints = t.MinPoints
	opts.DBSCANPP.Epsilon = t.Epsilon
	opts.DBSCANPP.MinPoints = t.MinPoints
	opts.DBSCANPP.Rho = t.Rho
	opts.KMeans.K = t.K
	opts.KMeans.MaxIterations = t.MaxIterations
	opts.SLIC.K = t.K
	opts.SLIC.Compactness = t.Compactness
	opts.SLIC.MaxIterations = t.MaxIterations
	opts.SNIC.K = t.K
	opts.SNIC.Compactness = t.Compactness
}
