// Package config loads solver run configuration from YAML/env, with
// struct defaults and viper-backed overrides. Grounded on
// junjiewwang-perf-analysis/pkg/config's Load/LoadFromReader/setDefaults
// shape, generalized from the teacher's service config to the solver's
// branching-scheme parameters, deadline and worker count.
package config

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/rectguillotine/solver/internal/solver"
	"github.com/rectguillotine/solver/internal/solverrors"
)

// Config holds everything a solve run needs beyond the instance itself.
type Config struct {
	Scheme SchemeConfig `mapstructure:"scheme"`
	Search SearchConfig `mapstructure:"search"`
	Log    LogConfig    `mapstructure:"log"`
}

// SchemeConfig mirrors solver.Parameters in a YAML/env-friendly shape.
// Predefined, if non-empty, is decoded via solver.Parameters.SetPredefined
// and takes precedence over the individual fields below it.
type SchemeConfig struct {
	Predefined        string `mapstructure:"predefined"` // e.g. "3RVR"
	CutType1          string `mapstructure:"cut_type_1"` // "three-staged" | "two-staged"
	CutType2          string `mapstructure:"cut_type_2"` // "roadef2018" | "non-exact" | "exact" | "homogenous"
	FirstStage        string `mapstructure:"first_stage_orientation"`
	Min1Cut           int64  `mapstructure:"min1cut"`
	Max1Cut           int64  `mapstructure:"max1cut"`
	Min2Cut           int64  `mapstructure:"min2cut"`
	Max2Cut           int64  `mapstructure:"max2cut"`
	MinWaste          int64  `mapstructure:"min_waste"`
	One2Cut           bool   `mapstructure:"one2cut"`
	NoItemRotation    bool   `mapstructure:"no_item_rotation"`
	CutThroughDefects bool   `mapstructure:"cut_through_defects"`
	Objective         string `mapstructure:"objective"`
}

// SearchConfig configures the depth-first search driver itself.
type SearchConfig struct {
	GuideIDs    []int         `mapstructure:"guide_ids"`
	Deadline    time.Duration `mapstructure:"deadline"`
	WorkerCount int           `mapstructure:"worker_count"`
}

// LogConfig configures internal/logx.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
}

// Load reads configuration from path (or the standard search locations
// if path is empty), applying defaults for anything unset.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("guillotine")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/guillotine")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, solverrors.NewConfigError(fmt.Sprintf("reading config file %q", path), err)
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, solverrors.NewConfigError("unmarshaling config", err)
	}
	return &cfg, nil
}

// LoadFromReader loads configuration from raw content of the given
// viper config type ("yaml", "json", ...); used by tests.
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, solverrors.NewConfigError("reading config content", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, solverrors.NewConfigError("unmarshaling config", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("scheme.cut_type_1", "three-staged")
	v.SetDefault("scheme.cut_type_2", "non-exact")
	v.SetDefault("scheme.first_stage_orientation", "vertical")
	v.SetDefault("scheme.min_waste", 1)
	v.SetDefault("scheme.max1cut", -1)
	v.SetDefault("scheme.max2cut", -1)
	v.SetDefault("scheme.objective", "default")

	v.SetDefault("search.guide_ids", []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	v.SetDefault("search.deadline", "30s")
	v.SetDefault("search.worker_count", 1)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output_path", "")
}

// Parameters decodes SchemeConfig into a solver.Parameters, either via
// Predefined's 4-character code or field-by-field.
func (c SchemeConfig) Parameters() (solver.Parameters, error) {
	p := solver.DefaultParameters()

	if c.Predefined != "" {
		if err := p.SetPredefined(c.Predefined); err != nil {
			return solver.Parameters{}, err
		}
		return p, nil
	}

	switch c.CutType1 {
	case "", "three-staged":
		p.CutType1 = solver.ThreeStaged
	case "two-staged":
		p.CutType1 = solver.TwoStaged
	default:
		return solver.Parameters{}, solverrors.NewConfigError(fmt.Sprintf("unknown cut_type_1 %q", c.CutType1), nil)
	}

	switch c.CutType2 {
	case "", "non-exact":
		p.CutType2 = solver.NonExact
	case "roadef2018":
		p.CutType2 = solver.Roadef2018
	case "exact":
		p.CutType2 = solver.Exact
	case "homogenous":
		p.CutType2 = solver.Homogenous
	default:
		return solver.Parameters{}, solverrors.NewConfigError(fmt.Sprintf("unknown cut_type_2 %q", c.CutType2), nil)
	}

	switch c.FirstStage {
	case "", "vertical":
		p.FirstStageOrientation = solver.OrientVertical
	case "horizontal":
		p.FirstStageOrientation = solver.OrientHorizontal
	case "any":
		p.FirstStageOrientation = solver.OrientAny
	default:
		return solver.Parameters{}, solverrors.NewConfigError(fmt.Sprintf("unknown first_stage_orientation %q", c.FirstStage), nil)
	}

	p.Min1Cut = c.Min1Cut
	p.Max1Cut = c.Max1Cut
	p.Min2Cut = c.Min2Cut
	p.Max2Cut = c.Max2Cut
	if c.MinWaste > 0 {
		p.MinWaste = c.MinWaste
	}
	p.One2Cut = c.One2Cut
	p.NoItemRotation = c.NoItemRotation
	p.CutThroughDefects = c.CutThroughDefects

	switch c.Objective {
	case "", "default":
		p.Objective = solver.Default
	case "knapsack":
		p.Objective = solver.Knapsack
	case "bin-packing":
		p.Objective = solver.BinPacking
	case "bin-packing-with-leftovers":
		p.Objective = solver.BinPackingWithLeftovers
	case "strip-packing-width":
		p.Objective = solver.StripPackingWidth
	case "strip-packing-height":
		p.Objective = solver.StripPackingHeight
	default:
		return solver.Parameters{}, solverrors.NewConfigError(fmt.Sprintf("unknown objective %q", c.Objective), nil)
	}

	return p, nil
}
