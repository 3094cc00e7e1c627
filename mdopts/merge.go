// Package mdopts implements the option model shared by the parser and the
// renderer: a strongly-typed options builder whose data leaves are
// deep-merged against defaults, and a separate capability record for the
// function-valued extension points (§4.5, §9).
//
// The teacher loads process configuration through spf13/viper
// (util.LoadConfig, reading an .env file into a Config struct). This
// package repurposes the same library for a different job: merging two
// in-memory option maps — no file or environment is ever read here — and
// unmarshalling the merged result into a typed struct, mirroring
// viper.Unmarshal's use in util.LoadConfig.
package mdopts

import (
	"fmt"

	"github.com/spf13/viper"
)

// deepMerge merges defaults and overrides (in that order, so overrides
// win) into target via viper's config-map merge plus mapstructure
// unmarshal. Both defaults and overrides may be nil.
func deepMerge(target any, defaults, overrides map[string]any) error {
	v := viper.New()

	if defaults != nil {
		if err := v.MergeConfigMap(defaults); err != nil {
			return fmt.Errorf("mdopts: merging defaults: %w", err)
		}
	}
	if overrides != nil {
		if err := v.MergeConfigMap(overrides); err != nil {
			return fmt.Errorf("mdopts: merging overrides: %w", err)
		}
	}

	if err := v.Unmarshal(target); err != nil {
		return fmt.Errorf("mdopts: unmarshalling merged options: %w", err)
	}
	return nil
}
