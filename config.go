package riichi

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Rules holds the table options that vary between rule sets.
type Rules struct {
	OpenTanyao    bool `mapstructure:"open_tanyao" json:"open_tanyao"`       // Kuitan: tanyao counts with open melds
	KazoeYakuman  bool `mapstructure:"kazoe_yakuman" json:"kazoe_yakuman"`   // 13+ regular han scores as yakuman
	DoubleYakuman bool `mapstructure:"double_yakuman" json:"double_yakuman"` // Junsei chuuren, kokushi 13-wait, suuankou tanki, daisuushii count twice
	KiriageMangan bool `mapstructure:"kiriage_mangan" json:"kiriage_mangan"` // 4 han 30 fu and 3 han 60 fu round up to mangan
	PinfuRon30    bool `mapstructure:"pinfu_ron_30" json:"pinfu_ron_30"`     // Pinfu ron is 30 fu instead of the fixed 20
	StandardFu    bool `mapstructure:"standard_fu" json:"standard_fu"`       // Quads 4x a triplet, double wind pair +4
	YakumanBase   int  `mapstructure:"yakuman_base" json:"yakuman_base"`     // Base points of a single yakuman
	CacheSize     int  `mapstructure:"cache_size" json:"cache_size"`         // Decomposition cache entries
}

// DefaultRules returns the rule set used when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		OpenTanyao:    true,
		KazoeYakuman:  true,
		DoubleYakuman: false,
		KiriageMangan: false,
		PinfuRon30:    false,
		StandardFu:    false,
		YakumanBase:   8000,
		CacheSize:     DefaultCacheSize,
	}
}

// Validate reports option values that cannot be scored.
func (r Rules) Validate() error {
	if r.YakumanBase <= 0 || r.YakumanBase%100 != 0 {
		return fmt.Errorf("yakuman_base must be a positive multiple of 100, got %d", r.YakumanBase)
	}
	if r.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", r.CacheSize)
	}
	return nil
}

// LoadRules reads rules from an optional YAML file, then applies RIICHI_* environment
// overrides (RIICHI_OPEN_TANYAO=false, RIICHI_YAKUMAN_BASE=8000, ...). An empty path
// skips the file; a missing one is logged and skipped. LoadRules runs once at startup
// and reports through the global zerolog logger, so set its level first.
func LoadRules(path string) (Rules, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	vp.SetEnvPrefix("riichi")
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	def := DefaultRules()
	vp.SetDefault("open_tanyao", def.OpenTanyao)
	vp.SetDefault("kazoe_yakuman", def.KazoeYakuman)
	vp.SetDefault("double_yakuman", def.DoubleYakuman)
	vp.SetDefault("kiriage_mangan", def.KiriageMangan)
	vp.SetDefault("pinfu_ron_30", def.PinfuRon30)
	vp.SetDefault("standard_fu", def.StandardFu)
	vp.SetDefault("yakuman_base", def.YakumanBase)
	vp.SetDefault("cache_size", def.CacheSize)

	if path != "" {
		vp.SetConfigFile(path)
		if err := vp.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return Rules{}, fmt.Errorf("read rules %s: %w", path, err)
			}
			log.Warn().Str("path", path).Msg("rules file not found, using defaults")
		}
	}

	var rules Rules
	if err := vp.Unmarshal(&rules); err != nil {
		return Rules{}, fmt.Errorf("decode rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	log.Debug().Interface("rules", rules).Str("path", path).Msg("rules loaded")
	return rules, nil
}
