// internal/defs/enemies.go
package defs

import (
	"image/color"

	"go-path-defense/internal/config"
)

// EnemyVariant defines the category of an enemy.
type EnemyVariant string

const (
	EnemyNormal  EnemyVariant = "NORMAL"
	EnemyArmored EnemyVariant = "ARMORED"
	EnemyBoss    EnemyVariant = "BOSS"
)

// VariantDefinition holds the static data for an enemy variant. Multipliers
// apply on top of the per-wave base values from the wave formula.
type VariantDefinition struct {
	Variant      EnemyVariant
	HealthFactor float64
	SpeedFactor  float64
	Radius       float64
	FlatReward   int // 0: reward derives from max health instead
	Color        color.RGBA
}

// VariantLibrary is the library of all enemy variants.
var VariantLibrary = map[EnemyVariant]VariantDefinition{
	EnemyNormal: {
		Variant:      EnemyNormal,
		HealthFactor: 1.0,
		SpeedFactor:  1.0,
		Radius:       config.EnemyRadius,
		Color:        config.EnemyNormalColor,
	},
	EnemyArmored: {
		Variant:      EnemyArmored,
		HealthFactor: config.ArmoredHealthFactor,
		SpeedFactor:  config.ArmoredSpeedFactor,
		Radius:       config.EnemyRadius + 2,
		Color:        config.EnemyArmoredColor,
	},
	EnemyBoss: {
		Variant:      EnemyBoss,
		HealthFactor: config.BossHealthFactor,
		SpeedFactor:  config.BossSpeedFactor,
		Radius:       config.EnemyRadius + 8,
		FlatReward:   config.BossReward,
		Color:        config.EnemyBossColor,
	},
}

// DamageModifier scales a damage value by (source tower type, target variant)
// before it is subtracted from health. It is consulted at every application
// site: projectile impact, splash and beam ticks.
func DamageModifier(source TowerType, target EnemyVariant) float64 {
	if target == EnemyArmored && source == TowerBasic {
		return config.ArmoredBasicModifier
	}
	return 1.0
}
