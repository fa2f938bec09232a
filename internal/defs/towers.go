// internal/defs/towers.go
package defs

import (
	"image/color"
	"math"

	"go-path-defense/internal/config"
)

// TowerType defines the category of a tower.
type TowerType string

const (
	TowerBasic  TowerType = "BASIC"
	TowerSplash TowerType = "SPLASH"
	TowerBeam   TowerType = "BEAM"
)

// Stats is the derived parameter set of a tower at a concrete level.
type Stats struct {
	Range           float64
	Damage          float64 // for beam towers: damage per second
	FireRate        float64 // shots per second; unused by beam towers
	SplashRadius    float64
	ProjectileSpeed float64
}

// TowerDefinition holds all the static data for a specific type of tower.
// Derived stats are a pure function of (type, level): base + perLevel*(level-1),
// with a multiplicative damage escalation past the level cap.
type TowerDefinition struct {
	Type TowerType
	Name string

	Cost            int
	BaseUpgradeCost int
	UpgradeGrowth   float64
	LevelCap        int

	Base     Stats
	PerLevel Stats

	Visuals Visuals
}

// Visuals contains parameters for rendering a tower.
type Visuals struct {
	Color color.RGBA
}

// TowerLibrary is the library of all tower definitions, mapped by type.
var TowerLibrary = map[TowerType]TowerDefinition{
	TowerBasic: {
		Type:            TowerBasic,
		Name:            "Sentry",
		Cost:            50,
		BaseUpgradeCost: 60,
		UpgradeGrowth:   1.6,
		LevelCap:        5,
		Base:            Stats{Range: 180, Damage: 12, FireRate: 1.4, ProjectileSpeed: 420},
		PerLevel:        Stats{Range: 10, Damage: 5, FireRate: 0.12, ProjectileSpeed: 15},
		Visuals:         Visuals{Color: config.TowerBasicColor},
	},
	TowerSplash: {
		Type:            TowerSplash,
		Name:            "Mortar",
		Cost:            80,
		BaseUpgradeCost: 90,
		UpgradeGrowth:   1.7,
		LevelCap:        4,
		Base:            Stats{Range: 150, Damage: 9, FireRate: 0.8, SplashRadius: 55, ProjectileSpeed: 300},
		PerLevel:        Stats{Range: 8, Damage: 4, FireRate: 0.06, SplashRadius: 6, ProjectileSpeed: 10},
		Visuals:         Visuals{Color: config.TowerSplashColor},
	},
	TowerBeam: {
		Type:            TowerBeam,
		Name:            "Lance",
		Cost:            110,
		BaseUpgradeCost: 120,
		UpgradeGrowth:   1.75,
		LevelCap:        4,
		Base:            Stats{Range: 160, Damage: 18}, // damage per second along the beam
		PerLevel:        Stats{Range: 9, Damage: 8},
		Visuals:         Visuals{Color: config.TowerBeamColor},
	},
}

// StatsAt derives the stat block for a tower of this definition at the given
// level. Levels past the cap keep the linear increments and additionally
// scale damage by OverlevelDamageFactor per extra level.
func (d TowerDefinition) StatsAt(level int) Stats {
	if level < 1 {
		level = 1
	}
	n := float64(level - 1)
	s := Stats{
		Range:           d.Base.Range + d.PerLevel.Range*n,
		Damage:          d.Base.Damage + d.PerLevel.Damage*n,
		FireRate:        d.Base.FireRate + d.PerLevel.FireRate*n,
		SplashRadius:    d.Base.SplashRadius + d.PerLevel.SplashRadius*n,
		ProjectileSpeed: d.Base.ProjectileSpeed + d.PerLevel.ProjectileSpeed*n,
	}
	if over := level - d.LevelCap; over > 0 {
		s.Damage *= math.Pow(config.OverlevelDamageFactor, float64(over))
	}
	return s
}

// UpgradeCost returns the cost of the upgrade from the given level to the
// next one: baseUpgradeCost * growth^(level-1) below the cap, a flat higher
// price at and past it. The cost curve changes shape, levels stay uncapped.
func (d TowerDefinition) UpgradeCost(level int) int {
	if level < 1 {
		level = 1
	}
	if level >= d.LevelCap {
		return config.OverlevelCost
	}
	return int(math.Round(float64(d.BaseUpgradeCost) * math.Pow(d.UpgradeGrowth, float64(level-1))))
}
