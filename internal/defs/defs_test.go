// internal/defs/defs_test.go
package defs

import (
	"math"
	"testing"
)

func TestStatsAtLinearDerivation(t *testing.T) {
	d := TowerLibrary[TowerBasic]

	s1 := d.StatsAt(1)
	if s1.Damage != 12 || s1.Range != 180 || s1.FireRate != 1.4 {
		t.Fatalf("level 1 stats = %+v, want base block", s1)
	}

	s3 := d.StatsAt(3)
	if s3.Damage != 22 {
		t.Errorf("level 3 damage = %v, want 22", s3.Damage)
	}
	if s3.Range != 200 {
		t.Errorf("level 3 range = %v, want 200", s3.Range)
	}
	if math.Abs(s3.FireRate-1.64) > 1e-9 {
		t.Errorf("level 3 fire rate = %v, want 1.64", s3.FireRate)
	}

	// Уровень ниже единицы нормализуется к первому.
	if got := d.StatsAt(0); got != s1 {
		t.Errorf("StatsAt(0) = %+v, want level 1 stats", got)
	}
}

func TestStatsAtOverlevel(t *testing.T) {
	d := TowerLibrary[TowerBasic] // cap 5

	s6 := d.StatsAt(6)
	want6 := (12.0 + 5.0*5) * 1.25
	if math.Abs(s6.Damage-want6) > 1e-9 {
		t.Errorf("level 6 damage = %v, want %v", s6.Damage, want6)
	}

	s7 := d.StatsAt(7)
	want7 := (12.0 + 5.0*6) * 1.25 * 1.25
	if math.Abs(s7.Damage-want7) > 1e-9 {
		t.Errorf("level 7 damage = %v, want %v", s7.Damage, want7)
	}

	// Дальность и скорострельность растут линейно и за капом.
	if s6.Range != 180+10*5 {
		t.Errorf("level 6 range = %v, want 230", s6.Range)
	}
}

func TestUpgradeCost(t *testing.T) {
	d := TowerLibrary[TowerBasic]

	tests := []struct {
		level int
		want  int
	}{
		{1, 60},
		{2, 96},
		{3, 154}, // round(60 * 1.6^2)
		{4, 246}, // round(60 * 1.6^3)
		{5, 500}, // кап — фиксированная цена овер-уровня
		{9, 500},
	}
	for _, tt := range tests {
		if got := d.UpgradeCost(tt.level); got != tt.want {
			t.Errorf("UpgradeCost(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestDamageModifier(t *testing.T) {
	tests := []struct {
		name   string
		source TowerType
		target EnemyVariant
		want   float64
	}{
		{"basic vs normal", TowerBasic, EnemyNormal, 1.0},
		{"basic vs armored", TowerBasic, EnemyArmored, 0.4},
		{"splash vs armored", TowerSplash, EnemyArmored, 1.0},
		{"beam vs armored", TowerBeam, EnemyArmored, 1.0},
		{"basic vs boss", TowerBasic, EnemyBoss, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DamageModifier(tt.source, tt.target); got != tt.want {
				t.Errorf("DamageModifier(%s, %s) = %v, want %v", tt.source, tt.target, got, tt.want)
			}
		})
	}
}
