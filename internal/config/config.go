// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 800
	MaxDeltaTime = 0.05 // секунд; защита от рывка после свёрнутой вкладки

	StartingMoney = 120
	StartingLives = 12

	// Геометрия размещения башен.
	PlacementInset   = 24.0 // отступ от краёв экрана
	PathKeepOut      = 48.0 // минимальная дистанция до полилинии пути
	TowerSpacing     = 44.0 // минимальная дистанция между башнями
	TowerRadius      = 16.0
	EnemyRadius      = 11.0
	ClickPickRadius  = 20.0 // радиус попадания клика по башне
	CorpseLingerTime = 0.4  // секунд; труп остаётся для анимации и снарядов в полёте

	// Базовые параметры нулевой волны и рост по индексу.
	WaveBaseCount     = 6
	WaveBaseHealth    = 24.0
	WaveBaseSpeed     = 70.0
	WaveBaseGap       = 0.7
	WaveHealthGrowth  = 1.22 // геометрический рост HP за волну
	WaveCountStep     = 1
	WaveCountMaxBonus = 14
	WaveSpeedStep     = 2.5
	WaveSpeedMax      = 130.0
	WaveGapStep       = 0.025
	WaveGapMin        = 0.25

	// Особые варианты врагов.
	ArmoredFromWave      = 3
	ArmoredSlotStride    = 5 // каждый пятый слот — ~20% очереди
	ArmoredHealthFactor  = 2.2
	ArmoredSpeedFactor   = 0.85
	ArmoredBasicModifier = 0.4 // множитель урона от базовой башни по бронированным
	BossFromWave         = 7
	BossHealthFactor     = 12.0
	BossSpeedFactor      = 0.6
	BossReward           = 75

	// Экономика.
	KillRewardFloor    = 2
	KillRewardFraction = 0.15 // доля от максимального HP
	WaveClearReward    = 20
	WaveClearBonusRate = 0.05 // доля от текущего баланса
	AutoWaveCountdown  = 5.0  // секунд до автостарта следующей волны

	// Бой.
	ProjectileImpactRadius = 12.0
	ProjectileCullMargin   = 60.0 // снаряд за границей экрана с этим запасом удаляется
	BeamHalfWidth          = 10.0
	OverlevelDamageFactor  = 1.25 // множитель урона за каждый уровень сверх капа
	OverlevelCost          = 500

	TurboMultiplier = 2.5
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PathColor       = color.RGBA{60, 50, 85, 240}
	PathGlowColor   = color.RGBA{132, 94, 247, 70}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{170, 170, 190, 255}
	PanelColor      = color.RGBA{30, 30, 45, 230}
	GhostValidColor = color.RGBA{120, 255, 210, 90}
	GhostBadColor   = color.RGBA{255, 120, 120, 120}
	RangeColor      = color.RGBA{240, 240, 240, 36}
	GameOverColor   = color.RGBA{220, 60, 60, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 140}

	EnemyNormalColor  = color.RGBA{200, 70, 200, 255}
	EnemyArmoredColor = color.RGBA{120, 130, 160, 255}
	EnemyBossColor    = color.RGBA{220, 60, 60, 255}
	HealthBarBack     = color.RGBA{0, 0, 0, 120}

	TowerBasicColor  = color.RGBA{255, 50, 50, 255}
	TowerSplashColor = color.RGBA{50, 100, 255, 255}
	TowerBeamColor   = color.RGBA{50, 255, 50, 255}
	TowerStroke      = color.RGBA{255, 255, 255, 255}

	ProjectileColor = color.RGBA{255, 215, 0, 230}
	SplashRingColor = color.RGBA{255, 150, 60, 160}
	BeamColor       = color.RGBA{120, 255, 120, 200}
)
