// internal/component/game_state.go
package component

// Phase — фаза жизненного цикла волны.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseWaveActive
	PhaseWaveComplete
)
