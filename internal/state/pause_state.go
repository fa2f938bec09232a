// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"
)

var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: предыдущее состояние продолжает
// отрисовываться, но его Update не вызывается.
type PauseState struct {
	sm       *StateMachine
	previous State
}

func NewPauseState(sm *StateMachine, previous State) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) ||
		inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previous != nil {
		s.previous.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	label := "PAUSED"
	bounds, _ := font.BoundString(ui.TitleFace, label)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	text.Draw(screen, label, ui.TitleFace, (config.ScreenWidth-width)/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
