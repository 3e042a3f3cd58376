// Package playing provides the scene that runs one level.
package playing

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/sam/internal/application/scene"
	"github.com/younwookim/sam/internal/application/state"
	"github.com/younwookim/sam/internal/application/system"
	"github.com/younwookim/sam/internal/infrastructure/config"
)

// Colors used when no atlas is loaded
var (
	colorBG     = color.RGBA{26, 26, 46, 255}
	colorBack   = color.RGBA{36, 36, 60, 255}
	colorMid    = color.RGBA{80, 80, 100, 255}
	colorFront  = color.RGBA{120, 120, 140, 160}
	colorObject = color.RGBA{255, 215, 0, 255}
	colorPlayer = color.RGBA{100, 200, 100, 255}
	colorPause  = color.RGBA{0, 0, 0, 128}
)

// Playing is the scene running one level
type Playing struct {
	config  *config.GameConfig
	sim     *system.Simulation
	input   *system.InputSystem
	feed    *system.FeedBuilder
	atlas   *Atlas
	state   state.GameState
	scale   int
	screenW int
	screenH int
	logger  *log.Logger

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene for sim.
// atlas may be nil, in which case tiles are drawn as plain rectangles.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, sim *system.Simulation, atlas *Atlas, recordPath string, logger *log.Logger) *Playing {
	display := cfg.Physics.Display
	screenW, screenH := display.ScreenSize()

	p := &Playing{
		config:         cfg,
		sim:            sim,
		input:          system.NewInputSystem(nil),
		feed:           system.NewFeedBuilder(system.NewCamera(display), display.Scale),
		atlas:          atlas,
		state:          state.StatePlaying,
		scale:          display.Scale,
		screenW:        screenW,
		screenH:        screenH,
		logger:         logger,
		recordFilename: recordPath,
	}

	if atlas != nil {
		sim.SetAlphaMask(system.NewAtlasMask(atlas.Source(), display.TileWidth, display.TileHeight))
	}

	if recordPath != "" {
		p.recorder = NewRecorder(sim.Level().Name)
		logger.Info("recording enabled", "path", recordPath)
	}

	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.TogglePause()
		return nil, nil
	}
	if p.state == state.StatePaused {
		return nil, nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	p.Step(p.input.Poll(), dt)
	return nil, nil // nil = stay on this scene
}

// Step records the input and advances the simulation by one frame
func (p *Playing) Step(in system.InputState, dt float64) {
	if p.recorder != nil {
		p.recorder.RecordFrame(in, dt)
	}
	p.sim.Tick(dt, in.Actions())
}

// TogglePause pauses or resumes the level.
// Keys held across a pause are forgotten, since their releases are not seen.
func (p *Playing) TogglePause() {
	p.state = p.state.Toggle()
	p.input.Reset()
}

// State returns whether the level is running or paused
func (p *Playing) State() state.GameState {
	return p.state
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "error", err)
	} else {
		p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	feed := p.feed.Build(p.sim)
	p.drawCommands(screen, feed.Back, colorBack)
	p.drawCommands(screen, feed.Mid, colorMid)
	p.drawCommands(screen, feed.Front, colorFront)
	p.drawCommands(screen, feed.Objects, colorObject)
	p.drawCommand(screen, feed.Player, colorPlayer)

	p.drawStatus(screen, feed.Status)
	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawCommands(screen *ebiten.Image, cmds []system.DrawCommand, fallback color.Color) {
	for _, cmd := range cmds {
		p.drawCommand(screen, cmd, fallback)
	}
}

func (p *Playing) drawCommand(screen *ebiten.Image, cmd system.DrawCommand, fallback color.Color) {
	if p.atlas == nil {
		ebitenutil.DrawRect(screen, float64(cmd.X), float64(cmd.Y), float64(cmd.W), float64(cmd.H), fallback)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.scale), float64(p.scale))
	op.GeoM.Translate(float64(cmd.X), float64(cmd.Y))
	screen.DrawImage(p.atlas.Tile(cmd.TileID, cmd.W/p.scale), op)
}

func (p *Playing) drawStatus(screen *ebiten.Image, s system.Status) {
	text := fmt.Sprintf("Score: %d  Ammo: %d  Lives: %d", s.Score, s.Ammo, s.Lives)
	ebitenutil.DebugPrintAt(screen, text, 10, p.screenH-20)

	ebitenutil.DebugPrint(screen, "Arrows: Move | Z: Jump | X: Fire | ESC: Pause")
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorPause)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("level started", "level", p.sim.Level().Name)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
