// internal/app/game.go
package app

import (
	"log"
	"math"

	"endless-survival/internal/component"
	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/entity"
	"endless-survival/internal/event"
	"endless-survival/internal/persistence"
	"endless-survival/internal/state"
	"endless-survival/internal/system"
	"endless-survival/internal/utils"
)

const noticeLife = 1500.0 // мс

// AudioPlayer: звук для игры. PlaySound не блокирует.
type AudioPlayer interface {
	system.SoundPlayer
	ToggleMute() bool
}

// Options: внешние зависимости игры. Любое поле может быть пустым.
type Options struct {
	Settings *config.Settings
	Storage  persistence.Storage
	Audio    AudioPlayer
	Rng      utils.Random
}

// Game holds the world state and the per-frame pipeline.
type Game struct {
	Store           *entity.Store
	Character       *entity.Character
	Run             *system.RunState
	Camera          *system.Camera
	Modes           *state.StateMachine
	EventDispatcher *event.Dispatcher
	Rng             utils.Random

	SpawnSystem        *system.SpawnSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	PickupSystem       *system.PickupSystem
	LootSystem         *system.LootSystem
	PlayerSystem       *system.PlayerSystem
	StatsSystem        *system.StatsSystem
	VisualEffectSystem *system.VisualEffectSystem
	SoundSystem        *system.SoundSystem

	ProfileID     string
	Username      string
	UsernameError string
	UsernameDraft string
	Shop          ShopView
	Chests        []Chest
	// Короткое сообщение поверх экрана ("Game saved")
	Notice      string
	noticeTimer component.Countdown

	settings    *config.Settings
	storage     persistence.Storage
	audio       AudioPlayer
	moveX       float64
	moveY       float64
	gameOverFor float64 // мс на экране поражения
	mapBounds   component.Rect
}

// NewGame собирает мир и подгружает последний сохранённый профиль.
func NewGame(opts Options) *Game {
	if opts.Settings == nil {
		opts.Settings = config.DefaultSettings()
	}
	if opts.Storage == nil {
		opts.Storage = persistence.NewMemoryStore()
	}
	if opts.Rng == nil {
		opts.Rng = utils.NewPRNGService(opts.Settings.Seed)
	}

	store := entity.NewStore()
	eventDispatcher := event.NewDispatcher()
	run := &system.RunState{}
	g := &Game{
		Store:           store,
		Run:             run,
		Camera:          system.NewCamera(config.ScreenWidth, config.ScreenHeight, config.MapWidth, config.MapHeight),
		EventDispatcher: eventDispatcher,
		Rng:             opts.Rng,
		settings:        opts.Settings,
		storage:         opts.Storage,
		audio:           opts.Audio,
		mapBounds:       component.Rect{W: config.MapWidth, H: config.MapHeight},
	}
	g.Character = entity.NewCharacter(0, 0, eventDispatcher, g.Rng)
	g.placeCharacter()

	g.SpawnSystem = system.NewSpawnSystem(store, g.Rng)
	g.MovementSystem = system.NewMovementSystem(store)
	g.CombatSystem = system.NewCombatSystem(store, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(store, eventDispatcher, g.CombatSystem, g.Rng)
	g.PickupSystem = system.NewPickupSystem(store, eventDispatcher)
	g.LootSystem = system.NewLootSystem(store, g.Rng)
	g.PlayerSystem = system.NewPlayerSystem(g.Character, run)
	g.StatsSystem = system.NewStatsSystem(run)
	g.VisualEffectSystem = system.NewVisualEffectSystem()
	var player system.SoundPlayer
	if opts.Audio != nil {
		player = opts.Audio
	}
	g.SoundSystem = system.NewSoundSystem(player)

	eventDispatcher.Subscribe(event.MonsterKilled, g.PlayerSystem)
	eventDispatcher.Subscribe(event.MonsterKilled, g.LootSystem)
	g.StatsSystem.Subscribe(eventDispatcher)
	g.VisualEffectSystem.Subscribe(eventDispatcher)
	g.SoundSystem.Subscribe(eventDispatcher)

	initial := state.Username
	if g.LoadProgress() {
		initial = state.Welcome
	}
	g.Modes = state.NewStateMachine(initial, eventDispatcher)
	g.Modes.OnEnter(state.Playing, func(from, to state.Mode) {
		if from != state.Shop {
			g.startRun()
		}
	})
	g.Modes.OnEnter(state.GameOver, func(from, to state.Mode) {
		g.gameOverFor = 0
	})
	g.Modes.OnEnter(state.Shop, func(from, to state.Mode) {
		g.Shop.Scroll = 0
	})
	return g
}

// placeCharacter ставит персонажа в центр карты
func (g *Game) placeCharacter() {
	g.Character.X = config.MapWidth/2 - g.Character.Width/2
	g.Character.Y = config.MapHeight/2 - g.Character.Height/2
	g.Camera.Follow(g.Character.Center())
}

// startRun начинает новый забег, сохраняя прокачку персонажа.
func (g *Game) startRun() {
	g.Character.ResetRun(0, 0)
	g.placeCharacter()
	g.Store.Reset()
	g.Run.Reset()
	g.SpawnSystem.Reset()
	g.StatsSystem.Reset()
	g.VisualEffectSystem.Clear()
	g.Chests = nil
	g.moveX, g.moveY = 0, 0
	log.Printf("Run started: level %d, gold %d", g.Character.Level, g.Character.Gold)
}

// Update продвигает мир на deltaTime мс. Шаг ограничен MaxDeltaTime,
// NaN считается нулевым шагом.
func (g *Game) Update(deltaTime float64) {
	if math.IsNaN(deltaTime) {
		deltaTime = 0
	}
	dt := utils.Clamp(deltaTime, 0, config.MaxDeltaTime)

	switch g.Modes.Current() {
	case state.Playing:
		g.updatePlaying(dt)
	case state.GameOver:
		g.updateGameOver(dt)
	}

	g.Store.Trim(config.MaxMonsters, config.MaxResources)
	g.VisualEffectSystem.Update(dt)
	g.Camera.Follow(g.Character.Center())
	g.noticeTimer.Tick(dt)
	if g.noticeTimer.Done() {
		g.Notice = ""
	}
}

func (g *Game) updatePlaying(dt float64) {
	g.Run.GameTime += dt
	c := g.Character

	c.Move(g.moveX, g.moveY, dt)
	c.ClampTo(g.mapBounds)
	c.Update(dt)
	g.MovementSystem.Update(dt, c)
	g.SpawnSystem.Update(dt, g.Run, g.Camera.Viewport())
	g.resolveCollisions()

	if !c.Alive() {
		g.onDeath()
	}
}

// resolveCollisions: разрешение столкновений в фиксированном порядке:
// цели, контакт, вихрь, атака, снаряды персонажа, снаряды монстров, подбор.
func (g *Game) resolveCollisions() {
	c := g.Character

	var nearest *entity.Monster
	if targets := g.CombatSystem.FindTargets(c, 1); len(targets) > 0 {
		nearest = targets[0]
	}
	var group []*entity.Monster
	if multi := c.Skill(defs.SkillTripleEff); multi != nil && multi.IsReady() {
		group = g.CombatSystem.FindTargets(c, config.MultiTargetCount)
	}

	g.CombatSystem.ApplyContactDamage(c)
	g.CombatSystem.ApplyOrbitDamage(c)
	g.CombatSystem.ResolveAttack(c, nearest, group)
	g.ProjectileSystem.ResolvePlayerBullets(c)
	g.ProjectileSystem.ResolveMonsterBullets(c)
	g.CombatSystem.RemoveDead()
	g.PickupSystem.Update(c)
}

// onDeath: конец забега: событие, сохранение прогресса, экран поражения
// или сразу сундуки.
func (g *Game) onDeath() {
	g.EventDispatcher.Dispatch(event.Event{Type: event.CharacterDied})
	log.Printf("Character died: score %d, %.1f s", g.Run.Score, g.Run.Seconds())
	if err := g.SaveProgress(); err != nil {
		log.Printf("Failed to save progress: %v", err)
	}

	if err := g.Modes.Transition(state.GameOver); err != nil {
		log.Printf("Game over transition: %v", err)
		return
	}
	if g.settings.RewardChests {
		g.rollChests()
		if err := g.Modes.Transition(state.Reward); err != nil {
			log.Printf("Reward transition: %v", err)
		}
	}
}

func (g *Game) updateGameOver(dt float64) {
	limit := g.settings.GameOverReturnSeconds * 1000
	if limit <= 0 {
		return
	}
	g.gameOverFor += dt
	if g.gameOverFor >= limit {
		g.transition(state.Welcome)
	}
}

// transition переключает режим, ошибку только логирует:
// недопустимый переход из ввода игрока не является сбоем.
func (g *Game) transition(to state.Mode) bool {
	if err := g.Modes.Transition(to); err != nil {
		log.Printf("Ignored: %v", err)
		return false
	}
	return true
}

// SetMovement задаёт направление движения на следующие кадры.
func (g *Game) SetMovement(dx, dy float64) {
	g.moveX, g.moveY = dx, dy
}

// ShowNotice показывает короткое сообщение.
func (g *Game) ShowNotice(text string) {
	g.Notice = text
	g.noticeTimer.Set(noticeLife)
}

// Settings возвращает настройки, с которыми создана игра.
func (g *Game) Settings() *config.Settings {
	return g.settings
}

// Close сохраняет прогресс и закрывает хранилище.
func (g *Game) Close() error {
	if g.ProfileID != "" {
		if err := g.SaveProgress(); err != nil {
			log.Printf("Failed to save progress on exit: %v", err)
		}
	}
	return g.storage.Close()
}
