// cmd/game/main.go
package main

import (
	"context"
	"flag"
	_ "image/png"
	"log"
	"net/http"
	_ "net/http/pprof"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"endless-survival/internal/app"
	"endless-survival/internal/assets"
	"endless-survival/internal/audio"
	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/input"
	"endless-survival/internal/persistence"
	"endless-survival/internal/screen"
)

const progressFile = "progress.json"

type AppGame struct {
	game           *app.Game
	renderer       *screen.Renderer
	input          *input.Reader
	canvas         *ebiten.Image
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	// симуляция считает время в миллисекундах, ограничение делает Game.Update
	deltaTime := float64(now.Sub(a.lastUpdateTime).Microseconds()) / 1000
	a.lastUpdateTime = now

	a.game.HandleInput(a.input.Read(a.game.Modes.Current()))
	a.renderer.SetCursor(a.input.Cursor())
	a.game.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(dst *ebiten.Image) {
	a.renderer.Draw(a.canvas, a.game)

	// холст растягивается на всё окно
	b := dst.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx())/config.ScreenWidth, float64(b.Dy())/config.ScreenHeight)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(a.canvas, op)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.input.SetDeviceSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// openStorage выбирает хранилище прогресса: PostgreSQL при заданном DSN,
// иначе JSON-файл. С токеном облака прогресс дополнительно синхронизируется.
func openStorage(settings *config.Settings) (persistence.Storage, error) {
	var local persistence.Storage
	if settings.DatabaseDSN != "" {
		store, err := persistence.NewPostgresStore(settings.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		local = store
	} else {
		store, err := persistence.NewJSONStore(filepath.Join(settings.SaveDir, progressFile))
		if err != nil {
			return nil, err
		}
		local = store
	}

	if settings.Cloud.BaseURL == "" || settings.Cloud.Token == "" {
		return local, nil
	}
	timeout := time.Duration(settings.Cloud.TimeoutSeconds * float64(time.Second))
	cloud := persistence.NewCloudClient(settings.Cloud.BaseURL, settings.Cloud.Token, timeout)
	synced := persistence.NewSyncedStore(local, cloud, timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if _, err := synced.Pull(ctx); err != nil {
		log.Printf("Cloud progress not pulled: %v", err)
	}
	return synced, nil
}

// spriteKeys: изображения, которые есть смысл загрузить заранее
func spriteKeys() []string {
	keys := []string{"character.png"}
	for _, def := range defs.MonsterDefs {
		if def.Sprite != "" {
			keys = append(keys, def.Sprite)
		}
	}
	for _, def := range defs.ResourceDefs {
		if def.Sprite != "" {
			keys = append(keys, def.Sprite)
		}
	}
	return keys
}

func loadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	return img, err
}

func main() {
	configPath := flag.String("config", "configs/settings.yaml", "path to the settings file")
	seed := flag.Int64("seed", 0, "random seed, 0 keeps the configured one")
	defsPath := flag.String("defs", "", "balance override file")
	pprofAddr := flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}
	if *defsPath != "" {
		settings.DefinitionsFile = *defsPath
	}
	if settings.DefinitionsFile != "" {
		if err := defs.LoadDefinitions(settings.DefinitionsFile); err != nil {
			log.Printf("Using built-in definitions: %v", err)
		}
	}

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	storage, err := openStorage(settings)
	if err != nil {
		log.Fatal(err)
	}

	sound := audio.NewSoundManager(settings.Sound)
	go func() {
		if err := <-sound.Preload(audio.Cues...); err != nil {
			log.Printf("Some sounds are missing: %v", err)
		}
	}()
	if settings.Sound.Music != "" {
		if err := sound.PlayMusic(filepath.Join(settings.Sound.Dir, settings.Sound.Music)); err != nil {
			log.Printf("Music disabled: %v", err)
		}
	}

	sprites := assets.NewCache(assets.FileLoader(settings.ImageDir, loadImage), nil)
	go func() {
		if err := <-sprites.Preload(spriteKeys()...); err != nil {
			log.Printf("Falling back to shapes: %v", err)
		}
	}()

	game := app.NewGame(app.Options{
		Settings: settings,
		Storage:  storage,
		Audio:    sound,
	})
	host := &AppGame{
		game:           game,
		renderer:       screen.NewRenderer(sprites),
		input:          input.NewReader(),
		canvas:         ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Endless Survival")
	runErr := ebiten.RunGame(host)

	if err := game.Close(); err != nil {
		log.Printf("Failed to close storage: %v", err)
	}
	if err := sound.Close(); err != nil {
		log.Printf("Failed to stop music: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
