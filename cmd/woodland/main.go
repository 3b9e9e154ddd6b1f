package main

import (
	"flag"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/woodland/audio"
	"github.com/plus3/woodland/config"
	debugui_ebiten "github.com/plus3/woodland/ecs/debugui/ebiten"
	"github.com/plus3/woodland/sim"
	"github.com/plus3/woodland/sprite"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	simConfig := cfg.Sim()
	width, height := int(simConfig.ScreenWidth), int(simConfig.ScreenHeight)

	backend := debugui_ebiten.NewImguiBackend("Woodland", width, height)
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	catalog, err := sprite.Load(cfg.SpritesDir())
	if err != nil {
		log.Fatalf("Failed to load sprites: %v", err)
	}
	textures, err := LoadTextures(cfg.SpritesDir())
	if err != nil {
		log.Fatalf("Failed to load textures: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Printf("World seed %d", seed)

	player := startAudio(cfg)

	var sounds sim.SoundSink
	if player != nil {
		sounds = player
	}
	world := sim.NewWorld(simConfig, catalog, sounds, rand.New(rand.NewPCG(seed, seed)))
	sim.Populate(world)

	game := NewGame(GameOptions{
		Config:   cfg,
		Seed:     seed,
		Sim:      sim.NewSimulation(world),
		Catalog:  catalog,
		Textures: textures,
		Player:   player,
		Backend:  backend,
	})

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
	if player != nil {
		player.Close()
	}
}

// startAudio returns nil when the game has to run silently.
func startAudio(cfg config.Config) *audio.Player {
	if cfg.Mute {
		return nil
	}

	player := audio.NewPlayer(audio.Config{
		SoundDir:     cfg.SoundDir(),
		MusicDir:     cfg.MusicDir(),
		EffectVolume: cfg.EffectVolume,
		MusicVolume:  cfg.MusicVolume,
	})
	if err := player.Load(); err != nil {
		log.Printf("Some sounds failed to load: %v", err)
	}
	if err := player.Initialize(); err != nil {
		log.Printf("Audio disabled: %v", err)
		return nil
	}
	if err := player.PlaySong(audio.SongPlaying, true); err != nil {
		log.Printf("Music disabled: %v", err)
	}
	return player
}
