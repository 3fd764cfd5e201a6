package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/config"
	"github.com/dimaq12/minesweeper/game"
	"github.com/dimaq12/minesweeper/models"
)

var log = logrus.New()

// promptDifficulty asks for a preset until a valid one is entered. ok is
// false when the player quits.
func promptDifficulty(in io.Reader, out io.Writer) (preset models.Preset, ok bool) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter the difficulty (easy, medium, hard) or 'q' to quit: ")
		if !scanner.Scan() {
			return models.Preset{}, false
		}

		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, "q") {
			return models.Preset{}, false
		}

		preset, err := models.PresetByName(input)
		if err == nil {
			return preset, true
		}
		fmt.Fprintln(out, "Invalid input. Please enter easy, medium or hard, or 'q' to quit.")
	}
}

func setupLogging(cfg config.LogConfig) (io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	difficulty := flag.String("difficulty", "", "difficulty preset: easy, medium or hard")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *difficulty != "" {
		cfg.Difficulty = *difficulty
	}

	logFile, err := setupLogging(cfg.Log)
	if err != nil {
		log.Fatalf("setup logging: %v", err)
	}
	defer logFile.Close()

	var preset models.Preset
	if cfg.Difficulty != "" {
		preset, err = models.PresetByName(cfg.Difficulty)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	} else {
		var ok bool
		if preset, ok = promptDifficulty(os.Stdin, os.Stdout); !ok {
			fmt.Println("Quitting...")
			return
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithFields(logrus.Fields{"difficulty": preset.Name, "seed": seed}).Info("starting")

	controller := game.NewGameController(preset, rand.New(rand.NewSource(seed)), log)
	service := game.NewMinesweeperService(controller, cfg.TickInterval, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := service.Run(ctx); err != nil {
		log.WithError(err).Error("terminal ui failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
