package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"AirFM/config"
	"AirFM/core/player"
	"AirFM/logger"

	"github.com/spf13/cobra"
)

var playServerURL string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the library from a running server in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		runPlayer()
	},
}

func init() {
	playCmd.Flags().StringVar(&playServerURL, "server", "http://localhost:9339", "Base URL of the streaming server")
	rootCmd.AddCommand(playCmd)
}

// consoleSurface prints the player state as a single status line.
type consoleSurface struct{}

func (consoleSurface) Render(view player.View) {
	if view.Empty {
		fmt.Println("(no tracks loaded)")
		return
	}
	state := "playing"
	if view.Paused {
		state = "paused"
	}
	fmt.Printf("\r[%s] %s - %s  %.0fs/%.0fs  vol %.0f%%\n",
		state, view.Artist, view.TrackName, view.Position, view.Duration, view.Volume*100)
}

func runPlayer() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: logger.LogLevel(cfg.LogLevel)})

	p := player.New(player.NewBeepMedia(), player.NewHTTPTransport(playServerURL), consoleSurface{})
	defer p.Close()

	if err := p.LoadCatalog(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, ok := p.CurrentTrack(); !ok {
		fmt.Println("The server's library is empty.")
		return
	}

	fmt.Println("Commands: p=play/pause n=next b=prev m=mute v <0-100>=volume s <0-100>=seek q=quit")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "p":
			err = p.TogglePlay()
		case "n":
			err = p.NextTrack()
		case "b":
			err = p.PrevTrack()
		case "m":
			p.ToggleMute()
		case "v":
			if len(fields) == 2 {
				if pct, convErr := strconv.ParseFloat(fields[1], 64); convErr == nil {
					p.SetVolume(pct / 100)
				}
			}
		case "s":
			if len(fields) == 2 {
				if pct, convErr := strconv.ParseFloat(fields[1], 64); convErr == nil {
					err = p.SeekTo(pct)
				}
			}
		case "q":
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
