package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"

	"github.com/neighborstan/voice-dictator-by-neighbor/internal/database"
	"github.com/neighborstan/voice-dictator-by-neighbor/internal/hotkey"
	"github.com/neighborstan/voice-dictator-by-neighbor/internal/services"
)

//go:embed all:frontend/dist
var assets embed.FS

// launchRequestsOnboarding reads the activation parameter the launcher
// passes on first run.
func launchRequestsOnboarding(args []string) bool {
	for _, arg := range args[1:] {
		if arg == "--onboarding" {
			return true
		}
	}
	return false
}

func main() {
	db, err := database.Init(database.Config{})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	binder := hotkey.NewManager()
	svc := services.NewServices(db, binder)
	app := NewApp(svc, binder, launchRequestsOnboarding(os.Args))

	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	err = wails.Run(&options.App{
		Title:  "Voice Dictator",
		Width:  900,
		Height: 680,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Voice Dictator",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
			svc.Config,
			svc.ApiKeys,
			svc.Settings,
			svc.Status,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
