package main

import (
	"flag"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yml", "Path to configuration file")
	noGUI := flag.Bool("nogui", false, "Load and summarize the dataset without opening a window")
	flag.Parse()

	if *noGUI {
		app, err := NewNoGUIApplication(*configPath)
		if err != nil {
			panic(err)
		}

		if err := app.Run(); err != nil {
			app.logger.Fatal("Application failed", zap.Error(err))
		}
	} else {
		app, err := NewFyneGUIApplication(*configPath)
		if err != nil {
			panic(err)
		}

		app.Run()
	}
}
