package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Where the game expects its tile images.
const outputDir = "images"

var (
	log = logrus.New()

	// Console colors
	green     = color.New(color.FgGreen)
	boldGreen = color.New(color.FgGreen, color.Bold)
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

func main() {
	if err := Generate(outputDir, os.Stdout); err != nil {
		log.WithError(err).WithField("dir", outputDir).Error("Failed to create placeholder sprites")
		os.Exit(1)
	}
}
