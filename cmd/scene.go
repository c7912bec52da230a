package cmd

import (
	"github.com/achilleasa/lumen/scene"
	"github.com/urfave/cli"
)

// Display info about the built-in scene.
func ShowSceneInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc := scene.NewDefault()
	logger.Noticef("scene information:\n%s", sc.Stats())

	return nil
}
