package main

import (
	"fmt"
	"os"

	"github.com/faiface/mainthread"
	"github.com/memmaker/voxel-outline/engine/util"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("voxel-outline").
		SetVersion("v0.1.0").
		SetDescription("Voxel world viewer that outlines the block under the crosshair.")

	commando.
		Register("run").
		SetDescription("Open a window with a generated or loaded world. WASD moves, space and shift fly, left click removes the outlined block, right click places one.").
		SetShortDescription("open the viewer").
		AddFlag("config,c", "settings file (yaml), see outline.yaml", commando.String, "-").
		AddFlag("world,w", "world file written by save (zstd)", commando.String, "-").
		AddFlag("schematic,s", "MCEdit .schematic file to import", commando.String, "-").
		AddFlag("save,o", "write the world to this file on exit", commando.String, "-").
		SetAction(runViewerCommand)

	commando.Parse(nil)
}

func runViewerCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	settings, err := LoadSettings(optionalFlag(flags["config"]))
	if err != nil {
		fatalf("%v", err)
	}
	level, err := util.ParseLogLevel(settings.LogLevel)
	if err != nil {
		fatalf("%v", err)
	}
	util.SetLogLevel(level)

	world, err := buildWorld(settings.World, optionalFlag(flags["world"]), optionalFlag(flags["schematic"]))
	if err != nil {
		fatalf("%v", err)
	}
	size := world.Size()
	pterm.Info.Printf("world %dx%dx%d, %d solid blocks\n", size.X, size.Y, size.Z, countSolid(world))

	var runErr error
	mainthread.Run(func() {
		runErr = runViewer(settings, world)
	})
	if runErr != nil {
		fatalf("%v", runErr)
	}

	if savePath := optionalFlag(flags["save"]); savePath != "" {
		if err := world.SaveToFile(savePath); err != nil {
			fatalf("%v", err)
		}
		pterm.Success.Printf("world saved to %s\n", savePath)
	}
}

// optionalFlag maps the "-" placeholder default to an empty string.
func optionalFlag(flag commando.FlagValue) string {
	value, err := flag.GetString()
	if err != nil || value == "-" {
		return ""
	}
	return value
}

func fatalf(format string, args ...interface{}) {
	pterm.Error.Println(fmt.Sprintf(format, args...))
	os.Exit(1)
}
