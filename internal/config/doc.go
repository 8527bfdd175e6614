// Package config provides configuration management for swatchctl.
//
// Configuration is layered: built-in defaults, then the user file, then
// the project file. A later layer only overrides the settings it sets.
//
//  1. Default Configuration (embedded in binary)
//  2. User Configuration (~/.config/swatchctl/config.yaml)
//  3. Project Configuration (./.swatchctl/config.yaml)
//
// # Configuration Structure
//
//	initialColor: "#808080"  # color the session starts with
//	adjustStep: 16           # shift+arrow channel step, 1..255
//	theme: auto              # auto, dark or light
//	logLevel: info           # debug, info, warn or error
//
// The merged result is validated before LoadConfig returns it.
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	start, _ := cfg.InitialRGB()
package config
