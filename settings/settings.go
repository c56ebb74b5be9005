// This file is part of Padshell.
//
// Padshell is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padshell is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padshell.  If not, see <https://www.gnu.org/licenses/>.

package settings

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/padshell/padshell/curated"
	"github.com/padshell/padshell/logger"
	"github.com/padshell/padshell/paths"
	"github.com/padshell/padshell/prefs"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Configuration keys.
const (
	KeyFPS             = "fps"
	KeyKeyboardEnabled = "keyboard.enabled"
	KeyVsync           = "vsync"
	KeyBackend         = "backend"
	KeyWindowWidth     = "window.width"
	KeyWindowHeight    = "window.height"
	KeyInputFile       = "input.file"
	KeyLogEcho         = "log.echo"
	KeyStatsview       = "statsview"
)

// the name of the optional configuration file in the configuration
// directory
const ConfigFile = "padshell.toml"

// the name of the input configuration file in the configuration directory
const InputFile = "input.toml"

const envPrefix = "PADSHELL"

// Error patterns.
const (
	SettingsLoad     = "settings: load: %v"
	SettingsFlag     = "settings: flag: %v"
	SettingsPopulate = "settings: populate: %v"
)

// the command line flag for each key. keys not in this table cannot be
// set from the command line
var flagNames = map[string]string{
	KeyFPS:             "fps",
	KeyKeyboardEnabled: "keyboard",
	KeyVsync:           "vsync",
	KeyBackend:         "backend",
	KeyWindowWidth:     "width",
	KeyWindowHeight:    "height",
	KeyInputFile:       "input",
	KeyLogEcho:         "log",
	KeyStatsview:       "statsview",
}

// keys that are copied to the live preferences by Populate()
var liveKeys = []string{
	KeyFPS,
	KeyKeyboardEnabled,
	KeyVsync,
}

// Settings is the resolved start-up configuration.
type Settings struct {
	v *viper.Viper
}

func defaults(v *viper.Viper) {
	v.SetDefault(KeyFPS, 60)
	v.SetDefault(KeyKeyboardEnabled, true)
	v.SetDefault(KeyVsync, true)
	v.SetDefault(KeyBackend, "opengl")
	v.SetDefault(KeyWindowWidth, 1280)
	v.SetDefault(KeyWindowHeight, 720)
	v.SetDefault(KeyInputFile, "")
	v.SetDefault(KeyLogEcho, false)
	v.SetDefault(KeyStatsview, false)
}

// AddFlags adds the command line flags for the settings to the flag set.
// The flag defaults are the same as the settings defaults but a flag only
// overrides the other sources when it is set explicitly.
func AddFlags(flags *pflag.FlagSet) {
	flags.Int(flagNames[KeyFPS], 60, "the rate at which frames are presented")
	flags.Bool(flagNames[KeyKeyboardEnabled], true, "forward the host keyboard to the emulated keyboard")
	flags.Bool(flagNames[KeyVsync], true, "initial vsync state of the emulated console")
	flags.String(flagNames[KeyBackend], "opengl", "graphics backend of the emulated console")
	flags.Int(flagNames[KeyWindowWidth], 1280, "initial window width")
	flags.Int(flagNames[KeyWindowHeight], 720, "initial window height")
	flags.String(flagNames[KeyInputFile], "", "input configuration file")
	flags.Bool(flagNames[KeyLogEcho], false, "echo log to stderr")
	flags.Bool(flagNames[KeyStatsview], false, "run the statistics server")
}

// Load resolves the settings. The flags argument may be nil, in which case
// only the configuration file and the environment are used. Flags missing
// from the flag set are ignored.
//
// The configFile argument can be empty. A configuration file that does not
// exist is not an error.
func Load(flags *pflag.FlagSet, configFile string) (*Settings, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagNames {
			f := flags.Lookup(name)
			if f == nil {
				continue // for loop
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, curated.Errorf(SettingsFlag, err)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
				return nil, curated.Errorf(SettingsLoad, err)
			}
		} else {
			logger.Logf(logger.Allow, "settings", "using %s", configFile)
		}
	}

	return &Settings{v: v}, nil
}

// DefaultConfigFile returns the path of the configuration file in the
// configuration directory.
func DefaultConfigFile() (string, error) {
	return paths.ResourcePath("", ConfigFile)
}

// Populate copies the values of the live keys into the registry. Keys that
// are not in the registry are skipped. Errors from individual values are
// combined.
func (s *Settings) Populate(r *prefs.Registry) error {
	registered := make(map[string]bool)
	for _, k := range r.Keys() {
		registered[k] = true
	}

	var err error
	for _, k := range liveKeys {
		if !registered[k] {
			continue // for loop
		}
		if e := r.Set(k, s.v.Get(k)); e != nil {
			err = multierr.Append(err, e)
		}
	}
	if err != nil {
		return curated.Errorf(SettingsPopulate, err)
	}
	return nil
}

// Backend is the name of the graphics backend.
func (s *Settings) Backend() string {
	return s.v.GetString(KeyBackend)
}

// WindowSize is the initial size of the window.
func (s *Settings) WindowSize() (int, int) {
	return s.v.GetInt(KeyWindowWidth), s.v.GetInt(KeyWindowHeight)
}

// InputFile is the path of the input configuration file. If none has been
// specified the file in the configuration directory is used.
func (s *Settings) InputFile() (string, error) {
	if pth := s.v.GetString(KeyInputFile); pth != "" {
		return pth, nil
	}
	return paths.ResourcePath("", InputFile)
}

// LogEcho is true if the log should be echoed to stderr.
func (s *Settings) LogEcho() bool {
	return s.v.GetBool(KeyLogEcho)
}

// Statsview is true if the statistics server should be run.
func (s *Settings) Statsview() bool {
	return s.v.GetBool(KeyStatsview)
}

// FPS is the rate at which frames are presented.
func (s *Settings) FPS() int {
	return s.v.GetInt(KeyFPS)
}
