// Copyright © 2024 NAME HERE <EMAIL ADDRESS>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"arbor/utils"
)

var cfgFile string
var inputFile string
var dirPermissions string
var filePermissions string
var dryRun bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "arbor [PATH]",
	Short: "Create a directory structure from a tree-like diagram",
	Long: `arbor turns a textual tree diagram (the kind the 'tree' command prints, or a
hand-drawn structure pasted from an article or a chat answer) into real
directories and empty files under PATH. If PATH is not given, the current
directory is used. The tree-text is read from the clipboard unless --file is
given ('-' reads stdin). Existing entries are left alone, so re-running on
the same tree is safe.`,
	Args: cobra.MaximumNArgs(1),
	Run:  doPlantCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.arbor.yaml)")

	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "File containing the tree structure ('-' for stdin). Defaults to the clipboard.")
	rootCmd.Flags().StringVar(&dirPermissions, "dir-permissions", "", "Octal permissions for created directories (e.g. 755).")
	rootCmd.Flags().StringVar(&filePermissions, "file-permissions", "", "Octal permissions for created files (e.g. 644).")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the parsed tree and planned actions without touching the filesystem.")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	filepathToCfg := getCfgFile(cfgFile)
	viper.SetConfigFile(filepathToCfg)

	viper.SetDefault("log.level", log.InfoLevel.String())
	viper.SetDefault("log.path", "./arbor.log")
	viper.SetDefault("log.enabled", false)

	// fallback permissions when the flags are not given
	viper.SetDefault("permissions.directory", "")
	viper.SetDefault("permissions.file", "")

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debug("Using config file: ", viper.ConfigFileUsed())
	}
}

// initLogging sets up the logging object with a formatter and location
func initLogging() {
	if !viper.GetBool("log.enabled") {
		log.SetOutput(io.Discard)
		return
	}

	logFileObj, err := os.OpenFile(viper.GetString("log.path"), os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	} else {
		log.SetOutput(logFileObj)
	}

	Formatter := new(log.TextFormatter)
	Formatter.DisableTimestamp = true
	log.SetFormatter(Formatter)

	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	} else {
		log.SetLevel(level)
	}

	log.Debug("Starting arbor...")
}

// getCfgFile checks for config file in paths from xdg specs
// and in $HOME/.config/arbor/ directory
// defaults to $HOME/.arbor.yaml
func getCfgFile(fromFlag string) string {
	if fromFlag != "" {
		return fromFlag
	}

	home, err := homedir.Dir()
	if err != nil {
		fmt.Println(err)
		utils.Exit(0)
	}

	xdgHome := os.Getenv("XDG_CONFIG_HOME")
	xdgDirs := os.Getenv("XDG_CONFIG_DIRS")
	xdgPaths := append([]string{xdgHome}, strings.Split(xdgDirs, ":")...)
	allDir := append(xdgPaths, path.Join(home, ".config"))

	for _, val := range allDir {
		file := findInPath(val)
		if len(file) > 0 {
			return file
		}
	}
	return path.Join(home, ".arbor.yaml")
}

// findInPath returns first "*.yaml" file in path's subdirectory "arbor"
// if not found returns empty string
func findInPath(pathTo string) string {
	directory := path.Join(pathTo, "arbor")
	files, err := os.ReadDir(directory)
	if err != nil {
		return ""
	}

	for _, file := range files {
		fileName := file.Name()
		if path.Ext(fileName) == ".yaml" {
			return path.Join(directory, fileName)
		}
	}
	return ""
}
