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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"arbor/runtime"
	"arbor/utils"
)

// doPlantCmd takes the base path argument and replays the pasted tree under
// it. Exit status is non-zero when parsing fails or any entry could not be
// created.
func doPlantCmd(cmd *cobra.Command, args []string) {
	initLogging()

	basePath := "."
	if len(args) > 0 && args[0] != "" {
		basePath = args[0]
	}

	if dirPermissions == "" {
		dirPermissions = viper.GetString("permissions.directory")
	}
	if filePermissions == "" {
		filePermissions = viper.GetString("permissions.file")
	}

	dirMode, err := utils.ParsePermissions(dirPermissions)
	if err != nil {
		fmt.Println(err)
		utils.Exit(1)
	}
	fileMode, err := utils.ParsePermissions(filePermissions)
	if err != nil {
		fmt.Println(err)
		utils.Exit(1)
	}

	err = runtime.Run(runtime.Options{
		BasePath:  basePath,
		InputFile: inputFile,
		DirMode:   dirMode,
		FileMode:  fileMode,
		DryRun:    dryRun,
	})
	if err != nil {
		utils.PrintAndExit(err)
	}
}
