// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli rcli 命令行入口
package cli

import (
	"fmt"
	"os"

	"github.com/33cn/rcli/cli/commands"
	"github.com/33cn/rcli/common/config"
	"github.com/33cn/rcli/common/log"
	"github.com/spf13/cobra"
)

// NewRootCmd 构造根命令, 子命令共享 --conf 和 --loglevel
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "rcli",
		Short:             "rcli text sign, verify and encrypt tools",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initConfig,
	}
	rootCmd.PersistentFlags().String("conf", "", "config file path, built-in defaults when empty")
	rootCmd.PersistentFlags().String("loglevel", "", "console log level(debug, info, warn, error, crit)")

	rootCmd.AddCommand(
		commands.TextCmd(),
		commands.VersionCmd(),
	)
	return rootCmd
}

// initConfig 每次执行只解析一次配置, 设置日志后交给子命令
func initConfig(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("conf")
	cfg, err := config.Init(path)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("loglevel"); lvl != "" {
		cfg.Log.LogConsoleLevel = lvl
	}
	log.SetFileLog(&cfg.Log)
	commands.SetConfig(cfg)
	return nil
}

//Run :
func Run() {
	log.SetLogLevel("error")
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
