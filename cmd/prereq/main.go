package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/zeromicro/go-zero/core/logx"

	"prereq-sol/internal/config"
	"prereq-sol/pkg/logger"
)

var configFile = flag.String("f", "etc/prereq.yaml", "the config file")

func usage() {
	fmt.Fprintf(os.Stderr, "usage: prereq [-f config] <command> [args]\n\ncommands:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-18s %s\n", c.name, c.help)
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
			os.Exit(2)
		}
	}()

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	c := config.MustLoad(*configFile)
	if err := logger.InitLogger(c.LogConf.ToLogOption()); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cmd, ok := findCommand(flag.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", flag.Arg(0))
		usage()
		os.Exit(2)
	}

	// Ctrl-C 取消正在等待的 RPC / 确认轮询
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.run(ctx, c, flag.Args()[1:]); err != nil {
		logger.Errorf("[%s] %v", cmd.name, err)
		fmt.Fprintf(os.Stderr, "Oops, something went wrong: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}
