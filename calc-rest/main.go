package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.sr.ht/~sircmpwn/getopt"
	"go.uber.org/zap"
)

type Options struct {
	Addr     string
	DbPath   string
	Expiry   time.Duration
	Interval time.Duration
	Compress bool
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: calc-rest [options]\n"+
		"\n"+
		"options:\n"+
		"  -a ADDR      TCP address to listen to [default=localhost:8080]\n"+
		"  -D FILE      history database [default=calc.db]\n"+
		"  -e DURATION  keep history rows this long after last use [default=24h]\n"+
		"  -i DURATION  run the history cleaner this often [default=5m]\n"+
		"  -c           enable transparent response compression\n")
}

// / Parse argv. Returns an exit code, or -1 to continue.
func ReadFlags(args []string, options *Options) int {
	opts, _, err := getopt.Getopts(args, "a:D:e:i:ch")
	if err != nil {
		fmt.Fprintf(os.Stderr, "calc-rest: %v\n", err)
		usage()
		return 2
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'a':
			options.Addr = opt.Value
		case 'D':
			options.DbPath = opt.Value
		case 'e', 'i':
			d, err := time.ParseDuration(opt.Value)
			if err != nil || d <= 0 {
				fmt.Fprintf(os.Stderr, "calc-rest: -%c: invalid duration %q\n", opt.Option, opt.Value)
				return 2
			}
			if opt.Option == 'e' {
				options.Expiry = d
			} else {
				options.Interval = d
			}
		case 'c':
			options.Compress = true
		default: // case 'h':
			usage()
			return 1
		}
	}
	return -1
}

func real_main() int {
	options := Options{
		Addr:     "localhost:8080",
		DbPath:   "calc.db",
		Expiry:   24 * time.Hour,
		Interval: 5 * time.Minute,
	}
	if code := ReadFlags(os.Args, &options); code >= 0 {
		return code
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "calc-rest: %v\n", err)
		return 1
	}
	defer logger.Sync()

	store, err := OpenStore(options.DbPath)
	if err != nil {
		logger.Error("opening store failed", zap.Error(err))
		return 1
	}
	defer store.Close()

	scheduler, err := StartCleanSchedule(NewCleaner(store, logger), options.Interval, logger)
	if err != nil {
		logger.Error("starting clean schedule failed", zap.Error(err))
		return 1
	}

	server := NewService(store, logger, options.Expiry).NewServer(options.Compress)
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", zap.String("addr", options.Addr))
		serveErr <- server.ListenAndServe(options.Addr)
	}()

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, syscall.SIGINT, syscall.SIGTERM)

	code := 0
	select {
	case s := <-sigch:
		logger.Info("interrupted, exiting", zap.String("signal", s.String()))
	case err := <-serveErr:
		logger.Error("error in ListenAndServe", zap.Error(err))
		code = 1
	}

	if err := scheduler.Shutdown(); err != nil {
		logger.Warn("scheduler shutdown", zap.Error(err))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.ShutdownWithContext(ctx); err != nil {
		logger.Warn("server shutdown", zap.Error(err))
	}
	return code
}

func main() {
	os.Exit(real_main())
}
