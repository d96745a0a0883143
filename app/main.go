package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/umputun/go-flags"
)

var opts struct {
	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout    time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		IdleTimeout     time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"60s" description:"idle timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"5s" description:"graceful shutdown timeout"`
		BaseURL         string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /delta)"`
		RequestsPerSec  int64         `long:"rps" env:"RPS" default:"1000" description:"max requests per second"`
	} `group:"server" namespace:"server" env-namespace:"DELTA_SERVER"`

	Session struct {
		TTL time.Duration `long:"ttl" env:"TTL" default:"24h" description:"visitor session TTL"`
		Max int           `long:"max" env:"MAX" default:"10000" description:"max number of live visitor sessions"`
	} `group:"session" namespace:"session" env-namespace:"DELTA_SESSION"`

	Theme struct {
		File      string `long:"file" env:"FILE" description:"theme table file (yaml, json, toml, ini or hcl), built-in palettes if empty"`
		HotReload bool   `long:"hot-reload" env:"HOT_RELOAD" description:"watch theme file for changes and reload"`
	} `group:"theme" namespace:"theme" env-namespace:"DELTA_THEME"`

	Page struct {
		Title     string `long:"title" env:"TITLE" default:"Delta" description:"page title"`
		LinkURL   string `long:"link-url" env:"LINK_URL" default:"https://go.dev" description:"header link target"`
		LinkText  string `long:"link-text" env:"LINK_TEXT" default:"Learn Go" description:"header link text"`
		Templates string `long:"templates" env:"TEMPLATES" description:"load page templates from this directory, reloaded on each request"`
	} `group:"page" namespace:"page" env-namespace:"DELTA_PAGE"`

	Check   bool `long:"check" description:"validate theme file and exit"`
	Schema  bool `long:"schema" description:"print theme file json schema and exit"`
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("delta %s\n", revision)

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		os.Exit(0)
	}

	setupLogs()

	if opts.Schema {
		if err := printSchema(os.Stdout); err != nil {
			log.Printf("[ERROR] %v", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if opts.Check {
		if err := checkThemeFile(opts.Theme.File); err != nil {
			log.Printf("[ERROR] %v", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel)

	if err := runServer(ctx); err != nil {
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func setupLogs() io.Writer {
	log.Setup(log.Msec)
	if opts.Debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	return os.Stdout
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
