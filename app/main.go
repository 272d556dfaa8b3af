package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/jobboard/app/health"
	"github.com/umputun/jobboard/app/notify"
	"github.com/umputun/jobboard/app/web"
	"github.com/umputun/jobboard/app/web/enums"
	"github.com/umputun/jobboard/app/web/persistence"
)

var opts struct {
	Listen     string  `short:"l" long:"listen" env:"JOBBOARD_LISTEN" default:":8080" description:"web server listen address"`
	LoginLimit float64 `long:"login-limit" env:"JOBBOARD_LOGIN_LIMIT" default:"5" description:"login and register requests per second per ip, 0 disables"`
	BcryptCost int     `long:"bcrypt-cost" env:"JOBBOARD_BCRYPT_COST" default:"10" description:"bcrypt cost for password hashes"`
	Dbg        bool    `long:"dbg" env:"JOBBOARD_DEBUG" description:"debug mode"`

	DB struct {
		Type     string        `long:"type" env:"TYPE" default:"sqlite" description:"database type, sqlite or postgres"`
		DSN      string        `long:"dsn" env:"DSN" default:"jobboard.db" description:"database file for sqlite or connection url for postgres"`
		Attempts int           `long:"attempts" env:"ATTEMPTS" default:"5" description:"how many times to try connecting"`
		Delay    time.Duration `long:"delay" env:"DELAY" default:"1s" description:"initial delay between connection attempts"`
	} `group:"db" namespace:"db" env-namespace:"JOBBOARD_DB"`

	Session struct {
		TTL time.Duration `long:"ttl" env:"TTL" default:"24h" description:"session inactivity timeout"`
		Max int           `long:"max" env:"MAX" default:"100000" description:"max number of live sessions, least recently used dropped first, 0 for unlimited"`
	} `group:"session" namespace:"session" env-namespace:"JOBBOARD_SESSION"`

	Notify struct {
		Enabled      bool          `long:"enabled" env:"ENABLED" description:"email the poster when somebody volunteers"`
		SMTPHost     string        `long:"smtp-host" env:"SMTP_HOST" description:"SMTP host"`
		SMTPPort     int           `long:"smtp-port" env:"SMTP_PORT" default:"25" description:"SMTP port"`
		SMTPUsername string        `long:"smtp-username" env:"SMTP_USERNAME" description:"SMTP user name"`
		SMTPPassword string        `long:"smtp-password" env:"SMTP_PASSWORD" description:"SMTP password"`
		SMTPTLS      bool          `long:"smtp-tls" env:"SMTP_TLS" description:"enable SMTP TLS"`
		SMTPTimeOut  time.Duration `long:"smtp-timeout" env:"SMTP_TIMEOUT" default:"10s" description:"SMTP TCP connection timeout"`
		FromEmail    string        `long:"from" env:"FROM" description:"SMTP from email, jobboard@hostname if empty"`
		BaseURL      string        `long:"base-url" env:"BASE_URL" description:"public url of the site for links in emails"`
		Template     string        `long:"template" env:"TEMPLATE" description:"custom volunteer email template file"`
	} `group:"notify" namespace:"notify" env-namespace:"JOBBOARD_NOTIFY"`

	Health struct {
		MemoryBelow   int     `long:"memory-below" env:"MEMORY_BELOW" default:"0" description:"report unhealthy if used memory percent is not below, 0 disables"`
		LoadAvgBelow  float64 `long:"load-below" env:"LOAD_BELOW" default:"0" description:"report unhealthy if 1m load average is not below, 0 disables"`
		DiskFreeAbove int     `long:"disk-free-above" env:"DISK_FREE_ABOVE" default:"0" description:"report unhealthy if free disk percent is below, 0 disables"`
		DiskPath      string  `long:"disk-path" env:"DISK_PATH" default:"/" description:"path to check free disk space on"`
	} `group:"health" namespace:"health" env-namespace:"JOBBOARD_HEALTH"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging to file"`
		Filename        string `long:"filename" env:"FILENAME" default:"jobboard.log" description:"file name for logs"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"maximum size in megabytes of the log file before it gets rotated"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"maximum number of old log files to retain"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"0" description:"maximum number of days to retain old log files"`
		EnabledCompress bool   `long:"enabled-compress" env:"ENABLED_COMPRESS" description:"compress rotated log files"`
	} `group:"log" namespace:"log" env-namespace:"JOBBOARD_LOG"`
}

var revision = "unknown"

func main() {
	fmt.Printf("jobboard %s\n", revision)

	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	setupLogs()

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signals(cancel) // handle SIGQUIT and SIGTERM

	if err := run(ctx); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

func run(ctx context.Context) error {
	dbType, err := enums.ParseDBType(opts.DB.Type)
	if err != nil {
		return fmt.Errorf("bad db type: %w", err)
	}

	store, err := openStore(ctx, dbType, opts.DB.DSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("[WARN] failed to close store, %v", err)
		}
	}()

	checker := health.NewChecker(store, health.Thresholds{
		MemoryBelow:   opts.Health.MemoryBelow,
		LoadAvgBelow:  opts.Health.LoadAvgBelow,
		DiskFreeAbove: opts.Health.DiskFreeAbove,
		DiskPath:      opts.Health.DiskPath,
	})

	cfg := web.Config{
		Store:          store,
		Hasher:         web.BcryptHasher{Cost: opts.BcryptCost},
		Version:        revision,
		SessionTTL:     opts.Session.TTL,
		MaxSessions:    opts.Session.Max,
		LoginRateLimit: opts.LoginLimit,
		Health:         checker,
	}
	if svc := makeNotifier(); svc != nil {
		cfg.Notifier = svc
	}

	srv, err := web.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to make web server: %w", err)
	}
	return srv.Run(ctx, opts.Listen)
}

// openStore connects to the database and applies migrations, retries with backoff
func openStore(ctx context.Context, dbType enums.DBType, dsn string) (store *persistence.Store, err error) {
	rptr := repeater.New(&strategy.Backoff{Repeats: max(opts.DB.Attempts, 1), Duration: opts.DB.Delay, Factor: 2, Jitter: true})
	err = rptr.Do(ctx, func() error {
		var e error
		if store, e = persistence.New(ctx, dbType, dsn); e != nil {
			log.Printf("[WARN] can't open %s store, %v", dbType, e)
			return e
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", dbType, err)
	}
	log.Printf("[INFO] %s store opened, %s", dbType, redactDSN(dsn))
	return store, nil
}

// makeNotifier returns nil if notifications are not enabled
func makeNotifier() *notify.Service {
	if !opts.Notify.Enabled {
		return nil
	}
	if opts.Notify.FromEmail == "" {
		opts.Notify.FromEmail = "jobboard@" + makeHostName()
	}
	return notify.NewService(
		notify.Params{Enabled: true, BaseURL: validateBaseURL(opts.Notify.BaseURL), VolunteeredTmpl: opts.Notify.Template},
		notify.SendersParams{
			SMTPHost:     opts.Notify.SMTPHost,
			SMTPPort:     opts.Notify.SMTPPort,
			SMTPTLS:      opts.Notify.SMTPTLS,
			SMTPUsername: opts.Notify.SMTPUsername,
			SMTPPassword: opts.Notify.SMTPPassword,
			SMTPTimeout:  opts.Notify.SMTPTimeOut,
			FromEmail:    opts.Notify.FromEmail,
		},
	)
}

func makeHostName() string {
	host, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return host
}

// validateBaseURL drops trailing slashes, empty and "/" mean no base url
func validateBaseURL(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), "/")
}

// redactDSN hides password in postgres connection url, sqlite paths returned as is
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}

// setupLogs configures lgr and returns the writer logs go to
func setupLogs() io.Writer {
	var out io.Writer = os.Stdout
	if opts.Log.Enabled {
		out = &lumberjack.Logger{
			Filename:   opts.Log.Filename,
			MaxSize:    opts.Log.MaxSize,
			MaxBackups: opts.Log.MaxBackups,
			MaxAge:     opts.Log.MaxAge,
			Compress:   opts.Log.EnabledCompress,
		}
	}

	if opts.Dbg {
		log.Setup(log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile, log.Out(out), log.Err(out))
		return out
	}
	log.Setup(log.Msec, log.Out(out), log.Err(out))
	return out
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT { // catch SIGQUIT and print stack traces
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
				continue
			}
			log.Printf("[INFO] signal %s received, shutting down", sig)
			cancel()
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
