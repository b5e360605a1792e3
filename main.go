package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/onair/internal/app"
	"github.com/llehouerou/onair/internal/config"
	"github.com/llehouerou/onair/internal/connectivity"
	"github.com/llehouerou/onair/internal/control"
	"github.com/llehouerou/onair/internal/engine"
	"github.com/llehouerou/onair/internal/errmsg"
	"github.com/llehouerou/onair/internal/icons"
	"github.com/llehouerou/onair/internal/logging"
	"github.com/llehouerou/onair/internal/mpris"
	"github.com/llehouerou/onair/internal/notify"
	"github.com/llehouerou/onair/internal/session"
	"github.com/llehouerou/onair/internal/stderr"
)

var overrides config.Overrides

var rootCmd = &cobra.Command{
	Use:          "onair",
	Short:        "Play a live radio stream from the terminal",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&overrides.StreamURL, "url", "u", "", "stream URL (default from config)")
	flags.StringVarP(&overrides.ConfigFile, "config", "c", "", "extra config file, applied after the default ones")
	flags.StringVar(&overrides.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&overrides.NoNotification, "no-notify", false, "do not show the desktop notification")
	flags.BoolVar(&overrides.NoMPRIS, "no-mpris", false, "do not register media keys")

	lo.Must0(rootCmd.RegisterFlagCompletionFunc("log-level", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

func main() {
	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold + cc.Underline,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadWith(overrides)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	logCfg := cfg.GetLogConfig()
	closer, err := logging.Setup(logCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpLogSetup, logCfg.File, err))
		logging.Discard()
	} else {
		defer closer.Close()
	}

	// Capture stderr to prevent C library messages (ALSA, oto) from corrupting TUI
	if err := stderr.Start(); err != nil {
		log.WithError(err).Warn("stderr capture unavailable")
	}
	defer stderr.Stop()

	icons.Init(cfg.Icons)

	streamCfg := cfg.GetStreamConfig()
	connCfg := cfg.GetConnectivityConfig()
	labels := cfg.GetLabels()

	eng := engine.New(
		engine.WithCleartext(streamCfg.CleartextAllowed()),
		engine.WithReadTimeout(streamCfg.ReadTimeoutDuration()),
	)
	published := &session.Published{}

	notifier := notify.Disabled()
	if cfg.NotificationsEnabled() {
		if n, err := notify.New(); err != nil {
			log.WithError(err).Warn("desktop notifications unavailable")
		} else {
			notifier = n
		}
	}

	var mediaKeys control.Receiver
	if cfg.MPRISEnabled() {
		mediaKeys = mpris.NewReceiver(app.NewSource(published, eng, streamCfg.URL))
	}

	model := app.New(app.Deps{
		URL: streamCfg.URL,
		Labels: session.Labels{
			ShortName: labels.ShortName,
			Loading:   labels.Loading,
			NoNetwork: labels.NoNetwork,
			Error:     labels.Error,
			Timeout:   labels.Timeout,
			StartPos:  labels.StartPos,
			Play:      labels.Play,
			Pause:     labels.Pause,
			Exit:      labels.Exit,
		},
		MaxTicks: streamCfg.ProgressMaxTicks,
		Timing: app.Timing{
			Poll:     connCfg.PollEvery(),
			Progress: streamCfg.ProgressEvery(),
			Elapsed:  streamCfg.ElapsedEvery(),
		},
		Engine:    eng,
		Prober:    connectivity.NewNetProber(connCfg.ProbeAddrs...),
		Notifier:  notifier,
		MediaKeys: mediaKeys,
		Published: published,
	})

	log.WithField("url", streamCfg.URL).Info("starting")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return stderr.Forward(ctx, stderr.Messages, log.StandardLogger())
	})
	g.Go(func() error {
		defer cancel()
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		final, err := p.Run()
		// Release the stream and the notification however the program ended
		if m, ok := final.(app.Model); ok {
			m.Shutdown()
		} else {
			model.Shutdown()
		}
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return err
		}
		return nil
	})

	return g.Wait()
}
