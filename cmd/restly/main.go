package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hrygo/restly/internal/profile"
	"github.com/hrygo/restly/internal/version"
	"github.com/hrygo/restly/server"
	"github.com/hrygo/restly/store/activitylog"
)

var (
	rootCmd = &cobra.Command{
		Use:   "restly",
		Short: `Dashboard server for Restly activity logs: daily productivity and eye-health analytics with AI summaries.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// Only load .env for direct binary execution (not when running as systemd service)
			if !isRunningAsSystemdService() {
				// Try to load .env file from current directory (ignore error if file doesn't exist)
				_ = godotenv.Load()
			}
			return nil
		},
		Run: func(_ *cobra.Command, _ []string) {
			instanceProfile := &profile.Profile{
				Mode:    viper.GetString("mode"),
				Addr:    viper.GetString("addr"),
				Port:    viper.GetInt("port"),
				Data:    viper.GetString("data"),
				Version: version.GetCurrentVersion(viper.GetString("mode")),
			}
			instanceProfile.FromEnv()
			if err := instanceProfile.Validate(); err != nil {
				panic(err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			s, err := server.NewServer(ctx, instanceProfile)
			if err != nil {
				cancel()
				slog.Error("failed to create server", "error", err)
				return
			}

			c := make(chan os.Signal, 1)
			// Trigger graceful shutdown on SIGINT or SIGTERM.
			// The default signal sent by the `kill` command is SIGTERM,
			// which is taken as the graceful shutdown signal for many systems, eg., Kubernetes, Gunicorn.
			signal.Notify(c, terminationSignals...)

			if err := s.Start(ctx); err != nil {
				slog.Error("failed to start server", "error", err)
				cancel()
			}

			printGreetings(instanceProfile)

			go func() {
				<-c
				s.Shutdown(ctx)
				cancel()
			}()

			// Wait for CTRL-C.
			<-ctx.Done()
		},
	}

	logCmd = &cobra.Command{
		Use:   "log",
		Short: "Append a test event to today's activity log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			instanceProfile := &profile.Profile{
				Mode: viper.GetString("mode"),
				Data: viper.GetString("data"),
			}
			if err := instanceProfile.Validate(); err != nil {
				return err
			}

			eventType, _ := cmd.Flags().GetString("type")
			breakType, _ := cmd.Flags().GetString("break-type")
			sessionType, _ := cmd.Flags().GetString("session-type")

			event := activitylog.Event{
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				EventType: eventType,
			}
			if breakType != "" || sessionType != "" {
				event.EventData = map[string]any{}
				if breakType != "" {
					event.EventData["break_type"] = breakType
				}
				if sessionType != "" {
					event.EventData["session_type"] = sessionType
				}
			}

			appender := activitylog.NewAppender(instanceProfile.Data)
			if err := appender.Append(time.Now(), event); err != nil {
				return err
			}
			fmt.Printf("Appended %s event to %s\n", eventType, instanceProfile.Data)
			return nil
		},
	}
)

func init() {
	viper.SetDefault("mode", "dev")
	viper.SetDefault("port", 28081)

	rootCmd.PersistentFlags().String("mode", "dev", `mode of server, can be "prod" or "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of server")
	rootCmd.PersistentFlags().Int("port", 28081, "port of server")
	rootCmd.PersistentFlags().String("data", "", "config directory holding the activity log (default: the Restly client's config root)")

	if err := viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("addr", rootCmd.PersistentFlags().Lookup("addr")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data")); err != nil {
		panic(err)
	}

	logCmd.Flags().String("type", activitylog.EventBreakShown, "event type to append")
	logCmd.Flags().String("break-type", "", "break_type field of event_data")
	logCmd.Flags().String("session-type", "", "session_type field of event_data")
	rootCmd.AddCommand(logCmd)

	viper.SetEnvPrefix("restly")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
}

func printGreetings(profile *profile.Profile) {
	fmt.Printf("Restly dashboard %s started successfully!\n", profile.Version)

	if profile.IsDev() {
		fmt.Fprint(os.Stderr, "Development mode is enabled\n")
	}

	fmt.Printf("Data directory: %s\n", profile.Data)
	fmt.Printf("Mode: %s\n", profile.Mode)
	if profile.IsAIEnabled() {
		fmt.Printf("AI summaries: %s (%s)\n", profile.LLMProvider, profile.LLMModel)
	} else {
		fmt.Println("AI summaries: local template (no API key configured)")
	}

	if len(profile.Addr) == 0 {
		fmt.Printf("Server running on port %d\n", profile.Port)
		fmt.Printf("Access the dashboard at: http://localhost:%d\n", profile.Port)
	} else {
		fmt.Printf("Server running on %s:%d\n", profile.Addr, profile.Port)
		fmt.Printf("Access the dashboard at: http://%s:%d\n", profile.Addr, profile.Port)
	}

	fmt.Println("\nRemember the 20-20-20 rule!")
}

// isRunningAsSystemdService detects if the process is running under systemd
func isRunningAsSystemdService() bool {
	// Check if invoked by systemd (environment variables set by systemd)
	return os.Getenv("INVOCATION_ID") != "" || os.Getenv("WATCHDOG_USEC") != ""
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
