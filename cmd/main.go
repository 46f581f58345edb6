package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"courtbook/cmd/bootstrap"
	"courtbook/internal/handler/cli"

	"go.uber.org/fx"
)

// runCommand executes the requested command once fx has started and shuts
// the application down with the command's exit code.
func runCommand(lc fx.Lifecycle, shutdowner fx.Shutdowner, app *cli.App, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				code := app.Run(ctx, os.Args[1:])
				if err := shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
					logger.Error("shutdown failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.WithLogger(bootstrap.FxLogger),
		fx.Invoke(runCommand),
	)

	if err := app.Start(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "courtbook:", err)
		os.Exit(cli.ExitFailure)
	}

	sig := <-app.Wait()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop cleanly", "error", err)
	}

	os.Exit(sig.ExitCode)
}
