package components

import (
	"os"

	"courtbook/internal/handler/cli"
	"courtbook/internal/infra/httpclient"
	"courtbook/internal/usecase/session"

	"go.uber.org/fx"
)

var CLIModule = fx.Module("cli",
	fx.Provide(
		fx.Annotate(
			func() *cli.LoginPrompt { return cli.NewLoginPrompt(os.Stderr) },
			fx.As(new(httpclient.Navigator)),
		),
		func(m *session.Manager) cli.SessionService { return m },
		func() cli.IO {
			return cli.IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
		},
		cli.NewApp,
	),
)
