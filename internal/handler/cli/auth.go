package cli

import (
	"context"
	"fmt"

	"courtbook/internal/usecase/session"
)

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.flags("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when omitted)")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	if *email == "" {
		v, err := a.prompt("Email")
		if err != nil {
			return err
		}
		*email = v
	}
	if *password == "" {
		v, err := a.prompt("Password")
		if err != nil {
			return err
		}
		*password = v
	}

	u, err := a.session.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s (%s)\n", u.DisplayName(), u.Email)
	return nil
}

func (a *App) logout(_ context.Context, args []string) error {
	fs := a.flags("logout")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	a.session.Logout()
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.flags("register")
	var in session.RegisterInput
	fs.StringVar(&in.Email, "email", "", "account email")
	fs.StringVar(&in.Password, "password", "", "password, at least 8 characters")
	fs.StringVar(&in.ConfirmPassword, "confirm", "", "password confirmation (prompted when omitted)")
	fs.StringVar(&in.Name, "name", "", "display name")
	fs.StringVar(&in.Phone, "phone", "", "phone number")
	fs.StringVar(&in.Role, "role", "", "USER, ADMIN or CLUB_OWNER")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if in.Password == "" {
		v, err := a.prompt("Password")
		if err != nil {
			return err
		}
		in.Password = v
	}
	if in.ConfirmPassword == "" {
		v, err := a.prompt("Confirm password")
		if err != nil {
			return err
		}
		in.ConfirmPassword = v
	}

	u, err := a.session.Register(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Account created for %s\n", u.Email)

	snap := a.session.Snapshot()
	if snap.IsAuthenticated {
		fmt.Fprintf(a.out, "Signed in as %s\n", snap.User.DisplayName())
	} else {
		fmt.Fprintln(a.out, "Run `courtbook login` to sign in")
	}
	return nil
}

func (a *App) whoami(_ context.Context, args []string) error {
	fs := a.flags("whoami")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	snap := a.session.Snapshot()
	if !snap.IsAuthenticated {
		if snap.Error != "" {
			fmt.Fprintln(a.errOut, snap.Error)
		}
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	u := snap.User
	fmt.Fprintf(a.out, "%s <%s>\n", u.DisplayName(), u.Email)
	fmt.Fprintf(a.out, "id:   %s\n", u.ID)
	fmt.Fprintf(a.out, "role: %s\n", u.Role)
	if u.Phone != "" {
		fmt.Fprintf(a.out, "phone: %s\n", u.Phone)
	}
	return nil
}
