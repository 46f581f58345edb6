package cli

import (
	"fmt"
	"io"
	"sync"
)

// LoginPrompt stands in for a redirect to the login page: it tells the user to
// log in again and remembers where they were.
type LoginPrompt struct {
	mu       sync.Mutex
	w        io.Writer
	returnTo string
}

func NewLoginPrompt(w io.Writer) *LoginPrompt {
	return &LoginPrompt{w: w}
}

func (p *LoginPrompt) RedirectToLogin(returnTo string) {
	p.mu.Lock()
	p.returnTo = returnTo
	p.mu.Unlock()

	if returnTo == "" {
		fmt.Fprintln(p.w, "Your session has ended. Run `courtbook login` to sign in again.")
		return
	}
	fmt.Fprintf(p.w, "Your session has ended. Run `courtbook login` to sign in again, then return to %s\n", returnTo)
}

// ReturnTo is the location recorded by the last redirect.
func (p *LoginPrompt) ReturnTo() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.returnTo
}
