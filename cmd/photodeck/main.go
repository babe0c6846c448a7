// Command photodeck is the terminal front end of the PhotoDeck platform:
// sign in, pick a tenant, upload images, trigger processing and follow task
// status. It is a thin consumer of the session manager and API client; all
// actual image processing happens in the backend.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/photodeck/photodeck-go/cmd/photodeck/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "photodeck:", err)
		os.Exit(1)
	}
}
