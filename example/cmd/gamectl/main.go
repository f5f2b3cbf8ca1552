// gamectl sends single commands and queries to the game platform and prints the result as JSON.
//
// The store and the telemetry are configured through GAME_* environment variables, see the
// config package. The default SQLite database lives in memory, so every invocation starts
// empty unless GAME_SQLITE_PATH names a file; the play operation runs a complete scenario
// within one process.
//
// Usage:
//
//	gamectl --op register --username ayla --email ayla@example.com --password Sup3rSecret
//	gamectl --op create-character --account <id> --name Brom --class warrior
//	gamectl --op add-item --character <id> --item potion --quantity 5 --property rarity=rare
//	gamectl --op move --character <id> --x 3 --y 4
//	gamectl --op account --account <id>
//	gamectl --op characters --account <id>
//	gamectl --op inventory --character <id>
//	gamectl --op play
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/AntonStoeckl/game-platform-go/example/shared/shell/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitUsage)
	}

	code := run(ctx, os.Args[1:], cfg, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
