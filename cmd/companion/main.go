package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/leohylee/tes-companion/internal/clients/companion"
	"github.com/leohylee/tes-companion/internal/config"
	"github.com/leohylee/tes-companion/internal/events"
)

const usage = `usage: companion [-api URL] [-user ID] [-v] <command> [args]

commands:
  maps
  characters list
  characters create <name> <race> <class> [skill...]
  characters skill-add <id> <skill>
  characters skill-remove <id> <skill>
  characters master <id>
  characters delete <id>
  campaigns list
  campaigns create <characterId>...
  campaigns show <id>
  campaigns day <id> <+n|-n>
  campaigns xp <id> <+n|-n>
  campaigns hp <id> <characterId> <+n|-n>
  campaigns map <id> <mapId|none>
  campaigns token <id> <icon> [label]
  campaigns drag <id> <tokenId> <dx> <dy>
  campaigns marker <id> <type> <x> <y> [label]
  campaigns unmark <id> <markerId>
  campaigns delete <id>
  overland show
  overland map <mapId>
  overland day <next|prev>
  overland token <icon> [label]
  overland drag <tokenId> <dx> <dy>
  overland marker <type> <x> <y> [label]
`

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	apiURL := flag.String("api", cfg.Client.APIURL, "companion API base URL")
	user := flag.String("user", cfg.Client.User, "account id sent with every request")
	verbose := flag.Bool("v", false, "log store events")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	client, err := companion.New(&companion.Config{
		BaseURL:    *apiURL,
		User:       *user,
		HTTPClient: &http.Client{Timeout: cfg.Client.Timeout},
	})
	if err != nil {
		log.Fatalf("Failed to create API client: %v", err)
	}

	bus := events.NewBus()
	if *verbose {
		bus.SubscribeAll(events.NewListener("cli-log", events.PriorityNotify, func(e events.Event) error {
			if se, ok := e.(*events.StoreEvent); ok {
				log.Printf("%s: %s %s %s", se.Store, se.Type, se.Operation, se.EntityID)
			}
			return nil
		}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &app{client: client, bus: bus, out: os.Stdout}
	if err := app.run(ctx, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
