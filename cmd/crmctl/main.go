// Command crmctl runs administrative tasks against the CRM database:
// applying migrations, creating operator accounts and recomputing derived
// statistics.
//
//	crmctl migrate
//	crmctl create-user -email ops@example.com -password secret123 -name Ops
//	crmctl recompute [-only campaigns|rates|scores]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	authProcessor "github.com/rekarton-ge/client-crm/internal/auth/processor"
	"github.com/rekarton-ge/client-crm/internal/bootstrap"
	"github.com/rekarton-ge/client-crm/internal/config"
	"github.com/rekarton-ge/client-crm/internal/observability"
)

const usage = `usage: crmctl <command> [flags]

commands:
  migrate       apply pending database migrations
  create-user   create an operator account
  recompute     recompute campaign statistics, analytics rates and engagement scores
`

var errUsage = errors.New("invalid usage")

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "crmctl: %s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	// crmctl never rate limits
	cfg.Redis.Addr = ""

	logger := observability.NewLogger()
	if cfg.Log.File != "" {
		logger = observability.NewFileLogger(cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups)
	}
	defer func() { _ = logger.Sync() }()

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Cleanup()

	switch command {
	case "migrate":
		return migrate(ctx, deps)
	case "create-user":
		return createUser(ctx, deps, args)
	case "recompute":
		return recompute(ctx, deps, args)
	default:
		return errUsage
	}
}

func migrate(ctx context.Context, deps *bootstrap.Dependencies) error {
	applied, err := deps.Store.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if len(applied) == 0 {
		fmt.Println("database is up to date")
		return nil
	}
	for _, name := range applied {
		fmt.Printf("applied %s\n", name)
	}
	return nil
}

func createUser(ctx context.Context, deps *bootstrap.Dependencies, args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	email := fs.String("email", "", "operator email")
	password := fs.String("password", "", "operator password, at least 8 characters")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("-email and -password are required")
	}
	if len(*password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	user, err := deps.AuthProcessor.CreateUser(ctx, *email, *password, *name)
	if err != nil {
		if errors.Is(err, authProcessor.ErrEmailAlreadyExists) {
			return fmt.Errorf("an operator with email %s already exists", *email)
		}
		return err
	}
	fmt.Printf("created operator %s (%s)\n", user.Email, user.ID)
	return nil
}

func recompute(ctx context.Context, deps *bootstrap.Dependencies, args []string) error {
	fs := flag.NewFlagSet("recompute", flag.ContinueOnError)
	only := fs.String("only", "", "campaigns, rates or scores; empty recomputes everything")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	steps := []struct {
		name string
		fn   func(context.Context) (int, error)
	}{
		{"campaigns", deps.CampaignProcessor.UpdateAllStatistics},
		{"rates", deps.AnalyticsProcessor.RecalculateAllRates},
		{"scores", deps.AnalyticsProcessor.CalculateAllScores},
	}

	ran := false
	for _, step := range steps {
		if *only != "" && *only != step.name {
			continue
		}
		ran = true
		n, err := step.fn(ctx)
		if err != nil {
			return fmt.Errorf("recompute %s: %w", step.name, err)
		}
		fmt.Printf("recomputed %s: %d rows\n", step.name, n)
	}
	if !ran {
		return fmt.Errorf("unknown -only value %q", *only)
	}
	return nil
}
