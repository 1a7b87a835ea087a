// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/microsoft/foundry-agent-samples/go/config"
	"github.com/microsoft/foundry-agent-samples/go/deploy"
	"github.com/microsoft/foundry-agent-samples/go/foundry"
)

// defaultDefinitions is used when no definitions file is given.
const defaultDefinitions = "agents.yaml"

// Command is a deployagent subcommand.
type Command interface {
	Name() string
	Description() string
	// Setup registers command-specific flags.
	Setup(fs *flag.FlagSet)
	Run(env *Env, args []string) error
}

// Env is what a command runs against.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// ConfigDir holds appsettings.json and .env.
	ConfigDir string

	// NewService connects to the agent service. Replaced in tests.
	NewService func(cfg *config.Config) (deploy.AgentService, error)
}

func newEnv() *Env {
	return &Env{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Logger:     slog.Default(),
		ConfigDir:  ".",
		NewService: newFoundryService,
	}
}

// newFoundryService prefers an API key and falls back to Entra ID.
func newFoundryService(cfg *config.Config) (deploy.AgentService, error) {
	var opts []foundry.Option
	if cfg.APIVersion != "" {
		opts = append(opts, foundry.WithAPIVersion(cfg.APIVersion))
	}
	if cfg.APIKey != "" {
		opts = append(opts, foundry.WithAPIKey(cfg.APIKey))
	} else {
		cred, err := cfg.Credential()
		if err != nil {
			return nil, err
		}
		opts = append(opts, foundry.WithCredential(cred))
	}
	return foundry.New(cfg.ProjectEndpoint, opts...), nil
}

// Registry holds commands in registration order.
type Registry struct {
	commands map[string]Command
	order    []string
}

func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command)}
	for _, cmd := range cmds {
		r.Register(cmd)
	}
	return r
}

// Register adds cmd, replacing any command with the same name.
func (r *Registry) Register(cmd Command) {
	name := cmd.Name()
	if _, exists := r.commands[name]; !exists {
		r.order = append(r.order, name)
	}
	r.commands[name] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// PrintHelp writes usage for every registered command.
func (r *Registry) PrintHelp(w io.Writer) {
	fmt.Fprintln(w, "deployagent - deploy agent definitions to Azure AI Foundry")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "    deployagent <command> [flags] [definitions.yaml]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "COMMANDS:")
	for _, name := range r.order {
		fmt.Fprintf(w, "    %-10s %s\n", name, r.commands[name].Description())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "ENVIRONMENT:")
	fmt.Fprintf(w, "    %-20s Foundry project endpoint (or ProjectEndpoint in %s)\n", config.EnvProjectEndpoint, config.SettingsFile)
	fmt.Fprintf(w, "    %-20s Entra ID tenant (or TenantId)\n", config.EnvTenantID)
	fmt.Fprintf(w, "    %-20s API key; Entra ID is used when unset\n", config.EnvAPIKey)
	fmt.Fprintf(w, "    %-20s enable debug logging\n", "DEBUG")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use \"deployagent <command> -h\" for command flags.")
}

// Run dispatches args[0] to its command. A nil error means success.
func (r *Registry) Run(env *Env, args []string) error {
	if len(args) == 0 {
		r.PrintHelp(env.Stdout)
		return nil
	}
	switch args[0] {
	case "help", "-h", "--help":
		r.PrintHelp(env.Stdout)
		return nil
	}

	cmd, ok := r.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown command: %s\nRun 'deployagent help' for usage", args[0])
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.StringVar(&env.ConfigDir, "config", env.ConfigDir, "directory containing "+config.SettingsFile+" and "+config.EnvFile)
	debug := fs.Bool("debug", false, "enable debug logging")
	cmd.Setup(fs)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if *debug {
		env.Logger = slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return cmd.Run(env, fs.Args())
}

// definitionsPath returns the single positional argument or the default.
func definitionsPath(args []string) (string, error) {
	switch len(args) {
	case 0:
		return defaultDefinitions, nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("expected one definitions file, got %d: %s", len(args), strings.Join(args, " "))
	}
}

// placeholderFlag collects repeated -set key=value flags.
type placeholderFlag map[string]string

func (p placeholderFlag) String() string {
	pairs := make([]string, 0, len(p))
	for k, v := range p {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (p placeholderFlag) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("invalid placeholder %q, want key=value", s)
	}
	p[key] = value
	return nil
}
