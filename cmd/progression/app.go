package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/metrics"
	orchestrator "github.com/KirkDiggler/rpg-progression/internal/orchestrators/progression"
	"github.com/KirkDiggler/rpg-progression/internal/redis"
	character "github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	"github.com/KirkDiggler/rpg-progression/internal/services/progression"
)

// app is the wiring shared by every command
type app struct {
	registry    *catalog.Registry
	service     progression.Service
	characters  character.Repository
	metrics     *metrics.Recorder
	out         io.Writer
	metricsFile string
	closers     []func() error
}

// newApp loads the catalogs and opens the character store. choices may be
// nil for commands that never run a grant.
func newApp(cmd *cobra.Command, choices progression.ChoicePort) (*app, error) {
	ctx := cmd.Context()
	a := &app{
		metrics:     metrics.New(),
		out:         cmd.OutOrStdout(),
		metricsFile: settings.GetString(keyMetricsFile),
	}

	source, err := catalog.NewFile(&catalog.FileConfig{Dir: settings.GetString(keyCatalogDir)})
	if err != nil {
		return nil, err
	}
	registry, err := catalog.LoadRegistry(ctx, &catalog.LoadRegistryInput{Source: source})
	if err != nil {
		if registry == nil {
			return nil, err
		}
		// missing catalogs load empty
		slog.WarnContext(ctx, "some catalogs failed to load", "error", err.Error())
	}
	a.registry = registry

	a.characters, err = a.openStore()
	if err != nil {
		return nil, err
	}

	e, err := engine.New(nil)
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()
	bus.SubscribeFunc(orchestrator.EventCatalogUnlocked, 0, func(_ context.Context, ev events.Event) error {
		name := ev.Target().GetID()
		if c, ok := a.registry.Get(name); ok && c.Name() != "" {
			name = c.Name()
		}
		_, _ = fmt.Fprintf(a.out, "Unlocked %s\n", name)
		return nil
	})

	a.service, err = orchestrator.New(&orchestrator.Config{
		Engine:   e,
		Registry: registry,
		Choices:  choices,
		EventBus: bus,
		Metrics:  a.metrics,
	})
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) openStore() (character.Repository, error) {
	if settings.GetString(keyStore) == storeRedis {
		client, err := redis.Connect(settings.GetString(keyRedisAddr), nil)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		return character.NewRedis(&character.RedisConfig{Client: client})
	}
	return character.NewFile(&character.FileConfig{Dir: settings.GetString(keyDataDir)})
}

// Close flushes the metrics file and releases the store
func (a *app) Close(ctx context.Context) {
	if a.metricsFile != "" {
		if err := a.metrics.WriteToTextfile(a.metricsFile); err != nil {
			slog.WarnContext(ctx, "failed to write metrics", "path", a.metricsFile, "error", err.Error())
		}
	}
	for _, c := range a.closers {
		_ = c()
	}
}

func (a *app) load(ctx context.Context, id string) (*entities.CharacterState, error) {
	out, err := a.characters.Get(ctx, character.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Character, nil
}

func (a *app) save(ctx context.Context, char *entities.CharacterState) error {
	_, err := a.characters.Save(ctx, character.SaveInput{Character: char})
	return err
}

// runGrant runs the free grant of a class and prints the result
func (a *app) runGrant(ctx context.Context, char *entities.CharacterState, class entities.ClassTag) error {
	out, err := a.service.RunGrant(ctx, &progression.RunGrantInput{Character: char, Class: class})
	if err != nil {
		return err
	}
	if out.Skipped {
		_, _ = fmt.Fprintf(a.out, "No free %s grant available\n", class)
		return nil
	}
	for _, id := range out.Granted {
		_, _ = fmt.Fprintf(a.out, "Granted %s\n", a.displayName(id))
	}
	return nil
}

func (a *app) displayName(abilityID string) string {
	if r, _, ok := a.registry.Lookup(abilityID); ok && r.Name != "" {
		return r.Name
	}
	return abilityID
}
