package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"selectauto/internal/config"
	"selectauto/internal/domain"
	"selectauto/internal/eventbus"
	"selectauto/internal/form"
	"selectauto/internal/source"
	"selectauto/internal/ui"
	"selectauto/internal/widget"
)

type options struct {
	configPath  string
	optionsFile string
	watch       bool
	single      bool
	labelCount  int
	filter      string
	label       string
	placeholder string
	presets     []string
	required    bool
	printConfig bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "selectauto",
		Short:         "Pick values from a searchable list",
		Long:          "selectauto shows a searchable dropdown over the options in a YAML or JSON file and prints the selected values, one per line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default: user config dir)")
	flags.StringVarP(&opts.optionsFile, "options", "o", "", "YAML or JSON file with the options")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "Reload the options file when it changes")
	flags.BoolVar(&opts.single, "single", false, "Single-select mode")
	flags.IntVar(&opts.labelCount, "label-count", 1, "Selected labels shown before the (+N others) suffix")
	flags.StringVar(&opts.filter, "filter", "", "Filtering: delegate, local or fuzzy")
	flags.StringVar(&opts.label, "label", "", "Field label")
	flags.StringVar(&opts.placeholder, "placeholder", "", "Text shown while nothing is selected")
	flags.StringArrayVar(&opts.presets, "preset", nil, "Preselected value (repeatable)")
	flags.BoolVar(&opts.required, "required", false, "Fail when nothing is selected")
	flags.BoolVar(&opts.printConfig, "print-config", false, "Print the effective configuration and exit")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	// Set up logging
	logFile, err := os.OpenFile("selectauto.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := loadConfig(configSvc, opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, opts)

	if opts.printConfig {
		data, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if cfg.Source.OptionsFile == "" {
		return errors.New("no options file: pass --options or set source.options_file")
	}

	inputs, err := cfg.Inputs()
	if err != nil {
		return err
	}

	var validators []form.Validator
	if cfg.Widget.Required {
		validators = append(validators, form.Required)
	}
	ctrl := form.New(form.WithValidators(validators...))

	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRequestedEvent); ok {
			log.Printf("Search requested: %q", event.Text)
		}
	})
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionChangedEvent); ok {
			log.Printf("Selection changed: %v", event.Selection.Payload())
		}
	})

	w := widget.New(inputs, widget.BusOutputs(bus), ctrl)
	model := ui.NewModel(w)

	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	// The UI goes to stderr so stdout only carries the result
	p := tea.NewProgram(model, tea.WithContext(runCtx), tea.WithOutput(cmd.ErrOrStderr()))
	model.SetProgram(p)

	stream := make(chan []*domain.Option)
	file := source.File{Path: cfg.Source.OptionsFile, Watch: cfg.Source.Watch}
	g.Go(func() error {
		defer close(stream)
		if err := file.Run(runCtx, stream); err != nil {
			bus.Publish(eventbus.ErrorEvent{Message: "options source failed", Err: err})
			return err
		}
		return nil
	})

	send := ui.Deliver(p)
	w.Subscribe(runCtx, stream, func(batch []*domain.Option) {
		bus.Publish(eventbus.OptionsReceivedEvent{Source: file.Path, Count: len(batch)})
		send(batch)
	})
	defer w.Destroy()

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			log.Printf("Error running program: %v", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := ctrl.Validate(); err != nil {
		return fmt.Errorf("selection rejected: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, v := range model.Result().Items() {
		fmt.Fprintln(out, v)
	}
	return nil
}

func loadConfig(svc config.ConfigService, path string) (*config.Config, error) {
	if path != "" {
		return svc.LoadFromPath(path)
	}
	return svc.Load()
}

// applyFlags lets explicitly set flags override the config file
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *options) {
	flags := cmd.Flags()
	if flags.Changed("options") {
		cfg.Source.OptionsFile = opts.optionsFile
	}
	if flags.Changed("watch") {
		cfg.Source.Watch = opts.watch
	}
	if flags.Changed("single") {
		cfg.Widget.Multiple = !opts.single
	}
	if flags.Changed("label-count") {
		cfg.Widget.LabelCount = opts.labelCount
	}
	if flags.Changed("filter") {
		cfg.Widget.Filter = opts.filter
	}
	if flags.Changed("label") {
		cfg.Widget.FieldLabel = opts.label
	}
	if flags.Changed("placeholder") {
		cfg.Widget.Placeholder = opts.placeholder
	}
	if flags.Changed("preset") {
		cfg.Widget.SelectedOptions = make([]any, 0, len(opts.presets))
		for _, v := range opts.presets {
			cfg.Widget.SelectedOptions = append(cfg.Widget.SelectedOptions, v)
		}
	}
	if flags.Changed("required") {
		cfg.Widget.Required = opts.required
	}
}
