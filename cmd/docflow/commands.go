package docflow

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/docflow/internal/version"
	"github.com/arthur-debert/docflow/pkg/cobrax/topics"
	"github.com/arthur-debert/docflow/pkg/config"
	"github.com/arthur-debert/docflow/pkg/core"
	"github.com/arthur-debert/docflow/pkg/display"
	"github.com/arthur-debert/docflow/pkg/errors"
	"github.com/arthur-debert/docflow/pkg/logging"
	"github.com/arthur-debert/docflow/pkg/permissions"
	"github.com/arthur-debert/docflow/pkg/types"
	"github.com/arthur-debert/docflow/pkg/ui"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "docflow",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringP("config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringP("format", "f", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newExampleCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	opts := topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, TopicsFS(), opts); err != nil {
		log.Warn().Err(err).Msg("help topics unavailable")
	}

	return rootCmd
}

// loadConfig resolves the workflow file from --config or the standard
// locations and loads it with flag overrides applied.
func loadConfig(cmd *cobra.Command, overrides map[string]interface{}) (*config.Config, string, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			return nil, "", errors.Wrap(err, errors.ErrNotFound, MsgErrNoConfig)
		}
		path = found
	}

	if format, _ := cmd.Flags().GetString("format"); format != "" {
		if overrides == nil {
			overrides = map[string]interface{}{}
		}
		overrides["settings.output_format"] = format
	}

	cfg, err := config.LoadWithOverrides(path, overrides)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// newRenderer builds the renderer for the configured output format
func newRenderer(cmd *cobra.Command, cfg *config.Config) (ui.Renderer, error) {
	name := ""
	if cfg != nil {
		name = cfg.Settings.OutputFormat
	}
	if flag, _ := cmd.Flags().GetString("format"); flag != "" {
		name = flag
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run --document <fixture.yaml>",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			defer logging.LogDuration(start, "run")

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("fuzzy-threshold") {
				v, _ := cmd.Flags().GetInt("fuzzy-threshold")
				overrides["settings.fuzzy_threshold"] = v
			}
			if cmd.Flags().Changed("timezone") {
				v, _ := cmd.Flags().GetString("timezone")
				overrides["settings.local_timezone"] = v
			}

			cfg, path, err := loadConfig(cmd, overrides)
			if err != nil {
				return err
			}

			docPath, _ := cmd.Flags().GetString("document")
			fixture, err := config.LoadFixture(docPath)
			if err != nil {
				return err
			}

			tt := fixture.TriggerType()
			if name, _ := cmd.Flags().GetString("trigger"); name != "" {
				tt, err = types.ParseTriggerType(name)
				if err != nil {
					return errors.Wrap(err, errors.ErrTriggerType, MsgErrTrigger)
				}
			}

			names, err := cfg.Names()
			if err != nil {
				return err
			}
			loc, err := cfg.Settings.Location()
			if err != nil {
				return errors.Wrap(err, errors.ErrConfigValid, MsgErrTimezone)
			}

			mctx := fixture.MatchContext(time.Now())
			grants := permissions.NewStore()
			grants.Set(mctx.Document.ID, fixture.CurrentPermissions())

			log.Info().
				Str("config", path).
				Str("document", docPath).
				Stringer("trigger", tt).
				Msg("Running workflows")

			workflows := cfg.WorkflowSet()
			ms, decisions, err := core.Run(workflows, tt, mctx, core.Options{
				Names:          names,
				Permissions:    grants,
				FuzzyThreshold: cfg.Settings.FuzzyThreshold,
				Location:       loc,
			})
			if err != nil {
				return err
			}
			if ms != nil && len(ms.Workflows) > 0 {
				grants.Apply(mctx.Document.ID, ms)
			}

			renderer, err := newRenderer(cmd, cfg)
			if err != nil {
				return err
			}
			report := display.NewConverter(names).Convert(tt, mctx.Document, workflows, ms, decisions)
			return renderer.RenderReport(&report)
		},
	}

	cmd.Flags().StringP("document", "d", "", MsgFlagDocument)
	cmd.Flags().StringP("trigger", "t", "", MsgFlagTrigger)
	cmd.Flags().Int("fuzzy-threshold", 0, MsgFlagFuzzy)
	cmd.Flags().String("timezone", "", MsgFlagTimezone)
	_ = cmd.MarkFlagRequired("document")
	_ = cmd.RegisterFlagCompletionFunc("trigger", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"consumption", "document_added", "document_updated"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, cfg)
			if err != nil {
				return err
			}

			triggers, actions := 0, 0
			for _, wf := range cfg.Workflows {
				triggers += len(wf.Triggers)
				actions += len(wf.Actions)
			}
			if err := renderer.RenderMessage(fmt.Sprintf(MsgValidateOK, path, len(cfg.Workflows), triggers, actions)); err != nil {
				return err
			}

			warnings := cfg.Lint()
			if len(warnings) == 0 {
				return nil
			}
			if err := renderer.RenderList(MsgLintTitle, warnings); err != nil {
				return err
			}
			if strict, _ := cmd.Flags().GetBool("strict"); strict {
				return errors.Newf(errors.ErrConfigValid, MsgErrStrict, len(warnings))
			}
			return nil
		},
	}

	cmd.Flags().Bool("strict", false, MsgFlagStrict)
	return cmd
}

func newExampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "example",
		Short:   MsgExampleShort,
		Long:    MsgExampleLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateDefaults()
			if defaultsOnly, _ := cmd.Flags().GetBool("defaults"); !defaultsOnly {
				var err error
				content, err = config.GenerateExample()
				if err != nil {
					return err
				}
			}

			out, _ := cmd.Flags().GetString("output")
			if out == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(out); err == nil && !force {
				return errors.Newf(errors.ErrAlreadyExists, MsgErrFileExists, out).WithDetail("path", out)
			}
			if err := os.WriteFile(out, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", out)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgExampleWritten, out)
			return err
		},
	}

	cmd.Flags().StringP("output", "o", "", MsgFlagOutput)
	cmd.Flags().Bool("force", false, MsgFlagForce)
	cmd.Flags().Bool("defaults", false, MsgFlagDefaults)
	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.SetOut(cmd.OutOrStdout())
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "docflow version %s\n", version.Version)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			_, _ = fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// ManHeader is the header shared by generated man pages
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "DOCFLOW",
		Section: "1",
		Source:  "docflow " + version.Version,
		Manual:  "docflow manual",
	}
}

func newManCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot create %s", dir)
			}
			return doc.GenManTree(cmd.Root(), ManHeader(), dir)
		},
	}
	cmd.Flags().String("dir", ".", MsgFlagManDir)
	return cmd
}
