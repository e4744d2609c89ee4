package docflow

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Match documents against workflows and compute their changes"
	MsgRunShort        = "Run the workflow set against a document"
	MsgValidateShort   = "Check a workflow file for errors and likely mistakes"
	MsgExampleShort    = "Print an example workflow file"
	MsgExampleLong     = "Print a small, complete workflow file that can be used as a starting point.\n\nWith --defaults only the settings block is printed, with every value commented out."
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgValidateOK     = "%s: %d workflows, %d triggers, %d actions"
	MsgLintTitle      = "Warnings:"
	MsgExampleWritten = "Wrote %s\n"

	// Error messages
	MsgErrNoConfig   = "no workflow file found; pass --config or create docflow.toml"
	MsgErrTrigger    = "invalid --trigger value"
	MsgErrTimezone   = "invalid local timezone"
	MsgErrStrict     = "%d warnings in strict mode"
	MsgErrFileExists = "%s already exists, use --force to overwrite"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Workflow file (default: ./docflow.toml or $XDG_CONFIG_HOME/docflow/workflows.toml)"
	MsgFlagFormat   = "Output format: auto, terminal, text or json"
	MsgFlagDocument = "YAML document fixture to evaluate"
	MsgFlagTrigger  = "Trigger type: consumption, document_added or document_updated (default from the fixture)"
	MsgFlagFuzzy    = "Minimum similarity in percent for fuzzy content matching"
	MsgFlagTimezone = "IANA zone used to render dates in titles"
	MsgFlagStrict   = "Treat warnings as errors"
	MsgFlagOutput   = "Write to this file instead of stdout"
	MsgFlagForce    = "Overwrite the output file if it exists"
	MsgFlagDefaults = "Print only the commented settings defaults"
	MsgFlagManDir   = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/validate-long.txt
	msgValidateLongRaw string
	MsgValidateLong    = strings.TrimSpace(msgValidateLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
