package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"
)

// RulesFlags contains flags for the rules command
type RulesFlags struct {
	Format string
	Config string
}

// ruleInfo is the structured form of one listed rule.
type ruleInfo struct {
	Name        string `json:"name" yaml:"name"`
	Kind        string `json:"kind" yaml:"kind"`
	Severity    string `json:"severity" yaml:"severity"`
	Description string `json:"description" yaml:"description"`
}

// SetupRulesFlags creates and configures a FlagSet for the rules command.
func SetupRulesFlags() (*flag.FlagSet, *RulesFlags) {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	flags := &RulesFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Config, "config", "", "show the rules a configuration file selects")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaslint rules [flags]\n\n")
		Writef(fs.Output(), "List the lint rules in run order.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	return fs, flags
}

// HandleRules executes the rules command
func HandleRules(args []string) error {
	fs, flags := SetupRulesFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("rules command takes no arguments")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	rs, err := BuildRuleSet("", flags.Config)
	if err != nil {
		return err
	}

	infos := make([]ruleInfo, 0, rs.Len())
	for _, r := range rs.Rules() {
		infos = append(infos, ruleInfo{
			Name:        r.Name,
			Kind:        r.Kind.String(),
			Severity:    r.Severity.String(),
			Description: r.Description,
		})
	}

	if flags.Format != FormatText {
		return OutputStructured(Stdout, infos, flags.Format)
	}

	tw := tabwriter.NewWriter(Stdout, 0, 0, 2, ' ', 0)
	Writef(tw, "NAME\tKIND\tSEVERITY\tDESCRIPTION\n")
	for _, info := range infos {
		Writef(tw, "%s\t%s\t%s\t%s\n", info.Name, info.Kind, info.Severity, info.Description)
	}
	return tw.Flush()
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
