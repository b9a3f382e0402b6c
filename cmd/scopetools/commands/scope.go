package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/scopetools"
	"github.com/erraggy/scopetools/merger"
	"github.com/erraggy/scopetools/scoper"
)

// ScopeFlags contains flags for the scope command
type ScopeFlags struct {
	Config string
	Role   string
	Master string
	Deps   string
	Output string
	Quiet  bool
}

// scopingConfig is the on-disk shape of the scoping configuration file:
// a feature table naming which operation ids each feature exposes, and a
// role table naming which features each role is granted.
type scopingConfig struct {
	Features map[string]struct {
		OperationIDs []string `yaml:"operationIds"`
	} `yaml:"features"`
	Roles map[string][]string `yaml:"roles"`
}

// SetupScopeFlags creates and configures a FlagSet for the scope command.
// Returns the FlagSet and a ScopeFlags struct with bound flag variables.
func SetupScopeFlags() (*flag.FlagSet, *ScopeFlags) {
	fs := flag.NewFlagSet("scope", flag.ContinueOnError)
	flags := &ScopeFlags{}

	fs.StringVar(&flags.Config, "config", "", "scoping configuration file with feature and role tables (required)")
	fs.StringVar(&flags.Role, "role", "", "output this role's scoped document (default: summarize all roles)")
	fs.StringVar(&flags.Master, "master", "", "pre-merged master document; replaces skeleton and service arguments")
	fs.StringVar(&flags.Deps, "deps", "", "dependency table file for --master, mapping operation ids to direct dependency ids")
	fs.StringVar(&flags.Output, "o", "", "output file path for the role's document (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path for the role's document (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages (for pipelining)")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages (for pipelining)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: scopetools scope --config <config> [flags] <skeleton> <service1> [service2...]\n\n")
		Writef(output, "Derive role-scoped documents from merged service documents.\n\n")
		Writef(output, "Each role's document keeps only the operations granted through its\n")
		Writef(output, "features, paths that still have operations, definitions reachable from\n")
		Writef(output, "surviving operations, and rebuilt tags.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nConfiguration File:\n")
		Writef(output, "  features:\n")
		Writef(output, "    account-management:\n")
		Writef(output, "      operationIds: [listAccounts, getAccount]\n")
		Writef(output, "    payments:\n")
		Writef(output, "      operationIds: [payInvoice]\n")
		Writef(output, "  roles:\n")
		Writef(output, "    viewer: [account-management]\n")
		Writef(output, "    cashier: [account-management, payments]\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  scopetools scope --config scoping.yaml skeleton.yaml users.yaml billing.yaml\n")
		Writef(output, "  scopetools scope --config scoping.yaml --role viewer -o viewer.yaml skeleton.yaml users.yaml\n")
		Writef(output, "  scopetools scope --config scoping.yaml --master master.yaml --role cashier\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Without --role, a summary of every configured role is printed\n")
		Writef(output, "  - Roles referencing unknown features produce warnings, not errors\n")
		Writef(output, "  - When -o is specified, the file is written with restrictive permissions (0600)\n")
	}

	return fs, flags
}

// HandleScope executes the scope command
func HandleScope(args []string) error {
	fs, flags := SetupScopeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Config == "" {
		fs.Usage()
		return fmt.Errorf("scope command requires --config")
	}

	config, err := loadScopingConfig(flags.Config)
	if err != nil {
		return err
	}

	opts := []scoper.Option{
		scoper.WithFeatures(configFeatures(config)),
		scoper.WithRoles(config.Roles),
	}

	var inputPaths []string
	if flags.Master != "" {
		if fs.NArg() > 0 {
			return fmt.Errorf("scope command accepts either --master or skeleton and service arguments, not both")
		}
		opts = append(opts, scoper.WithMasterOverrideFile(flags.Master))
		if flags.Deps != "" {
			table, err := loadDependencyTable(flags.Deps)
			if err != nil {
				return err
			}
			opts = append(opts, scoper.WithDependencies(table))
		}
		inputPaths = []string{flags.Master}
	} else {
		if flags.Deps != "" {
			return fmt.Errorf("--deps requires --master; merged documents carry their own dependency table")
		}
		if fs.NArg() < 2 {
			fs.Usage()
			return fmt.Errorf("scope command requires a skeleton and at least 1 service file (or --master)")
		}
		opts = append(opts,
			scoper.WithSkeletonFile(fs.Arg(0)),
			scoper.WithServiceFiles(fs.Args()[1:]...),
		)
		inputPaths = fs.Args()
	}

	if flags.Output != "" {
		if flags.Role == "" {
			return fmt.Errorf("--output requires --role: only a single role's document can be written")
		}
		if err := ValidateOutputPath(flags.Output, append(inputPaths, flags.Config)); err != nil {
			return err
		}
	}

	startTime := time.Now()
	s, err := scoper.New(opts...)
	if err != nil {
		return fmt.Errorf("building role documents: %w", err)
	}
	totalTime := time.Since(startTime)

	if !flags.Quiet {
		Writef(os.Stderr, "Role Document Scoper\n")
		Writef(os.Stderr, "====================\n\n")
		Writef(os.Stderr, "scopetools version: %s\n", scopetools.Version())
		Writef(os.Stderr, "Master Version: %s\n", s.Master().Info.Version)
		Writef(os.Stderr, "Roles built: %d\n", len(s.Roles()))
		Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

		if warnings := s.Warnings(); len(warnings) > 0 {
			Writef(os.Stderr, "Warnings (%d):\n", len(warnings))
			for _, warning := range warnings {
				Writef(os.Stderr, "  - %s\n", warning)
			}
			Writef(os.Stderr, "\n")
		}
	}

	if flags.Role == "" {
		return renderRoleSummaries(s)
	}

	doc, ok := s.Spec(flags.Role)
	if !ok {
		return fmt.Errorf("unknown role %q; built roles: %v", flags.Role, s.Roles())
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling role document: %w", err)
	}

	if flags.Output != "" {
		if err := RejectSymlinkOutput(flags.Output); err != nil {
			return err
		}
		if err := os.WriteFile(flags.Output, data, 0o600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			Writef(os.Stderr, "Output written to: %s\n", flags.Output)
		}
		return nil
	}

	if _, err = os.Stdout.Write(data); err != nil {
		return fmt.Errorf("writing role document to stdout: %w", err)
	}
	return nil
}

// loadScopingConfig reads and validates the scoping configuration file.
func loadScopingConfig(path string) (*scopingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scoping config: %w", err)
	}

	var config scopingConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing scoping config %s: %w", path, err)
	}
	if len(config.Roles) == 0 {
		return nil, fmt.Errorf("scoping config %s defines no roles", path)
	}
	return &config, nil
}

// loadDependencyTable reads a dependency table file: a YAML map from
// operation id to the list of operation ids it directly depends on.
func loadDependencyTable(path string) (merger.DependencyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dependency table: %w", err)
	}

	var table merger.DependencyTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing dependency table %s: %w", path, err)
	}
	return table, nil
}

// configFeatures converts the on-disk feature table to the scoper's form.
func configFeatures(config *scopingConfig) map[string]scoper.Feature {
	features := make(map[string]scoper.Feature, len(config.Features))
	for id, f := range config.Features {
		features[id] = scoper.Feature{OperationIDs: f.OperationIDs}
	}
	return features
}

// renderRoleSummaries prints a per-role summary table to stdout.
func renderRoleSummaries(s *scoper.Scoper) error {
	for _, roleID := range s.Roles() {
		doc, _ := s.Spec(roleID)
		Writef(os.Stdout, "%s:\n", roleID)
		Writef(os.Stdout, "  title: %s\n", doc.Info.Title)
		Writef(os.Stdout, "  paths: %d\n", len(doc.Paths))
		Writef(os.Stdout, "  definitions: %d\n", len(doc.Definitions))

		opIDs := s.OperationIDs(roleID)
		Writef(os.Stdout, "  operations (%d):\n", len(opIDs))
		for _, id := range opIDs {
			Writef(os.Stdout, "    - %s\n", id)
		}

		if chains := s.DependencyOperationIDs(roleID); len(chains) > 0 {
			Writef(os.Stdout, "  dependency chains (%d):\n", len(chains))
			for _, chain := range chains {
				Writef(os.Stdout, "    - %s\n", chain)
			}
		}
	}
	return nil
}
