// Package config loads the optional umlfold.hcl converter configuration.
// The file is a convenience layer over the CLI flags: flags always win,
// the file fills in whatever they left unset.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Config is the loaded converter configuration.
type Config struct {
	OutputDir string
	Format    string
	Workers   int
}

// fileSchema mirrors the layout of an umlfold.hcl file.
type fileSchema struct {
	Output  *outputBlock `hcl:"output,block"`
	Workers *int         `hcl:"workers,optional"`
}

type outputBlock struct {
	Directory string `hcl:"directory,optional"`
	Format    string `hcl:"format,optional"`
}

// envFunc exposes env("NAME") inside configuration expressions, so output
// directories can come from the environment.
var envFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "name", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.StringVal(os.Getenv(args[0].AsString())), nil
	},
})

func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": envFunc,
		},
	}
}

// Load parses the configuration file at path. Formats other than "json"
// and "yaml" are rejected here rather than at encode time.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config %s: %w", path, diags)
	}

	var parsed fileSchema
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config %s: %w", path, diags)
	}

	cfg := &Config{}
	if parsed.Output != nil {
		cfg.OutputDir = parsed.Output.Directory
		cfg.Format = parsed.Output.Format
	}
	if parsed.Workers != nil {
		cfg.Workers = *parsed.Workers
	}

	if cfg.Format != "" && cfg.Format != "json" && cfg.Format != "yaml" {
		return nil, fmt.Errorf("config %s: unsupported output format %q", path, cfg.Format)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("config %s: workers must not be negative", path)
	}
	return cfg, nil
}
