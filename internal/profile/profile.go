package profile

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Profile holds the values a run profile may provide. Nil fields were not
// present in the file and leave the corresponding flag default untouched.
type Profile struct {
	Provider  *string
	ConfigDir *string
	OutputDir *string
	Stem      *string
	Forks     *int
	LogLevel  *string
	LogFormat *string
}

type fileRoot struct {
	Harness *harnessBlock `hcl:"harness,block"`
}

type harnessBlock struct {
	Provider  *string `hcl:"provider,optional"`
	ConfigDir *string `hcl:"config_dir,optional"`
	OutputDir *string `hcl:"output_dir,optional"`
	Stem      *string `hcl:"stem,optional"`
	Forks     *int    `hcl:"forks,optional"`
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
}

// Load parses the HCL run profile at path. Attribute expressions may
// reference the process environment as env.<NAME>.
func Load(path string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile %s: %s", path, diags.Error())
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile %s: %s", path, diags.Error())
	}
	if root.Harness == nil {
		return nil, fmt.Errorf("profile %s contains no harness block", path)
	}

	h := root.Harness
	return &Profile{
		Provider:  h.Provider,
		ConfigDir: h.ConfigDir,
		OutputDir: h.OutputDir,
		Stem:      h.Stem,
		Forks:     h.Forks,
		LogLevel:  h.LogLevel,
		LogFormat: h.LogFormat,
	}, nil
}

// evalContext exposes the process environment to profile expressions.
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = cty.StringVal(v)
	}

	envVal := cty.MapValEmpty(cty.String)
	if len(env) > 0 {
		envVal = cty.MapVal(env)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envVal},
	}
}
