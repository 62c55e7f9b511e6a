// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command cel-eval is a small demonstration front-end over the
// programmatic cel package (spec.md §6 "CLI surface (external
// collaborator, summarized only)"). It is not part of the core
// contract; it exists to exercise Env/Program/Activation end to end.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/cloud-custodian/cel-go-core/cel"
	"github.com/cloud-custodian/cel-go-core/celtypes"
	"github.com/cloud-custodian/cel-go-core/interpreter"
)

// inputVarName is the identifier stdin JSON is bound to, per spec.md §6
// "stdin JSON is bound to a default identifier".
const inputVarName = "input"

func main() {
	var (
		noStdin      bool
		boolExit     bool
		containerPkg string
		bindingFlags []string
	)

	root := &cobra.Command{
		Use:   "cel-eval <expr>",
		Short: "Evaluate a CEL expression against optional variable bindings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindings, err := parseBindings(bindingFlags)
			if err != nil {
				return err
			}
			if !noStdin {
				stat, _ := os.Stdin.Stat()
				if (stat.Mode() & os.ModeCharDevice) == 0 {
					data, err := io.ReadAll(os.Stdin)
					if err != nil {
						return fmt.Errorf("reading stdin: %w", err)
					}
					if strings.TrimSpace(string(data)) != "" {
						v, err := celtypes.JSONToCEL(data)
						if err != nil {
							return fmt.Errorf("decoding stdin JSON: %w", err)
						}
						bindings[inputVarName] = v
					}
				}
			}

			env, err := cel.NewEnv(cel.Container(containerPkg))
			if err != nil {
				return fmt.Errorf("constructing environment: %w", err)
			}
			tree, err := env.Compile(args[0])
			if err != nil {
				return err
			}
			program, err := env.Program(tree)
			if err != nil {
				return err
			}
			activation := interpreter.NewActivation(bindings)
			result, evalErr := program.Evaluate(activation)
			if evalErr != nil {
				if boolExit {
					fmt.Fprintln(os.Stderr, evalErr)
					os.Exit(2)
				}
				return evalErr
			}
			fmt.Println(result)
			if boolExit {
				b, ok := result.(celtypes.Bool)
				if !ok {
					fmt.Fprintln(os.Stderr, "result is not a bool")
					os.Exit(2)
				}
				if bool(b) {
					os.Exit(0)
				}
				os.Exit(1)
			}
			return nil
		},
	}

	root.Flags().BoolVarP(&noStdin, "no-stdin", "n", false, "do not read a JSON binding from stdin")
	root.Flags().BoolVarP(&boolExit, "bool-exit", "b", false, "map the result to a boolean exit status (0=true, 1=false, 2=error)")
	root.Flags().StringVarP(&containerPkg, "container", "d", "", "container prefix for name resolution")
	root.Flags().StringArrayVarP(&bindingFlags, "arg", "a", nil, "variable binding NAME:TYPE=VALUE, TYPE one of int,uint,double,bool,string,json")

	if err := root.Execute(); err != nil {
		glog.Errorf("cel-eval: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

// parseBindings decodes -a NAME:TYPE=VALUE flags into native Go values
// that interpreter.NewActivation adapts via celtypes.NativeToCEL.
func parseBindings(flags []string) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(flags))
	for _, f := range flags {
		nameType, value, found := strings.Cut(f, "=")
		if !found {
			return nil, fmt.Errorf("invalid binding %q, expected NAME:TYPE=VALUE", f)
		}
		name, typ, found := strings.Cut(nameType, ":")
		if !found {
			return nil, fmt.Errorf("invalid binding %q, expected NAME:TYPE=VALUE", f)
		}
		switch typ {
		case "int":
			var n int64
			if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
				return nil, fmt.Errorf("invalid int value for %s: %s", name, value)
			}
			out[name] = n
		case "uint":
			var n uint64
			if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
				return nil, fmt.Errorf("invalid uint value for %s: %s", name, value)
			}
			out[name] = n
		case "double":
			var n float64
			if _, err := fmt.Sscanf(value, "%g", &n); err != nil {
				return nil, fmt.Errorf("invalid double value for %s: %s", name, value)
			}
			out[name] = n
		case "bool":
			out[name] = value == "true"
		case "string":
			out[name] = value
		case "json":
			var v interface{}
			if err := json.Unmarshal([]byte(value), &v); err != nil {
				return nil, fmt.Errorf("invalid json value for %s: %s", name, value)
			}
			out[name] = v
		default:
			return nil, fmt.Errorf("unknown binding type %q for %s", typ, name)
		}
	}
	return out, nil
}
