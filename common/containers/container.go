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

// Package containers resolves qualified names within a container prefix
// (spec.md §4.2 "Resolution of a dotted name").
package containers

import (
	"fmt"
	"strings"

	"github.com/cloud-custodian/cel-go-core/common/ast"
)

var noAliases = make(map[string]string)

// Container holds an optional container prefix and a set of simple-name
// aliases, and behaves like a C++ namespace during name resolution.
type Container struct {
	name    string
	aliases map[string]string
}

// Option configures a Container.
type Option func(*Container) (*Container, error)

// New builds a Container by applying opts in order.
func New(opts ...Option) (*Container, error) {
	var c *Container
	var err error
	for _, opt := range opts {
		c, err = opt(c)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Extend produces a new Container that starts from c's settings and
// applies further options; used when a sub-expression changes container.
func (c *Container) Extend(opts ...Option) (*Container, error) {
	if c == nil {
		return New(opts...)
	}
	ext := &Container{name: c.Name()}
	if len(c.aliasSet()) > 0 {
		aliasSet := make(map[string]string, len(c.aliasSet()))
		for k, v := range c.aliasSet() {
			aliasSet[k] = v
		}
		ext.aliases = aliasSet
	}
	var err error
	for _, opt := range opts {
		ext, err = opt(ext)
		if err != nil {
			return nil, err
		}
	}
	return ext, nil
}

// Name returns the fully-qualified container prefix, or "" if none.
func (c *Container) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

func (c *Container) aliasSet() map[string]string {
	if c == nil || c.aliases == nil {
		return noAliases
	}
	return c.aliases
}

// ResolveCandidateNames returns the candidate fully-qualified names for an
// unqualified or partially-qualified identifier, longest-prefix-match
// first (spec.md §4.2): given container `a.b.c` and name `R.s`, in order
//
//	a.b.c.R.s
//	a.b.R.s
//	a.R.s
//	R.s
//
// A name prefixed with "." is absolute and cannot be shadowed by the
// container. Alias names, if configured, are tried last.
func (c *Container) ResolveCandidateNames(name string) []string {
	if strings.HasPrefix(name, ".") {
		qn := name[1:]
		return c.withAlias([]string{qn}, qn)
	}
	if c.Name() == "" {
		return c.withAlias([]string{name}, name)
	}
	next := c.name
	candidates := []string{next + "." + name}
	for i := strings.LastIndex(next, "."); i >= 0; i = strings.LastIndex(next, ".") {
		next = next[:i]
		candidates = append(candidates, next+"."+name)
	}
	candidates = append(candidates, name)
	return c.withAlias(candidates, name)
}

func (c *Container) withAlias(candidates []string, name string) []string {
	if len(c.aliasSet()) == 0 {
		return candidates
	}
	if alias, found := c.aliasSet()[name]; found {
		return append(candidates, alias)
	}
	return candidates
}

// Name sets the container's fully-qualified prefix.
func Name(name string) Option {
	return func(c *Container) (*Container, error) {
		if c == nil {
			return &Container{name: name}, nil
		}
		c.name = name
		return c, nil
	}
}

// Alias registers a simple name as shorthand for a fully-qualified name,
// e.g. Alias("google.type.Money", "Money"), used by host-registered type
// and function extensions (spec.md §4.2 layer 2).
func Alias(qualifiedName, alias string) Option {
	return func(c *Container) (*Container, error) {
		if alias == "" || strings.Contains(alias, ".") {
			return nil, fmt.Errorf("alias must be a simple name: %s", alias)
		}
		if c == nil {
			c = &Container{}
		}
		if _, found := c.aliasSet()[alias]; found {
			return nil, fmt.Errorf("alias collides with existing reference: %s", alias)
		}
		if c.aliases == nil {
			c.aliases = make(map[string]string)
		}
		c.aliases[alias] = qualifiedName
		return c, nil
	}
}

// ToQualifiedName converts an AST node into a dotted qualified name if it
// is a chain of selects over an identifier, else reports found=false.
func ToQualifiedName(e *ast.Expr) (string, bool) {
	switch e.Kind {
	case ast.IdentKind:
		return e.Ident, true
	case ast.SelectKind:
		if qual, found := ToQualifiedName(e.Select.Operand); found {
			return qual + "." + e.Select.Field, true
		}
	}
	return "", false
}
