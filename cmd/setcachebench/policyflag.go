package main

import "github.com/spf13/pflag"

// policyValue is a pflag.Value that only accepts the eviction policy names
// invalidatorFactory knows about, so a typo on the command line fails at
// flag-parse time instead of after the cache has already been built.
type policyValue struct {
	s string
}

var _ pflag.Value = (*policyValue)(nil)

func (p *policyValue) String() string { return p.s }

func (p *policyValue) Set(s string) error {
	if _, err := invalidatorFactory(s); err != nil {
		return err
	}
	p.s = s
	return nil
}

func (p *policyValue) Type() string { return "policy" }
