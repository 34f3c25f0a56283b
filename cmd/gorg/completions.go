package main

import (
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/raphi011/gorg/internal/config"
	"github.com/raphi011/gorg/internal/index"
)

// completeProjects provides project name completion from the index,
// fuzzy-filtered by what was typed so far.
func completeProjects(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ix, err := index.Load(cfg.IndexFile)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := ix.Names()
	if toComplete == "" {
		return names, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, m := range fuzzy.Find(toComplete, names) {
		matches = append(matches, m.Str)
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
