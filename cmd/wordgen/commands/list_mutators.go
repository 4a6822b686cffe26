/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: list_mutators.go
Description: List-mutators command implementation for Akaylee WordGen. Prints every
available word mutation rule with its transformation description.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kleascm/akaylee-wordgen/pkg/generators"
	"github.com/kleascm/akaylee-wordgen/pkg/strategies"
)

// mutatorRules lists every rule name accepted by --rules, in display order.
var mutatorRules = []string{
	"lowercase", "uppercase", "capitalize", "swapcase",
	"reverse", "rotate-left", "rotate-right",
	"duplicate", "duplicate-first", "duplicate-last",
	"leet", "append-digits", "prepend-digits",
}

// ListMutators prints the available mutation rules
func ListMutators(cmd *cobra.Command, args []string) {
	fmt.Println("🔧 Akaylee WordGen - Available Mutation Rules")
	fmt.Println("=============================================")
	fmt.Println()

	source := generators.NewSource(0)
	for _, rule := range mutatorRules {
		m, ok := strategies.MutatorByName(rule, source)
		if !ok {
			continue
		}
		fmt.Printf("  %-16s %s\n", rule, m.Description())
	}

	fmt.Println()
	fmt.Println("Rules chain in the order given; --random-order shuffles the chain per word.")
}
