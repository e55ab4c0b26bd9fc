// main is the entry point for the ai-indicator CLI.
package main

import (
	"github.com/IlyaRucavitcyn/ai-indicator/cmd"
	"github.com/IlyaRucavitcyn/ai-indicator/internal/contract"
	"github.com/IlyaRucavitcyn/ai-indicator/internal/store"
)

func main() {
	cmd.SetStoreManager(store.Manager)
	defer store.CloseStores()

	if err := cmd.Execute(); err != nil {
		contract.LogFatal("command failed", err)
	}
}
