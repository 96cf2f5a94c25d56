package main

import "github.com/ChaoticTrials/action-sync-workflows/internal/cmd"

func main() {
	cmd.Execute()
}
