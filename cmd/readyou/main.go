package main

import (
	"fmt"
	"os"

	"readyou/internal/errors"
	"readyou/internal/logging"
)

func main() {
	logger := logging.NewLogger(logging.Config{
		Format: "human",
		Level:  "info",
	})

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed", map[string]interface{}{
			"code":  string(errors.CodeOf(err)),
			"error": err.Error(),
		})
		if hint := errors.HintOf(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
