package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/semreerol/Receipt-Scanner/cmd/batch"
	"github.com/semreerol/Receipt-Scanner/cmd/root"
	"github.com/semreerol/Receipt-Scanner/cmd/scan"
	"github.com/semreerol/Receipt-Scanner/cmd/serve"
)

func init() {
	loadEnvSilently()

	root.Init()

	root.Cmd.AddCommand(scan.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

// loadEnvSilently loads environment variables without logging anything,
// logging is not configured yet at this point.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
