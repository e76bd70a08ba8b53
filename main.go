package main

import (
	"os"

	"github.com/eadegbola/profiler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
