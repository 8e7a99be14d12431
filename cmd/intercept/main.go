package main

import (
	"fmt"
	"os"

	// Import to register the simulation
	_ "github.com/aegirsim/missile-simulations/cmd/intercept/simulation"
)

func main() {
	fmt.Println("Intercept simulation registered. Use 'mslsim run' to execute.")
	os.Exit(0)
}
