package main

import (
	_ "time/tzdata"

	"github.com/MohtasimEram/EDU-Routine-Generator/cmd"
)

func main() {
	cmd.Execute()
}
