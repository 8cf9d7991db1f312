package main

import (
	"AirFM/cmd"
)

func main() {
	cmd.Execute()
}
