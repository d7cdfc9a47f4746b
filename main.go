package main

import "github.com/Alijeyrad/datalux_backend/cmd"

func main() {
	cmd.Execute()
}
