package main

import "github.com/cabinetmed/cabinet_backend/cmd"

func main() {
	cmd.Execute()
}
