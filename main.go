package main

import "github.com/ImJustSebas/University-budget-manager/cmd"

func main() {
	cmd.Execute()
}
