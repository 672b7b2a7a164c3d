package main

import "github.com/konradit/lrv2csv/cmd"

func main() {
	cmd.Execute()
}
