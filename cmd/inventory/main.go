package main

import "github.com/poolshark1904/gestao-produtos/internal/cli"

func main() {
	cli.Execute()
}
