package main

import (
	"fmt"
	"os"

	"github.com/almasriprojects/BankAPI/cmd/parse"
	"github.com/almasriprojects/BankAPI/cmd/root"
	"github.com/almasriprojects/BankAPI/cmd/serve"
)

func init() {
	root.Init()
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
