package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/auther/cli"
)

func main() {
	err := cli.Run(context.Background(), os.Args[1:], os.Stdout)
	if err == nil {
		return
	}
	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
		fmt.Println(err)
		return
	}
	if errors.Is(err, cli.ErrInvalidToken) {
		os.Exit(1)
	}
	log.Fatal(err)
}
