// Command lookup prints dictionary entries for the words given on the command line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"dictbot/internal/config"
	"dictbot/internal/domain"
	"dictbot/internal/logging"
	"dictbot/internal/repository/dictapi"
	"dictbot/internal/repository/memory"
	"dictbot/internal/service"

	"go.uber.org/zap"
)

func main() {
	verbose := flag.Bool("v", false, "log requests to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: lookup [-v] word [word...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := logging.New("debug")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	dictCfg := config.LoadDictionary()
	wordService := service.NewWordService(
		dictapi.NewClientWithURL(dictCfg.BaseURL, logger),
		memory.NewSessionRepo(),
		logger,
	)

	if !run(context.Background(), wordService, flag.Args()) {
		os.Exit(1)
	}
}

// run prints every word and reports whether all of them were found
func run(ctx context.Context, wordService *service.WordService, words []string) bool {
	allFound := true
	for i, word := range words {
		if i > 0 {
			fmt.Println()
		}

		view, err := wordService.LookupWord(ctx, word)
		if err != nil {
			allFound = false
			if errors.Is(err, domain.ErrWordNotFound) {
				fmt.Println(render(word, nil))
				continue
			}
			fmt.Println(errorStyle.Render(fmt.Sprintf("%s: %v", word, err)))
			continue
		}
		fmt.Println(render(word, view))
	}
	return allFound
}
