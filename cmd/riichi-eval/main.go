// Command riichi-eval scores riichi mahjong hands read from the command line or stdin.
//
//	riichi-eval 234567m234p55s678s win=8s ron dora=4p
//	riichi-eval --json < hands.txt
//	riichi-eval --tenpai 1112345678999m
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"riichi"
)

func main() {
	_ = godotenv.Load() // .env is optional

	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn"))
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rulesPath := flag.StringP("rules", "r", getEnv("RIICHI_RULES", ""), "YAML rules file")
	asJSON := flag.BoolP("json", "j", false, "print results as JSON")
	workers := flag.IntP("workers", "w", 4, "hands scored in parallel")
	tenpai := flag.Bool("tenpai", false, "list the waits of 13-tile hands instead of scoring")
	flag.Parse()

	var lines []string
	if flag.NArg() > 0 {
		lines = []string{strings.Join(flag.Args(), " ")}
	} else {
		lines, err = ReadLines(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("read input")
		}
	}

	if *tenpai {
		os.Exit(runTenpai(lines))
	}

	rules, err := riichi.LoadRules(*rulesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load rules")
	}
	ev := riichi.NewEvaluator(rules, riichi.WithLogger(log.Logger))

	reqs := make([]riichi.Request, 0, len(lines))
	failed := false
	for i, line := range lines {
		req, err := ParseRequest(fmt.Sprint(i+1), line)
		if err != nil {
			log.Error().Err(err).Int("line", i+1).Msg("skipping hand")
			failed = true
			continue
		}
		reqs = append(reqs, req)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	responses := ev.EvaluateBatch(ctx, reqs, *workers)

	for _, r := range responses {
		if r.Err != nil {
			failed = true
		}
	}
	if *asJSON {
		out, err := json.MarshalIndent(responses, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("encode results")
		}
		fmt.Println(string(out))
	} else {
		for _, r := range responses {
			fmt.Printf("#%s\n", r.ID)
			if r.Err != nil {
				fmt.Printf("Error: %v\n\n", r.Err)
				continue
			}
			fmt.Println(riichi.FormatResult(r.Result))
		}
	}

	stats := ev.Decomposer().Stats()
	log.Debug().Int64("hits", stats.Hits).Int64("misses", stats.Misses).Int("entries", stats.Entries).Msg("cache")
	if failed {
		os.Exit(1)
	}
}

// runTenpai prints the waits of each 13-tile line and returns the exit code.
func runTenpai(lines []string) int {
	code := 0
	for i, line := range lines {
		req, err := ParseRequest(fmt.Sprint(i+1), line)
		if err != nil {
			log.Error().Err(err).Int("line", i+1).Msg("skipping hand")
			code = 1
			continue
		}
		waits := riichi.FindTenpaiWaits(req.Hand.Concealed, req.Hand.Melds)
		if len(waits) == 0 {
			fmt.Printf("%s: noten\n", riichi.Notation(req.Hand.Concealed))
			continue
		}
		fmt.Printf("%s: waits %s\n", riichi.Notation(req.Hand.Concealed), riichi.Notation(waits))
	}
	return code
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
