package main

import (
	"bufio"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/skybi/hashmaps/internal/config"
	"github.com/skybi/hashmaps/internal/hashmap"
	"github.com/skybi/hashmaps/internal/mode"
	"github.com/skybi/hashmaps/internal/random"
	"io"
	"os"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})

	// Load the application configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")

	hash, err := cfg.Hash()
	if err != nil {
		log.Fatal().Err(err).Msg("could not resolve the hash function")
	}

	// Collect the words to count
	var words []string
	if cfg.RandomWords > 0 {
		log.Info().Int("amount", cfg.RandomWords).Int("length", cfg.RandomWordLength).Msg("generating random words...")
		words = random.New(cfg.RandomSeed).Words(cfg.RandomWords, cfg.RandomWordLength, random.CharsetLowercase)
	} else {
		words, err = readWords(os.Args[1:])
		if err != nil {
			log.Fatal().Err(err).Msg("could not read the input words")
		}
	}
	if len(words) == 0 {
		log.Warn().Msg("no words to count")
		return
	}
	log.Info().Int("amount", len(words)).Msg("counting words...")

	// Count the words using open addressing
	counts := hashmap.NewOpenAddressing[int](cfg.Capacity, hash)
	for _, word := range words {
		counts.Put(word, counts.Get(word)+1)
	}
	logStats("open addressing", counts)

	// Mirror the counts into a separate chaining map
	chained := hashmap.NewChaining[int](cfg.Capacity, hash)
	for _, pair := range counts.KeysAndValues() {
		chained.Put(pair.Key, pair.Value)
	}
	logStats("separate chaining", chained)

	if cfg.DumpTables {
		fmt.Println(counts)
		fmt.Println(chained)
	}

	modes, frequency := mode.Find(words)
	log.Info().Strs("modes", modes).Int("frequency", frequency).Msg("found the most frequent words")
}

// logStats logs the sizing statistics of a map
func logStats(name string, m hashmap.Map[int]) {
	log.Info().
		Str("map", name).
		Int("size", m.Size()).
		Int("capacity", m.Capacity()).
		Float64("load", m.TableLoad()).
		Int("empty_buckets", m.EmptyBuckets()).
		Msg("built frequency table")
}

// readWords reads whitespace separated words out of the given files or stdin if no files are given
func readWords(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return scanWords(os.Stdin)
	}
	var words []string
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		scanned, err := scanWords(file)
		_ = file.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		words = append(words, scanned...)
	}
	return words, nil
}

func scanWords(reader io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	return words, scanner.Err()
}
